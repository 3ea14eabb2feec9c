package shared

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Error message prefixes double as the error taxonomy: the CLI maps
// them (together with the errbuilder code) to exit codes, and callers
// can tell which stage failed without inspecting pipeline state.
const (
	MsgVersionNotFound = "no matching ref"
	MsgDownloadFailed  = "download failed"
	MsgFileAccess      = "cannot read file"
	MsgManifestMissing = "no DESCRIPTION"
	MsgManifestInvalid = "invalid DESCRIPTION"
)

// VersionNotFoundError reports that neither the literal version nor a
// v-prefixed variant exists as a ref on the forge.
func VersionNotFoundError(url string, version string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("%s for version %s at %s", MsgVersionNotFound, version, url))
}

// DownloadError reports a non-success transport response for an
// archive fetch.  It is not retried inside the pipeline.
func DownloadError(url string, cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeUnavailable).
		WithMsg(fmt.Sprintf("%s for %s", MsgDownloadFailed, url)).
		WithCause(cause)
}

// FileAccessError reports an unreadable local file.
func FileAccessError(path string, cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(fmt.Sprintf("%s %s", MsgFileAccess, path)).
		WithCause(cause)
}

// ManifestNotFoundError reports an archive with no DESCRIPTION inside.
func ManifestNotFoundError(path string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("%s found in %s", MsgManifestMissing, path))
}

// ManifestParseError reports structurally invalid DESCRIPTION content.
func ManifestParseError(detail string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("%s: %s", MsgManifestInvalid, detail))
}
