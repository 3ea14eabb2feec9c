package types

// ResolvedRef pairs the user-facing version with the forge tag that
// was actually fetched (the tag may carry a "v" prefix the version
// does not).
type ResolvedRef struct {
	Version string
	Ref     string
}

// NativeManifest holds the parsed DESCRIPTION file of an R package:
// field values keyed by their upstream names, plus the original
// logical lines kept verbatim for the provenance comment.
//
// Field names are case-sensitive as they appear upstream.  Unknown
// fields are preserved.  A missing field and an empty field are
// indistinguishable through Get; both read as "".
type NativeManifest struct {
	Fields    map[string]string
	OrigLines []string
}

// Get returns the raw value of a manifest field, or "" when absent.
func (m NativeManifest) Get(field string) string {
	return m.Fields[field]
}

// Name returns the manifest-declared package name.  The DESCRIPTION
// file is authoritative over the repository name.
func (m NativeManifest) Name() string {
	return m.Fields["Package"]
}
