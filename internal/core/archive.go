package core

import (
	"strings"

	"cran-recipes/internal/types"
)

// ArchiveURL derives the source tarball URL for a forge ref. Pure
// string construction, no I/O.
func ArchiveURL(repoURL string, ref string) string {
	return strings.TrimRight(repoURL, "/") + "/archive/" + ref + ".tar.gz"
}

// TemplateSourceURL replaces the literal ref in an archive URL with the
// version placeholder so the recipe re-derives the URL per version.
// A v-prefixed tag keeps the prefix outside the placeholder.
func TemplateSourceURL(archiveURL string, resolved types.ResolvedRef) string {
	placeholder := "{{ version }}"
	if strings.HasPrefix(resolved.Ref, "v") && !strings.HasPrefix(resolved.Version, "v") {
		placeholder = "v{{ version }}"
	}
	return strings.ReplaceAll(archiveURL, resolved.Ref, placeholder)
}
