// Package shared provides common utility functions used across multiple
// packages in the cran-recipes codebase.
package shared

import (
	"fmt"
	"strings"
)

// NamespacePrefix is prepended to every translated R package name so
// recipes never collide with same-named packages from other ecosystems.
const NamespacePrefix = "r-"

// BasePackage is the R runtime itself; every recipe depends on it.
const BasePackage = "r-base"

// NormalizeRName lowercases an R package name.  The namespace prefix
// is added by the translator, not here.
func NormalizeRName(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// HTTPStatusError creates a formatted error for non-2xx HTTP responses.
func HTTPStatusError(status int, url string) error {
	return fmt.Errorf("status=%d url=%s", status, url)
}

// RepoName returns the final path segment of a forge URL, used as the
// package name fallback when the manifest does not declare one.
func RepoName(url string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(url), "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		return trimmed[idx+1:]
	}
	return trimmed
}
