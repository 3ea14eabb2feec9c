package ports

import "cran-recipes/internal/types"

// ManifestPort extracts and parses the native DESCRIPTION manifest
// from a downloaded source archive.
type ManifestPort interface {
	Extract(archivePath string) (types.NativeManifest, error)
}
