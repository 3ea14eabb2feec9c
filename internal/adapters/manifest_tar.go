package adapters

import (
	"archive/tar"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/klauspost/compress/gzip"

	"cran-recipes/internal/core"
	"cran-recipes/internal/ports"
	"cran-recipes/internal/shared"
	"cran-recipes/internal/types"
)

// TarballManifestAdapter locates and parses the DESCRIPTION file of a
// downloaded source archive. Forge tarballs nest everything under a
// single top-level directory, so only first-level DESCRIPTION entries
// are considered.
type TarballManifestAdapter struct{}

func NewTarballManifestAdapter() TarballManifestAdapter {
	return TarballManifestAdapter{}
}

var descriptionEntry = regexp.MustCompile(`^[^/]+/DESCRIPTION$`)

func (a TarballManifestAdapter) Extract(archivePath string) (types.NativeManifest, error) {
	// A bare DESCRIPTION path is accepted directly, mainly for local
	// checkouts.
	if filepath.Base(archivePath) == "DESCRIPTION" {
		data, err := os.ReadFile(archivePath)
		if err != nil {
			return types.NativeManifest{}, shared.FileAccessError(archivePath, err)
		}
		return core.ParseDescription(data)
	}

	file, err := os.Open(archivePath)
	if err != nil {
		return types.NativeManifest{}, shared.FileAccessError(archivePath, err)
	}
	defer file.Close()

	decompressed, err := gzip.NewReader(file)
	if err != nil {
		return types.NativeManifest{}, shared.ManifestParseError("archive is not gzip compressed")
	}
	defer decompressed.Close()

	reader := tar.NewReader(decompressed)
	for {
		header, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return types.NativeManifest{}, shared.FileAccessError(archivePath, err)
		}
		if header.Typeflag != tar.TypeReg {
			continue
		}
		if !descriptionEntry.MatchString(header.Name) {
			continue
		}
		data, err := io.ReadAll(reader)
		if err != nil {
			return types.NativeManifest{}, shared.FileAccessError(archivePath, err)
		}
		return core.ParseDescription(data)
	}
	return types.NativeManifest{}, shared.ManifestNotFoundError(archivePath)
}

var _ ports.ManifestPort = TarballManifestAdapter{}
