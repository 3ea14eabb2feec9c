package adapters

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"cran-recipes/internal/ports"
	"cran-recipes/internal/shared"
)

// DownloadAdapter fetches a source archive into a freshly created
// temporary directory. Each call creates exactly one file; the caller
// owns cleanup of the directory.
type DownloadAdapter struct {
	HTTP ports.HTTPPort
}

func NewDownloadAdapter(httpPort ports.HTTPPort) DownloadAdapter {
	return DownloadAdapter{HTTP: httpPort}
}

// Download writes the archive body to
// {tempdir}/{pkgName}-{versionTag}.tar.gz and returns that path. Any
// non-success transport response fails the whole resolution request.
func (a DownloadAdapter) Download(ctx context.Context, archiveURL string, pkgName string, versionTag string) (string, error) {
	status, body, err := a.HTTP.Get(ctx, archiveURL)
	if err != nil {
		return "", shared.DownloadError(archiveURL, err)
	}
	if status < 200 || status >= 300 {
		return "", shared.DownloadError(archiveURL, shared.HTTPStatusError(status, archiveURL))
	}
	dir, err := os.MkdirTemp("", fmt.Sprintf("cran-recipes-%s-", pkgName))
	if err != nil {
		return "", shared.FileAccessError(dir, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s-%s.tar.gz", pkgName, versionTag))
	if err := os.WriteFile(path, body, 0644); err != nil {
		return "", shared.FileAccessError(path, err)
	}
	return path, nil
}
