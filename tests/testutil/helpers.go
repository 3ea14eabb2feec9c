// Package testutil provides shared test helpers used across integration,
// e2e, and unit test packages.
package testutil

import (
	"archive/tar"
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
)

// RepoRoot returns the absolute path to the repository root by walking
// up from the current working directory. It fails the test if the
// working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// RArchive builds a forge-style source tarball in memory: one
// top-level directory holding the given files. Entries are written in
// sorted order so the archive bytes, and therefore its checksum, are
// stable across runs.
func RArchive(t *testing.T, topDir string, files map[string]string) []byte {
	t.Helper()
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	var buf bytes.Buffer
	compressor := gzip.NewWriter(&buf)
	writer := tar.NewWriter(compressor)
	for _, name := range names {
		content := files[name]
		header := &tar.Header{
			Name:     topDir + "/" + name,
			Mode:     0644,
			Size:     int64(len(content)),
			Typeflag: tar.TypeReg,
		}
		require.NoError(t, writer.WriteHeader(header))
		_, err := writer.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	require.NoError(t, compressor.Close())
	return buf.Bytes()
}

// ForgeFixture describes the fake forge served by StartForgeServer.
type ForgeFixture struct {
	// Slug is the "owner/repo" path of the repository.
	Slug string
	// TagsJSON is the body served for the tag list API.
	TagsJSON string
	// Archives maps "ref" to tarball bytes served under
	// /{slug}/archive/{ref}.tar.gz.
	Archives map[string][]byte
}

// StartForgeServer runs an httptest server doubling both the forge API
// and the archive download host. The server is closed when the test
// ends.
func StartForgeServer(t *testing.T, fixture ForgeFixture) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/"+fixture.Slug+"/tags", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(fixture.TagsJSON))
	})
	mux.HandleFunc("/repos/"+fixture.Slug+"/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	for ref, body := range fixture.Archives {
		archive := body
		mux.HandleFunc("/"+fixture.Slug+"/archive/"+ref+".tar.gz", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write(archive)
		})
	}
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}
