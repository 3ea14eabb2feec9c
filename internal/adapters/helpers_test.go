package adapters

import (
	"archive/tar"
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
)

// rArchive builds an in-memory forge-style tarball: a single top-level
// directory containing the given files.
func rArchive(t *testing.T, topDir string, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	compressor := gzip.NewWriter(&buf)
	writer := tar.NewWriter(compressor)
	for name, content := range files {
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

// fakeHTTP serves canned responses by URL and records every request.
type fakeHTTP struct {
	responses map[string]fakeResponse
	calls     []string
}

type fakeResponse struct {
	status int
	body   []byte
	err    error
}

func (f *fakeHTTP) Get(_ context.Context, url string) (int, []byte, error) {
	f.calls = append(f.calls, url)
	resp, ok := f.responses[url]
	if !ok {
		return 404, nil, nil
	}
	return resp.status, resp.body, resp.err
}

func requireErrMsg(t *testing.T, err error, substr string) {
	t.Helper()
	require.Error(t, err)
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && builder.Msg != "" {
		require.Contains(t, builder.Msg, substr)
		return
	}
	require.Contains(t, err.Error(), substr)
}
