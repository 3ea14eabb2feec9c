package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cran-recipes/internal/shared"
)

func TestExitCodeForError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"version not found", shared.VersionNotFoundError("https://github.com/user/rpkg", "1.0.0"), 4},
		{"download failed", shared.DownloadError("https://github.com/user/rpkg/archive/v1.0.0.tar.gz", nil), 5},
		{"file access", shared.FileAccessError("/tmp/missing.tar.gz", nil), 5},
		{"manifest missing", shared.ManifestNotFoundError("/tmp/rpkg.tar.gz"), 6},
		{"manifest invalid", shared.ManifestParseError("could not parse metadata"), 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, exitCodeForError(tc.err))
		})
	}
}

func TestRootCommandHasGenerate(t *testing.T) {
	root := newRootCommand()
	sub, _, err := root.Find([]string{"generate"})
	require.NoError(t, err)
	require.Equal(t, "generate [url]", sub.Use)
}
