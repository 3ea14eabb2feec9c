package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"cran-recipes/tests/testutil"
)

const e2eDescription = `Package: e2epkg
Version: 0.3.1
Title: End To End Package
Description: Exercises the generate command end to end
License: MIT
Imports: rlang
`

func TestGenerateCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)
	outDir := t.TempDir()

	archive := testutil.RArchive(t, "e2epkg-0.3.1", map[string]string{
		"DESCRIPTION": e2eDescription,
	})
	server := testutil.StartForgeServer(t, testutil.ForgeFixture{
		Slug:     "e2euser/e2epkg",
		TagsJSON: `[{"name":"v0.3.1"}]`,
		Archives: map[string][]byte{"v0.3.1": archive},
	})

	cmd := exec.Command("go", "run", "./cmd/cran-recipes", "generate",
		server.URL+"/e2euser/e2epkg",
		"--version", "0.3.1",
		"--github-api", server.URL,
		"--output", outDir,
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	require.FileExists(t, filepath.Join(outDir, "r-e2epkg", "meta.yaml"))
}
