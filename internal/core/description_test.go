package core

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestJoinContinuationLines(t *testing.T) {
	chunk := []string{
		"Package: A3",
		"Version: 0.9.2",
		"Depends: R (>= 2.15.0), xtable, pbapply",
		"Suggests: randomForest, e1071",
		"Imports: MASS, R.methodsS3 (>= 1.5.2), R.oo (>= 1.15.8), R.utils (>=",
		"        1.27.1), matrixStats (>= 0.8.12), R.filesets (>= 2.3.0),",
		"        sampleSelection, scatterplot3d, strucchange, systemfit",
		"License: GPL (>= 2)",
		"NeedsCompilation: no",
	}
	joined, err := JoinContinuationLines(chunk)
	require.NoError(t, err)

	want := []string{
		"Package: A3",
		"Version: 0.9.2",
		"Depends: R (>= 2.15.0), xtable, pbapply",
		"Suggests: randomForest, e1071",
		"Imports: MASS, R.methodsS3 (>= 1.5.2), R.oo (>= 1.15.8), R.utils (>= 1.27.1), matrixStats (>= 0.8.12), R.filesets (>= 2.3.0), sampleSelection, scatterplot3d, strucchange, systemfit",
		"License: GPL (>= 2)",
		"NeedsCompilation: no",
	}
	if diff := cmp.Diff(want, joined); diff != "" {
		t.Fatalf("unexpected joined lines (-want +got):\n%s", diff)
	}
}

func TestJoinContinuationLinesLeadingContinuation(t *testing.T) {
	_, err := JoinContinuationLines([]string{"   orphan continuation"})
	requireErrMsg(t, err, "invalid DESCRIPTION")
}

func TestClearWhitespace(t *testing.T) {
	text := "Package: demo   \n\n\n\nVersion: 1.0\t\n"
	got := ClearWhitespace(text)
	require.Equal(t, "Package: demo\n\nVersion: 1.0\n", got)
}

func TestParseDescription(t *testing.T) {
	description := strings.Join([]string{
		"Package: testpkg",
		"Version: 1.0.0",
		"Title: Test Package",
		"Description: This is a test R package from GitHub",
		"License: MIT + file LICENSE",
		"Imports:",
		"    dplyr (>= 1.0.0),",
		"    ggplot2",
		"URL: https://github.com/testuser/testpkg",
		"NeedsCompilation: no",
	}, "\n")

	manifest, err := ParseDescription([]byte(description))
	require.NoError(t, err)

	require.Equal(t, "testpkg", manifest.Get("Package"))
	require.Equal(t, "1.0.0", manifest.Get("Version"))
	require.Equal(t, "MIT + file LICENSE", manifest.Get("License"))
	require.Equal(t, "dplyr (>= 1.0.0), ggplot2", manifest.Get("Imports"))
	require.Equal(t, "no", manifest.Get("NeedsCompilation"))
	// Unknown fields survive untouched.
	require.Equal(t, "https://github.com/testuser/testpkg", manifest.Get("URL"))
	// Absent fields read as empty.
	require.Equal(t, "", manifest.Get("Suggests"))
}

func TestParseDescriptionKeepsOrigLines(t *testing.T) {
	description := "Package: rpkg\nVersion: 1.0.0\nLicense: MIT\n"
	manifest, err := ParseDescription([]byte(description))
	require.NoError(t, err)
	want := []string{"Package: rpkg", "Version: 1.0.0", "License: MIT"}
	if diff := cmp.Diff(want, manifest.OrigLines); diff != "" {
		t.Fatalf("unexpected orig lines (-want +got):\n%s", diff)
	}
}

func TestParseDescriptionNoColon(t *testing.T) {
	_, err := ParseDescription([]byte("Package: rpkg\nthis line has no key\n"))
	requireErrMsg(t, err, "could not parse metadata")
}
