package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"cran-recipes/internal/types"
)

func sampleRecord() types.RecipeRecord {
	return types.RecipeRecord{
		Package: types.RecipePackage{Name: "r-{{ name }}", Version: "{{ version }}"},
		Source: types.RecipeSource{
			URL:    "https://github.com/user/rpkg/archive/v{{ version }}.tar.gz",
			SHA256: "abc123",
		},
		Build: types.RecipeBuild{
			MergeBuildHost: true,
			Script:         "R CMD INSTALL --build .",
			Rpaths:         []string{"lib/R/lib/", "lib/"},
		},
		Requirements: types.RecipeRequirements{
			Host: []string{"r-base", "r-ggplot2"},
			Run:  []string{"r-base", "r-ggplot2"},
		},
		Test: types.RecipeTest{Commands: []string{
			`$R -e "library('rpkg')"  # [not win]`,
			`"%R%" -e "library('rpkg')"  # [win]`,
		}},
		About: types.RecipeAbout{
			Home:    "https://github.com/user/rpkg",
			DevURL:  "https://github.com/user/rpkg",
			License: "MIT",
		},
	}
}

func TestWriteRecipe(t *testing.T) {
	dir := t.TempDir()
	comment := types.ProvenanceComment{"# Package: rpkg", "# Version: 1.0.0"}

	path, err := NewRecipeFileAdapter(dir).WriteRecipe(sampleRecord(), comment, "rpkg")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "r-rpkg", "meta.yaml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	require.Contains(t, text, "name: r-{{ name }}")
	require.Contains(t, text, "sha256: abc123")
	require.Contains(t, text, "# Package: rpkg")
	require.Contains(t, text, "# Version: 1.0.0")
}

func TestWriteRecipeDeterministic(t *testing.T) {
	comment := types.ProvenanceComment{"# Package: rpkg"}

	firstPath, err := NewRecipeFileAdapter(t.TempDir()).WriteRecipe(sampleRecord(), comment, "rpkg")
	require.NoError(t, err)
	secondPath, err := NewRecipeFileAdapter(t.TempDir()).WriteRecipe(sampleRecord(), comment, "rpkg")
	require.NoError(t, err)

	first, err := os.ReadFile(firstPath)
	require.NoError(t, err)
	second, err := os.ReadFile(secondPath)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
