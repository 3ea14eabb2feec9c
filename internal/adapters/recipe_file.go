package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"cran-recipes/internal/ports"
	"cran-recipes/internal/shared"
	"cran-recipes/internal/types"
)

// RecipeFileAdapter renders the recipe record to
// {dir}/r-{name}/meta.yaml with the provenance comment appended after
// the yaml body. Output bytes are deterministic for identical records.
type RecipeFileAdapter struct {
	Dir string
}

func NewRecipeFileAdapter(dir string) RecipeFileAdapter {
	return RecipeFileAdapter{Dir: dir}
}

func (a RecipeFileAdapter) WriteRecipe(record types.RecipeRecord, comment types.ProvenanceComment, pkgName string) (string, error) {
	recipeDir := filepath.Join(a.Dir, shared.NamespacePrefix+shared.NormalizeRName(pkgName))
	if err := os.MkdirAll(recipeDir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create recipe directory").
			WithCause(err)
	}
	body, err := yaml.Marshal(record)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to render recipe yaml").
			WithCause(err)
	}
	var buf strings.Builder
	buf.Write(body)
	if len(comment) > 0 {
		buf.WriteString("\n")
		buf.WriteString(strings.Join(comment, "\n"))
		buf.WriteString("\n")
	}
	path := filepath.Join(recipeDir, "meta.yaml")
	if err := os.WriteFile(path, []byte(buf.String()), 0644); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write recipe file").
			WithCause(err)
	}
	return path, nil
}

var _ ports.RecipeWriterPort = RecipeFileAdapter{}
