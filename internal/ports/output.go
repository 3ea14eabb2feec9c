package ports

import "cran-recipes/internal/types"

// RecipeWriterPort renders the assembled recipe record and provenance
// comment to disk.  Returns the path of the written recipe file.
type RecipeWriterPort interface {
	WriteRecipe(record types.RecipeRecord, comment types.ProvenanceComment, pkgName string) (string, error)
}
