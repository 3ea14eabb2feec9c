package app

import "cran-recipes/internal/types"

// GenerateResult carries everything the pipeline produced for one
// request. RecipePath is empty when no output directory was given.
type GenerateResult struct {
	PackageName string
	Version     string
	Ref         string
	ArchivePath string
	RecipePath  string
	Record      types.RecipeRecord
	Comment     types.ProvenanceComment
}
