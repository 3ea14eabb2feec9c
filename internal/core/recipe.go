package core

import (
	"fmt"
	"strings"

	"cran-recipes/internal/policies"
	"cran-recipes/internal/shared"
	"cran-recipes/internal/types"
)

// Assembler combines the resolved ref, parsed manifest, and checksum
// into the final recipe record and provenance comment.
type Assembler struct {
	policy policies.CompilerPolicy
}

func NewAssembler() Assembler {
	return Assembler{policy: policies.NewCompilerPolicy()}
}

// Assemble builds the recipe record. Package name and version are
// emitted as template placeholders, never the resolved literals; the
// checksum is the only value bound to the fetched archive.
func (a Assembler) Assemble(
	resolved types.ResolvedRef,
	manifest types.NativeManifest,
	checksum string,
	archiveURL string,
	forgeURL string,
) (types.RecipeRecord, types.ProvenanceComment, error) {
	name := manifest.Name()
	if name == "" {
		name = shared.RepoName(forgeURL)
	}

	requirements, err := TranslateManifestRequirements(manifest)
	if err != nil {
		return types.RecipeRecord{}, nil, err
	}
	buildReqs, needCompiler := a.policy.BuildRequirements(manifest.Get("NeedsCompilation"))

	record := types.RecipeRecord{
		Package: types.RecipePackage{
			Name:    "r-{{ name }}",
			Version: "{{ version }}",
		},
		Source: types.RecipeSource{
			URL:    TemplateSourceURL(archiveURL, resolved),
			SHA256: checksum,
		},
		Build: types.RecipeBuild{
			Number:         0,
			MergeBuildHost: true,
			Script:         "R CMD INSTALL --build .",
			Rpaths:         []string{"lib/R/lib/", "lib/"},
		},
		Requirements: types.RecipeRequirements{
			Build: buildReqs,
			Host:  requirements,
			Run:   append([]string(nil), requirements...),
		},
		Test: types.RecipeTest{
			Commands: []string{
				fmt.Sprintf(`$R -e "library('%s')"  %s`, name, types.SelectorNotWin),
				fmt.Sprintf(`"%%R%%" -e "library('%s')"  %s`, name, types.SelectorWin),
			},
		},
		About: types.RecipeAbout{
			Home:    forgeURL,
			DevURL:  forgeURL,
			Summary: firstLogicalLine(manifest.Get("Description")),
			License: manifest.Get("License"),
		},
		NeedCompiler: needCompiler,
	}

	var comment types.ProvenanceComment
	for _, line := range manifest.OrigLines {
		if line == "" {
			continue
		}
		comment = append(comment, "# "+line)
	}
	return record, comment, nil
}

func firstLogicalLine(value string) string {
	line, _, _ := strings.Cut(value, "\n")
	return line
}
