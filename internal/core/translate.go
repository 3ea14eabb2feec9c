package core

import (
	"sort"
	"strings"

	"cran-recipes/internal/shared"
	"cran-recipes/internal/types"
)

// TranslateField translates every comma-separated token of a native
// dependency field. Blank tokens and an entirely empty field produce
// zero entries; a missing field reads as empty upstream and is treated
// the same way.
func TranslateField(field string, source string) ([]types.RequirementSpec, error) {
	var specs []types.RequirementSpec
	for _, token := range strings.Split(field, ",") {
		if strings.TrimSpace(token) == "" {
			continue
		}
		constraint, err := ParseDependencyEntry(token, source)
		if err != nil {
			return nil, err
		}
		specs = append(specs, TranslateConstraint(constraint))
	}
	return specs, nil
}

// TranslateManifestRequirements builds the host/run requirement set
// from the manifest's Depends and Imports fields. The R runtime itself
// is always injected once, carrying the version clause of an explicit
// "R (>= x)" entry in Depends when one is declared. The result is
// deduplicated over the union of all fields and sorted.
func TranslateManifestRequirements(manifest types.NativeManifest) ([]string, error) {
	base := types.RequirementSpec{Name: shared.BasePackage}

	var specs []types.RequirementSpec
	for _, source := range []string{"Depends", "Imports"} {
		for _, token := range strings.Split(manifest.Get(source), ",") {
			if strings.TrimSpace(token) == "" {
				continue
			}
			constraint, err := ParseDependencyEntry(token, source)
			if err != nil {
				return nil, err
			}
			spec := TranslateConstraint(constraint)
			if constraint.Name == "R" || shared.NormalizeRName(constraint.Name) == shared.BasePackage {
				// An explicit runtime entry pins the r-base clause
				// instead of adding a second requirement.
				if spec.Clause != "" {
					base.Clause = spec.Clause
				}
				continue
			}
			specs = append(specs, spec)
		}
	}
	specs = append(specs, base)

	seen := map[string]struct{}{}
	var out []string
	for _, spec := range specs {
		rendered := spec.String()
		if _, ok := seen[rendered]; ok {
			continue
		}
		seen[rendered] = struct{}{}
		out = append(out, rendered)
	}
	sort.Strings(out)
	return out, nil
}
