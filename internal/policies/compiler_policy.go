// Package policies holds packaging decisions that are conventions of
// the target ecosystem rather than facts about the upstream package.
package policies

import (
	"strings"

	"cran-recipes/internal/types"
)

// CompilerPolicy decides the build-requirement block from the
// manifest's compilation flag.
type CompilerPolicy struct{}

func NewCompilerPolicy() CompilerPolicy {
	return CompilerPolicy{}
}

// NeedsCompiler reports whether the NeedsCompilation flag is truthy.
// Only "yes" (case-insensitive) counts; absence reads as "no".
func (p CompilerPolicy) NeedsCompiler(flag string) bool {
	return strings.EqualFold(strings.TrimSpace(flag), "yes")
}

// BuildRequirements returns the build bucket for the given compilation
// flag: the cross-compilation runtime plus C and C++ compilers guarded
// to non-Windows platforms, or nothing when no compilation is needed.
func (p CompilerPolicy) BuildRequirements(flag string) ([]string, bool) {
	if !p.NeedsCompiler(flag) {
		return nil, false
	}
	return []string{
		"cross-r-base {{ r_base }}  " + types.SelectorCrossBuild,
		"{{ compiler('c') }}  " + types.SelectorNotWin,
		"{{ compiler('cxx') }}  " + types.SelectorNotWin,
	}, true
}
