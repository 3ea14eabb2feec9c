package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"cran-recipes/internal/shared"
	"cran-recipes/internal/types"
)

// opTokens is the ordered list of constraint operators tried during
// parsing. Longer tokens must precede shorter ones to avoid false matches
// (e.g. ">=" before ">").
var opTokens = []types.ConstraintOp{
	types.ConstraintOpGte,
	types.ConstraintOpLte,
	types.ConstraintOpEq,
	types.ConstraintOpNe,
	types.ConstraintOpGt,
	types.ConstraintOpLt,
}

// ParseDependencyEntry parses one native dependency token of the shape
// "name" or "name (OP VERSION)". Whitespace around and inside the
// parenthesized clause is insignificant.
func ParseDependencyEntry(raw string, source string) (types.Constraint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return types.Constraint{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("empty dependency entry")
	}
	open := strings.Index(raw, "(")
	if open < 0 {
		return types.Constraint{
			Name:   raw,
			Op:     types.ConstraintOpNone,
			Source: source,
		}, nil
	}
	name := strings.TrimSpace(raw[:open])
	clause := raw[open+1:]
	clause = strings.ReplaceAll(clause, ")", "")
	clause = strings.ReplaceAll(clause, " ", "")
	if name == "" || clause == "" {
		return types.Constraint{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid dependency entry: %s", raw))
	}
	for _, op := range opTokens {
		if strings.HasPrefix(clause, string(op)) {
			version := clause[len(op):]
			if version == "" {
				return types.Constraint{}, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("invalid dependency entry: %s", raw))
			}
			return types.Constraint{
				Name:    name,
				Op:      op,
				Version: version,
				Source:  source,
			}, nil
		}
	}
	return types.Constraint{}, errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("unknown constraint operator in: %s", raw))
}

// TranslateConstraint converts a parsed native dependency into the
// target ecosystem's requirement: lower-cased name behind the r-
// namespace prefix, operator concatenated directly against the version.
func TranslateConstraint(c types.Constraint) types.RequirementSpec {
	spec := types.RequirementSpec{
		Name: shared.NamespacePrefix + shared.NormalizeRName(c.Name),
	}
	if c.Op != types.ConstraintOpNone {
		spec.Clause = string(c.Op) + c.Version
	}
	return spec
}
