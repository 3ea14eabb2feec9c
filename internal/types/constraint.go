package types

// Constraint is one parsed native dependency entry: the upstream name
// and an optional comparison clause.  Source records which manifest
// field the entry came from.
type Constraint struct {
	Name    string
	Op      ConstraintOp
	Version string
	Source  string
}

// RequirementSpec is a translated dependency in the target ecosystem:
// a namespaced lower-case package name plus an optional comparison
// clause with no whitespace between operator and version.
type RequirementSpec struct {
	Name   string
	Clause string
}

// String renders the requirement the way it appears in a recipe,
// e.g. "r-dplyr >=1.0.0" or just "r-ggplot2".
func (r RequirementSpec) String() string {
	if r.Clause == "" {
		return r.Name
	}
	return r.Name + " " + r.Clause
}
