package types

// SourceKind identifies where a package's metadata is resolved from.
// Only the forge kind is implemented here; the generic index kind is
// served by a separate resolution path.
type SourceKind string

const (
	SourceKindForge SourceKind = "forge"
	SourceKindIndex SourceKind = "index"
)

type ConstraintOp string

const (
	ConstraintOpNone ConstraintOp = ""
	ConstraintOpEq   ConstraintOp = "=="
	ConstraintOpNe   ConstraintOp = "!="
	ConstraintOpGte  ConstraintOp = ">="
	ConstraintOpLte  ConstraintOp = "<="
	ConstraintOpGt   ConstraintOp = ">"
	ConstraintOpLt   ConstraintOp = "<"
)

// Platform selectors appended to requirement and test command lines.
// The renderer consuming the recipe interprets them; this pipeline
// treats them as opaque suffixes.
const (
	SelectorNotWin     = "# [not win]"
	SelectorWin        = "# [win]"
	SelectorCrossBuild = "# [build_platform != target_platform]"
)
