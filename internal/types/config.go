package types

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Config describes a single resolution request.  It is read-only to
// the pipeline: every stage receives it by value and no stage mutates
// it.
type Config struct {
	// Kind selects the source variant.  Empty defaults to the forge
	// variant.
	Kind SourceKind

	// URL is the forge repository URL, e.g.
	// https://github.com/tidyverse/dplyr.
	URL string

	// Version is the requested upstream version.  Empty means "latest
	// tag on the forge".
	Version string

	// OutputDir is where the rendered recipe directory is written.
	// Empty means the recipe is assembled but not written.
	OutputDir string
}

// Validate checks the request before any pipeline stage runs.
func (c Config) Validate() error {
	if c.URL == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("forge url is required")
	}
	switch c.Kind {
	case "", SourceKindForge, SourceKindIndex:
		return nil
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown source kind: %s", c.Kind))
	}
}
