package adapters

import (
	"github.com/rs/zerolog/log"

	"cran-recipes/internal/ports"
)

// ConsoleLogAdapter reports pipeline progress through the global
// zerolog logger.
type ConsoleLogAdapter struct{}

func NewConsoleLogAdapter() ConsoleLogAdapter {
	return ConsoleLogAdapter{}
}

func (a ConsoleLogAdapter) Msg(text string) {
	log.Info().Msg(text)
}

var _ ports.ConsolePort = ConsoleLogAdapter{}
