// Package logging holds helpers shared by the zerolog loggers of each
// component.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a child of the global logger with a component identifier.
func Component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
