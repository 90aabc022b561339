package logger

import (
	"cmsenrich/internal/config"

	"github.com/rs/zerolog"
)

// New creates a new zerolog logger from the application log configuration
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	return NewLoggerBuilder().WithConfig(cfg).Build()
}
