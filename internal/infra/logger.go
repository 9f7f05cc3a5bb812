// README: Zerolog setup shared by the API server and the CLI.
package infra

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"farecast/internal/config"
)

// NewLogger builds the process logger and installs it as the global one.
// format "console" selects the human-readable writer; anything else is JSON.
func NewLogger(level, format string) zerolog.Logger {
	var out io.Writer = os.Stderr
	if format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	logger := zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	log.Logger = logger
	return logger
}

// LogConfigWarnings reports what config.Load noticed, once logger exists.
func LogConfigWarnings(logger zerolog.Logger, cfg config.Config) {
	if !cfg.EnvFileLoaded {
		logger.Debug().Msg(".env file not found, relying on process environment")
	}
	for _, w := range cfg.Warnings {
		logger.Warn().Str("setting", w).Msg("invalid environment value, using default")
	}
}
