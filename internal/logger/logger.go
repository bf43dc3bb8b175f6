package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the service logger: human-readable console output in development,
// JSON lines everywhere else.
func New(environment string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	env := strings.ToLower(strings.TrimSpace(environment))
	level := zerolog.InfoLevel
	if env == "development" || env == "dev" || env == "local" {
		level = zerolog.DebugLevel
		writer := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
		return zerolog.New(writer).Level(level).With().Timestamp().Str("service", "obras-portal").Logger()
	}

	return zerolog.New(os.Stdout).Level(level).With().Timestamp().Str("service", "obras-portal").Logger()
}
