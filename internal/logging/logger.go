// Package logging builds the hclog loggers used by the gamesave CLI.
//
// Library packages never create loggers themselves; they accept an
// hclog.Logger through options and default to hclog.NewNullLogger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	// EnvLogLevel selects the log level when no flag overrides it.
	EnvLogLevel = "GAMESAVE_LOG_LEVEL"
	// EnvJSONLog switches to JSON output when set to "1".
	EnvJSONLog = "GAMESAVE_JSON_LOG"

	// DefaultLevel is used when neither a flag nor EnvLogLevel is set.
	DefaultLevel = "warn"

	linePrefix = "[gamesave] "
)

// NewLogger creates a new hclog logger with standard settings.
//
// A nil output writes to os.Stderr. Text output gets a line prefix; JSON output
// is left untouched so it stays machine readable.
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	jsonFormat := os.Getenv(EnvJSONLog) == "1"
	if !jsonFormat {
		output = NewPrefixWriter(linePrefix, output)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// GetLogLevel returns the level from EnvLogLevel, or DefaultLevel when unset.
func GetLogLevel() string {
	if level := os.Getenv(EnvLogLevel); level != "" {
		return level
	}

	return DefaultLevel
}
