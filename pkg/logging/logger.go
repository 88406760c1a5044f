// Package logging builds the hclog loggers shared by planetmaker commands.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	// EnvLogLevel overrides the configured log level
	EnvLogLevel = "PLANETMAKER_LOG_LEVEL"
	// EnvJSONLog switches output to JSON when set to 1
	EnvJSONLog = "PLANETMAKER_JSON_LOG"

	DefaultLevel = "warn"
	linePrefix   = "🪐 "
)

// NewLogger creates a new hclog logger with standard settings
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	jsonFormat := os.Getenv(EnvJSONLog) == "1"

	// Human output gets a prefix per line
	if !jsonFormat {
		output = NewPrefixWriter(linePrefix, output)
	}

	opts := &hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	}

	return hclog.New(opts)
}

// ResolveLevel picks the first non-empty of the flag value, the environment and the
// config file value, falling back to warn.
func ResolveLevel(flag, configured string) string {
	for _, level := range []string{flag, os.Getenv(EnvLogLevel), configured} {
		if level = strings.TrimSpace(level); level != "" {
			return level
		}
	}
	return DefaultLevel
}
