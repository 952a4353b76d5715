package simulation

import (
	"fmt"
	"io"
	"strings"

	golog "github.com/tochemey/goakt/v3/log"
)

// ParseLogLevel maps a configured level name to the goakt log level.
func ParseLogLevel(name string) (golog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return golog.DebugLevel, nil
	case "", "info":
		return golog.InfoLevel, nil
	case "warn", "warning":
		return golog.WarningLevel, nil
	case "error":
		return golog.ErrorLevel, nil
	}
	return golog.InvalidLevel, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, name)
}

// NewLogger builds the logger shared by the actor system and every component.
func NewLogger(level string, w io.Writer) (golog.Logger, error) {
	lvl, err := ParseLogLevel(level)
	if err != nil {
		return nil, err
	}
	return golog.New(lvl, w), nil
}
