package simulation

import (
	"errors"
	"io"
	"testing"

	golog "github.com/tochemey/goakt/v3/log"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name string
		want golog.Level
	}{
		{"debug", golog.DebugLevel},
		{"info", golog.InfoLevel},
		{"", golog.InfoLevel},
		{"WARN", golog.WarningLevel},
		{"error", golog.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLogLevel(tt.name)
			if err != nil {
				t.Fatalf("ParseLogLevel(%q): %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v; want %v", tt.name, got, tt.want)
			}
		})
	}
	if _, err := ParseLogLevel("loud"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ParseLogLevel(loud) err = %v; want ErrInvalidConfig", err)
	}
}

func TestNewLogger(t *testing.T) {
	if _, err := NewLogger("info", io.Discard); err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if _, err := NewLogger("nope", io.Discard); err == nil {
		t.Fatal("NewLogger accepted an unknown level")
	}
}
