package simulation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ":2345", cfg.ListenAddr)
	assert.InDelta(t, 1.0/60, cfg.TickInterval(), 1e-12)
}

func TestLoadConfig_SampleYAML(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "..", "configs", "arena.yaml"), "")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.NumFlocks)
	assert.Equal(t, 20, cfg.NumBoids)
	assert.Equal(t, "data/events", cfg.EventLogDir)
	assert.Equal(t, DefaultConfig().Behavior, cfg.Behavior)
}

func TestLoadConfig_PartialJSONKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "arena.json", `{"numBoids": 7, "behavior": {"maxSpeed": 30}}`)
	cfg, err := LoadConfig(path, "")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.NumBoids)
	assert.Equal(t, 5, cfg.NumFlocks)
	assert.Equal(t, 30.0, cfg.Behavior.MaxSpeed)
	assert.Equal(t, 10.0, cfg.Behavior.MinSpeed)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		invalid bool // cross-field rule rather than schema
	}{
		{"Unknown key", "a.json", `{"numBirds": 3}`, false},
		{"Zero boids", "a.json", `{"numBoids": 0}`, false},
		{"Wrong type", "a.yaml", "tickRateHz: fast\n", false},
		{"Bad log level", "a.yaml", "logLevel: loud\n", false},
		{"Min speed above max", "a.yaml", "behavior:\n  minSpeed: 60\n", true},
		{"Align wider than attract", "a.json", `{"behavior": {"rangeAlign": 80}}`, true},
		{"Inverted spawn box", "a.json", `{"spawnMin": {"x": 50}}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.file, tt.content), "")
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), "")
	require.Error(t, err)
}

func TestConfig_SettingsFor(t *testing.T) {
	cfg := DefaultConfig()
	custom := cfg.Behavior
	custom.RepelGain = 1
	cfg.FlockSettings = append(cfg.FlockSettings, custom)
	assert.Equal(t, custom, cfg.SettingsFor(0))
	assert.Equal(t, cfg.Behavior, cfg.SettingsFor(1))
	assert.Equal(t, cfg.Behavior, cfg.SettingsFor(-1))
}

func TestConfig_YAML(t *testing.T) {
	b, err := DefaultConfig().YAML()
	require.NoError(t, err)
	assert.Contains(t, string(b), "numFlocks: 5")
	assert.Contains(t, string(b), "listenAddr: :2345")
}
