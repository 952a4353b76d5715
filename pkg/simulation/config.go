package simulation

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lao-tseu-is-alive/go-boids-arena/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boids-arena/pkg/geometry"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed config.schema.json
var configSchema string

// ErrInvalidConfig wraps every cross-field validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// PlayerConfig tunes the controllable object created for a ready client.
type PlayerConfig struct {
	Mass          float64          `json:"mass" yaml:"mass"`
	LinearDamping float64          `json:"linearDamping" yaml:"linearDamping"`
	MoveForce     float64          `json:"moveForce" yaml:"moveForce"`       // forward, back and up
	StrafeFactor  float64          `json:"strafeFactor" yaml:"strafeFactor"` // left/right = MoveForce*StrafeFactor
	Spawn         geometry.Vector3 `json:"spawn" yaml:"spawn"`
}

type Config struct {
	// Network
	ListenAddr string `json:"listenAddr" yaml:"listenAddr"`

	// Timing
	TickRateHz    float64 `json:"tickRateHz" yaml:"tickRateHz"`
	FixedTimeStep bool    `json:"fixedTimeStep" yaml:"fixedTimeStep"` // false: dt is measured wall time

	// Population
	NumFlocks int `json:"numFlocks" yaml:"numFlocks"`
	NumBoids  int `json:"numBoids" yaml:"numBoids"` // per flock

	// Spawn volume and initial velocity range, min inclusive, max exclusive
	SpawnMin    geometry.Vector3 `json:"spawnMin" yaml:"spawnMin"`
	SpawnMax    geometry.Vector3 `json:"spawnMax" yaml:"spawnMax"`
	VelocityMin geometry.Vector3 `json:"velocityMin" yaml:"velocityMin"`
	VelocityMax geometry.Vector3 `json:"velocityMax" yaml:"velocityMax"`

	// Flocking. FlockSettings, when present, overrides Behavior per flock index.
	Behavior      behavior.Settings   `json:"behavior" yaml:"behavior"`
	FlockSettings []behavior.Settings `json:"flockSettings,omitempty" yaml:"flockSettings,omitempty"`

	// Capture
	CaptureHalfExtent float64          `json:"captureHalfExtent" yaml:"captureHalfExtent"`
	RemovedPosition   geometry.Vector3 `json:"removedPosition" yaml:"removedPosition"`

	Player PlayerConfig `json:"player" yaml:"player"`

	// Ambient
	LogLevel    string `json:"logLevel" yaml:"logLevel"`
	EventLogDir string `json:"eventLogDir" yaml:"eventLogDir"` // empty disables the capture event log
	ScoreDBPath string `json:"scoreDBPath" yaml:"scoreDBPath"` // empty disables the capture tally
}

func DefaultConfig() *Config {
	return &Config{
		ListenAddr:        ":2345",
		TickRateHz:        60,
		FixedTimeStep:     true,
		NumFlocks:         5,
		NumBoids:          20,
		SpawnMin:          geometry.Vector3{X: -30, Y: 20, Z: -30},
		SpawnMax:          geometry.Vector3{X: 30, Y: 30, Z: 30},
		VelocityMin:       geometry.Vector3{X: -20, Y: 0, Z: -20},
		VelocityMax:       geometry.Vector3{X: 0, Y: 0, Z: 0},
		Behavior:          behavior.DefaultSettings(),
		CaptureHalfExtent: 5,
		RemovedPosition:   geometry.Vector3{X: 0, Y: -1000, Z: 0},
		Player: PlayerConfig{
			Mass:          3,
			LinearDamping: 0.95,
			MoveForce:     50,
			StrafeFactor:  0.5,
			Spawn:         geometry.Vector3{X: 0, Y: 5, Z: 0},
		},
		LogLevel: "info",
	}
}

// SettingsFor returns the flocking settings of flock id.
func (c *Config) SettingsFor(id int) behavior.Settings {
	if id >= 0 && id < len(c.FlockSettings) {
		return c.FlockSettings[id]
	}
	return c.Behavior
}

// TickInterval returns the duration of one fixed step in seconds.
func (c *Config) TickInterval() float64 {
	return 1 / c.TickRateHz
}

// Validate checks the cross-field rules a JSON schema cannot express.
func (c *Config) Validate() error {
	if c.NumFlocks <= 0 || c.NumBoids <= 0 {
		return fmt.Errorf("%w: population must be positive (flocks=%d boids=%d)", ErrInvalidConfig, c.NumFlocks, c.NumBoids)
	}
	if c.TickRateHz <= 0 {
		return fmt.Errorf("%w: tickRateHz must be positive", ErrInvalidConfig)
	}
	if c.CaptureHalfExtent < 0 {
		return fmt.Errorf("%w: captureHalfExtent must not be negative", ErrInvalidConfig)
	}
	if c.Player.Mass <= 0 {
		return fmt.Errorf("%w: player mass must be positive", ErrInvalidConfig)
	}
	if c.SpawnMin.X > c.SpawnMax.X || c.SpawnMin.Y > c.SpawnMax.Y || c.SpawnMin.Z > c.SpawnMax.Z {
		return fmt.Errorf("%w: spawnMin %s exceeds spawnMax %s", ErrInvalidConfig, c.SpawnMin, c.SpawnMax)
	}
	if c.VelocityMin.X > c.VelocityMax.X || c.VelocityMin.Y > c.VelocityMax.Y || c.VelocityMin.Z > c.VelocityMax.Z {
		return fmt.Errorf("%w: velocityMin %s exceeds velocityMax %s", ErrInvalidConfig, c.VelocityMin, c.VelocityMax)
	}
	if err := validateSettings("behavior", c.Behavior); err != nil {
		return err
	}
	for i, s := range c.FlockSettings {
		if err := validateSettings(fmt.Sprintf("flockSettings[%d]", i), s); err != nil {
			return err
		}
	}
	return nil
}

func validateSettings(name string, s behavior.Settings) error {
	switch {
	case s.Mass <= 0:
		return fmt.Errorf("%w: %s.mass must be positive", ErrInvalidConfig, name)
	case s.MinSpeed > s.MaxSpeed:
		return fmt.Errorf("%w: %s.minSpeed %.2f > maxSpeed %.2f", ErrInvalidConfig, name, s.MinSpeed, s.MaxSpeed)
	case s.FloorY > s.CeilingY:
		return fmt.Errorf("%w: %s.floorY %.2f > ceilingY %.2f", ErrInvalidConfig, name, s.FloorY, s.CeilingY)
	case s.RangeAlign > s.RangeAttract:
		// alignment borrows the cohesion direction, it needs cohesion neighbors
		return fmt.Errorf("%w: %s.rangeAlign %.2f > rangeAttract %.2f", ErrInvalidConfig, name, s.RangeAlign, s.RangeAttract)
	}
	return nil
}

// LoadConfig loads configuration from a JSON or YAML file and validates it
// against the schema. An empty schemaFile uses the embedded schema.
// Keys missing from the file keep their DefaultConfig value.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	var (
		sch *jsonschema.Schema
		err error
	)
	if schemaFile == "" {
		sch, err = jsonschema.CompileString("config.schema.json", configSchema)
	} else {
		sch, err = jsonschema.Compile(schemaFile)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	raw, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	// 3. Normalize to JSON
	b, err := toJSON(configFile, raw)
	if err != nil {
		return nil, err
	}

	// 4. Validate
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 5. Unmarshal into Struct over the defaults
	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// toJSON returns the file contents as JSON, converting YAML documents by extension.
func toJSON(name string, raw []byte) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		var doc interface{}
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode config yaml: %w", err)
		}
		b, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to convert config yaml: %w", err)
		}
		return b, nil
	default:
		return raw, nil
	}
}

// YAML renders the effective configuration, used by -print-config.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
