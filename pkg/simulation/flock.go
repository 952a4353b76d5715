package simulation

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-boids-arena/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boids-arena/pkg/geometry"
)

var (
	ErrPopulationMismatch = errors.New("population size does not match configured flock size")
	ErrNegativeTimeStep   = errors.New("time step must not be negative")
)

// Volume is an axis-aligned box, Min inclusive and Max exclusive.
type Volume struct {
	Min, Max geometry.Vector3
}

// Sample returns a uniformly distributed point of the volume.
func (v Volume) Sample(rng *rand.Rand) geometry.Vector3 {
	return geometry.Vector3{
		X: v.Min.X + rng.Float64()*(v.Max.X-v.Min.X),
		Y: v.Min.Y + rng.Float64()*(v.Max.Y-v.Min.Y),
		Z: v.Min.Z + rng.Float64()*(v.Max.Z-v.Min.Z),
	}
}

// Flock is a fixed-size arena of boids sharing one set of steering rules.
// A boid is identified by its index, which never changes.
type Flock struct {
	ID       int
	Settings behavior.Settings
	Boids    []behavior.Boid

	// rejected counts integration steps rolled back for non-finite results.
	rejected int
}

// InitializeFlock creates flock id with size boids placed at random inside
// spawn, with initial velocities drawn from the configured velocity range.
// size must equal cfg.NumBoids.
func InitializeFlock(id, size int, spawn Volume, cfg *Config, rng *rand.Rand) (*Flock, error) {
	if size != cfg.NumBoids {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrPopulationMismatch, size, cfg.NumBoids)
	}
	settings := cfg.SettingsFor(id)
	velocities := Volume{Min: cfg.VelocityMin, Max: cfg.VelocityMax}

	f := &Flock{
		ID:       id,
		Settings: settings,
		Boids:    make([]behavior.Boid, size),
	}
	for i := range f.Boids {
		b, err := behavior.New(spawn.Sample(rng), velocities.Sample(rng), settings)
		if err != nil {
			return nil, fmt.Errorf("flock %d boid %d: %w", id, i, err)
		}
		f.Boids[i] = b
	}
	return f, nil
}

// NewFlock wraps pre-built boids, used for scripted scenarios and tests.
func NewFlock(id int, settings behavior.Settings, boids []behavior.Boid) *Flock {
	return &Flock{ID: id, Settings: settings, Boids: boids}
}

// Update advances the flock by dt seconds in two phases: every steering
// force is computed from the unmodified arena, then every boid integrates.
func (f *Flock) Update(dt float64) error {
	if dt < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeTimeStep, dt)
	}
	f.computeForces()
	f.integrate(dt)
	return nil
}

func (f *Flock) computeForces() {
	for i := range f.Boids {
		f.Boids[i].Force = behavior.ComputeForce(f.Boids, i, f.Settings)
	}
}

func (f *Flock) integrate(dt float64) {
	for i := range f.Boids {
		if !f.Boids[i].Integrate(dt, f.Settings) {
			f.rejected++
		}
	}
}

// Len returns the flock population.
func (f *Flock) Len() int { return len(f.Boids) }

// Rejected returns how many boid steps were rolled back since creation.
func (f *Flock) Rejected() int { return f.rejected }
