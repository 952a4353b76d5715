package physics

import (
	"errors"
	"math"

	"github.com/lao-tseu-is-alive/go-boids-arena/pkg/geometry"
)

// ErrInvalidMass is returned when a body is created with a non-positive mass.
var ErrInvalidMass = errors.New("body mass must be positive")

// Body is a point mass integrated with semi-implicit Euler.
// Forces accumulate between steps and are cleared by Integrate.
type Body struct {
	Position geometry.Vector3
	Velocity geometry.Vector3
	Rotation geometry.Quaternion

	mass          float64
	invMass       float64
	linearDamping float64
	force         geometry.Vector3
}

// NewBody creates a body at rest at pos.
// linearDamping is the fraction of velocity lost per second, in [0, 1].
func NewBody(mass, linearDamping float64, pos geometry.Vector3) (*Body, error) {
	if mass <= 0 || math.IsNaN(mass) {
		return nil, ErrInvalidMass
	}
	return &Body{
		Position:      pos,
		Rotation:      geometry.Identity,
		mass:          mass,
		invMass:       1 / mass,
		linearDamping: clamp01(linearDamping),
	}, nil
}

// Mass returns the body mass.
func (b *Body) Mass() float64 { return b.mass }

// LinearDamping returns the per-second velocity loss fraction.
func (b *Body) LinearDamping() float64 { return b.linearDamping }

// ApplyForce adds f to the force accumulated for the next Integrate call.
func (b *Body) ApplyForce(f geometry.Vector3) {
	b.force = b.force.Add(f)
}

// PendingForce returns the force accumulated since the last step.
func (b *Body) PendingForce() geometry.Vector3 { return b.force }

// Integrate advances the body by dt seconds:
// v += F/m*dt, v *= (1-damping)^dt, p += v*dt.
// The accumulated force is consumed even when dt is zero.
func (b *Body) Integrate(dt float64) {
	if dt > 0 {
		b.Velocity = b.Velocity.Add(b.force.Mul(b.invMass * dt))
		if b.linearDamping > 0 {
			b.Velocity = b.Velocity.Mul(math.Pow(1-b.linearDamping, dt))
		}
		b.Position = b.Position.Add(b.Velocity.Mul(dt))
	}
	b.force = geometry.Vector3{}
}

// State captures the kinematic state for rollback.
type State struct {
	Position geometry.Vector3
	Velocity geometry.Vector3
	Rotation geometry.Quaternion
}

// Save returns the current kinematic state.
func (b *Body) Save() State {
	return State{Position: b.Position, Velocity: b.Velocity, Rotation: b.Rotation}
}

// Restore resets the kinematic state and drops any pending force.
func (b *Body) Restore(s State) {
	b.Position = s.Position
	b.Velocity = s.Velocity
	b.Rotation = s.Rotation
	b.force = geometry.Vector3{}
}

func clamp01(f float64) float64 {
	switch {
	case math.IsNaN(f), f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
