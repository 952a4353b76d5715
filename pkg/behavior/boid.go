package behavior

import (
	"math"

	"github.com/lao-tseu-is-alive/go-boids-arena/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-boids-arena/pkg/physics"
)

// Boid represents a single entity in the flock.
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds, and related group motion.
// The name "boid" corresponds to a shortened version of "bird-oid object".
// https://en.wikipedia.org/wiki/Boids
//
// Position, velocity and orientation live in the embedded physics body.
// Force is the steering force computed for the current tick; it is written by
// ComputeForce and consumed by Integrate.
type Boid struct {
	Body  physics.Body
	Force geometry.Vector3
}

// Settings holds the steering model and motion constraints of a flock.
// A copy travels with each flock so flocks can be tuned independently.
type Settings struct {
	RangeAttract float64 `json:"rangeAttract" yaml:"rangeAttract"` // cohesion neighborhood
	RangeRepel   float64 `json:"rangeRepel" yaml:"rangeRepel"`     // separation neighborhood
	RangeAlign   float64 `json:"rangeAlign" yaml:"rangeAlign"`     // alignment neighborhood

	MaxAttractSpeed float64 `json:"maxAttractSpeed" yaml:"maxAttractSpeed"`
	AttractGain     float64 `json:"attractGain" yaml:"attractGain"`
	RepelGain       float64 `json:"repelGain" yaml:"repelGain"`
	AlignGain       float64 `json:"alignGain" yaml:"alignGain"`

	MinSpeed float64 `json:"minSpeed" yaml:"minSpeed"`
	MaxSpeed float64 `json:"maxSpeed" yaml:"maxSpeed"`
	FloorY   float64 `json:"floorY" yaml:"floorY"`
	CeilingY float64 `json:"ceilingY" yaml:"ceilingY"`

	Mass float64 `json:"mass" yaml:"mass"`
}

// DefaultSettings returns the tuning used by every flock of the sample arena.
func DefaultSettings() Settings {
	return Settings{
		RangeAttract:    75,
		RangeRepel:      20,
		RangeAlign:      5,
		MaxAttractSpeed: 2,
		AttractGain:     5,
		RepelGain:       7,
		AlignGain:       4,
		MinSpeed:        10,
		MaxSpeed:        50,
		FloorY:          10,
		CeilingY:        50,
		Mass:            1,
	}
}

// New creates a boid at pos moving with vel. The body has no damping, flocks
// fly without gravity or drag.
func New(pos, vel geometry.Vector3, s Settings) (Boid, error) {
	body, err := physics.NewBody(s.Mass, 0, pos)
	if err != nil {
		return Boid{}, err
	}
	body.Velocity = vel
	return Boid{Body: *body}, nil
}

// Position returns the boid's current position.
func (b *Boid) Position() geometry.Vector3 { return b.Body.Position }

// Velocity returns the boid's current linear velocity.
func (b *Boid) Velocity() geometry.Vector3 { return b.Body.Velocity }

// Orientation returns the boid's current facing.
func (b *Boid) Orientation() geometry.Quaternion { return b.Body.Rotation }

// ComputeForce returns the steering force for flock[self] from every other
// member of flock. The boid identifies itself by index, so two boids sharing a
// position still see each other.
//
// The alignment term reuses the direction toward the neighborhood center of
// mass rather than an average heading. When there are alignment neighbors but
// no cohesion neighbors that direction is zero.
//
// Complexity is O(len(flock)).
func ComputeForce(flock []Boid, self int, s Settings) geometry.Vector3 {
	if self < 0 || self >= len(flock) {
		return geometry.Vector3{}
	}
	me := &flock[self]
	pos := me.Body.Position
	vel := me.Body.Velocity

	var (
		com       geometry.Vector3
		repel     geometry.Vector3
		n, r, a   int
		attractSq = s.RangeAttract * s.RangeAttract
		repelSq   = s.RangeRepel * s.RangeRepel
		alignSq   = s.RangeAlign * s.RangeAlign
	)

	// 1. Scan neighborhood
	for j := range flock {
		if j == self {
			continue
		}
		other := flock[j].Body.Position
		sep := pos.Sub(other)
		dSq := sep.LenSqr()

		if dSq < attractSq {
			com = com.Add(other)
			n++
		}
		// Coincident boids have no separation direction, skip them.
		if dSq < repelSq && dSq > geometry.Epsilon*geometry.Epsilon {
			repel = repel.Add(sep.Mul(1 / dSq))
			r++
		}
		if dSq < alignSq {
			a++
		}
	}

	// 2. Combine
	var force, dir geometry.Vector3
	if n > 0 {
		com = com.Mul(1 / float64(n))
		dir = com.Sub(pos).Normalize()
		desired := dir.Mul(s.MaxAttractSpeed)
		force = force.Add(desired.Sub(vel).Mul(s.AttractGain))
	}
	if r > 0 {
		force = force.Add(repel.Mul(s.RepelGain))
	}
	if a > 0 {
		force = force.Add(dir.Sub(vel.Mul(s.AlignGain)))
	}

	if !force.IsFinite() {
		return geometry.Vector3{}
	}
	return force
}

// Integrate applies the pending force, advances the body by dt seconds and
// enforces the flight envelope: speed in [MinSpeed, MaxSpeed], facing derived
// from velocity, altitude in [FloorY, CeilingY].
// It reports false when the step produced a non-finite state, in which case the
// boid keeps its previous state.
func (b *Boid) Integrate(dt float64, s Settings) bool {
	saved := b.Body.Save()

	b.Body.ApplyForce(b.Force)
	b.Force = geometry.Vector3{}
	b.Body.Integrate(dt)

	b.Body.Velocity = ClampSpeed(b.Body.Velocity, s.MinSpeed, s.MaxSpeed)
	b.Body.Rotation = FacingFromVelocity(b.Body.Velocity, b.Body.Rotation)
	b.Body.Position = ClampAltitude(b.Body.Position, s.FloorY, s.CeilingY)

	if !b.Body.Position.IsFinite() || !b.Body.Velocity.IsFinite() || !b.Body.Rotation.IsFinite() {
		b.Body.Restore(saved)
		return false
	}
	return true
}

// ClampSpeed rescales v so its magnitude lies in [minSpeed, maxSpeed].
// A zero vector has no direction and is returned unchanged.
func ClampSpeed(v geometry.Vector3, minSpeed, maxSpeed float64) geometry.Vector3 {
	speed := v.Len()
	switch {
	case speed < geometry.Epsilon:
		return v
	case speed < minSpeed:
		return v.Mul(minSpeed / speed)
	case speed > maxSpeed:
		return v.Mul(maxSpeed / speed)
	}
	return v
}

// ClampAltitude keeps p.Y within [floor, ceiling]; X and Z are untouched.
func ClampAltitude(p geometry.Vector3, floor, ceiling float64) geometry.Vector3 {
	p.Y = math.Max(floor, math.Min(ceiling, p.Y))
	return p
}

// FacingFromVelocity derives a boid's facing from its velocity: rotation of
// acos(axis·v̂) around axis = -(v̂ × up). prev is returned when the velocity is
// zero or vertical, since the axis is then undefined.
func FacingFromVelocity(v geometry.Vector3, prev geometry.Quaternion) geometry.Quaternion {
	vn := v.Normalize()
	if vn.IsZero() {
		return prev
	}
	axis := vn.Cross(geometry.Up).Neg()
	if axis.LenSqr() < geometry.Epsilon {
		return prev
	}
	dp := math.Max(-1, math.Min(1, axis.Dot(vn)))
	return geometry.FromAngleAxis(math.Acos(dp), axis)
}
