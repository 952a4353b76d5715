package simulation

import (
	"github.com/lao-tseu-is-alive/go-boids-arena/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-boids-arena/pkg/physics"
)

// Button is a bit of ControlSnapshot.Buttons.
type Button uint32

const (
	ButtonForward Button = 1 << 0
	ButtonBack    Button = 1 << 1
	ButtonLeft    Button = 1 << 2
	ButtonRight   Button = 1 << 3
	ButtonDown    Button = 1 << 4 // sampled and replicated, no thrust
	ButtonUp      Button = 1 << 5
)

// ControlSnapshot is the latest input sample of one connection.
// Yaw and Pitch are in degrees.
type ControlSnapshot struct {
	Buttons Button
	Yaw     float64
	Pitch   float64
}

// Has reports whether button b is held.
func (c ControlSnapshot) Has(b Button) bool {
	return c.Buttons&b != 0
}

// Rotation returns the body rotation requested by the snapshot, roll fixed to zero.
func (c ControlSnapshot) Rotation() geometry.Quaternion {
	return geometry.FromEuler(c.Pitch, c.Yaw, 0)
}

// Thrust returns the world-space force requested by the held buttons.
// Forward, back and up push with moveForce, strafing with moveForce*strafeFactor.
func (c ControlSnapshot) Thrust(moveForce, strafeFactor float64) geometry.Vector3 {
	rot := c.Rotation()
	strafe := moveForce * strafeFactor

	var local geometry.Vector3
	if c.Has(ButtonForward) {
		local = local.Add(geometry.Forward.Mul(moveForce))
	}
	if c.Has(ButtonBack) {
		local = local.Add(geometry.Forward.Mul(-moveForce))
	}
	if c.Has(ButtonLeft) {
		local = local.Add(geometry.Right.Mul(-strafe))
	}
	if c.Has(ButtonRight) {
		local = local.Add(geometry.Right.Mul(strafe))
	}
	if c.Has(ButtonUp) {
		local = local.Add(geometry.Up.Mul(moveForce))
	}
	return rot.Rotate(local)
}

// applyControls orients body as requested and queues the thrust force.
func applyControls(body *physics.Body, c ControlSnapshot, p PlayerConfig) {
	body.Rotation = c.Rotation()
	body.ApplyForce(c.Thrust(p.MoveForce, p.StrafeFactor))
}
