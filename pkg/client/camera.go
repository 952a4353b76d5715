package client

import (
	"math"

	"github.com/lao-tseu-is-alive/go-boids-arena/pkg/geometry"
)

const (
	DefaultSensitivity    = 0.1
	DefaultFollowDistance = 20.0
	DefaultFreeSpeed      = 20.0
	MaxPitch              = 90.0
)

// Camera is the local viewpoint. It flies freely until the client owns an
// object, then trails behind it.
type Camera struct {
	Position       geometry.Vector3
	Yaw, Pitch     float64 // degrees
	Sensitivity    float64 // degrees per pixel of mouse motion
	FollowDistance float64
	FreeSpeed      float64 // units per second
}

func NewCamera(pos geometry.Vector3) *Camera {
	return &Camera{
		Position:       pos,
		Sensitivity:    DefaultSensitivity,
		FollowDistance: DefaultFollowDistance,
		FreeSpeed:      DefaultFreeSpeed,
	}
}

// Look turns the camera by a mouse delta in pixels. Pitch stays within ±90°.
func (c *Camera) Look(dx, dy float64) {
	c.Yaw = math.Mod(c.Yaw+dx*c.Sensitivity, 360)
	c.Pitch = math.Max(-MaxPitch, math.Min(MaxPitch, c.Pitch+dy*c.Sensitivity))
}

// Rotation returns the camera orientation.
func (c *Camera) Rotation() geometry.Quaternion {
	return geometry.FromEuler(c.Pitch, c.Yaw, 0)
}

// Forward returns the unit view direction.
func (c *Camera) Forward() geometry.Vector3 {
	return c.Rotation().Rotate(geometry.Forward)
}

// MoveFree flies the camera for dt seconds along its own axes.
func (c *Camera) MoveFree(in InputState, dt float64) {
	var local geometry.Vector3
	if in.Forward {
		local = local.Add(geometry.Forward)
	}
	if in.Back {
		local = local.Sub(geometry.Forward)
	}
	if in.Right {
		local = local.Add(geometry.Right)
	}
	if in.Left {
		local = local.Sub(geometry.Right)
	}
	if in.Up {
		local = local.Add(geometry.Up)
	}
	if in.Down {
		local = local.Sub(geometry.Up)
	}
	if local.IsZero() {
		return
	}
	step := c.Rotation().Rotate(local.Normalize()).Mul(c.FreeSpeed * dt)
	c.Position = c.Position.Add(step)
}

// Follow places the camera FollowDistance behind target along the view direction.
func (c *Camera) Follow(target geometry.Vector3) {
	c.Position = target.Sub(c.Forward().Mul(c.FollowDistance))
}
