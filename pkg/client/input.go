package client

import (
	"github.com/lao-tseu-is-alive/go-boids-arena/pb"
	"github.com/lao-tseu-is-alive/go-boids-arena/pkg/simulation"
)

// InputState is one frame of held movement keys.
type InputState struct {
	Forward, Back bool
	Left, Right   bool
	Up, Down      bool
}

// Buttons packs the held keys into ControlSnapshot bits.
func (in InputState) Buttons() simulation.Button {
	var b simulation.Button
	set := func(held bool, bit simulation.Button) {
		if held {
			b |= bit
		}
	}
	set(in.Forward, simulation.ButtonForward)
	set(in.Back, simulation.ButtonBack)
	set(in.Left, simulation.ButtonLeft)
	set(in.Right, simulation.ButtonRight)
	set(in.Down, simulation.ButtonDown)
	set(in.Up, simulation.ButtonUp)
	return b
}

// Controls builds the snapshot sent to the server each frame. The camera's
// yaw and pitch steer the owned object.
func Controls(in InputState, cam *Camera) *pb.ControlSnapshot {
	return simulation.ControlSnapshot{
		Buttons: in.Buttons(),
		Yaw:     cam.Yaw,
		Pitch:   cam.Pitch,
	}.ToProto()
}
