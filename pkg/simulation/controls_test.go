package simulation

import (
	"testing"

	"github.com/lao-tseu-is-alive/go-boids-arena/pkg/geometry"
)

func TestControlSnapshot_Thrust(t *testing.T) {
	tests := []struct {
		name string
		c    ControlSnapshot
		want geometry.Vector3
	}{
		{"Nothing held", ControlSnapshot{}, geometry.Vector3{}},
		{"Forward", ControlSnapshot{Buttons: ButtonForward}, geometry.Vector3{Z: 50}},
		{"Back", ControlSnapshot{Buttons: ButtonBack}, geometry.Vector3{Z: -50}},
		{"Forward and back cancel", ControlSnapshot{Buttons: ButtonForward | ButtonBack}, geometry.Vector3{}},
		{"Strafe left is half force", ControlSnapshot{Buttons: ButtonLeft}, geometry.Vector3{X: -25}},
		{"Strafe right is half force", ControlSnapshot{Buttons: ButtonRight}, geometry.Vector3{X: 25}},
		{"Up", ControlSnapshot{Buttons: ButtonUp}, geometry.Vector3{Y: 50}},
		{"Down has no thrust", ControlSnapshot{Buttons: ButtonDown}, geometry.Vector3{}},
		{"Forward yawed 90", ControlSnapshot{Buttons: ButtonForward, Yaw: 90}, geometry.Vector3{X: 50}},
		{"Up follows pitch", ControlSnapshot{Buttons: ButtonUp, Pitch: 90}, geometry.Vector3{Z: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Thrust(50, 0.5); !got.EqTol(tt.want, 1e-9) {
				t.Errorf("Thrust() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestControlSnapshot_Has(t *testing.T) {
	c := ControlSnapshot{Buttons: ButtonLeft | ButtonUp}
	if !c.Has(ButtonLeft) || !c.Has(ButtonUp) {
		t.Error("held buttons not reported")
	}
	if c.Has(ButtonForward) || c.Has(ButtonDown) {
		t.Error("released buttons reported as held")
	}
}
