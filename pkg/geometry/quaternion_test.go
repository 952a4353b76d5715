package geometry

import (
	"math"
	"testing"
)

func TestFromAngleAxis(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		axis  Vector3
		in    Vector3
		want  Vector3
	}{
		{"Zero angle", 0, Up, Vector3{1, 2, 3}, Vector3{1, 2, 3}},
		{"Quarter turn around Y", math.Pi / 2, Up, Forward, Right},
		{"Half turn around Y", math.Pi, Up, Forward, Forward.Neg()},
		{"Quarter turn around X", math.Pi / 2, Right, Up, Forward},
		{"Unnormalized axis", math.Pi / 2, Vector3{0, 5, 0}, Forward, Right},
		{"Degenerate axis is identity", math.Pi / 2, Zero, Forward, Forward},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := FromAngleAxis(tt.angle, tt.axis)
			if got := q.Rotate(tt.in); !got.EqTol(tt.want, 1e-12) {
				t.Errorf("FromAngleAxis(%v, %v).Rotate(%v) = %v; want %v", tt.angle, tt.axis, tt.in, got, tt.want)
			}
			if !floatEquals(q.Len(), 1) {
				t.Errorf("rotation is not unit length: %v", q.Len())
			}
		})
	}
}

func TestFromEuler(t *testing.T) {
	t.Run("Zero is identity", func(t *testing.T) {
		if got := FromEuler(0, 0, 0); !got.Eq(Identity) {
			t.Errorf("FromEuler(0,0,0) = %v; want identity", got)
		}
	})

	t.Run("Yaw turns forward to the side", func(t *testing.T) {
		got := FromEuler(0, 90, 0).Rotate(Forward)
		if !got.EqTol(Right, 1e-12) {
			t.Errorf("yaw 90 forward = %v; want %v", got, Right)
		}
	})

	t.Run("Pitch tilts forward vertically", func(t *testing.T) {
		got := FromEuler(90, 0, 0).Rotate(Forward)
		if !got.EqTol(Vector3{0, -1, 0}, 1e-12) {
			t.Errorf("pitch 90 forward = %v; want (0,-1,0)", got)
		}
	})

	t.Run("Yaw applied after pitch", func(t *testing.T) {
		// pitch first tilts forward down, yaw then spins around world up
		got := FromEuler(90, 90, 0).Rotate(Forward)
		if !got.EqTol(Vector3{0, -1, 0}, 1e-12) {
			t.Errorf("pitch 90 yaw 90 forward = %v; want (0,-1,0)", got)
		}
		got = FromEuler(90, 90, 0).Rotate(Up)
		if !got.EqTol(Right, 1e-12) {
			t.Errorf("pitch 90 yaw 90 up = %v; want %v", got, Right)
		}
	})
}

func TestQuaternion_Conjugate(t *testing.T) {
	q := FromEuler(30, 45, 10)
	v := Vector3{1, 2, 3}
	got := q.Conjugate().Rotate(q.Rotate(v))
	if !got.EqTol(v, 1e-12) {
		t.Errorf("conjugate did not undo rotation: %v; want %v", got, v)
	}
}

func TestQuaternion_Normalize(t *testing.T) {
	q := Quaternion{W: 2}
	if got := q.Normalize(); !got.Eq(Identity) {
		t.Errorf("Normalize = %v; want identity", got)
	}
	if got := (Quaternion{}).Normalize(); !got.Eq(Identity) {
		t.Errorf("Normalize(zero) = %v; want identity", got)
	}
}

func TestQuaternion_IsFinite(t *testing.T) {
	if !Identity.IsFinite() {
		t.Error("identity reported non-finite")
	}
	if (Quaternion{W: math.NaN()}).IsFinite() {
		t.Error("NaN quaternion reported finite")
	}
}
