package geometry

import (
	"fmt"
	"math"
)

// Quaternion is a rotation stored as W + Xi + Yj + Zk.
// The zero value is not a valid rotation, use Identity.
type Quaternion struct {
	W float64 `json:"w" yaml:"w"`
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Identity is the rotation that leaves every vector unchanged.
var Identity = Quaternion{W: 1}

// FromAngleAxis builds a rotation of angle radians around axis.
// The axis is normalized; a degenerate axis yields Identity.
func FromAngleAxis(angle float64, axis Vector3) Quaternion {
	n := axis.Normalize()
	if n.IsZero() {
		return Identity
	}
	half := angle / 2
	s := math.Sin(half)
	return Quaternion{W: math.Cos(half), X: n.X * s, Y: n.Y * s, Z: n.Z * s}
}

// FromEuler builds a rotation from pitch (around X), yaw (around Y) and roll
// (around Z), all in degrees. Applied as yaw, then pitch, then roll.
func FromEuler(pitch, yaw, roll float64) Quaternion {
	p := FromAngleAxis(pitch*math.Pi/180, Right)
	y := FromAngleAxis(yaw*math.Pi/180, Up)
	r := FromAngleAxis(roll*math.Pi/180, Forward)
	return y.Mul(p).Mul(r)
}

// Mul returns the Hamilton product q*o, i.e. rotation o followed by q.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
	}
}

// Conjugate returns the inverse rotation for a unit quaternion.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Len returns the quaternion norm.
func (q Quaternion) Len() float64 {
	return math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// Normalize returns the unit quaternion, or Identity when the norm is degenerate.
func (q Quaternion) Normalize() Quaternion {
	l := q.Len()
	if l < Epsilon {
		return Identity
	}
	return Quaternion{W: q.W / l, X: q.X / l, Y: q.Y / l, Z: q.Z / l}
}

// Rotate applies the rotation to v.
func (q Quaternion) Rotate(v Vector3) Vector3 {
	u := Vector3{q.X, q.Y, q.Z}
	// v' = v + 2w(u×v) + 2u×(u×v)
	t := u.Cross(v).Mul(2)
	return v.Add(t.Mul(q.W)).Add(u.Cross(t))
}

// IsFinite reports whether no component is NaN or infinite.
func (q Quaternion) IsFinite() bool {
	return isFinite(q.W) && isFinite(q.X) && isFinite(q.Y) && isFinite(q.Z)
}

// Eq compares two rotations component-wise within Epsilon.
// q and -q describe the same rotation but are not considered equal here.
func (q Quaternion) Eq(o Quaternion) bool {
	return math.Abs(q.W-o.W) <= Epsilon &&
		math.Abs(q.X-o.X) <= Epsilon &&
		math.Abs(q.Y-o.Y) <= Epsilon &&
		math.Abs(q.Z-o.Z) <= Epsilon
}

func (q Quaternion) String() string {
	return fmt.Sprintf("[%.3f, %.3f, %.3f, %.3f]", q.W, q.X, q.Y, q.Z)
}
