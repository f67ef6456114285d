package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// YawRotation returns the rotation about the up axis that faces dir on the ground plane.
// A direction with no horizontal component returns the identity.
func YawRotation(dir mgl64.Vec3) mgl64.Quat {
	flat := Flatten(dir)
	if flat.LenSqr() < Epsilon*Epsilon {
		return mgl64.QuatIdent()
	}
	return mgl64.QuatRotate(math.Atan2(flat.X(), flat.Z()), Up)
}

// LookRotation returns the rotation whose forward is dir with no roll.
func LookRotation(dir mgl64.Vec3) mgl64.Quat {
	d := SafeNormalize(dir)
	if IsZero(d) {
		return mgl64.QuatIdent()
	}
	yaw := math.Atan2(d.X(), d.Z())
	pitch := -math.Asin(mgl64.Clamp(d.Y(), -1, 1))
	return mgl64.QuatRotate(yaw, Up).Mul(mgl64.QuatRotate(pitch, Right))
}

// BoomRotation builds a rotation from yaw and pitch given in degrees.
// Positive pitch tips the forward vector downward.
func BoomRotation(yawDeg, pitchDeg float64) mgl64.Quat {
	yaw := mgl64.QuatRotate(mgl64.DegToRad(yawDeg), Up)
	pitch := mgl64.QuatRotate(mgl64.DegToRad(pitchDeg), Right)
	return yaw.Mul(pitch)
}

// ForwardOf returns the forward axis of q.
func ForwardOf(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(Forward)
}

// RightOf returns the right axis of q.
func RightOf(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(Right)
}

// Slerp rotates a toward b by t clamped to [0, 1], always along the shorter arc.
func Slerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	t = Clamp01(t)
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	if t == 1 {
		return b.Normalize()
	}
	return mgl64.QuatSlerp(a, b, t).Normalize()
}

// AngleBetween returns the angle in radians between two rotations.
func AngleBetween(a, b mgl64.Quat) float64 {
	d := math.Abs(a.Normalize().Dot(b.Normalize()))
	return 2 * math.Acos(mgl64.Clamp(d, -1, 1))
}
