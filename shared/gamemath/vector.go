package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// World axes. +Y is up and +Z is the identity forward.
var (
	Up      = mgl64.Vec3{0, 1, 0}
	Down    = mgl64.Vec3{0, -1, 0}
	Forward = mgl64.Vec3{0, 0, 1}
	Right   = mgl64.Vec3{1, 0, 0}
)

// Flatten projects v onto the ground plane.
func Flatten(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], 0, v[2]}
}

// SafeNormalize returns v scaled to unit length, or the zero vector when v has no length.
func SafeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < Epsilon {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// IsZero reports whether every component of v is exactly zero.
func IsZero(v mgl64.Vec3) bool {
	return v == mgl64.Vec3{}
}

// MoveTowards moves current toward target by at most maxDelta. The step is
// measured on the whole vector so no single axis moves further than maxDelta.
func MoveTowards(current, target mgl64.Vec3, maxDelta float64) mgl64.Vec3 {
	delta := target.Sub(current)
	dist := delta.Len()
	if dist <= maxDelta || dist < Epsilon {
		return target
	}
	return current.Add(delta.Mul(maxDelta / dist))
}

// LerpVec3 interpolates from a to b by t clamped to [0, 1].
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(Clamp01(t)))
}

// HorizontalDistance is the distance between a and b ignoring height.
func HorizontalDistance(a, b mgl64.Vec3) float64 {
	return Flatten(b.Sub(a)).Len()
}

// ToLocalSpace maps a 2D input (x right, y forward) into world space using
// forward flattened onto the ground plane as the basis. A forward with no
// horizontal component falls back to the world forward.
func ToLocalSpace(input mgl64.Vec2, forward mgl64.Vec3) mgl64.Vec3 {
	fwd := SafeNormalize(Flatten(forward))
	if IsZero(fwd) {
		fwd = Forward
	}
	right := Up.Cross(fwd)
	return right.Mul(input.X()).Add(fwd.Mul(input.Y()))
}

// NearVec3 reports whether a and b differ by at most tolerance on every axis.
func NearVec3(a, b mgl64.Vec3, tolerance float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tolerance {
			return false
		}
	}
	return true
}
