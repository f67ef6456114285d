package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the tolerance used for "close enough" comparisons on poses and timers.
const Epsilon = 1e-9

// NonNegative clamps negative tuning values to zero.
func NonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// Clamp01 clamps t to [0, 1].
func Clamp01(t float64) float64 {
	return mgl64.Clamp(t, 0, 1)
}

// Lerp interpolates from a to b by t clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*Clamp01(t)
}

// MoveTowardsFloat moves current toward target by at most maxDelta.
func MoveTowardsFloat(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	return current + math.Copysign(maxDelta, target-current)
}

// Repeat wraps t into [0, length).
func Repeat(t, length float64) float64 {
	return mgl64.Clamp(t-math.Floor(t/length)*length, 0, length)
}

// DeltaAngle returns the shortest signed difference from current to target in degrees.
func DeltaAngle(current, target float64) float64 {
	delta := Repeat(target-current, 360)
	if delta > 180 {
		delta -= 360
	}
	return delta
}

// LerpAngle interpolates between two angles in degrees along the shorter arc.
func LerpAngle(a, b, t float64) float64 {
	return a + DeltaAngle(a, b)*Clamp01(t)
}
