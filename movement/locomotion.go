package movement

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/williamstrand/Third-Person-Components/shared/gamemath"
)

// Locomotion is free walking relative to a camera.
type Locomotion struct {
	integrator *Integrator
	speed      float64
}

func NewLocomotion(integrator *Integrator, walkSpeed float64) *Locomotion {
	return &Locomotion{
		integrator: integrator,
		speed:      gamemath.NonNegative(walkSpeed),
	}
}

// Move issues a target velocity of speed along direction, read in the
// camera's ground-plane basis, and turns the body to face it. A zero
// direction leaves the previous targets untouched.
func (l *Locomotion) Move(direction mgl64.Vec2, speed float64, cameraForward mgl64.Vec3) {
	if direction.X() == 0 && direction.Y() == 0 {
		return
	}
	dir := gamemath.ToLocalSpace(direction, cameraForward)
	l.integrator.SetTargetVelocity(dir.Mul(speed))
	l.integrator.SetTargetRotation(gamemath.YawRotation(dir))
}

// Face turns toward direction without moving.
func (l *Locomotion) Face(direction mgl64.Vec2, cameraForward mgl64.Vec3) {
	if direction.X() == 0 && direction.Y() == 0 {
		return
	}
	l.integrator.SetTargetRotation(gamemath.YawRotation(gamemath.ToLocalSpace(direction, cameraForward)))
}

func (l *Locomotion) Jump() bool {
	return l.integrator.Jump()
}

// Speed is the walk speed used when the caller has no speed of its own.
func (l *Locomotion) Speed() float64 { return l.speed }

func (l *Locomotion) SetSpeed(v float64) { l.speed = gamemath.NonNegative(v) }
