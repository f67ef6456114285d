// Package movement turns input into character motion: an integrator that
// eases a body's velocity and rotation toward per-step targets, and the
// free-walk, dash and ledge-grab modes that drive it.
package movement

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/williamstrand/Third-Person-Components/config"
	"github.com/williamstrand/Third-Person-Components/physics"
	"github.com/williamstrand/Third-Person-Components/shared/gamemath"
)

// Integrator eases a body toward the velocity and rotation targets issued by
// the active mode. The target velocity is consumed by every FixedUpdate, so
// the active mode must re-issue it each step or the body slows to a stop.
type Integrator struct {
	body   physics.Body
	caster physics.Caster
	cfg    config.MovementConfig

	targetVelocity mgl64.Vec3
	targetRotation mgl64.Quat
	lockOwner      Mode
	autoRotate     bool
}

func NewIntegrator(body physics.Body, caster physics.Caster, cfg config.MovementConfig) *Integrator {
	i := &Integrator{
		body:           body,
		caster:         caster,
		targetRotation: body.Rotation(),
		autoRotate:     true,
	}
	i.SetAcceleration(cfg.Acceleration)
	i.SetRotationSpeed(cfg.RotationSpeed)
	i.SetJumpHeight(cfg.JumpHeight)
	i.SetGroundCheckDistance(cfg.GroundCheckDistance)
	i.SetGroundCheckRadius(cfg.GroundCheckRadius)
	i.cfg.GroundLayers = cfg.GroundLayers
	return i
}

func (i *Integrator) Body() physics.Body { return i.body }

// FixedUpdate runs one physics step.
func (i *Integrator) FixedUpdate(dt float64) {
	if dt <= 0 {
		return
	}
	if !i.IsVelocityLocked() {
		current := i.body.Velocity()
		target := i.targetVelocity
		target[1] = current[1]
		i.body.SetVelocity(gamemath.MoveTowards(current, target, i.cfg.Acceleration*dt))
		i.targetVelocity = mgl64.Vec3{}
	}
	if i.autoRotate {
		t := gamemath.Clamp01(dt * i.cfg.RotationSpeed)
		i.body.SetRotation(gamemath.Slerp(i.body.Rotation(), i.targetRotation, t))
	}
}

// SetTargetVelocity sets the velocity to approach during the next step only.
func (i *Integrator) SetTargetVelocity(v mgl64.Vec3) {
	i.targetVelocity = v
}

func (i *Integrator) TargetVelocity() mgl64.Vec3 { return i.targetVelocity }

// SetTargetRotation sets the rotation to turn toward. It persists until replaced.
func (i *Integrator) SetTargetRotation(q mgl64.Quat) {
	i.targetRotation = q.Normalize()
}

func (i *Integrator) TargetRotation() mgl64.Quat { return i.targetRotation }

// SnapRotation turns the body immediately and makes the rotation the new target.
func (i *Integrator) SnapRotation(q mgl64.Quat) {
	i.SetTargetRotation(q)
	i.body.SetRotation(i.targetRotation)
}

func (i *Integrator) SetAutoRotate(enabled bool) { i.autoRotate = enabled }

func (i *Integrator) AutoRotate() bool { return i.autoRotate }

// Lock gives owner exclusive, unramped control of the body's velocity. It
// fails when a different mode already holds the lock. ModeFree cannot lock.
func (i *Integrator) Lock(owner Mode) bool {
	if owner == ModeFree {
		return false
	}
	if i.lockOwner != ModeFree && i.lockOwner != owner {
		return false
	}
	i.lockOwner = owner
	return true
}

// Unlock releases the lock if owner holds it.
func (i *Integrator) Unlock(owner Mode) {
	if i.lockOwner == owner {
		i.lockOwner = ModeFree
	}
}

func (i *Integrator) IsVelocityLocked() bool { return i.lockOwner != ModeFree }

// LockOwner is the mode holding the velocity lock, or ModeFree when unlocked.
func (i *Integrator) LockOwner() Mode { return i.lockOwner }

func (i *Integrator) Velocity() mgl64.Vec3 { return i.body.Velocity() }

// SetVelocity writes the body's velocity directly. The vertical component is dropped.
func (i *Integrator) SetVelocity(v mgl64.Vec3) {
	i.body.SetVelocity(gamemath.Flatten(v))
}

// IsGrounded checks below the body with a sphere cast against the ground layers.
func (i *Integrator) IsGrounded() bool {
	hits := i.caster.SphereCast(i.body.Position(), i.cfg.GroundCheckRadius, gamemath.Down, i.cfg.GroundCheckDistance, i.cfg.GroundLayers)
	return hits > 0
}

// Jump adds JumpHeight to the vertical velocity. It only succeeds while
// unlocked, grounded, and not already moving upward.
func (i *Integrator) Jump() bool {
	if i.IsVelocityLocked() {
		return false
	}
	v := i.body.Velocity()
	if v.Y() > 0 || !i.IsGrounded() {
		return false
	}
	v[1] += i.cfg.JumpHeight
	i.body.SetVelocity(v)
	return true
}

func (i *Integrator) Acceleration() float64 { return i.cfg.Acceleration }

func (i *Integrator) SetAcceleration(v float64) { i.cfg.Acceleration = gamemath.NonNegative(v) }

func (i *Integrator) RotationSpeed() float64 { return i.cfg.RotationSpeed }

func (i *Integrator) SetRotationSpeed(v float64) { i.cfg.RotationSpeed = gamemath.NonNegative(v) }

func (i *Integrator) JumpHeight() float64 { return i.cfg.JumpHeight }

func (i *Integrator) SetJumpHeight(v float64) { i.cfg.JumpHeight = gamemath.NonNegative(v) }

func (i *Integrator) GroundCheckDistance() float64 { return i.cfg.GroundCheckDistance }

func (i *Integrator) SetGroundCheckDistance(v float64) {
	i.cfg.GroundCheckDistance = gamemath.NonNegative(v)
}

func (i *Integrator) GroundCheckRadius() float64 { return i.cfg.GroundCheckRadius }

func (i *Integrator) SetGroundCheckRadius(v float64) {
	i.cfg.GroundCheckRadius = gamemath.NonNegative(v)
}
