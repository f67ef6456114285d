package movement

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/williamstrand/Third-Person-Components/config"
	"github.com/williamstrand/Third-Person-Components/shared/gamemath"
	"github.com/williamstrand/Third-Person-Components/shared/timer"
)

// Dash is a short burst at fixed speed. While dashing it holds the
// integrator's velocity lock and suspends auto-rotation.
type Dash struct {
	integrator *Integrator
	cooldown   *timer.Timer
	dashTime   *timer.Timer
	dashing    bool

	cooldownDuration float64
}

func NewDash(integrator *Integrator, cfg config.DashConfig) *Dash {
	d := &Dash{
		integrator: integrator,
		cooldown:   timer.New(0),
		dashTime:   timer.New(0),
	}
	d.SetCooldown(cfg.Cooldown)
	return d
}

// Dash starts a dash along direction, read in the camera's ground-plane
// basis. It lasts distance/speed seconds. The request is rejected while on
// cooldown, while already dashing, for a zero direction, or a non-positive speed.
func (d *Dash) Dash(direction mgl64.Vec2, speed, distance float64, cameraForward mgl64.Vec3) bool {
	if !d.CanDash() || d.dashing || speed <= 0 {
		return false
	}
	if direction.X() == 0 && direction.Y() == 0 {
		return false
	}
	if !d.integrator.Lock(ModeDashing) {
		return false
	}

	dir := gamemath.SafeNormalize(gamemath.ToLocalSpace(direction, cameraForward))
	velocity := dir.Mul(speed)

	d.integrator.SetAutoRotate(false)
	d.integrator.SetVelocity(velocity)
	d.integrator.SetTargetVelocity(velocity)
	d.integrator.SnapRotation(gamemath.YawRotation(dir))

	d.dashTime.Restart(gamemath.NonNegative(distance) / speed)
	d.cooldown.Restart(d.cooldownDuration)
	d.dashing = true
	return true
}

// Update advances the cooldown and, while dashing, the dash itself.
func (d *Dash) Update(dt float64) {
	d.cooldown.Update(dt)
	if !d.dashing {
		return
	}
	d.dashTime.Update(dt)
	if d.dashTime.IsCompleted() {
		d.finish()
	}
}

// Cancel ends an active dash immediately.
func (d *Dash) Cancel() bool {
	if !d.dashing {
		return false
	}
	d.finish()
	return true
}

func (d *Dash) finish() {
	d.dashing = false
	d.integrator.Unlock(ModeDashing)
	d.integrator.SetAutoRotate(true)
	d.integrator.SetTargetVelocity(mgl64.Vec3{})
}

func (d *Dash) IsDashing() bool { return d.dashing }

// CanDash reports whether the cooldown has run out.
func (d *Dash) CanDash() bool { return d.cooldown.IsCompleted() }

// DashTime is the time left in the current dash.
func (d *Dash) DashTime() float64 {
	if !d.dashing {
		return 0
	}
	return d.dashTime.Remaining()
}

// CooldownRemaining is the time until another dash is allowed.
func (d *Dash) CooldownRemaining() float64 { return d.cooldown.Remaining() }

func (d *Dash) Cooldown() float64 { return d.cooldownDuration }

func (d *Dash) SetCooldown(v float64) { d.cooldownDuration = gamemath.NonNegative(v) }
