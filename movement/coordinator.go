package movement

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/williamstrand/Third-Person-Components/config"
	"github.com/williamstrand/Third-Person-Components/physics"
	"go.uber.org/zap"
)

// Coordinator owns a character's integrator and decides which mode may
// drive it. Commands that do not apply to the current mode are ignored.
//
// Call Update once per frame before FixedUpdate so mode changes settle
// before velocity is integrated.
type Coordinator struct {
	integrator *Integrator
	locomotion *Locomotion
	dash       *Dash
	ledge      *LedgeGrab

	mode      Mode
	listeners []func(from, to Mode)
	logger    *zap.Logger
}

type Option func(*Coordinator)

func WithLogger(logger *zap.Logger) Option {
	return func(c *Coordinator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewCoordinator(body physics.Body, caster physics.Caster, cfg config.CharacterConfig, opts ...Option) *Coordinator {
	integrator := NewIntegrator(body, caster, cfg.Movement)
	c := &Coordinator{
		integrator: integrator,
		locomotion: NewLocomotion(integrator, cfg.Movement.WalkSpeed),
		dash:       NewDash(integrator, cfg.Dash),
		ledge:      NewLedgeGrab(integrator, cfg.Ledge),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.ledge.OnGrab(func(hit physics.RaycastHit) {
		c.logger.Debug("Movement: ledge grabbed", zap.Float64("distance", hit.Distance))
		c.setMode(ModeLedge)
	})
	c.ledge.OnRelease(func() {
		c.logger.Debug("Movement: ledge released")
		c.setMode(ModeFree)
	})
	return c
}

// OnModeChange registers fn to run on every mode transition.
func (c *Coordinator) OnModeChange(fn func(from, to Mode)) {
	c.listeners = append(c.listeners, fn)
}

func (c *Coordinator) setMode(m Mode) {
	if c.mode == m {
		return
	}
	from := c.mode
	c.mode = m
	c.logger.Debug("Movement: mode changed", zap.Stringer("from", from), zap.Stringer("to", m))
	for _, fn := range c.listeners {
		fn(from, m)
	}
}

// Update runs the frame tick: ability timers, dash expiry and ledge detection.
func (c *Coordinator) Update(dt float64) {
	c.dash.Update(dt)
	if c.mode == ModeDashing && !c.dash.IsDashing() {
		c.setMode(ModeFree)
	}
	c.ledge.Update(dt)
}

// FixedUpdate runs the physics tick.
func (c *Coordinator) FixedUpdate(dt float64) {
	c.integrator.FixedUpdate(dt)
	c.ledge.FixedUpdate(dt)
}

// Move walks while free and shimmies while on a ledge. It is ignored while dashing.
func (c *Coordinator) Move(direction mgl64.Vec2, speed float64, cameraForward mgl64.Vec3) {
	switch c.mode {
	case ModeFree:
		c.locomotion.Move(direction, speed, cameraForward)
	case ModeLedge:
		c.ledge.Move(direction)
	}
}

// Face turns in place while free.
func (c *Coordinator) Face(direction mgl64.Vec2, cameraForward mgl64.Vec3) {
	if c.mode == ModeFree {
		c.locomotion.Face(direction, cameraForward)
	}
}

func (c *Coordinator) Jump() bool {
	if c.mode != ModeFree {
		return false
	}
	return c.locomotion.Jump()
}

func (c *Coordinator) Dash(direction mgl64.Vec2, speed, distance float64, cameraForward mgl64.Vec3) bool {
	if c.mode != ModeFree {
		return false
	}
	if !c.dash.Dash(direction, speed, distance, cameraForward) {
		return false
	}
	c.logger.Debug("Movement: dash started", zap.Float64("speed", speed), zap.Float64("distance", distance))
	c.setMode(ModeDashing)
	return true
}

// CancelDash ends a dash early.
func (c *Coordinator) CancelDash() bool {
	if c.mode != ModeDashing || !c.dash.Cancel() {
		return false
	}
	c.setMode(ModeFree)
	return true
}

// Release lets go of the current ledge.
func (c *Coordinator) Release() bool {
	if c.mode != ModeLedge {
		return false
	}
	return c.ledge.Release()
}

func (c *Coordinator) Mode() Mode { return c.mode }

func (c *Coordinator) IsDashing() bool { return c.dash.IsDashing() }

func (c *Coordinator) CanDash() bool { return c.mode == ModeFree && c.dash.CanDash() }

func (c *Coordinator) IsGrabbingLedge() bool { return c.ledge.IsGrabbingLedge() }

func (c *Coordinator) IsGrounded() bool { return c.integrator.IsGrounded() }

func (c *Coordinator) LockOwner() Mode { return c.integrator.LockOwner() }

func (c *Coordinator) Integrator() *Integrator { return c.integrator }

func (c *Coordinator) Locomotion() *Locomotion { return c.locomotion }

func (c *Coordinator) DashAbility() *Dash { return c.dash }

func (c *Coordinator) Ledge() *LedgeGrab { return c.ledge }
