package movement

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/williamstrand/Third-Person-Components/config"
	"github.com/williamstrand/Third-Person-Components/physics"
	"github.com/williamstrand/Third-Person-Components/shared/gamemath"
	"github.com/williamstrand/Third-Person-Components/shared/timer"
)

// LedgeState is the ledge grab's position in its state machine.
type LedgeState int

const (
	LedgeFree LedgeState = iota
	// LedgeGraceWait follows a release. No grab checks run until it ends.
	LedgeGraceWait
	LedgeGrabbed
	// LedgeMoving is LedgeGrabbed while the body converges on a new target.
	LedgeMoving
)

func (s LedgeState) String() string {
	switch s {
	case LedgeFree:
		return "free"
	case LedgeGraceWait:
		return "grace"
	case LedgeGrabbed:
		return "grabbed"
	case LedgeMoving:
		return "moving"
	default:
		return "unknown"
	}
}

// poseTolerance is how close the body must be to its ledge target to count as settled.
const poseTolerance = 1e-5

// LedgeGrab hangs the body on ledges found by a forward ray and shimmies it
// sideways in discrete steps.
type LedgeGrab struct {
	integrator *Integrator
	cfg        config.LedgeConfig

	grabbing        bool
	targetPosition  mgl64.Vec3
	targetDirection mgl64.Vec3
	// facing is the unnormalized forward being eased toward targetDirection.
	facing mgl64.Vec3
	// speed is fixed at the most recent grab or move.
	speed float64
	// castOffset is the grab cast's height relative to the ledge top.
	// Lateral casts keep it so they stay level with the ledge.
	castOffset float64

	grace     *timer.Timer
	moveDelay *timer.Timer

	onGrab    []func(hit physics.RaycastHit)
	onRelease []func()
}

func NewLedgeGrab(integrator *Integrator, cfg config.LedgeConfig) *LedgeGrab {
	l := &LedgeGrab{
		integrator: integrator,
		grace:      timer.New(0),
		moveDelay:  timer.New(0),
	}
	l.SetGrabRange(cfg.GrabRange)
	l.SetGrabHeight(cfg.GrabHeight)
	l.SetGrabGrace(cfg.GrabGrace)
	l.SetMoveThreshold(cfg.MoveThreshold)
	l.SetMoveDelay(cfg.MoveDelay)
	l.SetMoveDistance(cfg.MoveDistance)
	l.SetMoveSpeed(cfg.MoveSpeed)
	l.cfg.GrabLayers = cfg.GrabLayers
	return l
}

// OnGrab registers fn to run whenever a ledge is grabbed.
func (l *LedgeGrab) OnGrab(fn func(hit physics.RaycastHit)) {
	l.onGrab = append(l.onGrab, fn)
}

// OnRelease registers fn to run whenever a ledge is released.
func (l *LedgeGrab) OnRelease(fn func()) {
	l.onRelease = append(l.onRelease, fn)
}

// Update runs once per frame: timers first, then a grab attempt.
func (l *LedgeGrab) Update(dt float64) {
	if !l.IsMoving() {
		l.moveDelay.Update(dt)
	}
	if !l.grace.IsCompleted() {
		l.grace.Update(dt)
		return
	}
	l.TryGrab()
}

// TryGrab casts forward for a ledge and hangs on the first one found. Nothing
// is cast while already grabbing, during the grace period, or while another
// mode holds the velocity lock.
func (l *LedgeGrab) TryGrab() bool {
	if l.grabbing || !l.grace.IsCompleted() || l.integrator.IsVelocityLocked() {
		return false
	}
	body := l.integrator.body
	origin := body.Position().Add(gamemath.Up.Mul(l.cfg.GrabHeight))
	hit, ok := l.cast(origin)
	if !ok || !l.integrator.Lock(ModeLedge) {
		return false
	}
	l.castOffset = origin.Y() - hit.Anchor.Y()

	l.grabbing = true
	l.integrator.SetAutoRotate(false)
	l.integrator.SetTargetVelocity(mgl64.Vec3{})
	body.SetUseGravity(false)
	body.SetVelocity(mgl64.Vec3{})
	l.facing = gamemath.ForwardOf(body.Rotation())
	l.attach(hit)

	for _, fn := range l.onGrab {
		fn(hit)
	}
	return true
}

// FixedUpdate converges the body's position and facing on the ledge target
// at the current speed.
func (l *LedgeGrab) FixedUpdate(dt float64) {
	if !l.grabbing || dt <= 0 {
		return
	}
	body := l.integrator.body
	body.SetVelocity(mgl64.Vec3{})

	step := l.speed * dt
	body.SetPosition(gamemath.MoveTowards(body.Position(), l.targetPosition, step))

	l.facing = gamemath.MoveTowards(l.facing, l.targetDirection, step)
	if l.facing.LenSqr() > gamemath.Epsilon {
		body.SetRotation(gamemath.LookRotation(l.facing))
	}
}

// Move shimmies along the ledge toward the sign of direction's x. It tries a
// full step, then a half step, and does nothing if neither finds the ledge.
// Casts are made from the height the ledge was first found from.
func (l *LedgeGrab) Move(direction mgl64.Vec2) bool {
	if !l.grabbing || l.IsMoving() || !l.moveDelay.IsCompleted() {
		return false
	}
	if math.Abs(direction.X()) <= l.cfg.MoveThreshold {
		return false
	}

	body := l.integrator.body
	side := gamemath.RightOf(body.Rotation()).Mul(math.Copysign(1, direction.X()))
	for _, dist := range []float64{l.cfg.MoveDistance, l.cfg.MoveDistance / 2} {
		origin := body.Position().Add(side.Mul(dist))
		origin[1] = l.targetPosition.Y() + l.castOffset
		if hit, ok := l.cast(origin); ok {
			l.attach(hit)
			return true
		}
	}
	return false
}

// Release lets go of the ledge and restores gravity. It is accepted at any
// point while grabbing, including mid-move.
func (l *LedgeGrab) Release() bool {
	if !l.grabbing {
		return false
	}
	body := l.integrator.body

	l.grabbing = false
	body.SetUseGravity(true)
	l.integrator.Unlock(ModeLedge)
	l.integrator.SetTargetRotation(body.Rotation())
	l.integrator.SetAutoRotate(true)
	l.grace.Restart(l.cfg.GrabGrace)

	for _, fn := range l.onRelease {
		fn()
	}
	return true
}

func (l *LedgeGrab) cast(origin mgl64.Vec3) (physics.RaycastHit, bool) {
	forward := gamemath.ForwardOf(l.integrator.body.Rotation())
	return l.integrator.caster.Raycast(origin, forward, l.cfg.GrabRange, l.cfg.GrabLayers)
}

func (l *LedgeGrab) attach(hit physics.RaycastHit) {
	target := hit.Point.Add(hit.Normal.Mul(l.cfg.GrabRange / 2))
	target[1] = hit.Anchor.Y()
	l.targetPosition = target
	l.targetDirection = hit.Normal.Mul(-1)
	l.speed = l.cfg.MoveSpeed
	l.moveDelay.Restart(l.cfg.MoveDelay)
}

// State reports where the ledge grab is in its state machine.
func (l *LedgeGrab) State() LedgeState {
	switch {
	case l.grabbing && l.IsMoving():
		return LedgeMoving
	case l.grabbing:
		return LedgeGrabbed
	case !l.grace.IsCompleted():
		return LedgeGraceWait
	default:
		return LedgeFree
	}
}

func (l *LedgeGrab) IsGrabbingLedge() bool { return l.grabbing }

// IsMoving reports whether the body is still converging on the ledge target.
func (l *LedgeGrab) IsMoving() bool {
	if !l.grabbing {
		return false
	}
	body := l.integrator.body
	if !gamemath.NearVec3(body.Position(), l.targetPosition, poseTolerance) {
		return true
	}
	return !gamemath.NearVec3(l.facing, l.targetDirection, poseTolerance)
}

// GrabGraceEnabled reports whether re-grabbing is still suppressed after a release.
func (l *LedgeGrab) GrabGraceEnabled() bool { return !l.grace.IsCompleted() }

// MoveDelayEnabled reports whether lateral moves are still suppressed.
func (l *LedgeGrab) MoveDelayEnabled() bool { return !l.moveDelay.IsCompleted() }

func (l *LedgeGrab) TargetPosition() mgl64.Vec3 { return l.targetPosition }

func (l *LedgeGrab) TargetDirection() mgl64.Vec3 { return l.targetDirection }

func (l *LedgeGrab) Speed() float64 { return l.speed }

func (l *LedgeGrab) GrabRange() float64 { return l.cfg.GrabRange }

func (l *LedgeGrab) SetGrabRange(v float64) { l.cfg.GrabRange = gamemath.NonNegative(v) }

func (l *LedgeGrab) SetGrabHeight(v float64) { l.cfg.GrabHeight = gamemath.NonNegative(v) }

func (l *LedgeGrab) SetGrabGrace(v float64) { l.cfg.GrabGrace = gamemath.NonNegative(v) }

func (l *LedgeGrab) SetMoveThreshold(v float64) { l.cfg.MoveThreshold = gamemath.NonNegative(v) }

func (l *LedgeGrab) SetMoveDelay(v float64) { l.cfg.MoveDelay = gamemath.NonNegative(v) }

func (l *LedgeGrab) SetMoveDistance(v float64) { l.cfg.MoveDistance = gamemath.NonNegative(v) }

func (l *LedgeGrab) MoveSpeed() float64 { return l.cfg.MoveSpeed }

func (l *LedgeGrab) SetMoveSpeed(v float64) { l.cfg.MoveSpeed = gamemath.NonNegative(v) }
