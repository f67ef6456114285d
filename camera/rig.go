package camera

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/williamstrand/Third-Person-Components/config"
	"github.com/williamstrand/Third-Person-Components/physics"
	"github.com/williamstrand/Third-Person-Components/shared/gamemath"
)

// Tracked is anything a rig can follow.
type Tracked interface {
	Position() mgl64.Vec3
}

// Rig swings a boom around a tracked target and writes the resulting camera
// pose into its own attachment. It never moves the physical camera.
type Rig struct {
	brain      *Brain
	target     Tracked
	caster     physics.Caster
	cfg        config.CameraConfig
	attachment *Attachment

	// Boom angles in degrees.
	yaw, pitch             float64
	targetYaw, targetPitch float64

	distance float64
}

// NewRig builds a rig following target. A nil brain is allowed; the rig then
// only writes its attachment.
func NewRig(brain *Brain, target Tracked, caster physics.Caster, cfg config.CameraConfig) *Rig {
	r := &Rig{
		brain:  brain,
		target: target,
		caster: caster,
		cfg:    cfg,
	}
	r.SetPitchLimits(cfg.PitchMin, cfg.PitchMax)
	r.SetDistance(cfg.Distance)
	r.SetSmoothing(cfg.Smoothing)
	r.cfg.LookSpeed = gamemath.NonNegative(cfg.LookSpeed)

	r.targetPitch = mgl64.Clamp(0, r.cfg.PitchMin, r.cfg.PitchMax)
	r.pitch = r.targetPitch
	r.attachment = NewAttachment(target.Position(), gamemath.Forward)
	r.Update(0)

	if cfg.AttachOnStart {
		r.Activate()
	}
	return r
}

// Rotate turns the boom's target orientation. Input y tilts pitch (up on the
// stick looks up) and x turns yaw.
func (r *Rig) Rotate(direction mgl64.Vec2, speed float64) {
	r.targetPitch -= direction.Y() * speed
	r.targetYaw = gamemath.Repeat(r.targetYaw+direction.X()*speed, 360)

	if r.targetPitch > 180 {
		r.targetPitch -= 360
	}
	r.targetPitch = mgl64.Clamp(r.targetPitch, r.cfg.PitchMin, r.cfg.PitchMax)
}

// Look rotates at the configured look speed for dt seconds.
func (r *Rig) Look(direction mgl64.Vec2, dt float64) {
	r.Rotate(direction, r.cfg.LookSpeed*dt)
}

// Update eases the boom toward its target angles, pulls the camera in front
// of any wall between it and the target, and publishes the pose.
func (r *Rig) Update(dt float64) {
	t := gamemath.Clamp01(r.cfg.Smoothing * dt)
	r.yaw = gamemath.Repeat(gamemath.LerpAngle(r.yaw, r.targetYaw, t), 360)
	r.pitch = gamemath.LerpAngle(r.pitch, r.targetPitch, t)

	rot := gamemath.BoomRotation(r.yaw, r.pitch)
	origin := r.target.Position()
	pivot := origin.Add(rot.Rotate(r.cfg.Offset))
	back := gamemath.ForwardOf(rot).Mul(-1)

	r.distance = r.cfg.Distance
	toDesired := pivot.Add(back.Mul(r.cfg.Distance)).Sub(origin)
	if length := toDesired.Len(); length > gamemath.Epsilon && r.caster != nil {
		if hit, ok := r.caster.Raycast(origin, toDesired, length, r.cfg.CollisionLayers); ok {
			// Horizontal distance keeps the camera off walls it meets at a shallow angle.
			if d := gamemath.HorizontalDistance(origin, hit.Point); d < r.distance {
				r.distance = d
			}
		}
	}

	position := pivot.Add(back.Mul(r.distance))
	look := origin.Add(rot.Rotate(r.cfg.LookOffset))
	forward := gamemath.SafeNormalize(look.Sub(position))
	if gamemath.IsZero(forward) {
		forward = gamemath.ForwardOf(rot)
	}
	r.attachment.Set(position, forward)
}

// Activate binds the rig's attachment to the brain.
func (r *Rig) Activate() {
	if r.brain != nil {
		r.brain.Attach(r.attachment)
	}
}

// Close stops publishing. The brain is detached if it was following this rig.
func (r *Rig) Close() {
	if r.brain != nil && r.brain.Current() == r.attachment {
		r.brain.Detach()
	}
	r.attachment.Close()
}

func (r *Rig) Attachment() *Attachment { return r.attachment }

// Forward is the direction the rig's camera looks.
func (r *Rig) Forward() mgl64.Vec3 { return r.attachment.Forward() }

// Distance is the boom length after wall avoidance in the last Update.
func (r *Rig) Distance() float64 { return r.distance }

func (r *Rig) MaxDistance() float64 { return r.cfg.Distance }

func (r *Rig) SetDistance(v float64) { r.cfg.Distance = gamemath.NonNegative(v) }

func (r *Rig) SetSmoothing(v float64) { r.cfg.Smoothing = gamemath.NonNegative(v) }

// SetPitchLimits sets the pitch range, swapping the limits if they are reversed.
func (r *Rig) SetPitchLimits(lo, hi float64) {
	if lo > hi {
		lo, hi = hi, lo
	}
	r.cfg.PitchMin, r.cfg.PitchMax = lo, hi
	r.targetPitch = mgl64.Clamp(r.targetPitch, lo, hi)
}

// Angles returns the current boom yaw and pitch in degrees.
func (r *Rig) Angles() (yaw, pitch float64) { return r.yaw, r.pitch }

func (r *Rig) TargetAngles() (yaw, pitch float64) { return r.targetYaw, r.targetPitch }

func (r *Rig) SetTarget(target Tracked) {
	if target != nil {
		r.target = target
	}
}
