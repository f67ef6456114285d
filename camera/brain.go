package camera

import (
	"errors"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/williamstrand/Third-Person-Components/config"
	"github.com/williamstrand/Third-Person-Components/shared/gamemath"
	"github.com/williamstrand/Third-Person-Components/shared/timer"
	"go.uber.org/zap"
)

// ErrAlreadyExists is returned when a second brain is created while one is live.
var ErrAlreadyExists = errors.New("camera: a brain already exists")

// live guards the single brain slot.
var live atomic.Bool

type BrainState int

const (
	BrainDetached BrainState = iota
	// BrainBlending is the timed move from the pose held at attach time.
	BrainBlending
	// BrainTracking follows the attachment at the smoothing rate.
	BrainTracking
)

func (s BrainState) String() string {
	switch s {
	case BrainDetached:
		return "detached"
	case BrainBlending:
		return "blending"
	case BrainTracking:
		return "tracking"
	default:
		return "unknown"
	}
}

// Brain owns the physical camera pose and moves it toward the bound attachment.
type Brain struct {
	cfg    config.BrainConfig
	logger *zap.Logger

	pose       Pose
	attachment *Attachment
	// target is the attachment's latest pose.
	target    Pose
	blendFrom Pose
	blend     *timer.Timer
	state     BrainState
	closed    bool
}

type BrainOption func(*Brain)

func WithLogger(logger *zap.Logger) BrainOption {
	return func(b *Brain) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithPose places the physical camera before anything is attached.
func WithPose(p Pose) BrainOption {
	return func(b *Brain) {
		b.SetPose(p)
	}
}

// NewBrain creates the process-wide brain. Only one may be live at a time;
// Close frees the slot.
func NewBrain(cfg config.BrainConfig, opts ...BrainOption) (*Brain, error) {
	b := &Brain{
		cfg:    cfg,
		logger: zap.NewNop(),
		pose:   Pose{Forward: gamemath.Forward},
		blend:  timer.New(0),
	}
	b.cfg.AttachTime = gamemath.NonNegative(cfg.AttachTime)
	b.cfg.Smoothing = gamemath.NonNegative(cfg.Smoothing)
	if fn, ok := timer.EaseByName(cfg.Ease); ok {
		b.blend.SetEase(fn)
	}
	for _, opt := range opts {
		opt(b)
	}

	if !live.CompareAndSwap(false, true) {
		b.logger.Warn("CameraBrain: multiple brains detected, discarding the new one")
		return nil, ErrAlreadyExists
	}
	return b, nil
}

// Close detaches and releases the brain slot.
func (b *Brain) Close() {
	if b.closed {
		return
	}
	b.Detach()
	b.closed = true
	live.Store(false)
}

// Attach binds a and starts a timed blend from the current pose toward it.
// Attaching mid-blend restarts the blend from wherever the camera is now.
func (b *Brain) Attach(a *Attachment) {
	if a == nil || b.closed {
		return
	}
	if b.attachment != nil {
		b.attachment.Unsubscribe(b)
	}
	b.attachment = a
	a.Subscribe(b)

	b.target = a.Pose()
	b.blendFrom = b.pose
	b.blend.Restart(b.cfg.AttachTime)
	b.state = BrainBlending
	b.logger.Debug("CameraBrain: attached", zap.Float64("blend", b.cfg.AttachTime))
	b.Update(0)
}

// Detach unbinds the current attachment. The camera stays where it is.
func (b *Brain) Detach() {
	if b.attachment != nil {
		b.attachment.Unsubscribe(b)
	}
	b.attachment = nil
	b.state = BrainDetached
}

// AttachmentChanged records the bound attachment's new pose.
func (b *Brain) AttachmentChanged(position, forward mgl64.Vec3) {
	b.target = Pose{Position: position, Forward: forward}
}

// Update advances an in-flight blend. Position and forward are interpolated
// by the eased blend progress toward the attachment's live pose.
func (b *Brain) Update(dt float64) {
	if b.state != BrainBlending {
		return
	}
	b.blend.Update(dt)
	if b.blend.IsCompleted() {
		b.pose = b.target
		b.state = BrainTracking
		return
	}
	p := b.blend.Progress()
	b.pose = Pose{
		Position: gamemath.LerpVec3(b.blendFrom.Position, b.target.Position, p),
		Forward:  blendForward(b.blendFrom.Forward, b.target.Forward, p),
	}
}

// FixedUpdate follows the attachment once the blend has finished.
func (b *Brain) FixedUpdate(dt float64) {
	if b.state != BrainTracking || dt <= 0 {
		return
	}
	t := gamemath.Clamp01(b.cfg.Smoothing * dt)
	b.pose = Pose{
		Position: gamemath.LerpVec3(b.pose.Position, b.target.Position, t),
		Forward:  blendForward(b.pose.Forward, b.target.Forward, t),
	}
}

func (b *Brain) Pose() Pose { return b.pose }

// SetPose moves the physical camera directly. It does not cancel a blend.
func (b *Brain) SetPose(p Pose) {
	b.pose = Pose{Position: p.Position, Forward: normalizeForward(p.Forward)}
}

func (b *Brain) State() BrainState { return b.state }

func (b *Brain) IsAttached() bool { return b.attachment != nil }

func (b *Brain) IsBlending() bool { return b.state == BrainBlending }

// Current is the bound attachment, or nil.
func (b *Brain) Current() *Attachment { return b.attachment }

// BlendProgress is the blend's progress in [0, 1]; 1 when not blending.
func (b *Brain) BlendProgress() float64 {
	if b.state != BrainBlending {
		return 1
	}
	return b.blend.Progress()
}

// blendForward lerps two unit directions and renormalizes. Opposite
// directions that cancel out keep the destination.
func blendForward(from, to mgl64.Vec3, t float64) mgl64.Vec3 {
	v := gamemath.SafeNormalize(gamemath.LerpVec3(from, to, t))
	if gamemath.IsZero(v) {
		return to
	}
	return v
}
