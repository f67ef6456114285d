// Package camera separates where a camera should be (an Attachment written by
// a Rig) from where the one physical camera is (the Brain).
package camera

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/williamstrand/Third-Person-Components/shared/gamemath"
)

// Pose is a position and a unit forward direction.
type Pose struct {
	Position mgl64.Vec3
	Forward  mgl64.Vec3
}

// Listener receives every change made to the attachment it subscribed to.
type Listener interface {
	AttachmentChanged(position, forward mgl64.Vec3)
}

// Attachment is the pose a camera should take. It notifies at most one
// subscriber of each change.
type Attachment struct {
	position mgl64.Vec3
	forward  mgl64.Vec3
	listener Listener
	version  uint64
	closed   bool
}

func NewAttachment(position, forward mgl64.Vec3) *Attachment {
	return &Attachment{
		position: position,
		forward:  normalizeForward(forward),
	}
}

func (a *Attachment) Position() mgl64.Vec3 { return a.position }

func (a *Attachment) Forward() mgl64.Vec3 { return a.forward }

func (a *Attachment) Pose() Pose {
	return Pose{Position: a.position, Forward: a.forward}
}

func (a *Attachment) SetPosition(position mgl64.Vec3) {
	a.Set(position, a.forward)
}

func (a *Attachment) SetForward(forward mgl64.Vec3) {
	a.Set(a.position, forward)
}

// Set replaces the whole pose and notifies the subscriber once. A closed
// attachment ignores it.
func (a *Attachment) Set(position, forward mgl64.Vec3) {
	if a.closed {
		return
	}
	a.position = position
	a.forward = normalizeForward(forward)
	a.version++
	if a.listener != nil {
		a.listener.AttachmentChanged(a.position, a.forward)
	}
}

// Subscribe makes l the only listener, replacing any previous one.
func (a *Attachment) Subscribe(l Listener) {
	if a.closed {
		return
	}
	a.listener = l
}

// Unsubscribe removes l if it is the current listener.
func (a *Attachment) Unsubscribe(l Listener) {
	if a.listener == l {
		a.listener = nil
	}
}

// Close drops the listener. Later changes are ignored.
func (a *Attachment) Close() {
	a.closed = true
	a.listener = nil
}

func (a *Attachment) IsClosed() bool { return a.closed }

// Version counts changes, so a reader can poll instead of subscribing.
func (a *Attachment) Version() uint64 { return a.version }

func normalizeForward(v mgl64.Vec3) mgl64.Vec3 {
	n := gamemath.SafeNormalize(v)
	if gamemath.IsZero(n) {
		return gamemath.Forward
	}
	return n
}
