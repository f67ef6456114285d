// Package physics declares what the locomotion and camera code needs from a
// rigid-body world: a body handle that takes immediate pose and velocity
// writes, and ray/shape queries filtered by layer.
package physics

import (
	"github.com/go-gl/mathgl/mgl64"
)

// LayerMask selects collider layers for a query. Bit n is layer n.
type LayerMask uint32

const (
	NoLayers  LayerMask = 0
	AllLayers LayerMask = ^LayerMask(0)
)

// Layer returns the mask containing only layer n.
func Layer(n uint) LayerMask {
	return LayerMask(1) << n
}

// Intersects reports whether the two masks share any layer.
func (m LayerMask) Intersects(other LayerMask) bool {
	return m&other != 0
}

// RaycastHit describes where a ray first touched a collider.
type RaycastHit struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
	// Anchor is the hit collider's own position. Ledge grabs pin the
	// character's height to it.
	Anchor mgl64.Vec3
}

// Body is a rigid body handle. Position and rotation writes are applied
// immediately, without interpolation.
type Body interface {
	Position() mgl64.Vec3
	SetPosition(p mgl64.Vec3)
	Rotation() mgl64.Quat
	SetRotation(q mgl64.Quat)
	Velocity() mgl64.Vec3
	SetVelocity(v mgl64.Vec3)
	UseGravity() bool
	SetUseGravity(enabled bool)
}

// Caster answers world queries.
type Caster interface {
	// Raycast returns the closest hit along direction within maxDistance.
	Raycast(origin, direction mgl64.Vec3, maxDistance float64, mask LayerMask) (RaycastHit, bool)
	// SphereCast sweeps a sphere along direction and returns how many colliders it touched.
	SphereCast(origin mgl64.Vec3, radius float64, direction mgl64.Vec3, maxDistance float64, mask LayerMask) int
}
