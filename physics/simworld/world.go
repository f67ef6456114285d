// Package simworld is a small kinematic world used to drive the locomotion
// and camera code outside an engine. Colliders are axis-aligned boxes; bodies
// are upright cylinders approximated by their square footprint. A resolv
// space indexes footprints on the ground plane (X, Z) for broad-phase checks.
//
// The resolv space works in pixels (PixelsPerUnit per world unit) and only
// covers non-negative coordinates, so levels are laid out inside
// [0, width] x [0, depth].
package simworld

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/williamstrand/Third-Person-Components/physics"
	"github.com/williamstrand/Third-Person-Components/shared/gamemath"
	"github.com/williamstrand/Third-Person-Components/tags"
)

const (
	DefaultGravity  = 9.81
	DefaultCellSize = 1

	// skin keeps resting contacts (feet on a floor, side against a wall)
	// from registering as penetration.
	skin = 1e-6
)

type World struct {
	space   *resolv.Space
	boxes   []*Box
	bodies  []*Body
	gravity float64

	width, depth float64
	cellSize     int
}

type Option func(*World)

// WithGravity sets the downward acceleration applied to bodies that use gravity.
func WithGravity(g float64) Option {
	return func(w *World) {
		w.gravity = g
	}
}

func WithCellSize(size int) Option {
	return func(w *World) {
		if size > 0 {
			w.cellSize = size
		}
	}
}

// New creates a world whose ground plane spans width x depth units.
func New(width, depth int, opts ...Option) *World {
	w := &World{
		gravity:  DefaultGravity,
		cellSize: DefaultCellSize,
		width:    float64(width),
		depth:    float64(depth),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.space = newSpace(width, depth, w.cellSize)
	return w
}

// AddBox adds a static collider spanning the two corners.
func (w *World) AddBox(a, b mgl64.Vec3, layer physics.LayerMask) *Box {
	box := &Box{Layer: layer}
	for i := 0; i < 3; i++ {
		box.Min[i] = math.Min(a[i], b[i])
		box.Max[i] = math.Max(a[i], b[i])
	}
	box.object = newFootprint(box.Min.X(), box.Min.Z(), box.Max.X()-box.Min.X(), box.Max.Z()-box.Min.Z(), tags.ResolvSolid)
	box.object.Data = box
	w.space.Add(box.object)
	w.boxes = append(w.boxes, box)
	return box
}

// AddBody adds a dynamic body with its feet at position.
func (w *World) AddBody(position mgl64.Vec3, radius, height float64) *Body {
	b := &Body{
		world:    w,
		position: position,
		rotation: mgl64.QuatIdent(),
		gravity:  true,
		radius:   radius,
		height:   height,
	}
	b.object = newFootprint(position.X()-radius, position.Z()-radius, 2*radius, 2*radius, tags.ResolvBody)
	b.object.Data = b
	w.space.Add(b.object)
	w.bodies = append(w.bodies, b)
	return b
}

// RemoveBody takes a body out of the simulation.
func (w *World) RemoveBody(b *Body) {
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			w.space.Remove(b.object)
			return
		}
	}
}

func (w *World) Boxes() []*Box { return w.boxes }

func (w *World) Bodies() []*Body { return w.bodies }

func (w *World) Gravity() float64 { return w.gravity }

func (w *World) SetGravity(g float64) { w.gravity = g }

// Size returns the ground plane extents.
func (w *World) Size() (width, depth float64) {
	return w.width, w.depth
}

// Step integrates every body by dt seconds.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	for _, b := range w.bodies {
		b.step(dt)
	}
}

// Raycast implements physics.Caster. Colliders that contain the origin are ignored.
func (w *World) Raycast(origin, direction mgl64.Vec3, maxDistance float64, mask physics.LayerMask) (physics.RaycastHit, bool) {
	dir := gamemath.SafeNormalize(direction)
	if gamemath.IsZero(dir) || maxDistance < 0 {
		return physics.RaycastHit{}, false
	}

	var best physics.RaycastHit
	found := false
	for _, box := range w.boxes {
		if !box.Layer.Intersects(mask) {
			continue
		}
		t, normal, ok := intersectRay(box.Min, box.Max, origin, dir)
		if !ok || t > maxDistance {
			continue
		}
		if found && t >= best.Distance {
			continue
		}
		best = physics.RaycastHit{
			Point:    origin.Add(dir.Mul(t)),
			Normal:   normal,
			Distance: t,
			Anchor:   box.Anchor(),
		}
		found = true
	}
	return best, found
}

// SphereCast implements physics.Caster. A sphere that already overlaps a
// collider at the origin counts it as touched.
func (w *World) SphereCast(origin mgl64.Vec3, radius float64, direction mgl64.Vec3, maxDistance float64, mask physics.LayerMask) int {
	dir := gamemath.SafeNormalize(direction)
	pad := mgl64.Vec3{radius, radius, radius}
	count := 0
	for _, box := range w.boxes {
		if !box.Layer.Intersects(mask) {
			continue
		}
		lo, hi := box.Min.Sub(pad), box.Max.Add(pad)
		if contains(lo, hi, origin) {
			count++
			continue
		}
		if gamemath.IsZero(dir) {
			continue
		}
		if t, _, ok := intersectRay(lo, hi, origin, dir); ok && t <= maxDistance {
			count++
		}
	}
	return count
}

// intersectRay is the slab test against an axis-aligned box. It reports the
// entry distance and the normal of the entered face. Rays starting inside
// the box do not hit it.
func intersectRay(lo, hi, origin, dir mgl64.Vec3) (float64, mgl64.Vec3, bool) {
	tMin, tMax := math.Inf(-1), math.Inf(1)
	var normal mgl64.Vec3
	for axis := 0; axis < 3; axis++ {
		if math.Abs(dir[axis]) < 1e-12 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, normal, false
			}
			continue
		}
		inv := 1 / dir[axis]
		t1 := (lo[axis] - origin[axis]) * inv
		t2 := (hi[axis] - origin[axis]) * inv
		sign := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tMin {
			tMin = t1
			normal = mgl64.Vec3{}
			normal[axis] = sign
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, normal, false
		}
	}
	if tMin < 0 {
		return 0, normal, false
	}
	return tMin, normal, true
}

func contains(lo, hi, p mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < lo[i] || p[i] > hi[i] {
			return false
		}
	}
	return true
}
