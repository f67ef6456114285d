package simworld

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/williamstrand/Third-Person-Components/physics"
	"github.com/williamstrand/Third-Person-Components/tags"
)

var _ physics.Body = (*Body)(nil)

// Body is an upright character body. Its position is the center of its feet.
type Body struct {
	world *World

	position mgl64.Vec3
	rotation mgl64.Quat
	velocity mgl64.Vec3
	gravity  bool
	grounded bool

	radius, height float64
	object         *resolv.Object
}

func (b *Body) Position() mgl64.Vec3 { return b.position }

func (b *Body) SetPosition(p mgl64.Vec3) {
	b.position = p
	b.syncObject()
}

func (b *Body) Rotation() mgl64.Quat { return b.rotation }

func (b *Body) SetRotation(q mgl64.Quat) {
	b.rotation = q.Normalize()
}

func (b *Body) Velocity() mgl64.Vec3 { return b.velocity }

func (b *Body) SetVelocity(v mgl64.Vec3) { b.velocity = v }

func (b *Body) UseGravity() bool { return b.gravity }

func (b *Body) SetUseGravity(enabled bool) { b.gravity = enabled }

// Grounded reports whether the last step ended resting on a collider.
func (b *Body) Grounded() bool { return b.grounded }

func (b *Body) Radius() float64 { return b.radius }

func (b *Body) Height() float64 { return b.height }

func (b *Body) syncObject() {
	moveFootprint(b.object, b.position.X()-b.radius, b.position.Z()-b.radius)
}

func (b *Body) step(dt float64) {
	if b.gravity {
		b.velocity[1] -= b.world.gravity * dt
	}
	b.moveHorizontal(0, b.velocity.X()*dt)
	b.moveHorizontal(2, b.velocity.Z()*dt)
	b.moveVertical(b.velocity.Y() * dt)
}

// moveHorizontal moves along one ground axis (0 = X, 2 = Z) and stops at
// the first solid box whose face lies in the way.
func (b *Body) moveHorizontal(axis int, delta float64) {
	if delta == 0 {
		return
	}
	other := 2 - axis

	dx, dz := 0.0, 0.0
	if axis == 0 {
		dx = delta
	} else {
		dz = delta
	}

	allowed := delta
	if check := checkFootprint(b.object, dx, dz, tags.ResolvSolid); check != nil {
		for _, obj := range check.ObjectsByTags(tags.ResolvSolid) {
			box, ok := obj.Data.(*Box)
			if !ok || !b.overlapsHeight(box) {
				continue
			}
			if !overlaps(b.position[other]-b.radius, b.position[other]+b.radius, box.Min[other], box.Max[other]) {
				continue
			}
			if delta > 0 && b.position[axis]+b.radius <= box.Min[axis]+skin {
				gap := math.Max(0, box.Min[axis]-(b.position[axis]+b.radius))
				allowed = math.Min(allowed, gap)
			}
			if delta < 0 && b.position[axis]-b.radius >= box.Max[axis]-skin {
				gap := math.Min(0, box.Max[axis]-(b.position[axis]-b.radius))
				allowed = math.Max(allowed, gap)
			}
		}
	}

	if allowed != delta {
		b.velocity[axis] = 0
	}
	b.position[axis] += allowed
	b.syncObject()
}

// moveVertical lands the body on the highest floor below it or stops it
// against the lowest ceiling above it.
func (b *Body) moveVertical(delta float64) {
	b.grounded = false
	next := b.position.Y() + delta

	if check := checkFootprint(b.object, 0, 0, tags.ResolvSolid); check != nil {
		landed, bumped := false, false
		for _, obj := range check.ObjectsByTags(tags.ResolvSolid) {
			box, ok := obj.Data.(*Box)
			if !ok || !b.overlapsFootprint(box) {
				continue
			}
			if delta <= 0 && b.position.Y() >= box.Max.Y()-skin && next <= box.Max.Y() {
				next = box.Max.Y()
				landed = true
			}
			if delta > 0 && b.position.Y()+b.height <= box.Min.Y()+skin && next+b.height > box.Min.Y() {
				next = box.Min.Y() - b.height
				bumped = true
			}
		}
		if landed {
			b.grounded = true
			if b.velocity.Y() < 0 {
				b.velocity[1] = 0
			}
		}
		if bumped && b.velocity.Y() > 0 {
			b.velocity[1] = 0
		}
	}
	b.position[1] = next
}

func (b *Body) overlapsHeight(box *Box) bool {
	return b.position.Y() < box.Max.Y()-skin && b.position.Y()+b.height > box.Min.Y()+skin
}

func (b *Body) overlapsFootprint(box *Box) bool {
	return overlaps(b.position.X()-b.radius, b.position.X()+b.radius, box.Min.X(), box.Max.X()) &&
		overlaps(b.position.Z()-b.radius, b.position.Z()+b.radius, box.Min.Z(), box.Max.Z())
}

func overlaps(aMin, aMax, bMin, bMax float64) bool {
	return aMin < bMax-skin && aMax > bMin+skin
}
