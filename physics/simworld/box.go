package simworld

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/williamstrand/Third-Person-Components/physics"
)

// Box is a static axis-aligned collider.
type Box struct {
	Min, Max mgl64.Vec3
	Layer    physics.LayerMask

	object *resolv.Object
}

// Anchor is the center of the box's top face.
func (b *Box) Anchor() mgl64.Vec3 {
	return mgl64.Vec3{(b.Min.X() + b.Max.X()) / 2, b.Max.Y(), (b.Min.Z() + b.Max.Z()) / 2}
}

func (b *Box) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}
