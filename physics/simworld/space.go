package simworld

import "github.com/solarlune/resolv"

const (
	// PixelsPerUnit scales world units into the resolv space, which works in
	// whole pixels. It matches the 16px tiles of the level files.
	PixelsPerUnit = 16

	// footprintPad grows every footprint by one pixel on each side. resolv
	// ends an object's cell range at X+W-1, so without it a footprint whose
	// edge sits within a pixel of a cell border misses that cell.
	footprintPad = 1.0
)

func newSpace(width, depth, cellSize int) *resolv.Space {
	cell := cellSize * PixelsPerUnit
	return resolv.NewSpace(width*PixelsPerUnit, depth*PixelsPerUnit, cell, cell)
}

// newFootprint creates the broad-phase object for a ground-plane rectangle
// given in world units.
func newFootprint(minX, minZ, width, depth float64, tag string) *resolv.Object {
	return resolv.NewObject(
		minX*PixelsPerUnit-footprintPad,
		minZ*PixelsPerUnit-footprintPad,
		width*PixelsPerUnit+2*footprintPad,
		depth*PixelsPerUnit+2*footprintPad,
		tag,
	)
}

// moveFootprint places obj's rectangle at a world-unit corner.
func moveFootprint(obj *resolv.Object, minX, minZ float64) {
	obj.X = minX*PixelsPerUnit - footprintPad
	obj.Y = minZ*PixelsPerUnit - footprintPad
	obj.Update()
}

// checkFootprint runs a broad-phase check for a move given in world units.
func checkFootprint(obj *resolv.Object, dx, dz float64, tags ...string) *resolv.Collision {
	return obj.Check(dx*PixelsPerUnit, dz*PixelsPerUnit, tags...)
}
