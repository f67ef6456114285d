package simworld

import (
	"math"

	"github.com/williamstrand/Third-Person-Components/shared/leveldata"
)

// FromLevel builds a world holding every collider in level.
func FromLevel(level *leveldata.LevelData, opts ...Option) *World {
	w := New(int(math.Ceil(level.Width)), int(math.Ceil(level.Depth)), opts...)
	for _, b := range level.Boxes {
		w.AddBox(b.Min, b.Max, b.Layer)
	}
	return w
}
