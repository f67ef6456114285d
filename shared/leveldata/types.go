// Package leveldata parses Tiled levels into collider boxes and spawn points.
// It has no dependencies on ebitengine, donburi, or resolv; pure data only.
//
// Levels are drawn top-down: the map's X axis is world X and its Y axis is
// world Z. Heights come from object properties. One tile is one world unit.
package leveldata

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/williamstrand/Third-Person-Components/physics"
)

// ErrNoSpawn is returned when a level has no spawn for the requested index.
var ErrNoSpawn = errors.New("leveldata: no player spawn")

// LevelData holds everything a simulation needs from a TMX level file.
type LevelData struct {
	Name   string
	Width  float64 // world units along X
	Depth  float64 // world units along Z
	Boxes  []BoxData
	Spawns []SpawnPoint
}

// BoxData is a static axis-aligned collider.
type BoxData struct {
	Name     string
	Min, Max mgl64.Vec3
	Layer    physics.LayerMask
}

// SpawnPoint is where a character's feet start.
type SpawnPoint struct {
	Position mgl64.Vec3
	Yaw      float64 // degrees
	Index    int
}

// Spawn returns the spawn with the given index.
func (l *LevelData) Spawn(index int) (SpawnPoint, error) {
	for _, s := range l.Spawns {
		if s.Index == index {
			return s, nil
		}
	}
	return SpawnPoint{}, fmt.Errorf("%s spawn %d: %w", l.Name, index, ErrNoSpawn)
}
