package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
	"github.com/williamstrand/Third-Person-Components/config"
	"github.com/williamstrand/Third-Person-Components/physics"
)

// Object groups and properties read from a level.
const (
	groupBoxes  = "Boxes"
	groupSpawns = "PlayerSpawn"

	propBottom    = "bottom"
	propHeight    = "height"
	propLayer     = "layer"
	propElevation = "elevation"
	propYaw       = "yaw"
	propSpawn     = "spawnIndex"

	defaultBoxHeight = 1.0
)

var ErrUnknownLayer = errors.New("leveldata: unknown collider layer")

var layerNames = map[string]physics.LayerMask{
	"ground": config.LayerGround,
	"ledge":  config.LayerLedge,
}

// Load parses a TMX file. It takes an fs.FS so callers can pass the embedded
// levels or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: invalid tile size %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	// Pixels to world units.
	sx := 1 / float64(levelMap.TileWidth)
	sz := 1 / float64(levelMap.TileHeight)

	data := &LevelData{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width: float64(levelMap.Width),
		Depth: float64(levelMap.Height),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupBoxes:
			for _, o := range og.Objects {
				layer, err := parseLayers(o.Properties.GetString(propLayer))
				if err != nil {
					return nil, fmt.Errorf("load TMX %s: box %q: %w", tmxPath, o.Name, err)
				}
				height := o.Properties.GetFloat(propHeight)
				if height <= 0 {
					height = defaultBoxHeight
				}
				bottom := o.Properties.GetFloat(propBottom)
				data.Boxes = append(data.Boxes, BoxData{
					Name:  o.Name,
					Min:   mgl64.Vec3{o.X * sx, bottom, o.Y * sz},
					Max:   mgl64.Vec3{(o.X + o.Width) * sx, bottom + height, (o.Y + o.Height) * sz},
					Layer: layer,
				})
			}
		case groupSpawns:
			for _, o := range og.Objects {
				data.Spawns = append(data.Spawns, SpawnPoint{
					Position: mgl64.Vec3{o.X * sx, o.Properties.GetFloat(propElevation), o.Y * sz},
					Yaw:      o.Properties.GetFloat(propYaw),
					Index:    o.Properties.GetInt(propSpawn),
				})
			}
		}
	}

	// Sort spawns by index for consistent assignment
	sort.SliceStable(data.Spawns, func(i, j int) bool {
		return data.Spawns[i].Index < data.Spawns[j].Index
	})

	return data, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys, loads each, and
// returns a map keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*LevelData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*LevelData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := Load(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

// parseLayers turns a comma separated list of layer names into a mask. An
// empty list means ground.
func parseLayers(s string) (physics.LayerMask, error) {
	if strings.TrimSpace(s) == "" {
		return config.LayerGround, nil
	}
	var mask physics.LayerMask
	for _, name := range strings.Split(s, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		layer, ok := layerNames[name]
		if !ok {
			return 0, fmt.Errorf("%q: %w", name, ErrUnknownLayer)
		}
		mask |= layer
	}
	return mask, nil
}
