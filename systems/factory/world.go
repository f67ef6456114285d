package factory

import (
	"errors"

	"github.com/williamstrand/Third-Person-Components/archetypes"
	"github.com/williamstrand/Third-Person-Components/components"
	"github.com/williamstrand/Third-Person-Components/config"
	"github.com/williamstrand/Third-Person-Components/physics/simworld"
	"github.com/williamstrand/Third-Person-Components/shared/leveldata"
	"github.com/yohamta/donburi"
)

// ErrNoWorld is returned when an entity needs a simulated world and none exists.
var ErrNoWorld = errors.New("factory: no world entity")

// ErrNoTarget is returned when a camera is asked to follow something that is not a character.
var ErrNoTarget = errors.New("factory: camera target is not a character")

// CreateWorld builds the simulated world for level.
func CreateWorld(w donburi.World, level *leveldata.LevelData, cfg config.WorldConfig) *donburi.Entry {
	entry := archetypes.World.Spawn(w)
	components.World.SetValue(entry, components.WorldData{
		World: simworld.FromLevel(level, simworld.WithGravity(cfg.Gravity), simworld.WithCellSize(cfg.CellSize)),
		Level: level,
	})
	return entry
}

func CreateSettings(w donburi.World, settings config.PlayerSettings) *donburi.Entry {
	entry := archetypes.Settings.Spawn(w)
	components.Settings.SetValue(entry, components.SettingsData{Settings: settings})
	return entry
}

func simWorld(w donburi.World) (*simworld.World, error) {
	e, ok := components.World.First(w)
	if !ok || components.World.Get(e).World == nil {
		return nil, ErrNoWorld
	}
	return components.World.Get(e).World, nil
}
