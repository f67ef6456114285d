package factory

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/williamstrand/Third-Person-Components/archetypes"
	"github.com/williamstrand/Third-Person-Components/components"
	"github.com/williamstrand/Third-Person-Components/config"
	"github.com/williamstrand/Third-Person-Components/movement"
	"github.com/williamstrand/Third-Person-Components/shared/gamemath"
	"github.com/williamstrand/Third-Person-Components/shared/leveldata"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// CreateCharacter adds a body at spawn and the coordinator that moves it.
// The player archetype also carries the Player tag.
func CreateCharacter(w donburi.World, spawn leveldata.SpawnPoint, cfg config.CharacterConfig, player bool, logger *zap.Logger) (*donburi.Entry, error) {
	sim, err := simWorld(w)
	if err != nil {
		return nil, err
	}

	arch := archetypes.Character
	if player {
		arch = archetypes.Player
	}
	entry := arch.Spawn(w)

	body := sim.AddBody(spawn.Position, cfg.Radius, cfg.Height)
	body.SetRotation(mgl64.QuatRotate(mgl64.DegToRad(spawn.Yaw), gamemath.Up))

	opts := []movement.Option{}
	if logger != nil {
		opts = append(opts, movement.WithLogger(logger.With(zap.Int("spawn", spawn.Index))))
	}
	components.Character.SetValue(entry, components.CharacterData{
		Movement: movement.NewCoordinator(body, sim, cfg, opts...),
		Body:     body,
		Config:   cfg,
	})
	return entry, nil
}
