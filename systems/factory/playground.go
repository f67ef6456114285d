package factory

import (
	"fmt"

	"github.com/williamstrand/Third-Person-Components/config"
	"github.com/williamstrand/Third-Person-Components/shared/leveldata"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// CreatePlayground fills w with level, a player at spawn 0, a brain and a
// rig following the player. It returns the player entry.
func CreatePlayground(w donburi.World, level *leveldata.LevelData, cfg *config.Config, settings config.PlayerSettings, logger *zap.Logger) (*donburi.Entry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	spawn, err := level.Spawn(0)
	if err != nil {
		return nil, fmt.Errorf("create playground: %w", err)
	}

	CreateWorld(w, level, cfg.World)
	CreateSettings(w, settings)

	player, err := CreateCharacter(w, spawn, cfg.Character, true, logger)
	if err != nil {
		return nil, fmt.Errorf("create playground: %w", err)
	}
	if _, err := CreateBrain(w, cfg.Brain, logger); err != nil {
		return nil, fmt.Errorf("create playground: %w", err)
	}

	camCfg := cfg.Camera
	camCfg.AttachOnStart = true
	if _, err := CreateCamera(w, player, camCfg); err != nil {
		return nil, fmt.Errorf("create playground: %w", err)
	}

	logger.Info("Playground: created",
		zap.String("level", level.Name),
		zap.Int("boxes", len(level.Boxes)),
	)
	return player, nil
}
