package systems

import (
	"github.com/williamstrand/Third-Person-Components/components"
	"github.com/williamstrand/Third-Person-Components/config"
	"github.com/williamstrand/Third-Person-Components/tags"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// SettingsSaver persists player settings.
type SettingsSaver interface {
	Save(config.PlayerSettings) error
}

// UpdateSettings applies settings toggles from the player's input.
func UpdateSettings(w donburi.World, _ float64) {
	player, ok := tags.Player.First(w)
	if !ok || !player.HasComponent(components.Input) {
		return
	}
	settingsEntry, ok := components.Settings.First(w)
	if !ok {
		return
	}
	if components.Input.Get(player).ToggleDebug {
		s := components.Settings.Get(settingsEntry)
		s.Settings.ShowDebug = !s.Settings.ShowDebug
		s.Dirty = true
	}
}

// SaveSettings writes changed settings through saver. A failed save is
// logged and retried on the next call.
func SaveSettings(w donburi.World, saver SettingsSaver, logger *zap.Logger) {
	if saver == nil {
		return
	}
	e, ok := components.Settings.First(w)
	if !ok {
		return
	}
	s := components.Settings.Get(e)
	if !s.Dirty {
		return
	}
	if err := saver.Save(s.Settings); err != nil {
		if logger == nil {
			logger = zap.NewNop()
		}
		logger.Warn("Settings: could not save", zap.Error(err))
		return
	}
	s.Dirty = false
}
