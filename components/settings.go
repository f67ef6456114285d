package components

import (
	"github.com/williamstrand/Third-Person-Components/config"
	"github.com/yohamta/donburi"
)

type SettingsData struct {
	Settings config.PlayerSettings
	// Dirty is set when the settings changed and should be saved.
	Dirty bool
}

var Settings = donburi.NewComponentType[SettingsData]()
