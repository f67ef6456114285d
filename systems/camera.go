package systems

import (
	"github.com/williamstrand/Third-Person-Components/components"
	"github.com/williamstrand/Third-Person-Components/config"
	"github.com/yohamta/donburi"
)

// UpdateCameraRigs applies look input from each rig's target and writes
// the rig's attachment.
func UpdateCameraRigs(w donburi.World, dt float64) {
	settings := currentSettings(w)
	components.CameraRig.Each(w, func(e *donburi.Entry) {
		data := components.CameraRig.Get(e)
		if data.Rig == nil {
			return
		}
		if w.Valid(data.Target) {
			target := w.Entry(data.Target)
			if target.HasComponent(components.Input) {
				look := components.Input.Get(target).Look.Mul(settings.LookSensitivity)
				if settings.InvertPitch {
					look[1] = -look[1]
				}
				data.Rig.Look(look, dt)
			}
		}
		data.Rig.Update(dt)
	})
}

// UpdateBrain advances the camera's attach blend.
func UpdateBrain(w donburi.World, dt float64) {
	if e, ok := components.Brain.First(w); ok {
		if b := components.Brain.Get(e).Brain; b != nil {
			b.Update(dt)
		}
	}
}

// FixedBrain moves the camera toward its attachment on the physics tick.
func FixedBrain(w donburi.World, dt float64) {
	if e, ok := components.Brain.First(w); ok {
		if b := components.Brain.Get(e).Brain; b != nil {
			b.FixedUpdate(dt)
		}
	}
}

func currentSettings(w donburi.World) config.PlayerSettings {
	if e, ok := components.Settings.First(w); ok {
		return components.Settings.Get(e).Settings
	}
	return config.DefaultSettings()
}
