package factory

import (
	"github.com/williamstrand/Third-Person-Components/archetypes"
	"github.com/williamstrand/Third-Person-Components/camera"
	"github.com/williamstrand/Third-Person-Components/components"
	"github.com/williamstrand/Third-Person-Components/config"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// CreateBrain adds the camera brain. It fails with camera.ErrAlreadyExists
// while another brain is live.
func CreateBrain(w donburi.World, cfg config.BrainConfig, logger *zap.Logger) (*donburi.Entry, error) {
	brain, err := camera.NewBrain(cfg, camera.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	entry := archetypes.Brain.Spawn(w)
	components.Brain.SetValue(entry, components.BrainData{Brain: brain})
	return entry, nil
}

// CreateCamera adds a rig following target's body. The rig is bound to the
// world's brain if there is one.
func CreateCamera(w donburi.World, target *donburi.Entry, cfg config.CameraConfig) (*donburi.Entry, error) {
	sim, err := simWorld(w)
	if err != nil {
		return nil, err
	}

	var brain *camera.Brain
	if e, ok := components.Brain.First(w); ok {
		brain = components.Brain.Get(e).Brain
	}

	if target == nil || !target.HasComponent(components.Character) {
		return nil, ErrNoTarget
	}
	body := components.Character.Get(target).Body
	entry := archetypes.Camera.Spawn(w)
	components.CameraRig.SetValue(entry, components.CameraRigData{
		Rig:    camera.NewRig(brain, body, sim, cfg),
		Target: target.Entity(),
	})
	return entry, nil
}
