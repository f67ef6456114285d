package components

import (
	"github.com/williamstrand/Third-Person-Components/camera"
	"github.com/yohamta/donburi"
)

type CameraRigData struct {
	Rig *camera.Rig
	// Target is the character entity the rig follows.
	Target donburi.Entity
}

var CameraRig = donburi.NewComponentType[CameraRigData]()

type BrainData struct {
	Brain *camera.Brain
}

var Brain = donburi.NewComponentType[BrainData]()
