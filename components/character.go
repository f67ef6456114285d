package components

import (
	"github.com/williamstrand/Third-Person-Components/config"
	"github.com/williamstrand/Third-Person-Components/movement"
	"github.com/williamstrand/Third-Person-Components/physics/simworld"
	"github.com/yohamta/donburi"
)

// CharacterData ties a simulated body to the coordinator that moves it.
type CharacterData struct {
	Movement *movement.Coordinator
	Body     *simworld.Body
	Config   config.CharacterConfig
}

var Character = donburi.NewComponentType[CharacterData]()
