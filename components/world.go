package components

import (
	"github.com/williamstrand/Third-Person-Components/physics/simworld"
	"github.com/williamstrand/Third-Person-Components/shared/leveldata"
	"github.com/yohamta/donburi"
)

type WorldData struct {
	World *simworld.World
	Level *leveldata.LevelData
}

var World = donburi.NewComponentType[WorldData]()
