package tags

import "github.com/yohamta/donburi"

var (
	Character = donburi.NewTag().SetName("Character")
	Player    = donburi.NewTag().SetName("Player")
	Camera    = donburi.NewTag().SetName("Camera")
)

// Resolv tags for the simulated world
const (
	ResolvSolid = "solid"
	ResolvBody  = "body"
)
