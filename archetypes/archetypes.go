package archetypes

import (
	"github.com/williamstrand/Third-Person-Components/components"
	"github.com/williamstrand/Third-Person-Components/tags"
	"github.com/yohamta/donburi"
)

var (
	World = newArchetype(
		components.World,
	)
	Character = newArchetype(
		tags.Character,
		components.Character,
		components.Input,
	)
	Player = newArchetype(
		tags.Player,
		tags.Character,
		components.Character,
		components.Input,
	)
	Camera = newArchetype(
		tags.Camera,
		components.CameraRig,
	)
	Brain = newArchetype(
		components.Brain,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
