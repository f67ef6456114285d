package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// InputData is one update tick of sampled input. Directions are normalized
// to at most unit length; action fields are edges, true only on the tick the
// button went down.
type InputData struct {
	Move mgl64.Vec2
	Look mgl64.Vec2

	Jump        bool
	Dash        bool
	Release     bool
	ToggleDebug bool
}

// Clear drops the action edges once they have been consumed.
func (i *InputData) Clear() {
	i.Jump = false
	i.Dash = false
	i.Release = false
	i.ToggleDebug = false
}

var Input = donburi.NewComponentType[InputData]()
