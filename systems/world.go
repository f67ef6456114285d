package systems

import (
	"github.com/williamstrand/Third-Person-Components/components"
	"github.com/yohamta/donburi"
)

// StepWorld integrates body positions after the characters have set their
// velocities for this tick.
func StepWorld(w donburi.World, dt float64) {
	components.World.Each(w, func(e *donburi.Entry) {
		if sim := components.World.Get(e).World; sim != nil {
			sim.Step(dt)
		}
	})
}

// ClearInput drops consumed action edges at the end of a frame.
func ClearInput(w donburi.World, _ float64) {
	components.Input.Each(w, func(e *donburi.Entry) {
		components.Input.Get(e).Clear()
	})
}
