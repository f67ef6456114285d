package systems

import (
	"github.com/williamstrand/Third-Person-Components/components"
	"github.com/williamstrand/Third-Person-Components/config"
	"github.com/williamstrand/Third-Person-Components/loop"
	"github.com/yohamta/donburi"
)

// System runs over the world once per tick.
type System func(w donburi.World, dt float64)

// Pipeline runs the update systems once per frame and the physics systems
// on the fixed tick.
type Pipeline struct {
	world   donburi.World
	input   []System
	update  []System
	physics []System
	loop    *loop.Loop
}

// NewPipeline wires the standard systems for w.
func NewPipeline(w donburi.World, cfg config.WorldConfig) *Pipeline {
	p := &Pipeline{
		world: w,
		update: []System{
			UpdateSettings,
			UpdateCharacters,
			UpdateCameraRigs,
			UpdateBrain,
			ClearInput,
		},
		physics: []System{
			FixedCharacters,
			StepWorld,
			FixedBrain,
		},
	}
	p.loop = loop.New(cfg.FixedStep, cfg.MaxSteps, p.runUpdate, p.runPhysics)
	return p
}

// NewEmptyPipeline returns a pipeline with no systems.
func NewEmptyPipeline(w donburi.World, cfg config.WorldConfig) *Pipeline {
	p := &Pipeline{world: w}
	p.loop = loop.New(cfg.FixedStep, cfg.MaxSteps, p.runUpdate, p.runPhysics)
	return p
}

// AddInput adds systems that run before every other update system.
func (p *Pipeline) AddInput(s ...System) { p.input = append(p.input, s...) }

func (p *Pipeline) AddUpdate(s ...System) { p.update = append(p.update, s...) }

func (p *Pipeline) AddPhysics(s ...System) { p.physics = append(p.physics, s...) }

// Advance runs one frame and returns the number of physics ticks run.
func (p *Pipeline) Advance(frameDt float64) int {
	return p.loop.Advance(frameDt)
}

func (p *Pipeline) Loop() *loop.Loop { return p.loop }

func (p *Pipeline) World() donburi.World { return p.world }

func (p *Pipeline) runUpdate(dt float64) {
	for _, s := range p.input {
		s(p.world, dt)
	}
	for _, s := range p.update {
		s(p.world, dt)
	}
}

func (p *Pipeline) runPhysics(dt float64) {
	for _, s := range p.physics {
		s(p.world, dt)
	}
}

// Close releases what the world's entities hold: rigs stop publishing and
// the camera brain frees its slot.
func Close(w donburi.World) {
	components.CameraRig.Each(w, func(e *donburi.Entry) {
		if rig := components.CameraRig.Get(e).Rig; rig != nil {
			rig.Close()
		}
	})
	components.Brain.Each(w, func(e *donburi.Entry) {
		if b := components.Brain.Get(e).Brain; b != nil {
			b.Close()
		}
	})
}
