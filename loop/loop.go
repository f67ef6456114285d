// Package loop runs the two simulation clocks: a variable update tick once
// per frame and a fixed physics tick driven by an accumulator.
package loop

import "github.com/williamstrand/Third-Person-Components/shared/gamemath"

type Loop struct {
	fixedStep float64
	maxSteps  int
	update    func(dt float64)
	physics   func(dt float64)

	accumulator float64
	steps       uint64
	dropped     uint64
}

// New creates a loop that calls update once per Advance and physics every
// fixedStep seconds of accumulated time, at most maxSteps times per Advance.
func New(fixedStep float64, maxSteps int, update, physics func(dt float64)) *Loop {
	if fixedStep <= 0 {
		fixedStep = 1.0 / 50.0
	}
	if maxSteps < 1 {
		maxSteps = 1
	}
	if update == nil {
		update = func(float64) {}
	}
	if physics == nil {
		physics = func(float64) {}
	}
	return &Loop{
		fixedStep: fixedStep,
		maxSteps:  maxSteps,
		update:    update,
		physics:   physics,
	}
}

// Advance runs one frame of frameDt seconds: the update tick first, so mode
// changes settle, then every physics tick that is due. It returns the number
// of physics ticks run. Time beyond maxSteps ticks is dropped.
func (l *Loop) Advance(frameDt float64) int {
	frameDt = gamemath.NonNegative(frameDt)
	l.update(frameDt)

	l.accumulator += frameDt
	n := 0
	for l.accumulator >= l.fixedStep-gamemath.Epsilon {
		if n == l.maxSteps {
			l.accumulator = 0
			l.dropped++
			break
		}
		l.physics(l.fixedStep)
		l.accumulator -= l.fixedStep
		n++
	}
	if l.accumulator < 0 {
		l.accumulator = 0
	}
	l.steps += uint64(n)
	return n
}

// Alpha is how far the accumulator is into the next physics tick, in [0, 1).
func (l *Loop) Alpha() float64 {
	return l.accumulator / l.fixedStep
}

// Steps counts physics ticks run so far.
func (l *Loop) Steps() uint64 { return l.steps }

// Dropped counts frames that hit the per-frame tick cap.
func (l *Loop) Dropped() uint64 { return l.dropped }

func (l *Loop) FixedStep() float64 { return l.fixedStep }
