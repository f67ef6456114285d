package config

import (
	"fmt"
	"os"

	"github.com/williamstrand/Third-Person-Components/shared/gamemath"
	"github.com/williamstrand/Third-Person-Components/shared/timer"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML file and overlays it on the defaults. Keys missing from
// the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and sanitizes the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	cfg.Sanitize()
	return cfg, nil
}

// Sanitize clamps values that have no physical meaning when negative and
// repairs settings the simulation cannot run with.
func (c *Config) Sanitize() {
	ch := &c.Character
	ch.Radius = gamemath.NonNegative(ch.Radius)
	ch.Height = gamemath.NonNegative(ch.Height)

	m := &ch.Movement
	m.Acceleration = gamemath.NonNegative(m.Acceleration)
	m.RotationSpeed = gamemath.NonNegative(m.RotationSpeed)
	m.JumpHeight = gamemath.NonNegative(m.JumpHeight)
	m.GroundCheckDistance = gamemath.NonNegative(m.GroundCheckDistance)
	m.GroundCheckRadius = gamemath.NonNegative(m.GroundCheckRadius)
	m.WalkSpeed = gamemath.NonNegative(m.WalkSpeed)

	d := &ch.Dash
	d.Cooldown = gamemath.NonNegative(d.Cooldown)
	d.Speed = gamemath.NonNegative(d.Speed)
	d.Distance = gamemath.NonNegative(d.Distance)

	l := &ch.Ledge
	l.GrabRange = gamemath.NonNegative(l.GrabRange)
	l.GrabHeight = gamemath.NonNegative(l.GrabHeight)
	l.GrabGrace = gamemath.NonNegative(l.GrabGrace)
	l.MoveThreshold = gamemath.NonNegative(l.MoveThreshold)
	l.MoveDelay = gamemath.NonNegative(l.MoveDelay)
	l.MoveDistance = gamemath.NonNegative(l.MoveDistance)
	l.MoveSpeed = gamemath.NonNegative(l.MoveSpeed)

	cam := &c.Camera
	if cam.PitchMin > cam.PitchMax {
		cam.PitchMin, cam.PitchMax = cam.PitchMax, cam.PitchMin
	}
	cam.LookSpeed = gamemath.NonNegative(cam.LookSpeed)
	cam.Smoothing = gamemath.NonNegative(cam.Smoothing)
	cam.Distance = gamemath.NonNegative(cam.Distance)

	c.Brain.AttachTime = gamemath.NonNegative(c.Brain.AttachTime)
	c.Brain.Smoothing = gamemath.NonNegative(c.Brain.Smoothing)
	if _, ok := timer.EaseByName(c.Brain.Ease); !ok {
		c.Brain.Ease = Default().Brain.Ease
	}

	w := &c.World
	w.Gravity = gamemath.NonNegative(w.Gravity)
	if w.FixedStep <= 0 {
		w.FixedStep = Default().World.FixedStep
	}
	if w.MaxSteps < 1 {
		w.MaxSteps = 1
	}
	if w.CellSize < 1 {
		w.CellSize = 1
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		def := Default().Window
		c.Window.Width, c.Window.Height = def.Width, def.Height
	}
	if c.Window.Scale <= 0 {
		c.Window.Scale = Default().Window.Scale
	}
}
