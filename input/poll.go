package input

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/williamstrand/Third-Person-Components/components"
	"github.com/williamstrand/Third-Person-Components/tags"
	"github.com/yohamta/donburi"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Poll samples keyboard and gamepads into every player's Input. Action edges
// are OR-ed in so a press is kept until ClearInput consumes it.
// Must run BEFORE the pipeline advances.
func Poll(w donburi.World, cfg Config) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	move := readAxis(cfg.Move, cfg.AnalogDeadzone)
	look := readAxis(cfg.Look, cfg.AnalogDeadzone)

	var pressed [ActionCount]bool
	for id, binding := range cfg.Bindings {
		pressed[id] = justPressed(binding)
	}

	tags.Player.Each(w, func(e *donburi.Entry) {
		in := components.Input.Get(e)
		in.Move = move
		in.Look = look
		in.Jump = in.Jump || pressed[ActionJump]
		in.Dash = in.Dash || pressed[ActionDash]
		in.Release = in.Release || pressed[ActionRelease]
		in.ToggleDebug = in.ToggleDebug || pressed[ActionToggleDebug]
	})
}

// QuitRequested reports whether the quit binding went down this frame.
func QuitRequested(cfg Config) bool {
	return justPressed(cfg.Bindings[ActionQuit])
}

func justPressed(binding Binding) bool {
	for _, key := range binding.Keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}

// readAxis merges the axis keys with the first stick outside the deadzone.
// Stick up is negative in ebiten, so the vertical axis is flipped.
func readAxis(binding AxisBinding, deadzone float64) mgl64.Vec2 {
	var v mgl64.Vec2
	if ebiten.IsKeyPressed(binding.Left) {
		v[0]--
	}
	if ebiten.IsKeyPressed(binding.Right) {
		v[0]++
	}
	if ebiten.IsKeyPressed(binding.Down) {
		v[1]--
	}
	if ebiten.IsKeyPressed(binding.Up) {
		v[1]++
	}

	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		stick := mgl64.Vec2{
			ebiten.StandardGamepadAxisValue(gpID, binding.Horizontal),
			-ebiten.StandardGamepadAxisValue(gpID, binding.Vertical),
		}
		if stick.Len() > deadzone {
			v = v.Add(stick)
			break
		}
	}

	if l := v.Len(); l > 1 {
		v = v.Mul(1 / l)
	}
	return v
}
