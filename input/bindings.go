package input

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical button action.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionJump
	ActionDash
	ActionRelease
	ActionToggleDebug
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// Binding represents the keys and buttons that trigger an action.
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// AxisBinding maps four keys onto a 2D direction.
type AxisBinding struct {
	Left, Right, Down, Up ebiten.Key
	Horizontal, Vertical  ebiten.StandardGamepadAxis
}

// Config holds all input mappings.
type Config struct {
	Bindings map[ActionID]Binding
	Move     AxisBinding
	Look     AxisBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Default is the global input configuration.
var Default Config

func init() {
	Default = Config{
		AnalogDeadzone: 0.25,
		Move: AxisBinding{
			Left: ebiten.KeyA, Right: ebiten.KeyD, Down: ebiten.KeyS, Up: ebiten.KeyW,
			Horizontal: ebiten.StandardGamepadAxisLeftStickHorizontal,
			Vertical:   ebiten.StandardGamepadAxisLeftStickVertical,
		},
		Look: AxisBinding{
			Left: ebiten.KeyLeft, Right: ebiten.KeyRight, Down: ebiten.KeyDown, Up: ebiten.KeyUp,
			Horizontal: ebiten.StandardGamepadAxisRightStickHorizontal,
			Vertical:   ebiten.StandardGamepadAxisRightStickVertical,
		},
		Bindings: map[ActionID]Binding{
			ActionJump: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionDash: {
				Keys: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
				// X / Square button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
				},
			},
			ActionRelease: {
				Keys: []ebiten.Key{ebiten.KeyC},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
				// Back / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
		},
	}
}
