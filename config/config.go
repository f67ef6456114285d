package config

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/williamstrand/Third-Person-Components/physics"
)

// Collider layers used by the playground level.
var (
	LayerGround = physics.Layer(0)
	LayerLedge  = physics.Layer(1)
)

// MovementConfig tunes the velocity/rotation integrator and free locomotion.
type MovementConfig struct {
	Acceleration  float64 `yaml:"acceleration"`  // velocity change per second
	RotationSpeed float64 `yaml:"rotationSpeed"` // slerp rate per second
	// JumpHeight is added to vertical velocity as-is.
	JumpHeight          float64           `yaml:"jumpHeight"`
	GroundCheckDistance float64           `yaml:"groundCheckDistance"`
	GroundCheckRadius   float64           `yaml:"groundCheckRadius"`
	GroundLayers        physics.LayerMask `yaml:"groundLayers"`
	WalkSpeed           float64           `yaml:"walkSpeed"`
}

type DashConfig struct {
	Cooldown float64 `yaml:"cooldown"`
	Speed    float64 `yaml:"speed"`
	Distance float64 `yaml:"distance"`
}

// LedgeConfig tunes ledge detection and lateral shimmying.
type LedgeConfig struct {
	GrabRange float64 `yaml:"grabRange"`
	// GrabHeight raises the forward ledge cast above the feet.
	GrabHeight    float64           `yaml:"grabHeight"`
	GrabGrace     float64           `yaml:"grabGrace"`
	MoveThreshold float64           `yaml:"moveThreshold"` // horizontal input deadzone
	MoveDelay     float64           `yaml:"moveDelay"`
	MoveDistance  float64           `yaml:"moveDistance"`
	MoveSpeed     float64           `yaml:"moveSpeed"`
	GrabLayers    physics.LayerMask `yaml:"grabLayers"`
}

type CharacterConfig struct {
	Radius   float64        `yaml:"radius"`
	Height   float64        `yaml:"height"`
	Movement MovementConfig `yaml:"movement"`
	Dash     DashConfig     `yaml:"dash"`
	Ledge    LedgeConfig    `yaml:"ledge"`
}

// CameraConfig tunes a camera rig. Angles are in degrees.
type CameraConfig struct {
	PitchMin        float64           `yaml:"pitchMin"`
	PitchMax        float64           `yaml:"pitchMax"`
	LookSpeed       float64           `yaml:"lookSpeed"` // degrees per second at full input
	Smoothing       float64           `yaml:"smoothing"`
	Distance        float64           `yaml:"distance"`
	Offset          mgl64.Vec3        `yaml:"offset"`
	LookOffset      mgl64.Vec3        `yaml:"lookOffset"`
	CollisionLayers physics.LayerMask `yaml:"collisionLayers"`
	AttachOnStart   bool              `yaml:"attachOnStart"`
}

type BrainConfig struct {
	AttachTime float64 `yaml:"attachTime"` // blend duration when switching attachments
	Smoothing  float64 `yaml:"smoothing"`
	Ease       string  `yaml:"ease"` // blend curve, e.g. linear, outQuad, inOutCubic
}

type WorldConfig struct {
	Gravity   float64 `yaml:"gravity"`
	FixedStep float64 `yaml:"fixedStep"`
	MaxSteps  int     `yaml:"maxSteps"` // physics steps allowed per frame
	CellSize  int     `yaml:"cellSize"`
	Level     string  `yaml:"level"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type WindowConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"` // debug view pixels per world unit
}

type Config struct {
	Character CharacterConfig `yaml:"character"`
	Camera    CameraConfig    `yaml:"camera"`
	Brain     BrainConfig     `yaml:"brain"`
	World     WorldConfig     `yaml:"world"`
	Log       LogConfig       `yaml:"log"`
	Window    WindowConfig    `yaml:"window"`
}

var C *Config

func init() {
	C = Default()
}

// Default returns the stock tuning.
func Default() *Config {
	return &Config{
		Character: CharacterConfig{
			Radius: 0.4,
			Height: 1.8,
			Movement: MovementConfig{
				Acceleration:        10,
				RotationSpeed:       10,
				JumpHeight:          6,
				GroundCheckDistance: 0.1,
				GroundCheckRadius:   0.3,
				GroundLayers:        LayerGround | LayerLedge,
				WalkSpeed:           5,
			},
			Dash: DashConfig{
				Cooldown: 1,
				Speed:    15,
				Distance: 5,
			},
			Ledge: LedgeConfig{
				GrabRange:     0.5,
				GrabHeight:    1.5,
				GrabGrace:     0.5,
				MoveThreshold: 0.5,
				MoveDelay:     0.2,
				MoveDistance:  0.5,
				MoveSpeed:     5,
				GrabLayers:    LayerLedge,
			},
		},
		Camera: CameraConfig{
			PitchMin:        0,
			PitchMax:        45,
			LookSpeed:       120,
			Smoothing:       30,
			Distance:        5,
			Offset:          mgl64.Vec3{0, 1.6, 0},
			LookOffset:      mgl64.Vec3{0, 1.4, 0},
			CollisionLayers: LayerGround | LayerLedge,
			AttachOnStart:   true,
		},
		Brain: BrainConfig{
			AttachTime: 0.2,
			Smoothing:  30,
			Ease:       "linear",
		},
		World: WorldConfig{
			Gravity:   9.81,
			FixedStep: 1.0 / 50.0,
			MaxSteps:  5,
			CellSize:  1,
			Level:     "levels/playground.tmx",
		},
		Log: LogConfig{
			Level: "info",
		},
		Window: WindowConfig{
			Width:  960,
			Height: 540,
			Scale:  24,
		},
	}
}
