package movement

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/williamstrand/Third-Person-Components/config"
	"github.com/williamstrand/Third-Person-Components/physics"
)

type fakeBody struct {
	position mgl64.Vec3
	rotation mgl64.Quat
	velocity mgl64.Vec3
	gravity  bool
}

func newFakeBody() *fakeBody {
	return &fakeBody{rotation: mgl64.QuatIdent(), gravity: true}
}

func (b *fakeBody) Position() mgl64.Vec3       { return b.position }
func (b *fakeBody) SetPosition(p mgl64.Vec3)   { b.position = p }
func (b *fakeBody) Rotation() mgl64.Quat       { return b.rotation }
func (b *fakeBody) SetRotation(q mgl64.Quat)   { b.rotation = q }
func (b *fakeBody) Velocity() mgl64.Vec3       { return b.velocity }
func (b *fakeBody) SetVelocity(v mgl64.Vec3)   { b.velocity = v }
func (b *fakeBody) UseGravity() bool           { return b.gravity }
func (b *fakeBody) SetUseGravity(enabled bool) { b.gravity = enabled }

// fakeWall is a wall in the plane z = Z facing -Z, spanning [MinX, MaxX]
// from the ground up to Top.
type fakeWall struct {
	Z, MinX, MaxX float64
	Top           float64
}

type fakeCaster struct {
	groundHits int
	wall       *fakeWall
	rayCalls   int
	lastOrigin mgl64.Vec3
}

func (c *fakeCaster) Raycast(origin, direction mgl64.Vec3, maxDistance float64, mask physics.LayerMask) (physics.RaycastHit, bool) {
	c.rayCalls++
	c.lastOrigin = origin
	if c.wall == nil || direction.Z() <= 0 || origin.Z() >= c.wall.Z {
		return physics.RaycastHit{}, false
	}
	dir := direction.Normalize()
	t := (c.wall.Z - origin.Z()) / dir.Z()
	if t > maxDistance {
		return physics.RaycastHit{}, false
	}
	point := origin.Add(dir.Mul(t))
	if point.X() < c.wall.MinX || point.X() > c.wall.MaxX || point.Y() > c.wall.Top {
		return physics.RaycastHit{}, false
	}
	return physics.RaycastHit{
		Point:    point,
		Normal:   mgl64.Vec3{0, 0, -1},
		Distance: t,
		Anchor:   mgl64.Vec3{(c.wall.MinX + c.wall.MaxX) / 2, c.wall.Top, c.wall.Z},
	}, true
}

func (c *fakeCaster) SphereCast(origin mgl64.Vec3, radius float64, direction mgl64.Vec3, maxDistance float64, mask physics.LayerMask) int {
	return c.groundHits
}

func testCharacterConfig() config.CharacterConfig {
	return config.CharacterConfig{
		Radius: 0.4,
		Height: 1.8,
		Movement: config.MovementConfig{
			Acceleration:        10,
			RotationSpeed:       10,
			JumpHeight:          6,
			GroundCheckDistance: 0.1,
			GroundCheckRadius:   0.3,
			GroundLayers:        physics.AllLayers,
			WalkSpeed:           5,
		},
		Dash: config.DashConfig{
			Cooldown: 1,
			Speed:    5,
			Distance: 10,
		},
		Ledge: config.LedgeConfig{
			GrabRange:     0.5,
			GrabHeight:    1.5,
			GrabGrace:     0.5,
			MoveThreshold: 0.5,
			MoveDelay:     0.2,
			MoveDistance:  0.5,
			MoveSpeed:     5,
			GrabLayers:    physics.AllLayers,
		},
	}
}
