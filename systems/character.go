package systems

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/williamstrand/Third-Person-Components/components"
	"github.com/williamstrand/Third-Person-Components/shared/gamemath"
	"github.com/williamstrand/Third-Person-Components/tags"
	"github.com/yohamta/donburi"
)

// dashForward is the dash direction used when the stick is centered.
var dashForward = mgl64.Vec2{0, 1}

// UpdateCharacters turns each character's sampled input into movement
// commands and then runs the character's frame tick, so every mode change
// is settled before the physics tick.
func UpdateCharacters(w donburi.World, dt float64) {
	tags.Character.Each(w, func(e *donburi.Entry) {
		c := components.Character.Get(e)
		in := components.Input.Get(e)
		mv := c.Movement
		camFwd := cameraForward(w, e.Entity())

		if in.Release {
			mv.Release()
		}
		if in.Dash {
			dir := in.Move
			if dir.Len() == 0 {
				dir = dashForward
			}
			mv.Dash(dir, c.Config.Dash.Speed, c.Config.Dash.Distance, camFwd)
		}
		if in.Jump {
			mv.Jump()
		}
		mv.Move(in.Move, c.Config.Movement.WalkSpeed, camFwd)

		mv.Update(dt)
	})
}

// FixedCharacters integrates every character's velocity and rotation.
func FixedCharacters(w donburi.World, dt float64) {
	components.Character.Each(w, func(e *donburi.Entry) {
		components.Character.Get(e).Movement.FixedUpdate(dt)
	})
}

// cameraForward is the look direction of the rig following character, or
// world forward when no rig follows it.
func cameraForward(w donburi.World, character donburi.Entity) mgl64.Vec3 {
	fwd := gamemath.Forward
	components.CameraRig.Each(w, func(e *donburi.Entry) {
		rig := components.CameraRig.Get(e)
		if rig.Target == character && rig.Rig != nil {
			fwd = rig.Rig.Forward()
		}
	})
	return fwd
}
