package systems

import (
	"github.com/williamstrand/Third-Person-Components/components"
	"github.com/williamstrand/Third-Person-Components/config"
	"github.com/yohamta/donburi"
)

// ApplyConfig pushes reloaded tuning into live entities. Abilities keep their
// current state; only the tunables change.
func ApplyConfig(w donburi.World, cfg *config.Config) {
	if cfg == nil {
		return
	}

	components.World.Each(w, func(e *donburi.Entry) {
		if sim := components.World.Get(e).World; sim != nil {
			sim.SetGravity(cfg.World.Gravity)
		}
	})

	components.Character.Each(w, func(e *donburi.Entry) {
		c := components.Character.Get(e)
		c.Config = cfg.Character

		mv := cfg.Character.Movement
		integrator := c.Movement.Integrator()
		integrator.SetAcceleration(mv.Acceleration)
		integrator.SetRotationSpeed(mv.RotationSpeed)
		integrator.SetJumpHeight(mv.JumpHeight)
		integrator.SetGroundCheckDistance(mv.GroundCheckDistance)
		integrator.SetGroundCheckRadius(mv.GroundCheckRadius)
		c.Movement.Locomotion().SetSpeed(mv.WalkSpeed)
		c.Movement.DashAbility().SetCooldown(cfg.Character.Dash.Cooldown)

		lc := cfg.Character.Ledge
		ledge := c.Movement.Ledge()
		ledge.SetGrabRange(lc.GrabRange)
		ledge.SetGrabHeight(lc.GrabHeight)
		ledge.SetGrabGrace(lc.GrabGrace)
		ledge.SetMoveThreshold(lc.MoveThreshold)
		ledge.SetMoveDelay(lc.MoveDelay)
		ledge.SetMoveDistance(lc.MoveDistance)
		ledge.SetMoveSpeed(lc.MoveSpeed)
	})

	components.CameraRig.Each(w, func(e *donburi.Entry) {
		rig := components.CameraRig.Get(e).Rig
		if rig == nil {
			return
		}
		rig.SetPitchLimits(cfg.Camera.PitchMin, cfg.Camera.PitchMax)
		rig.SetDistance(cfg.Camera.Distance)
		rig.SetSmoothing(cfg.Camera.Smoothing)
	})
}
