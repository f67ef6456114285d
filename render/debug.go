package render

import (
	"cmp"
	"fmt"
	"image/color"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/williamstrand/Third-Person-Components/components"
	"github.com/williamstrand/Third-Person-Components/config"
	"github.com/williamstrand/Third-Person-Components/fonts"
	"github.com/williamstrand/Third-Person-Components/physics/simworld"
	"github.com/williamstrand/Third-Person-Components/shared/gamemath"
	"github.com/williamstrand/Third-Person-Components/tags"
	"github.com/yohamta/donburi"
)

var (
	groundColor = color.RGBA{70, 70, 80, 255}
	ledgeColor  = color.RGBA{200, 150, 40, 255}
	playerColor = color.RGBA{40, 110, 255, 255}
	npcColor    = color.RGBA{230, 60, 60, 255}
	cameraColor = color.RGBA{80, 230, 120, 255}
	rigColor    = color.RGBA{80, 230, 120, 110}
	textColor   = color.RGBA{235, 235, 235, 255}
)

// view maps the world's ground plane onto the screen, centered on a point.
// +Z points up the screen.
type view struct {
	center mgl64.Vec3
	scale  float64
	w, h   float64
}

func (v view) project(p mgl64.Vec3) (float32, float32) {
	x := (p.X()-v.center.X())*v.scale + v.w/2
	y := v.h/2 - (p.Z()-v.center.Z())*v.scale
	return float32(x), float32(y)
}

// DrawWorld draws a top-down view of the level, its characters and the
// camera, centered on the player.
func DrawWorld(w donburi.World, screen *ebiten.Image, scale float64) {
	screen.Fill(color.RGBA{20, 20, 24, 255})

	worldEntry, ok := components.World.First(w)
	if !ok {
		return
	}
	sim := components.World.Get(worldEntry).World
	if sim == nil {
		return
	}

	v := view{scale: scale, w: float64(screen.Bounds().Dx()), h: float64(screen.Bounds().Dy())}
	if player, ok := tags.Player.First(w); ok {
		v.center = components.Character.Get(player).Body.Position()
	}

	drawBoxes(screen, sim, v)

	components.Character.Each(w, func(e *donburi.Entry) {
		body := components.Character.Get(e).Body
		c := npcColor
		if e.HasComponent(tags.Player) {
			c = playerColor
		}
		x, y := v.project(body.Position())
		vector.DrawFilledCircle(screen, x, y, float32(body.Radius()*v.scale), c, true)
		fx, fy := v.project(body.Position().Add(gamemath.ForwardOf(body.Rotation()).Mul(body.Radius() * 2)))
		vector.StrokeLine(screen, x, y, fx, fy, 2, textColor, true)
	})

	components.CameraRig.Each(w, func(e *donburi.Entry) {
		rig := components.CameraRig.Get(e).Rig
		if rig == nil {
			return
		}
		x, y := v.project(rig.Attachment().Position())
		vector.DrawFilledCircle(screen, x, y, 3, rigColor, true)
	})

	if e, ok := components.Brain.First(w); ok {
		if b := components.Brain.Get(e).Brain; b != nil {
			pose := b.Pose()
			x, y := v.project(pose.Position)
			fx, fy := v.project(pose.Position.Add(gamemath.Flatten(pose.Forward).Mul(1.5)))
			vector.DrawFilledCircle(screen, x, y, 4, cameraColor, true)
			vector.StrokeLine(screen, x, y, fx, fy, 1, cameraColor, true)
		}
	}
}

// drawBoxes fills boxes lowest first so taller boxes stay visible. Taller
// boxes are drawn lighter.
func drawBoxes(screen *ebiten.Image, sim *simworld.World, v view) {
	boxes := slices.Clone(sim.Boxes())
	slices.SortStableFunc(boxes, func(a, b *simworld.Box) int {
		return cmp.Compare(a.Max.Y(), b.Max.Y())
	})
	for _, box := range boxes {
		x0, y0 := v.project(mgl64.Vec3{box.Min.X(), 0, box.Max.Z()})
		x1, y1 := v.project(mgl64.Vec3{box.Max.X(), 0, box.Min.Z()})
		c := shade(groundColor, box.Max.Y())
		if box.Layer&config.LayerLedge != 0 {
			c = shade(ledgeColor, box.Max.Y())
		}
		vector.FillRect(screen, x0, y0, x1-x0, y1-y0, c, false)
		vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, color.Black, false)
	}
}

func shade(c color.RGBA, height float64) color.RGBA {
	f := math.Min(1, 0.6+height*0.08)
	return color.RGBA{uint8(float64(c.R) * f), uint8(float64(c.G) * f), uint8(float64(c.B) * f), c.A}
}

// DrawHUD prints the player's movement and camera state in the top-left corner.
func DrawHUD(w donburi.World, screen *ebiten.Image) {
	lines := []string{fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS())}

	if player, ok := tags.Player.First(w); ok {
		c := components.Character.Get(player)
		mv := c.Movement
		pos := c.Body.Position()
		lines = append(lines,
			fmt.Sprintf("pos %.2f %.2f %.2f", pos.X(), pos.Y(), pos.Z()),
			fmt.Sprintf("mode %s  lock %s  grounded %v", mv.Mode(), mv.LockOwner(), mv.IsGrounded()),
			fmt.Sprintf("ledge %s  dash cooldown %.2f", mv.Ledge().State(), mv.DashAbility().CooldownRemaining()),
		)
	}
	if e, ok := components.CameraRig.First(w); ok {
		if rig := components.CameraRig.Get(e).Rig; rig != nil {
			yaw, pitch := rig.Angles()
			lines = append(lines, fmt.Sprintf("rig yaw %.1f pitch %.1f dist %.2f/%.2f", yaw, pitch, rig.Distance(), rig.MaxDistance()))
		}
	}
	if e, ok := components.Brain.First(w); ok {
		if b := components.Brain.Get(e).Brain; b != nil {
			lines = append(lines, fmt.Sprintf("brain %s %.0f%%", b.State(), b.BlendProgress()*100))
		}
	}

	face := fonts.DebugSmall.Get()
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(8, 8+float64(i)*16)
		op.ColorScale.ScaleWithColor(textColor)
		text.Draw(screen, line, face, op)
	}
}
