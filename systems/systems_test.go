package systems_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/williamstrand/Third-Person-Components/camera"
	"github.com/williamstrand/Third-Person-Components/components"
	"github.com/williamstrand/Third-Person-Components/config"
	"github.com/williamstrand/Third-Person-Components/movement"
	"github.com/williamstrand/Third-Person-Components/shared/leveldata"
	"github.com/williamstrand/Third-Person-Components/systems"
	"github.com/williamstrand/Third-Person-Components/systems/factory"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

const frame = 1.0 / 60.0

// ledgeLevel is a floor with a grabbable wall three units ahead of the spawn.
func ledgeLevel() *leveldata.LevelData {
	return &leveldata.LevelData{
		Name:  "ledge",
		Width: 20,
		Depth: 20,
		Boxes: []leveldata.BoxData{
			{Name: "floor", Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{20, 1, 20}, Layer: config.LayerGround},
			{Name: "wall", Min: mgl64.Vec3{5, 1, 12}, Max: mgl64.Vec3{15, 3.5, 13}, Layer: config.LayerGround | config.LayerLedge},
		},
		Spawns: []leveldata.SpawnPoint{{Position: mgl64.Vec3{10, 1, 10}}},
	}
}

func newTestScene(t *testing.T, settings config.PlayerSettings) (donburi.World, *donburi.Entry, *systems.Pipeline) {
	t.Helper()
	w := donburi.NewWorld()
	cfg := config.Default()
	player, err := factory.CreatePlayground(w, ledgeLevel(), cfg, settings, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("CreatePlayground: %v", err)
	}
	t.Cleanup(func() { systems.Close(w) })
	return w, player, systems.NewPipeline(w, cfg.World)
}

func TestPipelineRunsUpdateBeforePhysics(t *testing.T) {
	w := donburi.NewWorld()
	p := systems.NewEmptyPipeline(w, config.WorldConfig{FixedStep: 0.02, MaxSteps: 5})

	var order []string
	p.AddUpdate(func(donburi.World, float64) { order = append(order, "update") })
	p.AddInput(func(donburi.World, float64) { order = append(order, "input") })
	p.AddPhysics(
		func(donburi.World, float64) { order = append(order, "physics") },
		func(donburi.World, float64) { order = append(order, "world") },
	)

	if steps := p.Advance(0.045); steps != 2 {
		t.Fatalf("Advance() ran %d physics steps, want 2", steps)
	}
	if got, want := strings.Join(order, ","), "input,update,physics,world,physics,world"; got != want {
		t.Errorf("order = %s, want %s", got, want)
	}
}

func TestPlayerWalksOntoLedge(t *testing.T) {
	_, player, p := newTestScene(t, config.DefaultSettings())
	character := components.Character.Get(player)
	in := components.Input.Get(player)

	grabbed := false
	for i := 0; i < 600 && !grabbed; i++ {
		in.Move = mgl64.Vec2{0, 1}
		p.Advance(frame)
		grabbed = character.Movement.Mode() == movement.ModeLedge
	}
	if !grabbed {
		t.Fatalf("player never grabbed the ledge, stopped at %v", character.Body.Position())
	}
	if character.Movement.LockOwner() != movement.ModeLedge {
		t.Errorf("lock owner = %v, want ledge", character.Movement.LockOwner())
	}

	// Pushing into the wall while hanging must not shimmy or fall.
	for i := 0; i < 120; i++ {
		in.Move = mgl64.Vec2{0, 1}
		p.Advance(frame)
	}
	pos := character.Body.Position()
	if want := (mgl64.Vec3{10, 3.5, 11.75}); pos.Sub(want).Len() > 1e-6 {
		t.Errorf("hanging at %v, want %v", pos, want)
	}
	if character.Body.UseGravity() {
		t.Error("gravity should be off while hanging")
	}

	in.Release = true
	p.Advance(frame)
	if mode := character.Movement.Mode(); mode != movement.ModeFree {
		t.Errorf("mode after release = %v, want free", mode)
	}
	if !character.Body.UseGravity() {
		t.Error("gravity should be restored after release")
	}
	if in.Release {
		t.Error("release edge was not cleared at the end of the frame")
	}
}

func TestPlayerShimmiesAlongLedge(t *testing.T) {
	_, player, p := newTestScene(t, config.DefaultSettings())
	character := components.Character.Get(player)
	in := components.Input.Get(player)

	for i := 0; i < 600 && character.Movement.Mode() != movement.ModeLedge; i++ {
		in.Move = mgl64.Vec2{0, 1}
		p.Advance(frame)
	}
	if character.Movement.Mode() != movement.ModeLedge {
		t.Fatalf("player never grabbed the ledge, stopped at %v", character.Body.Position())
	}

	// The wall ends at x 15, so the player stops at its edge.
	for i := 0; i < 300; i++ {
		in.Move = mgl64.Vec2{1, 0}
		p.Advance(frame)
	}
	pos := character.Body.Position()
	if pos.X() < 14.5 || pos.X() > 15+1e-6 {
		t.Errorf("shimmied right to x %v, want the wall end at 15", pos.X())
	}
	if math.Abs(pos.Y()-3.5) > 1e-6 || math.Abs(pos.Z()-11.75) > 1e-6 {
		t.Errorf("left the ledge line while shimmying: %v", pos)
	}
	if mode := character.Movement.Mode(); mode != movement.ModeLedge {
		t.Fatalf("mode after shimmying = %v, want ledge", mode)
	}

	for i := 0; i < 120; i++ {
		in.Move = mgl64.Vec2{-1, 0}
		p.Advance(frame)
	}
	if back := character.Body.Position().X(); back >= pos.X()-1 {
		t.Errorf("shimmied left to x %v from %v, want at least a unit back", back, pos.X())
	}
}

func TestDashFollowsCameraRight(t *testing.T) {
	_, player, p := newTestScene(t, config.DefaultSettings())
	character := components.Character.Get(player)
	in := components.Input.Get(player)

	in.Move = mgl64.Vec2{1, 0}
	in.Dash = true
	p.Advance(frame)

	if mode := character.Movement.Mode(); mode != movement.ModeDashing {
		t.Fatalf("mode = %v, want dashing", mode)
	}
	if v := character.Body.Velocity(); v.Sub(mgl64.Vec3{15, 0, 0}).Len() > 1e-9 {
		t.Errorf("dash velocity = %v, want (15, 0, 0)", v)
	}

	// 5 units at 15 per second is a third of a second.
	for i := 0; i < 30; i++ {
		in.Move = mgl64.Vec2{}
		p.Advance(frame)
	}
	if mode := character.Movement.Mode(); mode != movement.ModeFree {
		t.Errorf("mode after the dash = %v, want free", mode)
	}
	if character.Movement.CanDash() {
		t.Error("dash should still be cooling down")
	}
}

func TestCameraLookUsesSettings(t *testing.T) {
	tests := []struct {
		name      string
		settings  config.PlayerSettings
		wantYaw   float64
		wantPitch float64
	}{
		{"default", config.PlayerSettings{LookSensitivity: 1}, 12, 0},
		{"double sensitivity", config.PlayerSettings{LookSensitivity: 2}, 24, 0},
		{"inverted", config.PlayerSettings{LookSensitivity: 2, InvertPitch: true}, 24, 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, player, p := newTestScene(t, tt.settings)
			components.Input.Get(player).Look = mgl64.Vec2{1, 1}

			// Look speed 120 for 0.1s turns 12 degrees per unit of input.
			p.Advance(0.1)

			rigEntry, ok := components.CameraRig.First(w)
			if !ok {
				t.Fatal("no camera rig")
			}
			yaw, pitch := components.CameraRig.Get(rigEntry).Rig.TargetAngles()
			if math.Abs(yaw-tt.wantYaw) > 1e-9 || math.Abs(pitch-tt.wantPitch) > 1e-9 {
				t.Errorf("target angles = (%v, %v), want (%v, %v)", yaw, pitch, tt.wantYaw, tt.wantPitch)
			}
		})
	}
}

type fakeSaver struct {
	saved []config.PlayerSettings
	err   error
}

func (s *fakeSaver) Save(settings config.PlayerSettings) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, settings)
	return nil
}

func TestToggleDebugSaves(t *testing.T) {
	w, player, p := newTestScene(t, config.DefaultSettings())
	settingsEntry, ok := components.Settings.First(w)
	if !ok {
		t.Fatal("no settings entity")
	}
	settings := components.Settings.Get(settingsEntry)

	components.Input.Get(player).ToggleDebug = true
	p.Advance(frame)
	if settings.Settings.ShowDebug || !settings.Dirty {
		t.Fatalf("after toggle: ShowDebug %v Dirty %v", settings.Settings.ShowDebug, settings.Dirty)
	}

	core, logs := observer.New(zapcore.WarnLevel)
	failing := &fakeSaver{err: errors.New("disk full")}
	systems.SaveSettings(w, failing, zap.New(core))
	if !settings.Dirty {
		t.Error("failed save should leave settings dirty")
	}
	if logs.FilterMessage("Settings: could not save").Len() != 1 {
		t.Error("failed save was not logged")
	}

	saver := &fakeSaver{}
	systems.SaveSettings(w, saver, nil)
	systems.SaveSettings(w, saver, nil)
	if len(saver.saved) != 1 || saver.saved[0].ShowDebug {
		t.Errorf("saved %v, want one save with debug off", saver.saved)
	}
	if settings.Dirty {
		t.Error("settings still dirty after a save")
	}
}

func TestCloseFreesBrain(t *testing.T) {
	w := donburi.NewWorld()
	if _, err := factory.CreatePlayground(w, ledgeLevel(), config.Default(), config.DefaultSettings(), nil); err != nil {
		t.Fatalf("CreatePlayground: %v", err)
	}
	rigEntry, _ := components.CameraRig.First(w)
	attachment := components.CameraRig.Get(rigEntry).Rig.Attachment()

	systems.Close(w)

	if !attachment.IsClosed() {
		t.Error("rig attachment still open after Close")
	}
	b, err := camera.NewBrain(config.Default().Brain)
	if err != nil {
		t.Fatalf("NewBrain after Close: %v", err)
	}
	b.Close()
}

func TestApplyConfig(t *testing.T) {
	w, player, _ := newTestScene(t, config.DefaultSettings())

	cfg := config.Default()
	cfg.World.Gravity = 20
	cfg.Character.Movement.Acceleration = 3
	cfg.Character.Movement.WalkSpeed = 7
	cfg.Character.Dash.Cooldown = 2
	cfg.Character.Ledge.MoveSpeed = 1
	cfg.Camera.Distance = 8
	cfg.Camera.PitchMin, cfg.Camera.PitchMax = 10, 30

	systems.ApplyConfig(w, cfg)

	worldEntry, _ := components.World.First(w)
	if g := components.World.Get(worldEntry).World.Gravity(); g != 20 {
		t.Errorf("gravity = %v, want 20", g)
	}
	c := components.Character.Get(player)
	if got := c.Movement.Integrator().Acceleration(); got != 3 {
		t.Errorf("acceleration = %v, want 3", got)
	}
	if got := c.Movement.Locomotion().Speed(); got != 7 || c.Config.Movement.WalkSpeed != 7 {
		t.Errorf("walk speed = %v (config %v), want 7", got, c.Config.Movement.WalkSpeed)
	}
	if got := c.Movement.DashAbility().Cooldown(); got != 2 {
		t.Errorf("dash cooldown = %v, want 2", got)
	}
	if got := c.Movement.Ledge().MoveSpeed(); got != 1 {
		t.Errorf("ledge move speed = %v, want 1", got)
	}

	rigEntry, _ := components.CameraRig.First(w)
	rig := components.CameraRig.Get(rigEntry).Rig
	if rig.MaxDistance() != 8 {
		t.Errorf("rig distance = %v, want 8", rig.MaxDistance())
	}
	rig.Rotate(mgl64.Vec2{0, 1}, 90)
	if _, pitch := rig.TargetAngles(); pitch != 10 {
		t.Errorf("pitch after looking up = %v, want the new minimum 10", pitch)
	}

	systems.ApplyConfig(w, nil)
}
