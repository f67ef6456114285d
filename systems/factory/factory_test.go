package factory

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/williamstrand/Third-Person-Components/camera"
	"github.com/williamstrand/Third-Person-Components/components"
	"github.com/williamstrand/Third-Person-Components/config"
	"github.com/williamstrand/Third-Person-Components/shared/leveldata"
	"github.com/williamstrand/Third-Person-Components/tags"
	"github.com/yohamta/donburi"
	"go.uber.org/zap/zaptest"
)

func testLevel() *leveldata.LevelData {
	return &leveldata.LevelData{
		Name:  "test",
		Width: 20,
		Depth: 20,
		Boxes: []leveldata.BoxData{
			{Name: "floor", Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{20, 1, 20}, Layer: config.LayerGround},
		},
		Spawns: []leveldata.SpawnPoint{
			{Position: mgl64.Vec3{10, 1, 10}, Yaw: 90},
		},
	}
}

func closeBrains(w donburi.World) {
	components.Brain.Each(w, func(e *donburi.Entry) {
		components.Brain.Get(e).Brain.Close()
	})
}

func TestCreatePlayground(t *testing.T) {
	w := donburi.NewWorld()
	t.Cleanup(func() { closeBrains(w) })

	player, err := CreatePlayground(w, testLevel(), config.Default(), config.DefaultSettings(), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("CreatePlayground: %v", err)
	}

	if !player.HasComponent(tags.Player) || !player.HasComponent(components.Input) {
		t.Error("player entry is missing the player tag or input")
	}
	body := components.Character.Get(player).Body
	if body.Position() != (mgl64.Vec3{10, 1, 10}) {
		t.Errorf("body position = %v, want the spawn", body.Position())
	}
	if fwd := body.Rotation().Rotate(mgl64.Vec3{0, 0, 1}); fwd.Sub(mgl64.Vec3{1, 0, 0}).Len() > 1e-9 {
		t.Errorf("body faces %v, want the spawn yaw of +X", fwd)
	}

	rigEntry, ok := components.CameraRig.First(w)
	if !ok {
		t.Fatal("no camera rig")
	}
	rig := components.CameraRig.Get(rigEntry)
	if rig.Target != player.Entity() {
		t.Error("rig does not follow the player")
	}
	brainEntry, ok := components.Brain.First(w)
	if !ok {
		t.Fatal("no brain")
	}
	if components.Brain.Get(brainEntry).Brain.Current() != rig.Rig.Attachment() {
		t.Error("brain is not bound to the player's rig")
	}
	if _, ok := components.Settings.First(w); !ok {
		t.Error("no settings entity")
	}
}

func TestSecondPlaygroundBrain(t *testing.T) {
	first := donburi.NewWorld()
	t.Cleanup(func() { closeBrains(first) })
	if _, err := CreatePlayground(first, testLevel(), config.Default(), config.DefaultSettings(), nil); err != nil {
		t.Fatalf("CreatePlayground: %v", err)
	}

	second := donburi.NewWorld()
	_, err := CreatePlayground(second, testLevel(), config.Default(), config.DefaultSettings(), nil)
	if !errors.Is(err, camera.ErrAlreadyExists) {
		t.Errorf("second playground error = %v, want ErrAlreadyExists", err)
	}
}

func TestFactoryErrors(t *testing.T) {
	w := donburi.NewWorld()

	if _, err := CreateCharacter(w, leveldata.SpawnPoint{}, config.Default().Character, true, nil); !errors.Is(err, ErrNoWorld) {
		t.Errorf("CreateCharacter without a world = %v, want ErrNoWorld", err)
	}

	level := testLevel()
	level.Spawns = nil
	if _, err := CreatePlayground(w, level, config.Default(), config.DefaultSettings(), nil); !errors.Is(err, leveldata.ErrNoSpawn) {
		t.Errorf("CreatePlayground without spawns = %v, want ErrNoSpawn", err)
	}

	CreateWorld(w, testLevel(), config.Default().World)
	settings := CreateSettings(w, config.DefaultSettings())
	if _, err := CreateCamera(w, settings, config.Default().Camera); !errors.Is(err, ErrNoTarget) {
		t.Errorf("CreateCamera on a non-character = %v, want ErrNoTarget", err)
	}
}
