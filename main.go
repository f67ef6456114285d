package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/williamstrand/Third-Person-Components/assets"
	"github.com/williamstrand/Third-Person-Components/config"
	"github.com/williamstrand/Third-Person-Components/fonts"
	"github.com/williamstrand/Third-Person-Components/scenes"
	"github.com/williamstrand/Third-Person-Components/shared/logger"
	"go.uber.org/zap"
)

const appName = "third-person-playground"

type Game struct {
	cfg   *config.Config
	scene scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func main() {
	configPath := flag.String("config", "", "YAML config overlay, reloaded on change (empty = defaults)")
	flag.Parse()

	cfg := config.C
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	l, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = l.Sync() }()

	if err := fonts.LoadDefaults(); err != nil {
		l.Fatal("Failed to load fonts", zap.Error(err))
	}

	level, err := assets.LoadLevel(cfg.World.Level)
	if err != nil {
		l.Fatal("Failed to load level", zap.String("level", cfg.World.Level), zap.Error(err))
	}

	opts := []scenes.PlaygroundOption{scenes.WithLogger(l)}

	// Initialize persistence and load saved settings
	if store, err := config.OpenSettings(appName); err != nil {
		l.Warn("Could not initialize persistence", zap.Error(err))
	} else {
		settings, err := store.Load()
		if err != nil {
			l.Warn("Could not load settings", zap.Error(err))
		}
		opts = append(opts, scenes.WithSettings(settings, store))
	}

	if *configPath != "" {
		watcher, err := config.NewWatcher(*configPath, l)
		if err != nil {
			l.Warn("Config hot reload disabled", zap.Error(err))
		} else {
			defer func() { _ = watcher.Close() }()
			opts = append(opts, scenes.WithReloads(watcher.Updates))
		}
	}

	scene := scenes.NewPlaygroundScene(cfg, level, opts...)
	defer scene.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("Third-Person Playground")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(&Game{cfg: cfg, scene: scene}); err != nil {
		l.Error("Game exited", zap.Error(err))
	}
}
