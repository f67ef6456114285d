package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/williamstrand/Third-Person-Components/components"
	"github.com/williamstrand/Third-Person-Components/config"
	"github.com/williamstrand/Third-Person-Components/input"
	"github.com/williamstrand/Third-Person-Components/render"
	"github.com/williamstrand/Third-Person-Components/shared/leveldata"
	"github.com/williamstrand/Third-Person-Components/systems"
	"github.com/williamstrand/Third-Person-Components/systems/factory"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// PlaygroundScene drops a player into a level with a following camera.
type PlaygroundScene struct {
	world    donburi.World
	pipeline *systems.Pipeline

	cfg      *config.Config
	level    *leveldata.LevelData
	settings config.PlayerSettings
	saver    systems.SettingsSaver
	reloads  <-chan *config.Config
	logger   *zap.Logger

	once sync.Once
	err  error
}

type PlaygroundOption func(*PlaygroundScene)

// WithSettings starts the scene with saved settings and writes changes back through saver.
func WithSettings(settings config.PlayerSettings, saver systems.SettingsSaver) PlaygroundOption {
	return func(ps *PlaygroundScene) {
		ps.settings = settings
		ps.saver = saver
	}
}

// WithReloads applies every config received on ch to the running scene.
func WithReloads(ch <-chan *config.Config) PlaygroundOption {
	return func(ps *PlaygroundScene) {
		ps.reloads = ch
	}
}

func WithLogger(logger *zap.Logger) PlaygroundOption {
	return func(ps *PlaygroundScene) {
		if logger != nil {
			ps.logger = logger
		}
	}
}

func NewPlaygroundScene(cfg *config.Config, level *leveldata.LevelData, opts ...PlaygroundOption) *PlaygroundScene {
	ps := &PlaygroundScene{
		cfg:      cfg,
		level:    level,
		settings: config.DefaultSettings(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(ps)
	}
	return ps
}

func (ps *PlaygroundScene) Update() error {
	ps.once.Do(ps.configure)
	if ps.err != nil {
		return ps.err
	}
	if input.QuitRequested(input.Default) {
		ps.Close()
		return ebiten.Termination
	}

	ps.applyReloads()
	input.Poll(ps.world, input.Default)
	ps.pipeline.Advance(1 / float64(ebiten.TPS()))
	systems.SaveSettings(ps.world, ps.saver, ps.logger)
	return nil
}

func (ps *PlaygroundScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.world == nil {
		return
	}
	render.DrawWorld(ps.world, screen, ps.cfg.Window.Scale)
	if e, ok := components.Settings.First(ps.world); ok && components.Settings.Get(e).Settings.ShowDebug {
		render.DrawHUD(ps.world, screen)
	}
}

// Close releases the scene's camera brain.
func (ps *PlaygroundScene) Close() {
	if ps.world != nil {
		systems.Close(ps.world)
	}
}

func (ps *PlaygroundScene) configure() {
	ps.world = donburi.NewWorld()
	if _, err := factory.CreatePlayground(ps.world, ps.level, ps.cfg, ps.settings, ps.logger); err != nil {
		ps.err = err
		return
	}
	ps.pipeline = systems.NewPipeline(ps.world, ps.cfg.World)
}

// applyReloads drains pending config reloads without blocking.
func (ps *PlaygroundScene) applyReloads() {
	for {
		select {
		case cfg, ok := <-ps.reloads:
			if !ok {
				ps.reloads = nil
				return
			}
			ps.cfg = cfg
			systems.ApplyConfig(ps.world, cfg)
			ps.logger.Info("Playground: config reloaded")
		default:
			return
		}
	}
}
