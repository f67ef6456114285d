// Command headless runs the playground without a window, driving the player
// with a fixed stick direction and logging its state.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/williamstrand/Third-Person-Components/assets"
	"github.com/williamstrand/Third-Person-Components/components"
	"github.com/williamstrand/Third-Person-Components/config"
	"github.com/williamstrand/Third-Person-Components/loop"
	"github.com/williamstrand/Third-Person-Components/shared/logger"
	"github.com/williamstrand/Third-Person-Components/systems"
	"github.com/williamstrand/Third-Person-Components/systems/factory"
	"github.com/williamstrand/Third-Person-Components/tags"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "YAML config overlay (empty = defaults)")
	tickRate := flag.Int("tickrate", 60, "Frames per second")
	duration := flag.Duration("duration", 10*time.Second, "How long to run (0 = until interrupted)")
	moveX := flag.Float64("movex", 0, "Stick x (-1 to 1)")
	moveY := flag.Float64("movey", 1, "Stick y (-1 to 1)")
	flag.Parse()

	cfg := config.Default()
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

	level, err := assets.LoadLevel(cfg.World.Level)
	if err != nil {
		l.Fatal("Failed to load level", zap.String("level", cfg.World.Level), zap.Error(err))
	}

	w := donburi.NewWorld()
	if _, err := factory.CreatePlayground(w, level, cfg, config.DefaultSettings(), l); err != nil {
		l.Fatal("Failed to create playground", zap.Error(err))
	}
	defer systems.Close(w)

	stick := mgl64.Vec2{*moveX, *moveY}
	if stick.Len() > 1 {
		stick = stick.Normalize()
	}

	pipeline := systems.NewPipeline(w, cfg.World)
	pipeline.AddInput(func(w donburi.World, _ float64) {
		tags.Player.Each(w, func(e *donburi.Entry) {
			components.Input.Get(e).Move = stick
		})
	})
	pipeline.AddPhysics(reportEvery(l, int(1/cfg.World.FixedStep)))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	runner := loop.NewRunner(pipeline.Loop(), *tickRate, l)
	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		l.Error("Loop error", zap.Error(err))
		os.Exit(1)
	}
}

// reportEvery logs the player's state once every n physics ticks.
func reportEvery(l *zap.Logger, n int) systems.System {
	if n <= 0 {
		n = 1
	}
	tick := 0
	return func(w donburi.World, _ float64) {
		tick++
		if tick%n != 0 {
			return
		}
		player, ok := tags.Player.First(w)
		if !ok {
			return
		}
		c := components.Character.Get(player)
		pos := c.Body.Position()
		l.Info("Player",
			zap.Float64("x", pos.X()),
			zap.Float64("y", pos.Y()),
			zap.Float64("z", pos.Z()),
			zap.Stringer("mode", c.Movement.Mode()),
			zap.Bool("grounded", c.Movement.IsGrounded()),
		)
	}
}
