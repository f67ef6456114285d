package loop

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Runner drives a Loop from a wall-clock ticker when no game engine owns
// the frame.
type Runner struct {
	loop     *Loop
	tickRate int
	logger   *zap.Logger
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewRunner(loop *Loop, tickRate int, logger *zap.Logger) *Runner {
	if tickRate <= 0 {
		tickRate = 60
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		loop:     loop,
		tickRate: tickRate,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Run advances the loop by the measured frame time on every tick until ctx
// is done or Stop is called.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(r.tickRate))
	defer ticker.Stop()

	r.logger.Info("Loop: started", zap.Int("tickRate", r.tickRate))
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Loop: stopped", zap.Uint64("steps", r.loop.Steps()))
			return ctx.Err()
		case <-r.stopChan:
			r.logger.Info("Loop: stopped", zap.Uint64("steps", r.loop.Steps()))
			return nil
		case now := <-ticker.C:
			r.loop.Advance(now.Sub(last).Seconds())
			last = now
		}
	}
}

func (r *Runner) Stop() {
	r.stopOnce.Do(func() { close(r.stopChan) })
}
