package loop

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
)

type recorder struct {
	events []string
	dts    []float64
}

func newRecordingLoop(step float64, maxSteps int) (*Loop, *recorder) {
	rec := &recorder{}
	l := New(step, maxSteps,
		func(dt float64) { rec.events = append(rec.events, "update") },
		func(dt float64) {
			rec.events = append(rec.events, "physics")
			rec.dts = append(rec.dts, dt)
		},
	)
	return l, rec
}

func TestAdvanceRunsDueSteps(t *testing.T) {
	tests := []struct {
		name      string
		frames    []float64
		wantSteps uint64
	}{
		{"exact steps", []float64{0.04}, 2},
		{"accumulates", []float64{0.015, 0.015, 0.015}, 2},
		{"short frames", []float64{0.005, 0.005}, 0},
		{"capped", []float64{1}, 5},
		{"zero frame", []float64{0}, 0},
		{"negative frame", []float64{-1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, rec := newRecordingLoop(0.02, 5)
			for _, f := range tt.frames {
				l.Advance(f)
			}
			if l.Steps() != tt.wantSteps {
				t.Errorf("Steps() = %d, want %d", l.Steps(), tt.wantSteps)
			}
			for _, dt := range rec.dts {
				if dt != 0.02 {
					t.Errorf("physics dt = %v, want the fixed step", dt)
				}
			}
		})
	}
}

func TestUpdateRunsBeforePhysics(t *testing.T) {
	l, rec := newRecordingLoop(0.02, 5)
	l.Advance(0.04)

	want := []string{"update", "physics", "physics"}
	if len(rec.events) != len(want) {
		t.Fatalf("events = %v, want %v", rec.events, want)
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Errorf("event %d = %s, want %s", i, rec.events[i], want[i])
		}
	}
}

func TestCapDropsLeftover(t *testing.T) {
	l, _ := newRecordingLoop(0.02, 3)
	if n := l.Advance(1); n != 3 {
		t.Fatalf("Advance(1) ran %d steps, want 3", n)
	}
	if l.Alpha() != 0 || l.Dropped() != 1 {
		t.Errorf("alpha %v dropped %d after the cap", l.Alpha(), l.Dropped())
	}
	if n := l.Advance(0.02); n != 1 {
		t.Errorf("next frame ran %d steps, want 1", n)
	}
}

func TestAlpha(t *testing.T) {
	l, _ := newRecordingLoop(0.02, 5)
	l.Advance(0.03)
	if math.Abs(l.Alpha()-0.5) > 1e-9 {
		t.Errorf("Alpha() = %v, want 0.5", l.Alpha())
	}
}

func TestNewDefaults(t *testing.T) {
	l := New(0, 0, nil, nil)
	if l.FixedStep() <= 0 {
		t.Fatalf("FixedStep() = %v", l.FixedStep())
	}
	if n := l.Advance(10); n != 1 {
		t.Errorf("Advance ran %d steps with a cap of 1", n)
	}
}

func TestRunnerStops(t *testing.T) {
	var updates int
	l := New(0.001, 10, func(float64) { updates++ }, nil)
	r := NewRunner(l, 1000, zaptest.NewLogger(t))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := r.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run() = %v, want deadline exceeded", err)
	}
	if updates == 0 {
		t.Error("runner never advanced the loop")
	}

	done := make(chan error, 1)
	go func() { done <- r.Run(context.Background()) }()
	r.Stop()
	r.Stop()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run after Stop = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Stop")
	}
}
