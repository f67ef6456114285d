// Package timer tracks elapsed time against a fixed duration for short blends and cooldowns.
package timer

import (
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// completionTolerance absorbs float drift from summing many small steps.
const completionTolerance = 1e-9

// Timer counts elapsed time up to a total duration. Progress runs from 0 to 1
// along a gween tween, linear unless an ease is set.
type Timer struct {
	tween    *gween.Tween
	easing   ease.TweenFunc
	total    float64
	elapsed  float64
	progress float64
}

// New creates a timer that completes after duration seconds. Negative
// durations are treated as zero, which makes the timer complete immediately.
func New(duration float64) *Timer {
	t := &Timer{}
	t.Restart(duration)
	return t
}

// NewEased is New with an easing curve applied to Progress.
func NewEased(duration float64, fn ease.TweenFunc) *Timer {
	t := &Timer{easing: fn}
	t.Restart(duration)
	return t
}

// Restart sets a new duration and rewinds the timer to zero.
func (t *Timer) Restart(duration float64) {
	if duration < 0 {
		duration = 0
	}
	if t.easing == nil {
		t.easing = ease.Linear
	}
	t.total = duration
	t.tween = gween.New(0, 1, float32(duration), t.easing)
	t.Reset()
}

// SetEase swaps the easing curve and rewinds the timer. A nil curve is linear.
func (t *Timer) SetEase(fn ease.TweenFunc) {
	t.easing = fn
	t.Restart(t.total)
}

// Reset rewinds the timer to zero without changing its duration.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.tween.Reset()
	t.progress = 0
	if t.total <= 0 {
		t.progress = 1
	}
}

// Update advances the timer by dt seconds. Negative steps are ignored.
func (t *Timer) Update(dt float64) {
	if dt <= 0 || t.IsCompleted() {
		return
	}
	t.elapsed += dt
	if t.elapsed >= t.total-completionTolerance {
		t.elapsed = t.total
		t.tween.Set(float32(t.total))
		t.progress = 1
		return
	}
	current, finished := t.tween.Set(float32(t.elapsed))
	if finished {
		t.progress = 1
		return
	}
	t.progress = float64(current)
}

func (t *Timer) Elapsed() float64 { return t.elapsed }

func (t *Timer) Total() float64 { return t.total }

// Remaining is the time left before completion.
func (t *Timer) Remaining() float64 {
	return t.total - t.elapsed
}

// Progress is the eased elapsed/total, 0 at the start and 1 once complete.
// A zero-duration timer reports 1.
func (t *Timer) Progress() float64 {
	return t.progress
}

func (t *Timer) IsCompleted() bool {
	return t.elapsed >= t.total
}

var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inquad":     ease.InQuad,
	"outquad":    ease.OutQuad,
	"inoutquad":  ease.InOutQuad,
	"incubic":    ease.InCubic,
	"outcubic":   ease.OutCubic,
	"inoutcubic": ease.InOutCubic,
	"insine":     ease.InSine,
	"outsine":    ease.OutSine,
	"inoutsine":  ease.InOutSine,
	"outexpo":    ease.OutExpo,
	"inoutexpo":  ease.InOutExpo,
}

// EaseByName looks up an easing curve by name, ignoring case. An empty name
// is linear.
func EaseByName(name string) (ease.TweenFunc, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ease.Linear, true
	}
	fn, ok := easings[name]
	return fn, ok
}
