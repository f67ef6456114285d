package simworld

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/williamstrand/Third-Person-Components/physics"
	"github.com/williamstrand/Third-Person-Components/shared/gamemath"
	"github.com/williamstrand/Third-Person-Components/shared/leveldata"
)

const (
	layerGround = physics.LayerMask(1)
	layerLedge  = physics.LayerMask(2)
)

func newTestWorld() *World {
	w := New(32, 32)
	w.AddBox(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{32, 1, 32}, layerGround)
	w.AddBox(mgl64.Vec3{10, 1, 0}, mgl64.Vec3{11, 4, 32}, layerGround|layerLedge)
	return w
}

func TestRaycast(t *testing.T) {
	w := newTestWorld()

	tests := []struct {
		name       string
		origin     mgl64.Vec3
		dir        mgl64.Vec3
		maxDist    float64
		mask       physics.LayerMask
		wantHit    bool
		wantDist   float64
		wantNormal mgl64.Vec3
	}{
		{"wall ahead", mgl64.Vec3{5, 2, 5}, mgl64.Vec3{1, 0, 0}, 10, physics.AllLayers, true, 5, mgl64.Vec3{-1, 0, 0}},
		{"wall from behind", mgl64.Vec3{15, 2, 5}, mgl64.Vec3{-1, 0, 0}, 10, physics.AllLayers, true, 4, mgl64.Vec3{1, 0, 0}},
		{"floor below", mgl64.Vec3{5, 3, 5}, mgl64.Vec3{0, -1, 0}, 10, layerGround, true, 2, mgl64.Vec3{0, 1, 0}},
		{"out of range", mgl64.Vec3{5, 2, 5}, mgl64.Vec3{1, 0, 0}, 4.5, physics.AllLayers, false, 0, mgl64.Vec3{}},
		{"masked out", mgl64.Vec3{5, 3, 5}, mgl64.Vec3{0, -1, 0}, 10, layerLedge, false, 0, mgl64.Vec3{}},
		{"over the wall", mgl64.Vec3{5, 5, 5}, mgl64.Vec3{1, 0, 0}, 10, physics.AllLayers, false, 0, mgl64.Vec3{}},
		{"origin inside is ignored", mgl64.Vec3{10.5, 2, 5}, mgl64.Vec3{1, 0, 0}, 10, layerLedge, false, 0, mgl64.Vec3{}},
		{"zero direction", mgl64.Vec3{5, 2, 5}, mgl64.Vec3{}, 10, physics.AllLayers, false, 0, mgl64.Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := w.Raycast(tt.origin, tt.dir, tt.maxDist, tt.mask)
			if ok != tt.wantHit {
				t.Fatalf("hit = %v, want %v", ok, tt.wantHit)
			}
			if !ok {
				return
			}
			if math.Abs(hit.Distance-tt.wantDist) > 1e-9 {
				t.Errorf("Distance = %v, want %v", hit.Distance, tt.wantDist)
			}
			if hit.Normal != tt.wantNormal {
				t.Errorf("Normal = %v, want %v", hit.Normal, tt.wantNormal)
			}
			want := tt.origin.Add(gamemath.SafeNormalize(tt.dir).Mul(tt.wantDist))
			if !gamemath.NearVec3(hit.Point, want, 1e-9) {
				t.Errorf("Point = %v, want %v", hit.Point, want)
			}
		})
	}
}

func TestRaycastAnchorIsTopCenter(t *testing.T) {
	w := newTestWorld()
	hit, ok := w.Raycast(mgl64.Vec3{5, 2, 5}, mgl64.Vec3{1, 0, 0}, 10, layerLedge)
	if !ok {
		t.Fatal("expected a hit on the ledge wall")
	}
	if want := (mgl64.Vec3{10.5, 4, 16}); hit.Anchor != want {
		t.Errorf("Anchor = %v, want %v", hit.Anchor, want)
	}
}

func TestSphereCast(t *testing.T) {
	w := newTestWorld()
	down := gamemath.Down

	tests := []struct {
		name   string
		origin mgl64.Vec3
		radius float64
		dist   float64
		mask   physics.LayerMask
		want   int
	}{
		{"standing on floor", mgl64.Vec3{5, 1, 5}, 0.3, 0.1, layerGround, 1},
		{"just above floor", mgl64.Vec3{5, 1.35, 5}, 0.3, 0.1, layerGround, 1},
		{"high in the air", mgl64.Vec3{5, 3, 5}, 0.3, 0.1, layerGround, 0},
		{"touching wall and floor", mgl64.Vec3{9.8, 1, 5}, 0.3, 0.1, layerGround, 2},
		{"masked out", mgl64.Vec3{5, 1, 5}, 0.3, 0.1, layerLedge, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.SphereCast(tt.origin, tt.radius, down, tt.dist, tt.mask); got != tt.want {
				t.Errorf("SphereCast() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBodyFallsAndLands(t *testing.T) {
	w := newTestWorld()
	body := w.AddBody(mgl64.Vec3{5, 3, 5}, 0.4, 1.8)

	for i := 0; i < 200; i++ {
		w.Step(0.02)
	}

	if got := body.Position().Y(); got != 1 {
		t.Errorf("body height = %v, want 1", got)
	}
	if !body.Grounded() {
		t.Error("body should be grounded")
	}
	if vy := body.Velocity().Y(); vy != 0 {
		t.Errorf("vertical velocity = %v, want 0", vy)
	}
}

func TestBodyWithoutGravityHolds(t *testing.T) {
	w := newTestWorld()
	body := w.AddBody(mgl64.Vec3{5, 3, 5}, 0.4, 1.8)
	body.SetUseGravity(false)

	for i := 0; i < 50; i++ {
		w.Step(0.02)
	}
	if got := body.Position(); got != (mgl64.Vec3{5, 3, 5}) {
		t.Errorf("body moved to %v without gravity or velocity", got)
	}
}

func TestBodyStopsAtWall(t *testing.T) {
	w := newTestWorld()
	body := w.AddBody(mgl64.Vec3{5, 1, 5}, 0.4, 1.8)
	body.SetVelocity(mgl64.Vec3{2, 0, 0})

	for i := 0; i < 200; i++ {
		w.Step(0.02)
	}

	if got := body.Position().X(); math.Abs(got-9.6) > 1e-9 {
		t.Errorf("body x = %v, want 9.6 against the wall", got)
	}
	if vx := body.Velocity().X(); vx != 0 {
		t.Errorf("horizontal velocity = %v, want 0 after hitting wall", vx)
	}
	if got := body.Position().Y(); got != 1 {
		t.Errorf("body height = %v, want 1", got)
	}
}

func TestBodyRestsAnywhereOnFloor(t *testing.T) {
	for _, pos := range []mgl64.Vec3{
		{5, 1, 5},
		{5.5, 1, 5.5},
		{2.41, 1, 7.3},
		{0.4, 1, 0.4},
		{31.6, 1, 31.6},
	} {
		w := newTestWorld()
		body := w.AddBody(pos, 0.4, 1.8)
		for i := 0; i < 100; i++ {
			w.Step(0.02)
		}
		if got := body.Position().Y(); got != 1 {
			t.Errorf("body at %v sank to y %v, want 1", pos, got)
		}
		if !body.Grounded() {
			t.Errorf("body at %v should be grounded", pos)
		}
	}
}

func TestBodyStopsAtWallFromAnyStart(t *testing.T) {
	tests := []struct {
		name  string
		start mgl64.Vec3
		vx    float64
		wantX float64
	}{
		{"slow from the left", mgl64.Vec3{7.25, 1, 3.3}, 1.5, 9.6},
		{"fast from the left", mgl64.Vec3{2.41, 1, 20.7}, 12, 9.6},
		{"from the right", mgl64.Vec3{14.2, 1, 9.9}, -3, 11.4},
		{"fast from the right", mgl64.Vec3{30.05, 1, 0.5}, -15, 11.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			body := w.AddBody(tt.start, 0.4, 1.8)
			body.SetVelocity(mgl64.Vec3{tt.vx, 0, 0})
			for i := 0; i < 200; i++ {
				w.Step(0.02)
			}
			if got := body.Position().X(); math.Abs(got-tt.wantX) > 1e-9 {
				t.Errorf("body x = %v, want %v against the wall", got, tt.wantX)
			}
			if got := body.Position().Y(); got != 1 {
				t.Errorf("body height = %v, want 1", got)
			}
		})
	}
}

func TestBodySlidesAlongFloor(t *testing.T) {
	w := newTestWorld()
	body := w.AddBody(mgl64.Vec3{2, 1, 2}, 0.4, 1.8)
	body.SetVelocity(mgl64.Vec3{0, 0, 3})

	for i := 0; i < 50; i++ {
		w.Step(0.02)
	}
	if got := body.Position().Z(); math.Abs(got-5) > 1e-9 {
		t.Errorf("body z = %v, want 5", got)
	}
}

func TestRemoveBody(t *testing.T) {
	w := newTestWorld()
	body := w.AddBody(mgl64.Vec3{5, 3, 5}, 0.4, 1.8)
	w.RemoveBody(body)
	if len(w.Bodies()) != 0 {
		t.Fatalf("Bodies() has %d entries after removal", len(w.Bodies()))
	}
	w.Step(0.1)
	if body.Position().Y() != 3 {
		t.Error("removed body should not be simulated")
	}
}

func TestFromLevel(t *testing.T) {
	level := &leveldata.LevelData{
		Name:  "flat",
		Width: 12.5,
		Depth: 8,
		Boxes: []leveldata.BoxData{
			{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{12.5, 1, 8}, Layer: layerGround},
			{Min: mgl64.Vec3{6, 1, 0}, Max: mgl64.Vec3{7, 3, 8}, Layer: layerLedge},
		},
	}
	w := FromLevel(level, WithGravity(20))

	if width, depth := w.Size(); width != 13 || depth != 8 {
		t.Errorf("Size() = %vx%v, want 13x8", width, depth)
	}
	if len(w.Boxes()) != 2 || w.Gravity() != 20 {
		t.Fatalf("boxes %d gravity %v", len(w.Boxes()), w.Gravity())
	}
	if _, ok := w.Raycast(mgl64.Vec3{2, 2, 4}, mgl64.Vec3{1, 0, 0}, 10, layerLedge); !ok {
		t.Error("ledge box from the level is not hit")
	}
}
