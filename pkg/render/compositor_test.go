package render

import (
	"testing"

	"github.com/Faultbox/railway3d/pkg/camera"
	"github.com/Faultbox/railway3d/pkg/math"
	"github.com/Faultbox/railway3d/pkg/scene"
)

// recorder captures canvas calls in order.
type recorder struct {
	fills   []paintOp
	strokes []paintOp
	ops     []paintOp // fills and strokes interleaved
}

type paintOp struct {
	kind  string
	color scene.RGB
	pts   []math.Vec2
}

func (r *recorder) Clear(c scene.RGB) {}

func (r *recorder) FillPolygon(pts []math.Vec2, c scene.RGB) {
	op := paintOp{"fill", c, append([]math.Vec2(nil), pts...)}
	r.fills = append(r.fills, op)
	r.ops = append(r.ops, op)
}

func (r *recorder) StrokePolygon(pts []math.Vec2, c scene.RGB) {
	op := paintOp{"stroke", c, append([]math.Vec2(nil), pts...)}
	r.strokes = append(r.strokes, op)
	r.ops = append(r.ops, op)
}

func testProjector() camera.Projector {
	return camera.Projector{FOV: 60, Width: 1280, Height: 720}
}

// frontTri is a triangle facing the default camera, centered on screen,
// shifted sideways by dx world units.
func frontTri(dx float32) [3]math.Vec3 {
	return [3]math.Vec3{
		{X: dx - 20, Y: 100, Z: -10},
		{X: dx + 20, Y: 100, Z: -10},
		{X: dx, Y: 100, Z: 20},
	}
}

func TestRenderPainterOrder(t *testing.T) {
	// Overlapping triangles: B with the higher key (2) is drawn first,
	// A with key (1) is drawn on top.
	pool := scene.NewPool()
	a := pool.Allocate(frontTri(2), scene.RGB{R: 255, G: 0, B: 0}, scene.Key(1))
	b := pool.Allocate(frontTri(-2), scene.RGB{R: 0, G: 0, B: 255}, scene.Key(2))

	rec := &recorder{}
	c := New(pool, testProjector(), rec)
	c.Render(camera.Pose{})

	if len(rec.fills) != 2 {
		t.Fatalf("got %d fills, want 2", len(rec.fills))
	}
	if rec.fills[0].color != pool.Color(b) {
		t.Errorf("first fill color = %v, want triangle B's %v", rec.fills[0].color, pool.Color(b))
	}
	if rec.fills[1].color != pool.Color(a) {
		t.Errorf("second fill color = %v, want triangle A's %v", rec.fills[1].color, pool.Color(a))
	}
}

func TestRenderTieBreakByDepth(t *testing.T) {
	// Equal depth keys: the farther triangle is drawn first.
	pool := scene.NewPool()
	near := [3]math.Vec3{{X: -20, Y: 50, Z: -10}, {X: 20, Y: 50, Z: -10}, {X: 0, Y: 50, Z: 20}}
	far := [3]math.Vec3{{X: -20, Y: 300, Z: -10}, {X: 20, Y: 300, Z: -10}, {X: 0, Y: 300, Z: 20}}
	_ = pool.Allocate(near, scene.RGB{R: 1, G: 1, B: 1}, scene.Key(4))
	_ = pool.Allocate(far, scene.RGB{R: 2, G: 2, B: 2}, scene.Key(4))

	rec := &recorder{}
	c := New(pool, testProjector(), rec)
	c.Render(camera.Pose{})

	if len(rec.fills) != 2 {
		t.Fatalf("got %d fills, want 2", len(rec.fills))
	}
	if rec.fills[0].color != (scene.RGB{R: 2, G: 2, B: 2}) {
		t.Errorf("first fill = %v, want the far triangle", rec.fills[0].color)
	}
}

func TestRenderOrderStableAcrossFrames(t *testing.T) {
	// Identical keys and depths: relative order must not change between
	// frames when nothing else does.
	pool := scene.NewPool()
	for i := 0; i < 5; i++ {
		pool.Allocate(frontTri(0), scene.RGB{R: uint8(i), G: 0, B: 0}, scene.Key(3))
	}

	rec1 := &recorder{}
	c := New(pool, testProjector(), rec1)
	c.Render(camera.Pose{})

	rec2 := &recorder{}
	c2 := New(pool, testProjector(), rec2)
	c2.Render(camera.Pose{})

	if len(rec1.fills) != len(rec2.fills) {
		t.Fatalf("frame fill counts differ: %d vs %d", len(rec1.fills), len(rec2.fills))
	}
	for i := range rec1.fills {
		if rec1.fills[i].color != rec2.fills[i].color {
			t.Errorf("fill %d changed between frames: %v vs %v", i, rec1.fills[i].color, rec2.fills[i].color)
		}
	}
}

func TestRenderSkipsBehindCamera(t *testing.T) {
	pool := scene.NewPool()
	behind := [3]math.Vec3{{X: -20, Y: -100, Z: -10}, {X: 20, Y: -100, Z: -10}, {X: 0, Y: -100, Z: 20}}
	pool.Allocate(behind, scene.White, scene.Key(1))

	rec := &recorder{}
	c := New(pool, testProjector(), rec)
	c.Render(camera.Pose{})

	if len(rec.ops) != 0 {
		t.Errorf("behind-camera triangle produced %d paint ops, want 0", len(rec.ops))
	}
	if got := c.Stats().Queued; got != 0 {
		t.Errorf("Stats().Queued = %d, want 0", got)
	}
}

func TestRenderStraddlingEmitsTwo(t *testing.T) {
	// Two vertices in front, one behind: the near clip yields two screen
	// triangles from one source slot.
	pool := scene.NewPool()
	straddle := [3]math.Vec3{{X: -20, Y: 100, Z: 0}, {X: 20, Y: 100, Z: 0}, {X: 0, Y: -100, Z: 0}}
	pool.Allocate(straddle, scene.White, scene.Key(1))

	rec := &recorder{}
	c := New(pool, testProjector(), rec)
	c.Render(camera.Pose{})

	if got := c.Stats().Queued; got != 2 {
		t.Errorf("Stats().Queued = %d, want 2", got)
	}
}

func TestRenderModes(t *testing.T) {
	pool := scene.NewPool()
	col := scene.RGB{R: 10, G: 200, B: 10}
	pool.Allocate(frontTri(0), col, scene.Key(1))
	c := New(pool, testProjector(), nil)

	t.Run("solid", func(t *testing.T) {
		rec := &recorder{}
		c.canvas = rec
		c.SetMode(ModeSolid)
		c.Render(camera.Pose{})
		if len(rec.fills) != 1 || len(rec.strokes) != 0 {
			t.Errorf("solid mode: %d fills, %d strokes, want 1, 0", len(rec.fills), len(rec.strokes))
		}
	})

	t.Run("solid+wireframe", func(t *testing.T) {
		rec := &recorder{}
		c.canvas = rec
		c.SetMode(ModeSolidWireframe)
		c.Render(camera.Pose{})
		if len(rec.fills) != 1 || len(rec.strokes) != 1 {
			t.Fatalf("solid+wireframe mode: %d fills, %d strokes, want 1, 1", len(rec.fills), len(rec.strokes))
		}
		if rec.strokes[0].color != scene.Black {
			t.Errorf("overlay stroke color = %v, want black", rec.strokes[0].color)
		}
	})

	t.Run("wireframe", func(t *testing.T) {
		rec := &recorder{}
		c.canvas = rec
		c.SetMode(ModeWireframe)
		c.Render(camera.Pose{})
		if len(rec.fills) != 0 || len(rec.strokes) != 1 {
			t.Fatalf("wireframe mode: %d fills, %d strokes, want 0, 1", len(rec.fills), len(rec.strokes))
		}
		if rec.strokes[0].color != col {
			t.Errorf("wireframe stroke color = %v, want the triangle's %v", rec.strokes[0].color, col)
		}
	})
}

func TestToggleModeCycle(t *testing.T) {
	c := New(scene.NewPool(), testProjector(), &recorder{})
	want := []DrawMode{ModeSolidWireframe, ModeWireframe, ModeSolid, ModeSolidWireframe}
	for i, w := range want {
		c.ToggleMode()
		if c.Mode() != w {
			t.Errorf("toggle %d: mode = %v, want %v", i+1, c.Mode(), w)
		}
	}
}

func TestParseDrawMode(t *testing.T) {
	tests := []struct {
		in   string
		want DrawMode
	}{
		{"solid", ModeSolid},
		{"solid+wireframe", ModeSolidWireframe},
		{"wireframe", ModeWireframe},
		{"bogus", ModeSolid},
		{"", ModeSolid},
	}
	for _, tt := range tests {
		if got := ParseDrawMode(tt.in); got != tt.want {
			t.Errorf("ParseDrawMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, m := range []DrawMode{ModeSolid, ModeSolidWireframe, ModeWireframe} {
		if got := ParseDrawMode(m.String()); got != m {
			t.Errorf("ParseDrawMode(%v.String()) = %v", m, got)
		}
	}
}

func TestStatsOccupied(t *testing.T) {
	pool := scene.NewPool()
	pool.Allocate(frontTri(0), scene.White, scene.Key(1))
	h := pool.Allocate(frontTri(5), scene.White, scene.Key(2))
	pool.Free(h)

	c := New(pool, testProjector(), &recorder{})
	if got := c.Stats().Occupied; got != 1 {
		t.Errorf("Stats().Occupied = %d, want 1", got)
	}
}
