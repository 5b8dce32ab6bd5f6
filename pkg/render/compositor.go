// Package render draws the triangle pool back-to-front onto a canvas.
// There is no depth buffer: draw order comes from each triangle's depth
// key, with true camera-space depth only breaking ties (painter's
// algorithm).
package render

import (
	"sort"

	"github.com/Faultbox/railway3d/pkg/camera"
	"github.com/Faultbox/railway3d/pkg/clip"
	"github.com/Faultbox/railway3d/pkg/math"
	"github.com/Faultbox/railway3d/pkg/scene"
)

// DrawMode selects how queue entries are painted.
type DrawMode int

const (
	ModeSolid DrawMode = iota
	ModeSolidWireframe
	ModeWireframe
)

// String returns the mode name as used in config files.
func (m DrawMode) String() string {
	switch m {
	case ModeSolid:
		return "solid"
	case ModeSolidWireframe:
		return "solid+wireframe"
	case ModeWireframe:
		return "wireframe"
	}
	return "unknown"
}

// ParseDrawMode converts a config string to a DrawMode. Unknown values
// fall back to solid.
func ParseDrawMode(s string) DrawMode {
	switch s {
	case "solid+wireframe":
		return ModeSolidWireframe
	case "wireframe":
		return ModeWireframe
	}
	return ModeSolid
}

// entry is one screen-space triangle queued for drawing. The queue is
// transient: rebuilt from the pool on every Render call.
type entry struct {
	depth scene.DepthKey
	// Tie-break when depth keys are equal: min and mean of the source
	// triangle's pre-clip camera-space depths.
	tieMin, tieAvg float32
	slot           scene.Handle
	points         [3]math.Vec2
	// Perspective signs of the projected vertices, kept for potential
	// behind-camera detection downstream.
	wsigns [3]float32
}

// Stats is a read-only snapshot for HUD overlays.
type Stats struct {
	Occupied int // live triangles in the pool
	Queued   int // screen triangles drawn by the last Render
}

// Compositor renders the pool through a projector onto a canvas.
type Compositor struct {
	pool   *scene.Pool
	proj   camera.Projector
	canvas Canvas
	mode   DrawMode
	queue  []entry
}

// New returns a compositor in solid mode.
func New(pool *scene.Pool, proj camera.Projector, canvas Canvas) *Compositor {
	return &Compositor{
		pool:   pool,
		proj:   proj,
		canvas: canvas,
	}
}

// SetViewport updates the projector's viewport after a window resize.
func (c *Compositor) SetViewport(width, height float32) {
	c.proj.Width = width
	c.proj.Height = height
}

// Mode returns the current draw mode.
func (c *Compositor) Mode() DrawMode {
	return c.mode
}

// SetMode sets the draw mode directly.
func (c *Compositor) SetMode(m DrawMode) {
	c.mode = m
}

// ToggleMode cycles solid -> solid+wireframe -> wireframe -> solid.
func (c *Compositor) ToggleMode() {
	switch c.mode {
	case ModeSolid:
		c.mode = ModeSolidWireframe
	case ModeSolidWireframe:
		c.mode = ModeWireframe
	default:
		c.mode = ModeSolid
	}
}

// Stats returns pool and queue counts for the HUD.
func (c *Compositor) Stats() Stats {
	return Stats{
		Occupied: c.pool.CountOccupied(),
		Queued:   len(c.queue),
	}
}

// Render draws every live triangle, viewed from pose, onto the canvas.
// Triangles fully behind the camera are skipped; that is normal, not an
// error. The render queue is rebuilt from scratch, so no state from a
// previous frame can leak into this one.
func (c *Compositor) Render(pose camera.Pose) {
	c.queue = c.queue[:0]

	for h := scene.Handle(0); int(h) < c.pool.Len(); h++ {
		if !c.pool.Occupied(h) {
			continue
		}
		v := c.pool.Vertices(h)
		cam := clip.Triangle{
			camera.WorldToCamera(v[0], pose),
			camera.WorldToCamera(v[1], pose),
			camera.WorldToCamera(v[2], pose),
		}

		// The depth key decides the order between layers; within a layer
		// the pre-clip camera depths break ties.
		tieMin := min(cam[0].Z, cam[1].Z, cam[2].Z)
		tieAvg := (cam[0].Z + cam[1].Z + cam[2].Z) / 3

		for _, tri := range clip.Near(cam) {
			e := entry{
				depth:  c.pool.DepthKeyOf(h),
				tieMin: tieMin,
				tieAvg: tieAvg,
				slot:   h,
			}
			for i, p := range tri {
				e.points[i], e.wsigns[i] = c.proj.CameraToScreen(p)
			}
			c.queue = append(c.queue, e)
		}
	}

	// Painter's algorithm: sort descending so the farthest (highest key)
	// entries are drawn first and overdrawn by nearer ones. The slot index
	// keeps equal keys in a fixed relative order between frames.
	sort.Slice(c.queue, func(i, j int) bool {
		a, b := &c.queue[i], &c.queue[j]
		if d := scene.Compare(a.depth, b.depth); d != 0 {
			return d > 0
		}
		if a.tieMin != b.tieMin {
			return a.tieMin > b.tieMin
		}
		if a.tieAvg != b.tieAvg {
			return a.tieAvg > b.tieAvg
		}
		return a.slot > b.slot
	})

	for i := range c.queue {
		c.draw(&c.queue[i])
	}
}

// draw paints a single queue entry according to the draw mode. Filled
// polygons are clipped to the viewport first; outlines are cheap enough
// to stroke unclipped.
func (c *Compositor) draw(e *entry) {
	color := c.pool.Color(e.slot)

	if c.mode == ModeWireframe {
		c.canvas.StrokePolygon(e.points[:], color)
		return
	}

	pts := clip.Viewport(e.points[:], c.proj.Width, c.proj.Height)
	if len(pts) >= 3 {
		c.canvas.FillPolygon(pts, color)
	}
	if c.mode == ModeSolidWireframe {
		c.canvas.StrokePolygon(e.points[:], scene.Black)
	}
}
