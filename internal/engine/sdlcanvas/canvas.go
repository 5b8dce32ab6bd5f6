// Package sdlcanvas implements the render.Canvas interface on top of an
// SDL2 2D renderer, using the gfx primitives for polygon rasterization.
package sdlcanvas

import (
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/railway3d/pkg/math"
	"github.com/Faultbox/railway3d/pkg/scene"
)

// Canvas draws onto an SDL renderer. Vertex coordinates are rounded to
// whole pixels; gfx works in int16.
type Canvas struct {
	r *sdl.Renderer

	// scratch buffers reused across calls to keep the draw path
	// allocation-free
	vx, vy []int16
}

// New wraps an SDL renderer.
func New(r *sdl.Renderer) *Canvas {
	return &Canvas{r: r}
}

// Clear fills the whole surface.
func (c *Canvas) Clear(col scene.RGB) {
	c.r.SetDrawColor(col.R, col.G, col.B, 255)
	c.r.Clear()
}

// FillPolygon fills a polygon of at least three points.
func (c *Canvas) FillPolygon(pts []math.Vec2, col scene.RGB) {
	c.load(pts)
	gfx.FilledPolygonRGBA(c.r, c.vx, c.vy, col.R, col.G, col.B, 255)
}

// StrokePolygon draws a one-pixel polygon outline.
func (c *Canvas) StrokePolygon(pts []math.Vec2, col scene.RGB) {
	c.load(pts)
	gfx.PolygonRGBA(c.r, c.vx, c.vy, col.R, col.G, col.B, 255)
}

// Text draws a line of text with the built-in 8x8 gfx font, used by the
// stats overlay so no font asset is required.
func (c *Canvas) Text(x, y int32, s string, col scene.RGB) {
	gfx.StringRGBA(c.r, x, y, s, col.R, col.G, col.B, 255)
}

// load converts the point slice into the reusable int16 vertex buffers.
func (c *Canvas) load(pts []math.Vec2) {
	c.vx = c.vx[:0]
	c.vy = c.vy[:0]
	for _, p := range pts {
		c.vx = append(c.vx, int16(p.X))
		c.vy = append(c.vy, int16(p.Y))
	}
}
