package render

import (
	"github.com/Faultbox/railway3d/pkg/math"
	"github.com/Faultbox/railway3d/pkg/scene"
)

// Canvas is the 2D surface the compositor paints into. The SDL-backed
// implementation lives in internal/engine/sdlcanvas; tests use a recorder.
type Canvas interface {
	// Clear fills the whole surface with a color.
	Clear(c scene.RGB)
	// FillPolygon fills a polygon of at least three points.
	FillPolygon(pts []math.Vec2, c scene.RGB)
	// StrokePolygon draws a one-pixel polygon outline.
	StrokePolygon(pts []math.Vec2, c scene.RGB)
}
