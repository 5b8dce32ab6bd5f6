package clip

import "github.com/Faultbox/railway3d/pkg/math"

// clipEdge is a viewport boundary: a point on the edge and the normal
// pointing into the viewport.
type clipEdge struct {
	point  math.Vec2
	normal math.Vec2
}

// Viewport clips a screen-space polygon of at least three points against
// the four viewport edges (Sutherland-Hodgman). Polygon rasterization
// degrades badly when a polygon extends far beyond the screen, so every
// filled polygon passes through here first. The result may be empty (the
// polygon was fully outside) or carry more vertices than the input.
func Viewport(poly []math.Vec2, width, height float32) []math.Vec2 {
	edges := [4]clipEdge{
		{math.Vec2{X: 0, Y: height / 2}, math.Vec2{X: 1, Y: 0}},
		{math.Vec2{X: width / 2, Y: 0}, math.Vec2{X: 0, Y: 1}},
		{math.Vec2{X: width, Y: height / 2}, math.Vec2{X: -1, Y: 0}},
		{math.Vec2{X: width / 2, Y: height}, math.Vec2{X: 0, Y: -1}},
	}

	output := poly
	for _, e := range edges {
		input := output
		if len(input) == 0 {
			return nil
		}
		output = make([]math.Vec2, 0, len(input)+2)
		for i, cur := range input {
			prev := input[(i-1+len(input))%len(input)]
			curInside := cur.Sub(e.point).Dot(e.normal) > 0
			prevInside := prev.Sub(e.point).Dot(e.normal) > 0

			switch {
			case curInside && prevInside:
				output = append(output, cur)
			case curInside:
				// Entering: emit the boundary crossing, then the vertex.
				output = append(output, intersect(cur, prev, e), cur)
			case prevInside:
				// Exiting: emit only the boundary crossing.
				output = append(output, intersect(cur, prev, e))
			}
		}
	}
	return output
}

// intersect returns the crossing of segment p0-p1 with the clip edge. The
// edges are axis-aligned, so the crossing is solved on one axis. A segment
// parallel to the edge (or of zero length) has no unique crossing; the
// midpoint weight 0.5 is used, the sub-pixel position being visually
// inconsequential.
func intersect(p0, p1 math.Vec2, e clipEdge) math.Vec2 {
	if e.normal.X == 0 {
		// Horizontal clip edge: solve on y.
		w := float32(0.5)
		if p1.Y != p0.Y {
			w = (e.point.Y - p0.Y) / (p1.Y - p0.Y)
		}
		return math.Vec2{X: p0.X + w*(p1.X-p0.X), Y: e.point.Y}
	}
	// Vertical clip edge: solve on x.
	w := float32(0.5)
	if p1.X != p0.X {
		w = (e.point.X - p0.X) / (p1.X - p0.X)
	}
	return math.Vec2{X: e.point.X, Y: p0.Y + w*(p1.Y-p0.Y)}
}
