// Package clip removes geometry the renderer cannot draw: triangle parts
// behind the camera's near plane, and screen-space polygon parts outside
// the viewport.
package clip

import "github.com/Faultbox/railway3d/pkg/math"

// Triangle is three camera-space points.
type Triangle [3]math.Vec3

// Near clips a camera-space triangle against the z=0 plane and returns the
// part in front of the camera as 0, 1 or 2 triangles. Every vertex of the
// result has z >= 0, which keeps the subsequent perspective divide
// well-defined.
func Near(tri Triangle) []Triangle {
	var front, behind []int
	for i := 0; i < 3; i++ {
		if tri[i].Z < 0 {
			behind = append(behind, i)
		} else {
			front = append(front, i)
		}
	}

	switch len(front) {
	case 0:
		return nil
	case 3:
		return []Triangle{tri}
	case 1:
		// One vertex survives; the two edges leaving it cross the plane.
		f := tri[front[0]]
		w0 := f.Z / (f.Z - tri[behind[0]].Z)
		w1 := f.Z / (f.Z - tri[behind[1]].Z)
		p0 := f.Lerp(tri[behind[0]], w0)
		p1 := f.Lerp(tri[behind[1]], w1)
		return []Triangle{{f, p0, p1}}
	default:
		// Two vertices survive; the quad they form with the two plane
		// intersections is split along the diagonal f0-p1.
		f0, f1 := tri[front[0]], tri[front[1]]
		b := tri[behind[0]]
		w0 := f0.Z / (f0.Z - b.Z)
		w1 := f1.Z / (f1.Z - b.Z)
		p0 := f0.Lerp(b, w0)
		p1 := f1.Lerp(b, w1)
		return []Triangle{{f0, f1, p1}, {f0, p1, p0}}
	}
}
