// Package light provides the directional sunlight color adjustment used
// by collaborators when they build geometry. Shading is baked into the
// triangle colors; the renderer itself knows nothing about lights.
package light

import (
	"github.com/Faultbox/railway3d/pkg/math"
	"github.com/Faultbox/railway3d/pkg/scene"
)

// Sun is a directional light. Surfaces facing against the direction
// vector are exposed and get the bias added to their color.
type Sun struct {
	Direction math.Vec3 // normalized
	Bias      [3]float32
}

// DefaultBias is added at full exposure, per channel.
var DefaultBias = [3]float32{20, 20, 20}

// New returns a sun shining along dir (need not be normalized) with the
// default bias.
func New(dir math.Vec3) Sun {
	return Sun{
		Direction: dir.Normalize(),
		Bias:      DefaultBias,
	}
}

// Shade returns the base color brightened by the sun according to the
// surface normal. A face turned away from the sun keeps its base color;
// exposure scales with the angle of incidence. Channels saturate at 255.
func (s Sun) Shade(base scene.RGB, normal math.Vec3) scene.RGB {
	d := -min(0, normal.Normalize().Dot(s.Direction))
	return scene.RGB{
		R: addClamped(base.R, s.Bias[0]*d),
		G: addClamped(base.G, s.Bias[1]*d),
		B: addClamped(base.B, s.Bias[2]*d),
	}
}

func addClamped(c uint8, add float32) uint8 {
	v := float32(c) + add
	if v > 255 {
		return 255
	}
	return uint8(v)
}
