package demo

import (
	"math/rand"

	"github.com/chewxy/math32"

	"github.com/Faultbox/railway3d/internal/config"
	"github.com/Faultbox/railway3d/pkg/light"
	"github.com/Faultbox/railway3d/pkg/math"
	"github.com/Faultbox/railway3d/pkg/scene"
)

// cellKey identifies one of the two triangles of a grid cell.
type cellKey struct {
	I, J, K int
}

// terrain is the animated wave landscape: a GridSize x GridSize grid of
// cells, two triangles each, regenerated through a mesh every frame.
type terrain struct {
	mesh *scene.Mesh[cellKey]
	pool *scene.Pool
	cfg  config.DemoConfig
}

// newTerrain builds the grid and bakes the face colors once: a bluish
// base with per-face jitter, lit by a fixed sun. Geometry animates every
// frame but colors stay, which is exactly the split the mesh Set
// operation is designed around.
func newTerrain(pool *scene.Pool, cfg config.DemoConfig) *terrain {
	t := &terrain{
		mesh: scene.NewMesh[cellKey](pool),
		pool: pool,
		cfg:  cfg,
	}
	t.animate(0)

	sun := light.New(math.Vec3{X: 1, Y: 1, Z: -2})
	for i := 1; i < cfg.GridSize; i++ {
		for j := 1; j < cfg.GridSize; j++ {
			for k := 0; k < 2; k++ {
				jitter := rand.Float32()*70 - 50
				if k == 1 {
					jitter = rand.Float32()*10 - 5
				}
				base := scene.RGB{
					R: colorByte(180 + jitter),
					G: colorByte(180 + jitter),
					B: colorByte(230 + jitter),
				}
				key := cellKey{i, j, k}
				v := pool.Vertices(t.mesh.GetOrCreate(key))
				normal := v[1].Sub(v[0]).Cross(v[2].Sub(v[0]))
				t.mesh.SetColor(key, sun.Shade(base, normal))
			}
		}
	}
	return t
}

// animate rewrites the grid geometry for time at (seconds).
func (t *terrain) animate(at float32) {
	size := t.cfg.GridSpacing
	for i := 1; i < t.cfg.GridSize; i++ {
		for j := 1; j < t.cfg.GridSize; j++ {
			x := size * float32(i)
			y := size * float32(j)
			h00 := t.height(i-1, j-1, at)
			h10 := t.height(i, j-1, at)
			h01 := t.height(i-1, j, at)
			h11 := t.height(i, j, at)

			depth := scene.Key(float64(x), float64(y))
			t.mesh.Set(cellKey{i, j, 0}, [3]math.Vec3{
				{X: x, Y: y, Z: h00},
				{X: x + size, Y: y + size, Z: h11},
				{X: x + size, Y: y, Z: h10},
			}, depth)
			t.mesh.Set(cellKey{i, j, 1}, [3]math.Vec3{
				{X: x, Y: y, Z: h00},
				{X: x + size, Y: y + size, Z: h11},
				{X: x, Y: y + size, Z: h01},
			}, depth)
		}
	}
}

// height is the wave function: short ripples drifting over a long slow
// swell.
func (t *terrain) height(i, j int, at float32) float32 {
	fi, fj := float32(i), float32(j)
	amp := t.cfg.WaveAmplitude
	return amp*math32.Sin(fi+at)*math32.Cos(fj+at) +
		1.5*amp*math32.Sin(fi/10+at/20)
}

func colorByte(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
