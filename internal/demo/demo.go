// Package demo implements the interactive terrain viewer: an animated
// sine-wave landscape rendered through the triangle pipeline, with free
// camera movement. WASD moves, Q/E changes altitude, the arrow keys look
// around, Z cycles the draw mode and Esc quits.
package demo

import (
	"fmt"
	"time"

	"github.com/chewxy/math32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/railway3d/internal/config"
	"github.com/Faultbox/railway3d/internal/engine/input"
	"github.com/Faultbox/railway3d/internal/engine/sdlcanvas"
	"github.com/Faultbox/railway3d/internal/engine/window"
	"github.com/Faultbox/railway3d/internal/logger"
	"github.com/Faultbox/railway3d/pkg/camera"
	"github.com/Faultbox/railway3d/pkg/math"
	"github.com/Faultbox/railway3d/pkg/render"
	"github.com/Faultbox/railway3d/pkg/scene"
)

// Demo is the viewer instance.
type Demo struct {
	cfg     *config.Config
	running bool

	window *window.Window
	canvas *sdlcanvas.Canvas
	input  *input.Input

	pool    *scene.Pool
	comp    *render.Compositor
	pose    camera.Pose
	terrain *terrain

	// Camera glides down from above while the intro tween runs.
	intro *gween.Tween

	// FPS averaged over bursts of frames, like the stats overlay shows.
	frames   int
	fpsTicks uint64
	fpsText  string
}

// New creates the demo with its window, pipeline and terrain.
func New(cfg *config.Config) (*Demo, error) {
	d := &Demo{
		cfg: cfg,
		pose: camera.Pose{
			Pitch: 15,
		},
		intro: gween.New(400, 40, 3, ease.OutQuad),
	}

	var err error
	d.window, err = window.New(window.Config{
		Title:      "railway3d terrain demo",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	d.canvas = sdlcanvas.New(d.window.Renderer())
	d.input = input.New()

	d.pool = scene.NewPool()
	d.comp = render.New(d.pool, camera.Projector{
		FOV:    cfg.Renderer.FOV,
		Width:  float32(cfg.Graphics.Width),
		Height: float32(cfg.Graphics.Height),
	}, d.canvas)
	d.comp.SetMode(render.ParseDrawMode(cfg.Renderer.Mode))

	d.terrain = newTerrain(d.pool, cfg.Demo)

	// Start behind the south-west corner of the grid, looking across it.
	mid := float32(cfg.Demo.GridSize) * cfg.Demo.GridSpacing / 2
	d.pose.Position = math.Vec3{X: mid, Y: -mid, Z: 400}

	logger.Info("demo initialized",
		zap.Int("triangles", d.pool.CountOccupied()),
		zap.String("mode", d.comp.Mode().String()),
	)
	return d, nil
}

// Run starts the main loop and blocks until quit.
func (d *Demo) Run() error {
	d.running = true
	last := time.Now()

	for d.running {
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		if d.input.Update() {
			break
		}
		for _, event := range d.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				d.comp.SetViewport(float32(event.Width), float32(event.Height))
			case input.EventKeyDown:
				switch event.Key {
				case sdl.SCANCODE_ESCAPE:
					d.running = false
				case sdl.SCANCODE_Z:
					d.comp.ToggleMode()
					logger.Debug("draw mode toggled", zap.String("mode", d.comp.Mode().String()))
				}
			}
		}

		d.update(dt)
		d.render()
		d.window.Present()
		d.pace(now)
	}

	return nil
}

// Close cleans up resources.
func (d *Demo) Close() {
	logger.Info("closing demo")
	if d.window != nil {
		d.window.Close()
	}
}

// update advances the camera and the terrain animation.
func (d *Demo) update(dt float32) {
	if d.intro != nil {
		z, done := d.intro.Update(dt)
		d.pose.Position.Z = z
		if done {
			d.intro = nil
		}
	}

	// Look controls: one degree per 60th of a second, like the original
	// per-frame step at 60 FPS.
	turn := 60 * dt
	if d.input.Held(sdl.SCANCODE_UP) {
		d.pose.Pitch -= turn
	}
	if d.input.Held(sdl.SCANCODE_DOWN) {
		d.pose.Pitch += turn
	}
	if d.input.Held(sdl.SCANCODE_RIGHT) {
		d.pose.Yaw += turn
	}
	if d.input.Held(sdl.SCANCODE_LEFT) {
		d.pose.Yaw -= turn
	}
	d.pose.Pitch = clamp(d.pose.Pitch, -90, 90)

	// Move in the yaw plane; altitude is independent of pitch.
	sy, cy := math32.Sincos(d.pose.Yaw * math32.Pi / 180)
	step := 60 * dt
	if d.input.Held(sdl.SCANCODE_W) {
		d.pose.Position.X += sy * step
		d.pose.Position.Y += cy * step
	}
	if d.input.Held(sdl.SCANCODE_S) {
		d.pose.Position.X -= sy * step
		d.pose.Position.Y -= cy * step
	}
	if d.input.Held(sdl.SCANCODE_A) {
		d.pose.Position.X -= cy * step
		d.pose.Position.Y += sy * step
	}
	if d.input.Held(sdl.SCANCODE_D) {
		d.pose.Position.X += cy * step
		d.pose.Position.Y -= sy * step
	}
	if d.input.Held(sdl.SCANCODE_Q) {
		d.pose.Position.Z -= step
	}
	if d.input.Held(sdl.SCANCODE_E) {
		d.pose.Position.Z += step
	}

	d.terrain.animate(float32(sdl.GetTicks64()) / 1000)
}

// render draws the frame and the stats overlay.
func (d *Demo) render() {
	sky := d.cfg.Renderer.SkyColor
	d.canvas.Clear(scene.RGB{R: sky[0], G: sky[1], B: sky[2]})
	d.comp.Render(d.pose)

	if d.cfg.Renderer.ShowHUD {
		d.drawStats()
	}
}

// drawStats shows the frame rate and triangle count, with the FPS
// averaged over bursts of ten frames.
func (d *Demo) drawStats() {
	d.frames++
	if d.frames%10 == 0 {
		ticks := sdl.GetTicks64()
		if elapsed := ticks - d.fpsTicks; elapsed > 0 {
			d.fpsText = fmt.Sprintf("%d", 10*1000/elapsed)
		}
		d.fpsTicks = ticks
	}

	stats := d.comp.Stats()
	line := fmt.Sprintf("FPS: %s Tris: %d", d.fpsText, stats.Occupied)
	d.canvas.Text(10, 10, line, scene.White)
}

// pace sleeps off the remainder of the frame when an FPS limit is set.
func (d *Demo) pace(frameStart time.Time) {
	limit := d.cfg.Graphics.FPSLimit
	if limit <= 0 {
		return
	}
	target := time.Second / time.Duration(limit)
	if spent := time.Since(frameStart); spent < target {
		sdl.Delay(uint32((target - spent).Milliseconds()))
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
