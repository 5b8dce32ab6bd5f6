package scene

// RGB is an 8-bit color triple. Triangle colors can be overwritten
// independently of geometry, so per-face lighting only has to be
// recomputed when a face actually changes orientation.
type RGB struct {
	R, G, B uint8
}

// Predefined colors used by the renderer and its collaborators.
var (
	White = RGB{255, 255, 255}
	Black = RGB{0, 0, 0}

	// Purple marks placeholder triangles that were materialized by a
	// mesh lookup but never set by the producer.
	Purple = RGB{160, 32, 240}
)
