// Package scene owns the triangle geometry that the renderer draws:
// a pool of triangle records addressed by stable handles, and keyed
// meshes layered on top of it for procedurally regenerated groups.
package scene

import (
	"fmt"

	"github.com/Faultbox/railway3d/pkg/math"
)

// Handle is a stable reference to a pool slot. It stays valid until the
// slot is freed; after that the same value may be handed out again by a
// later Allocate.
type Handle int

type record struct {
	vertices [3]math.Vec3
	color    RGB
	depth    DepthKey
	occupied bool
}

// Pool is an arena of triangle records. Freed slots are reused before the
// backing slice grows, so steady-state churn does not grow the pool.
//
// The pool is not safe for concurrent use: a single logical thread must
// perform all mutations for a frame before the compositor renders it.
type Pool struct {
	slots []record
	free  []Handle // vacated slots, reused LIFO
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{}
}

// Allocate writes a new triangle record into a free slot (reusing one if
// any exists, growing otherwise) and returns its handle. Previously issued
// handles are never invalidated.
func (p *Pool) Allocate(vertices [3]math.Vec3, color RGB, depth DepthKey) Handle {
	var h Handle
	if n := len(p.free); n > 0 {
		h = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		h = Handle(len(p.slots))
		p.slots = append(p.slots, record{})
	}
	p.slots[h] = record{
		vertices: vertices,
		color:    color,
		depth:    depth,
		occupied: true,
	}
	return h
}

// Free releases the slot for reuse. The record's contents are stale until
// the slot is reallocated. Freeing a vacant or out-of-range handle is a
// programmer error and panics.
func (p *Pool) Free(h Handle) {
	p.live(h, "Free")
	p.slots[h].occupied = false
	p.free = append(p.free, h)
}

// SetVertices replaces the geometry of a live triangle.
func (p *Pool) SetVertices(h Handle, vertices [3]math.Vec3) {
	p.live(h, "SetVertices").vertices = vertices
}

// SetColor replaces the color of a live triangle.
func (p *Pool) SetColor(h Handle, color RGB) {
	p.live(h, "SetColor").color = color
}

// SetDepthKey replaces the sort key of a live triangle.
func (p *Pool) SetDepthKey(h Handle, depth DepthKey) {
	p.live(h, "SetDepthKey").depth = depth
}

// Vertices returns the geometry of a live triangle.
func (p *Pool) Vertices(h Handle) [3]math.Vec3 {
	return p.live(h, "Vertices").vertices
}

// Color returns the color of a live triangle.
func (p *Pool) Color(h Handle) RGB {
	return p.live(h, "Color").color
}

// DepthKeyOf returns the sort key of a live triangle.
func (p *Pool) DepthKeyOf(h Handle) DepthKey {
	return p.live(h, "DepthKeyOf").depth
}

// Occupied reports whether the slot currently holds a live triangle.
func (p *Pool) Occupied(h Handle) bool {
	if h < 0 || int(h) >= len(p.slots) {
		panic(fmt.Sprintf("scene: Occupied: handle %d out of range (pool size %d)", h, len(p.slots)))
	}
	return p.slots[h].occupied
}

// Len returns the total slot count, vacant slots included. Together with
// Occupied it lets the compositor walk every live triangle.
func (p *Pool) Len() int {
	return len(p.slots)
}

// CountOccupied returns the number of live triangles, for stats overlays.
func (p *Pool) CountOccupied() int {
	return len(p.slots) - len(p.free)
}

// Reset drops every slot. All outstanding handles and every mesh built on
// this pool are invalidated.
func (p *Pool) Reset() {
	p.slots = p.slots[:0]
	p.free = p.free[:0]
}

// live returns the record behind h, panicking if the handle does not refer
// to a live triangle. Handles are trusted internal values, never derived
// from untrusted input, so a bad one always means a caller bug.
func (p *Pool) live(h Handle, op string) *record {
	if h < 0 || int(h) >= len(p.slots) {
		panic(fmt.Sprintf("scene: %s: handle %d out of range (pool size %d)", op, h, len(p.slots)))
	}
	r := &p.slots[h]
	if !r.occupied {
		panic(fmt.Sprintf("scene: %s: handle %d is not occupied", op, h))
	}
	return r
}
