package scene

import "github.com/Faultbox/railway3d/pkg/math"

// PlaceholderDepth is the sort key of a triangle that was materialized by a
// mesh lookup but never set. It orders before any producer key, so unset
// triangles are drawn first and end up behind everything.
var PlaceholderDepth = DepthKey{-10000}

// Mesh groups pool triangles under arbitrary producer-chosen keys, so
// regenerated content (props scrolling out of view, a train rebuilt
// wholesale) can be updated by key and discarded in one call.
//
// Handles held by a mesh belong to it exclusively: collaborators must not
// free them directly. FreeAll returns them to the pool and leaves the mesh
// empty and reusable.
type Mesh[K comparable] struct {
	pool *Pool
	tris map[K]Handle
}

// NewMesh returns an empty mesh backed by the given pool.
func NewMesh[K comparable](pool *Pool) *Mesh[K] {
	return &Mesh[K]{
		pool: pool,
		tris: make(map[K]Handle),
	}
}

// GetOrCreate returns the handle mapped to key, materializing a degenerate
// placeholder triangle on first reference. Calling it again with the same
// key returns the same handle.
func (m *Mesh[K]) GetOrCreate(key K) Handle {
	if h, ok := m.tris[key]; ok {
		return h
	}
	h := m.pool.Allocate([3]math.Vec3{}, Purple, PlaceholderDepth)
	m.tris[key] = h
	return h
}

// Set overwrites the geometry and sort key of the triangle mapped to key,
// creating it if needed. The color is left untouched: geometry can update
// every frame while lighting is recomputed only when needed.
func (m *Mesh[K]) Set(key K, vertices [3]math.Vec3, depth DepthKey) {
	h := m.GetOrCreate(key)
	m.pool.SetVertices(h, vertices)
	m.pool.SetDepthKey(h, depth)
}

// SetColor overwrites the color of the triangle mapped to key, creating it
// if needed.
func (m *Mesh[K]) SetColor(key K, color RGB) {
	m.pool.SetColor(m.GetOrCreate(key), color)
}

// FreeAll releases every triangle owned by the mesh back to the pool and
// clears the mapping. The mesh is ready for reuse afterward.
func (m *Mesh[K]) FreeAll() {
	for _, h := range m.tris {
		m.pool.Free(h)
	}
	clear(m.tris)
}

// Len returns the number of triangles the mesh currently owns.
func (m *Mesh[K]) Len() int {
	return len(m.tris)
}
