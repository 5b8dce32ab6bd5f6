package scene

// DepthKey is the producer-supplied sort key that stands in for a depth
// buffer. Keys are compared lexicographically element by element; when one
// key is a prefix of the other, the shorter key orders first. The renderer
// imposes no semantics beyond this total order, but by convention producers
// use a leading layer discriminant (ground=4, rail=3, prop=2, station=1,
// train and signals=0; lower layers are drawn later, i.e. on top) followed
// by finer tie-breaking terms such as a position along the track.
type DepthKey []float64

// Key builds a DepthKey from its elements.
func Key(elems ...float64) DepthKey {
	return DepthKey(elems)
}

// Compare returns -1, 0 or 1 as a orders before, equal to or after b.
func Compare(a, b DepthKey) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}
