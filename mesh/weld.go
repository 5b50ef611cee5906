package mesh

import "math"

// weldEntry is one canonical vertex held in the ordered unification
// table, together with the index it was assigned in the output vertex
// table.
type weldEntry struct {
	pos   Vertex
	index int
}

// compareEps orders two vertices lexicographically on X, then Y, then Z,
// treating any axis whose values differ by no more than eps as equal and
// falling through to the next axis — an epsilon-slack comparator that
// gives coincident-within-tolerance vertices a single position in the
// total order, so they collapse to one table entry regardless of the
// order triangles are visited in.
func compareEps(a, b Vertex, eps float64) int {
	for axis := 0; axis < 3; axis++ {
		d := a[axis] - b[axis]
		if d > eps {
			return 1
		}
		if d < -eps {
			return -1
		}
	}
	return 0
}

// MinSquaredEdgeLength returns the smallest squared edge length found
// across every free triangle's three edges, and false if triangles is
// empty.
func MinSquaredEdgeLength(triangles []FreeTriangle) (float64, bool) {
	min := math.Inf(1)
	found := false
	for _, tri := range triangles {
		for k := 0; k < 3; k++ {
			d := tri[k].Sub(tri[(k+1)%3]).SquaredLength()
			if d < min {
				min = d
				found = true
			}
		}
	}
	return min, found
}

// WeldEpsilon derives the unification tolerance from the shortest edge
// in the model: sqrt(minSquaredEdgeLength) * 1e-6 (spec §4.2). The
// epsilon scales with the model, so there is no user-tunable knob, but it
// follows the single shortest edge: a model with one very short edge
// among long ones gets a tolerance sized to that edge, not to the model
// as a whole.
func WeldEpsilon(minSquaredEdgeLength float64) float64 {
	return math.Sqrt(minSquaredEdgeLength) * 1e-6
}

// Unify welds coincident vertices across a flat list of free triangles
// into a shared vertex table and a matching list of indexed triangles
// (spec §4.2). It returns a *DegenerateEdgeError wrapping ErrDegenerateEdge
// the first time a zero-length edge is found, since no finite epsilon can
// distinguish a real seam from a degenerate one at that point, and
// ErrEmptyMesh if triangles is empty.
func Unify(triangles []FreeTriangle) ([]Vertex, []IndexedTriangle, error) {
	if len(triangles) == 0 {
		return nil, nil, ErrEmptyMesh
	}

	for fi, tri := range triangles {
		for k := 0; k < 3; k++ {
			a, b := tri[k], tri[(k+1)%3]
			if a.Sub(b).SquaredLength() == 0 {
				return nil, nil, &DegenerateEdgeError{Face: fi, A: a, B: b}
			}
		}
	}

	minSq, _ := MinSquaredEdgeLength(triangles)
	eps := WeldEpsilon(minSq)

	table := make([]weldEntry, 0, len(triangles)) // kept sorted by compareEps
	vertices := make([]Vertex, 0, len(triangles))
	indexed := make([]IndexedTriangle, len(triangles))

	lookup := func(v Vertex) int {
		lo, hi := 0, len(table)
		for lo < hi {
			mid := (lo + hi) / 2
			if compareEps(table[mid].pos, v, eps) < 0 {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		if lo < len(table) && compareEps(table[lo].pos, v, eps) == 0 {
			return table[lo].index
		}
		newIndex := len(vertices)
		vertices = append(vertices, v)
		entry := weldEntry{pos: v, index: newIndex}
		table = append(table, weldEntry{})
		copy(table[lo+1:], table[lo:])
		table[lo] = entry
		return newIndex
	}

	for fi, tri := range triangles {
		for k := 0; k < 3; k++ {
			indexed[fi][k] = lookup(tri[k])
		}
	}

	return vertices, indexed, nil
}

// Build runs Unify and assembles the result into a HalfEdgeMesh — the
// full mesh_build pipeline of spec §4.2/§4.3 from a flat triangle list.
func Build(triangles []FreeTriangle) (*HalfEdgeMesh, error) {
	vertices, indexed, err := Unify(triangles)
	if err != nil {
		return nil, err
	}
	return NewHalfEdgeMesh(vertices, indexed), nil
}
