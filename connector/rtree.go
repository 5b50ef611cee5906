package connector

import (
	"github.com/dhconnelly/rtreego"

	"github.com/meshforge/slicecore/geomkernel"
)

// entryBoundsEpsilon gives every point entry a non-degenerate bounding
// box; rtreego requires strictly positive rectangle side lengths.
const entryBoundsEpsilon = 1e-6

// traversalEntry is one candidate entry point into a Traversable,
// indexed in the R-tree by its location (spec §4.7's entrypoint_tree).
type traversalEntry struct {
	owner   Traversable
	point   geomkernel.Point2
	entryID int
}

// Bounds satisfies rtreego.Spatial with an entryBoundsEpsilon-sized
// rectangle whose minimum corner is the entry point.
func (e *traversalEntry) Bounds() *rtreego.Rect {
	p := rtreego.Point{float64(e.point.X), float64(e.point.Y)}
	r, err := rtreego.NewRect(p, []float64{entryBoundsEpsilon, entryBoundsEpsilon})
	if err != nil {
		// NewRect only errors on non-positive lengths, which
		// entryBoundsEpsilon never is.
		panic(err)
	}
	return r
}

// entriesOf expands a Traversable's entry points into indexed
// traversalEntry values, mirroring the original's traversal_entries.
func entriesOf(t Traversable) []*traversalEntry {
	points := t.EntryPoints()
	out := make([]*traversalEntry, len(points))
	for id, p := range points {
		out[id] = &traversalEntry{owner: t, point: p, entryID: id}
	}
	return out
}

// buildEntryTree bulk-loads every traversable's entry points into one
// R-tree, matching rstar::RTree::bulk_load in the original.
func buildEntryTree(traversables []Traversable) *rtreego.Rtree {
	tree := rtreego.NewTree(2, 25, 50)
	for _, t := range traversables {
		for _, e := range entriesOf(t) {
			tree.Insert(e)
		}
	}
	return tree
}
