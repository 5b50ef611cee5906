package connector

import (
	"github.com/dhconnelly/rtreego"

	"github.com/meshforge/slicecore/geomkernel"
)

// ConnectedPath is one printed path in travel order, tagged for the
// writer's color table.
type ConnectedPath struct {
	Tag  PathTag
	Path geomkernel.LineString
}

// Connect greedily orders every traversable's path by nearest-entry-point
// travel from a running nozzle position, starting at origin. This drains
// the entry R-tree the original implementation built but never consumed
// (spec §4.7, steps 1-4):
//  1. bulk-load every traversable's entry points into an R-tree
//  2. repeatedly query the nearest remaining entry to the current position
//  3. print that traversable starting from the chosen entry
//  4. remove every entry belonging to the just-printed traversable, so it
//     is never revisited, and advance the current position to the path's
//     end
func Connect(traversables []Traversable, origin geomkernel.Point2) []ConnectedPath {
	if len(traversables) == 0 {
		return nil
	}

	ownerEntries := make(map[Traversable][]*traversalEntry, len(traversables))
	tree := rtreego.NewTree(2, 25, 50)
	for _, t := range traversables {
		entries := entriesOf(t)
		ownerEntries[t] = entries
		for _, e := range entries {
			tree.Insert(e)
		}
	}

	current := rtreego.Point{float64(origin.X), float64(origin.Y)}
	out := make([]ConnectedPath, 0, len(traversables))

	for tree.Size() > 0 {
		nearest := tree.NearestNeighbor(current).(*traversalEntry)
		path := nearest.owner.TraverseFrom(nearest.entryID)
		out = append(out, ConnectedPath{Tag: nearest.owner.Tag(), Path: path})

		for _, e := range ownerEntries[nearest.owner] {
			tree.Delete(e)
		}
		delete(ownerEntries, nearest.owner)

		if len(path) > 0 {
			end := path.Last()
			current = rtreego.Point{float64(end.X), float64(end.Y)}
		}
	}

	return out
}
