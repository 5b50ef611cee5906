package connector

import (
	"github.com/meshforge/slicecore/geomkernel"
	"github.com/meshforge/slicecore/regions"
)

// BuildTraversables flattens a layer's shells and fill lines into the
// Traversable set Connect orders, mirroring the original's
// to_single_shells flattening (one ClosedRing per ring of every shell
// rank of every region) plus one OpenLine per fill segment.
func BuildTraversables(shells regions.LayerShells, solidFill, sparseFill geomkernel.MultiLineString) []Traversable {
	var out []Traversable
	for _, s := range shells {
		for rank, mls := range s.Ranks {
			for _, ring := range mls {
				out = append(out, NewClosedRing(ring, s.RegionID, rank))
			}
		}
	}
	for _, line := range solidFill {
		out = append(out, NewOpenLine(line, PathTagSolidFill))
	}
	for _, line := range sparseFill {
		out = append(out, NewOpenLine(line, PathTagSparseFill))
	}
	return out
}
