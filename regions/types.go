package regions

import (
	"github.com/meshforge/slicecore/geomkernel"
	"github.com/meshforge/slicecore/idfactory"
)

// Region is a polygon carrying a process-wide identity, minted once and
// preserved across every offset/Boolean op applied to it (spec §3).
type Region struct {
	Polygon geomkernel.Polygon
	ID      uint64
}

// NewRegion mints a fresh Region from a polygon.
func NewRegion(p geomkernel.Polygon) Region {
	return Region{Polygon: p, ID: idfactory.Next()}
}

// WithPolygon returns a copy of r with its polygon replaced but its
// identity kept, the operation every offset in this package performs.
func (r Region) WithPolygon(p geomkernel.Polygon) Region {
	return Region{Polygon: p, ID: r.ID}
}

// PathTag is the printed-path classification the writer colors by
// (spec §3, §6).
type PathTag int

const (
	PathTagRegion PathTag = iota
	PathTagShell
	PathTagInterior
	PathTagSolid
	PathTagSparse
	PathTagUnknown
)

func (t PathTag) String() string {
	switch t {
	case PathTagRegion:
		return "Region"
	case PathTagShell:
		return "Shell"
	case PathTagInterior:
		return "Interior"
	case PathTagSolid:
		return "Solid"
	case PathTagSparse:
		return "Sparse"
	default:
		return "Unknown"
	}
}

// TaggedPath is one printed path and the classification it was produced
// under.
type TaggedPath struct {
	Tag  PathTag
	Path geomkernel.LineString
}

// Shells is one region's sequence of ranked offsets, rank 0 outermost.
type Shells struct {
	Ranks    []geomkernel.MultiLineString
	RegionID uint64
}

// LayerShells is every region's Shells on one layer.
type LayerShells []Shells

// Outlines, Interiors, Solids, and Sparses are plain Region collections;
// Go generics buy nothing here since every tag-specific behavior this
// package needs (constructing TaggedPaths) already takes the tag as an
// explicit PathTag argument rather than a type parameter.
type Outlines []Region
type Interiors []Region
type Solids []Region
type Sparses []Region

// FromMultiPolygon mints one Region per polygon in mp, in order.
func FromMultiPolygon(mp geomkernel.MultiPolygon) []Region {
	out := make([]Region, len(mp))
	for i, p := range mp {
		out[i] = NewRegion(p)
	}
	return out
}

// ToTaggedPaths flattens a region into one TaggedPath per ring (exterior
// then every interior), all under the same tag.
func ToTaggedPaths(regions []Region, tag PathTag) []TaggedPath {
	var out []TaggedPath
	for _, r := range regions {
		for _, ring := range r.Polygon.Rings() {
			out = append(out, TaggedPath{Tag: tag, Path: ring})
		}
	}
	return out
}
