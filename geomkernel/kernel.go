package geomkernel

import (
	clipper "github.com/go-clipper/clipper2"
)

// Kernel adapts the polygon-clipping/offsetting backend (github.com/go-clipper/clipper2,
// an int64 fixed-point Vatti-scanline engine) to the uniform geometry contract
// spec §6 requires: Boolean ops, offsetting with a fixed join/end style,
// and nested-ring reconstruction. Its only field, the fill rule, is fixed
// at construction, so callers never reach past the Kernel into the backend.
//
// A Kernel holds no mutable state and is safe for concurrent use by every
// layer's pipeline goroutine.
type Kernel struct {
	fillRule clipper.FillRule
}

// NewKernel returns a Kernel using the even-odd fill rule, matching how the
// slicer's collated rings alternate exterior/hole by nesting depth.
func NewKernel() *Kernel {
	return &Kernel{fillRule: clipper.EvenOdd}
}

// Difference returns a \ b.
func (k *Kernel) Difference(a, b MultiPolygon) (MultiPolygon, error) {
	return k.boolOp(clipper.Difference, a, b)
}

// Intersection returns a ∩ b.
func (k *Kernel) Intersection(a, b MultiPolygon) (MultiPolygon, error) {
	return k.boolOp(clipper.Intersection, a, b)
}

// Union returns a ∪ b.
func (k *Kernel) Union(a, b MultiPolygon) (MultiPolygon, error) {
	return k.boolOp(clipper.Union, a, b)
}

// UnionAll folds Union across every polygon set, returning an empty
// MultiPolygon for an empty input rather than erroring.
func (k *Kernel) UnionAll(sets ...MultiPolygon) (MultiPolygon, error) {
	var acc MultiPolygon
	for _, s := range sets {
		merged, err := k.Union(acc, s)
		if err != nil {
			return nil, err
		}
		acc = merged
	}
	return acc, nil
}

func (k *Kernel) boolOp(op clipper.ClipType, a, b MultiPolygon) (MultiPolygon, error) {
	subjects := toPaths64(a.Rings())
	clips := toPaths64(b.Rings())
	solution, _, err := clipper.BooleanOp(op, k.fillRule, subjects, nil, clips)
	if err != nil {
		return nil, err
	}
	return k.Collate(pathsToLineStrings(solution))
}

// IntersectOpen clips an open MultiLineString (e.g. a rotated fill
// pattern) against a closed MultiPolygon region, returning the portions
// of the lines that lie inside the region. This is the open-path
// intersection spec §6 calls out separately from the closed-polygon
// Boolean ops above.
func (k *Kernel) IntersectOpen(region MultiPolygon, lines MultiLineString) (MultiLineString, error) {
	subjectsOpen := toPaths64(lines)
	clips := toPaths64(region.Rings())
	_, openSolution, err := clipper.BooleanOp(clipper.Intersection, k.fillRule, nil, subjectsOpen, clips)
	if err != nil {
		return nil, err
	}
	return pathsToLineStrings(openSolution), nil
}

// Offset grows (delta>0) or shrinks (delta<0) a polygon's boundary by
// delta fixed-point units, using a miter-3 join and closed-polygon end
// type — the single join/end combination the pipeline ever needs
// (shells, interior offset).
func (k *Kernel) Offset(p Polygon, delta float64) (MultiPolygon, error) {
	paths := toPaths64(p.Rings())
	result := clipper.InflatePaths(paths, delta, clipper.Miter, clipper.ClosedPolygon, 3.0)
	return k.Collate(pathsToLineStrings(result))
}

// OffsetMulti offsets every polygon in mp independently and unions the
// results back into a single MultiPolygon.
func (k *Kernel) OffsetMulti(mp MultiPolygon, delta float64) (MultiPolygon, error) {
	var acc MultiPolygon
	for _, p := range mp {
		offset, err := k.Offset(p, delta)
		if err != nil {
			return nil, err
		}
		acc, err = k.Union(acc, offset)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// Collate rebuilds a valid MultiPolygon (correctly nested exteriors with
// holes, correctly oriented) from a flat set of closed rings, by
// re-running them through the backend's tree-producing union: the result
// hierarchy's even-depth nodes are exteriors, odd-depth nodes are holes
// of their parent, exactly how the backend's PolyTree64 already
// represents nesting.
func (k *Kernel) Collate(lines MultiLineString) (MultiPolygon, error) {
	rings := make(Paths64Alias, 0, len(lines))
	for _, l := range lines {
		if len(l) == 0 {
			continue
		}
		rings = append(rings, l)
	}
	if len(rings) == 0 {
		return MultiPolygon{}, nil
	}
	tree, err := clipper.BooleanOpTree(clipper.Union, k.fillRule, toPaths64(MultiLineString(rings)), nil)
	if err != nil {
		return nil, ErrCollate
	}
	return treeToMultiPolygon(tree), nil
}

// Paths64Alias is a MultiLineString viewed as the raw ring list fed to
// Collate; it exists only to make the intent at each call site explicit.
type Paths64Alias = MultiLineString

// BoundingRect returns the smallest Rect enclosing every point of every
// ring in mp. The second return value is false for an empty MultiPolygon
// (mirrors the original's Option<Rect>).
func (mp MultiPolygon) BoundingRect() (Rect, bool) {
	rings := mp.Rings()
	return boundingRectOfRings(rings)
}

// BoundingRect returns the smallest Rect enclosing every point of every
// ring in a MultiLineString.
func (m MultiLineString) BoundingRect() (Rect, bool) {
	return boundingRectOfRings(m)
}

func boundingRectOfRings(rings []LineString) (Rect, bool) {
	first := true
	var r Rect
	for _, ring := range rings {
		for _, p := range ring {
			if first {
				r = Rect{Min: p, Max: p}
				first = false
				continue
			}
			if p.X < r.Min.X {
				r.Min.X = p.X
			}
			if p.Y < r.Min.Y {
				r.Min.Y = p.Y
			}
			if p.X > r.Max.X {
				r.Max.X = p.X
			}
			if p.Y > r.Max.Y {
				r.Max.Y = p.Y
			}
		}
	}
	return r, !first
}
