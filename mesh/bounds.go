package mesh

import "math"

// EmptyBounds3D returns the identity element for BoundSum: every axis
// inverted so the first real point always widens it. Grounded on
// original_source's bound_sum running-union accumulator, which folds a
// stream of points into a box without buffering them.
func EmptyBounds3D() Bounds3D {
	inf := math.Inf(1)
	return Bounds3D{
		X: Range{Min: inf, Max: -inf},
		Y: Range{Min: inf, Max: -inf},
		Z: Range{Min: inf, Max: -inf},
	}
}

// BoundSum widens b to also cover v, returning the result. Folding
// BoundSum over every vertex of every triangle, seeded from
// EmptyBounds3D, reproduces the model's axis-aligned bounding box
// without ever materializing a vertex table.
func BoundSum(b Bounds3D, v Vertex) Bounds3D {
	return Bounds3D{
		X: widen(b.X, v.X()),
		Y: widen(b.Y, v.Y()),
		Z: widen(b.Z, v.Z()),
	}
}

func widen(r Range, x float64) Range {
	if x < r.Min {
		r.Min = x
	}
	if x > r.Max {
		r.Max = x
	}
	return r
}

// BoundsOfTriangles computes the axis-aligned bounding box of a slice of
// free triangles, before any welding.
func BoundsOfTriangles(triangles []FreeTriangle) Bounds3D {
	b := EmptyBounds3D()
	for _, tri := range triangles {
		for _, v := range tri {
			b = BoundSum(b, v)
		}
	}
	return b
}

// BoundsOfMesh computes the axis-aligned bounding box of a half-edge
// mesh's unified vertex table.
func BoundsOfMesh(m *HalfEdgeMesh) Bounds3D {
	b := EmptyBounds3D()
	for _, v := range m.Vertices {
		b = BoundSum(b, v)
	}
	return b
}

// Union widens b to also cover every point other covers.
func (b Bounds3D) Union(other Bounds3D) Bounds3D {
	return Bounds3D{
		X: Range{Min: math.Min(b.X.Min, other.X.Min), Max: math.Max(b.X.Max, other.X.Max)},
		Y: Range{Min: math.Min(b.Y.Min, other.Y.Min), Max: math.Max(b.Y.Max, other.Y.Max)},
		Z: Range{Min: math.Min(b.Z.Min, other.Z.Min), Max: math.Max(b.Z.Max, other.Z.Max)},
	}
}
