package exposure

import (
	"github.com/meshforge/slicecore/geomkernel"
	"github.com/meshforge/slicecore/regions"
)

// TopExposed returns, for every layer, outline[i] minus the next layer's
// outline; the topmost layer is fully exposed (spec §4.5).
func TopExposed(k *geomkernel.Kernel, outlines []geomkernel.MultiPolygon) ([]geomkernel.MultiPolygon, error) {
	n := len(outlines)
	out := make([]geomkernel.MultiPolygon, n)
	for i := 0; i < n; i++ {
		if i == n-1 {
			out[i] = outlines[i]
			continue
		}
		diff, err := k.Difference(outlines[i], outlines[i+1])
		if err != nil {
			return nil, err
		}
		out[i] = diff
	}
	return out, nil
}

// BottomExposed returns, for every layer, outline[i] minus the previous
// layer's outline; the bottommost layer is fully exposed (spec §4.5).
func BottomExposed(k *geomkernel.Kernel, outlines []geomkernel.MultiPolygon) ([]geomkernel.MultiPolygon, error) {
	n := len(outlines)
	out := make([]geomkernel.MultiPolygon, n)
	for i := 0; i < n; i++ {
		if i == 0 {
			out[i] = outlines[i]
			continue
		}
		diff, err := k.Difference(outlines[i], outlines[i-1])
		if err != nil {
			return nil, err
		}
		out[i] = diff
	}
	return out, nil
}

// topWindow returns the layer indices of the top-exposed window
// [i, i+numTop) clamped to [0,n), and bottomWindow the bottom-exposed
// window (i-numBottom, i] clamped likewise — split out from
// SolidNeedsUnion so the windowing arithmetic is testable without a
// geometry backend.
func topWindow(i, n, numTop int) []int {
	var idx []int
	for j := i; j < i+numTop && j < n; j++ {
		idx = append(idx, j)
	}
	return idx
}

func bottomWindow(i, n, numBottom int) []int {
	var idx []int
	for j := i - numBottom + 1; j <= i; j++ {
		if j >= 0 && j < n {
			idx = append(idx, j)
		}
	}
	return idx
}

// SolidNeedsUnion computes, for every layer i, the union of top-exposed
// layers [i, i+numTop) and bottom-exposed layers (i-numBottom, i] — a
// sliding window over both exposure sequences (spec §4.5).
func SolidNeedsUnion(k *geomkernel.Kernel, topExposed, bottomExposed []geomkernel.MultiPolygon, numTop, numBottom int) ([]geomkernel.MultiPolygon, error) {
	n := len(topExposed)
	out := make([]geomkernel.MultiPolygon, n)
	for i := 0; i < n; i++ {
		var parts []geomkernel.MultiPolygon
		for _, j := range topWindow(i, n, numTop) {
			parts = append(parts, topExposed[j])
		}
		for _, j := range bottomWindow(i, n, numBottom) {
			parts = append(parts, bottomExposed[j])
		}
		union, err := k.UnionAll(parts...)
		if err != nil {
			return nil, err
		}
		out[i] = union
	}
	return out, nil
}

// SolidAndSparse partitions a layer's interior into its solid (needs
// full fill) and sparse (grid fill) portions (spec §4.5, testable
// property 6). Both results mint fresh region identity, since a solid
// or sparse region is a genuinely new entity assembled from possibly
// many outline regions' interiors.
func SolidAndSparse(k *geomkernel.Kernel, interior regions.Interiors, solidNeedsUnion geomkernel.MultiPolygon) (regions.Solids, regions.Sparses, error) {
	interiorPolys := make(geomkernel.MultiPolygon, len(interior))
	for i, r := range interior {
		interiorPolys[i] = r.Polygon
	}

	solidPolys, err := k.Intersection(interiorPolys, solidNeedsUnion)
	if err != nil {
		return nil, nil, err
	}
	sparsePolys, err := k.Difference(interiorPolys, solidPolys)
	if err != nil {
		return nil, nil, err
	}

	solid := regions.Solids(regions.FromMultiPolygon(solidPolys))
	sparse := regions.Sparses(regions.FromMultiPolygon(sparsePolys))
	return solid, sparse, nil
}
