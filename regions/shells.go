package regions

import "github.com/meshforge/slicecore/geomkernel"

// ComputeOutlines mints one Region per polygon in a layer's collated
// MultiPolygon (spec §4.5's outline regions).
func ComputeOutlines(mp geomkernel.MultiPolygon) Outlines {
	return Outlines(FromMultiPolygon(mp))
}

// offsetRegion offsets a single region's polygon and re-wraps every
// resulting piece under the same region ID, so identity survives a
// Boolean/offset op that happens to split one polygon into several
// (spec §8 testable property 4).
func offsetRegion(k *geomkernel.Kernel, region Region, delta float64) ([]Region, error) {
	offset, err := k.Offset(region.Polygon, delta)
	if err != nil {
		return nil, err
	}
	out := make([]Region, len(offset))
	for i, p := range offset {
		out[i] = region.WithPolygon(p)
	}
	return out, nil
}

// ComputeShells offsets every outline region by the rank-0..num_shells-1
// deltas shellOffset provides, bundling each rank's rings into one
// MultiLineString per region (spec §4.5).
func ComputeShells(k *geomkernel.Kernel, outlines Outlines, numShells int, shellOffset func(rank int) float64) (LayerShells, error) {
	layerShells := make(LayerShells, len(outlines))
	for i, region := range outlines {
		ranks := make([]geomkernel.MultiLineString, numShells)
		for rank := 0; rank < numShells; rank++ {
			pieces, err := offsetRegion(k, region, shellOffset(rank))
			if err != nil {
				return nil, err
			}
			var rankLines geomkernel.MultiLineString
			for _, piece := range pieces {
				rankLines = append(rankLines, piece.Polygon.Rings()...)
			}
			ranks[rank] = rankLines
		}
		layerShells[i] = Shells{Ranks: ranks, RegionID: region.ID}
	}
	return layerShells, nil
}

// ComputeInterior offsets every outline region inward by the single
// interior delta of spec §4.5, preserving region identity.
func ComputeInterior(k *geomkernel.Kernel, outlines Outlines, interiorDelta float64) (Interiors, error) {
	var out Interiors
	for _, region := range outlines {
		pieces, err := offsetRegion(k, region, interiorDelta)
		if err != nil {
			return nil, err
		}
		out = append(out, pieces...)
	}
	return out, nil
}
