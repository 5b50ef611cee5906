package slicer

import (
	"github.com/meshforge/slicecore/geomkernel"
	"github.com/meshforge/slicecore/mesh"
)

// Layer is one layer's z position together with its collated,
// fixed-point closed polygons, ready for the region pipeline.
type Layer struct {
	Z       float64
	Polygon geomkernel.MultiPolygon
}

// SliceMesh runs the full plane-sweep slicer (spec §4.4) end to end:
// active-set construction, per-layer face traversal, Douglas-Peucker
// simplification, integerization, and collation into nested
// MultiPolygons. Layers are produced in ascending z order; this
// function itself is single-threaded — the pipeline package fans
// SliceOneLayer out across goroutines once LayerPlans are known.
func SliceMesh(k *geomkernel.Kernel, m *mesh.HalfEdgeMesh, bounds mesh.Bounds3D, layerHeight, simplifyFactor, resolution float64) ([]Layer, error) {
	ranges := BuildFaceRanges(m)
	zs := LayerZPositions(bounds, layerHeight)
	plans := ActiveSets(zs, ranges)

	layers := make([]Layer, len(plans))
	for i, plan := range plans {
		layer, err := SliceOneLayer(k, m, ranges, plan, simplifyFactor, resolution)
		if err != nil {
			return nil, err
		}
		layers[i] = layer
	}
	return layers, nil
}

// SliceOneLayer runs the traversal-through-collate chain for a single
// LayerPlan. It is the unit of work the pipeline package parallelizes.
func SliceOneLayer(k *geomkernel.Kernel, m *mesh.HalfEdgeMesh, ranges []FaceRange, plan LayerPlan, simplifyFactor, resolution float64) (Layer, error) {
	rings, err := TraverseLayer(m, ranges, plan)
	if err != nil {
		return Layer{}, err
	}

	simplified := geomkernel.SimplifyMultiLineString(rings, simplifyFactor)
	integerized := geomkernel.Integerize(simplified, resolution)

	polygon, err := k.Collate(integerized)
	if err != nil {
		return Layer{}, err
	}
	return Layer{Z: plan.Z, Polygon: polygon}, nil
}
