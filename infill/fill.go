package infill

import (
	"math"

	"github.com/meshforge/slicecore/geomkernel"
	"github.com/meshforge/slicecore/regions"
	"github.com/meshforge/slicecore/sliceconfig"
)

// NewSolidFillGenerator builds the solid-fill rotating generator, spaced
// per sliceconfig.Config.SolidFillSpacingDsc and starting from the
// configured solid fill angle sequence.
func NewSolidFillGenerator(cfg *sliceconfig.Config, bounds geomkernel.Rect) *Generator {
	spacing := int64(math.Round(cfg.SolidFillSpacingDsc()))
	fillFunc := func(b geomkernel.Rect) geomkernel.MultiLineString { return LinearFillBounds(spacing, b) }
	return NewGenerator(fillFunc, bounds, cfg.SolidFillInitialAngle, cfg.SolidFillAngleIncrement)
}

// NewSparseFillGenerator builds the sparse-fill rotating generator,
// spaced per sliceconfig.Config.SparseFillSpacingDsc.
func NewSparseFillGenerator(cfg *sliceconfig.Config, bounds geomkernel.Rect) *Generator {
	spacing := int64(math.Round(cfg.SparseFillSpacingDsc()))
	fillFunc := func(b geomkernel.Rect) geomkernel.MultiLineString { return LinearFillBounds(spacing, b) }
	return NewGenerator(fillFunc, bounds, cfg.SparseFillInitialAngle, cfg.SparseFillAngleIncrement)
}

// SolidFillPaths generates the next solid-fill angle's pattern over
// bounds and clips it to solid, returning only the portions that lie
// inside the solid regions (spec §4.6's final intersection step).
func SolidFillPaths(k *geomkernel.Kernel, gen *Generator, solid regions.Solids) (geomkernel.MultiLineString, error) {
	fill := gen.Next()
	region := make(geomkernel.MultiPolygon, len(solid))
	for i, r := range solid {
		region[i] = r.Polygon
	}
	return k.IntersectOpen(region, fill)
}

// SparseFillPaths generates the next sparse-fill angle's pattern over
// bounds and clips it to sparse.
func SparseFillPaths(k *geomkernel.Kernel, gen *Generator, sparse regions.Sparses) (geomkernel.MultiLineString, error) {
	fill := gen.Next()
	region := make(geomkernel.MultiPolygon, len(sparse))
	for i, r := range sparse {
		region[i] = r.Polygon
	}
	return k.IntersectOpen(region, fill)
}
