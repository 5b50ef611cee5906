package infill

import (
	"math"

	"github.com/meshforge/slicecore/geomkernel"
)

// FillFunc computes an unclipped fill pattern over an axis-aligned bounds
// rectangle, e.g. LinearFillBounds bound to a fixed line spacing.
type FillFunc func(bounds geomkernel.Rect) geomkernel.MultiLineString

// Generator produces a rotated fill pattern for a sequence of angles
// advancing by a fixed increment, one call to Next per layer. It caches by
// the rounded angle (spec §9's design note) since both the solid and sparse
// fill angle sequences wrap modulo 360 and will revisit the same rounded
// angle many times over a tall print.
type Generator struct {
	bounds    geomkernel.Rect
	center    geomkernel.Point2
	angle     float64
	increment float64
	fillFunc  FillFunc
	cache     map[int64]geomkernel.MultiLineString
}

// NewGenerator builds a Generator over bounds, starting at initialAngle
// degrees and advancing by incrementDegrees on every Next call.
func NewGenerator(fillFunc FillFunc, bounds geomkernel.Rect, initialAngle, incrementDegrees float64) *Generator {
	return &Generator{
		bounds:    bounds,
		center:    bounds.Center(),
		angle:     initialAngle,
		increment: incrementDegrees,
		fillFunc:  fillFunc,
		cache:     make(map[int64]geomkernel.MultiLineString),
	}
}

// angleCacheKey rounds an angle in degrees to the nearest ten-thousandth,
// returned as an integer count of ten-thousandths of a degree.
func angleCacheKey(angleDegrees float64) int64 {
	return int64(math.Round(angleDegrees * 10000.0))
}

// Next returns the fill pattern for the current angle and advances the
// generator's angle by its increment, wrapped modulo 360.
func (g *Generator) Next() geomkernel.MultiLineString {
	key := angleCacheKey(g.angle)
	result, ok := g.cache[key]
	if !ok {
		result = RotatedFill(g.fillFunc, g.angle, g.bounds)
		g.cache[key] = result
	}
	g.angle = math.Mod(g.angle+g.increment, 360)
	return result
}
