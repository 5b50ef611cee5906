package geomkernel

import "math"

// FloatPoint2 is a 2D point in model units (millimeters), used for the
// slicer's raw output before simplification and integerization.
type FloatPoint2 struct {
	X, Y float64
}

// FloatLineString is an ordered sequence of float points — one ring of a
// layer's raw slice output, before Douglas-Peucker simplification.
type FloatLineString []FloatPoint2

// FloatMultiLineString collects every ring sliced out of one layer plane.
type FloatMultiLineString []FloatLineString

// Integerize rounds every point of every line string by
// round(value/resolution), producing the fixed-point MultiLineString the
// rest of the pipeline operates on. resolution is the configured length
// quantum (spec §3, §6).
func Integerize(lines FloatMultiLineString, resolution float64) MultiLineString {
	out := make(MultiLineString, len(lines))
	for i, line := range lines {
		fixed := make(LineString, len(line))
		for j, p := range line {
			fixed[j] = Point2{
				X: int64(math.Round(p.X / resolution)),
				Y: int64(math.Round(p.Y / resolution)),
			}
		}
		out[i] = fixed
	}
	return out
}
