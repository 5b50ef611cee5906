package infill

import "github.com/meshforge/slicecore/geomkernel"

// LinearFillBounds produces one vertical line per spacing step across
// bounds, each spanning the full height of bounds — the unrotated fill
// pattern every rotated angle is built from (spec §4.6).
func LinearFillBounds(spacing int64, bounds geomkernel.Rect) geomkernel.MultiLineString {
	var lines geomkernel.MultiLineString
	if spacing <= 0 {
		return lines
	}
	for x := bounds.Min.X; x <= bounds.Max.X; x += spacing {
		lines = append(lines, geomkernel.LineString{
			{X: x, Y: bounds.Min.Y},
			{X: x, Y: bounds.Max.Y},
		})
	}
	return lines
}

// RotatedFill evaluates fillFunc over bounds rotated into a frame where
// the fill lines are vertical, then rotates the result back: bounds'
// corners are rotated by -angle around its center and re-bounded, the
// fill is generated over that re-bounded rect, and the resulting lines
// are rotated by +angle back into the caller's frame (spec §4.6).
func RotatedFill(fillFunc FillFunc, angleDegrees float64, bounds geomkernel.Rect) geomkernel.MultiLineString {
	center := bounds.Center()
	rotatedCorners := make([]geomkernel.Point2, len(bounds.Corners()))
	for i, c := range bounds.Corners() {
		rotatedCorners[i] = geomkernel.RotatePointAround(c, center, -angleDegrees)
	}
	innerBounds, ok := geomkernel.RectOfPoints(rotatedCorners)
	if !ok {
		return nil
	}
	fill := fillFunc(innerBounds)
	return geomkernel.RotateMultiLineStringAround(fill, center, angleDegrees)
}
