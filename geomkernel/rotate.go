package geomkernel

import "math"

// RotatePointAround rotates p by angleDegrees (positive = counter-
// clockwise) around origin, computing in float64 and rounding back to
// fixed-point — the same float-then-round approach the original's
// rotate_around_point uses, kept rather than re-derived (see SPEC_FULL.md
// supplemented features).
func RotatePointAround(p, origin Point2, angleDegrees float64) Point2 {
	sin, cos := math.Sincos(angleDegrees * math.Pi / 180)
	dx := float64(p.X - origin.X)
	dy := float64(p.Y - origin.Y)
	return Point2{
		X: origin.X + int64(math.Round(dx*cos-dy*sin)),
		Y: origin.Y + int64(math.Round(dx*sin+dy*cos)),
	}
}

// RotateLineStringAround rotates every point of line around origin.
func RotateLineStringAround(line LineString, origin Point2, angleDegrees float64) LineString {
	out := make(LineString, len(line))
	for i, p := range line {
		out[i] = RotatePointAround(p, origin, angleDegrees)
	}
	return out
}

// RotateMultiLineStringAround rotates every component line string around
// origin by angleDegrees.
func RotateMultiLineStringAround(lines MultiLineString, origin Point2, angleDegrees float64) MultiLineString {
	out := make(MultiLineString, len(lines))
	for i, line := range lines {
		out[i] = RotateLineStringAround(line, origin, angleDegrees)
	}
	return out
}

// RectOfPoints computes the axis-aligned bounding rect of an arbitrary
// point set (used by infill to re-bound a rotated rectangle's corners).
func RectOfPoints(points []Point2) (Rect, bool) {
	if len(points) == 0 {
		return Rect{}, false
	}
	r := Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
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
	return r, true
}

// Corners returns the four corners of r in a consistent counter-clockwise
// order starting at Min, used when re-bounding a rotated rectangle.
func (r Rect) Corners() []Point2 {
	return []Point2{
		{X: r.Min.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Max.Y},
		{X: r.Min.X, Y: r.Max.Y},
	}
}
