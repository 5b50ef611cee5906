// Package geomkernel defines the fixed-point 2D geometry types shared by
// every downstream package (slicer, regions, exposure, infill, connector)
// and a thin Kernel adapter over a third-party polygon-clipping library
// that gives a single, uniform interface to the handful of Boolean and
// offsetting primitives the pipeline needs:
//
//	Difference, Intersection, Union   — MultiPolygon ∘ MultiPolygon → MultiPolygon
//	IntersectOpen                     — MultiPolygon ∘ MultiLineString → MultiLineString (open paths)
//	Offset                            — Polygon, delta, Miter(3) join, closed-polygon ends
//	Simplify                          — Douglas-Peucker on float64 line strings
//	Collate                           — flat rings → nested MultiPolygon (holes attached)
//	BoundingRect                      — axis-aligned bounds of any ringed geometry
//
// All downstream packages depend on *Kernel, never on the clipping library
// directly, so swapping the backing library only touches this package.
package geomkernel
