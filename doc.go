// Package slicecore is a 3D-printing slicer core: it turns a
// triangulated surface mesh into a stack of per-layer 2D toolpaths.
//
// The pipeline runs in three stages:
//
//	model/ + mesh/     — parse STL, weld coincident vertices, build a
//	                     half-edge mesh with twin-linked edges
//	slicer/            — plane-sweep each layer into closed polygons
//	regions/ + exposure/ + infill/ + connector/ + pipeline/
//	                   — per layer: shells, top/bottom-exposed solid and
//	                     sparse regions, two rotated fill patterns, and a
//	                     nearest-neighbor travel order over everything,
//	                     fanned out across a worker pool
//
// geomkernel/ adapts every Boolean/offset/simplify operation to a single
// fixed-point polygon-clipping backend; sliceconfig/ loads and validates
// the YAML run configuration; writer/ renders the result as an HTML
// layer viewer; cmd/slicecore is the CLI entry point.
package slicecore
