package slicer

import "github.com/meshforge/slicecore/geomkernel"

// FaceRange is a face's vertical extent, the unit the active-set sweep
// operates on (spec §3).
type FaceRange struct {
	FaceID   int
	ZMin     float64
	ZMax     float64
}

// LayerPlan is one horizontal plane position together with the faces
// whose z-range straddles it at sweep time (spec §3).
type LayerPlan struct {
	Z             float64
	ActiveFaceIDs []int
}

// Segment is the pair of points where one face's boundary crosses the
// current plane: Start is the ascending (entry) intersection, End the
// accepted descending (exit) intersection.
type Segment struct {
	Start, End geomkernel.FloatPoint2
}
