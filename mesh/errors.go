package mesh

import (
	"errors"
	"fmt"
)

// ErrDegenerateEdge is the sentinel behind DegenerateEdgeError, matching
// spec §7's ModelError::DegenerateEdge(face, a, b) — raised when an edge
// of a free triangle has zero length, so no finite epsilon can weld it.
var ErrDegenerateEdge = errors.New("mesh: degenerate edge")

// DegenerateEdgeError names the offending face and the two (pre-weld)
// vertex positions that coincide.
type DegenerateEdgeError struct {
	Face int
	A, B Vertex
}

func (e *DegenerateEdgeError) Error() string {
	return fmt.Sprintf("mesh: face %d has a zero-length edge at %v == %v", e.Face, e.A, e.B)
}

func (e *DegenerateEdgeError) Unwrap() error { return ErrDegenerateEdge }

// ErrEmptyMesh indicates a build was attempted over zero triangles —
// there is no shortest edge to derive a weld epsilon from.
var ErrEmptyMesh = errors.New("mesh: no triangles to build from")
