package slicer

import (
	"errors"
	"fmt"
)

// Sentinel errors matching spec §7's SlicerError kinds.
var (
	// ErrNonManifold is the sentinel behind NonManifoldError: a face did
	// not have exactly one ascending entry and one accepted descending
	// exit at the plane being traversed.
	ErrNonManifold = errors.New("slicer: non-manifold face at this plane")

	// ErrCurrentFaceUntracked is the sentinel behind
	// CurrentFaceUntrackedError: traversal continued onto a face that
	// was never part of the layer's active set.
	ErrCurrentFaceUntracked = errors.New("slicer: current face not in active set")

	// ErrEmptyRing indicates a completed ring had fewer than three
	// distinct points — upstream topology corruption, not a normal
	// degenerate case.
	ErrEmptyRing = errors.New("slicer: empty ring")
)

// NonManifoldError names the face whose plane-crossing edges did not
// resolve to exactly one entry and one exit.
type NonManifoldError struct {
	Face int
}

func (e *NonManifoldError) Error() string {
	return fmt.Sprintf("slicer: face %d is non-manifold at this plane", e.Face)
}

func (e *NonManifoldError) Unwrap() error { return ErrNonManifold }

// CurrentFaceUntrackedError names the face the traversal stepped onto
// that the layer's active-set map never registered.
type CurrentFaceUntrackedError struct {
	Face int
}

func (e *CurrentFaceUntrackedError) Error() string {
	return fmt.Sprintf("slicer: face %d is not tracked in this layer's active set", e.Face)
}

func (e *CurrentFaceUntrackedError) Unwrap() error { return ErrCurrentFaceUntracked }
