package slicer

import (
	"math"

	"github.com/meshforge/slicecore/geomkernel"
	"github.com/meshforge/slicecore/mesh"
)

// zTieEpsilon is the ε_z of spec §4.4's z-tie perturbation.
const zTieEpsilon = 1e-7

func perturbedZ(v, plane float64) float64 {
	if v == plane {
		return v + 2*zTieEpsilon
	}
	return v
}

// faceSegment computes a face's plane-crossing segment at z (spec
// §4.4's per-face segment computation), returning the accepted
// descending edge's twin face as the traversal's next face. It returns
// a *NonManifoldError if the face does not have exactly one ascending
// entry and one accepted descending exit at this plane.
func faceSegment(m *mesh.HalfEdgeMesh, ranges []FaceRange, faceID int, z float64) (Segment, int, error) {
	edges := m.EdgesOfFace(uint32(faceID))

	var seg Segment
	ascCount, descCount := 0, 0
	nextFace := -1

	for _, e := range edges {
		p1 := m.VertexAt(e)
		p2 := m.VertexAt(m.Edges[e].Next)

		z1 := perturbedZ(p1.Z(), z)
		z2 := perturbedZ(p2.Z(), z)

		var bx, by, bz, tx, ty, tz float64
		if z1 < z2 {
			bx, by, bz = p1.X(), p1.Y(), z1
			tx, ty, tz = p2.X(), p2.Y(), z2
		} else {
			bx, by, bz = p2.X(), p2.Y(), z2
			tx, ty, tz = p1.X(), p1.Y(), z1
		}
		if z < bz || z > tz {
			continue
		}
		f := (z - bz) / (tz - bz)
		point := geomkernel.FloatPoint2{X: bx + f*(tx-bx), Y: by + f*(ty-by)}

		if z1 < z2 {
			ascCount++
			seg.Start = point
			continue
		}
		if z1 == z2 {
			continue
		}

		twinEdge := m.Edges[e].Twin
		if twinEdge == mesh.NoIndex {
			continue
		}
		twinFace := int(m.Edges[twinEdge].Face)
		twinRange := ranges[twinFace]
		if z > twinRange.ZMin && z <= twinRange.ZMax {
			descCount++
			seg.End = point
			nextFace = twinFace
		}
	}

	if ascCount != 1 || descCount != 1 {
		return Segment{}, -1, &NonManifoldError{Face: faceID}
	}
	return seg, nextFace, nil
}

func pointsApproxEqual(a, b geomkernel.FloatPoint2) bool {
	const eps = 1e-6
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

// traverseRingFrom walks face-to-face starting at f0 until it returns to
// f0, producing one closed ring (spec §4.4's per-layer traversal).
func traverseRingFrom(m *mesh.HalfEdgeMesh, ranges []FaceRange, z float64, f0 int, seen map[int]bool) (geomkernel.FloatLineString, error) {
	seg, next, err := faceSegment(m, ranges, f0, z)
	if err != nil {
		return nil, err
	}
	seen[f0] = true
	ring := geomkernel.FloatLineString{seg.Start, seg.End}
	cur := next

	for {
		if _, tracked := seen[cur]; !tracked {
			return nil, &CurrentFaceUntrackedError{Face: cur}
		}
		segPrime, nextPrime, err := faceSegment(m, ranges, cur, z)
		if err != nil {
			return nil, err
		}
		last := ring[len(ring)-1]
		if !pointsApproxEqual(segPrime.Start, last) {
			return nil, &NonManifoldError{Face: cur}
		}
		ring = append(ring, segPrime.End)
		seen[cur] = true

		if nextPrime == f0 {
			// The last exit lands on f0's entry, so that point already
			// closes the ring; snap it to ring[0] so First() == Last()
			// holds exactly.
			ring[len(ring)-1] = ring[0]
			if len(ring) < 4 {
				return nil, ErrEmptyRing
			}
			return ring, nil
		}
		cur = nextPrime
	}
}

// TraverseLayer produces every closed ring for one layer plan by
// repeatedly starting a new ring traversal at the next unseen active
// face.
func TraverseLayer(m *mesh.HalfEdgeMesh, ranges []FaceRange, plan LayerPlan) (geomkernel.FloatMultiLineString, error) {
	seen := make(map[int]bool, len(plan.ActiveFaceIDs))
	for _, f := range plan.ActiveFaceIDs {
		seen[f] = false
	}

	var rings geomkernel.FloatMultiLineString
	for _, f0 := range plan.ActiveFaceIDs {
		if seen[f0] {
			continue
		}
		ring, err := traverseRingFrom(m, ranges, plan.Z, f0, seen)
		if err != nil {
			return nil, err
		}
		rings = append(rings, ring)
	}
	return rings, nil
}
