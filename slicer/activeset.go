package slicer

import (
	"container/heap"
	"math"
	"sort"

	"github.com/meshforge/slicecore/mesh"
)

// BuildFaceRanges computes the vertical extent of every face in m.
func BuildFaceRanges(m *mesh.HalfEdgeMesh) []FaceRange {
	ranges := make([]FaceRange, len(m.Faces))
	for fi := range m.Faces {
		edges := m.EdgesOfFace(uint32(fi))
		min, max := math.Inf(1), math.Inf(-1)
		for _, e := range edges {
			z := m.VertexAt(e).Z()
			if z < min {
				min = z
			}
			if z > max {
				max = z
			}
		}
		ranges[fi] = FaceRange{FaceID: fi, ZMin: min, ZMax: max}
	}
	return ranges
}

// LayerZPositions returns the layer-plane z positions {h/2, 3h/2, …}
// covering a model's z extent. The count matches round(zMax/h), the
// same formula the original slicer derives its layer count from.
func LayerZPositions(bounds mesh.Bounds3D, layerHeight float64) []float64 {
	numLayers := int(math.Round(bounds.Z.Max / layerHeight))
	positions := make([]float64, numLayers)
	for i := 0; i < numLayers; i++ {
		positions[i] = float64(i)*layerHeight + layerHeight/2
	}
	return positions
}

// zMaxHeap pops its smallest ZMax first, so expired faces (ZMax < the
// current sweep position) surface at the top in O(log n).
type zMaxHeap []FaceRange

func (h zMaxHeap) Len() int            { return len(h) }
func (h zMaxHeap) Less(i, j int) bool  { return h[i].ZMax < h[j].ZMax }
func (h zMaxHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *zMaxHeap) Push(x interface{}) { *h = append(*h, x.(FaceRange)) }
func (h *zMaxHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// ActiveSets runs the active-face sweep of spec §4.4 across every layer
// position in zs, given every face's range. Faces are moved from a
// stably z_min-sorted queue into the heap as each layer's z passes their
// z_min, and popped out once their z_max has passed; the survivors at
// each position become that layer's ActiveFaceIDs.
func ActiveSets(zs []float64, ranges []FaceRange) []LayerPlan {
	bottomSorted := make([]FaceRange, len(ranges))
	copy(bottomSorted, ranges)
	sort.SliceStable(bottomSorted, func(i, j int) bool {
		return bottomSorted[i].ZMin < bottomSorted[j].ZMin
	})

	active := &zMaxHeap{}
	heap.Init(active)

	plans := make([]LayerPlan, len(zs))
	idx := 0
	for li, z := range zs {
		for idx < len(bottomSorted) && bottomSorted[idx].ZMin < z {
			heap.Push(active, bottomSorted[idx])
			idx++
		}
		for active.Len() > 0 && (*active)[0].ZMax < z {
			heap.Pop(active)
		}

		ids := make([]int, active.Len())
		for i, f := range *active {
			ids[i] = f.FaceID
		}
		plans[li] = LayerPlan{Z: z, ActiveFaceIDs: ids}
	}
	return plans
}
