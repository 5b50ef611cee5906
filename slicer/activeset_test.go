package slicer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meshforge/slicecore/mesh"
	"github.com/meshforge/slicecore/slicer"
)

func TestLayerZPositions_UnitCubeFourLayers(t *testing.T) {
	bounds := mesh.Bounds3D{Z: mesh.Range{Min: 0, Max: 1.0}}
	zs := slicer.LayerZPositions(bounds, 0.25)
	assert.Len(t, zs, 4)
	assert.InDelta(t, 0.125, zs[0], 1e-9)
	assert.InDelta(t, 0.875, zs[3], 1e-9)
}

func TestActiveSets_FaceCoverage(t *testing.T) {
	// One face spanning [0,1], one spanning [0.5, 1.5]; at z=0.25 only
	// the first is active, at z=1.25 only the second.
	ranges := []slicer.FaceRange{
		{FaceID: 0, ZMin: 0, ZMax: 1},
		{FaceID: 1, ZMin: 0.5, ZMax: 1.5},
	}
	zs := []float64{0.25, 0.75, 1.25}
	plans := slicer.ActiveSets(zs, ranges)

	assert.ElementsMatch(t, []int{0}, plans[0].ActiveFaceIDs)
	assert.ElementsMatch(t, []int{0, 1}, plans[1].ActiveFaceIDs)
	assert.ElementsMatch(t, []int{1}, plans[2].ActiveFaceIDs)
}

func TestBuildFaceRanges(t *testing.T) {
	vertices := []mesh.Vertex{{0, 0, 0}, {1, 0, 2}, {0, 1, 5}}
	triangles := []mesh.IndexedTriangle{{0, 1, 2}}
	m := mesh.NewHalfEdgeMesh(vertices, triangles)

	ranges := slicer.BuildFaceRanges(m)
	assert.Equal(t, 0.0, ranges[0].ZMin)
	assert.Equal(t, 5.0, ranges[0].ZMax)
}
