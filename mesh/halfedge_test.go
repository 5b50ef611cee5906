package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshforge/slicecore/mesh"
)

func TestNewHalfEdgeMesh_NextCyclesWithinFace(t *testing.T) {
	vertices := []mesh.Vertex{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	triangles := []mesh.IndexedTriangle{{0, 1, 2}}

	m := mesh.NewHalfEdgeMesh(vertices, triangles)
	require.Len(t, m.Edges, 3)

	edges := m.EdgesOfFace(0)
	for i, e := range edges {
		assert.Equal(t, edges[(i+1)%3], m.Edges[e].Next)
	}
}

func TestNewHalfEdgeMesh_BoundaryEdgeHasNoTwin(t *testing.T) {
	vertices := []mesh.Vertex{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	triangles := []mesh.IndexedTriangle{{0, 1, 2}}

	m := mesh.NewHalfEdgeMesh(vertices, triangles)
	for _, e := range m.Edges {
		assert.Equal(t, mesh.NoIndex, e.Twin)
	}
}

func TestNewHalfEdgeMesh_VertexAt(t *testing.T) {
	vertices := []mesh.Vertex{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	triangles := []mesh.IndexedTriangle{{0, 1, 2}}

	m := mesh.NewHalfEdgeMesh(vertices, triangles)
	start := m.Faces[0].Edge
	assert.Equal(t, vertices[0], m.VertexAt(start))
}
