package mesh_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshforge/slicecore/mesh"
)

func tri(a, b, c mesh.Vertex) mesh.FreeTriangle {
	return mesh.FreeTriangle{a, b, c}
}

func TestUnify_WeldsCoincidentVertices(t *testing.T) {
	// Two triangles sharing an edge, the shared vertices given with a
	// sub-epsilon jitter so they must still collapse to one index.
	triangles := []mesh.FreeTriangle{
		tri(mesh.Vertex{0, 0, 0}, mesh.Vertex{1, 0, 0}, mesh.Vertex{0, 1, 0}),
		tri(mesh.Vertex{1, 0, 0}, mesh.Vertex{1.0000000001, 1, 0}, mesh.Vertex{0.0000000001, 1, 0}),
	}

	vertices, indexed, err := mesh.Unify(triangles)
	require.NoError(t, err)

	assert.Less(t, len(vertices), 6, "coincident vertices across the shared edge should have welded")
	assert.Equal(t, indexed[0][1], indexed[1][0], "shared vertex (1,0,0) should map to the same index")
}

func TestUnify_DegenerateEdge(t *testing.T) {
	triangles := []mesh.FreeTriangle{
		tri(mesh.Vertex{0, 0, 0}, mesh.Vertex{0, 0, 0}, mesh.Vertex{1, 1, 0}),
	}

	_, _, err := mesh.Unify(triangles)
	require.Error(t, err)
	assert.True(t, errors.Is(err, mesh.ErrDegenerateEdge))

	var degErr *mesh.DegenerateEdgeError
	require.ErrorAs(t, err, &degErr)
	assert.Equal(t, 0, degErr.Face)
}

func TestUnify_EmptyInput(t *testing.T) {
	_, _, err := mesh.Unify(nil)
	assert.ErrorIs(t, err, mesh.ErrEmptyMesh)
}

func TestUnify_DistinctVerticesStayDistinct(t *testing.T) {
	triangles := []mesh.FreeTriangle{
		tri(mesh.Vertex{0, 0, 0}, mesh.Vertex{10, 0, 0}, mesh.Vertex{0, 10, 0}),
	}

	vertices, _, err := mesh.Unify(triangles)
	require.NoError(t, err)
	assert.Len(t, vertices, 3)
}

func TestBuild_ProducesTwinsAcrossSharedEdge(t *testing.T) {
	triangles := []mesh.FreeTriangle{
		tri(mesh.Vertex{0, 0, 0}, mesh.Vertex{1, 0, 0}, mesh.Vertex{0, 1, 0}),
		tri(mesh.Vertex{1, 0, 0}, mesh.Vertex{1, 1, 0}, mesh.Vertex{0, 1, 0}),
	}

	m, err := mesh.Build(triangles)
	require.NoError(t, err)

	twinned := 0
	for _, e := range m.Edges {
		if e.Twin != mesh.NoIndex {
			twinned++
		}
	}
	assert.Equal(t, 2, twinned, "the shared diagonal edge should produce exactly one twin pair")
}
