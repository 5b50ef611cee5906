package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meshforge/slicecore/mesh"
)

func TestBoundsOfTriangles(t *testing.T) {
	triangles := []mesh.FreeTriangle{
		tri(mesh.Vertex{-1, 0, 0}, mesh.Vertex{1, 0, 0}, mesh.Vertex{0, 2, 5}),
	}

	b := mesh.BoundsOfTriangles(triangles)
	assert.Equal(t, mesh.Range{Min: -1, Max: 1}, b.X)
	assert.Equal(t, mesh.Range{Min: 0, Max: 2}, b.Y)
	assert.Equal(t, mesh.Range{Min: 0, Max: 5}, b.Z)
}

func TestBounds3D_Union(t *testing.T) {
	a := mesh.Bounds3D{X: mesh.Range{Min: 0, Max: 1}, Y: mesh.Range{Min: 0, Max: 1}, Z: mesh.Range{Min: 0, Max: 1}}
	b := mesh.Bounds3D{X: mesh.Range{Min: -1, Max: 0.5}, Y: mesh.Range{Min: 2, Max: 3}, Z: mesh.Range{Min: -5, Max: 0}}

	u := a.Union(b)
	assert.Equal(t, mesh.Range{Min: -1, Max: 1}, u.X)
	assert.Equal(t, mesh.Range{Min: 0, Max: 3}, u.Y)
	assert.Equal(t, mesh.Range{Min: -5, Max: 1}, u.Z)
}

func TestEmptyBounds3D_WidensFromFirstPoint(t *testing.T) {
	b := mesh.EmptyBounds3D()
	b = mesh.BoundSum(b, mesh.Vertex{3, 4, 5})
	assert.Equal(t, mesh.Range{Min: 3, Max: 3}, b.X)
	assert.Equal(t, mesh.Range{Min: 4, Max: 4}, b.Y)
	assert.Equal(t, mesh.Range{Min: 5, Max: 5}, b.Z)
}
