package model_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshforge/slicecore/mesh"
	"github.com/meshforge/slicecore/model"
)

const oneTriangleASCII = `solid t
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 1 0
    endloop
  endfacet
endsolid t
`

func TestParseASCII_SingleTriangle(t *testing.T) {
	triangles, err := model.ParseASCII(strings.NewReader(oneTriangleASCII))
	require.NoError(t, err)
	require.Len(t, triangles, 1)
	assert.Equal(t, mesh.Vertex{0, 0, 0}, triangles[0][0])
	assert.Equal(t, mesh.Vertex{1, 0, 0}, triangles[0][1])
	assert.Equal(t, mesh.Vertex{0, 1, 0}, triangles[0][2])
}

func TestParseASCII_WrongVertexCount(t *testing.T) {
	bad := `solid t
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
    endloop
  endfacet
endsolid t
`
	_, err := model.ParseASCII(strings.NewReader(bad))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrTriangleVertexCount)
}

func TestParseASCII_InvalidTransition(t *testing.T) {
	bad := "solid t\n  nonsense line\nendsolid t\n"
	_, err := model.ParseASCII(strings.NewReader(bad))
	require.Error(t, err)
	var parseErr *model.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Line)
}

func TestRoundTrip_ParseSerializeParse(t *testing.T) {
	original, err := model.ParseASCII(strings.NewReader(oneTriangleASCII))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, model.WriteASCII(&buf, "t", original))

	reparsed, err := model.ParseASCII(&buf)
	require.NoError(t, err)

	assert.Equal(t, original, reparsed)
}
