package writer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshforge/slicecore/geomkernel"
	"github.com/meshforge/slicecore/mesh"
	"github.com/meshforge/slicecore/pipeline"
	"github.com/meshforge/slicecore/regions"
)

func TestWriteHTML_EmitsOneGroupPerLayerWithFirstVisible(t *testing.T) {
	layers := []pipeline.LayerResult{
		{Z: 0.5, Paths: []regions.TaggedPath{
			{Tag: regions.PathTagShell, Path: geomkernel.LineString{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}},
		}},
		{Z: 1.5, Paths: []regions.TaggedPath{
			{Tag: regions.PathTagSolid, Path: geomkernel.LineString{{X: 0, Y: 0}, {X: 5, Y: 5}}},
		}},
	}
	bounds := mesh.Bounds3D{
		X: mesh.Range{Min: 0, Max: 10},
		Y: mesh.Range{Min: 0, Max: 10},
		Z: mesh.Range{Min: 0, Max: 2},
	}

	var out strings.Builder
	err := WriteHTML(&out, "test-part", layers, bounds, 0.1)
	require.NoError(t, err)

	html := out.String()
	assert.Contains(t, html, `<g id="layer_0" display="inline">`)
	assert.Contains(t, html, `<g id="layer_1" display="none">`)
	assert.Contains(t, html, `stroke="red"`)
	assert.Contains(t, html, `stroke="green"`)
	assert.Contains(t, html, `id="layerSlider"`)
	assert.Contains(t, html, `max="1"`)
	assert.Contains(t, html, "var numLayers = 2;")
	assert.Contains(t, html, "test-part")
}

func TestWriteHTML_EmptyPathProducesNoElement(t *testing.T) {
	layers := []pipeline.LayerResult{{Z: 0, Paths: []regions.TaggedPath{{Tag: regions.PathTagShell, Path: nil}}}}
	bounds := mesh.Bounds3D{X: mesh.Range{Min: 0, Max: 1}, Y: mesh.Range{Min: 0, Max: 1}}

	var out strings.Builder
	err := WriteHTML(&out, "empty", layers, bounds, 1.0)
	require.NoError(t, err)
	assert.NotContains(t, out.String(), `<path`)
}

func TestColorFor_UnknownTagFallsBackToGrey(t *testing.T) {
	assert.Equal(t, "grey", colorFor(regions.PathTag(99)))
	assert.Equal(t, "black", colorFor(regions.PathTagRegion))
}
