package sliceconfig_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshforge/slicecore/sliceconfig"
)

const validYAML = `
layer_height: 0.2
resolution: 0.01
simplify_factor: 0.01
num_shells: 2
nozzle_diameter: 0.4
shell_overlap: 0.05
shell_infill_overlap: 0.05
top_thickness: 0.8
bottom_thickness: 0.8
solid_fill_overlap_ratio: 0.1
solid_fill_initial_angle: 45
solid_fill_angle_increment: 90
sparse_fill_density: 0.2
sparse_fill_initial_angle: 45
sparse_fill_angle_increment: 90
`

func TestLoad_Valid(t *testing.T) {
	c, err := sliceconfig.Load(strings.NewReader(validYAML))
	require.NoError(t, err)
	assert.Equal(t, 0.2, c.LayerHeight)
	assert.Equal(t, 2, c.NumShells)
}

func TestLoad_RejectsUnknownField(t *testing.T) {
	bad := validYAML + "unexpected_key: 1\n"
	_, err := sliceconfig.Load(strings.NewReader(bad))
	assert.Error(t, err)
}

func TestValidate_RejectsTooSmallLayerHeight(t *testing.T) {
	bad := strings.Replace(validYAML, "layer_height: 0.2", "layer_height: 0.0000001", 1)
	_, err := sliceconfig.Load(strings.NewReader(bad))
	require.Error(t, err)
	assert.ErrorIs(t, err, sliceconfig.ErrInvalidConfig)
}

func TestValidate_RejectsZeroSparseDensity(t *testing.T) {
	bad := strings.Replace(validYAML, "sparse_fill_density: 0.2", "sparse_fill_density: 0", 1)
	_, err := sliceconfig.Load(strings.NewReader(bad))
	require.Error(t, err)
	var verr *sliceconfig.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "sparse_fill_density", verr.Field)
}

func TestDerivedQuantities(t *testing.T) {
	c, err := sliceconfig.Load(strings.NewReader(validYAML))
	require.NoError(t, err)

	assert.InDelta(t, 40.0, c.NozzleDiameterDsc(), 1e-9) // 0.4/0.01
	assert.InDelta(t, -20.0, c.ShellOffsetDsc(0), 1e-9)  // -(40/2) - 0*(40-5)
	assert.Equal(t, 4, c.NumTopLayers())                 // ceil(0.8/0.2)
}
