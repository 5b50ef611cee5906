package sliceconfig

import (
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// Config holds exactly the YAML keys spec §6 lists, all numeric.
type Config struct {
	LayerHeight    float64 `yaml:"layer_height"`
	Resolution     float64 `yaml:"resolution"`
	SimplifyFactor float64 `yaml:"simplify_factor"`
	NumShells      int     `yaml:"num_shells"`

	NozzleDiameter      float64 `yaml:"nozzle_diameter"`
	ShellOverlap        float64 `yaml:"shell_overlap"`
	ShellInfillOverlap  float64 `yaml:"shell_infill_overlap"`
	TopThickness        float64 `yaml:"top_thickness"`
	BottomThickness     float64 `yaml:"bottom_thickness"`

	SolidFillOverlapRatio   float64 `yaml:"solid_fill_overlap_ratio"`
	SolidFillInitialAngle   float64 `yaml:"solid_fill_initial_angle"`
	SolidFillAngleIncrement float64 `yaml:"solid_fill_angle_increment"`

	SparseFillDensity        float64 `yaml:"sparse_fill_density"`
	SparseFillInitialAngle   float64 `yaml:"sparse_fill_initial_angle"`
	SparseFillAngleIncrement float64 `yaml:"sparse_fill_angle_increment"`
}

// Load decodes a Config from r and validates it.
func Load(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("sliceconfig: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// zTieMargin enforces the §9 assumption that layer_height is much
// greater than the z-tie perturbation epsilon (2×10⁻⁷); "much greater"
// is taken here as at least three orders of magnitude.
const zTieMargin = 1000 * 2e-7

// Validate checks every field is in a range the pipeline can safely
// operate on, matching the assertions spec §9 calls for.
func (c *Config) Validate() error {
	switch {
	case c.LayerHeight <= 0:
		return &ValidationError{Field: "layer_height", Reason: "must be positive"}
	case c.LayerHeight < zTieMargin:
		return &ValidationError{Field: "layer_height", Reason: "must be much greater than the z-tie perturbation epsilon (2e-7)"}
	case c.Resolution <= 0:
		return &ValidationError{Field: "resolution", Reason: "must be positive"}
	case c.SimplifyFactor < 0:
		return &ValidationError{Field: "simplify_factor", Reason: "must be non-negative"}
	case c.NumShells < 0:
		return &ValidationError{Field: "num_shells", Reason: "must be non-negative"}
	case c.NozzleDiameter <= 0:
		return &ValidationError{Field: "nozzle_diameter", Reason: "must be positive"}
	case c.TopThickness < 0:
		return &ValidationError{Field: "top_thickness", Reason: "must be non-negative"}
	case c.BottomThickness < 0:
		return &ValidationError{Field: "bottom_thickness", Reason: "must be non-negative"}
	case c.SolidFillOverlapRatio < 0 || c.SolidFillOverlapRatio >= 1:
		return &ValidationError{Field: "solid_fill_overlap_ratio", Reason: "must be in [0,1)"}
	case c.SparseFillDensity <= 0 || c.SparseFillDensity > 1:
		return &ValidationError{Field: "sparse_fill_density", Reason: "must be in (0,1]"}
	}
	return nil
}

// NozzleDiameterDsc, ShellOverlapDsc, and ShellInfillOverlapDsc convert
// their millimeter config values into the fixed-point quantum space
// (spec §3's resolution) every offset delta is expressed in.
func (c *Config) NozzleDiameterDsc() float64     { return c.NozzleDiameter / c.Resolution }
func (c *Config) ShellOverlapDsc() float64       { return c.ShellOverlap / c.Resolution }
func (c *Config) ShellInfillOverlapDsc() float64 { return c.ShellInfillOverlap / c.Resolution }

// ShellOffsetDsc returns the offset (negative, inward) for shell rank i
// of num_shells, per spec §4.5: -(½·nd) - i·(nd - so).
func (c *Config) ShellOffsetDsc(rank int) float64 {
	nd := c.NozzleDiameterDsc()
	so := c.ShellOverlapDsc()
	return -(nd / 2) - float64(rank)*(nd-so)
}

// InteriorOffsetDsc returns the interior-region offset of spec §4.5:
// -(nd + (nd - so)·(num_shells-1) - si).
func (c *Config) InteriorOffsetDsc() float64 {
	nd := c.NozzleDiameterDsc()
	so := c.ShellOverlapDsc()
	si := c.ShellInfillOverlapDsc()
	return -(nd + (nd-so)*float64(c.NumShells-1) - si)
}

// SolidFillSpacingDsc is nd - nd·overlap_ratio (spec §4.6).
func (c *Config) SolidFillSpacingDsc() float64 {
	nd := c.NozzleDiameterDsc()
	return nd - nd*c.SolidFillOverlapRatio
}

// SparseFillSpacingDsc is nd·(1-density)/density (spec §4.6).
func (c *Config) SparseFillSpacingDsc() float64 {
	nd := c.NozzleDiameterDsc()
	return nd * (1 - c.SparseFillDensity) / c.SparseFillDensity
}

// NumTopLayers and NumBottomLayers derive the exposure window sizes of
// spec §4.5 from their respective thickness config values, rounding up
// so a partial layer's worth of thickness still gets a full solid layer.
func (c *Config) NumTopLayers() int {
	return int(math.Ceil(c.TopThickness / c.LayerHeight))
}

func (c *Config) NumBottomLayers() int {
	return int(math.Ceil(c.BottomThickness / c.LayerHeight))
}
