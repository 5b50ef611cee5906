package regions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meshforge/slicecore/geomkernel"
	"github.com/meshforge/slicecore/regions"
)

func square(n int64) geomkernel.Polygon {
	ring := geomkernel.LineString{
		{X: 0, Y: 0}, {X: n, Y: 0}, {X: n, Y: n}, {X: 0, Y: n}, {X: 0, Y: 0},
	}
	return geomkernel.Polygon{Exterior: ring}
}

func TestNewRegion_AssignsDistinctIDs(t *testing.T) {
	a := regions.NewRegion(square(10))
	b := regions.NewRegion(square(20))
	assert.NotEqual(t, a.ID, b.ID)
}

func TestWithPolygon_PreservesID(t *testing.T) {
	a := regions.NewRegion(square(10))
	b := a.WithPolygon(square(5))
	assert.Equal(t, a.ID, b.ID)
	assert.NotEqual(t, a.Polygon, b.Polygon)
}

func TestFromMultiPolygon_OneRegionPerPolygon(t *testing.T) {
	mp := geomkernel.MultiPolygon{square(10), square(20)}
	rs := regions.FromMultiPolygon(mp)
	assert.Len(t, rs, 2)
	assert.NotEqual(t, rs[0].ID, rs[1].ID)
}

func TestToTaggedPaths_OnePerRing(t *testing.T) {
	r := regions.NewRegion(geomkernel.Polygon{
		Exterior:  square(10).Exterior,
		Interiors: []geomkernel.LineString{square(2).Exterior},
	})
	paths := regions.ToTaggedPaths([]regions.Region{r}, regions.PathTagSolid)
	assert.Len(t, paths, 2)
	for _, p := range paths {
		assert.Equal(t, regions.PathTagSolid, p.Tag)
	}
}

func TestPathTag_String(t *testing.T) {
	assert.Equal(t, "Region", regions.PathTagRegion.String())
	assert.Equal(t, "Sparse", regions.PathTagSparse.String())
	assert.Equal(t, "Unknown", regions.PathTagUnknown.String())
}
