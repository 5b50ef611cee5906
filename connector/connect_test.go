package connector

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meshforge/slicecore/geomkernel"
	"github.com/meshforge/slicecore/regions"
)

func TestConnect_DrainsEveryTraversableExactlyOnce(t *testing.T) {
	near := NewClosedRing(square(10), 1, 0)
	far := NewClosedRing(translate(square(10), 1000, 1000), 2, 0)

	out := Connect([]Traversable{near, far}, geomkernel.Point2{X: 0, Y: 0})

	assert.Len(t, out, 2)
	// the ring nearer the origin must be printed first.
	assert.Equal(t, near.TraverseFrom(0), out[0].Path)
}

func TestConnect_EmptyInputReturnsNil(t *testing.T) {
	assert.Nil(t, Connect(nil, geomkernel.Point2{}))
}

func TestBuildTraversables_FlattensRanksAndFill(t *testing.T) {
	shells := regions.LayerShells{
		{
			RegionID: 7,
			Ranks: []geomkernel.MultiLineString{
				{square(10)},
				{square(8)},
			},
		},
	}
	solid := geomkernel.MultiLineString{{{X: 0, Y: 0}, {X: 5, Y: 0}}}
	sparse := geomkernel.MultiLineString{{{X: 0, Y: 0}, {X: 5, Y: 5}}}

	out := BuildTraversables(shells, solid, sparse)
	assert.Len(t, out, 4) // 2 shell rings + 1 solid line + 1 sparse line

	var shellCount, solidCount, sparseCount int
	for _, tr := range out {
		switch tr.Tag() {
		case PathTagShell:
			shellCount++
		case PathTagSolidFill:
			solidCount++
		case PathTagSparseFill:
			sparseCount++
		}
	}
	assert.Equal(t, 2, shellCount)
	assert.Equal(t, 1, solidCount)
	assert.Equal(t, 1, sparseCount)
}

func translate(ring geomkernel.LineString, dx, dy int64) geomkernel.LineString {
	out := make(geomkernel.LineString, len(ring))
	for i, p := range ring {
		out[i] = geomkernel.Point2{X: p.X + dx, Y: p.Y + dy}
	}
	return out
}
