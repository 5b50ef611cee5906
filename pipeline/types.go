package pipeline

import (
	"github.com/meshforge/slicecore/connector"
	"github.com/meshforge/slicecore/regions"
)

// LayerResult is one layer's finished, writer-ready output: the raw
// region/interior boundaries (kept for visualization, not travel-ordered)
// followed by every printed path — shell rings and fill lines — in the
// nearest-neighbor travel order the connector produced.
type LayerResult struct {
	Z     float64
	Paths []regions.TaggedPath
}

func connectorTagToRegionsTag(t connector.PathTag) regions.PathTag {
	switch t {
	case connector.PathTagShell:
		return regions.PathTagShell
	case connector.PathTagSolidFill:
		return regions.PathTagSolid
	case connector.PathTagSparseFill:
		return regions.PathTagSparse
	default:
		return regions.PathTagUnknown
	}
}
