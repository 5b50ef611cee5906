package pipeline

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/meshforge/slicecore/connector"
	"github.com/meshforge/slicecore/exposure"
	"github.com/meshforge/slicecore/geomkernel"
	"github.com/meshforge/slicecore/infill"
	"github.com/meshforge/slicecore/mesh"
	"github.com/meshforge/slicecore/regions"
	"github.com/meshforge/slicecore/slicer"
	"github.com/meshforge/slicecore/sliceconfig"
)

// Run slices m and carries every layer through the full region/exposure
// /infill/connector pipeline, returning one LayerResult per layer in
// layer order (spec §5). The independent per-layer work in each phase
// fans out across a worker pool sized to available cores; the first
// worker error aborts the run with no retry.
func Run(ctx context.Context, k *geomkernel.Kernel, m *mesh.HalfEdgeMesh, bounds mesh.Bounds3D, cfg *sliceconfig.Config) ([]LayerResult, error) {
	ranges := slicer.BuildFaceRanges(m)
	zs := slicer.LayerZPositions(bounds, cfg.LayerHeight)
	plans := slicer.ActiveSets(zs, ranges)
	n := len(plans)

	layers := make([]slicer.Layer, n)
	if err := parallelEach(ctx, n, func(i int) error {
		layer, err := slicer.SliceOneLayer(k, m, ranges, plans[i], cfg.SimplifyFactor, cfg.Resolution)
		if err != nil {
			return err
		}
		layers[i] = layer
		return nil
	}); err != nil {
		return nil, err
	}

	outlines := make([]regions.Outlines, n)
	outlinePolys := make([]geomkernel.MultiPolygon, n)
	var xyBounds geomkernel.Rect
	haveBounds := false
	for i, layer := range layers {
		outlines[i] = regions.ComputeOutlines(layer.Polygon)
		outlinePolys[i] = layer.Polygon
		if r, ok := layer.Polygon.BoundingRect(); ok {
			if haveBounds {
				xyBounds = xyBounds.Union(r)
			} else {
				xyBounds = r
				haveBounds = true
			}
		}
	}

	topExposed, err := exposure.TopExposed(k, outlinePolys)
	if err != nil {
		return nil, err
	}
	bottomExposed, err := exposure.BottomExposed(k, outlinePolys)
	if err != nil {
		return nil, err
	}
	solidNeedsUnion, err := exposure.SolidNeedsUnion(k, topExposed, bottomExposed, cfg.NumTopLayers(), cfg.NumBottomLayers())
	if err != nil {
		return nil, err
	}

	// The fill generators' angle cache is shared, mutable state that
	// must advance exactly once per layer in layer order (spec §4.6's
	// design note); this sequential pre-pass is the one part of the
	// per-layer work that cannot be parallelized across layers, but it
	// only does rotation/bookkeeping, not Boolean ops, so it stays cheap.
	solidGen := infill.NewSolidFillGenerator(cfg, xyBounds)
	sparseGen := infill.NewSparseFillGenerator(cfg, xyBounds)
	rawSolidFill := make([]geomkernel.MultiLineString, n)
	rawSparseFill := make([]geomkernel.MultiLineString, n)
	for i := 0; i < n; i++ {
		rawSolidFill[i] = solidGen.Next()
		rawSparseFill[i] = sparseGen.Next()
	}

	results := make([]LayerResult, n)
	if err := parallelEach(ctx, n, func(i int) error {
		result, err := buildLayerResult(k, cfg, layers[i].Z, outlines[i], solidNeedsUnion[i], rawSolidFill[i], rawSparseFill[i])
		if err != nil {
			return err
		}
		results[i] = result
		return nil
	}); err != nil {
		return nil, err
	}

	return results, nil
}

func buildLayerResult(k *geomkernel.Kernel, cfg *sliceconfig.Config, z float64, outlines regions.Outlines, solidNeedsUnion geomkernel.MultiPolygon, rawSolidFill, rawSparseFill geomkernel.MultiLineString) (LayerResult, error) {
	shells, err := regions.ComputeShells(k, outlines, cfg.NumShells, cfg.ShellOffsetDsc)
	if err != nil {
		return LayerResult{}, err
	}
	interior, err := regions.ComputeInterior(k, outlines, cfg.InteriorOffsetDsc())
	if err != nil {
		return LayerResult{}, err
	}
	solid, sparse, err := exposure.SolidAndSparse(k, interior, solidNeedsUnion)
	if err != nil {
		return LayerResult{}, err
	}

	solidRegion := make(geomkernel.MultiPolygon, len(solid))
	for i, r := range solid {
		solidRegion[i] = r.Polygon
	}
	sparseRegion := make(geomkernel.MultiPolygon, len(sparse))
	for i, r := range sparse {
		sparseRegion[i] = r.Polygon
	}

	clippedSolidFill, err := k.IntersectOpen(solidRegion, rawSolidFill)
	if err != nil {
		return LayerResult{}, err
	}
	clippedSparseFill, err := k.IntersectOpen(sparseRegion, rawSparseFill)
	if err != nil {
		return LayerResult{}, err
	}

	traversables := connector.BuildTraversables(shells, clippedSolidFill, clippedSparseFill)
	connected := connector.Connect(traversables, geomkernel.Point2{})

	paths := regions.ToTaggedPaths(outlines, regions.PathTagRegion)
	paths = append(paths, regions.ToTaggedPaths(interior, regions.PathTagInterior)...)
	for _, c := range connected {
		paths = append(paths, regions.TaggedPath{Tag: connectorTagToRegionsTag(c.Tag), Path: c.Path})
	}

	return LayerResult{Z: z, Paths: paths}, nil
}

// parallelEach runs fn(i) for every i in [0,n) across a worker pool
// sized to available cores, returning the first error encountered
// (spec §5's worker-scoped fail-fast; no retries).
func parallelEach(ctx context.Context, n int, fn func(i int) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			return fn(i)
		})
	}
	return g.Wait()
}
