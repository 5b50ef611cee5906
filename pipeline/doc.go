// Package pipeline orchestrates the full per-layer run: slicing, region
// derivation, exposure, infill, and path ordering, fanning the
// independent layer work out across a worker pool sized to available
// cores and reassembling results in layer order once every worker
// completes (spec §5).
package pipeline
