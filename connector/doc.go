// Package connector orders every printed path on a layer — shell rings
// and fill lines — into a single travel-efficient sequence by repeatedly
// picking the entry point nearest the current nozzle position, backed by
// an R-tree over every candidate entry (spec §4.7). This completes the
// original implementation, which built the R-trees but never drained
// them.
package connector
