// Package exposure implements the top/bottom exposure and solid/sparse
// partitioning of spec §4.5. Unlike the rest of the region pipeline this
// computation is sequential in layer order — each layer's solid-needs
// window looks at its neighbors — so it runs on the main thread between
// slicing and the per-layer fan-out (spec §5).
package exposure
