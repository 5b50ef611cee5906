// Package slicer implements the plane-sweep slicer (spec §4.4): building
// a FaceRange per face, sweeping a max-active set across ascending layer
// planes, and, for every layer, walking the half-edge mesh face-to-face
// across the plane to emit one or more closed polygon rings.
//
// Slicing itself never parallelizes across layers — that is the
// pipeline package's job — but every LayerPlan it produces is
// independent and safe to hand to separate goroutines, since the
// half-edge mesh and the face-range table are read-only for the
// duration.
package slicer
