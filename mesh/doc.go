// Package mesh holds the shared 3D data model (spec §3) and implements
// mesh_build (spec §4.2, §4.3): welding coincident free-triangle vertices
// within a scale-aware tolerance and assembling the welded, indexed
// surface into a half-edge mesh whose every interior edge carries a twin.
//
// Cyclic topology (edge → next → … → edge, and edge → twin) is
// represented as integer indices into parallel slices owned by one Mesh
// value, never as pointers — the same representation katalvlaran/lvlath's
// core.Graph uses for its adjacency, generalized here to the fixed
// three-edges-per-triangle shape a half-edge mesh has.
package mesh
