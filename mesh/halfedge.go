package mesh

import "math"

// NoIndex is the sentinel used for an edge/face/vertex index that is
// unset or denotes a boundary — spec §9's "sentinel values indicate
// boundary or unset" for the u32 link fields.
const NoIndex uint32 = math.MaxUint32

// HalfEdge is one directed edge of a face. Vertex is its origin, Next is
// the following half-edge around the same face, and Twin is the
// half-edge across the shared edge belonging to the adjacent face (or
// NoIndex on a boundary/non-manifold edge that never got wired).
type HalfEdge struct {
	Vertex uint32
	Next   uint32
	Twin   uint32
	Face   uint32
}

// Face references one of its three outgoing half-edges; the other two
// are reached by following Next.
type Face struct {
	Edge uint32
}

// HalfEdgeMesh is vertices, faces, and edges stored as parallel slices
// indexed by integer, never by pointer — the invariant spec §9 calls for
// so the mesh stays a plain value, shareable read-only across every
// slicing goroutine without synchronization.
//
// Invariant (asserted by the slicer, not enforced here): on a closed
// manifold input every edge has exactly one twin. Non-manifold input is
// accepted at build time; §7 defines the downstream slicer error that
// surfaces instead.
type HalfEdgeMesh struct {
	Vertices []Vertex
	Faces    []Face
	Edges    []HalfEdge
}

// NewHalfEdgeMesh builds a half-edge mesh from a unified vertex table and
// a set of indexed triangles (spec §4.3). Each triangle becomes one Face
// and three HalfEdges, Next-linked around the face; Twin links are then
// resolved by matching each directed edge (a,b) against its reverse
// (b,a). An edge with no reverse match (boundary) or more than one
// candidate reverse (non-manifold, over-shared edge) keeps Twin == NoIndex
// or resolves to whichever candidate was registered last — the build
// step never rejects the input; only the slicer's traversal assumption
// can observe the inconsistency (spec §7 SlicerError::NonManifold).
func NewHalfEdgeMesh(vertices []Vertex, triangles []IndexedTriangle) *HalfEdgeMesh {
	m := &HalfEdgeMesh{
		Vertices: vertices,
		Faces:    make([]Face, len(triangles)),
		Edges:    make([]HalfEdge, 0, len(triangles)*3),
	}

	type directedKey struct{ from, to uint32 }
	directed := make(map[directedKey]uint32, len(triangles)*3)

	for fi, tri := range triangles {
		base := uint32(len(m.Edges))
		m.Faces[fi] = Face{Edge: base}
		for k := 0; k < 3; k++ {
			origin := uint32(tri[k])
			next := base + uint32((k+1)%3)
			m.Edges = append(m.Edges, HalfEdge{
				Vertex: origin,
				Next:   next,
				Twin:   NoIndex,
				Face:   uint32(fi),
			})
		}
		for k := 0; k < 3; k++ {
			from := uint32(tri[k])
			to := uint32(tri[(k+1)%3])
			directed[directedKey{from, to}] = base + uint32(k)
		}
	}

	for i := range m.Edges {
		origin := m.Edges[i].Vertex
		dest := m.Edges[m.Edges[i].Next].Vertex
		if twinEdge, ok := directed[directedKey{dest, origin}]; ok {
			m.Edges[i].Twin = twinEdge
		}
	}

	return m
}

// EdgesOfFace returns the three half-edge indices belonging to face fi,
// in Next order starting from the face's stored edge.
func (m *HalfEdgeMesh) EdgesOfFace(fi uint32) [3]uint32 {
	start := m.Faces[fi].Edge
	e1 := m.Edges[start].Next
	e2 := m.Edges[e1].Next
	return [3]uint32{start, e1, e2}
}

// VertexAt returns the 3D position of a half-edge's origin vertex.
func (m *HalfEdgeMesh) VertexAt(edgeIdx uint32) Vertex {
	return m.Vertices[m.Edges[edgeIdx].Vertex]
}
