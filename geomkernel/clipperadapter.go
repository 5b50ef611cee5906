package geomkernel

import clipper "github.com/go-clipper/clipper2"

// toPaths64 converts every ring of a MultiLineString into the backend's
// Path64 representation. Fixed-point coordinates already match the
// backend's int64 Point64, so this is a pure reshape, no rescaling.
func toPaths64(lines []LineString) clipper.Paths64 {
	paths := make(clipper.Paths64, len(lines))
	for i, line := range lines {
		path := make(clipper.Path64, len(line))
		for j, p := range line {
			path[j] = clipper.Point64{X: p.X, Y: p.Y}
		}
		paths[i] = path
	}
	return paths
}

// pathsToLineStrings converts the backend's Paths64 back into our
// ring representation.
func pathsToLineStrings(paths clipper.Paths64) MultiLineString {
	out := make(MultiLineString, len(paths))
	for i, path := range paths {
		line := make(LineString, len(path))
		for j, pt := range path {
			line[j] = Point2{X: pt.X, Y: pt.Y}
		}
		out[i] = line
	}
	return out
}

// treeToMultiPolygon walks a PolyTree64 produced by a union/collate
// operation. Even-depth nodes (the tree's direct children, and their
// children's children, ...) are exteriors; each exterior's immediate
// children are its holes — this is exactly how Clipper2's nesting tree
// represents a valid MultiPolygon.
func treeToMultiPolygon(tree *clipper.PolyTree64) MultiPolygon {
	var out MultiPolygon
	for i := 0; i < tree.Count(); i++ {
		out = append(out, exteriorFromNode(tree.Child(i))...)
	}
	return out
}

func exteriorFromNode(node *clipper.PolyTree64) []Polygon {
	poly := Polygon{Exterior: path64ToLineString(node.Polygon())}
	out := []Polygon{poly}
	for i := 0; i < node.Count(); i++ {
		hole := node.Child(i)
		poly.Interiors = append(poly.Interiors, path64ToLineString(hole.Polygon()))
		// A hole's own children are further exteriors (islands nested
		// inside the hole); collect them as independent polygons.
		for j := 0; j < hole.Count(); j++ {
			out = append(out, exteriorFromNode(hole.Child(j))...)
		}
	}
	out[0] = poly
	return out
}

func path64ToLineString(path clipper.Path64) LineString {
	line := make(LineString, len(path), len(path)+1)
	for i, pt := range path {
		line[i] = Point2{X: pt.X, Y: pt.Y}
	}
	// Clipper2 paths are implicitly closed (no repeated last point); the
	// rest of this codebase represents rings with First()==Last(), so
	// close the ring explicitly.
	if len(line) > 0 && line[0] != line[len(line)-1] {
		line = append(line, line[0])
	}
	return line
}
