package model

import (
	"fmt"
	"io"

	"github.com/meshforge/slicecore/mesh"
)

// WriteASCII serializes triangles back into the ASCII STL grammar
// ParseASCII accepts, used by the round-trip property test (spec §8.9)
// and available to callers who want to re-export a welded/simplified
// model.
func WriteASCII(w io.Writer, name string, triangles []mesh.FreeTriangle) error {
	if _, err := fmt.Fprintf(w, "solid %s\n", name); err != nil {
		return err
	}
	for _, tri := range triangles {
		if _, err := fmt.Fprintf(w, "  facet normal 0 0 0\n    outer loop\n"); err != nil {
			return err
		}
		for _, v := range tri {
			if _, err := fmt.Fprintf(w, "      vertex %g %g %g\n", v.X(), v.Y(), v.Z()); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "    endloop\n  endfacet\n"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "endsolid %s\n", name)
	return err
}
