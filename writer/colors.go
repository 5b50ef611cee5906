package writer

import "github.com/meshforge/slicecore/regions"

// tagColor is the fixed tag→color table spec §6 and the original
// debug_html.rs both specify: Region→black, Shell→red, Interior→yellow,
// Solid→green, Sparse→blue, Unknown→grey.
var tagColor = map[regions.PathTag]string{
	regions.PathTagRegion:   "black",
	regions.PathTagShell:    "red",
	regions.PathTagInterior: "yellow",
	regions.PathTagSolid:    "green",
	regions.PathTagSparse:   "blue",
	regions.PathTagUnknown:  "grey",
}

func colorFor(tag regions.PathTag) string {
	if c, ok := tagColor[tag]; ok {
		return c
	}
	return tagColor[regions.PathTagUnknown]
}
