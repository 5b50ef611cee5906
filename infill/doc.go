// Package infill implements the rotated linear-fill generator of spec
// §4.6: a stateful generator that, for an increasing sequence of angles,
// produces vertical fill lines over a common bounding rectangle rotated
// into place, caching by the rounded angle so revisited angles (modular
// rotation cycles) are free.
package infill
