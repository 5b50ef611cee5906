// Package sliceconfig loads and validates the slicer's YAML configuration
// file (spec §6) and derives the fixed-point quantities §4.5/§4.6 are
// specified in terms of — shell offsets, interior offset, and the two
// infill line spacings — from the plain millimeter values a user writes.
package sliceconfig
