// Package model implements the model_io component of spec §4.1: it
// identifies an STL byte stream as ASCII or binary and parses either form
// into a flat list of free (unindexed) triangles.
//
//	Identify(first six bytes)  — AsciiStl | BinaryStl | Unknown
//	LoadTriangles(r)           — identifies r, then dispatches to the matching parser
//
// The ASCII parser is a line-driven state machine over
// {Top, Solid, Facet, Loop}, matching spec §4.1 exactly. The binary
// parser reads the fixed 80-byte-header + u32-count + N×50-byte-record
// layout from spec §6.
package model
