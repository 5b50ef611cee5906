// Package idfactory hands out the process-wide monotonically increasing
// region identifiers used by the regions package to keep a Region's
// identity stable across offset and boolean operations.
//
// Uniqueness, not ordering, is the only contract: callers must not assume
// IDs are dense, gap-free, or correlated with creation order across
// goroutines beyond "every call returns a value no other call returns".
package idfactory
