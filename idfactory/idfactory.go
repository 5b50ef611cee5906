package idfactory

import "sync/atomic"

// nextRegionID is the process-wide counter backing Next. It is never reset
// mid-run; a fresh counter only exists for the lifetime of one process.
var nextRegionID uint64

// Next returns a fresh region id. Safe for concurrent use from any number
// of goroutines; relaxed ordering is adequate because callers only need
// uniqueness, never a total order over allocation time.
func Next() uint64 {
	return atomic.AddUint64(&nextRegionID, 1) - 1
}
