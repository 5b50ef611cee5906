package connector

import "github.com/meshforge/slicecore/geomkernel"

// Traversable is one printable path a layer produces — a closed shell
// ring or an open fill segment — exposing the points a nozzle could
// enter it from and the path to print once a particular entry is
// chosen. A closed ring can be entered at any of its vertices; an open
// line can only be entered at one of its two ends (spec §4.7).
type Traversable interface {
	// EntryPoints returns every point this Traversable can be entered
	// from, each tagged with the EntryID TraverseFrom expects back.
	EntryPoints() []geomkernel.Point2
	// TraverseFrom returns the path to print when entered at entryID,
	// starting at that point.
	TraverseFrom(entryID int) geomkernel.LineString
	// RegionID identifies the source region, for path tagging.
	RegionID() uint64
	// Rank distinguishes shell ranks (0 = outermost) from fill, where
	// rank is meaningless and reported as -1.
	Rank() int
	// Tag classifies the path for the writer's color table.
	Tag() PathTag
}

// ClosedRing is a shell ring: every vertex is a valid entry, and
// entering at vertex i rotates the ring to start printing there.
type ClosedRing struct {
	Ring     geomkernel.LineString
	regionID uint64
	rank     int
}

// NewClosedRing wraps ring as a Traversable shell ring belonging to
// regionID at the given shell rank.
func NewClosedRing(ring geomkernel.LineString, regionID uint64, rank int) *ClosedRing {
	return &ClosedRing{Ring: ring, regionID: regionID, rank: rank}
}

func (c *ClosedRing) EntryPoints() []geomkernel.Point2 {
	// A closed ring's last point duplicates its first; only the
	// distinct vertices are valid rotation entries.
	n := len(c.Ring)
	if n == 0 {
		return nil
	}
	if c.Ring.Closed() && n > 1 {
		n--
	}
	pts := make([]geomkernel.Point2, n)
	copy(pts, c.Ring[:n])
	return pts
}

// TraverseFrom rotates the ring so printing starts at vertex entryID,
// re-closing it by repeating the new start point at the end —
// completing the original's "TODO rotate around the entry point".
func (c *ClosedRing) TraverseFrom(entryID int) geomkernel.LineString {
	pts := c.EntryPoints()
	n := len(pts)
	if n == 0 {
		return nil
	}
	out := make(geomkernel.LineString, 0, n+1)
	for i := 0; i < n; i++ {
		out = append(out, pts[(entryID+i)%n])
	}
	out = append(out, pts[entryID%n])
	return out
}

func (c *ClosedRing) RegionID() uint64 { return c.regionID }
func (c *ClosedRing) Rank() int        { return c.rank }
func (c *ClosedRing) Tag() PathTag     { return PathTagShell }

// OpenLine is one open fill segment: only its two ends are valid
// entries, and entering at the far end prints it reversed.
type OpenLine struct {
	Line     geomkernel.LineString
	regionID uint64
	tag      PathTag
}

// NewOpenLine wraps line as a Traversable fill segment, tagged solid or
// sparse. Fill lines don't belong to a single source region, so
// regionID is always 0 (untagged).
func NewOpenLine(line geomkernel.LineString, tag PathTag) *OpenLine {
	return &OpenLine{Line: line, tag: tag}
}

func (o *OpenLine) EntryPoints() []geomkernel.Point2 {
	if len(o.Line) == 0 {
		return nil
	}
	if len(o.Line) == 1 {
		return []geomkernel.Point2{o.Line[0]}
	}
	return []geomkernel.Point2{o.Line.First(), o.Line.Last()}
}

func (o *OpenLine) TraverseFrom(entryID int) geomkernel.LineString {
	if entryID == 0 {
		out := make(geomkernel.LineString, len(o.Line))
		copy(out, o.Line)
		return out
	}
	n := len(o.Line)
	out := make(geomkernel.LineString, n)
	for i, p := range o.Line {
		out[n-1-i] = p
	}
	return out
}

func (o *OpenLine) RegionID() uint64 { return o.regionID }
func (o *OpenLine) Rank() int        { return -1 }
func (o *OpenLine) Tag() PathTag     { return o.tag }

// PathTag classifies a connected path for the writer's color table,
// mirroring regions.PathTag without importing regions (fill paths have
// no backing Region).
type PathTag int

const (
	PathTagShell PathTag = iota
	PathTagSolidFill
	PathTagSparseFill
)
