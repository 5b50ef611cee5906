package geomkernel

import "testing"

// TestSimplifyLineString_KeepsEndpointsAndDropsCollinear exercises the
// textbook case: a nearly-straight line string should collapse to its
// two endpoints once the middle point's deviation is within tolerance.
func TestSimplifyLineString_KeepsEndpointsAndDropsCollinear(t *testing.T) {
	line := FloatLineString{
		{X: 0, Y: 0},
		{X: 5, Y: 0.01},
		{X: 10, Y: 0},
	}
	got := SimplifyLineString(line, 0.1)
	if len(got) != 2 {
		t.Fatalf("len(got) = %d; want 2", len(got))
	}
	if got[0] != line[0] || got[1] != line[2] {
		t.Errorf("got = %v; want endpoints preserved", got)
	}
}

// TestSimplifyLineString_KeepsSignificantDeviation checks that a point
// far enough from the chord survives simplification.
func TestSimplifyLineString_KeepsSignificantDeviation(t *testing.T) {
	line := FloatLineString{
		{X: 0, Y: 0},
		{X: 5, Y: 10},
		{X: 10, Y: 0},
	}
	got := SimplifyLineString(line, 0.1)
	if len(got) != 3 {
		t.Fatalf("len(got) = %d; want 3 (apex should survive)", len(got))
	}
}

// TestSimplifyLineString_ShortInputUnchanged verifies the early-return
// path for line strings with fewer than three points.
func TestSimplifyLineString_ShortInputUnchanged(t *testing.T) {
	line := FloatLineString{{X: 0, Y: 0}, {X: 1, Y: 1}}
	got := SimplifyLineString(line, 0.1)
	if len(got) != 2 {
		t.Fatalf("len(got) = %d; want 2", len(got))
	}
}

// TestIntegerize_RoundsByResolution checks the round(value/resolution)
// contract from spec §3.
func TestIntegerize_RoundsByResolution(t *testing.T) {
	lines := FloatMultiLineString{
		{{X: 0.014, Y: 0.006}, {X: 1.0, Y: 1.0}},
	}
	got := Integerize(lines, 0.01)
	want := LineString{{X: 1, Y: 1}, {X: 100, Y: 100}}
	if got[0][0] != want[0] || got[0][1] != want[1] {
		t.Errorf("Integerize() = %v; want %v", got[0], want)
	}
}
