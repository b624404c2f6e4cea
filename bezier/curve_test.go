package bezier

import (
	"testing"

	"glyphcore.dev/core/geom"
)

func TestSplitContinuity(t *testing.T) {
	c := NewCubic(
		geom.Point2{X: 0, Y: 0},
		geom.Point2{X: 3, Y: 8},
		geom.Point2{X: 7, Y: 8},
		geom.Point2{X: 10, Y: 0},
	)

	a, b := c.Split(0.37)

	if a.P1 != c.P1 {
		t.Errorf("first half starts at %v, want %v", a.P1, c.P1)
	}
	if b.P2 != c.P2 {
		t.Errorf("second half ends at %v, want %v", b.P2, c.P2)
	}
	if a.P2 != b.P1 {
		t.Errorf("split halves don't meet: %v != %v", a.P2, b.P1)
	}

	want := c.PointAt(0.37)
	if !almostEqual(a.P2.X, want.X) || !almostEqual(a.P2.Y, want.Y) {
		t.Errorf("split point %v != curve(0.37) %v", a.P2, want)
	}
}

func TestSubdivideUntilFlatTerminates(t *testing.T) {
	c := NewCubic(
		geom.Point2{X: 0, Y: 0},
		geom.Point2{X: 0, Y: 50},
		geom.Point2{X: 10, Y: 50},
		geom.Point2{X: 10, Y: 0},
	)

	pieces := c.SubdivideUntilFlat(0.01)
	if len(pieces) < 2 {
		t.Fatalf("expected multiple pieces for a sharply curved segment, got %d", len(pieces))
	}
	for _, p := range pieces {
		if p.Flatness() < 0.99 {
			t.Errorf("piece flatness %v below tolerance", p.Flatness())
		}
	}

	if pieces[0].P1 != c.P1 {
		t.Errorf("first piece starts at %v, want %v", pieces[0].P1, c.P1)
	}
	if pieces[len(pieces)-1].P2 != c.P2 {
		t.Errorf("last piece ends at %v, want %v", pieces[len(pieces)-1].P2, c.P2)
	}
}

func TestReverse(t *testing.T) {
	c := NewQuadratic(geom.Point2{X: 0, Y: 0}, geom.Point2{X: 5, Y: 5}, geom.Point2{X: 10, Y: 0})
	r := c.Reverse()
	if r.P1 != c.P2 || r.P2 != c.P1 || r.C1 != c.C1 {
		t.Errorf("Reverse() = %+v, want endpoints swapped and control unchanged", r)
	}
	if rr := r.Reverse(); rr != c {
		t.Errorf("double Reverse() = %+v, want original %+v", rr, c)
	}
}

func TestFindTForNormalThroughPointCubicPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for cubic FindTForNormalThroughPoint")
		}
	}()
	c := NewCubic(geom.Point2{}, geom.Point2{X: 1}, geom.Point2{X: 2}, geom.Point2{X: 3})
	c.FindTForNormalThroughPoint(geom.Point2{X: 1, Y: 1})
}

func TestSDFDistanceToLineSegment(t *testing.T) {
	c := NewLinear(geom.Point2{X: 0, Y: 0}, geom.Point2{X: 10, Y: 0})

	above := c.SDFDistance(geom.Point2{X: 5, Y: 3})
	if !almostEqual(above.Distance(), 3) {
		t.Errorf("distance to point above segment = %v, want 3", above.Distance())
	}

	below := c.SDFDistance(geom.Point2{X: 5, Y: -3})
	if above.Orthogonality() == below.Orthogonality() {
		t.Error("points on opposite sides of the segment should have different-signed orthogonality")
	}
}

func TestSDFDistanceLessTiesOnOrthogonality(t *testing.T) {
	c1 := NewLinear(geom.Point2{X: 0, Y: 0}, geom.Point2{X: 10, Y: 0})
	c2 := NewLinear(geom.Point2{X: 0, Y: 0.001}, geom.Point2{X: 10, Y: 0.001})

	r1 := c1.SDFDistance(geom.Point2{X: 5, Y: 2})
	r2 := c2.SDFDistance(geom.Point2{X: 5, Y: 2})

	// Near-identical square distances: result should be decided by which
	// has the larger absolute orthogonality, not an arbitrary ordering.
	less12 := r1.Less(r2)
	less21 := r2.Less(r1)
	if less12 && less21 {
		t.Error("Less() should not be true in both directions")
	}
}

func TestChannelMaskPredicates(t *testing.T) {
	cases := []struct {
		m                   ChannelMask
		red, green, blue bool
	}{
		{Yellow, true, true, false},
		{Magenta, true, false, true},
		{Cyan, false, true, true},
		{White, true, true, true},
	}
	for _, tc := range cases {
		if got := tc.m.HasRed(); got != tc.red {
			t.Errorf("%v.HasRed() = %v, want %v", tc.m, got, tc.red)
		}
		if got := tc.m.HasGreen(); got != tc.green {
			t.Errorf("%v.HasGreen() = %v, want %v", tc.m, got, tc.green)
		}
		if got := tc.m.HasBlue(); got != tc.blue {
			t.Errorf("%v.HasBlue() = %v, want %v", tc.m, got, tc.blue)
		}
	}
}
