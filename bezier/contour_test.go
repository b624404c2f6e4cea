package bezier

import (
	"testing"

	"glyphcore.dev/core/geom"
)

func square() Contour {
	pts := []Point{
		{Position: geom.Point2{X: 0, Y: 0}, Kind: Anchor},
		{Position: geom.Point2{X: 10, Y: 0}, Kind: Anchor},
		{Position: geom.Point2{X: 10, Y: 10}, Kind: Anchor},
		{Position: geom.Point2{X: 0, Y: 10}, Kind: Anchor},
	}
	return MakeContourFromPoints(pts)
}

func TestMakeContourFromPointsSquare(t *testing.T) {
	c := square()
	if len(c) != 3 {
		// Three edges are emitted from four anchors in an open walk; the
		// wraparound closing edge is added by callers (path.BeziersOfContour
		// appends a closing anchor), not by MakeContourFromPoints itself.
		t.Fatalf("len(contour) = %d, want 3", len(c))
	}
	for _, curve := range c {
		if curve.Kind != Linear {
			t.Errorf("curve kind = %v, want Linear", curve.Kind)
		}
	}
}

func TestMakeContourFromPointsAlternatesColor(t *testing.T) {
	c := square()
	if c[0].Channel != Yellow {
		t.Errorf("first curve channel = %v, want Yellow", c[0].Channel)
	}
	if c[0].Channel == c[1].Channel {
		t.Errorf("consecutive curves should alternate channel, both are %v", c[0].Channel)
	}
}

func TestMakeContourFromPointsSingleCurveIsWhite(t *testing.T) {
	pts := []Point{
		{Position: geom.Point2{X: 0, Y: 0}, Kind: Anchor},
		{Position: geom.Point2{X: 10, Y: 0}, Kind: Anchor},
	}
	c := MakeContourFromPoints(pts)
	if len(c) != 1 {
		t.Fatalf("len(contour) = %d, want 1", len(c))
	}
	if c[0].Channel != White {
		t.Errorf("teardrop curve channel = %v, want White", c[0].Channel)
	}
}

func TestMakeContourFromPointsQuadratic(t *testing.T) {
	pts := []Point{
		{Position: geom.Point2{X: 0, Y: 0}, Kind: Anchor},
		{Position: geom.Point2{X: 5, Y: 10}, Kind: QuadraticControl},
		{Position: geom.Point2{X: 10, Y: 0}, Kind: Anchor},
	}
	c := MakeContourFromPoints(pts)
	if len(c) != 1 || c[0].Kind != Quadratic {
		t.Fatalf("MakeContourFromPoints() = %+v, want single quadratic curve", c)
	}
	if c[0].C1 != (geom.Point2{X: 5, Y: 10}) {
		t.Errorf("control point = %v, want {5 10}", c[0].C1)
	}
}

func TestMakeContourFromPointsImplicitAnchor(t *testing.T) {
	// Two consecutive QuadraticControls should get an implicit anchor
	// inserted at their midpoint.
	pts := []Point{
		{Position: geom.Point2{X: 0, Y: 0}, Kind: Anchor},
		{Position: geom.Point2{X: 5, Y: 10}, Kind: QuadraticControl},
		{Position: geom.Point2{X: 15, Y: 10}, Kind: QuadraticControl},
		{Position: geom.Point2{X: 20, Y: 0}, Kind: Anchor},
	}
	c := MakeContourFromPoints(pts)
	if len(c) != 2 {
		t.Fatalf("len(contour) = %d, want 2 (implicit anchor splits the run)", len(c))
	}
	wantMid := geom.Point2{X: 10, Y: 10}
	if c[0].P2 != wantMid || c[1].P1 != wantMid {
		t.Errorf("implicit anchor at %v/%v, want %v", c[0].P2, c[1].P1, wantMid)
	}
}

func TestInverseContour(t *testing.T) {
	c := square()
	inv := InverseContour(c)

	if len(inv) != len(c) {
		t.Fatalf("len(inverse) = %d, want %d", len(inv), len(c))
	}
	if inv[0].P1 != c[len(c)-1].P2 {
		t.Errorf("inverse should start where the original ended")
	}
	for i, curve := range inv {
		orig := c[len(c)-1-i]
		if curve.P1 != orig.P2 || curve.P2 != orig.P1 {
			t.Errorf("inverse[%d] endpoints = %v->%v, want reversed %v->%v", i, curve.P1, curve.P2, orig.P2, orig.P1)
		}
	}
}

func TestParallelContourOffsetsOutward(t *testing.T) {
	c := square()
	offset := ParallelContour(c, 1, JoinMiter, 0.01)

	if len(offset) == 0 {
		t.Fatal("ParallelContour() returned no curves")
	}
	for _, curve := range offset {
		if curve.Kind != Linear {
			t.Errorf("offset contour segment kind = %v, want Linear", curve.Kind)
		}
	}
	// The square runs counter-clockwise, so a positive (starboard) offset
	// moves its bottom edge below y=0, outside the square.
	if offset[0].P1.Y >= 0 || offset[0].P2.Y >= 0 {
		t.Errorf("offset of bottom edge = %v->%v, want below y=0", offset[0].P1, offset[0].P2)
	}
	// Loop closes: last segment's end should meet the first segment's start.
	if offset[len(offset)-1].P2 != offset[0].P1 {
		t.Errorf("parallel contour doesn't close: %v != %v", offset[len(offset)-1].P2, offset[0].P1)
	}
}
