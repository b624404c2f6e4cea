package path

import (
	"testing"

	"glyphcore.dev/core/geom"
)

func TestAddRectangleSharpCorners(t *testing.T) {
	var p Path
	r := geom.MakeAarectFromPoints(geom.Point2{X: 0, Y: 0}, geom.Point2{X: 10, Y: 10})
	p.AddRectangle(r, CornerRadii{})

	if p.ContourCount() != 1 {
		t.Fatalf("ContourCount() = %d, want 1", p.ContourCount())
	}
	bbox := p.BoundingBox()
	if bbox != r {
		t.Errorf("BoundingBox() = %v, want %v", bbox, r)
	}
}

func TestAddRectangleRoundedCorners(t *testing.T) {
	var p Path
	r := geom.MakeAarectFromPoints(geom.Point2{X: 0, Y: 0}, geom.Point2{X: 20, Y: 20})
	p.AddRectangle(r, CornerRadii{LeftBottom: 4, RightBottom: 4, LeftTop: 4, RightTop: 4})

	if p.ContourCount() != 1 {
		t.Fatalf("ContourCount() = %d, want 1", p.ContourCount())
	}
	// Rounded corners pull points in from the rectangle's corners; the
	// bounding box should still match the original rectangle closely.
	bbox := p.BoundingBox()
	if bbox.Extent.X < r.Extent.X*0.9 || bbox.Extent.Y < r.Extent.Y*0.9 {
		t.Errorf("BoundingBox() = %v, too small relative to %v", bbox, r)
	}
}

func TestAddRectangleNegativeBottomRightClosesAtOwnCorner(t *testing.T) {
	var p Path
	r := geom.MakeAarectFromPoints(geom.Point2{X: 0, Y: 0}, geom.Point2{X: 20, Y: 20})
	p.AddRectangle(r, CornerRadii{RightBottom: -5})

	// The bevel at the bottom-right corner should end near (20, 5), the
	// point actually being cut, not drift toward the bottom-left corner.
	pts := p.PointsOfContour(0)
	found := false
	for _, pt := range pts {
		if almostEqualPt(pt.Position, geom.Point2{X: 20, Y: 5}, 0.01) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a point near (20, 5) cutting the bottom-right corner, got %v", pts)
	}
}

func TestAddCircleBoundingBox(t *testing.T) {
	var p Path
	p.AddCircle(geom.Point2{X: 10, Y: 10}, 5)

	if p.ContourCount() != 1 {
		t.Fatalf("ContourCount() = %d, want 1", p.ContourCount())
	}
	bbox := p.BoundingBox()
	want := geom.MakeAarectFromPoints(geom.Point2{X: 5, Y: 5}, geom.Point2{X: 15, Y: 15})
	if !almostEqualPt(bbox.Min, want.Min, 0.5) {
		t.Errorf("BoundingBox().Min = %v, want close to %v", bbox.Min, want.Min)
	}
}

func TestCenterScalePreservesAspectRatio(t *testing.T) {
	var p Path
	p.MoveTo(geom.Point2{X: 0, Y: 0})
	p.LineTo(geom.Point2{X: 100, Y: 0})
	p.LineTo(geom.Point2{X: 100, Y: 50})
	p.LineTo(geom.Point2{X: 0, Y: 50})
	p.CloseContour()

	scaled := p.CenterScale(geom.Vector2{X: 200, Y: 200}, 10)
	bbox := scaled.BoundingBox()

	origAspect := 100.0 / 50.0
	newAspect := float64(bbox.Extent.X / bbox.Extent.Y)
	if diff := newAspect - origAspect; diff > 0.01 || diff < -0.01 {
		t.Errorf("aspect ratio changed: got %v, want %v", newAspect, origAspect)
	}
	if bbox.Extent.X > 180 || bbox.Extent.Y > 180 {
		t.Errorf("scaled bounding box %v exceeds available space", bbox)
	}
}

func TestCenterScaleEmptyPath(t *testing.T) {
	var p Path
	scaled := p.CenterScale(geom.Vector2{X: 100, Y: 100}, 5)
	if len(scaled.Points) != 0 {
		t.Errorf("CenterScale() of empty path should return empty path, got %d points", len(scaled.Points))
	}
}
