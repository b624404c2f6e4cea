package bezier

import "glyphcore.dev/core/geom"

// PointKind distinguishes on-curve anchors from the various kinds of
// off-curve control points that can appear in a point list destined for
// MakeContourFromPoints.
type PointKind uint8

const (
	Anchor PointKind = iota
	QuadraticControl
	CubicControl1
	CubicControl2
)

// Point is one vertex of the point-list representation a Contour is built
// from: either an on-curve anchor or an off-curve control point.
type Point struct {
	Position geom.Point2
	Kind     PointKind
}

// normalizePoints inserts an implicit Anchor at the midpoint of every pair
// of consecutive like-kind control points (two QuadraticControls, or a
// CubicControl2 followed directly by a CubicControl1), so the contour
// walk in MakeContourFromPoints never has to look ahead.
func normalizePoints(points []Point) []Point {
	if len(points) == 0 {
		return nil
	}

	out := make([]Point, 0, len(points)+2)
	for i, p := range points {
		if i > 0 {
			prev := points[i-1]
			if prev.Kind != Anchor && p.Kind != Anchor && sameControlRun(prev.Kind, p.Kind) {
				out = append(out, Point{
					Position: prev.Position.Midpoint(p.Position),
					Kind:     Anchor,
				})
			}
		}
		out = append(out, p)
	}
	return out
}

// sameControlRun reports whether two adjacent non-anchor point kinds
// belong to the same kind of control run and therefore need an implicit
// anchor inserted between them.
func sameControlRun(a, b PointKind) bool {
	if a == QuadraticControl && b == QuadraticControl {
		return true
	}
	if a == CubicControl2 && b == CubicControl1 {
		return true
	}
	return false
}
