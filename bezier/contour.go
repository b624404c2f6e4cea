package bezier

import "glyphcore.dev/core/geom"

// Contour is an ordered, closed sequence of curves.
type Contour []Curve

// MakeContourFromPoints builds a contour from a sequence of anchor/control
// points, alternating edge colors Yellow/Cyan/Magenta for multi-channel
// SDF rendering as each curve is emitted. A contour of exactly one curve
// (a "teardrop") is recolored White, since there is no second edge for its
// channel mask to distinguish against.
//
// A contour of exactly two curves is colored Yellow then Cyan, so both of
// its edges share the green channel; this follows the alternation rule
// and is not corrected here.
func MakeContourFromPoints(points []Point) Contour {
	normalized := normalizePoints(points)

	var out Contour

	type pending struct {
		kind    Kind
		p1      geom.Point2
		c1, c2  geom.Point2
		started bool
	}
	var cur pending
	color := Yellow

	nextColor := func() ChannelMask {
		c := color
		if color == Cyan {
			color = Magenta
		} else {
			color = Cyan
		}
		return c
	}

	for _, pt := range normalized {
		switch pt.Kind {
		case Anchor:
			if !cur.started {
				cur = pending{p1: pt.Position, kind: Linear, started: true}
				continue
			}
			switch cur.kind {
			case Linear:
				out = append(out, Curve{Kind: Linear, Channel: nextColor(), P1: cur.p1, P2: pt.Position})
			case Quadratic:
				out = append(out, Curve{Kind: Quadratic, Channel: nextColor(), P1: cur.p1, C1: cur.c1, P2: pt.Position})
			case Cubic:
				out = append(out, Curve{Kind: Cubic, Channel: nextColor(), P1: cur.p1, C1: cur.c1, C2: cur.c2, P2: pt.Position})
			}
			cur = pending{p1: pt.Position, kind: Linear, started: true}
		case QuadraticControl:
			cur.c1 = pt.Position
			cur.kind = Quadratic
		case CubicControl1:
			cur.c1 = pt.Position
			cur.kind = Cubic
		case CubicControl2:
			cur.c2 = pt.Position
		}
	}

	if len(out) == 1 {
		out[0].Channel = White
	}

	return out
}

// InverseContour reverses the order of curves and the direction of each
// curve, turning the contour inside out. Used to invert the inner offset
// contour of a stroke.
func InverseContour(c Contour) Contour {
	out := make(Contour, len(c))
	for i, curve := range c {
		out[len(c)-1-i] = curve.Reverse()
	}
	return out
}

// JoinStyle controls how gaps between consecutive offset segments are
// closed when building a ParallelContour.
type JoinStyle uint8

const (
	JoinBevel JoinStyle = iota
	JoinMiter
	JoinRound
)

// ParallelContour builds a new contour made of line segments offset from
// the input contour by offset (positive = starboard), flattening curved
// segments first. Gaps and overlaps between consecutive offset segments
// are repaired by exact match, true intersection, miter-extrapolated
// intersection (when join is JoinMiter), or a bridging segment as a last
// resort; the same repair closes the loop between the last and first
// segments.
func ParallelContour(c Contour, offset float32, join JoinStyle, tolerance float32) Contour {
	var flat Contour
	for _, curve := range c {
		for _, piece := range curve.SubdivideUntilFlat(tolerance) {
			flat = append(flat, piece.ToParallelLine(offset))
		}
	}

	var out Contour
	for _, curve := range flat {
		if len(out) == 0 {
			out = append(out, curve)
			continue
		}
		last := &out[len(out)-1]
		if last.P2 == curve.P1 {
			out = append(out, curve)
			continue
		}
		if p, ok := intersection(last.P1, last.P2, curve.P1, curve.P2); ok {
			last.P2 = p
			out = append(out, curve)
			out[len(out)-1].P1 = p
			continue
		}
		if join == JoinMiter {
			if p, ok := extrapolatedIntersection(last.P1, last.P2, curve.P1, curve.P2); ok {
				last.P2 = p
				out = append(out, curve)
				out[len(out)-1].P1 = p
				continue
			}
		}
		out = append(out, NewLinear(last.P2, curve.P1))
		out = append(out, curve)
	}

	if len(out) > 0 && out[len(out)-1].P2 != out[0].P1 {
		last := &out[len(out)-1]
		first := &out[0]
		if p, ok := intersection(last.P1, last.P2, first.P1, first.P2); ok {
			last.P2 = p
			first.P1 = p
		} else if p, ok := extrapolatedIntersection(last.P1, last.P2, first.P1, first.P2); ok && join == JoinMiter {
			last.P2 = p
			first.P1 = p
		} else {
			out = append(out, NewLinear(last.P2, first.P1))
		}
	}

	return out
}

// intersection returns the point where segment a0-a1 truly crosses
// segment b0-b1, within both segments' extent.
func intersection(a0, a1, b0, b1 geom.Point2) (geom.Point2, bool) {
	p, tA, tB, ok := lineIntersectionParams(a0, a1, b0, b1)
	if !ok || tA < 0 || tA > 1 || tB < 0 || tB > 1 {
		return geom.Point2{}, false
	}
	return p, true
}

// extrapolatedIntersection returns the point where the infinite lines
// through a0-a1 and b0-b1 cross, even if that point lies beyond either
// segment's endpoints (used for miter joins).
func extrapolatedIntersection(a0, a1, b0, b1 geom.Point2) (geom.Point2, bool) {
	p, _, _, ok := lineIntersectionParams(a0, a1, b0, b1)
	return p, ok
}

func lineIntersectionParams(a0, a1, b0, b1 geom.Point2) (geom.Point2, float32, float32, bool) {
	r := a1.Sub(a0)
	s := b1.Sub(b0)
	denom := r.Cross(s)
	if denom == 0 {
		return geom.Point2{}, 0, 0, false
	}
	qp := b0.Sub(a0)
	t := qp.Cross(s) / denom
	u := qp.Cross(r) / denom
	return a0.Add(r.Scale(t)), t, u, true
}
