// Package bezier implements linear, quadratic and cubic Bezier curves,
// the primitives to evaluate and split them, and the contour operations
// (construction, inversion, parallel offset) used to describe filled
// shapes.
package bezier

import (
	"github.com/chewxy/math32"

	"glyphcore.dev/core/geom"
)

// lerp returns the point a fraction t of the way from a to b, extrapolating
// for t outside [0, 1].
func lerp(a, b geom.Point2, t float32) geom.Point2 {
	return geom.Point2{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// PointAtLinear evaluates a degree-1 Bezier curve at t.
func PointAtLinear(p1, p2 geom.Point2, t float32) geom.Point2 {
	return lerp(p1, p2, t)
}

// PointAtQuadratic evaluates a degree-2 Bezier curve at t via De Casteljau.
func PointAtQuadratic(p1, c1, p2 geom.Point2, t float32) geom.Point2 {
	a := lerp(p1, c1, t)
	b := lerp(c1, p2, t)
	return lerp(a, b, t)
}

// PointAtCubic evaluates a degree-3 Bezier curve at t via De Casteljau.
func PointAtCubic(p1, c1, c2, p2 geom.Point2, t float32) geom.Point2 {
	a := lerp(p1, c1, t)
	b := lerp(c1, c2, t)
	c := lerp(c2, p2, t)
	ab := lerp(a, b, t)
	bc := lerp(b, c, t)
	return lerp(ab, bc, t)
}

// TangentAtLinear returns the (constant) tangent of a degree-1 curve.
func TangentAtLinear(p1, p2 geom.Point2, t float32) geom.Vector2 {
	return p2.Sub(p1)
}

// TangentAtQuadratic returns the tangent of a degree-2 curve at t.
func TangentAtQuadratic(p1, c1, p2 geom.Point2, t float32) geom.Vector2 {
	a := c1.Sub(p1).Scale(2)
	b := p2.Sub(c1).Scale(2)
	return geom.Vector2{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// TangentAtCubic returns the tangent of a degree-3 curve at t.
func TangentAtCubic(p1, c1, c2, p2 geom.Point2, t float32) geom.Vector2 {
	a := c1.Sub(p1).Scale(3)
	b := c2.Sub(c1).Scale(3)
	c := p2.Sub(c2).Scale(3)

	ab := geom.Vector2{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
	bc := geom.Vector2{X: b.X + (c.X-b.X)*t, Y: b.Y + (c.Y-b.Y)*t}

	return geom.Vector2{X: ab.X + (bc.X-ab.X)*t, Y: ab.Y + (bc.Y-ab.Y)*t}
}

// appendInRange01 appends t to roots if t lies in [0, 1] inclusive.
func appendInRange01(roots []float32, t float32) []float32 {
	if t >= 0 && t <= 1 {
		return append(roots, t)
	}
	return roots
}

// FindXGivenYLinear returns the x-root(s) of a linear segment crossing the
// horizontal line y, with t restricted to [0, 1].
func FindXGivenYLinear(p1, p2 geom.Point2, y float32) []float32 {
	dy := p2.Y - p1.Y
	if dy == 0 {
		return nil
	}
	t := (y - p1.Y) / dy
	var roots []float32
	roots = appendInRange01(roots, t)
	if len(roots) == 0 {
		return nil
	}
	return []float32{PointAtLinear(p1, p2, t).X}
}

// quadraticRoots solves a*t^2 + b*t + c = 0 for real roots.
func quadraticRoots(a, b, c float32) []float32 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float32{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math32.Sqrt(disc)
	return []float32{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

// FindXGivenYQuadratic returns the x-root(s) of a quadratic curve crossing
// the horizontal line y, t restricted to [0, 1] inclusive.
func FindXGivenYQuadratic(p1, c1, p2 geom.Point2, y float32) []float32 {
	a := p1.Y - 2*c1.Y + p2.Y
	b := 2 * (c1.Y - p1.Y)
	c := p1.Y - y

	var out []float32
	for _, t := range quadraticRoots(a, b, c) {
		if t >= 0 && t <= 1 {
			out = append(out, PointAtQuadratic(p1, c1, p2, t).X)
		}
	}
	return out
}

// cubicRoots solves a*t^3 + b*t^2 + c*t + d = 0 for real roots using
// Cardano's method, handling the degenerate (lower-degree) cases. Roots
// are not restricted to [0, 1]; callers filter or clamp them.
func cubicRoots(a, b, c, d float32) []float32 {
	if a == 0 {
		return quadraticRoots(b, c, d)
	}

	// Normalize to t^3 + pt^2 + qt + r = 0.
	p := b / a
	q := c / a
	r := d / a

	// Depress: t = x - p/3.
	shift := p / 3
	pp := q - p*p/3
	qq := 2*p*p*p/27 - p*q/3 + r

	var xs []float32
	const third = 1.0 / 3.0

	if pp == 0 {
		xs = []float32{cbrt(-qq)}
	} else {
		discriminant := qq*qq/4 + pp*pp*pp/27
		switch {
		case discriminant > 0:
			sq := math32.Sqrt(discriminant)
			u := cbrt(-qq/2 + sq)
			v := cbrt(-qq/2 - sq)
			xs = []float32{u + v}
		case discriminant == 0:
			u := cbrt(-qq / 2)
			xs = []float32{2 * u, -u}
		default:
			theta := math32.Acos(clampUnit(-qq / 2 / math32.Sqrt(-pp*pp*pp/27)))
			m := 2 * math32.Sqrt(-pp/3)
			xs = []float32{
				m * math32.Cos(theta*third),
				m * math32.Cos(theta*third+2*math32.Pi*third),
				m * math32.Cos(theta*third+4*math32.Pi*third),
			}
		}
	}

	out := make([]float32, len(xs))
	for i, x := range xs {
		out[i] = x - shift
	}
	return out
}

func cbrt(x float32) float32 {
	if x < 0 {
		return -math32.Pow(-x, 1.0/3.0)
	}
	return math32.Pow(x, 1.0/3.0)
}

func clampUnit(x float32) float32 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// FindXGivenYCubic returns the x-root(s) of a cubic curve crossing the
// horizontal line y, t restricted to [0, 1] inclusive.
func FindXGivenYCubic(p1, c1, c2, p2 geom.Point2, y float32) []float32 {
	a := -p1.Y + 3*c1.Y - 3*c2.Y + p2.Y
	b := 3*p1.Y - 6*c1.Y + 3*c2.Y
	c := -3*p1.Y + 3*c1.Y
	d := p1.Y - y

	var out []float32
	for _, t := range cubicRoots(a, b, c, d) {
		if t >= 0 && t <= 1 {
			out = append(out, PointAtCubic(p1, c1, c2, p2, t).X)
		}
	}
	return out
}

// FindTForNormalThroughPointLinear finds t such that the line from
// curve(t) to p is perpendicular to the curve's (constant) tangent.
func FindTForNormalThroughPointLinear(p1, p2, p geom.Point2) []float32 {
	tangent := p2.Sub(p1)
	lenSq := tangent.Dot(tangent)
	if lenSq == 0 {
		return nil
	}
	t := p.Sub(p1).Dot(tangent) / lenSq
	return []float32{t}
}

// FindTForNormalThroughPointQuadratic finds t-values such that the line
// from curve(t) to p is perpendicular to the tangent at t.
func FindTForNormalThroughPointQuadratic(p1, c1, p2, p geom.Point2) []float32 {
	// f(t) = dot(curve(t) - p, tangent(t)) = 0, a cubic in t.
	a2 := p1.Y - 2*c1.Y + p2.Y
	b2 := 2 * (c1.Y - p1.Y)
	cx2 := p1.X - 2*c1.X + p2.X
	bx2 := 2 * (c1.X - p1.X)

	// curve(t) - p, componentwise as quadratics: X(t) = cx2*t^2 + bx2*t + p1.X - p.X
	// tangent(t) = 2*(cx2*t + bx2/2), 2*(a2*t + b2/2)  -> derivative of the quadratic.
	// Build dot(curve(t)-p, tangent(t)) as a cubic in t by direct coefficient expansion.
	px := p1.X - p.X
	py := p1.Y - p.Y

	// X(t) = cx2 t^2 + bx2 t + px ; X'(t) = 2 cx2 t + bx2
	// Y(t) = a2 t^2 + b2 t + py ; Y'(t) = 2 a2 t + b2
	// f(t) = X(t)X'(t) + Y(t)Y'(t)
	// X(t)X'(t) = 2cx2^2 t^3 + 3cx2 bx2 t^2 + (bx2^2 + 2cx2 px) t + bx2 px
	fx3 := 2 * cx2 * cx2
	fx2 := 3 * cx2 * bx2
	fx1 := bx2*bx2 + 2*cx2*px
	fx0 := bx2 * px

	fy3 := 2 * a2 * a2
	fy2 := 3 * a2 * b2
	fy1 := b2*b2 + 2*a2*py
	fy0 := b2 * py

	a := fx3 + fy3
	b := fx2 + fy2
	c := fx1 + fy1
	d := fx0 + fy0

	return cubicRoots(a, b, c, d)
}

// Flatness returns a measure of how close a curve is to a straight line:
// 1.0 for a perfectly straight segment, approaching 0 as control points
// deviate further from the chord P1-P2 relative to the chord's length.
func FlatnessLinear(p1, p2 geom.Point2) float32 {
	return 1.0
}

// FlatnessQuadratic measures the flatness of a quadratic curve.
func FlatnessQuadratic(p1, c1, p2 geom.Point2) float32 {
	return flatnessFromDeviation(p1, p2, []geom.Point2{c1})
}

// FlatnessCubic measures the flatness of a cubic curve.
func FlatnessCubic(p1, c1, c2, p2 geom.Point2) float32 {
	return flatnessFromDeviation(p1, p2, []geom.Point2{c1, c2})
}

// flatnessFromDeviation computes 1 - (max perpendicular deviation of the
// control points from the chord) / (chord length), clamped to (0, 1].
func flatnessFromDeviation(p1, p2 geom.Point2, controls []geom.Point2) float32 {
	chord := p2.Sub(p1)
	chordLen := chord.Length()
	if chordLen == 0 {
		return 1.0
	}
	dir := chord.Normalize()

	var maxDev float32
	for _, c := range controls {
		v := c.Sub(p1)
		// Perpendicular distance from c to the infinite line through p1,p2.
		perp := v.X*(-dir.Y) + v.Y*dir.X
		d := math32.Abs(perp)
		if d > maxDev {
			maxDev = d
		}
	}

	flatness := 1 - maxDev/chordLen
	if flatness < 0 {
		return 0.0001
	}
	if flatness > 1 {
		return 1
	}
	return flatness
}

// ParallelLine offsets the segment P1-P2 by offset perpendicular to its
// direction. A positive offset moves the line to the starboard (right, in
// the direction of travel from P1 to P2).
func ParallelLine(p1, p2 geom.Point2, offset float32) (geom.Point2, geom.Point2) {
	dir := p2.Sub(p1).Normalize()
	n := dir.Normal().Scale(-offset)
	return p1.Add(n), p2.Add(n)
}
