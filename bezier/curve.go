package bezier

import (
	"github.com/chewxy/math32"

	"glyphcore.dev/core/geom"
)

// Kind identifies the degree of a Curve.
type Kind uint8

const (
	Linear Kind = iota
	Quadratic
	Cubic
)

// ChannelMask selects which channels of a multi-channel signed distance
// field a curve contributes to.
type ChannelMask uint8

const (
	Yellow ChannelMask = iota
	Magenta
	Cyan
	White
)

// HasRed reports whether a curve colored with m contributes to the red
// channel of a multi-channel SDF.
func (m ChannelMask) HasRed() bool { return m != Cyan }

// HasGreen reports whether a curve colored with m contributes to the
// green channel of a multi-channel SDF.
func (m ChannelMask) HasGreen() bool { return m != Magenta }

// HasBlue reports whether a curve colored with m contributes to the blue
// channel of a multi-channel SDF.
func (m ChannelMask) HasBlue() bool { return m != Yellow }

// Curve is a linear, quadratic or cubic Bezier curve segment. C1 and C2 are
// unused (zero) for kinds that don't need them.
type Curve struct {
	Kind    Kind
	Channel ChannelMask
	P1      geom.Point2
	C1      geom.Point2
	C2      geom.Point2
	P2      geom.Point2
}

// NewLinear returns a linear curve from p1 to p2.
func NewLinear(p1, p2 geom.Point2) Curve {
	return Curve{Kind: Linear, Channel: White, P1: p1, P2: p2}
}

// NewQuadratic returns a quadratic curve from p1 to p2 via control c1.
func NewQuadratic(p1, c1, p2 geom.Point2) Curve {
	return Curve{Kind: Quadratic, Channel: White, P1: p1, C1: c1, P2: p2}
}

// NewCubic returns a cubic curve from p1 to p2 via controls c1, c2.
func NewCubic(p1, c1, c2, p2 geom.Point2) Curve {
	return Curve{Kind: Cubic, Channel: White, P1: p1, C1: c1, C2: c2, P2: p2}
}

// PointAt returns the point on the curve at parameter t. Values outside
// [0, 1] extrapolate beyond the segment.
func (c Curve) PointAt(t float32) geom.Point2 {
	switch c.Kind {
	case Linear:
		return PointAtLinear(c.P1, c.P2, t)
	case Quadratic:
		return PointAtQuadratic(c.P1, c.C1, c.P2, t)
	default:
		return PointAtCubic(c.P1, c.C1, c.C2, c.P2, t)
	}
}

// TangentAt returns the tangent vector at parameter t.
func (c Curve) TangentAt(t float32) geom.Vector2 {
	switch c.Kind {
	case Linear:
		return TangentAtLinear(c.P1, c.P2, t)
	case Quadratic:
		return TangentAtQuadratic(c.P1, c.C1, c.P2, t)
	default:
		return TangentAtCubic(c.P1, c.C1, c.C2, c.P2, t)
	}
}

// FindXGivenY returns the x-coordinates where the curve crosses the
// horizontal line y, t restricted to [0, 1] inclusive.
func (c Curve) FindXGivenY(y float32) []float32 {
	switch c.Kind {
	case Linear:
		return FindXGivenYLinear(c.P1, c.P2, y)
	case Quadratic:
		return FindXGivenYQuadratic(c.P1, c.C1, c.P2, y)
	default:
		return FindXGivenYCubic(c.P1, c.C1, c.C2, c.P2, y)
	}
}

// FindTForNormalThroughPoint returns the t-values at which the line from
// curve(t) to p is perpendicular to the curve's tangent at t. Cubic curves
// are not supported by this closed-form approach and this method panics
// for them; SubdivideUntilFlat keeps its pieces cubic, so flattening alone
// does not avoid the panic.
func (c Curve) FindTForNormalThroughPoint(p geom.Point2) []float32 {
	switch c.Kind {
	case Linear:
		return FindTForNormalThroughPointLinear(c.P1, c.P2, p)
	case Quadratic:
		return FindTForNormalThroughPointQuadratic(c.P1, c.C1, c.P2, p)
	default:
		panic("bezier: FindTForNormalThroughPoint is unsupported for cubic curves")
	}
}

// Flatness returns 1.0 for a straight segment, less than 1.0 as the curve
// bulges away from its chord.
func (c Curve) Flatness() float32 {
	switch c.Kind {
	case Linear:
		return FlatnessLinear(c.P1, c.P2)
	case Quadratic:
		return FlatnessQuadratic(c.P1, c.C1, c.P2)
	default:
		return FlatnessCubic(c.P1, c.C1, c.C2, c.P2)
	}
}

// Split divides the curve at parameter t into two curves of the same kind
// whose concatenation reproduces the original.
func (c Curve) Split(t float32) (Curve, Curve) {
	switch c.Kind {
	case Linear:
		mid := c.PointAt(t)
		return Curve{Kind: Linear, Channel: c.Channel, P1: c.P1, P2: mid},
			Curve{Kind: Linear, Channel: c.Channel, P1: mid, P2: c.P2}
	case Quadratic:
		a := lerp(c.P1, c.C1, t)
		b := lerp(c.C1, c.P2, t)
		mid := lerp(a, b, t)
		return Curve{Kind: Quadratic, Channel: c.Channel, P1: c.P1, C1: a, P2: mid},
			Curve{Kind: Quadratic, Channel: c.Channel, P1: mid, C1: b, P2: c.P2}
	default:
		outerA := lerp(c.P1, c.C1, t)
		outerBridge := lerp(c.C1, c.C2, t)
		outerB := lerp(c.C2, c.P2, t)
		innerA := lerp(outerA, outerBridge, t)
		innerB := lerp(outerBridge, outerB, t)
		mid := lerp(innerA, innerB, t)
		return Curve{Kind: Cubic, Channel: c.Channel, P1: c.P1, C1: outerA, C2: innerA, P2: mid},
			Curve{Kind: Cubic, Channel: c.Channel, P1: mid, C1: innerB, C2: outerB, P2: c.P2}
	}
}

// SubdivideUntilFlat recursively splits the curve at t=0.5 until every
// resulting segment has flatness >= 1-tolerance, returning the flattened
// list of segments (still carrying their original Kind).
func (c Curve) SubdivideUntilFlat(tolerance float32) []Curve {
	var out []Curve
	c.subdivideUntilFlat(1-tolerance, &out)
	return out
}

func (c Curve) subdivideUntilFlat(minimumFlatness float32, out *[]Curve) {
	if c.Flatness() >= minimumFlatness {
		*out = append(*out, c)
		return
	}
	a, b := c.Split(0.5)
	a.subdivideUntilFlat(minimumFlatness, out)
	b.subdivideUntilFlat(minimumFlatness, out)
}

// ToParallelLine returns a linear curve offset from the chord P1-P2 by
// offset (positive = starboard). Any curvature of c is discarded; callers
// flatten with SubdivideUntilFlat before calling this.
func (c Curve) ToParallelLine(offset float32) Curve {
	p1, p2 := ParallelLine(c.P1, c.P2, offset)
	return Curve{Kind: Linear, Channel: c.Channel, P1: p1, P2: p2}
}

// Reverse returns the curve with its direction of travel reversed.
func (c Curve) Reverse() Curve {
	switch c.Kind {
	case Linear:
		return Curve{Kind: Linear, Channel: c.Channel, P1: c.P2, P2: c.P1}
	case Quadratic:
		return Curve{Kind: Quadratic, Channel: c.Channel, P1: c.P2, C1: c.C1, P2: c.P1}
	default:
		return Curve{Kind: Cubic, Channel: c.Channel, P1: c.P2, C1: c.C2, C2: c.C1, P2: c.P1}
	}
}

// SDFDistanceResult holds the nearest point found on a curve by
// (*Curve).SDFDistance, together with enough information to compute a
// signed distance and compare results between curves.
type SDFDistanceResult struct {
	Curve      *Curve
	PN         geom.Vector2
	T          float32
	SqDistance float32
}

// newSDFDistanceResult returns a result initialized to "no point found
// yet", matching the curve but carrying the maximum possible square
// distance as a sentinel.
func newSDFDistanceResult(c *Curve) SDFDistanceResult {
	return SDFDistanceResult{Curve: c, SqDistance: math32.MaxFloat32}
}

// Orthogonality returns the cross product of the normalized tangent at T
// and the normalized vector PN. Its sign determines which side of the
// curve the query point lies on.
func (r SDFDistanceResult) Orthogonality() float32 {
	tangent := r.Curve.TangentAt(r.T).Normalize()
	pn := r.PN.Normalize()
	return tangent.Cross(pn)
}

// Distance returns the unsigned distance from the query point to the
// curve.
func (r SDFDistanceResult) Distance() float32 {
	return math32.Sqrt(r.SqDistance)
}

// SignedDistance returns Distance with a sign determined by
// Orthogonality: negative orthogonality means the point lies outside the
// edge (positive distance), non-negative orthogonality flips the sign.
func (r SDFDistanceResult) SignedDistance() float32 {
	d := r.Distance()
	if r.Orthogonality() < 0 {
		return d
	}
	return -d
}

// Less orders two results by square distance, with ties (within 0.01)
// broken in favor of the larger absolute orthogonality.
func (r SDFDistanceResult) Less(other SDFDistanceResult) bool {
	if math32.Abs(r.SqDistance-other.SqDistance) < 0.01 {
		return math32.Abs(r.Orthogonality()) > math32.Abs(other.Orthogonality())
	}
	return r.SqDistance < other.SqDistance
}

// SDFDistance finds the nearest point on c to p by sampling every

// candidate t where the line from curve(t) to p is perpendicular to the
// tangent at t (clamped into [0, 1]), and keeping the candidate with the
// smallest squared distance.
func (c *Curve) SDFDistance(p geom.Point2) SDFDistanceResult {
	nearest := newSDFDistanceResult(c)

	for _, t := range c.FindTForNormalThroughPoint(p) {
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}

		pn := p.Sub(c.PointAt(t))
		sq := pn.Dot(pn)
		if sq < nearest.SqDistance {
			nearest.T = t
			nearest.PN = pn
			nearest.SqDistance = sq
		}
	}

	return nearest
}
