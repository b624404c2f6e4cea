package path

import (
	"github.com/chewxy/math32"

	"glyphcore.dev/core/geom"
)

// ArcTo draws a circular arc from the current position to position, using
// the Riskus cubic-arc approximation (Aleksas Riskus, "Approximation of a
// cubic Bezier curve by circular arcs and vice versa", chapter 3, formulas
// 8 and 9). A positive radius draws counter-clockwise, negative clockwise.
func (p *Path) ArcTo(radius float32, position geom.Point2) {
	r := math32.Abs(radius)
	p1 := p.CurrentPosition()
	p2 := position
	pm := p1.Midpoint(p2)

	vm2 := p2.Sub(pm)

	alpha := math32.Asin(vm2.Length() / r)

	c := pm.Add(vm2.Normal().Normalize().Scale(math32.Cos(alpha) * radius))

	vc1 := p1.Sub(c)
	vc2 := p2.Sub(c)

	q1 := vc1.Dot(vc1)
	q2 := q1 + vc1.Dot(vc2)
	k2 := (4.0 / 3.0) * (math32.Sqrt(2*q1*q2) - q2) / vc1.Cross(vc2)

	c1 := geom.Point2{
		X: (c.X + vc1.X) - k2*vc1.Y,
		Y: (c.Y + vc1.Y) + k2*vc1.X,
	}
	c2 := geom.Point2{
		X: (c.X + vc2.X) + k2*vc2.Y,
		Y: (c.Y + vc2.Y) - k2*vc2.X,
	}

	p.CubicCurveTo(c1, c2, p2)
}
