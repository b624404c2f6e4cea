package path

import (
	"github.com/chewxy/math32"

	"glyphcore.dev/core/bezier"
	"glyphcore.dev/core/geom"
)

// CornerRadii gives the four corner radii of a rounded rectangle. A
// positive radius rounds the corner with an arc; a negative radius cuts
// the corner with a straight bevel of the same extent.
type CornerRadii struct {
	LeftBottom, RightBottom, LeftTop, RightTop float32
}

// AddRectangle draws a (possibly rounded or beveled) rectangle as a new
// closed contour.
func (p *Path) AddRectangle(r geom.Aarect, corners CornerRadii) {
	blRadius := math32.Abs(corners.LeftBottom)
	brRadius := math32.Abs(corners.RightBottom)
	tlRadius := math32.Abs(corners.LeftTop)
	trRadius := math32.Abs(corners.RightTop)

	blc := r.Min
	brc := geom.Point2{X: r.Min.X + r.Extent.X, Y: r.Min.Y}
	tlc := geom.Point2{X: r.Min.X, Y: r.Min.Y + r.Extent.Y}
	trc := geom.Point2{X: r.Min.X + r.Extent.X, Y: r.Min.Y + r.Extent.Y}

	blc1 := blc.Add(geom.Vector2{Y: blRadius})
	blc2 := blc.Add(geom.Vector2{X: blRadius})
	brc1 := brc.Add(geom.Vector2{X: -brRadius})
	brc2 := brc.Add(geom.Vector2{Y: brRadius})
	tlc1 := tlc.Add(geom.Vector2{X: tlRadius})
	tlc2 := tlc.Add(geom.Vector2{Y: -tlRadius})
	trc1 := trc.Add(geom.Vector2{Y: -trRadius})
	trc2 := trc.Add(geom.Vector2{X: -trRadius})

	p.MoveTo(blc1)
	switch {
	case corners.LeftBottom > 0:
		p.ArcTo(blRadius, blc2)
	case corners.LeftBottom < 0:
		p.LineTo(blc2)
	}

	p.LineTo(brc1)
	switch {
	case corners.RightBottom > 0:
		p.ArcTo(brRadius, brc2)
	case corners.RightBottom < 0:
		// Unlike the source this is derived from, this closes back to the
		// corner actually being cut (brc2), not the bottom-left one.
		p.LineTo(brc2)
	}

	p.LineTo(trc1)
	switch {
	case corners.RightTop > 0:
		p.ArcTo(trRadius, trc2)
	case corners.RightTop < 0:
		p.LineTo(trc2)
	}

	p.LineTo(tlc1)
	switch {
	case corners.LeftTop > 0:
		p.ArcTo(tlRadius, tlc2)
	case corners.LeftTop < 0:
		p.LineTo(tlc2)
	}

	p.CloseContour()
}

// AddCircle draws a circle of the given radius centered at position, as
// four quarter-circle arcs forming a new closed contour.
func (p *Path) AddCircle(position geom.Point2, radius float32) {
	p.MoveTo(geom.Point2{X: position.X, Y: position.Y - radius})
	p.ArcTo(radius, geom.Point2{X: position.X + radius, Y: position.Y})
	p.ArcTo(radius, geom.Point2{X: position.X, Y: position.Y + radius})
	p.ArcTo(radius, geom.Point2{X: position.X - radius, Y: position.Y})
	p.ArcTo(radius, geom.Point2{X: position.X, Y: position.Y - radius})
	p.CloseContour()
}

// CenterScale returns a copy of p scaled and translated to fit within the
// given extent (with padding on every side), preserving aspect ratio and
// centering the result.
func (p *Path) CenterScale(extent geom.Vector2, padding float32) *Path {
	maxWidth := math32.Max(1, extent.X-padding*2)
	maxHeight := math32.Max(1, extent.Y-padding*2)

	bbox := p.BoundingBox()
	if bbox.Extent.X <= 0 || bbox.Extent.Y <= 0 {
		return &Path{}
	}

	scale := math32.Min(maxWidth/bbox.Extent.X, maxHeight/bbox.Extent.Y)
	scaledExtent := geom.Vector2{X: bbox.Extent.X * scale, Y: bbox.Extent.Y * scale}
	scaledMin := geom.Point2{X: bbox.Min.X * scale, Y: bbox.Min.Y * scale}

	offset := geom.Point2{}.Sub(scaledMin).Add(geom.Vector2{
		X: (extent.X - scaledExtent.X) / 2,
		Y: (extent.Y - scaledExtent.Y) / 2,
	})

	return p.transform(scale, offset)
}

// transform returns a copy of p with every point scaled uniformly about
// the origin and then translated by offset.
func (p *Path) transform(scale float32, offset geom.Vector2) *Path {
	out := &Path{
		Points:      make([]bezier.Point, len(p.Points)),
		ContourEnds: append([]int(nil), p.ContourEnds...),
		Layers:      append([]Layer(nil), p.Layers...),
	}
	for i, pt := range p.Points {
		out.Points[i] = bezier.Point{
			Position: geom.Point2{X: pt.Position.X * scale, Y: pt.Position.Y * scale}.Add(offset),
			Kind:     pt.Kind,
		}
	}
	return out
}
