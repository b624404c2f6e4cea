// Package path implements a pen-command vector drawing surface: a Path
// accumulates contours grouped into colored layers, and can be rasterized
// (via the raster package) into a coverage mask, an SDF, or composited
// directly onto a pixmap.
package path

import (
	"github.com/lucasb-eyer/go-colorful"

	"glyphcore.dev/core/bezier"
	"glyphcore.dev/core/geom"
)

// Layer records where one filled layer's contours end within ContourEnds,
// and the color it should be filled with.
type Layer struct {
	ContourEnd int
	Color      colorful.Color
}

// Path is a vector graphics object: a set of layers, each a set of closed
// contours, each a set of Bezier points.
type Path struct {
	Points      []bezier.Point
	ContourEnds []int
	Layers      []Layer
}

// Clear empties the path, retaining its backing storage.
func (p *Path) Clear() {
	p.Points = p.Points[:0]
	p.ContourEnds = p.ContourEnds[:0]
	p.Layers = p.Layers[:0]
}

// ContourCount returns the number of closed contours.
func (p *Path) ContourCount() int { return len(p.ContourEnds) }

// LayerCount returns the number of closed layers.
func (p *Path) LayerCount() int { return len(p.Layers) }

// HasLayers reports whether the path has any closed layer.
func (p *Path) HasLayers() bool { return p.LayerCount() > 0 }

// IsContourOpen reports whether the last contour has not yet been closed.
func (p *Path) IsContourOpen() bool {
	if len(p.Points) == 0 {
		return false
	}
	if len(p.ContourEnds) == 0 {
		return true
	}
	return p.ContourEnds[len(p.ContourEnds)-1] != len(p.Points)-1
}

// IsLayerOpen reports whether the last layer has not yet been closed.
func (p *Path) IsLayerOpen() bool {
	if len(p.Points) == 0 {
		return false
	}
	if p.IsContourOpen() {
		return true
	}
	if len(p.Layers) == 0 {
		return true
	}
	return p.Layers[len(p.Layers)-1].ContourEnd != len(p.ContourEnds)-1
}

// CloseContour closes the currently open contour, if any.
func (p *Path) CloseContour() {
	if p.IsContourOpen() {
		p.ContourEnds = append(p.ContourEnds, len(p.Points)-1)
	}
}

// CloseLayer closes the current contour and, if a layer is open, closes it
// with fillColor.
func (p *Path) CloseLayer(fillColor colorful.Color) {
	p.CloseContour()
	if p.IsLayerOpen() {
		p.Layers = append(p.Layers, Layer{ContourEnd: len(p.ContourEnds) - 1, Color: fillColor})
	}
}

// CurrentPosition returns the position of the last point of the open
// contour, or the zero point if no contour is open.
func (p *Path) CurrentPosition() geom.Point2 {
	if p.IsContourOpen() {
		return p.Points[len(p.Points)-1].Position
	}
	return geom.Point2{}
}

// MoveTo closes the current contour (if any) and starts a new one at
// position.
func (p *Path) MoveTo(position geom.Point2) {
	p.CloseContour()
	p.Points = append(p.Points, bezier.Point{Position: position, Kind: bezier.Anchor})
}

// LineTo appends a straight segment to position within the open contour.
func (p *Path) LineTo(position geom.Point2) {
	p.Points = append(p.Points, bezier.Point{Position: position, Kind: bezier.Anchor})
}

// QuadraticCurveTo appends a quadratic segment to position, via control.
func (p *Path) QuadraticCurveTo(control, position geom.Point2) {
	p.Points = append(p.Points,
		bezier.Point{Position: control, Kind: bezier.QuadraticControl},
		bezier.Point{Position: position, Kind: bezier.Anchor},
	)
}

// CubicCurveTo appends a cubic segment to position, via control1/control2.
func (p *Path) CubicCurveTo(control1, control2, position geom.Point2) {
	p.Points = append(p.Points,
		bezier.Point{Position: control1, Kind: bezier.CubicControl1},
		bezier.Point{Position: control2, Kind: bezier.CubicControl2},
		bezier.Point{Position: position, Kind: bezier.Anchor},
	)
}

// beginContourIndex returns the index of the first point of contour n.
func (p *Path) beginContourIndex(n int) int {
	if n == 0 {
		return 0
	}
	return p.ContourEnds[n-1] + 1
}

// endContourIndex returns the index one past the last point of contour n.
func (p *Path) endContourIndex(n int) int {
	return p.ContourEnds[n] + 1
}

// PointsOfContour returns the points belonging to contour n.
func (p *Path) PointsOfContour(n int) []bezier.Point {
	return p.Points[p.beginContourIndex(n):p.endContourIndex(n)]
}

// BeziersOfContour builds the curve list for contour n, closing the loop
// back to its first anchor. Contours with fewer than three points have no
// area and are skipped.
func (p *Path) BeziersOfContour(n int) bezier.Contour {
	pts := p.PointsOfContour(n)
	if len(pts) < 3 {
		return nil
	}
	if pts[len(pts)-1].Position != pts[0].Position {
		pts = append(append([]bezier.Point(nil), pts...), bezier.Point{
			Position: pts[0].Position,
			Kind:     bezier.Anchor,
		})
	}
	return bezier.MakeContourFromPoints(pts)
}

// Beziers returns the flattened curve list of every contour in the path.
// The path must have no open layers (HasLayers callers should use
// Layer-aware traversal instead).
func (p *Path) Beziers() []bezier.Curve {
	var out []bezier.Curve
	for i := 0; i < p.ContourCount(); i++ {
		out = append(out, p.BeziersOfContour(i)...)
	}
	return out
}

// beginLayerContour returns the index of the first contour of layer n.
func (p *Path) beginLayerContour(n int) int {
	if n == 0 {
		return 0
	}
	return p.Layers[n-1].ContourEnd + 1
}

// endLayerContour returns the index one past the last contour of layer n.
func (p *Path) endLayerContour(n int) int {
	return p.Layers[n].ContourEnd + 1
}

// GetLayer returns a standalone Path containing only layer n's contours,
// along with that layer's fill color.
func (p *Path) GetLayer(n int) (*Path, colorful.Color) {
	out := &Path{}
	for c := p.beginLayerContour(n); c != p.endLayerContour(n); c++ {
		out.AddContourPoints(p.PointsOfContour(c))
	}
	return out, p.Layers[n].Color
}

// BoundingBox returns the smallest axis-aligned rectangle containing every
// point in the path.
func (p *Path) BoundingBox() geom.Aarect {
	if len(p.Points) == 0 {
		return geom.Aarect{}
	}
	r := geom.MakeAarectFromPoints(p.Points[0].Position, p.Points[0].Position)
	for _, pt := range p.Points {
		r = r.Union(geom.MakeAarectFromPoints(pt.Position, pt.Position))
	}
	return r
}

// AllLayersHaveSameColor reports whether every layer shares the same fill
// color (vacuously true for a path with no layers).
func (p *Path) AllLayersHaveSameColor() bool {
	if !p.HasLayers() {
		return true
	}
	first := p.Layers[0].Color
	for _, l := range p.Layers {
		if l.Color != first {
			return false
		}
	}
	return true
}

// OptimizeLayers merges contiguous layers that share the same fill color.
func (p *Path) OptimizeLayers() {
	if len(p.Layers) == 0 {
		return
	}
	merged := p.Layers[:1]
	for _, l := range p.Layers[1:] {
		if merged[len(merged)-1].Color == l.Color {
			merged[len(merged)-1].ContourEnd = l.ContourEnd
			continue
		}
		merged = append(merged, l)
	}
	p.Layers = merged
}

// AddContourPoints appends a ready-made contour of points (first point
// included) and closes it. Used internally by GetLayer.
func (p *Path) AddContourPoints(points []bezier.Point) {
	p.Points = append(p.Points, points...)
	p.CloseContour()
}

// AddContour appends the curves of contour as a new closed contour.
func (p *Path) AddContour(contour bezier.Contour) {
	if len(contour) == 0 {
		return
	}
	p.MoveTo(contour[0].P1)
	for _, curve := range contour {
		switch curve.Kind {
		case bezier.Linear:
			p.Points = append(p.Points, bezier.Point{Position: curve.P2, Kind: bezier.Anchor})
		case bezier.Quadratic:
			p.Points = append(p.Points,
				bezier.Point{Position: curve.C1, Kind: bezier.QuadraticControl},
				bezier.Point{Position: curve.P2, Kind: bezier.Anchor},
			)
		case bezier.Cubic:
			p.Points = append(p.Points,
				bezier.Point{Position: curve.C1, Kind: bezier.CubicControl1},
				bezier.Point{Position: curve.C2, Kind: bezier.CubicControl2},
				bezier.Point{Position: curve.P2, Kind: bezier.Anchor},
			)
		}
	}
	p.CloseContour()
}

// AddPath appends rhs's contours to p and closes the resulting layer with
// fillColor.
func (p *Path) AddPath(rhs *Path, fillColor colorful.Color) {
	p.append(rhs)
	p.CloseLayer(fillColor)
}

// append concatenates rhs's points/contours/layers onto p, offsetting
// indices accordingly. Neither p nor rhs may have an open contour.
func (p *Path) append(rhs *Path) {
	pointOffset := len(p.Points)
	contourOffset := len(p.ContourEnds)

	for _, l := range rhs.Layers {
		p.Layers = append(p.Layers, Layer{ContourEnd: contourOffset + l.ContourEnd, Color: l.Color})
	}
	for _, c := range rhs.ContourEnds {
		p.ContourEnds = append(p.ContourEnds, pointOffset+c)
	}
	p.Points = append(p.Points, rhs.Points...)
}
