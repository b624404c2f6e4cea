package path

import (
	"github.com/lucasb-eyer/go-colorful"

	"glyphcore.dev/core/bezier"
)

// ToStroke converts p into a new path describing the outline of a stroke
// of the given width: each contour is subdivided until flat, offset to
// both sides by half the stroke width, and the inner (port) offset is
// inverted so both sides wind the same way.
func (p *Path) ToStroke(strokeWidth float32, join bezier.JoinStyle, tolerance float32) *Path {
	out := &Path{}

	starboardOffset := strokeWidth / 2
	portOffset := -starboardOffset

	for i := 0; i < p.ContourCount(); i++ {
		base := p.BeziersOfContour(i)

		starboard := bezier.ParallelContour(base, starboardOffset, join, tolerance)
		out.AddContour(starboard)

		port := bezier.InverseContour(bezier.ParallelContour(base, portOffset, join, tolerance))
		out.AddContour(port)
	}

	return out
}

// AddStroke appends the stroke outline of path (width strokeWidth) to p
// and closes the resulting layer with strokeColor.
func (p *Path) AddStroke(src *Path, strokeColor colorful.Color, strokeWidth float32, join bezier.JoinStyle, tolerance float32) {
	p.append(src.ToStroke(strokeWidth, join, tolerance))
	p.CloseLayer(strokeColor)
}
