package path

import (
	"github.com/lucasb-eyer/go-colorful"

	"glyphcore.dev/core/pixmap"
	"glyphcore.dev/core/raster"
)

// CompositeColor composites color onto dst wherever mask (a single,
// layer-free path) covers a pixel, using a coverage-mask "over" blend.
// mask must have no open contour and no layers of its own.
func CompositeColor(dst *pixmap.Pixmap[pixmap.ScRgbaF16], color colorful.Color, mask *Path, r *raster.Rasterizer) {
	coverage := pixmap.New[pixmap.CoverageByte](dst.Width, dst.Height)
	r.FillCoverage(coverage, mask.Beziers())

	cr, cg, cb := float32(color.R), float32(color.G), float32(color.B)
	for y := 0; y < dst.Height; y++ {
		dstRow := dst.Row(y)
		covRow := coverage.Row(y)
		for x := 0; x < dst.Width; x++ {
			a := float32(covRow[x]) / 255
			if a == 0 {
				continue
			}
			src := pixmap.Premultiply(cr, cg, cb, a)
			dstRow[x] = dstRow[x].Over(src)
		}
	}
}

// Composite renders every layer of src (which must be fully closed, with
// no open layer) onto dst in order, back to front.
func Composite(dst *pixmap.Pixmap[pixmap.ScRgbaF16], src *Path, r *raster.Rasterizer) {
	for i := 0; i < src.LayerCount(); i++ {
		layer, color := src.GetLayer(i)
		CompositeColor(dst, color, layer, r)
	}
}

// FillSDF rasterizes every contour of path (ignoring layer/color
// structure) into dst as a single-channel signed distance field.
func FillSDF(dst *pixmap.Pixmap[pixmap.SdfByte], p *Path, r *raster.Rasterizer) {
	r.FillSDF(dst, p.Beziers())
}
