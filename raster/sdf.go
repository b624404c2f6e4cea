package raster

import (
	"glyphcore.dev/core/bezier"
	"glyphcore.dev/core/geom"
	"glyphcore.dev/core/pixmap"
)

// generateSDFPixel returns the signed distance from point to the nearest
// of curves, or the most negative representable distance if curves is
// empty.
func generateSDFPixel(point geom.Point2, curves []bezier.Curve) float32 {
	if len(curves) == 0 {
		return -pixmap.MaxDist
	}

	nearest := curves[0].SDFDistance(point)
	for i := 1; i < len(curves); i++ {
		c := curves[i]
		d := c.SDFDistance(point)
		if d.Less(nearest) {
			nearest = d
		}
	}

	return nearest.SignedDistance()
}

// FillSDF rasterizes a single-channel signed distance field into dst: for
// every pixel, the distance (in pixels) to the nearest curve in curves,
// signed so that inside the shape is negative. With no curves at all,
// every pixel is set to MostNegativeSdfByte.
func (r *Rasterizer) FillSDF(dst *pixmap.Pixmap[pixmap.SdfByte], curves []bezier.Curve) {
	if len(curves) == 0 {
		for y := 0; y < dst.Height; y++ {
			row := dst.Row(y)
			for x := range row {
				row[x] = pixmap.MostNegativeSdfByte
			}
		}
		return
	}
	for y := 0; y < dst.Height; y++ {
		row := dst.Row(y)
		for x := 0; x < dst.Width; x++ {
			d := generateSDFPixel(geom.Point2{X: float32(x), Y: float32(y)}, curves)
			row[x] = pixmap.NewSdfByte(d)
		}
	}
}
