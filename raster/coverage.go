// Package raster rasterizes flat lists of Bezier curves into coverage
// masks and signed-distance-field pixmaps.
package raster

import (
	"sort"

	"glyphcore.dev/core/bezier"
	"glyphcore.dev/core/pixmap"
)

// coverageStep is the per-sub-sample coverage increment: five vertical
// samples per scanline, each contributing up to this many units, so a
// fully-covered pixel saturates to 255 (5*51 = 255).
const coverageStep = 51

// subSampleYFractions are the five vertical sample offsets within each
// scanline, evenly spaced at 0.2 starting at 0.1.
var subSampleYFractions = [5]float32{0.1, 0.3, 0.5, 0.7, 0.9}

// Rasterizer converts a flat list of curves into a coverage or signed
// distance field pixmap. Create one instance and reuse it for multiple
// fills; its scratch buffer grows as needed and never shrinks.
type Rasterizer struct {
	xRoots []float32
}

// span is an inside run on a single sub-scanline, in x-coordinates.
type span struct {
	start, end float32
}

// solveCurvesXByY collects every x-root of every curve crossing the
// horizontal line y, using r's scratch buffer.
func (r *Rasterizer) solveCurvesXByY(curves []bezier.Curve, y float32) []float32 {
	r.xRoots = r.xRoots[:0]
	for i := range curves {
		r.xRoots = append(r.xRoots, curves[i].FindXGivenY(y)...)
	}
	return r.xRoots
}

// getFillSpansAtY returns the inside spans on scanline y, or false if the
// roots found don't pair up evenly (numeric instability).
func (r *Rasterizer) getFillSpansAtY(curves []bezier.Curve, y float32, out []span) ([]span, bool) {
	xs := r.solveCurvesXByY(curves, y)
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })

	unique := xs[:0:0]
	for i, x := range xs {
		if i == 0 || x != xs[i-1] {
			unique = append(unique, x)
		}
	}

	if len(unique)%2 != 0 {
		return out, false
	}

	out = out[:0]
	for i := 0; i < len(unique); i += 2 {
		out = append(out, span{start: unique[i], end: unique[i+1]})
	}
	return out, true
}

// fillPartialPixels adds coverage for the fraction of pixel i that the
// span [startX, endX] covers, saturating at 255.
func fillPartialPixels(row []uint8, i int, startX, endX float32) {
	lo := clampf(startX, float32(i), float32(i+1))
	hi := clampf(endX, float32(i), float32(i+1))
	coverage := (hi - lo) * coverageStep
	v := float32(row[i]) + coverage
	if v > 255 {
		v = 255
	}
	row[i] = uint8(v)
}

// fillFullPixels adds the full coverage step to size consecutive pixels
// starting at start. Pixels that would overflow 255 saturate.
func fillFullPixels(row []uint8, start, size int) {
	end := start + size
	for i := start; i < end; i++ {
		v := int(row[i]) + coverageStep
		if v > 255 {
			v = 255
		}
		row[i] = uint8(v)
	}
}

func clampf(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// fillRowSpan paints one inside span into row, with partial coverage at
// the boundary pixels and full coverage for every pixel strictly between
// them.
func fillRowSpan(row []uint8, startX, endX float32) {
	if startX >= float32(len(row)) || endX < 0 {
		return
	}

	startCol := int(startX)
	if startCol < 0 {
		startCol = 0
	}
	endCol := int(endX + 1)
	if endCol > len(row) {
		endCol = len(row)
	}
	nrColumns := endCol - startCol
	if nrColumns <= 0 {
		return
	}

	if nrColumns == 1 {
		fillPartialPixels(row, startCol, startX, endX)
		return
	}

	fillPartialPixels(row, startCol, startX, endX)
	if nrColumns > 2 {
		fillFullPixels(row, startCol+1, nrColumns-2)
	}
	fillPartialPixels(row, endCol-1, startX, endX)
}

// fillRow accumulates five vertically-supersampled scanlines of coverage
// into row, the pixel row at integer y-coordinate rowY.
func (r *Rasterizer) fillRow(row []uint8, rowY int, curves []bezier.Curve) {
	var spans []span
	for _, frac := range subSampleYFractions {
		y := float32(rowY) + frac
		s, ok := r.getFillSpansAtY(curves, y, spans)
		if !ok {
			s, ok = r.getFillSpansAtY(curves, y+0.01, spans)
		}
		if !ok {
			continue
		}
		spans = s
		for _, sp := range spans {
			fillRowSpan(row, sp.start, sp.end)
		}
	}
}

// FillCoverage rasterizes curves (a flat list of curves from any number of
// closed contours, in no particular order) into dst, accumulating
// anti-aliased coverage with five vertical samples per scanline.
func (r *Rasterizer) FillCoverage(dst *pixmap.Pixmap[pixmap.CoverageByte], curves []bezier.Curve) {
	for y := 0; y < dst.Height; y++ {
		r.fillRow(dst.Row(y), y, curves)
	}
}
