package png

import "glyphcore.dev/core/pixmap"

// getSample reads one sample (1 or 2 bytes, big-endian) at the given
// sample index within a row's pixel data (excluding the filter-type byte).
func getSample(row []byte, sampleIndex, bitDepth int) float32 {
	if bitDepth == 8 {
		return float32(row[sampleIndex])
	}
	i := sampleIndex * 2
	v := uint16(row[i])<<8 | uint16(row[i+1])
	return float32(v)
}

// extractPixelFromLine reads pixel x from an unfiltered row (row[1:] is
// the pixel data; row[0] is the already-consumed filter-type byte) and
// returns its four samples in gamma-encoded sample units, defaulting
// alpha to fully opaque when the image has no alpha channel.
func (d *Decoder) extractPixelFromLine(row []byte, x int) (r, g, b, a float32) {
	data := row[1:]
	samplesPerPixel := d.samplesPerPixel
	base := x * samplesPerPixel

	opaque := float32(255)
	if d.bitDepth == 16 {
		opaque = 65535
	}

	idx := 0
	if d.isColor {
		r = getSample(data, base+idx, d.bitDepth)
		idx++
		g = getSample(data, base+idx, d.bitDepth)
		idx++
		b = getSample(data, base+idx, d.bitDepth)
		idx++
	} else {
		v := getSample(data, base+idx, d.bitDepth)
		idx++
		r, g, b = v, v, v
	}
	if d.hasAlpha {
		a = getSample(data, base+idx, d.bitDepth)
	} else {
		a = opaque
	}
	return r, g, b, a
}

// dataToImageLine converts one unfiltered row into linear premultiplied
// scRGB pixels, writing them into dst at image row invY (PNG stores rows
// top-down; the destination pixmap uses a bottom-up Y axis).
func (d *Decoder) dataToImageLine(row []byte, invY int, dst *pixmap.Pixmap[pixmap.ScRgbaF16]) {
	dstRow := dst.Row(invY)
	lut := d.transferFunction
	n := float32(len(lut) - 1)

	for x := 0; x < d.width; x++ {
		sr, sg, sb, sa := d.extractPixelFromLine(row, x)

		lr := lut[clampIndex(sr, n)]
		lg := lut[clampIndex(sg, n)]
		lb := lut[clampIndex(sb, n)]
		alpha := sa / n

		out := d.colorToSRGB.MulVector([3]float32{lr, lg, lb})

		dstRow[x] = pixmap.Premultiply(out[0], out[1], out[2], alpha)
	}
}

func clampIndex(v, max float32) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return int(max)
	}
	return int(v)
}

// dataToImage converts every row of an unfiltered image buffer into dst,
// flipping from PNG's top-down row order to the pixmap's bottom-up
// convention.
func (d *Decoder) dataToImage(imageData []byte, dst *pixmap.Pixmap[pixmap.ScRgbaF16]) {
	for y := 0; y < d.height; y++ {
		row := imageData[y*d.stride : (y+1)*d.stride]
		invY := d.height - 1 - y
		d.dataToImageLine(row, invY, dst)
	}
}
