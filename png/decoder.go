package png

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"

	"glyphcore.dev/core/colorspace"
	"glyphcore.dev/core/pixmap"
)

// Decoder holds the parsed metadata of a single PNG image and the raw
// IDAT chunk slices needed to produce pixels. Construct one with
// NewDecoder and call DecodeImage to materialize the pixmap; a Decoder
// keeps the input buffer alive (zero-copy chunk slices) for its own
// lifetime.
type Decoder struct {
	ihdr

	colorToSRGB      colorspace.Matrix3
	transferFunction []float32

	idat [][]byte
}

// Width returns the image width in pixels.
func (d *Decoder) Width() int { return d.width }

// Height returns the image height in pixels.
func (d *Decoder) Height() int { return d.height }

// NewDecoder parses the PNG signature and chunk stream in data, resolving
// IHDR and any color-space chunks. The returned Decoder borrows data; it
// must remain valid and unmodified until DecodeImage returns.
func NewDecoder(data []byte) (*Decoder, error) {
	if err := readSignature(data); err != nil {
		return nil, err
	}
	chunks, err := readChunks(data)
	if err != nil {
		return nil, err
	}

	var ihdrData, chrmData, gamaData, iccpData, srgbData []byte
	var idat [][]byte
	haveIHDR := false

	for _, c := range chunks {
		switch c.kind {
		case "IHDR":
			ihdrData = c.data
			haveIHDR = true
		case "cHRM":
			chrmData = c.data
		case "gAMA":
			gamaData = c.data
		case "iCCP":
			iccpData = c.data
		case "sRGB":
			srgbData = c.data
		case "IDAT":
			idat = append(idat, c.data)
		}
	}

	if !haveIHDR {
		return nil, ErrMissingIHDR
	}

	h, err := parseIHDR(ihdrData)
	if err != nil {
		return nil, err
	}

	d := &Decoder{
		ihdr: h,
		colorToSRGB: colorspace.Matrix3{
			{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1},
		},
		idat: idat,
	}
	d.generateSRGBTransferFunction()

	// Later chunks override earlier ones, in the order cHRM, gAMA, iCCP,
	// sRGB: each one that is present replaces what it sets of the
	// interpretation established so far. cHRM sets the matrix and resets
	// the transfer function to sRGB, gAMA sets only the transfer function,
	// iCCP sets both only for the ITUR_2100_PQ_FULL profile, and sRGB
	// resets both.
	if chrmData != nil {
		if err := applyCHRM(d, chrmData); err != nil {
			return nil, err
		}
	}
	if gamaData != nil {
		if err := applyGAMA(d, gamaData); err != nil {
			return nil, err
		}
	}
	if iccpData != nil {
		if err := applyICCP(d, iccpData); err != nil {
			return nil, err
		}
	}
	if srgbData != nil {
		if err := applySRGB(d, srgbData); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// valueRange returns the number of distinct sample values for the
// image's bit depth (256 for 8-bit, 65536 for 16-bit).
func (d *Decoder) valueRange() int {
	if d.bitDepth == 8 {
		return 256
	}
	return 65536
}

func (d *Decoder) generateSRGBTransferFunction() {
	n := d.valueRange()
	d.transferFunction = make([]float32, n)
	for i := 0; i < n; i++ {
		u := float32(i) / float32(n-1)
		d.transferFunction[i] = colorspace.SRGBGammaToLinear(u)
	}
}

func (d *Decoder) generateRec2100TransferFunction() {
	n := d.valueRange()
	d.transferFunction = make([]float32, n)
	for i := 0; i < n; i++ {
		u := float32(i) / float32(n-1)
		d.transferFunction[i] = colorspace.Rec2100PQGammaToLinear(u)
	}
}

func (d *Decoder) generateGammaTransferFunction(gamma float32) {
	n := d.valueRange()
	d.transferFunction = make([]float32, n)
	for i := 0; i < n; i++ {
		u := float32(i) / float32(n-1)
		d.transferFunction[i] = colorspace.GammaToLinear(u, gamma)
	}
}

// decompressIDATs concatenates every IDAT chunk (there is usually just
// one) and zlib-inflates the result, verifying the output is exactly
// wantSize bytes.
func (d *Decoder) decompressIDATs(wantSize int) ([]byte, error) {
	var compressed []byte
	if len(d.idat) == 1 {
		compressed = d.idat[0]
	} else {
		for _, c := range d.idat {
			compressed = append(compressed, c...)
		}
	}

	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompressionSizeMismatch, err)
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompressionSizeMismatch, err)
	}
	if len(out) != wantSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrDecompressionSizeMismatch, len(out), wantSize)
	}
	return out, nil
}

// DecodeImage decompresses, unfilters and converts the image data into a
// linear premultiplied scRGB half-float pixmap.
func (d *Decoder) DecodeImage() (*pixmap.Pixmap[pixmap.ScRgbaF16], error) {
	imageDataSize := d.stride * d.height

	imageData, err := d.decompressIDATs(imageDataSize)
	if err != nil {
		return nil, err
	}

	if err := d.unfilterLines(imageData); err != nil {
		return nil, err
	}

	img := pixmap.New[pixmap.ScRgbaF16](d.width, d.height)
	d.dataToImage(imageData, img)
	return img, nil
}

// Decode is a convenience wrapper that reads r fully, then parses and
// decodes the PNG it contains.
func Decode(r io.Reader) (*pixmap.Pixmap[pixmap.ScRgbaF16], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	d, err := NewDecoder(data)
	if err != nil {
		return nil, err
	}
	return d.DecodeImage()
}
