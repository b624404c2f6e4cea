// Package pixmap implements the generic pixel-buffer view used by the
// raster, path and png packages, along with the three pixel formats the
// pipeline passes between stages: 8-bit coverage, 8-bit signed distance,
// and linear premultiplied scRGB half-float.
package pixmap

import "github.com/chewxy/math32"

// Pixmap is a width*height grid of samples of type T, stored row-major with
// a possibly-padded row stride. A Pixmap never owns more than one backing
// slice; Sub returns a view that shares storage with its parent.
type Pixmap[T any] struct {
	Data   []T
	Width  int
	Height int
	Stride int
}

// New allocates an owning Pixmap with Stride == Width.
func New[T any](width, height int) *Pixmap[T] {
	return &Pixmap[T]{
		Data:   make([]T, width*height),
		Width:  width,
		Height: height,
		Stride: width,
	}
}

// NewView wraps an existing slice as a non-owning Pixmap. data must hold at
// least stride*height elements.
func NewView[T any](data []T, width, height, stride int) *Pixmap[T] {
	return &Pixmap[T]{Data: data, Width: width, Height: height, Stride: stride}
}

// At returns the sample at (x, y).
func (p *Pixmap[T]) At(x, y int) T {
	return p.Data[y*p.Stride+x]
}

// Set stores v at (x, y).
func (p *Pixmap[T]) Set(x, y int, v T) {
	p.Data[y*p.Stride+x] = v
}

// Row returns the slice of samples for row y, of length Width.
func (p *Pixmap[T]) Row(y int) []T {
	start := y * p.Stride
	return p.Data[start : start+p.Width]
}

// Sub returns a view onto the rectangle [x, x+w) x [y, y+h), sharing
// storage and stride with p. It panics if the rectangle is out of bounds.
func (p *Pixmap[T]) Sub(x, y, w, h int) *Pixmap[T] {
	if x < 0 || y < 0 || w < 0 || h < 0 || x+w > p.Width || y+h > p.Height {
		panic("pixmap: sub-image out of bounds")
	}
	start := y*p.Stride + x
	end := (y+h-1)*p.Stride + x + w
	if h == 0 {
		end = start
	}
	return &Pixmap[T]{
		Data:   p.Data[start:end],
		Width:  w,
		Height: h,
		Stride: p.Stride,
	}
}

// Clear sets every sample in p to the zero value of T.
func (p *Pixmap[T]) Clear() {
	var zero T
	for i := range p.Data {
		p.Data[i] = zero
	}
}

// CoverageByte is a pixel coverage fraction in [0, 255], produced in
// increments of 51 (five equal steps) by the coverage rasterizer.
type CoverageByte = uint8

// MaxDist is the maximum distance in pixels a SdfByte can represent. It
// must be at least the diagonal distance between two adjacent pixels so
// that linear interpolation across a pixel stays within range.
const MaxDist float32 = 3.0

// SdfByte is a single-channel signed distance field sample, storing
// distance in pixels as a signed-normalized 8-bit value scaled by MaxDist.
type SdfByte int8

// NewSdfByte encodes a distance in pixels as a SdfByte, clamping to the
// representable range.
func NewSdfByte(distance float32) SdfByte {
	n := distance / MaxDist
	if n > 1 {
		n = 1
	} else if n < -1 {
		n = -1
	}
	return SdfByte(int8(n * 127))
}

// Distance decodes b back to a distance in pixels.
func (b SdfByte) Distance() float32 {
	return float32(b) / 127 * MaxDist
}

// Negate flips the sign of the encoded distance, used when assembling a
// multi-channel atlas from single-channel fields that disagree on winding.
func (b SdfByte) Negate() SdfByte {
	return SdfByte(-int8(b))
}

// MostNegativeSdfByte is the encoded value used for pixels with no nearby
// curve at all (an empty curve set).
const MostNegativeSdfByte SdfByte = -128

// ScRgbaF16 is a linear, premultiplied scRGB pixel with four half-float
// channels. Reference white (1.0) corresponds to 80 cd/m^2; values above
// 1.0 and below 0.0 are valid and represent colors and luminances outside
// the sRGB gamut, per the scRGB convention.
type ScRgbaF16 struct {
	R, G, B, A Half
}

// Premultiply returns the premultiplied-alpha form of a straight-alpha
// color. PNG pixel data is straight alpha; this pipeline's pixmaps store
// premultiplied alpha so that filtering and compositing can add and scale
// pixels directly.
func Premultiply(r, g, b, a float32) ScRgbaF16 {
	return ScRgbaF16{
		R: FromFloat32(r * a),
		G: FromFloat32(g * a),
		B: FromFloat32(b * a),
		A: FromFloat32(a),
	}
}

// Unpremultiply divides out alpha, returning straight-alpha components. If
// alpha is zero the color channels are returned as zero.
func (p ScRgbaF16) Unpremultiply() (r, g, b, a float32) {
	a = p.A.Float32()
	if a == 0 {
		return 0, 0, 0, 0
	}
	return p.R.Float32() / a, p.G.Float32() / a, p.B.Float32() / a, a
}

// Lerp blends two premultiplied colors by coverage fraction t in [0, 1].
func (p ScRgbaF16) Lerp(q ScRgbaF16, t float32) ScRgbaF16 {
	return ScRgbaF16{
		R: FromFloat32(p.R.Float32() + (q.R.Float32()-p.R.Float32())*t),
		G: FromFloat32(p.G.Float32() + (q.G.Float32()-p.G.Float32())*t),
		B: FromFloat32(p.B.Float32() + (q.B.Float32()-p.B.Float32())*t),
		A: FromFloat32(p.A.Float32() + (q.A.Float32()-p.A.Float32())*t),
	}
}

// Over composites src (premultiplied) onto p (premultiplied) using the
// standard Porter-Duff "over" operator.
func (p ScRgbaF16) Over(src ScRgbaF16) ScRgbaF16 {
	invA := 1 - src.A.Float32()
	return ScRgbaF16{
		R: FromFloat32(src.R.Float32() + p.R.Float32()*invA),
		G: FromFloat32(src.G.Float32() + p.G.Float32()*invA),
		B: FromFloat32(src.B.Float32() + p.B.Float32()*invA),
		A: FromFloat32(src.A.Float32() + p.A.Float32()*invA),
	}
}

// clamp01 restricts x to [0, 1].
func clamp01(x float32) float32 {
	return math32.Max(0, math32.Min(1, x))
}
