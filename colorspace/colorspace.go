// Package colorspace implements the transfer functions and chromaticity
// matrices needed to bring PNG pixel data into linear scRGB.
package colorspace

import "github.com/chewxy/math32"

// Matrix3 is a 3x3 matrix stored in row-major order, used to convert
// between tristimulus color spaces (RGB <-> XYZ).
type Matrix3 [3][3]float32

// MulVector applies m to the column vector v.
func (m Matrix3) MulVector(v [3]float32) [3]float32 {
	return [3]float32{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Mul returns the matrix product m*n.
func (m Matrix3) Mul(n Matrix3) Matrix3 {
	var out Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float32
			for k := 0; k < 3; k++ {
				sum += m[i][k] * n[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// Inverse returns the inverse of m via the adjugate/determinant method.
// m is always a color-primary chromaticity matrix in this package, so it
// is never singular in practice.
func (m Matrix3) Inverse() Matrix3 {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]

	A := e*i - f*h
	B := -(d*i - f*g)
	C := d*h - e*g
	D := -(b*i - c*h)
	E := a*i - c*g
	F := -(a*h - b*g)
	G := b*f - c*e
	H := -(a*f - c*d)
	I := a*e - b*d

	det := a*A + b*B + c*C
	invDet := 1 / det

	return Matrix3{
		{A * invDet, D * invDet, G * invDet},
		{B * invDet, E * invDet, H * invDet},
		{C * invDet, F * invDet, I * invDet},
	}
}

// diag3 returns a diagonal matrix built from a 3-vector.
func diag3(s [3]float32) Matrix3 {
	return Matrix3{
		{s[0], 0, 0},
		{0, s[1], 0},
		{0, 0, s[2]},
	}
}

// PrimariesToRGBToXYZ builds the RGB-to-XYZ conversion matrix for a set of
// CIE xy chromaticity coordinates: a white point and red/green/blue
// primaries. This is the standard tristimulus-scaling construction used by
// ICC profiles and the PNG cHRM chunk.
func PrimariesToRGBToXYZ(wx, wy, rx, ry, gx, gy, bx, by float32) Matrix3 {
	r := [3]float32{rx, ry, 1 - rx - ry}
	g := [3]float32{gx, gy, 1 - gx - gy}
	b := [3]float32{bx, by, 1 - bx - by}

	w := [3]float32{wx / wy, 1, (1 - wx - wy) / wy}

	// C has r, g, b as its columns.
	c := Matrix3{
		{r[0], g[0], b[0]},
		{r[1], g[1], b[1]},
		{r[2], g[2], b[2]},
	}

	s := c.Inverse().MulVector(w)

	return c.Mul(diag3(s))
}

// XYZToSRGB converts CIE XYZ tristimulus values to linear sRGB, using the
// sRGB primaries and the D65 white point.
var XYZToSRGB = PrimariesToRGBToXYZ(0.3127, 0.3290, 0.64, 0.33, 0.30, 0.60, 0.15, 0.06).Inverse()

// Rec2100ToXYZ converts linear Rec.2100 (equivalently Rec.2020) RGB to CIE
// XYZ tristimulus values.
var Rec2100ToXYZ = PrimariesToRGBToXYZ(0.3127, 0.3290, 0.708, 0.292, 0.170, 0.797, 0.131, 0.046)

// XYZToRec2100 is the inverse of Rec2100ToXYZ.
var XYZToRec2100 = Rec2100ToXYZ.Inverse()

// SRGBGammaToLinear applies the sRGB electro-optical transfer function,
// converting a gamma-encoded sample in [0, 1] to linear light.
func SRGBGammaToLinear(u float32) float32 {
	if u <= 0.04045 {
		return u / 12.92
	}
	return math32.Pow((u+0.055)/1.055, 2.4)
}

// SRGBLinearToGamma applies the inverse of SRGBGammaToLinear.
func SRGBLinearToGamma(l float32) float32 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math32.Pow(l, 1/2.4) - 0.055
}

// GammaToLinear applies a simple power-law transfer function with the given
// exponent, as used for PNG images that declare a gAMA chunk without an
// sRGB or iCCP chunk.
func GammaToLinear(u, gamma float32) float32 {
	if u <= 0 {
		return 0
	}
	return math32.Pow(u, gamma)
}

// These are the SMPTE ST 2084 perceptual-quantizer constants
// shared by Rec2100PQGammaToLinear and Rec2100PQLinearToGamma.
const (
	pqM1 = 0.1593017578125
	pqM2 = 78.84375
	pqC1 = 0.8359375
	pqC2 = 18.8515625
	pqC3 = 18.6875
)

// Rec2100PQGammaToLinear converts a PQ-encoded sample (as used by Rec.2100
// HDR images) to scene-linear light, scaled so that 1.0 corresponds to
// 80 cd/m^2 (the scRGB reference white used elsewhere in this module).
func Rec2100PQGammaToLinear(n float32) float32 {
	nm2 := math32.Pow(n, 1/float32(pqM2))
	l := math32.Pow(math32.Max(nm2-pqC1, 0)/(pqC2-pqC3*nm2), 1/float32(pqM1))
	return l * 10000 / 80
}

// Rec2100PQLinearToGamma is the inverse of Rec2100PQGammaToLinear.
func Rec2100PQLinearToGamma(l float32) float32 {
	lm1 := math32.Pow(l*80/10000, pqM1)
	return math32.Pow((pqC1+pqC2*lm1)/(1+pqC3*lm1), pqM2)
}
