package colorspace

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float32) bool {
	return math.Abs(float64(a-b)) < float64(tol)
}

func TestMatrix3Identity(t *testing.T) {
	id := Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	v := [3]float32{1, 2, 3}
	if got := id.MulVector(v); got != v {
		t.Errorf("identity.MulVector(v) = %v, want %v", got, v)
	}
}

func TestMatrix3InverseRoundTrip(t *testing.T) {
	m := PrimariesToRGBToXYZ(0.3127, 0.3290, 0.64, 0.33, 0.30, 0.60, 0.15, 0.06)
	inv := m.Inverse()
	roundTrip := m.Mul(inv)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := float32(0)
			if i == j {
				want = 1
			}
			if !almostEqual(roundTrip[i][j], want, 1e-4) {
				t.Errorf("m*m^-1 [%d][%d] = %v, want %v", i, j, roundTrip[i][j], want)
			}
		}
	}
}

func TestXYZToSRGBWhitePoint(t *testing.T) {
	// D65 white in XYZ should map close to (1, 1, 1) in linear sRGB.
	white := [3]float32{0.9505, 1.0, 1.0890}
	rgb := XYZToSRGB.MulVector(white)
	for i, c := range rgb {
		if !almostEqual(c, 1, 0.01) {
			t.Errorf("XYZToSRGB(D65 white)[%d] = %v, want ~1", i, c)
		}
	}
}

func TestSRGBGammaRoundTrip(t *testing.T) {
	for _, u := range []float32{0, 0.01, 0.04045, 0.2, 0.5, 0.9, 1.0} {
		l := SRGBGammaToLinear(u)
		back := SRGBLinearToGamma(l)
		if !almostEqual(back, u, 1e-4) {
			t.Errorf("round trip of %v: got %v", u, back)
		}
	}
}

func TestSRGBGammaToLinearMonotonic(t *testing.T) {
	prev := float32(-1)
	for i := 0; i <= 255; i++ {
		u := float32(i) / 255
		l := SRGBGammaToLinear(u)
		if l < prev {
			t.Fatalf("SRGBGammaToLinear not monotonic at u=%v: %v < %v", u, l, prev)
		}
		prev = l
	}
	if SRGBGammaToLinear(0) != 0 {
		t.Errorf("SRGBGammaToLinear(0) = %v, want 0", SRGBGammaToLinear(0))
	}
	if !almostEqual(SRGBGammaToLinear(1), 1, 1e-5) {
		t.Errorf("SRGBGammaToLinear(1) = %v, want 1", SRGBGammaToLinear(1))
	}
}

func TestGammaToLinear(t *testing.T) {
	if got := GammaToLinear(1, 2.2); !almostEqual(got, 1, 1e-5) {
		t.Errorf("GammaToLinear(1, 2.2) = %v, want 1", got)
	}
	if got := GammaToLinear(0, 2.2); got != 0 {
		t.Errorf("GammaToLinear(0, 2.2) = %v, want 0", got)
	}
}

func TestRec2100PQRoundTrip(t *testing.T) {
	for _, n := range []float32{0.01, 0.1, 0.3, 0.5, 0.75, 0.99} {
		l := Rec2100PQGammaToLinear(n)
		back := Rec2100PQLinearToGamma(l)
		if !almostEqual(back, n, 1e-3) {
			t.Errorf("PQ round trip of %v: got %v", n, back)
		}
	}
}

func TestRec2100PQReferenceWhite(t *testing.T) {
	// PQ code value for 80 cd/m^2 should decode to linear 1.0 in scRGB units.
	n := Rec2100PQLinearToGamma(1.0)
	l := Rec2100PQGammaToLinear(n)
	if !almostEqual(l, 1.0, 1e-3) {
		t.Errorf("PQ(80 cd/m^2) round trip = %v, want ~1.0", l)
	}
}
