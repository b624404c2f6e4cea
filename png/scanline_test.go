package png

import "testing"

func TestPaethPredictor(t *testing.T) {
	cases := []struct {
		a, b, c, want int
	}{
		{0, 0, 0, 0},
		{10, 20, 0, 20}, // p=30: pa=20, pb=10, pc=30 -> b
		{0, 0, 10, 0},   // p=-10: pa=10, pb=10, pc=20 -> tie favors a
		{10, 10, 10, 10},
	}
	for _, tc := range cases {
		if got := paethPredictor(tc.a, tc.b, tc.c); got != tc.want {
			t.Errorf("paethPredictor(%d,%d,%d) = %d, want %d", tc.a, tc.b, tc.c, got, tc.want)
		}
	}
}

func TestUnfilterLineNone(t *testing.T) {
	line := []byte{filterNone, 1, 2, 3, 4}
	prev := make([]byte, 4)
	if err := unfilterLine(line[0], line, prev, 1); err != nil {
		t.Fatalf("unfilterLine: %v", err)
	}
	want := []byte{1, 2, 3, 4}
	for i, v := range want {
		if line[1+i] != v {
			t.Errorf("byte %d = %d, want %d", i, line[1+i], v)
		}
	}
}

func TestUnfilterLineSubRoundTrip(t *testing.T) {
	raw := []byte{10, 20, 30, 40}
	bpp := 1

	filtered := make([]byte, len(raw))
	copy(filtered, raw)
	for i := len(filtered) - 1; i >= bpp; i-- {
		filtered[i] -= filtered[i-bpp]
	}

	line := append([]byte{filterSub}, filtered...)
	prev := make([]byte, len(raw))
	if err := unfilterLine(line[0], line, prev, bpp); err != nil {
		t.Fatalf("unfilterLine: %v", err)
	}
	for i, v := range raw {
		if line[1+i] != v {
			t.Errorf("byte %d = %d, want %d", i, line[1+i], v)
		}
	}
}

func TestUnfilterLineUpRoundTrip(t *testing.T) {
	prevRaw := []byte{5, 6, 7, 8}
	raw := []byte{10, 20, 30, 40}

	filtered := make([]byte, len(raw))
	for i := range raw {
		filtered[i] = raw[i] - prevRaw[i]
	}

	line := append([]byte{filterUp}, filtered...)
	if err := unfilterLine(line[0], line, prevRaw, 1); err != nil {
		t.Fatalf("unfilterLine: %v", err)
	}
	for i, v := range raw {
		if line[1+i] != v {
			t.Errorf("byte %d = %d, want %d", i, line[1+i], v)
		}
	}
}

func TestUnfilterLineUnknownFilterType(t *testing.T) {
	line := []byte{99, 1, 2, 3}
	prev := make([]byte, 3)
	err := unfilterLine(line[0], line, prev, 1)
	if err == nil {
		t.Fatal("expected an error for an unknown filter type")
	}
}
