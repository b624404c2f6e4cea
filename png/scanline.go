package png

import "fmt"

const (
	filterNone = iota
	filterSub
	filterUp
	filterAverage
	filterPaeth
)

func paethPredictor(a, b, c int) int {
	p := a + b - c
	pa := abs(p - a)
	pb := abs(p - b)
	pc := abs(p - c)
	if pa <= pb && pa <= pc {
		return a
	}
	if pb <= pc {
		return b
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func unfilterLineSub(line []byte, bpp int) {
	for i := bpp; i < len(line); i++ {
		line[i] += line[i-bpp]
	}
}

func unfilterLineUp(line, prev []byte) {
	for i := range line {
		line[i] += prev[i]
	}
}

func unfilterLineAverage(line, prev []byte, bpp int) {
	for i := range line {
		var a, b int
		if i >= bpp {
			a = int(line[i-bpp])
		}
		b = int(prev[i])
		line[i] += byte((a + b) / 2)
	}
}

func unfilterLinePaeth(line, prev []byte, bpp int) {
	for i := range line {
		var a, b, c int
		if i >= bpp {
			a = int(line[i-bpp])
			c = int(prev[i-bpp])
		}
		b = int(prev[i])
		line[i] += byte(paethPredictor(a, b, c))
	}
}

// unfilterLine reverses the PNG filter byte at the head of line in place
// (line[1:] holds bytesPerLine filtered bytes). prev is the previous
// row's already-unfiltered bytes (all zero for the first row).
func unfilterLine(filterType byte, line, prev []byte, bpp int) error {
	data := line[1:]
	switch filterType {
	case filterNone:
	case filterSub:
		unfilterLineSub(data, bpp)
	case filterUp:
		unfilterLineUp(data, prev)
	case filterAverage:
		unfilterLineAverage(data, prev, bpp)
	case filterPaeth:
		unfilterLinePaeth(data, prev, bpp)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFilterType, filterType)
	}
	return nil
}

// unfilterLines reverses the per-row adaptive filtering of imageData in
// place, row by row. imageData must be exactly stride*height bytes, each
// row prefixed with its filter-type byte.
func (d *Decoder) unfilterLines(imageData []byte) error {
	prev := make([]byte, d.bytesPerLine)
	for y := 0; y < d.height; y++ {
		row := imageData[y*d.stride : (y+1)*d.stride]
		if err := unfilterLine(row[0], row, prev, d.bytesPerPixel); err != nil {
			return err
		}
		prev = row[1:]
	}
	return nil
}
