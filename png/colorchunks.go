package png

import (
	"encoding/binary"
	"fmt"

	"glyphcore.dev/core/colorspace"
)

// applyCHRM builds the RGB-to-sRGB matrix implied by a cHRM chunk's
// white-point and primary chromaticities, each stored as a uint32 scaled
// by 100000.
func applyCHRM(d *Decoder, data []byte) error {
	if len(data) < 32 {
		return fmt.Errorf("%w: cHRM chunk too short", ErrUnsupportedFeature)
	}
	v := func(i int) float32 {
		return float32(binary.BigEndian.Uint32(data[i*4:i*4+4])) / 100000
	}

	toXYZ := colorspace.PrimariesToRGBToXYZ(v(0), v(1), v(2), v(3), v(4), v(5), v(6), v(7))
	d.colorToSRGB = colorspace.XYZToSRGB.Mul(toXYZ)
	d.generateSRGBTransferFunction()
	return nil
}

// applyGAMA builds a plain power-law transfer function from a gAMA
// chunk's encoded gamma value (a uint32 scaled by 100000, representing
// 1/gamma as PNG defines it).
func applyGAMA(d *Decoder, data []byte) error {
	if len(data) < 4 {
		return fmt.Errorf("%w: gAMA chunk too short", ErrInvalidGamma)
	}
	gamma := float32(binary.BigEndian.Uint32(data[0:4])) / 100000
	if gamma == 0 {
		return fmt.Errorf("%w", ErrInvalidGamma)
	}
	d.generateGammaTransferFunction(1 / gamma)
	return nil
}

// applySRGB resets to the default identity color matrix and sRGB transfer
// function; present only to validate the rendering intent field and to
// override any cHRM/gAMA/iCCP chunk that came before it.
func applySRGB(d *Decoder, data []byte) error {
	if len(data) < 1 {
		return fmt.Errorf("%w: sRGB chunk too short", ErrInvalidRenderingIntent)
	}
	if data[0] > 3 {
		return fmt.Errorf("%w: %d", ErrInvalidRenderingIntent, data[0])
	}
	d.colorToSRGB = colorspace.Matrix3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	d.generateSRGBTransferFunction()
	return nil
}

// applyICCP recognizes only the well-known "ITUR_2100_PQ_FULL" profile
// name, for which the rule is to discard the embedded ICC profile
// entirely and instead rebuild the conversion matrix and transfer
// function from the known Rec.2100 primaries and PQ curve. Any other
// profile name is left unhandled, matching the original decoder: the
// interpretation established so far is kept unchanged.
func applyICCP(d *Decoder, data []byte) error {
	name, err := readNullTerminatedString(data)
	if err != nil {
		return err
	}
	if name == "ITUR_2100_PQ_FULL" {
		d.colorToSRGB = colorspace.XYZToSRGB.Mul(colorspace.Rec2100ToXYZ)
		d.generateRec2100TransferFunction()
	}
	return nil
}

func readNullTerminatedString(data []byte) (string, error) {
	for i, b := range data {
		if b == 0 {
			return string(data[:i]), nil
		}
	}
	return "", ErrStringNotNullTerminated
}
