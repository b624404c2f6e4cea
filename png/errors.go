// Package png decodes a restricted subset of the PNG format — single
// image, 8 or 16 bit depth, greyscale or color, with or without alpha, no
// interlacing, no palette — directly into linear premultiplied scRGB
// half-float pixmaps.
package png

import "errors"

// Parse errors returned by Decode and NewDecoder. Every recoverable
// decoding failure is one of these sentinel values, wrapped with
// additional context via fmt.Errorf's %w verb; callers can test for a
// specific failure with errors.Is.
var (
	ErrInvalidSignature          = errors.New("png: invalid file signature")
	ErrInvalidChunkLength        = errors.New("png: chunk extends beyond file")
	ErrMissingIHDR               = errors.New("png: missing IHDR chunk")
	ErrUnsupportedFeature        = errors.New("png: unsupported feature")
	ErrDimensionTooLarge         = errors.New("png: image dimension too large")
	ErrInvalidGamma              = errors.New("png: gamma value must not be zero")
	ErrInvalidRenderingIntent    = errors.New("png: invalid sRGB rendering intent")
	ErrUnknownFilterType         = errors.New("png: unknown scanline filter type")
	ErrDecompressionSizeMismatch = errors.New("png: decompressed data has unexpected size")
	ErrStringNotNullTerminated   = errors.New("png: string is not null terminated")
)
