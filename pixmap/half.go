package pixmap

import "github.com/x448/float16"

// Half is an IEEE 754 binary16 value, the storage type for ScRgbaF16
// channels.
type Half = float16.Float16

// FromFloat32 rounds f to the nearest representable Half.
func FromFloat32(f float32) Half {
	return float16.Fromfloat32(f)
}
