package pcmwav

import "fmt"

// Format is the sample encoding of a PCM payload.
type Format uint8

const (
	// FormatU8 is 8-bit unsigned PCM.
	FormatU8 Format = iota + 1
	// FormatS16LSB is 16-bit signed little-endian PCM.
	FormatS16LSB
	// FormatS24LSB is 24-bit signed little-endian PCM, packed in 3 bytes.
	FormatS24LSB
	// FormatS32LSB is 32-bit signed little-endian PCM.
	FormatS32LSB
)

// ByteWidth returns the number of bytes used by a single sample.
// It returns 0 for values outside the defined formats.
func (f Format) ByteWidth() int {
	switch f {
	case FormatU8:
		return 1
	case FormatS16LSB:
		return 2
	case FormatS24LSB:
		return 3
	case FormatS32LSB:
		return 4
	default:
		return 0
	}
}

// BitDepth returns the bits_per_sample value stored in the fmt chunk.
func (f Format) BitDepth() int {
	return f.ByteWidth() * 8
}

// String implements the Stringer interface.
func (f Format) String() string {
	switch f {
	case FormatU8:
		return "8-bit unsigned"
	case FormatS16LSB:
		return "16-bit little-endian signed"
	case FormatS24LSB:
		return "24-bit little-endian signed"
	case FormatS32LSB:
		return "32-bit little-endian signed"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// FormatFromBitDepth maps a bits_per_sample value to its Format.
func FormatFromBitDepth(bitDepth int) (Format, error) {
	switch bitDepth {
	case 8:
		return FormatU8, nil
	case 16:
		return FormatS16LSB, nil
	case 24:
		return FormatS24LSB, nil
	case 32:
		return FormatS32LSB, nil
	default:
		return 0, &FieldError{Field: FieldBitsPerSample, Value: int64(bitDepth)}
	}
}
