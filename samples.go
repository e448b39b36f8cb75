package pcmwav

import (
	"encoding/binary"
	"fmt"

	"github.com/go-audio/audio"
)

// DecodeSamples converts the payload copied by Load into integer samples.
// 8-bit samples keep their unsigned 0-255 range, wider formats are sign
// extended. Unlike Load, it allocates the returned buffer.
func DecodeSamples(info PreloadedInfo, raw []byte) (*audio.IntBuffer, error) {
	n := info.TotalByteLength()
	if len(raw) < n {
		return nil, fmt.Errorf("%w: %d bytes of PCM data, need %d", ErrTruncatedStream, len(raw), n)
	}

	width := info.Format.ByteWidth()
	if width == 0 {
		return nil, &FieldError{Field: FieldBitsPerSample, Value: 0}
	}

	buf := &audio.IntBuffer{
		Format:         info.AudioFormat(),
		Data:           make([]int, n/width),
		SourceBitDepth: info.Format.BitDepth(),
	}

	for i := range buf.Data {
		buf.Data[i] = decodeSample(info.Format, raw[i*width:(i+1)*width])
	}

	return buf, nil
}

// EncodeSamples packs buf into raw PCM bytes suitable for SaveInfo.Data.
// Values are truncated to the sample width.
func EncodeSamples(buf *audio.IntBuffer, format Format) ([]byte, error) {
	if buf == nil {
		return nil, errNilBuffer
	}

	width := format.ByteWidth()
	if width == 0 {
		return nil, &FieldError{Field: FieldBitsPerSample, Value: 0}
	}

	out := make([]byte, len(buf.Data)*width)
	for i, v := range buf.Data {
		encodeSample(format, out[i*width:(i+1)*width], v)
	}

	return out, nil
}

// NOTE: WAV PCM data is stored using little-endian; 8bit values are unsigned.
func decodeSample(format Format, b []byte) int {
	switch format {
	case FormatU8:
		return int(b[0])
	case FormatS16LSB:
		return int(int16(binary.LittleEndian.Uint16(b)))
	case FormatS24LSB:
		return int(audio.Int24LETo32(b))
	default:
		return int(int32(binary.LittleEndian.Uint32(b)))
	}
}

func encodeSample(format Format, dst []byte, v int) {
	switch format {
	case FormatU8:
		dst[0] = uint8(v)
	case FormatS16LSB:
		binary.LittleEndian.PutUint16(dst, uint16(int16(v)))
	case FormatS24LSB:
		copy(dst, audio.Int32toInt24LEBytes(int32(v)))
	default:
		binary.LittleEndian.PutUint32(dst, uint32(int32(v)))
	}
}
