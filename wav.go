package pcmwav

import (
	"fmt"
	"math"
	"time"

	"github.com/go-audio/audio"
)

const (
	// MaxChannels is the highest channel count accepted by the loader.
	MaxChannels = 16
	// MaxSampleRate is the highest sample rate, in Hz, accepted by the loader.
	MaxSampleRate = 192000
	// HeaderSize is the byte length of a canonical header, up to and
	// including the data chunk size field.
	HeaderSize = 44

	wavFormatPCM    = 1
	pcmFmtChunkSize = 16
	// offset of the data chunk header: RIFF descriptor (12) + fmt header (8)
	// + fmt body (16)
	dataChunkOffset = 36
)

// PreloadedInfo describes a stream whose header was validated by Preload.
type PreloadedInfo struct {
	NumChannels uint16
	SampleRate  uint32
	Format      Format
	// NumSamples is the number of sample frames in the data chunk.
	NumSamples uint32
}

// BlockAlign returns the byte length of one frame.
func (p PreloadedInfo) BlockAlign() int {
	return int(p.NumChannels) * p.Format.ByteWidth()
}

// ByteRate returns the number of payload bytes per second of audio.
func (p PreloadedInfo) ByteRate() int {
	return int(p.SampleRate) * p.BlockAlign()
}

// TotalByteLength returns the size of the PCM payload. Buffers passed to
// Load must be at least this long.
func (p PreloadedInfo) TotalByteLength() int {
	return int(p.NumSamples) * p.BlockAlign()
}

// Duration returns the play time of the payload.
func (p PreloadedInfo) Duration() time.Duration {
	if p.SampleRate == 0 {
		return 0
	}

	return time.Duration(p.NumSamples) * time.Second / time.Duration(p.SampleRate)
}

// AudioFormat returns the go-audio description of the stream.
func (p PreloadedInfo) AudioFormat() *audio.Format {
	return &audio.Format{
		NumChannels: int(p.NumChannels),
		SampleRate:  int(p.SampleRate),
	}
}

// String implements the Stringer interface.
func (p PreloadedInfo) String() string {
	return fmt.Sprintf("Format: WAVE - %d channels @ %d / %d bits - Duration: %f seconds",
		p.NumChannels, p.SampleRate, p.Format.BitDepth(), p.Duration().Seconds())
}

// SaveInfo describes the stream written by Save. Data holds interleaved raw
// PCM bytes in the layout given by Format; it is read but never retained.
type SaveInfo struct {
	NumChannels uint16
	SampleRate  uint32
	Format      Format
	Data        []byte
}

// Validate reports whether Save would produce a stream that Preload
// accepts. Save doesn't call it; validation is opt-in.
func (s SaveInfo) Validate() error {
	f := newFmtChunk(s.NumChannels, s.SampleRate, s.Format)
	if _, err := f.validate(); err != nil {
		return err
	}

	size := int64(len(s.Data))
	if size%int64(f.BlockAlign) != 0 || size > math.MaxUint32-dataChunkOffset {
		return &FieldError{Field: FieldSubchunk2Size, Value: size}
	}

	return nil
}
