package pcmwav

import (
	"io"

	"github.com/go-audio/riff"
)

// fmtChunk is the body of a 16-byte PCM fmt chunk.
type fmtChunk struct {
	FormatTag      uint16
	NumChannels    uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  uint16
}

// newFmtChunk derives the fmt chunk describing the passed stream layout.
// Values are truncated to the field widths without validation.
func newFmtChunk(numChannels uint16, sampleRate uint32, format Format) *fmtChunk {
	width := format.ByteWidth()

	return &fmtChunk{
		FormatTag:      wavFormatPCM,
		NumChannels:    numChannels,
		SampleRate:     sampleRate,
		AvgBytesPerSec: sampleRate * uint32(numChannels) * uint32(width),
		BlockAlign:     numChannels * uint16(width),
		BitsPerSample:  uint16(width * 8),
	}
}

// decodeFmtChunk reads the fmt body that follows a 16 byte size field.
// The format tag is checked before the remaining fields are read.
func decodeFmtChunk(r io.Reader) (*fmtChunk, error) {
	chunk := &riff.Chunk{
		ID:   riff.FmtID,
		Size: pcmFmtChunkSize,
		R:    io.LimitReader(r, pcmFmtChunkSize),
	}

	f := &fmtChunk{}

	err := chunk.ReadLE(&f.FormatTag)
	if err != nil {
		return nil, readError("wav format", err)
	}

	if f.FormatTag != wavFormatPCM {
		return nil, unsupportedFormat("not integer PCM", uint32(f.FormatTag))
	}

	err = chunk.ReadLE(&f.NumChannels)
	if err != nil {
		return nil, readError("channels", err)
	}

	err = chunk.ReadLE(&f.SampleRate)
	if err != nil {
		return nil, readError("sample rate", err)
	}

	err = chunk.ReadLE(&f.AvgBytesPerSec)
	if err != nil {
		return nil, readError("avg bytes/sec", err)
	}

	err = chunk.ReadLE(&f.BlockAlign)
	if err != nil {
		return nil, readError("block align", err)
	}

	err = chunk.ReadLE(&f.BitsPerSample)
	if err != nil {
		return nil, readError("bit depth", err)
	}

	return f, nil
}

// validate checks the fields in header order and returns the sample format.
func (f *fmtChunk) validate() (Format, error) {
	if f.NumChannels < 1 || f.NumChannels > MaxChannels {
		return 0, &FieldError{Field: FieldNumChannels, Value: int64(f.NumChannels)}
	}

	if f.SampleRate < 1 || f.SampleRate > MaxSampleRate {
		return 0, &FieldError{Field: FieldSampleRate, Value: int64(f.SampleRate)}
	}

	format, err := FormatFromBitDepth(int(f.BitsPerSample))
	if err != nil {
		return 0, err
	}

	// computed in 64 bits so that an overflowing product can't alias a
	// stored value
	width := uint64(format.ByteWidth())
	if uint64(f.AvgBytesPerSec) != uint64(f.SampleRate)*uint64(f.NumChannels)*width {
		return 0, &FieldError{Field: FieldByteRate, Value: int64(f.AvgBytesPerSec)}
	}

	if uint64(f.BlockAlign) != uint64(f.NumChannels)*width {
		return 0, &FieldError{Field: FieldBlockAlign, Value: int64(f.BlockAlign)}
	}

	return format, nil
}
