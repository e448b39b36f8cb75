package pcmwav

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrMalformedHeader is returned when a chunk identifier doesn't match
	// the canonical layout.
	ErrMalformedHeader = errors.New("malformed WAV header")
	// ErrUnsupportedFormat is returned for valid RIFF/WAVE containers that
	// don't hold plain integer PCM.
	ErrUnsupportedFormat = errors.New("unsupported WAV format")
	// ErrInvalidField is returned when a numeric header field is out of range
	// or inconsistent with the fields it is derived from.
	ErrInvalidField = errors.New("invalid WAV header field")
	// ErrTruncatedStream is returned when the source ends before the
	// required bytes were read.
	ErrTruncatedStream = errors.New("truncated WAV stream")

	errNilBuffer = errors.New("can't encode a nil buffer")
)

// Header field names reported by FieldError.
const (
	FieldNumChannels   = "num_channels"
	FieldSampleRate    = "sample_rate"
	FieldBitsPerSample = "bits_per_sample"
	FieldByteRate      = "byte_rate"
	FieldBlockAlign    = "block_align"
	FieldSubchunk2Size = "subchunk2_size"
)

// FieldError reports the header field that failed validation.
// It matches ErrInvalidField with errors.Is.
type FieldError struct {
	Field string
	Value int64
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s = %d", ErrInvalidField, e.Field, e.Value)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidField
}

func malformedHeader(reason string, got [4]byte) error {
	return fmt.Errorf("%w: %s (found %q)", ErrMalformedHeader, reason, got[:])
}

func unsupportedFormat(reason string, value uint32) error {
	return fmt.Errorf("%w: %s (%d)", ErrUnsupportedFormat, reason, value)
}

// readError classifies a failed read. Running out of bytes is a truncated
// stream, anything else is the source's own failure.
func readError(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: reading %s: %w", ErrTruncatedStream, what, err)
	}

	return fmt.Errorf("failed to read %s: %w", what, err)
}
