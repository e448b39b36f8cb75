package pcmwav

import (
	"encoding/binary"
	"fmt"
	"io"
	"log"

	"github.com/go-audio/riff"
)

// Loader reads canonical PCM WAV streams.
// The zero value is ready to use and doesn't log.
type Loader struct {
	// Logger, when set, receives the reason of every failed Preload or Load.
	// It never changes the returned error.
	Logger *log.Logger
}

// Preload parses and validates the header of r using a silent Loader.
func Preload(r io.Reader) (PreloadedInfo, error) {
	var l Loader

	return l.Preload(r)
}

// Load copies the PCM payload described by info from r into buf using a
// silent Loader.
func Load(r io.Reader, info PreloadedInfo, buf []byte) error {
	var l Loader

	return l.Load(r, info, buf)
}

// Preload reads the 44 byte header from r and returns the stream
// description. r is left positioned at the first payload byte.
// It stops at the first field that doesn't match the canonical layout.
func (l *Loader) Preload(r io.Reader) (PreloadedInfo, error) {
	info, err := readHeader(r)
	if err != nil {
		l.logf("preload: %v", err)

		return PreloadedInfo{}, err
	}

	return info, nil
}

// Load reads exactly info.TotalByteLength() bytes from r into the start of
// buf. r must be positioned where Preload left it.
//
// Load panics if buf is shorter than info.TotalByteLength(): sizing the
// buffer is the caller's job.
func (l *Loader) Load(r io.Reader, info PreloadedInfo, buf []byte) error {
	n := info.TotalByteLength()
	if len(buf) < n {
		panic(fmt.Sprintf("pcmwav: Load buffer holds %d bytes, payload needs %d", len(buf), n))
	}

	_, err := io.ReadFull(r, buf[:n])
	if err != nil {
		err = readError("PCM data", err)
		l.logf("load: %v", err)

		return err
	}

	return nil
}

func (l *Loader) logf(format string, args ...any) {
	if l == nil || l.Logger == nil {
		return
	}

	l.Logger.Printf(format, args...)
}

func readHeader(r io.Reader) (PreloadedInfo, error) {
	err := expectID(r, riff.RiffID, "missing RIFF header")
	if err != nil {
		return PreloadedInfo{}, err
	}

	// the RIFF chunk size isn't checked against the stream length
	_, err = io.CopyN(io.Discard, r, 4)
	if err != nil {
		return PreloadedInfo{}, readError("RIFF chunk size", err)
	}

	err = expectID(r, riff.WavFormatID, "missing WAVE identifier")
	if err != nil {
		return PreloadedInfo{}, err
	}

	err = expectID(r, riff.FmtID, "missing fmt header")
	if err != nil {
		return PreloadedInfo{}, err
	}

	var fmtSize uint32

	err = binary.Read(r, binary.LittleEndian, &fmtSize)
	if err != nil {
		return PreloadedInfo{}, readError("fmt chunk size", err)
	}

	if fmtSize != pcmFmtChunkSize {
		return PreloadedInfo{}, unsupportedFormat("not PCM", fmtSize)
	}

	fmtChunk, err := decodeFmtChunk(r)
	if err != nil {
		return PreloadedInfo{}, err
	}

	format, err := fmtChunk.validate()
	if err != nil {
		return PreloadedInfo{}, err
	}

	// no other chunk may sit between fmt and data
	err = expectID(r, riff.DataFormatID, "missing data header")
	if err != nil {
		return PreloadedInfo{}, err
	}

	var dataSize uint32

	err = binary.Read(r, binary.LittleEndian, &dataSize)
	if err != nil {
		return PreloadedInfo{}, readError("data chunk size", err)
	}

	frameSize := uint32(fmtChunk.BlockAlign)
	if dataSize%frameSize != 0 {
		return PreloadedInfo{}, &FieldError{Field: FieldSubchunk2Size, Value: int64(dataSize)}
	}

	return PreloadedInfo{
		NumChannels: fmtChunk.NumChannels,
		SampleRate:  fmtChunk.SampleRate,
		Format:      format,
		NumSamples:  dataSize / frameSize,
	}, nil
}

func expectID(r io.Reader, want [4]byte, reason string) error {
	var id [4]byte

	_, err := io.ReadFull(r, id[:])
	if err != nil {
		return readError(fmt.Sprintf("%q identifier", want[:]), err)
	}

	if id != want {
		return malformedHeader(reason, id)
	}

	return nil
}
