package pcmwav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// testHeader mirrors the 44 byte canonical header field by field so tests
// can corrupt any single field.
type testHeader struct {
	RiffID        [4]byte
	RiffSize      uint32
	WaveID        [4]byte
	FmtID         [4]byte
	FmtSize       uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataID        [4]byte
	DataSize      uint32
}

func validTestHeader(numChannels uint16, sampleRate uint32, bitsPerSample uint16, dataSize uint32) testHeader {
	blockAlign := numChannels * bitsPerSample / 8

	return testHeader{
		RiffID:        [4]byte{'R', 'I', 'F', 'F'},
		RiffSize:      36 + dataSize,
		WaveID:        [4]byte{'W', 'A', 'V', 'E'},
		FmtID:         [4]byte{'f', 'm', 't', ' '},
		FmtSize:       16,
		AudioFormat:   1,
		NumChannels:   numChannels,
		SampleRate:    sampleRate,
		ByteRate:      sampleRate * uint32(blockAlign),
		BlockAlign:    blockAlign,
		BitsPerSample: bitsPerSample,
		DataID:        [4]byte{'d', 'a', 't', 'a'},
		DataSize:      dataSize,
	}
}

func (h testHeader) bytes() []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, h)

	return buf.Bytes()
}

// withPayload returns the header followed by payload.
func (h testHeader) withPayload(payload []byte) []byte {
	return append(h.bytes(), payload...)
}

// sequentialBytes returns n bytes counting up from 1 so misplaced copies show.
func sequentialBytes(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i + 1)
	}

	return out
}

// countingReader records how many bytes were consumed from r.
type countingReader struct {
	r    io.Reader
	read int
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.read += n

	return n, err
}

var errSinkBroken = errors.New("sink broken")

// failingWriter accepts limit bytes then fails every write.
type failingWriter struct {
	limit   int
	written int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	room := w.limit - w.written
	if room >= len(p) {
		w.written += len(p)

		return len(p), nil
	}

	if room < 0 {
		room = 0
	}

	w.written += room

	return room, errSinkBroken
}

var errSourceBroken = errors.New("source broken")

// brokenReader fails with errSourceBroken after serving data.
type brokenReader struct {
	data []byte
}

func (b *brokenReader) Read(p []byte) (int, error) {
	if len(b.data) == 0 {
		return 0, errSourceBroken
	}

	n := copy(p, b.data)
	b.data = b.data[n:]

	return n, nil
}
