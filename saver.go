package pcmwav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// Save writes info as a canonical PCM WAV stream: a 44 byte header followed
// by info.Data verbatim.
//
// info isn't validated (see SaveInfo.Validate). Fields wider than their
// header slots are truncated and a Data length that isn't a whole number of
// frames is written as is. The only errors are write failures from w,
// which stay reachable with errors.Is.
func Save(w io.Writer, info SaveInfo) error {
	e := &leWriter{w: w}

	// riff ID
	err := e.AddLE(riff.RiffID)
	if err != nil {
		return err
	}
	// file size minus the 8 bytes of the RIFF chunk header
	err = e.AddLE(uint32(dataChunkOffset + len(info.Data)))
	if err != nil {
		return fmt.Errorf("error encoding the RIFF chunk size - %w", err)
	}
	// wave headers
	err = e.AddLE(riff.WavFormatID)
	if err != nil {
		return err
	}

	err = e.writeFmtChunk(newFmtChunk(info.NumChannels, info.SampleRate, info.Format))
	if err != nil {
		return err
	}

	// sound header
	err = e.AddLE(riff.DataFormatID)
	if err != nil {
		return fmt.Errorf("error encoding sound header %w", err)
	}

	err = e.AddLE(uint32(len(info.Data)))
	if err != nil {
		return fmt.Errorf("%w when writing wav data chunk size header", err)
	}

	return e.AddRaw(info.Data)
}

// leWriter tracks the bytes written to the sink.
type leWriter struct {
	w            io.Writer
	WrittenBytes int
}

// AddLE serializes and adds the passed value using little endian.
func (e *leWriter) AddLE(src any) error {
	e.WrittenBytes += binary.Size(src)

	err := binary.Write(e.w, binary.LittleEndian, src)
	if err != nil {
		return fmt.Errorf("failed to write little endian: %w", err)
	}

	return nil
}

// AddRaw writes b unchanged.
func (e *leWriter) AddRaw(b []byte) error {
	if len(b) == 0 {
		return nil
	}

	n, err := e.w.Write(b)
	e.WrittenBytes += n

	if err != nil {
		return fmt.Errorf("failed to write PCM data: %w", err)
	}

	return nil
}

func (e *leWriter) writeFmtChunk(chunk *fmtChunk) error {
	err := e.AddLE(riff.FmtID)
	if err != nil {
		return err
	}

	err = e.AddLE(uint32(pcmFmtChunkSize))
	if err != nil {
		return err
	}

	err = e.AddLE(chunk.FormatTag)
	if err != nil {
		return err
	}

	err = e.AddLE(chunk.NumChannels)
	if err != nil {
		return fmt.Errorf("error encoding the number of channels - %w", err)
	}

	err = e.AddLE(chunk.SampleRate)
	if err != nil {
		return fmt.Errorf("error encoding the sample rate - %w", err)
	}

	err = e.AddLE(chunk.AvgBytesPerSec)
	if err != nil {
		return fmt.Errorf("error encoding the avg bytes per sec - %w", err)
	}

	err = e.AddLE(chunk.BlockAlign)
	if err != nil {
		return err
	}

	err = e.AddLE(chunk.BitsPerSample)
	if err != nil {
		return fmt.Errorf("error encoding bits per sample - %w", err)
	}

	return nil
}
