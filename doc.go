// Package pcmwav reads and writes canonical PCM WAV streams.
//
// Only the 44-byte canonical layout is accepted: a RIFF/WAVE descriptor,
// a 16-byte integer PCM fmt chunk and a data chunk, in that order, with
// 8, 16, 24 or 32-bit samples, 1 to 16 channels and sample rates up to
// 192 kHz. Anything else is rejected with one of the sentinel errors
// (ErrMalformedHeader, ErrUnsupportedFormat, ErrInvalidField,
// ErrTruncatedStream).
//
// Reading is a two step process:
//
//   - Preload parses and validates the header and returns a PreloadedInfo.
//   - Load copies the raw sample bytes into a buffer the caller sized with
//     PreloadedInfo.TotalByteLength.
//
// Save writes a SaveInfo back out in a single pass.
//
// The codec never allocates buffers for audio payloads. DecodeSamples and
// EncodeSamples are optional helpers converting between raw PCM bytes and
// go-audio integer buffers.
package pcmwav
