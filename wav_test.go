package pcmwav

import (
	"errors"
	"testing"
	"time"
)

func TestPreloadedInfoDerivedValues(t *testing.T) {
	info := PreloadedInfo{NumChannels: 2, SampleRate: 48000, Format: FormatS24LSB, NumSamples: 24000}

	if got := info.BlockAlign(); got != 6 {
		t.Fatalf("BlockAlign()=%d, want 6", got)
	}

	if got := info.ByteRate(); got != 288000 {
		t.Fatalf("ByteRate()=%d, want 288000", got)
	}

	if got := info.TotalByteLength(); got != 144000 {
		t.Fatalf("TotalByteLength()=%d, want 144000", got)
	}

	if got := info.Duration(); got != 500*time.Millisecond {
		t.Fatalf("Duration()=%v, want 500ms", got)
	}

	f := info.AudioFormat()
	if f.NumChannels != 2 || f.SampleRate != 48000 {
		t.Fatalf("AudioFormat()=%+v", f)
	}

	want := "Format: WAVE - 2 channels @ 48000 / 24 bits - Duration: 0.500000 seconds"
	if got := info.String(); got != want {
		t.Fatalf("String()=%q, want %q", got, want)
	}
}

func TestPreloadedInfoDuration(t *testing.T) {
	tests := []struct {
		name string
		info PreloadedInfo
		want time.Duration
	}{
		{"zero value", PreloadedInfo{}, 0},
		{"44 frames at 44.1kHz", PreloadedInfo{NumChannels: 1, SampleRate: 44100, Format: FormatS16LSB, NumSamples: 44}, 997732 * time.Nanosecond},
		{"max frames at 1Hz", PreloadedInfo{NumChannels: 1, SampleRate: 1, Format: FormatU8, NumSamples: 1 << 31}, (1 << 31) * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.Duration(); got != tt.want {
				t.Fatalf("Duration()=%v, want %v", got, tt.want)
			}
		})
	}
}

func TestSaveInfoValidate(t *testing.T) {
	tests := []struct {
		name  string
		info  SaveInfo
		field string
	}{
		{"valid", SaveInfo{NumChannels: 2, SampleRate: 44100, Format: FormatS16LSB, Data: make([]byte, 8)}, ""},
		{"empty data", SaveInfo{NumChannels: 16, SampleRate: 192000, Format: FormatS32LSB}, ""},
		{"no channels", SaveInfo{SampleRate: 44100, Format: FormatS16LSB}, FieldNumChannels},
		{"17 channels", SaveInfo{NumChannels: 17, SampleRate: 44100, Format: FormatS16LSB}, FieldNumChannels},
		{"no rate", SaveInfo{NumChannels: 1, Format: FormatS16LSB}, FieldSampleRate},
		{"rate too high", SaveInfo{NumChannels: 1, SampleRate: 192001, Format: FormatS16LSB}, FieldSampleRate},
		{"unknown format", SaveInfo{NumChannels: 1, SampleRate: 8000}, FieldBitsPerSample},
		{"partial frame", SaveInfo{NumChannels: 2, SampleRate: 8000, Format: FormatS24LSB, Data: make([]byte, 9)}, FieldSubchunk2Size},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.info.Validate()
			if tt.field == "" {
				if err != nil {
					t.Fatalf("Validate()=%v, want nil", err)
				}

				return
			}

			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) || fieldErr.Field != tt.field {
				t.Fatalf("Validate()=%v, want a %s FieldError", err, tt.field)
			}
		})
	}
}

func TestFieldErrorMessage(t *testing.T) {
	err := &FieldError{Field: FieldSampleRate, Value: 0}

	want := "invalid WAV header field: sample_rate = 0"
	if err.Error() != want {
		t.Fatalf("Error()=%q, want %q", err.Error(), want)
	}
}
