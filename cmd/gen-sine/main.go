package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/cwbudde/pcmwav"
	"github.com/go-audio/audio"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

var errNegativeLength = errors.New("length can't be negative")

func run(args []string) error {
	flagSet := flag.NewFlagSet("gen-sine", flag.ContinueOnError)

	output := flagSet.String("output", "output.wav", "filename to write to")
	frequency := flagSet.Float64("frequency", 440, "frequency in hertz to generate")
	length := flagSet.Float64("length", 5, "length in seconds of output file")
	sampleRate := flagSet.Int("rate", 48000, "sample rate in hertz")
	bitDepth := flagSet.Int("bits", 16, "bits per sample (8, 16, 24 or 32)")
	channels := flagSet.Int("channels", 1, "number of channels")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *length < 0 {
		return fmt.Errorf("%w: %f", errNegativeLength, *length)
	}

	format, err := pcmwav.FormatFromBitDepth(*bitDepth)
	if err != nil {
		return err
	}

	info := pcmwav.SaveInfo{
		NumChannels: uint16(*channels),
		SampleRate:  uint32(*sampleRate),
		Format:      format,
	}

	err = info.Validate()
	if err != nil {
		return err
	}

	log.Printf("generating a %f sec sine wav at %f hz", *length, *frequency)

	numChans := int(info.NumChannels)
	numFrames := int(math.Round(float64(*sampleRate) * *length))
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChans, SampleRate: *sampleRate},
		Data:           make([]int, numFrames*numChans),
		SourceBitDepth: *bitDepth,
	}

	for i := range numFrames {
		fv := math.Sin(float64(i) / float64(*sampleRate) * *frequency * 2 * math.Pi)

		v := scaleSample(fv, format)
		for c := range numChans {
			buf.Data[i*numChans+c] = v
		}
	}

	info.Data, err = pcmwav.EncodeSamples(buf, format)
	if err != nil {
		return err
	}

	file, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", *output, err)
	}
	defer file.Close()

	err = pcmwav.Save(file, info)
	if err != nil {
		return err
	}

	return file.Close()
}

// scaleSample maps a [-1, 1] value onto the integer range of format.
func scaleSample(v float64, format pcmwav.Format) int {
	peak := math.Exp2(float64(format.BitDepth()-1)) - 1
	if format == pcmwav.FormatU8 {
		return int(math.Round(v*peak)) + 128
	}

	return int(math.Round(v * peak))
}
