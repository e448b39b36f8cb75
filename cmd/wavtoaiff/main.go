// This tool converts a canonical PCM wav file into an identical aiff file and
// stores it in the same folder as the source.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/cwbudde/pcmwav"
	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
)

var errMissingPath = errors.New("you must set the -path flag")

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	flagSet := flag.NewFlagSet("wavtoaiff", flag.ContinueOnError)

	sourcePath := flagSet.String("path", "", "The path to the wav file to convert to aiff")
	verbose := flagSet.Bool("v", false, "log why a file is rejected")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *sourcePath == "" {
		return errMissingPath
	}

	file, err := os.Open(*sourcePath)
	if err != nil {
		return fmt.Errorf("invalid path %s: %w", *sourcePath, err)
	}
	defer file.Close()

	loader := &pcmwav.Loader{}
	if *verbose {
		loader.Logger = log.New(os.Stderr, "wavtoaiff: ", 0)
	}

	info, err := loader.Preload(file)
	if err != nil {
		return fmt.Errorf("invalid WAV file: %w", err)
	}

	raw := make([]byte, info.TotalByteLength())

	err = loader.Load(file, info, raw)
	if err != nil {
		return err
	}

	intBuf, err := pcmwav.DecodeSamples(info, raw)
	if err != nil {
		return err
	}

	toSigned(intBuf)

	outPath := aiffPath(*sourcePath)

	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer outFile.Close()

	encoder := aiff.NewEncoder(outFile, int(info.SampleRate), info.Format.BitDepth(), int(info.NumChannels))

	err = encoder.Write(intBuf)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", outPath, err)
	}

	err = encoder.Close()
	if err != nil {
		return fmt.Errorf("failed to close %s: %w", outPath, err)
	}

	fmt.Fprintf(out, "Wav file converted to %s\n", outPath)

	return nil
}

// toSigned recenters 8-bit wav samples, which are unsigned, on zero as aiff
// expects.
func toSigned(buf *audio.IntBuffer) {
	if buf.SourceBitDepth != 8 {
		return
	}

	for i, v := range buf.Data {
		buf.Data[i] = v - 128
	}
}

func aiffPath(sourcePath string) string {
	return sourcePath[:len(sourcePath)-len(filepath.Ext(sourcePath))] + ".aif"
}
