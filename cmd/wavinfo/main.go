// This tool prints the header of the passed canonical PCM wav file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cwbudde/pcmwav"
)

const missingPathMessage = "You must pass the path of the file to inspect"

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

var errMissingPath = errors.New("missing path argument")

func run(args []string, out io.Writer) error {
	flagSet := flag.NewFlagSet("wavinfo", flag.ContinueOnError)
	verbose := flagSet.Bool("v", false, "log why a file is rejected")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if flagSet.NArg() < 1 {
		return errMissingPath
	}

	file, err := os.Open(flagSet.Arg(0))
	if err != nil {
		return err
	}
	defer file.Close()

	loader := &pcmwav.Loader{}
	if *verbose {
		loader.Logger = log.New(os.Stderr, "wavinfo: ", 0)
	}

	info, err := loader.Preload(file)
	if err != nil {
		return fmt.Errorf("%s: %w", file.Name(), err)
	}

	fmt.Fprintf(out, "Channels: %d\n", info.NumChannels)
	fmt.Fprintf(out, "SampleRate: %d\n", info.SampleRate)
	fmt.Fprintf(out, "Format: %s\n", info.Format)
	fmt.Fprintf(out, "BitDepth: %d\n", info.Format.BitDepth())
	fmt.Fprintf(out, "BlockAlign: %d\n", info.BlockAlign())
	fmt.Fprintf(out, "ByteRate: %d\n", info.ByteRate())
	fmt.Fprintf(out, "Frames: %d\n", info.NumSamples)
	fmt.Fprintf(out, "DataBytes: %d\n", info.TotalByteLength())
	fmt.Fprintf(out, "Duration: %s\n", info.Duration())

	return nil
}
