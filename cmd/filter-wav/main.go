// Command filter-wav smooths every channel of a WAV recording with a 1€
// filter. It is meant for auditioning filter tuning on tracker signals
// captured as PCM, where each channel is one axis.
//
// Usage:
//
//	filter-wav -mincutoff 1 -beta 0.01 input.wav output.wav
//	filter-wav -v -dcutoff 2 head.wav head_smoothed.wav
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	polymouse "github.com/tphakala/go-polymouse"
	"go.uber.org/zap"
)

const (
	// Frames per processing chunk
	bufferSize = 8192

	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// Conversion constants
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	// CLI defaults
	defaultMinCutoff = 1.0
	defaultBeta      = 0.0
	defaultDCutoff   = 1.0
	minRequiredArgs  = 2

	// WAV audio format code for integer PCM
	wavFormatPCM = 1
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "filter-wav:", err)
		os.Exit(1)
	}
}

func run() error {
	minCutoff := flag.Float64("mincutoff", defaultMinCutoff, "Minimum cutoff frequency in Hz")
	beta := flag.Float64("beta", defaultBeta, "Cutoff slope per unit of signal speed")
	dcutoff := flag.Float64("dcutoff", defaultDCutoff, "Derivative cutoff frequency in Hz")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}

	params := polymouse.OneEuroParams{
		MinCutoff:        float32(*minCutoff),
		Beta:             float32(*beta),
		DerivativeCutoff: float32(*dcutoff),
	}
	if err := params.Validate(); err != nil {
		return err
	}

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		logger = l
	}
	defer func() { _ = logger.Sync() }()

	start := time.Now()
	stats, err := filterWAV(args[0], args[1], params, logger)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Filtered %s -> %s\n", filepath.Base(args[0]), filepath.Base(args[1]))
	fmt.Printf("  %d Hz, %d channels, %d-bit\n", stats.rate, stats.channels, stats.bitDepth)
	fmt.Printf("  %d frames in %.2fs\n", stats.frames, elapsed.Seconds())
	return nil
}
