package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	polymouse "github.com/tphakala/go-polymouse"
	"go.uber.org/zap"
)

// wavInputInfo holds validated input file information.
type wavInputInfo struct {
	file     *os.File
	decoder  *wav.Decoder
	rate     int
	channels int
	bitDepth int
	format   *audio.Format
}

// openWAVInput opens and validates a WAV file, returning format information.
func openWAVInput(path string) (*wavInputInfo, error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	return &wavInputInfo{
		file:     inputFile,
		decoder:  decoder,
		rate:     format.SampleRate,
		channels: format.NumChannels,
		bitDepth: int(decoder.BitDepth),
		format:   format,
	}, nil
}

// Close closes the input file.
func (w *wavInputInfo) Close() error {
	return w.file.Close()
}

// filterStats summarizes a run.
type filterStats struct {
	rate     int
	channels int
	bitDepth int
	frames   int64
}

// channelFilters holds one 1€ filter per channel, all stepping at the
// sample interval of the recording.
type channelFilters struct {
	filters []*polymouse.OneEuroFilter[float64]
	dt      float64
	next    int // Channel of the next interleaved sample
}

func newChannelFilters(channels, rate int, p polymouse.OneEuroParams) *channelFilters {
	cf := &channelFilters{
		filters: make([]*polymouse.OneEuroFilter[float64], channels),
		dt:      1 / float64(rate),
	}
	for ch := range cf.filters {
		cf.filters[ch] = polymouse.NewOneEuroFilterFromParams[float64](p)
	}
	return cf
}

// process filters interleaved samples in place. Chunks need not hold whole
// frames; the channel position carries over to the next call.
func (cf *channelFilters) process(data []int, maxVal float64) {
	channels := len(cf.filters)
	for i, v := range data {
		y := cf.filters[cf.next].Filter(float64(v)/maxVal, cf.dt)
		data[i] = denormalize(y, maxVal)
		cf.next = (cf.next + 1) % channels
	}
}

// denormalize clamps y to [-1, 1] and scales it to an integer sample.
func denormalize(y, maxVal float64) int {
	y = min(max(y, -1), 1)
	return int(y * maxVal)
}

// getMaxValue returns the maximum sample value for the given bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// filterWAV reads inputPath, filters each channel and writes outputPath in
// the same format.
func filterWAV(inputPath, outputPath string, p polymouse.OneEuroParams, logger *zap.Logger) (stats *filterStats, err error) {
	input, err := openWAVInput(inputPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = input.Close() }()

	if input.channels < 1 || input.rate <= 0 {
		return nil, fmt.Errorf("unsupported WAV format: %d channels at %d Hz", input.channels, input.rate)
	}
	logger.Debug("input format",
		zap.Int("rate", input.rate),
		zap.Int("channels", input.channels),
		zap.Int("bit_depth", input.bitDepth))

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	encoder := wav.NewEncoder(outputFile, input.rate, input.bitDepth, input.channels, wavFormatPCM)
	// Closing the encoder patches the WAV header, so its error matters.
	defer func() {
		if closeErr := encoder.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("failed to finalize output: %w", closeErr)
		}
		if closeErr := outputFile.Close(); err == nil {
			err = closeErr
		}
	}()

	filters := newChannelFilters(input.channels, input.rate, p)
	maxVal := getMaxValue(input.bitDepth)
	stats = &filterStats{
		rate:     input.rate,
		channels: input.channels,
		bitDepth: input.bitDepth,
	}

	buf := &audio.IntBuffer{
		Data:           make([]int, bufferSize*input.channels),
		Format:         input.format,
		SourceBitDepth: input.bitDepth,
	}
	for {
		n, err := input.decoder.PCMBuffer(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read audio data: %w", err)
		}
		if n == 0 {
			break
		}

		buf.Data = buf.Data[:n]
		filters.process(buf.Data, maxVal)
		stats.frames += int64(n / input.channels)

		if err := encoder.Write(buf); err != nil {
			return nil, fmt.Errorf("failed to write audio data: %w", err)
		}
		buf.Data = buf.Data[:cap(buf.Data)]
	}

	logger.Debug("filtered", zap.Int64("frames", stats.frames))
	return stats, nil
}
