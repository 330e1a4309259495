package main

import (
	"context"
	"fmt"
	"io"
	"os"

	polymouse "github.com/tphakala/go-polymouse"
	"github.com/tphakala/go-polymouse/internal/config"
	"github.com/tphakala/go-polymouse/internal/trace"
	"go.uber.org/zap"
)

// replayJob holds everything needed to replay a trace once.
type replayJob struct {
	configPath string
	inputPath  string
	outputPath string
	feedback   *bool // Overrides the config file when the flag was given
	logger     *zap.Logger

	// stdin can only be read once, so a trace from stdin is kept for
	// later runs.
	stdinFrames []polymouse.Frame
	stdinRead   bool
}

// run loads the config, replays the trace and writes the results.
func (j *replayJob) run(ctx context.Context) (summary trace.Summary, err error) {
	cfg, err := config.LoadConfig(j.configPath)
	if err != nil {
		return summary, err
	}

	feedback := cfg.Pipeline.Feedback
	if j.feedback != nil {
		feedback = *j.feedback
	}

	pc := cfg.PipelineConfig()
	p, err := polymouse.NewPipeline(&pc)
	if err != nil {
		return summary, fmt.Errorf("failed to create pipeline: %w", err)
	}

	frames, err := j.loadFrames()
	if err != nil {
		return summary, err
	}
	j.logger.Debug("trace loaded",
		zap.String("path", j.inputPath),
		zap.Int("frames", len(frames)),
		zap.Bool("feedback", feedback))

	out, closeOut, err := openOutput(j.outputPath)
	if err != nil {
		return summary, err
	}
	defer func() {
		if closeErr := closeOut(); err == nil {
			err = closeErr
		}
	}()

	w := trace.NewWriter(out)
	res, err := trace.Run(ctx, p, frames, trace.Options{
		Feedback: feedback,
		OnRecord: w.Write,
	})
	if err != nil {
		return summary, fmt.Errorf("replay stopped: %w", err)
	}
	if err := w.Flush(); err != nil {
		return summary, fmt.Errorf("failed to write results: %w", err)
	}

	for _, idx := range res.Rejected {
		j.logger.Warn("frame rejected",
			zap.Int("frame", idx),
			zap.Float64("dt", float64(frames[idx].DT)))
	}

	summary = trace.Summarize(res)
	j.logger.Info("replay complete",
		zap.Int("frames", summary.Frames),
		zap.Int("rejected", summary.Rejected),
		zap.Int64("throws", summary.Throws))
	return summary, nil
}

// summaryOutput keeps the summary off stdout when results go there.
func (j *replayJob) summaryOutput() io.Writer {
	if j.outputPath == stdioPath {
		return os.Stderr
	}
	return os.Stdout
}

// loadFrames reads the input trace. A file is read again on every call so
// edits show up in watch mode; stdin is read on the first call only.
func (j *replayJob) loadFrames() ([]polymouse.Frame, error) {
	if j.inputPath != stdioPath {
		return readFrames(j.inputPath)
	}
	if !j.stdinRead {
		frames, err := trace.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		j.stdinFrames, j.stdinRead = frames, true
	}
	return j.stdinFrames, nil
}

func readFrames(path string) ([]polymouse.Frame, error) {

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace: %w", err)
	}
	defer func() { _ = f.Close() }()

	frames, err := trace.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return frames, nil
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == stdioPath {
		return os.Stdout, func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}

func printSummary(w io.Writer, name string, s trace.Summary) {
	fmt.Fprintf(w, "Replayed %s\n", name)
	fmt.Fprintf(w, "  Frames: %d (%d rejected)\n", s.Frames, s.Rejected)
	fmt.Fprintf(w, "  Duration: %.2fs, frame time %.2fms ± %.2fms\n",
		s.Duration, s.MeanDT*msPerSecond, s.StdDevDT*msPerSecond)
	fmt.Fprintf(w, "  Throws: %d, %.2fs throwing\n", s.Throws, s.ThrowingSeconds)
	fmt.Fprintf(w, "  Cursor step: mean (%.2f, %.2f), RMS (%.2f, %.2f)\n",
		s.MeanStepX, s.MeanStepY, s.RMSStepX, s.RMSStepY)
}
