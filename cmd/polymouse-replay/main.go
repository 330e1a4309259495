// Command polymouse-replay runs a recorded pointer trace through the
// polymouse pipeline and writes the resulting cursor positions.
//
// Usage:
//
//	polymouse-replay -config polymouse.toml session.csv result.csv
//	polymouse-replay -feedback=false session.csv -           # recorded cursor, CSV to stdout
//	polymouse-replay -watch -config tune.toml session.csv out.csv
//
// With -watch the trace is replayed again every time the config file is
// written, which makes it practical to tune filter constants in an editor.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/tphakala/go-polymouse/internal/config"
)

// CLI defaults
const (
	minRequiredArgs = 2
	stdioPath       = "-"
	msPerSecond     = 1000
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "polymouse-replay:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", config.DefaultFileName, "TOML config file (created with defaults if missing)")
	feedback := flag.Bool("feedback", true, "Feed output cursor positions back as the next frame's cursor")
	verbose := flag.Bool("v", false, "Verbose (debug) logging")
	watch := flag.Bool("watch", false, "Replay again whenever the config file changes")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] trace.csv output.csv\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Logging, *verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	job := replayJob{
		configPath: *configPath,
		inputPath:  args[0],
		outputPath: args[1],
		logger:     logger,
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "feedback" {
			job.feedback = feedback
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *watch {
		return watchConfig(ctx, &job)
	}

	summary, err := job.run(ctx)
	if err != nil {
		return err
	}
	printSummary(job.summaryOutput(), job.inputPath, summary)
	return nil
}
