package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watchConfig replays the trace now and after every write to the config
// file, until ctx is cancelled. Replay failures are logged, not returned,
// so a half-edited config does not end the session.
func watchConfig(ctx context.Context, job *replayJob) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	target := filepath.Clean(job.configPath)
	// Editors often replace the file, so watch the directory.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", target, err)
	}

	replay := func() {
		summary, err := job.run(ctx)
		if err != nil {
			job.logger.Error("replay failed", zap.Error(err))
			return
		}
		printSummary(job.summaryOutput(), job.inputPath, summary)
	}

	replay()
	job.logger.Info("watching config", zap.String("path", target))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			job.logger.Debug("config changed", zap.String("op", ev.Op.String()))
			replay()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			job.logger.Warn("watch error", zap.Error(err))
		}
	}
}
