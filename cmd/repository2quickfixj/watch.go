package main

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/msmat0/quickfixj/codegen"
)

// watchAndRegenerate blocks, re-running generation whenever the orchestra
// file changes on disk. Generation failures are logged and the watch keeps
// going; editors commonly write out transient/partial states.
func watchAndRegenerate(ctx context.Context, cfg *codegen.Config, log *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory, not the file: many editors replace the file on
	// save, which drops a direct file watch.
	target := filepath.Clean(cfg.OrchestraFile)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}
	log.Info("watching for changes", "file", target)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			log.Info("orchestra file changed, regenerating", "file", target)
			if err := generate(ctx, cfg); err != nil {
				log.Error("generation failed", "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("watch error", "error", err)
		}
	}
}
