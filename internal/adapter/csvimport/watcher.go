package csvimport

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"adpace/internal/core/port"
)

// Watcher re-runs the sheet import when CSV files in the directory
// change. Events are debounced so one saved file does not trigger a
// burst of imports.
type Watcher struct {
	dir      string
	importer port.SheetImporter
	logger   *slog.Logger
	debounce time.Duration
}

func NewWatcher(dir string, importer port.SheetImporter, logger *slog.Logger) *Watcher {
	return &Watcher{
		dir:      dir,
		importer: importer,
		logger:   logger,
		debounce: 500 * time.Millisecond,
	}
}

// Watch blocks until ctx is done, re-importing after each burst of CSV
// changes.
func (w *Watcher) Watch(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.logger.Info("watching import directory", "dir", w.dir)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			timer.Reset(w.debounce)
		case <-timer.C:
			if _, err := w.importer.Run(ctx); err != nil {
				w.logger.Error("sheet import failed", "error", err)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "error", err)
		}
	}
}

func relevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	return strings.EqualFold(filepath.Ext(event.Name), ".csv")
}
