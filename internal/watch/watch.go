// SPDX-License-Identifier: MIT

// Package watch rebuilds the poet when its corpus file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ReloadFunc rebuilds and publishes state for the watched file.
type ReloadFunc func() error

// Corpus watches path and calls reload, debounced, after it is written,
// created or renamed over. It blocks until ctx is done and returns
// nil, or returns an error if the watcher cannot be set up.
//
// The parent directory is watched instead of the file itself, so editors that
// save by writing a temp file and renaming it over path are still observed.
// Reload failures are logged and do not stop the watch.
func Corpus(ctx context.Context, path string, debounce time.Duration, reload ReloadFunc, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch: resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch: add %s: %w", filepath.Dir(abs), err)
	}
	log.Info("watching corpus", zap.String("path", abs), zap.Duration("debounce", debounce))

	var (
		mu    sync.Mutex
		timer *time.Timer
		wg    sync.WaitGroup
	)
	fire := func() {
		defer wg.Done()
		if err := reload(); err != nil {
			log.Warn("corpus reload failed, keeping previous snapshot", zap.String("path", abs), zap.Error(err))
		}
	}
	schedule := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil && timer.Stop() {
			wg.Done() // cancelled before it ran
		}
		wg.Add(1)
		timer = time.AfterFunc(debounce, fire)
	}
	defer func() {
		mu.Lock()
		if timer != nil && timer.Stop() {
			wg.Done()
		}
		mu.Unlock()
		wg.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !relevant(ev.Op) {
				continue
			}
			log.Debug("corpus changed", zap.String("path", ev.Name), zap.String("op", ev.Op.String()))
			schedule()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("corpus watcher error", zap.Error(err))
		}
	}
}

func relevant(op fsnotify.Op) bool {
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create) || op.Has(fsnotify.Rename)
}
