// Package watch delivers debounced change notifications for a single
// file.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches one file for content changes. The parent directory
// is watched rather than the file itself so editors that replace the
// file on save (rename + create) keep triggering.
type Watcher struct {
	path     string
	debounce time.Duration
	fires    atomic.Uint32
}

// New creates a watcher for path with the given debounce window.
func New(path string, debounce time.Duration) *Watcher {
	return &Watcher{
		path:     path,
		debounce: debounce,
	}
}

// Start begins watching and returns a channel that receives once per
// debounced change. The channel is closed when ctx is canceled.
func (w *Watcher) Start(ctx context.Context) (<-chan struct{}, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: failed to create watcher: %w", err)
	}

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch: failed to watch %s: %w", dir, err)
	}

	events := make(chan struct{}, 1)
	go w.run(ctx, fsw, events)

	return events, nil
}

func (w *Watcher) run(ctx context.Context, fsw *fsnotify.Watcher, events chan struct{}) {
	defer close(events)
	defer fsw.Close()

	base := filepath.Base(w.path)

	// The debounce timer signals through fire so only this loop ever
	// writes to the caller's channel.
	fire := make(chan struct{}, 1)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			w.fires.Add(1)
			select {
			case events <- struct{}{}:
			default:
				// A change is already pending; coalesce.
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			slog.Error("Watcher error", "path", w.path, "error", err)

		case <-ctx.Done():
			return
		}
	}
}

// FireCount returns the number of change notifications delivered.
func (w *Watcher) FireCount() uint32 {
	return w.fires.Load()
}
