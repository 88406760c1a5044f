// Package watch re-runs an action whenever a draft file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-hclog"
)

// Handler is called with the draft path once a burst of changes has settled.
type Handler func(ctx context.Context, path string) error

// Stats tracks watcher activity.
type Stats struct {
	Events    int
	Runs      int
	Errors    int
	LastError error
	LastRun   time.Time
}

// Watcher watches one file. The parent directory is watched rather than the file itself
// so editors that save through a rename are still seen.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	handler  Handler
	logger   hclog.Logger
	stats    Stats
}

func New(path string, debounce time.Duration, handler Handler, logger hclog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	return &Watcher{
		watcher:  fw,
		path:     abs,
		debounce: debounce,
		handler:  handler,
		logger:   logger.Named("watch"),
	}, nil
}

// Path is the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

func (w *Watcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

// Run processes events until ctx is cancelled, then releases the watcher. Handler errors
// are logged and counted; they do not stop the loop.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()
	w.logger.Info("👀 Watching draft", "path", w.path, "debounce", w.debounce)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("Watch cancelled")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.mu.Lock()
			w.stats.Events++
			w.mu.Unlock()
			w.logger.Trace("Draft event", "op", event.Op.String())

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Watcher error", "error", err)
			w.record(err)

		case <-fire:
			fire = nil
			w.trigger(ctx)
		}
	}
}

// Trigger runs the handler immediately.
func (w *Watcher) Trigger(ctx context.Context) error {
	return w.trigger(ctx)
}

func (w *Watcher) trigger(ctx context.Context) error {
	err := w.handler(ctx, w.path)
	w.mu.Lock()
	w.stats.Runs++
	w.stats.LastRun = time.Now()
	w.mu.Unlock()
	if err != nil {
		w.logger.Error("❌ Draft rebuild failed", "error", err)
		w.record(err)
		return err
	}
	w.logger.Info("🔄 Draft rebuilt", "path", w.path)
	return nil
}

func (w *Watcher) record(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stats.Errors++
	w.stats.LastError = err
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write) != 0
}
