// Package watcher watches the legal corpus directory and ingests new or
// updated documents automatically. There is no removal path: passages are
// never individually deleted from the index.
package watcher

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// defaultDebounce coalesces rapid write events for the same file (editors
// and downloads often produce several) into one ingestion.
const defaultDebounce = 400 * time.Millisecond

// Watcher watches a corpus directory tree and calls onIngest for each
// created or modified document with a matching extension.
type Watcher struct {
	root       string
	extensions []string
	onIngest   func(path string)
	debounce   time.Duration
	watcher    *fsnotify.Watcher
	mu         sync.Mutex
	timers     map[string]*time.Timer
	started    bool
	stopOnce   sync.Once
	done       chan struct{}
	logger     *zap.Logger
}

// New creates a watcher over root. extensions filters which files are
// ingested (empty = all).
func New(root string, extensions []string, onIngest func(path string), logger *zap.Logger) *Watcher {
	return &Watcher{
		root:       root,
		extensions: extensions,
		onIngest:   onIngest,
		debounce:   defaultDebounce,
		timers:     make(map[string]*time.Timer),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Start begins watching. It runs until ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return nil
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		w.mu.Unlock()
		return err
	}
	w.watcher = fsw
	w.started = true
	w.mu.Unlock()

	if err := w.addTree(w.root); err != nil {
		w.Stop()
		return err
	}
	w.logger.Info("corpus watcher started", zap.String("root", w.root), zap.Strings("extensions", w.extensions))
	go w.run(ctx)
	return nil
}

// SyncExistingFiles ingests every matching file already present under root.
// The pipeline skips nothing here; re-ingesting an unchanged corpus only
// costs embedding time, never correctness.
func (w *Watcher) SyncExistingFiles() {
	_ = filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if w.matchExtension(path) {
			w.onIngest(path)
		}
		return nil
	})
}

// Stop stops the watcher. Safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.mu.Lock()
		defer w.mu.Unlock()
		if w.watcher != nil {
			_ = w.watcher.Close()
		}
		for _, t := range w.timers {
			t.Stop()
		}
	})
}

func (w *Watcher) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if err != nil {
				w.logger.Debug("watcher error", zap.Error(err))
			}
		}
	}
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return
	}
	info, err := os.Stat(ev.Name)
	if err != nil {
		return
	}
	if info.IsDir() {
		if ev.Op&fsnotify.Create != 0 {
			_ = w.addTree(ev.Name)
		}
		return
	}
	if w.matchExtension(ev.Name) {
		w.debounceIngest(ev.Name)
	}
}

// debounceIngest schedules ingestion of path after the debounce window,
// resetting the timer on each new event for the same path.
func (w *Watcher) debounceIngest(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.timers[path]; ok {
		t.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()
		w.logger.Debug("corpus file changed", zap.String("path", path))
		w.onIngest(path)
	})
}

// addTree adds root and all its subdirectories to the fsnotify watch set.
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.watcher.Add(path)
		}
		return nil
	})
}

func (w *Watcher) matchExtension(path string) bool {
	if len(w.extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range w.extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}
