package inkwell

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DebounceInterval is how long the watcher waits after the last change
// before calling its callback.
const DebounceInterval = 500 * time.Millisecond

// Watcher calls a function whenever files below its roots change. Bursts
// of events are coalesced so an editor save triggers one callback.
type Watcher struct {
	w        *fsnotify.Watcher
	logger   Logger
	onChange func(context.Context)
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher watches every directory below roots. Missing roots are skipped.
func NewWatcher(logger Logger, onChange func(context.Context), roots ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{w: fw, logger: logger, onChange: onChange, debounce: DebounceInterval}
	for _, root := range roots {
		if _, err := os.Stat(root); os.IsNotExist(err) {
			logger.Debugf("watch: %s not found, skipping", root)
			continue
		}
		if err := w.addTree(root); err != nil {
			fw.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.w.Add(path)
		}
		return nil
	})
}

// Run processes events until ctx is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.stopTimer()
			return
		case event, ok := <-w.w.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debugf("watch: %s %s", event.Op, event.Name)
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(event.Name); err != nil {
						w.logger.Warnf("watch: add %s: %v", event.Name, err)
					}
				}
			}
			w.schedule(ctx)
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.logger.Errorf("watch: %v", err)
		}
	}
}

func (w *Watcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		if ctx.Err() != nil {
			return
		}
		w.onChange(ctx)
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
}

// Close stops watching.
func (w *Watcher) Close() error {
	w.stopTimer()
	return w.w.Close()
}
