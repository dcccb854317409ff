// internal/watch/watch.go
package watch

import (
	"log"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/qrioso-software/slscheck/internal/util"
)

// Watcher re-runs validation whenever files under the service tree
// change. Validation semantics are identical to one-shot mode; this is
// purely a re-runner.
type Watcher struct {
	root     string
	run      func()
	watcher  *fsnotify.Watcher
	stopChan chan struct{}

	debounceMutex sync.Mutex
	lastRun       time.Time
}

// debounceWindow collapses editor save bursts into one validation run.
const debounceWindow = 500 * time.Millisecond

func New(root string, run func()) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		root:     root,
		run:      run,
		watcher:  watcher,
		stopChan: make(chan struct{}),
	}, nil
}

// Start watches the service tree and blocks until Stop is called.
func (w *Watcher) Start() error {
	dirs, err := util.WatchableDirs(w.root)
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			log.Printf("⚠️ Could not watch %s: %v", dir, err)
		}
	}

	log.Printf("👀 Watching %s for changes (Ctrl+C to stop)", w.root)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Remove) {
				w.maybeRun(event.Name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("⚠️ Watch error: %v", err)
		case <-w.stopChan:
			return nil
		}
	}
}

func (w *Watcher) Stop() {
	close(w.stopChan)
	_ = w.watcher.Close()
}

func (w *Watcher) maybeRun(name string) {
	w.debounceMutex.Lock()
	if time.Since(w.lastRun) < debounceWindow {
		w.debounceMutex.Unlock()
		return
	}
	w.lastRun = time.Now()
	w.debounceMutex.Unlock()

	log.Printf("🔄 Change detected: %s", name)
	w.run()
}
