package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher emits a signal when vault content changes. Rapid bursts of
// events (sync tools touch many files at once) are batched through a
// debounce interval into a single signal.
type Watcher struct {
	vaultPath string
	debounce  time.Duration
	watcher   *fsnotify.Watcher
	changes   chan struct{}
	errors    chan error
	done      chan struct{}
	wg        sync.WaitGroup
	mu        sync.Mutex
	running   bool
}

// NewWatcher creates a watcher for the vault rooted at vaultPath.
// The watcher must be started with Start() before it emits signals.
func NewWatcher(vaultPath string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		vaultPath: vaultPath,
		debounce:  debounce,
		watcher:   fsw,
		changes:   make(chan struct{}, 1),
		errors:    make(chan error, 10),
		done:      make(chan struct{}),
	}, nil
}

// Start begins watching the vault tree. Every non-hidden directory is
// watched; directories created later are picked up from their create
// events.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return fmt.Errorf("watcher already running")
	}

	err := filepath.WalkDir(w.vaultPath, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if p != w.vaultPath && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return w.watcher.Add(p)
	})
	if err != nil {
		return fmt.Errorf("failed to watch vault: %w", err)
	}

	w.running = true
	w.wg.Add(1)
	go w.processEvents()

	return nil
}

// Stop stops watching and cleans up resources. It blocks until the event
// processing goroutine has exited.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	w.mu.Unlock()

	close(w.done)

	if err := w.watcher.Close(); err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}

	w.wg.Wait()

	close(w.changes)
	close(w.errors)

	return nil
}

// Changes returns the channel that signals vault content changes.
// It is closed when the watcher is stopped.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Errors returns the channel that emits watch errors.
// It is closed when the watcher is stopped.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// processEvents converts raw fsnotify events into debounced change
// signals.
func (w *Watcher) processEvents() {
	defer w.wg.Done()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			if event.Has(fsnotify.Create) {
				w.maybeWatchDir(event.Name)
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)

		case <-timer.C:
			select {
			case w.changes <- struct{}{}:
			default: // a signal is already pending
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			case <-w.done:
				return
			}
		}
	}
}

// relevant filters out hidden entries and chmod-only noise
func relevant(event fsnotify.Event) bool {
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}
	switch {
	case event.Has(fsnotify.Create),
		event.Has(fsnotify.Write),
		event.Has(fsnotify.Remove),
		event.Has(fsnotify.Rename):
		return true
	default:
		return false
	}
}

// maybeWatchDir extends the watch to a newly created directory
func (w *Watcher) maybeWatchDir(p string) {
	info, err := os.Stat(p)
	if err != nil || !info.IsDir() {
		return
	}
	if strings.HasPrefix(filepath.Base(p), ".") {
		return
	}
	w.watcher.Add(p)
}
