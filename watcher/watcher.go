// Package watcher reports changes to the page's files to the Bubble Tea
// program, coalescing bursts of file system events into one message.
package watcher

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"whitebox/log"
)

// ChangedMsg is delivered once a burst of changes to watched files settles.
type ChangedMsg struct {
	Paths []string
}

// ErrorMsg carries an error from the underlying watcher.
type ErrorMsg struct {
	Err error
}

const relevantOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

// Watcher watches a set of files. Directories are watched rather than the
// files themselves so editors that replace a file by renaming keep working.
type Watcher struct {
	fs        *fsnotify.Watcher
	debouncer *Debouncer

	mu      sync.Mutex
	files   map[string]bool
	dirs    map[string]bool
	pending map[string]bool

	msgs      chan tea.Msg
	done      chan struct{}
	closeOnce sync.Once
}

// New starts a watcher. debounce of zero uses DefaultDebounceDuration.
func New(debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	w := &Watcher{
		fs:      fw,
		files:   make(map[string]bool),
		dirs:    make(map[string]bool),
		pending: make(map[string]bool),
		msgs:    make(chan tea.Msg, 10),
		done:    make(chan struct{}),
	}
	w.debouncer = NewDebouncer(debounce, w.flush)
	go w.loop()
	return w, nil
}

// Watch replaces the watched set with files.
func (w *Watcher) Watch(files []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	nextFiles := make(map[string]bool, len(files))
	nextDirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", f, err)
		}
		nextFiles[abs] = true
		nextDirs[filepath.Dir(abs)] = true
	}

	for dir := range w.dirs {
		if !nextDirs[dir] {
			_ = w.fs.Remove(dir)
		}
	}
	var firstErr error
	for dir := range nextDirs {
		if w.dirs[dir] {
			continue
		}
		if err := w.fs.Add(dir); err != nil {
			log.WarningLog.Printf("cannot watch %s: %v", dir, err)
			delete(nextDirs, dir)
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to watch %s: %w", dir, err)
			}
		}
	}

	w.files = nextFiles
	w.dirs = nextDirs
	return firstErr
}

// Files returns the watched files, sorted.
func (w *Watcher) Files() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, 0, len(w.files))
	for f := range w.files {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Wait returns a command that blocks until the next watcher message. The
// program re-issues it after every message it receives.
func (w *Watcher) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-w.msgs:
			return msg
		case <-w.done:
			return nil
		}
	}
}

// Close stops the watcher. Pending changes are dropped.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		w.debouncer.Cancel()
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&relevantOps == 0 {
				continue
			}
			w.record(event.Name)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.send(ErrorMsg{Err: err})
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) record(name string) {
	path := filepath.Clean(name)
	w.mu.Lock()
	if !w.files[path] {
		w.mu.Unlock()
		return
	}
	w.pending[path] = true
	w.mu.Unlock()

	log.InputTrace("file event %s", path)
	w.debouncer.Trigger()
}

func (w *Watcher) flush() {
	w.mu.Lock()
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = make(map[string]bool)
	w.mu.Unlock()

	if len(paths) == 0 {
		return
	}
	sort.Strings(paths)
	w.send(ChangedMsg{Paths: paths})
}

func (w *Watcher) send(msg tea.Msg) {
	select {
	case w.msgs <- msg:
	case <-w.done:
	}
}
