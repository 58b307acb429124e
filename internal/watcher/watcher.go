package watcher

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/rafbgarcia/mvcpath/internal/conventions"
)

// Kinds of PHP files the watcher reports.
const (
	KindController = "controller"
	KindView       = "view"
	KindConfig     = "config"
)

// Event represents a PHP file change detected by the watcher.
type Event struct {
	Path string // Absolute, slash-separated path of the changed file
	Kind string // KindController, KindView or KindConfig
}

// Watcher monitors a project webroot for controller, view and config changes.
type Watcher struct {
	webroot  string
	onChange func(Event)
	onError  func(error)
	fsw      *fsnotify.Watcher
	done     chan struct{}
}

// New creates a Watcher that monitors webroot for file changes.
// onChange is called for each relevant file event.
func New(webroot string, onChange func(Event)) *Watcher {
	return &Watcher{
		webroot:  webroot,
		onChange: onChange,
		onError:  func(error) {},
		done:     make(chan struct{}),
	}
}

// OnError sets a callback for errors reported by the underlying watcher.
// It must be called before Start.
func (w *Watcher) OnError(fn func(error)) {
	w.onError = fn
}

// Start begins watching the directory tree. It walks the webroot to add all
// non-ignored directories, then starts a goroutine to process events.
func (w *Watcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.fsw = fsw

	if err := w.addTree(w.webroot); err != nil {
		fsw.Close()
		return err
	}

	go w.loop()
	return nil
}

// Stop terminates the watcher.
func (w *Watcher) Stop() {
	if w.fsw != nil {
		w.fsw.Close()
	}
	<-w.done
}

func (w *Watcher) loop() {
	defer close(w.done)

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.onError(err)
		}
	}
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	// New directories are walked so files created inside them are seen.
	if ev.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if err := w.addTree(ev.Name); err != nil {
				w.onError(err)
			}
			return
		}
	}

	path := filepath.ToSlash(ev.Name)
	kind := fileKind(path)
	if kind == "" {
		return
	}
	w.onChange(Event{Path: path, Kind: kind})
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable dirs
		}
		if !d.IsDir() {
			return nil
		}
		if shouldIgnoreDir(w.webroot, path) {
			return filepath.SkipDir
		}
		return w.fsw.Add(path)
	})
}

// fileKind classifies a slash-separated path, returning "" for files the
// watcher does not report.
func fileKind(path string) string {
	if !strings.EqualFold(filepath.Ext(path), conventions.SourceExt) {
		return ""
	}
	switch {
	case strings.HasSuffix(path, "/"+conventions.MainConfigPath):
		return KindConfig
	case strings.Contains(path, "/controllers/") && conventions.IsControllerName(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))):
		return KindController
	case strings.Contains(path, "/views/"):
		return KindView
	}
	return ""
}

// shouldIgnoreDir returns true if the directory should not be watched.
func shouldIgnoreDir(webroot, path string) bool {
	if path == webroot {
		return false
	}
	name := filepath.Base(path)

	// Hidden directories (.git, .idea, etc.)
	if strings.HasPrefix(name, ".") {
		return true
	}

	switch name {
	case "vendor", "node_modules", "runtime", "assets":
		return true
	}
	return false
}
