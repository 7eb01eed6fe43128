package main

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher is a wrapper for watching SVG file changes in an icon directory.
type Watcher struct {
	watcher *fsnotify.Watcher
	dir     string
}

// NewWatcher returns a new Watcher for dir.
func NewWatcher(dir string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dir = filepath.Clean(dir)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}
	return &Watcher{watcher, dir}, nil
}

// Close closes the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// Run watches for SVG files that are written, created, removed or renamed.
func (w *Watcher) Run() chan string {
	files := make(chan string, 10)
	go func() {
		changetimes := map[string]time.Time{}
		for w.watcher.Events != nil && w.watcher.Errors != nil {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					w.watcher.Events = nil
					break
				}
				if !isIconChange(event) {
					break
				}
				if t, ok := changetimes[event.Name]; !ok || 100*time.Millisecond < time.Since(t) {
					time.Sleep(100 * time.Millisecond) // wait to make sure write is finished
					files <- event.Name
					changetimes[event.Name] = time.Now()
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					w.watcher.Errors = nil
					break
				}
				Error.Println(err)
			}
		}
		close(files)
	}()
	return files
}

func isIconChange(event fsnotify.Event) bool {
	if !strings.EqualFold(filepath.Ext(event.Name), ".svg") {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
}
