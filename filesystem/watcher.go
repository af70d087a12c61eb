// Package filesystem provides the explorer's change triggers: a
// debounced recursive watcher that tells the UI when to re-list, and
// a streaming walker feeding workspace-wide filename search. Listing
// itself lives in the explorer package; nothing here interprets tree
// shape.
package filesystem

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watcher monitors the workspace and the settings file for changes.
// Every create/delete/modify under the workspace, and every write to
// the settings file, debounces into a single signal on Events. The
// consumer reacts by issuing fresh listing calls; in-flight results
// made stale by a signal are simply replaced on the next render.
type Watcher struct {
	fsWatcher    *fsnotify.Watcher
	settingsPath string
	log          zerolog.Logger
	Events       chan string // carries the changed path
	done         chan struct{}
}

// NewWatcher creates a Watcher over root. settingsPath may be empty
// when there is no settings file to track.
func NewWatcher(root, settingsPath string, log zerolog.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsWatcher:    fsWatcher,
		settingsPath: settingsPath,
		log:          log,
		Events:       make(chan string, 10), // buffered to prevent blocking
		done:         make(chan struct{}),
	}

	// fsnotify is not recursive, so walk once and register every
	// directory. Dot-directories (.git and friends) never show in the
	// explorer, so there is nothing to refresh for them either.
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != root && isDotName(info.Name()) {
				return filepath.SkipDir
			}
			return w.fsWatcher.Add(path)
		}
		return nil
	})
	if err != nil {
		fsWatcher.Close()
		return nil, err
	}

	go w.loop()

	return w, nil
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() {
	close(w.done)
	w.fsWatcher.Close()
}

func (w *Watcher) loop() {
	var timer *time.Timer
	debounce := 100 * time.Millisecond

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			if w.skip(event) {
				continue
			}

			// New directories need registering before their contents
			// produce events.
			if event.Op&fsnotify.Create == fsnotify.Create {
				info, err := os.Stat(event.Name)
				if err == nil && info.IsDir() && !isDotName(info.Name()) {
					if err := w.fsWatcher.Add(event.Name); err != nil {
						w.log.Warn().Err(err).Str("path", event.Name).Msg("watch add failed")
					}
				}
			}

			if timer != nil {
				timer.Stop()
			}
			name := event.Name
			timer = time.AfterFunc(debounce, func() {
				select {
				case w.Events <- name:
				case <-w.done:
				}
			})

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("watcher error")
		}
	}
}

// skip filters events the explorer can never care about. The settings
// file is a dotfile but its writes must get through: hide/unhide and
// flag edits take effect via exactly this signal.
func (w *Watcher) skip(event fsnotify.Event) bool {
	if event.Op&fsnotify.Chmod == fsnotify.Chmod {
		return true
	}
	if w.settingsPath != "" && event.Name == w.settingsPath {
		return false
	}
	return isDotName(filepath.Base(event.Name))
}

func isDotName(name string) bool {
	return strings.HasPrefix(name, ".")
}
