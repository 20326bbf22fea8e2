// Package watch monitors a directory of input sources and reports files
// that were created or rewritten.
package watch

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watcher monitors a directory for source file changes using fsnotify.
type Watcher struct {
	Dir     string
	Changes <-chan string // Read-only external channel of changed paths

	changes  chan string // Internal write channel
	done     chan struct{}
	watcher  *fsnotify.Watcher
	match    func(name string) bool
	debounce time.Duration
	log      logrus.FieldLogger
}

// NewWatcher creates a watcher for dir. match selects which file names are
// sources; debounce is how long a file must stay quiet before it is reported.
func NewWatcher(dir string, match func(string) bool, debounce time.Duration, log logrus.FieldLogger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan string, 16)
	return &Watcher{
		Dir:      dir,
		Changes:  ch,
		changes:  ch,
		done:     make(chan struct{}),
		watcher:  fw,
		match:    match,
		debounce: debounce,
		log:      log,
	}, nil
}

// Start begins watching the directory for changes.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.Dir); err != nil {
		return err
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done // Wait for loop to exit
	close(w.changes)
}

// Serve calls handle for every change until ctx is done, then stops the watcher.
func (w *Watcher) Serve(ctx context.Context, handle func(path string)) {
	defer w.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case path := <-w.Changes:
			handle(path)
		}
	}
}

func (w *Watcher) loop() {
	defer close(w.done)

	// Debounce: track last event time per file.
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				// Drain pending on close.
				for file := range pending {
					w.emit(file)
				}
				return
			}
			if !w.match(event.Name) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				pending[event.Name] = time.Now()
			}

		case <-ticker.C:
			now := time.Now()
			for file, t := range pending {
				if now.Sub(t) >= w.debounce {
					w.emit(file)
					delete(pending, file)
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal.
			if w.log != nil {
				w.log.WithError(err).Warn("watch error")
			}
		}
	}
}

// emit sends without blocking the event loop; a full channel drops the change.
func (w *Watcher) emit(file string) {
	select {
	case w.changes <- file:
	default:
		if w.log != nil {
			w.log.WithField("source", file).Warn("change dropped, consumer too slow")
		}
	}
}
