package tileset

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/howeyc/fsnotify"
	log "github.com/sirupsen/logrus"
)

// Watcher calls back whenever a tileset file is written, created or
// renamed over. Editors often replace files rather than write them in
// place, so the parent directory is watched and events are filtered by
// file name.
type Watcher struct {
	fsw      *fsnotify.Watcher
	path     string
	onChange func()

	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
}

// Watch starts watching path. onChange runs on the watcher goroutine and
// must not block for long. Watching stops when ctx is done or Close is
// called.
func Watch(ctx context.Context, path string, onChange func()) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Watch(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		path:     abs,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go w.run(ctx)
	return w, nil
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)
	for {
		select {
		case <-ctx.Done():
			w.Close()
			return
		case ev, ok := <-w.fsw.Event:
			if !ok {
				return
			}
			if !w.matches(ev) {
				continue
			}
			log.WithFields(log.Fields{"path": w.path, "event": ev.String()}).Debug("tileset changed")
			w.onChange()
		case err, ok := <-w.fsw.Error:
			if !ok {
				return
			}
			log.WithError(err).WithField("path", w.path).Warn("tileset watcher error")
		}
	}
}

func (w *Watcher) matches(ev *fsnotify.FileEvent) bool {
	if !(ev.IsModify() || ev.IsCreate() || ev.IsRename()) {
		return false
	}
	name, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	return name == w.path
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		w.closeErr = w.fsw.Close()
	})
	return w.closeErr
}

// Done is closed once the watcher goroutine has exited.
func (w *Watcher) Done() <-chan struct{} { return w.done }
