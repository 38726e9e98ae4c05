// Package filewatch notifies listeners when files on disk are written.
package filewatch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/uber-go/tally"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides the Watcher to an fx application.
var Module = fx.Provide(New)

// Watcher calls listeners after a watched file is written or recreated.
// Parent directories are watched so that editors saving through a rename keep being followed.
type Watcher interface {
	// Watch calls fn on the watcher goroutine after every write to path, until cancel is called.
	Watch(path string, fn func()) (cancel func(), err error)
}

// Params are inbound parameters to create a Watcher.
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
	Stats     tally.Scope
}

type watcher struct {
	fsw    *fsnotify.Watcher
	logger *zap.SugaredLogger
	stats  tally.Scope
	done   chan struct{}

	mu        sync.Mutex
	seq       int
	listeners map[string]map[int]func()
	dirs      map[string]int
}

// New creates a Watcher and starts consuming file events. Events stop when the application stops.
func New(p Params) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file system watcher: %w", err)
	}

	w := &watcher{
		fsw:       fsw,
		logger:    p.Logger.With("internal", "filewatch"),
		stats:     p.Stats.SubScope("filewatch"),
		done:      make(chan struct{}),
		listeners: make(map[string]map[int]func()),
		dirs:      make(map[string]int),
	}
	go w.run()

	p.Lifecycle.Append(fx.Hook{
		OnStop: w.OnStop,
	})
	return w, nil
}

// OnStop closes the underlying watcher and waits for the event loop to return.
func (w *watcher) OnStop(ctx context.Context) error {
	err := w.fsw.Close()

	select {
	case <-w.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return err
}

func (w *watcher) Watch(path string, fn func()) (func(), error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", path, err)
	}
	dir := filepath.Dir(path)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.dirs[dir] == 0 {
		if err := w.fsw.Add(dir); err != nil {
			return nil, fmt.Errorf("watching %q: %w", dir, err)
		}
	}
	w.dirs[dir]++

	w.seq++
	id := w.seq
	if w.listeners[path] == nil {
		w.listeners[path] = make(map[int]func())
	}
	w.listeners[path][id] = fn
	w.stats.Gauge("files").Update(float64(len(w.listeners)))

	var once sync.Once
	return func() {
		once.Do(func() { w.unwatch(path, dir, id) })
	}, nil
}

func (w *watcher) unwatch(path, dir string, id int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	delete(w.listeners[path], id)
	if len(w.listeners[path]) == 0 {
		delete(w.listeners, path)
	}
	w.dirs[dir]--
	if w.dirs[dir] <= 0 {
		delete(w.dirs, dir)
		if err := w.fsw.Remove(dir); err != nil {
			w.logger.Debugf("removing watch on %q: %v", dir, err)
		}
	}
	w.stats.Gauge("files").Update(float64(len(w.listeners)))
}

func (w *watcher) run() {
	defer close(w.done)

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.consume(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.stats.Counter("errors").Inc(1)
			w.logger.Warnf("file watcher error: %v", err)
		}
	}
}

func (w *watcher) consume(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}

	path := filepath.Clean(event.Name)
	w.mu.Lock()
	fns := make([]func(), 0, len(w.listeners[path]))
	for _, fn := range w.listeners[path] {
		fns = append(fns, fn)
	}
	w.mu.Unlock()

	if len(fns) == 0 {
		return
	}
	w.stats.Counter("events").Inc(1)
	for _, fn := range fns {
		fn()
	}
}
