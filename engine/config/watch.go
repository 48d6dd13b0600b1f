package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/hubastard/groveui/engine/ui"
)

const debounceDelay = 100 * time.Millisecond

// StyleWatcher reloads a style file whenever it changes on disk. It never
// touches a ui.Ctx: the host loop drains Styles between frames and calls
// SetStyle itself.
type StyleWatcher struct {
	path    string
	base    ui.Style
	log     *slog.Logger
	watcher *fsnotify.Watcher
	styles  chan ui.Style
	errs    chan error
	cancel  context.CancelFunc
	done    sync.WaitGroup
}

// WatchStyle watches the directory holding path so that editors which
// replace the file on save are still seen. base supplies every field the
// file leaves out.
func WatchStyle(path string, base ui.Style, log *slog.Logger) (*StyleWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch directory: %w", err)
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &StyleWatcher{
		path:    path,
		base:    base,
		log:     log.With("style", path),
		watcher: watcher,
		styles:  make(chan ui.Style, 1),
		errs:    make(chan error, 1),
		cancel:  cancel,
	}
	w.done.Add(1)
	go w.loop(ctx)
	return w, nil
}

// Styles delivers the latest successfully loaded style. Only the newest
// pending style is kept.
func (w *StyleWatcher) Styles() <-chan ui.Style { return w.styles }

func (w *StyleWatcher) Errors() <-chan error { return w.errs }

func (w *StyleWatcher) Close() error {
	w.cancel()
	err := w.watcher.Close()
	w.done.Wait()
	return err
}

func (w *StyleWatcher) loop(ctx context.Context) {
	defer w.done.Done()

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()
	reload := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != filepath.Base(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})

		case <-reload:
			st, err := LoadStyle(w.path, w.base)
			if err != nil {
				w.log.Warn("style reload failed", "err", err)
				w.report(err)
				continue
			}
			w.log.Info("style reloaded")
			w.publish(st)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.report(err)
		}
	}
}

func (w *StyleWatcher) publish(st ui.Style) {
	for {
		select {
		case w.styles <- st:
			return
		default:
		}
		// drop the stale style nobody picked up yet
		select {
		case <-w.styles:
		default:
		}
	}
}

func (w *StyleWatcher) report(err error) {
	select {
	case w.errs <- err:
	default:
	}
}
