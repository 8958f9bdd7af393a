package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/wailsapp/wails/v2/pkg/logger"

	"plantviewer/internal/events"
)

// SettingsWatcher re-reads the settings file whenever something on disk
// touches it and reports the result on settingsChanged. It watches the parent
// directory because atomic replacement swaps the file's inode.
type SettingsWatcher struct {
	settings SettingsService
	emitter  events.Emitter
	log      logger.Logger
	path     string

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	done    chan struct{}
}

func NewSettingsWatcher(settings SettingsService, emitter events.Emitter, log logger.Logger) *SettingsWatcher {
	if emitter == nil {
		emitter = events.Discard
	}
	return &SettingsWatcher{
		settings: settings,
		emitter:  emitter,
		log:      log,
		path:     filepath.Clean(settings.Path()),
	}
}

func (w *SettingsWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watcher != nil {
		return errors.New("settings watcher already started")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		_ = fw.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	w.watcher = fw
	w.done = make(chan struct{})
	go w.loop(ctx, fw, w.done)
	return nil
}

func (w *SettingsWatcher) loop(ctx context.Context, fw *fsnotify.Watcher, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			res := w.settings.Read()
			if err := w.emitter.Emit(events.SettingsChanged, res); err != nil {
				w.log.Warning(fmt.Sprintf("emit %s: %v", events.SettingsChanged, err))
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.log.Error(fmt.Sprintf("settings watcher: %v", err))
		}
	}
}

// Stop closes the underlying watcher and waits for the event loop to exit.
func (w *SettingsWatcher) Stop() error {
	w.mu.Lock()
	fw, done := w.watcher, w.done
	w.watcher, w.done = nil, nil
	w.mu.Unlock()

	if fw == nil {
		return nil
	}
	err := fw.Close()
	<-done
	return err
}
