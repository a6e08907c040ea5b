package catalog

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/errors"
	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/logger"
)

// Watcher watches a catalog file and refreshes the live entity set when
// the file changes, so entities learned out-of-band appear without a
// process restart. The attribute list is immutable and never reloaded.
type Watcher struct {
	path    string
	catalog *Catalog
	watcher *fsnotify.Watcher

	mu             sync.Mutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
}

// NewWatcher creates a watcher for the given catalog file.
func NewWatcher(path string, c *Catalog) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}
	if err := fsw.Add(path); err != nil {
		fsw.Close()
		return nil, errors.Wrapf(err, "failed to watch catalog file %s", path)
	}

	return &Watcher{
		path:           path,
		catalog:        c,
		watcher:        fsw,
		debouncePeriod: 500 * time.Millisecond, // Debounce rapid file changes
	}, nil
}

// Start begins watching for catalog file changes.
func (w *Watcher) Start() {
	go w.watchLoop()
}

// watchLoop monitors file system events
func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				logger.Infow("catalog watcher detected change",
					logger.FieldFile, event.Name,
					"op", event.Op.String())
				w.scheduleReload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnw("catalog watcher error",
				logger.FieldError, err)
		}
	}
}

// scheduleReload debounces rapid file changes and triggers reload
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, func() {
		if err := w.Reload(); err != nil {
			logger.Errorw("catalog reload failed, keeping previous entities",
				logger.FieldPath, w.path,
				logger.FieldError, err)
		}
	})
}

// Reload re-reads the entity list and swaps it into the live catalog.
// A broken file leaves the previous entity set in place.
func (w *Watcher) Reload() error {
	entities, err := LoadEntities(w.path, w.catalog)
	if err != nil {
		return err
	}
	if err := w.catalog.ReplaceEntities(entities); err != nil {
		return err
	}
	logger.Infow("catalog entities reloaded",
		logger.FieldPath, w.path,
		logger.FieldEntities, len(entities))
	return nil
}

// Stop stops watching for catalog changes.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}
