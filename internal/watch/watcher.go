// Package watch reports changes to the content directory.
package watch

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

// DefaultDebounce groups bursts of events, such as an editor save, into one
// notification.
const DefaultDebounce = 500 * time.Millisecond

// ErrDirRequired is returned when no directory is configured.
var ErrDirRequired = errors.New("watch: directory is required")

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce. Non-positive values are ignored.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithExtension limits notifications to files with ext.
func WithExtension(ext string) Option {
	return func(w *Watcher) {
		w.ext = ext
	}
}

// WithLogger sets the watcher logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// Watcher observes a single directory.
type Watcher struct {
	dir      string
	ext      string
	debounce time.Duration
	logger   interfaces.Logger
}

// New returns a Watcher for dir.
func New(dir string, opts ...Option) (*Watcher, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, ErrDirRequired
	}
	w := &Watcher{
		dir:      filepath.Clean(dir),
		debounce: DefaultDebounce,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	return w, nil
}

// Run blocks until ctx is done, calling onChange once per debounced burst of
// writes, creations, removals or renames. onChange runs on the Run goroutine,
// so calls never overlap. Run returns nil when ctx is cancelled.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return err
	}
	logger := logging.WithFields(w.logger, map[string]any{"dir": w.dir})
	logger.Info("watch.started")

	var (
		timer   *time.Timer
		pending <-chan time.Time
		changed []string
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			logger.Info("watch.stopped")
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			changed = append(changed, filepath.Base(event.Name))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			pending = timer.C
		case <-pending:
			pending = nil
			logger.Debug("watch.change", "files", changed)
			changed = nil
			onChange(ctx)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch.error", "error", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	if w.ext != "" && !strings.HasSuffix(event.Name, w.ext) {
		return false
	}
	return true
}
