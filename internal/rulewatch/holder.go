// Package rulewatch keeps the active inflection rules of a long-running
// server in sync with a YAML rules file.
package rulewatch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/erraggy/wordcase/inflect"
	"github.com/fsnotify/fsnotify"
)

// Holder provides concurrent access to the active Inflector with hot reload
// support. Readers never block: the Inflector is swapped atomically.
type Holder struct {
	current atomic.Pointer[inflect.Inflector]
	path    string
	logger  Logger
	observe func(error)

	mu       sync.Mutex
	onChange []func(*inflect.Inflector)
	watcher  *fsnotify.Watcher
	stopCh   chan struct{}
	stopOnce sync.Once
}

// Option configures a Holder.
type Option func(*Holder)

// WithLogger sets the logger. The default discards output.
func WithLogger(l Logger) Option {
	return func(h *Holder) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithReloadObserver registers fn to be called after every reload attempt
// with its error, or nil on success.
func WithReloadObserver(fn func(error)) Option {
	return func(h *Holder) {
		h.observe = fn
	}
}

// NewHolder loads the rules file at path and returns a Holder serving the
// resulting Inflector.
func NewHolder(path string, opts ...Option) (*Holder, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("rulewatch: absolute path: %w", err)
	}
	h := newHolder(absPath, opts)

	in, err := load(absPath)
	if err != nil {
		return nil, fmt.Errorf("rulewatch: load rules: %w", err)
	}
	h.current.Store(in)
	return h, nil
}

// NewStatic returns a Holder that always serves in and has no backing file.
// Reload and Watch are no-ops.
func NewStatic(in *inflect.Inflector, opts ...Option) *Holder {
	if in == nil {
		in = inflect.Default()
	}
	h := newHolder("", opts)
	h.current.Store(in)
	return h
}

func newHolder(path string, opts []Option) *Holder {
	h := &Holder{
		path:   path,
		logger: NopLogger{},
		stopCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func load(path string) (*inflect.Inflector, error) {
	rules, err := inflect.LoadRules(path)
	if err != nil {
		return nil, err
	}
	return inflect.New(inflect.WithRules(rules))
}

// Inflector returns the active Inflector.
func (h *Holder) Inflector() *inflect.Inflector {
	return h.current.Load()
}

// Path returns the absolute path of the rules file, or "" for a static Holder.
func (h *Holder) Path() string {
	return h.path
}

// Reload rebuilds the Inflector from the rules file. On failure the
// previous Inflector stays active and the error is returned.
func (h *Holder) Reload() error {
	if h.path == "" {
		return nil
	}
	h.logger.Info("reloading rules", "path", h.path)

	in, err := load(h.path)
	if h.observe != nil {
		h.observe(err)
	}
	if err != nil {
		h.logger.Error("rules reload failed, keeping previous rules", "error", err)
		return fmt.Errorf("rulewatch: reload rules: %w", err)
	}
	h.current.Store(in)

	h.mu.Lock()
	listeners := append(([]func(*inflect.Inflector))(nil), h.onChange...)
	h.mu.Unlock()
	for _, fn := range listeners {
		fn(in)
	}

	h.logger.Info("rules reloaded")
	return nil
}

// OnChange registers fn to be called with the new Inflector after each
// successful reload.
func (h *Holder) OnChange(fn func(*inflect.Inflector)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onChange = append(h.onChange, fn)
}

// Watch starts watching the rules file and reloads it on every write or
// create. Watching stops when ctx is cancelled or Stop is called.
func (h *Holder) Watch(ctx context.Context) error {
	if h.path == "" {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("rulewatch: create watcher: %w", err)
	}

	// Editors that save atomically replace the file, so watch its directory.
	if err := watcher.Add(filepath.Dir(h.path)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("rulewatch: watch directory: %w", err)
	}

	h.mu.Lock()
	h.watcher = watcher
	h.mu.Unlock()

	go h.watchLoop(ctx, watcher)

	h.logger.Info("watching rules file for changes", "path", h.path)
	return nil
}

// Stop stops watching. It is safe to call more than once.
func (h *Holder) Stop() {
	h.stopOnce.Do(func() {
		close(h.stopCh)
		h.mu.Lock()
		defer h.mu.Unlock()
		if h.watcher != nil {
			_ = h.watcher.Close()
		}
	})
}

func (h *Holder) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer func() { _ = watcher.Close() }()
	filename := filepath.Base(h.path)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filename {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				h.logger.Debug("rules file changed", "event", event.Op.String(), "file", event.Name)
				// Reload logs its own failures.
				_ = h.Reload()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			h.logger.Error("file watcher error", "error", err)

		case <-ctx.Done():
			return

		case <-h.stopCh:
			return
		}
	}
}
