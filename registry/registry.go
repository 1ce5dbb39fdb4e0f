// Package registry stores singleton instances keyed by a caller-supplied
// kind discriminant and an optional tag.
//
// A Registry is an ordinary injectable object: construct one and pass it
// to the components that share instances through it. Nothing here is
// process-global.
package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// ErrNotFound is returned by Fetch and Unregister when no instance is
// stored under the requested key.
var ErrNotFound = errors.New("registry: instance not found")

type entryKey struct {
	kind string
	tag  string
}

// Registry is a keyed store of singleton instances. At most one instance
// exists per (kind, tag) pair at any time.
type Registry struct {
	mu      sync.Mutex
	entries map[entryKey]any
	logger  *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the diagnostic sink. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[entryKey]any),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Register stores instance under (kind, tag) and returns it. If the key
// is already occupied the existing instance is returned instead and the
// candidate is discarded; reuse is the policy, not an error.
func (r *Registry) Register(kind, tag string, instance any) any {
	if r == nil {
		return instance
	}
	r.mu.Lock()
	key := entryKey{kind: kind, tag: tag}
	if existing, ok := r.entries[key]; ok {
		r.mu.Unlock()
		r.logger.Warn("registry collision, keeping existing instance", "kind", kind, "tag", tag)
		return existing
	}
	r.entries[key] = instance
	r.mu.Unlock()
	r.logger.Debug("registry instance registered", "kind", kind, "tag", tag)
	return instance
}

// Fetch returns the instance stored under (kind, tag).
func (r *Registry) Fetch(kind, tag string) (any, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, kind, tag)
	}
	r.mu.Lock()
	instance, ok := r.entries[entryKey{kind: kind, tag: tag}]
	r.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, kind, tag)
	}
	r.logger.Debug("registry instance fetched", "kind", kind, "tag", tag)
	return instance, nil
}

// Unregister removes the instance stored under (kind, tag), freeing the
// key for reuse.
func (r *Registry) Unregister(kind, tag string) error {
	if r == nil {
		return fmt.Errorf("%w: %s/%s", ErrNotFound, kind, tag)
	}
	r.mu.Lock()
	key := entryKey{kind: kind, tag: tag}
	_, ok := r.entries[key]
	if ok {
		delete(r.entries, key)
	}
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s/%s", ErrNotFound, kind, tag)
	}
	r.logger.Debug("registry instance unregistered", "kind", kind, "tag", tag)
	return nil
}

// Contains reports whether an instance is stored under (kind, tag).
func (r *Registry) Contains(kind, tag string) bool {
	if r == nil {
		return false
	}
	r.mu.Lock()
	_, ok := r.entries[entryKey{kind: kind, tag: tag}]
	r.mu.Unlock()
	return ok
}

// Len reports the number of stored instances.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	n := len(r.entries)
	r.mu.Unlock()
	return n
}
