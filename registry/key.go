package registry

import "fmt"

// Key is a typed token for registry access. The type parameter pins the
// instance type clients expect back; the kind string is the stored
// discriminant, so two keys with different type parameters but the same
// kind and tag address the same entry.
type Key[T any] struct {
	Kind string
	Tag  string
}

// NewKey creates an untagged key.
func NewKey[T any](kind string) Key[T] {
	return Key[T]{Kind: kind}
}

// WithTag returns a copy of the key with the given tag.
func (k Key[T]) WithTag(tag string) Key[T] {
	k.Tag = tag
	return k
}

// Put registers value under the key and returns the stored instance,
// which is the existing one when the key is already occupied.
func Put[T any](r *Registry, key Key[T], value T) T {
	stored := r.Register(key.Kind, key.Tag, value)
	if typed, ok := stored.(T); ok {
		return typed
	}
	// Occupied by a different type; the candidate was discarded.
	return value
}

// Get fetches the instance stored under the key.
func Get[T any](r *Registry, key Key[T]) (T, error) {
	var zero T
	stored, err := r.Fetch(key.Kind, key.Tag)
	if err != nil {
		return zero, err
	}
	typed, ok := stored.(T)
	if !ok {
		return zero, fmt.Errorf("registry: instance %s/%s is %T, not %T", key.Kind, key.Tag, stored, zero)
	}
	return typed, nil
}

// Remove unregisters the instance stored under the key.
func Remove[T any](r *Registry, key Key[T]) error {
	return r.Unregister(key.Kind, key.Tag)
}
