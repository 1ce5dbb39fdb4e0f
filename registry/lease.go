package registry

import "sync"

// Lease ties a registry entry to a widget mount. Acquire registers an
// instance only when the key is free and remembers whether this acquire
// created it; Release evicts only in that case, so an instance another
// owner installed first survives this mount's teardown.
type Lease struct {
	reg      *Registry
	kind     string
	tag      string
	instance any
	owned    bool
	once     sync.Once
}

// Acquire fetches the instance under (kind, tag), calling create to
// register one when the key is free.
func (r *Registry) Acquire(kind, tag string, create func() any) *Lease {
	lease := &Lease{reg: r, kind: kind, tag: tag}
	if r == nil || create == nil {
		return lease
	}
	r.mu.Lock()
	key := entryKey{kind: kind, tag: tag}
	if existing, ok := r.entries[key]; ok {
		r.mu.Unlock()
		lease.instance = existing
		return lease
	}
	instance := create()
	r.entries[key] = instance
	r.mu.Unlock()
	r.logger.Debug("registry instance registered", "kind", kind, "tag", tag)
	lease.instance = instance
	lease.owned = true
	return lease
}

// Instance returns the leased instance.
func (l *Lease) Instance() any {
	if l == nil {
		return nil
	}
	return l.instance
}

// Owned reports whether this lease created the registry entry.
func (l *Lease) Owned() bool {
	if l == nil {
		return false
	}
	return l.owned
}

// Release unregisters the entry if this lease created it. It is
// idempotent and a no-op for leases over pre-existing entries.
func (l *Lease) Release() {
	if l == nil || l.reg == nil {
		return
	}
	l.once.Do(func() {
		if !l.owned {
			return
		}
		// Ignore a miss: someone already evicted the entry.
		_ = l.reg.Unregister(l.kind, l.tag)
	})
}
