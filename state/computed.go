package state

import "sync"

// Computed derives its value from other observables. It recomputes when
// any dependency emits and republishes through its own observable, so
// downstream subscribers see the usual replay-then-changes contract.
type Computed[T any] struct {
	out       *Observable[T]
	compute   func() T
	mu        sync.Mutex
	cancels   []func()
	scheduler Scheduler
}

// NewComputed creates a derived value from dependencies.
func NewComputed[T any](compute func() T, deps ...Subscribable) *Computed[T] {
	return NewComputedWithScheduler(nil, compute, deps...)
}

// NewComputedWithScheduler creates a derived value and schedules recomputes.
func NewComputedWithScheduler[T any](scheduler Scheduler, compute func() T, deps ...Subscribable) *Computed[T] {
	if compute == nil {
		compute = func() T {
			var zero T
			return zero
		}
	}
	c := &Computed[T]{
		out:       NewObservable(compute()),
		compute:   compute,
		scheduler: scheduler,
	}
	for _, dep := range deps {
		if dep == nil {
			continue
		}
		cancel := dep.Changed(c.enqueueRecompute)
		if cancel != nil {
			c.cancels = append(c.cancels, cancel)
		}
	}
	return c
}

// Get returns the current computed value.
func (c *Computed[T]) Get() T {
	if c == nil {
		var zero T
		return zero
	}
	return c.out.Get()
}

// Subscribe registers a listener for the current value and every recompute.
func (c *Computed[T]) Subscribe(fn func(T)) func() {
	if c == nil {
		return func() {}
	}
	return c.out.Subscribe(fn)
}

// SubscribeWithScheduler registers a listener using a scheduler.
// If scheduler is nil, callbacks run synchronously.
func (c *Computed[T]) SubscribeWithScheduler(scheduler Scheduler, fn func(T)) func() {
	if c == nil {
		return func() {}
	}
	return c.out.SubscribeWithScheduler(scheduler, fn)
}

// Changed registers a notification-only listener.
func (c *Computed[T]) Changed(fn func()) func() {
	if c == nil {
		return func() {}
	}
	return c.out.Changed(fn)
}

// Stop detaches from dependency updates.
func (c *Computed[T]) Stop() {
	if c == nil {
		return
	}
	c.mu.Lock()
	cancels := c.cancels
	c.cancels = nil
	c.mu.Unlock()
	for _, cancel := range cancels {
		if cancel != nil {
			cancel()
		}
	}
}

func (c *Computed[T]) recompute() {
	if c == nil {
		return
	}
	c.out.Set(c.compute())
}

func (c *Computed[T]) enqueueRecompute() {
	if c == nil {
		return
	}
	if c.scheduler == nil {
		c.recompute()
		return
	}
	c.scheduler.Schedule(c.recompute)
}
