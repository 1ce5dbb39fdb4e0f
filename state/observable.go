// Package state provides minimal reactive primitives for terminal UIs.
package state

import "sync"

// Subscribable emits change notifications.
type Subscribable interface {
	Changed(fn func()) func()
}

type subscriber[T any] struct {
	id        int
	onNext    func(T)
	onChange  func()
	scheduler Scheduler
}

func (s subscriber[T]) deliver(value T) {
	fn := s.onChange
	if s.onNext != nil {
		next := s.onNext
		fn = func() { next(value) }
	}
	if fn == nil {
		return
	}
	if s.scheduler == nil {
		fn()
		return
	}
	s.scheduler.Schedule(fn)
}

// Observable holds a single value and notifies subscribers on every write.
// New subscribers receive the current value immediately, before any
// subsequent emission. Delivery is synchronous in the caller's goroutine
// and follows subscriber registration order.
type Observable[T any] struct {
	mu    sync.Mutex
	value T
	subs  []subscriber[T]
	next  int
}

// NewObservable creates an observable with an initial value.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// Get returns the current value.
func (o *Observable[T]) Get() T {
	if o == nil {
		var zero T
		return zero
	}
	o.mu.Lock()
	value := o.value
	o.mu.Unlock()
	return value
}

// Set stores value and emits it to all current subscribers.
func (o *Observable[T]) Set(value T) {
	if o == nil {
		return
	}
	o.mu.Lock()
	o.value = value
	subs := o.copySubscribersLocked()
	o.mu.Unlock()

	for _, sub := range subs {
		sub.deliver(value)
	}
}

// Update replaces the value using fn and emits the result.
// fn runs outside the observable lock; Update is not atomic across goroutines.
func (o *Observable[T]) Update(fn func(T) T) {
	if o == nil || fn == nil {
		return
	}
	o.Set(fn(o.Get()))
}

// Notify re-emits the current value without changing it. Use it to signal
// that state reachable through the value changed in place.
func (o *Observable[T]) Notify() {
	if o == nil {
		return
	}
	o.mu.Lock()
	value := o.value
	subs := o.copySubscribersLocked()
	o.mu.Unlock()

	for _, sub := range subs {
		sub.deliver(value)
	}
}

// Subscribe registers a listener for the current value and every emission.
// The current value is delivered before Subscribe returns. The returned
// cancel func is idempotent and does not affect other subscribers.
func (o *Observable[T]) Subscribe(fn func(T)) func() {
	return o.SubscribeWithScheduler(nil, fn)
}

// SubscribeWithScheduler registers a listener using a scheduler.
// If scheduler is nil, callbacks run synchronously.
func (o *Observable[T]) SubscribeWithScheduler(scheduler Scheduler, fn func(T)) func() {
	if o == nil || fn == nil {
		return func() {}
	}
	sub := subscriber[T]{onNext: fn, scheduler: scheduler}
	current, cancel := o.add(sub)
	sub.deliver(current)
	return cancel
}

// Changed registers a notification-only listener. Unlike Subscribe it does
// not replay the current value; it fires on every subsequent emission.
func (o *Observable[T]) Changed(fn func()) func() {
	return o.ChangedWithScheduler(nil, fn)
}

// ChangedWithScheduler registers a notification-only listener using a
// scheduler. If scheduler is nil, callbacks run synchronously.
func (o *Observable[T]) ChangedWithScheduler(scheduler Scheduler, fn func()) func() {
	if o == nil || fn == nil {
		return func() {}
	}
	_, cancel := o.add(subscriber[T]{onChange: fn, scheduler: scheduler})
	return cancel
}

func (o *Observable[T]) add(sub subscriber[T]) (T, func()) {
	o.mu.Lock()
	sub.id = o.next
	o.next++
	o.subs = append(o.subs, sub)
	current := o.value
	o.mu.Unlock()

	id := sub.id
	var once sync.Once
	return current, func() {
		once.Do(func() {
			o.mu.Lock()
			for i := range o.subs {
				if o.subs[i].id == id {
					o.subs = append(o.subs[:i], o.subs[i+1:]...)
					break
				}
			}
			o.mu.Unlock()
		})
	}
}

func (o *Observable[T]) copySubscribersLocked() []subscriber[T] {
	if len(o.subs) == 0 {
		return nil
	}
	subs := make([]subscriber[T], len(o.subs))
	copy(subs, o.subs)
	return subs
}
