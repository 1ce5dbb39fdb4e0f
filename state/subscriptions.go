package state

import "sync"

// Subscriptions tracks and clears multiple cancel callbacks. Widgets use
// one per mount so Unmount tears down every subscription at once.
type Subscriptions struct {
	mu      sync.Mutex
	cancels []func()
	sched   Scheduler
}

// NewSubscriptions creates a Subscriptions with a default scheduler.
func NewSubscriptions(scheduler Scheduler) *Subscriptions {
	return &Subscriptions{sched: scheduler}
}

// SetScheduler updates the default scheduler.
func (s *Subscriptions) SetScheduler(scheduler Scheduler) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.sched = scheduler
	s.mu.Unlock()
}

// Scheduler returns the default scheduler.
func (s *Subscriptions) Scheduler() Scheduler {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	scheduler := s.sched
	s.mu.Unlock()
	return scheduler
}

// Add registers a cancel callback.
func (s *Subscriptions) Add(cancel func()) {
	if s == nil || cancel == nil {
		return
	}
	s.mu.Lock()
	s.cancels = append(s.cancels, cancel)
	s.mu.Unlock()
}

// Watch registers a change listener and tracks the cancel. The default
// scheduler is used when the source supports scheduled subscriptions.
func (s *Subscriptions) Watch(src Subscribable, fn func()) {
	if s == nil || src == nil || fn == nil {
		return
	}
	if scheduler := s.Scheduler(); scheduler != nil {
		if ws, ok := src.(interface {
			ChangedWithScheduler(Scheduler, func()) func()
		}); ok {
			s.Add(ws.ChangedWithScheduler(scheduler, fn))
			return
		}
	}
	s.Add(src.Changed(fn))
}

// Clear cancels all tracked subscriptions.
func (s *Subscriptions) Clear() {
	if s == nil {
		return
	}
	s.mu.Lock()
	cancels := s.cancels
	s.cancels = nil
	s.mu.Unlock()
	for _, cancel := range cancels {
		if cancel != nil {
			cancel()
		}
	}
}

// Observe subscribes fn to src through the Subscriptions' default scheduler
// and tracks the cancel. The current value is delivered immediately.
func Observe[T any](s *Subscriptions, src Readable[T], fn func(T)) {
	if s == nil || src == nil || fn == nil {
		return
	}
	s.Add(src.SubscribeWithScheduler(s.Scheduler(), fn))
}
