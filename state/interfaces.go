package state

// Readable exposes read-only reactive state.
type Readable[T any] interface {
	Get() T
	Subscribe(fn func(T)) func()
	SubscribeWithScheduler(scheduler Scheduler, fn func(T)) func()
	Changed(fn func()) func()
}

// Writable exposes read/write reactive state.
type Writable[T any] interface {
	Readable[T]
	Set(value T)
	Update(fn func(T) T)
	Notify()
}
