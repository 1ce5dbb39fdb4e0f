package widgets

import "sync/atomic"

// Invalidator coalesces redraw requests. The post func hands a request to
// the host render loop and reports whether it was accepted; requests made
// while one is pending are dropped until Reset.
type Invalidator struct {
	post    func() bool
	pending atomic.Bool
}

// NewInvalidator creates an invalidator wired to a post function.
func NewInvalidator(post func() bool) *Invalidator {
	return &Invalidator{post: post}
}

// Invalidate requests a render pass.
func (i *Invalidator) Invalidate() {
	if i == nil || i.post == nil {
		return
	}
	if i.pending.CompareAndSwap(false, true) {
		if !i.post() {
			i.pending.Store(false)
		}
	}
}

// Schedule runs fn and requests a render pass. It satisfies
// state.Scheduler, so observer subscriptions routed through an
// Invalidator trigger redraws automatically.
func (i *Invalidator) Schedule(fn func()) {
	if fn == nil {
		return
	}
	fn()
	i.Invalidate()
}

// Reset clears the pending flag. The host loop calls this after a render
// pass so the next change posts again.
func (i *Invalidator) Reset() {
	if i == nil {
		return
	}
	i.pending.Store(false)
}
