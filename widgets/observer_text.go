package widgets

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/ripple-ui/state"
)

func fmtDefault[T any](value T) string {
	return fmt.Sprint(value)
}

// ObserverText is a one-line label bound to an observable. It formats the
// observed value into text, tracks it across emissions, and manages its
// subscription in Mount/Unmount.
type ObserverText[T any] struct {
	Base
	source    state.Readable[T]
	format    func(T) string
	subs      state.Subscriptions
	text      string
	style     tcell.Style
	alignment Alignment
	mounted   bool
}

// NewObserverText creates a label bound to source. A nil format falls
// back to fmtDefault.
func NewObserverText[T any](source state.Readable[T], format func(T) string) *ObserverText[T] {
	if format == nil {
		format = fmtDefault[T]
	}
	label := &ObserverText[T]{
		source: source,
		format: format,
		style:  tcell.StyleDefault,
	}
	if source != nil {
		label.text = format(source.Get())
	}
	return label
}

// SetScheduler routes subscription callbacks through scheduler.
// Call before Mount.
func (o *ObserverText[T]) SetScheduler(scheduler state.Scheduler) {
	o.subs.SetScheduler(scheduler)
}

// SetStyle sets the label style.
func (o *ObserverText[T]) SetStyle(style tcell.Style) {
	o.style = style
}

// SetAlignment sets text alignment.
func (o *ObserverText[T]) SetAlignment(align Alignment) {
	o.alignment = align
}

// Text returns the current label text.
func (o *ObserverText[T]) Text() string {
	return o.text
}

// Mount subscribes to the source observable.
func (o *ObserverText[T]) Mount() {
	o.mounted = true
	o.subscribe()
}

// Unmount drops the subscription.
func (o *ObserverText[T]) Unmount() {
	o.mounted = false
	o.subs.Clear()
}

// Render draws the label into its bounds.
func (o *ObserverText[T]) Render(screen tcell.Screen) {
	bounds := o.Bounds()
	if bounds.Width == 0 || bounds.Height == 0 {
		return
	}
	text := truncateString(o.text, bounds.Width)
	x := bounds.X + alignOffset(o.alignment, textWidth(text), bounds.Width)
	setString(screen, x, bounds.Y, bounds.X+bounds.Width, text, o.style)
	o.ClearInvalidation()
}

func (o *ObserverText[T]) subscribe() {
	o.subs.Clear()
	if o.source == nil {
		o.text = ""
		return
	}
	state.Observe(&o.subs, o.source, o.onNext)
}

func (o *ObserverText[T]) onNext(value T) {
	if !o.mounted {
		return
	}
	o.text = o.format(value)
	o.Invalidate()
}
