package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/ripple-ui/state"
	"github.com/odvcencio/ripple-ui/task"
)

// StatusText shows a per-status label for a task controller, re-rendering
// on every status transition.
type StatusText struct {
	Base
	notifier state.Subscribable
	status   func() task.Status
	subs     state.Subscriptions
	labels   map[task.Status]string
	styles   map[task.Status]tcell.Style
	current  task.Status
	mounted  bool
}

// NewStatusText creates a status label bound to a controller.
func NewStatusText[S, F any](ctrl *task.Controller[S, F]) *StatusText {
	s := &StatusText{
		labels: map[task.Status]string{
			task.StatusInProgress: "working...",
			task.StatusSuccess:    "done",
			task.StatusFailed:     "failed",
		},
		styles: map[task.Status]tcell.Style{
			task.StatusInProgress: tcell.StyleDefault.Foreground(tcell.ColorYellow),
			task.StatusSuccess:    tcell.StyleDefault.Foreground(tcell.ColorGreen),
			task.StatusFailed:     tcell.StyleDefault.Foreground(tcell.ColorRed),
		},
	}
	if ctrl != nil {
		s.notifier = ctrl.Notifier()
		s.status = ctrl.Status
		s.current = ctrl.Status()
	}
	return s
}

// SetScheduler routes subscription callbacks through scheduler.
// Call before Mount.
func (s *StatusText) SetScheduler(scheduler state.Scheduler) {
	s.subs.SetScheduler(scheduler)
}

// SetLabel sets the text shown for a status.
func (s *StatusText) SetLabel(status task.Status, text string) {
	s.labels[status] = text
}

// SetStyle sets the style used for a status.
func (s *StatusText) SetStyle(status task.Status, style tcell.Style) {
	s.styles[status] = style
}

// Status returns the status the widget last observed.
func (s *StatusText) Status() task.Status {
	return s.current
}

// Text returns the label for the last observed status.
func (s *StatusText) Text() string {
	return s.labels[s.current]
}

// Mount subscribes to controller transitions.
func (s *StatusText) Mount() {
	s.mounted = true
	s.subs.Clear()
	if s.status != nil {
		s.current = s.status()
	}
	if s.notifier != nil {
		s.subs.Watch(s.notifier, s.onTransition)
	}
}

// Unmount drops the subscription.
func (s *StatusText) Unmount() {
	s.mounted = false
	s.subs.Clear()
}

// Render draws the current status label.
func (s *StatusText) Render(screen tcell.Screen) {
	bounds := s.Bounds()
	if bounds.Width == 0 || bounds.Height == 0 {
		return
	}
	text := truncateString(s.Text(), bounds.Width)
	setString(screen, bounds.X, bounds.Y, bounds.X+bounds.Width, text, s.styles[s.current])
	s.ClearInvalidation()
}

func (s *StatusText) onTransition() {
	if !s.mounted || s.status == nil {
		return
	}
	s.current = s.status()
	s.Invalidate()
}
