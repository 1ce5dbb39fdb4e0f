// Package task tracks the lifecycle of a single asynchronous task as
// observable state.
package task

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/odvcencio/ripple-ui/result"
	"github.com/odvcencio/ripple-ui/state"
)

// Status is the controller's view of its task.
type Status int

const (
	// StatusSuccess is the idle state: no task has run, or the last task
	// succeeded.
	StatusSuccess Status = iota
	// StatusInProgress means a task is running.
	StatusInProgress
	// StatusFailed means the last task returned a failure result.
	StatusFailed
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusInProgress:
		return "in-progress"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// OverlapPolicy decides what Run does when a task is already in progress.
type OverlapPolicy int

const (
	// OverlapWarn logs a warning and proceeds. The overlapping runs race:
	// whichever resolves last overwrites the shared status.
	OverlapWarn OverlapPolicy = iota
	// OverlapReject refuses the new run with ErrOverlap, leaving the
	// controller untouched.
	OverlapReject
)

// ErrOverlap is returned by Run under OverlapReject when a task is
// already in progress.
var ErrOverlap = errors.New("task: run already in progress")

// Task produces a result. A non-nil error means the task itself broke;
// expected failures belong in the result's failure payload.
type Task[S, F any] func(ctx context.Context) (result.Result[S, F], error)

// Controller runs one task at a time and exposes its status as observable
// state. It serializes nothing: use one controller per concurrent task.
type Controller[S, F any] struct {
	mu       sync.Mutex
	status   Status
	notifier *state.Observable[struct{}]
	onChange func(Status)
	overlap  OverlapPolicy
	logger   *slog.Logger
}

// Option configures a Controller.
type Option func(*config)

type config struct {
	onChange func(Status)
	overlap  OverlapPolicy
	logger   *slog.Logger
}

// WithOnChange registers a callback invoked after every status change,
// after notifier subscribers have been told.
func WithOnChange(fn func(Status)) Option {
	return func(c *config) { c.onChange = fn }
}

// WithOverlapPolicy sets the overlapping-run policy.
func WithOverlapPolicy(policy OverlapPolicy) Option {
	return func(c *config) { c.overlap = policy }
}

// WithLogger sets the diagnostic sink. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// New creates an idle controller. The initial status is StatusSuccess.
func New[S, F any](opts ...Option) *Controller[S, F] {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller[S, F]{
		notifier: state.NewObservable(struct{}{}),
		onChange: cfg.onChange,
		overlap:  cfg.overlap,
		logger:   logger,
	}
}

// Status returns the current status.
func (c *Controller[S, F]) Status() Status {
	if c == nil {
		return StatusSuccess
	}
	c.mu.Lock()
	status := c.status
	c.mu.Unlock()
	return status
}

// Notifier returns the observable that pulses on every status change.
// Subscribe through it to re-render on transitions.
func (c *Controller[S, F]) Notifier() *state.Observable[struct{}] {
	if c == nil {
		return nil
	}
	return c.notifier
}

// Run executes fn and tracks it: status moves to StatusInProgress before
// fn starts, then to StatusSuccess or StatusFailed according to fn's
// result. The result is returned to the caller unchanged.
//
// Each transition mutates the status, pulses the notifier, then invokes
// the onChange callback, in that order.
//
// If fn returns a non-nil error, it propagates unchanged and the status
// stays at StatusInProgress. Callers that want the failure tracked should
// return a failure result instead of an error.
//
// Run does not cancel, time out, or queue. ctx is handed to fn untouched.
func (c *Controller[S, F]) Run(ctx context.Context, fn Task[S, F]) (result.Result[S, F], error) {
	if c == nil || fn == nil {
		return result.Result[S, F]{}, errors.New("task: nil controller or task")
	}
	runID := ulid.Make().String()

	c.mu.Lock()
	if c.status == StatusInProgress {
		if c.overlap == OverlapReject {
			c.mu.Unlock()
			c.logger.Warn("task run rejected, already in progress", "run_id", runID)
			return result.Result[S, F]{}, ErrOverlap
		}
		c.logger.Warn("task run overlaps one already in progress, statuses may interleave", "run_id", runID)
	}
	c.status = StatusInProgress
	c.mu.Unlock()
	c.announce(StatusInProgress, runID)

	res, err := fn(ctx)
	if err != nil {
		// The status is intentionally left at StatusInProgress: the task
		// broke rather than resolving, so there is no outcome to record.
		c.logger.Warn("task returned error, status left in progress", "run_id", runID, "error", err)
		return res, err
	}

	status := StatusSuccess
	if res.IsFailure() {
		status = StatusFailed
	}
	c.mu.Lock()
	c.status = status
	c.mu.Unlock()
	c.announce(status, runID)

	return res, nil
}

func (c *Controller[S, F]) announce(status Status, runID string) {
	c.notifier.Notify()
	if c.onChange != nil {
		c.onChange(status)
	}
	c.logger.Debug("task status changed", "run_id", runID, "status", status.String())
}
