package widgets

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/odvcencio/ripple-ui/result"
	"github.com/odvcencio/ripple-ui/task"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStatusText_FollowsController(t *testing.T) {
	ctrl := task.New[int, error](task.WithLogger(quietLogger()))
	status := NewStatusText(ctrl)
	status.Mount()

	if status.Status() != task.StatusSuccess {
		t.Fatalf("expected idle status success, got %v", status.Status())
	}

	ctrl.Run(context.Background(), func(context.Context) (result.Result[int, error], error) {
		return result.Failure[int](errors.New("boom")), nil
	})
	if status.Status() != task.StatusFailed {
		t.Fatalf("expected observed status failed, got %v", status.Status())
	}
	if status.Text() != "failed" {
		t.Fatalf("expected failed label, got %q", status.Text())
	}

	ctrl.Run(context.Background(), func(context.Context) (result.Result[int, error], error) {
		return result.Success[int, error](1), nil
	})
	if status.Status() != task.StatusSuccess || status.Text() != "done" {
		t.Fatalf("expected success label, got %v %q", status.Status(), status.Text())
	}
}

func TestStatusText_CustomLabels(t *testing.T) {
	ctrl := task.New[int, error](task.WithLogger(quietLogger()))
	status := NewStatusText(ctrl)
	status.SetLabel(task.StatusSuccess, "all good")
	status.Mount()

	if status.Text() != "all good" {
		t.Fatalf("expected custom label, got %q", status.Text())
	}
}

func TestStatusText_UnmountStopsTracking(t *testing.T) {
	ctrl := task.New[int, error](task.WithLogger(quietLogger()))
	status := NewStatusText(ctrl)
	status.Mount()
	status.Unmount()

	ctrl.Run(context.Background(), func(context.Context) (result.Result[int, error], error) {
		return result.Failure[int](errors.New("boom")), nil
	})
	if status.Status() != task.StatusSuccess {
		t.Fatalf("expected unmounted widget to stop tracking, got %v", status.Status())
	}
}

func TestStatusText_Render(t *testing.T) {
	screen := newTestScreen(t, 20, 1)
	ctrl := task.New[int, error](task.WithLogger(quietLogger()))
	status := NewStatusText(ctrl)
	status.Layout(Rect{X: 0, Y: 0, Width: 20, Height: 1})
	status.Mount()

	status.Render(screen)
	if got := screenRow(screen, 0, 4); got != "done" {
		t.Fatalf("expected rendered idle label, got %q", got)
	}
}
