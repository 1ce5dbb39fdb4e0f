package widgets

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

type trackedWidget struct {
	Base
	name     string
	log      *[]string
	children []Widget
}

func (w *trackedWidget) Render(tcell.Screen) {}

func (w *trackedWidget) Mount() {
	*w.log = append(*w.log, "mount:"+w.name)
}

func (w *trackedWidget) Unmount() {
	*w.log = append(*w.log, "unmount:"+w.name)
}

func (w *trackedWidget) ChildWidgets() []Widget {
	return w.children
}

func TestMountTree_ParentsBeforeChildren(t *testing.T) {
	var log []string
	child := &trackedWidget{name: "child", log: &log}
	parent := &trackedWidget{name: "parent", log: &log, children: []Widget{child}}

	MountTree(parent)
	if len(log) != 2 || log[0] != "mount:parent" || log[1] != "mount:child" {
		t.Fatalf("expected parent mounted before child, got %v", log)
	}
}

func TestUnmountTree_ChildrenBeforeParents(t *testing.T) {
	var log []string
	child := &trackedWidget{name: "child", log: &log}
	parent := &trackedWidget{name: "parent", log: &log, children: []Widget{child}}

	UnmountTree(parent)
	if len(log) != 2 || log[0] != "unmount:child" || log[1] != "unmount:parent" {
		t.Fatalf("expected child unmounted before parent, got %v", log)
	}
}

func TestMountTree_NilSafe(t *testing.T) {
	MountTree(nil)
	UnmountTree(nil)
}

func TestBase_LayoutInvalidatesOnChange(t *testing.T) {
	var b Base
	b.Layout(Rect{Width: 10, Height: 2})
	if !b.NeedsRender() {
		t.Fatalf("expected new bounds to invalidate")
	}

	b.ClearInvalidation()
	b.Layout(Rect{Width: 10, Height: 2})
	if b.NeedsRender() {
		t.Fatalf("expected unchanged bounds to not invalidate")
	}
}

func TestTruncateString(t *testing.T) {
	if got := truncateString("short", 10); got != "short" {
		t.Fatalf("expected no truncation, got %q", got)
	}
	if got := truncateString("a very long line", 7); got != "a ve..." {
		t.Fatalf("expected ellipsis truncation, got %q", got)
	}
	if got := truncateString("anything", 0); got != "" {
		t.Fatalf("expected empty string for zero width, got %q", got)
	}
}
