// Package widgets provides view-binding widgets that re-render when the
// reactive state they observe changes.
package widgets

import "github.com/gdamore/tcell/v2"

// Rect is a rectangle in screen cells.
type Rect struct {
	X, Y, Width, Height int
}

// Widget draws itself into assigned bounds on a tcell screen.
type Widget interface {
	Layout(bounds Rect)
	Render(screen tcell.Screen)
}

// ChildProvider is implemented by widgets that contain other widgets.
type ChildProvider interface {
	ChildWidgets() []Widget
}

// Lifecycle is implemented by widgets that need mount/unmount hooks.
// Observer widgets subscribe on Mount and must unsubscribe on Unmount.
type Lifecycle interface {
	Mount()
	Unmount()
}

// MountTree calls Mount on widgets that implement Lifecycle, parents
// before children.
func MountTree(root Widget) {
	if root == nil {
		return
	}
	if m, ok := root.(Lifecycle); ok {
		m.Mount()
	}
	if children, ok := root.(ChildProvider); ok {
		for _, child := range children.ChildWidgets() {
			MountTree(child)
		}
	}
}

// UnmountTree calls Unmount on widgets that implement Lifecycle, children
// before parents.
func UnmountTree(root Widget) {
	if root == nil {
		return
	}
	if children, ok := root.(ChildProvider); ok {
		for _, child := range children.ChildWidgets() {
			UnmountTree(child)
		}
	}
	if m, ok := root.(Lifecycle); ok {
		m.Unmount()
	}
}
