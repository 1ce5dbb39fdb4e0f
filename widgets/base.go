package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Alignment controls horizontal text placement.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Base provides common functionality for widgets.
// Embed this in widget structs to get default implementations.
type Base struct {
	bounds      Rect
	needsRender bool
}

// Layout stores the assigned bounds.
func (b *Base) Layout(bounds Rect) {
	if b == nil {
		return
	}
	if b.bounds != bounds {
		b.bounds = bounds
		b.needsRender = true
	}
}

// Bounds returns the widget's assigned bounds.
func (b *Base) Bounds() Rect {
	if b == nil {
		return Rect{}
	}
	return b.bounds
}

// Invalidate marks the widget as needing a render pass.
func (b *Base) Invalidate() {
	if b == nil {
		return
	}
	b.needsRender = true
}

// NeedsRender reports whether the widget needs to re-render.
func (b *Base) NeedsRender() bool {
	if b == nil {
		return false
	}
	return b.needsRender
}

// ClearInvalidation clears the render-needed flag.
func (b *Base) ClearInvalidation() {
	if b == nil {
		return
	}
	b.needsRender = false
}

// setString draws text at (x, y), advancing by display width per rune.
// Drawing stops at maxX.
func setString(screen tcell.Screen, x, y, maxX int, text string, style tcell.Style) {
	if screen == nil {
		return
	}
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x += w
	}
}

// textWidth returns the display width of s in cells.
func textWidth(s string) int {
	return runewidth.StringWidth(s)
}

// truncateString truncates a string to fit within maxWidth display cells.
// Adds "..." if truncated.
func truncateString(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// alignOffset returns the x offset for text of the given width inside
// a field of the given total width.
func alignOffset(align Alignment, textWidth, fieldWidth int) int {
	switch align {
	case AlignCenter:
		if fieldWidth > textWidth {
			return (fieldWidth - textWidth) / 2
		}
	case AlignRight:
		if fieldWidth > textWidth {
			return fieldWidth - textWidth
		}
	}
	return 0
}
