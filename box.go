package tabbar

import (
	"github.com/gdamore/tcell/v3"
	"go.uber.org/atomic"
)

// Box is the rectangle every primitive in this package embeds. It owns the
// primitive's position, clears it with a background color and keeps track of
// focus and of whether the primitive has to be drawn again.
type Box struct {
	x, y, width, height int

	background tcell.Color
	focused    bool
	onBlur     func()

	// Set by anything that changes what the primitive shows, cleared by Clear.
	dirty atomic.Bool
}

// NewBox returns a one-row box that needs drawing.
func NewBox() *Box {
	b := &Box{width: 15, height: 1, background: Styles.BackgroundColor}
	b.dirty.Store(true)
	return b
}

// Rect returns the position and size of the box.
func (b *Box) Rect() (x, y, width, height int) {
	return b.x, b.y, max(b.width, 0), max(b.height, 0)
}

// SetRect moves and resizes the box.
func (b *Box) SetRect(x, y, width, height int) {
	if b.x == x && b.y == y && b.width == width && b.height == height {
		return
	}
	b.x, b.y, b.width, b.height = x, y, width, height
	b.MarkDirty()
}

// Contains reports whether the cell at (x, y) lies inside the box.
func (b *Box) Contains(x, y int) bool {
	return x >= b.x && x < b.x+b.width && y >= b.y && y < b.y+b.height
}

// SetBackgroundColor sets the color Clear fills the box with.
func (b *Box) SetBackgroundColor(color tcell.Color) *Box {
	if b.background != color {
		b.background = color
		b.MarkDirty()
	}
	return b
}

func (b *Box) IsDirty() bool { return b.dirty.Load() }
func (b *Box) MarkDirty()    { b.dirty.Store(true) }

// Clear fills the box with its background and marks it clean. Primitives
// call it first thing in Draw.
func (b *Box) Clear(screen tcell.Screen) {
	b.dirty.Store(false)
	style := tcell.StyleDefault.Background(b.background)
	for row := b.y; row < b.y+b.height; row++ {
		fill(screen, b.x, row, b.width, style)
	}
}

// Draw clears the box.
func (b *Box) Draw(screen tcell.Screen) {
	b.Clear(screen)
}

// InputHandler ignores all keys.
func (b *Box) InputHandler(*tcell.EventKey) Command {
	return nil
}

// MouseHandler takes the focus when the left button goes down inside the box.
func (b *Box) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if action == MouseLeftDown && b.Contains(event.Position()) {
		return nil, FocusCommand{Target: b}
	}
	return nil, nil
}

// SetBlurFunc sets a function called whenever the box loses focus.
func (b *Box) SetBlurFunc(handler func()) *Box {
	b.onBlur = handler
	return b
}

func (b *Box) HasFocus() bool { return b.focused }

func (b *Box) Focus() {
	if !b.focused {
		b.focused = true
		b.MarkDirty()
	}
}

func (b *Box) Blur() {
	if b.focused {
		b.focused = false
		b.MarkDirty()
	}
	if b.onBlur != nil {
		b.onBlur()
	}
}
