package tabbar

import "github.com/gdamore/tcell/v3"

// Primitive is anything the Application can draw and route input to. Embed
// a *Box to get everything but Draw.
type Primitive interface {
	Draw(screen tcell.Screen)

	Rect() (x, y, width, height int)
	SetRect(x, y, width, height int)

	// IsDirty reports whether Draw would show something new.
	IsDirty() bool

	// InputHandler receives key events while the primitive has focus.
	InputHandler(event *tcell.EventKey) Command
	// MouseHandler receives mouse events. A non-nil capture receives all
	// further mouse events until it returns nil itself.
	MouseHandler(action MouseAction, event *tcell.EventMouse) (capture Primitive, cmd Command)

	HasFocus() bool
	Focus()
	Blur()
}
