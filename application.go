package tabbar

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v3"

	"github.com/xqrs/tabbar/anim"
)

const (
	// The size of the queued updates channel.
	updatesQueueSize = 100
	// The time between two animation frames.
	frameInterval = 16 * time.Millisecond
)

// MouseAction is what the mouse is logically doing, derived from the raw
// button state of consecutive mouse events.
type MouseAction int16

// Available mouse actions.
const (
	MouseMove MouseAction = iota
	MouseLeftDown
	MouseLeftUp
	// MouseLeftClick follows MouseLeftUp when the pointer did not move since
	// the button went down.
	MouseLeftClick
	MouseScrollUp
	MouseScrollDown
	MouseScrollLeft
	MouseScrollRight
)

// queuedUpdate is a function run by the event loop. If done is not nil, it
// receives exactly one element after f has run.
type queuedUpdate struct {
	f    func()
	done chan struct{}
}

// Application owns the screen, routes events to the root primitive and
// drives animations. It implements [anim.Animator] by stepping animations
// from the event loop, one frame at a time, so primitives never see
// concurrent calls.
//
//	if err := tabbar.NewApplication().SetRoot(p).Run(); err != nil {
//	    panic(err)
//	}
type Application struct {
	sync.RWMutex

	screen tcell.Screen
	root   Primitive
	focus  Primitive

	// Functions queued from goroutines and animation frames.
	updates chan queuedUpdate

	// Closed once the application has been stopped.
	done     chan struct{}
	stopOnce sync.Once

	// Mouse state, only touched by the event loop.
	capture      Primitive
	lastX, lastY int
	downX, downY int
	buttons      tcell.ButtonMask

	// forceRedraw requests a full clear before the next frame.
	forceRedraw bool
}

var _ anim.Animator = (*Application)(nil)

// NewApplication creates and returns a new application.
func NewApplication() *Application {
	return &Application{
		updates: make(chan queuedUpdate, updatesQueueSize),
		done:    make(chan struct{}),
	}
}

// Run starts the event loop and returns once [Application.Stop] was called
// or the screen reported an error.
func (a *Application) Run() error {
	a.Lock()
	if a.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			a.Unlock()
			return err
		}
		if err = screen.Init(); err != nil {
			a.Unlock()
			return err
		}
		screen.EnableMouse()
		a.screen = screen
		a.forceRedraw = true
	}
	events := a.screen.EventQ()
	a.Unlock()

	// A panic leaves the terminal in raw mode unless the screen is finalized.
	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()

	a.draw()

	for {
		select {
		case event := <-events:
			if event == nil {
				return nil
			}
			if err := a.handleEvent(event); err != nil {
				a.Stop()
				return err
			}
		case update := <-a.updates:
			update.f()
			if update.done != nil {
				update.done <- struct{}{}
			}
		case <-a.done:
			return nil
		}
	}
}

func (a *Application) handleEvent(event tcell.Event) error {
	switch event := event.(type) {
	case *tcell.EventKey:
		a.RLock()
		root := a.root
		a.RUnlock()
		if root != nil && root.HasFocus() && a.run(root.InputHandler(event)) {
			a.draw()
		}
	case *tcell.EventResize:
		// Resize events can imply terminal state changes even when the size
		// is unchanged.
		a.Lock()
		a.forceRedraw = true
		a.Unlock()
		a.draw()
	case *tcell.EventMouse:
		if a.handleMouse(event) {
			a.draw()
		}
	case *tcell.EventError:
		return event
	}
	return nil
}

// handleMouse derives mouse actions from event and sends them to the
// capturing primitive, or the root if none captures. It reports whether the
// screen needs redrawing.
func (a *Application) handleMouse(event *tcell.EventMouse) bool {
	redraw := false
	fire := func(action MouseAction) {
		target := a.capture
		if target == nil {
			a.RLock()
			target = a.root
			a.RUnlock()
		}
		if target == nil {
			return
		}
		capture, cmd := target.MouseHandler(action, event)
		a.capture = capture
		if a.run(cmd) {
			redraw = true
		}
	}

	x, y := event.Position()
	buttons := event.Buttons()
	if x != a.lastX || y != a.lastY {
		fire(MouseMove)
		a.lastX, a.lastY = x, y
	}

	if (buttons^a.buttons)&tcell.ButtonPrimary != 0 {
		if buttons&tcell.ButtonPrimary != 0 {
			a.downX, a.downY = x, y
			fire(MouseLeftDown)
		} else {
			// The releasing primitive also gets the click, even though
			// releasing ended its capture.
			target := a.capture
			fire(MouseLeftUp)
			if x == a.downX && y == a.downY {
				if a.capture == nil {
					a.capture = target
				}
				fire(MouseLeftClick)
			}
		}
	}
	a.buttons = buttons

	for _, wheel := range []struct {
		button tcell.ButtonMask
		action MouseAction
	}{
		{tcell.WheelUp, MouseScrollUp},
		{tcell.WheelDown, MouseScrollDown},
		{tcell.WheelLeft, MouseScrollLeft},
		{tcell.WheelRight, MouseScrollRight},
	} {
		if buttons&wheel.button != 0 {
			fire(wheel.action)
		}
	}
	return redraw
}

// Stop stops the application, causing Run to return. Pending animations
// are dropped.
func (a *Application) Stop() {
	a.stopOnce.Do(func() {
		close(a.done)
	})

	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		return
	}
	a.screen.Fini()
	a.screen = nil
}

// Start implements [anim.Animator]. It must be called from the event loop,
// which is where primitives run their input handlers and queued updates.
// Frames are stepped from the event loop too, each followed by a redraw if
// the root changed. Animations with a non-positive duration complete before
// Start returns.
func (a *Application) Start(d time.Duration, step func(progress float64), done func()) *anim.Handle {
	h := anim.NewHandle()
	if d <= 0 {
		h.Step(step, 1)
		h.Finish(done)
		return h
	}

	begin := time.Now()
	var frame func()
	frame = func() {
		if !h.Running() {
			return
		}
		progress := float64(time.Since(begin)) / float64(d)
		if progress >= 1 {
			h.Step(step, 1)
			h.Finish(done)
			a.drawIfDirty()
			return
		}
		h.Step(step, progress)
		a.drawIfDirty()
		a.schedule(frame)
	}
	a.schedule(frame)
	return h
}

// schedule queues f for the next animation frame.
func (a *Application) schedule(f func()) {
	time.AfterFunc(frameInterval, func() {
		a.post(f)
	})
}

// post queues f for execution in the event loop without waiting for it. It
// returns false if the application was stopped first.
func (a *Application) post(f func()) bool {
	if a.stopped() {
		return false
	}
	select {
	case a.updates <- queuedUpdate{f: f}:
		return true
	case <-a.done:
		return false
	}
}

func (a *Application) stopped() bool {
	select {
	case <-a.done:
		return true
	default:
		return false
	}
}

func (a *Application) drawIfDirty() {
	a.RLock()
	root := a.root
	a.RUnlock()
	if root != nil && root.IsDirty() {
		a.draw()
	}
}

func (a *Application) draw() {
	a.Lock()
	screen, root, force := a.screen, a.root, a.forceRedraw
	a.forceRedraw = false
	a.Unlock()

	if screen == nil || root == nil {
		return
	}

	width, height := screen.Size()
	root.SetRect(0, 0, width, height)
	// tcell only sends the cells that changed in Show.
	if force {
		screen.Clear()
	}
	root.Draw(screen)
	screen.Show()
}

// SetRoot sets the primitive that fills the screen and gives it the focus.
func (a *Application) SetRoot(root Primitive) *Application {
	a.Lock()
	a.root = root
	if a.screen != nil {
		a.forceRedraw = true
	}
	a.Unlock()

	a.SetFocus(root)
	return a
}

// SetFocus blurs the focused primitive and focuses p. Key events always go
// to the root, which forwards them as it sees fit.
func (a *Application) SetFocus(p Primitive) *Application {
	a.Lock()
	prev := a.focus
	a.focus = p
	a.Unlock()

	if prev != nil && prev != p {
		prev.Blur()
	}
	if p != nil {
		p.Focus()
	}
	return a
}

// Focus returns the focused primitive, or nil.
func (a *Application) Focus() Primitive {
	a.RLock()
	defer a.RUnlock()
	return a.focus
}

// QueueUpdate runs f in the event loop and waits for it, or returns right
// away if the application has been stopped. Calling it from the event loop
// itself deadlocks.
func (a *Application) QueueUpdate(f func()) *Application {
	if a.stopped() {
		return a
	}
	ch := make(chan struct{})
	select {
	case a.updates <- queuedUpdate{f: f, done: ch}:
	case <-a.done:
		return a
	}
	select {
	case <-ch:
	case <-a.done:
	}
	return a
}

// run carries out cmd and reports whether the screen needs redrawing.
func (a *Application) run(cmd Command) bool {
	switch c := cmd.(type) {
	case batch:
		redraw := false
		for _, item := range c {
			if a.run(item) {
				redraw = true
			}
		}
		return redraw
	case RedrawCommand:
		return true
	case QuitCommand:
		a.Stop()
	case FocusCommand:
		if c.Target == nil || c.Target == a.Focus() {
			return false
		}
		a.SetFocus(c.Target)
		return true
	case TitleCommand:
		a.RLock()
		screen := a.screen
		a.RUnlock()
		if screen != nil {
			screen.SetTitle(string(c))
		}
	}
	return false
}
