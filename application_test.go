package tabbar

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/require"
)

// drain runs queued updates the way the event loop does until done returns
// true.
func drain(t *testing.T, a *Application, done func() bool) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for !done() {
		select {
		case update := <-a.updates:
			update.f()
		case <-deadline:
			t.Fatal("timed out waiting for queued updates")
		}
	}
}

func TestApplicationStartWithoutDurationCompletesRightAway(t *testing.T) {
	a := NewApplication()
	var steps []float64
	finished := false
	h := a.Start(0, func(p float64) { steps = append(steps, p) }, func() { finished = true })

	require.True(t, finished)
	require.True(t, h.Finished())
	require.Equal(t, []float64{1}, steps)
}

func TestApplicationStartStepsFromEventLoop(t *testing.T) {
	a := NewApplication()
	var steps []float64
	finished := false
	h := a.Start(40*time.Millisecond, func(p float64) { steps = append(steps, p) }, func() { finished = true })

	// Nothing happens until the event loop runs the frames.
	require.True(t, h.Running())
	require.Empty(t, steps)

	drain(t, a, func() bool { return finished })
	require.True(t, h.Finished())
	require.NotEmpty(t, steps)
	require.Equal(t, 1.0, steps[len(steps)-1])
	require.IsIncreasing(t, steps)
}

func TestApplicationCancelledAnimationStops(t *testing.T) {
	a := NewApplication()
	finished := false
	h := a.Start(20*time.Millisecond, nil, func() { finished = true })
	h.Cancel()

	// The first frame still arrives but schedules nothing further.
	select {
	case update := <-a.updates:
		update.f()
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the first frame")
	}
	select {
	case <-a.updates:
		t.Fatal("cancelled animation kept running")
	case <-time.After(3 * frameInterval):
	}
	require.False(t, finished)
	require.True(t, h.Cancelled())
}

func TestApplicationPostAfterStop(t *testing.T) {
	a := NewApplication()
	a.Stop()
	a.Stop()
	require.False(t, a.post(func() {}))

	// QueueUpdate must not block on a stopped application.
	ran := false
	a.QueueUpdate(func() { ran = true })
	require.False(t, ran)
}

func TestApplicationRunCommand(t *testing.T) {
	a := NewApplication()
	box := NewBox()

	require.False(t, a.run(nil))
	require.True(t, a.run(RedrawCommand{}))
	require.True(t, a.run(Batch(nil, RedrawCommand{}, TitleCommand("tabs"))))
	require.False(t, a.run(TitleCommand("tabs")))

	require.True(t, a.run(FocusCommand{Target: box}))
	require.True(t, box.HasFocus())
	require.Same(t, box, a.Focus())
	require.False(t, a.run(FocusCommand{Target: box}))

	require.False(t, a.run(QuitCommand{}))
	select {
	case <-a.done:
	default:
		t.Fatal("quit did not stop the application")
	}
}

func TestBatch(t *testing.T) {
	require.Nil(t, Batch())
	require.Nil(t, Batch(nil, nil))
	require.Equal(t, RedrawCommand{}, Batch(nil, RedrawCommand{}))
	require.Equal(t,
		batch{RedrawCommand{}, QuitCommand{}, TitleCommand("x")},
		Batch(Batch(RedrawCommand{}, nil), Batch(QuitCommand{}, TitleCommand("x"))),
	)
}

func TestSetFocusBlursPrevious(t *testing.T) {
	a := NewApplication()
	first, second := NewBox(), NewBox()
	blurred := 0
	first.SetBlurFunc(func() { blurred++ })

	a.SetRoot(first)
	require.True(t, first.HasFocus())
	a.SetFocus(first)
	require.Zero(t, blurred)

	a.SetFocus(second)
	require.Equal(t, 1, blurred)
	require.False(t, first.HasFocus())
	require.True(t, second.HasFocus())
	require.Same(t, second, a.Focus())
}

// mouseRecorder records the actions it receives and captures the mouse while
// the left button is down.
type mouseRecorder struct {
	*Box
	actions []MouseAction
}

func (m *mouseRecorder) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	m.actions = append(m.actions, action)
	switch action {
	case MouseLeftDown, MouseMove:
		if event.Buttons()&tcell.ButtonPrimary != 0 {
			return m, nil
		}
	case MouseLeftClick:
		return nil, RedrawCommand{}
	}
	return nil, nil
}

func TestApplicationMouseClick(t *testing.T) {
	a := NewApplication()
	root := &mouseRecorder{Box: NewBox()}
	a.SetRoot(root)

	require.False(t, a.handleMouse(tcell.NewEventMouse(2, 0, tcell.ButtonPrimary, 0)))
	require.Same(t, root, a.capture)
	require.True(t, a.handleMouse(tcell.NewEventMouse(2, 0, tcell.ButtonNone, 0)))
	require.Nil(t, a.capture)
	require.Equal(t, []MouseAction{MouseMove, MouseLeftDown, MouseLeftUp, MouseLeftClick}, root.actions)
}

func TestApplicationMouseDragHasNoClick(t *testing.T) {
	a := NewApplication()
	root := &mouseRecorder{Box: NewBox()}
	a.SetRoot(root)

	a.handleMouse(tcell.NewEventMouse(0, 0, tcell.ButtonPrimary, 0))
	a.handleMouse(tcell.NewEventMouse(5, 0, tcell.ButtonPrimary, 0))
	require.False(t, a.handleMouse(tcell.NewEventMouse(5, 0, tcell.ButtonNone, 0)))
	require.Equal(t, []MouseAction{MouseLeftDown, MouseMove, MouseLeftUp}, root.actions)
}

func TestApplicationMouseWheel(t *testing.T) {
	a := NewApplication()
	root := &mouseRecorder{Box: NewBox()}
	a.SetRoot(root)

	a.handleMouse(tcell.NewEventMouse(0, 0, tcell.WheelDown, 0))
	a.handleMouse(tcell.NewEventMouse(0, 0, tcell.WheelLeft, 0))
	require.Equal(t, []MouseAction{MouseScrollDown, MouseScrollLeft}, root.actions)
}
