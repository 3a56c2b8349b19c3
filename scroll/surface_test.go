package scroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/xqrs/tabbar/anim"
	"github.com/xqrs/tabbar/geom"
)

type recorder struct {
	events []string
}

func (r *recorder) handlers() Handlers {
	return Handlers{
		Scrolled: func() { r.events = append(r.events, "scrolled") },
		DragEnded: func(decelerate bool) {
			if decelerate {
				r.events = append(r.events, "drag-ended+decelerate")
				return
			}
			r.events = append(r.events, "drag-ended")
		},
		DecelerationEnded:    func() { r.events = append(r.events, "deceleration-ended") },
		ScrollAnimationEnded: func() { r.events = append(r.events, "animation-ended") },
	}
}

func newSurface(t *testing.T, animator anim.Animator) (*Surface, *recorder) {
	t.Helper()
	rec := &recorder{}
	s := New(animator, rec.handlers())
	s.SetViewport(geom.Size{Width: 100, Height: 3})
	s.SetContentSize(geom.Size{Width: 400, Height: 3})
	return s, rec
}

func TestSetOffsetClampsAndEmits(t *testing.T) {
	s, rec := newSurface(t, nil)

	s.SetOffset(-10)
	require.Zero(t, s.Offset())
	require.Empty(t, rec.events)

	s.SetOffset(1000)
	require.Equal(t, 300.0, s.Offset())
	require.Equal(t, []string{"scrolled"}, rec.events)

	minX, maxX := s.VisibleRange()
	require.Equal(t, 300.0, minX)
	require.Equal(t, 400.0, maxX)
}

func TestScrollToEmitsAnimationEnded(t *testing.T) {
	m := &anim.Manual{}
	s, rec := newSurface(t, m)

	s.ScrollTo(120, time.Second)
	require.True(t, s.Scrolling())
	m.Advance(0.5)
	require.Equal(t, 60.0, s.Offset())

	m.CompleteAll()
	require.Equal(t, 120.0, s.Offset())
	require.False(t, s.Scrolling())
	require.Equal(t, "animation-ended", rec.events[len(rec.events)-1])
}

func TestScrollToIsSupersededSilently(t *testing.T) {
	m := &anim.Manual{}
	s, rec := newSurface(t, m)

	s.ScrollTo(50, time.Second)
	s.ScrollTo(80, time.Second)
	m.CompleteAll()

	ended := 0
	for _, e := range rec.events {
		if e == "animation-ended" {
			ended++
		}
	}
	require.Equal(t, 1, ended)
	require.Equal(t, 80.0, s.Offset())
}

func TestStopCancelsScrollSilently(t *testing.T) {
	m := &anim.Manual{}
	s, rec := newSurface(t, m)

	s.ScrollTo(80, time.Second)
	m.Advance(0.5)
	s.Stop()
	require.False(t, s.Scrolling())
	m.CompleteAll()

	require.Equal(t, 40.0, s.Offset())
	require.NotContains(t, rec.events, "animation-ended")
}

func TestShiftMovesAnimationEndpoints(t *testing.T) {
	m := &anim.Manual{}
	s, _ := newSurface(t, m)
	s.SetOffset(100)

	s.ScrollTo(200, time.Second)
	s.Shift(-50)
	require.Equal(t, 50.0, s.Offset())

	m.CompleteAll()
	require.Equal(t, 150.0, s.Offset())
}

func TestDragWithoutVelocityEndsImmediately(t *testing.T) {
	s, rec := newSurface(t, nil)

	require.True(t, s.BeginDrag())
	s.DragBy(10)
	s.DragBy(5)
	s.EndDrag(0)

	require.Equal(t, 15.0, s.Offset())
	require.Equal(t, []string{"scrolled", "scrolled", "drag-ended"}, rec.events)
}

func TestFlickDecelerates(t *testing.T) {
	s, rec := newSurface(t, nil)
	s.SetDeceleration(10, time.Millisecond)

	require.True(t, s.BeginDrag())
	s.DragBy(4)
	s.EndDrag(3)

	require.Equal(t, 34.0, s.Offset())
	require.Equal(t, "drag-ended+decelerate", rec.events[1])
	require.Equal(t, "deceleration-ended", rec.events[len(rec.events)-1])
}

func TestDragDisabled(t *testing.T) {
	s, rec := newSurface(t, nil)
	s.SetScrollEnabled(false)

	require.False(t, s.BeginDrag())
	s.DragBy(10)
	s.EndDrag(5)
	require.Zero(t, s.Offset())
	require.Empty(t, rec.events)
}

func TestContentNarrowerThanViewport(t *testing.T) {
	s, _ := newSurface(t, nil)
	s.SetContentSize(geom.Size{Width: 50, Height: 3})

	require.Zero(t, s.MaxOffset())
	s.SetOffset(20)
	require.Zero(t, s.Offset())
}
