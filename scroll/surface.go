// Package scroll provides a horizontal scroll surface: a viewport looking at
// a wider content area through a content offset.
//
// The surface never decides anything about its content. Whoever owns it
// drives it (offsets, drags, programmatic scrolls) and subscribes to its
// events through [Handlers] at construction.
package scroll

import (
	"math"
	"time"

	"github.com/xqrs/tabbar/anim"
	"github.com/xqrs/tabbar/geom"
)

// Handlers are the events a Surface emits. Any of them may be nil.
type Handlers struct {
	// Scrolled is called after every change of the content offset caused by
	// a drag, a programmatic scroll or a deceleration step.
	Scrolled func()
	// DragEnded is called when the user lets go. willDecelerate is true if a
	// deceleration follows, in which case DecelerationEnded comes later.
	DragEnded func(willDecelerate bool)
	// DecelerationEnded is called when a deceleration comes to rest.
	DecelerationEnded func()
	// ScrollAnimationEnded is called when a ScrollTo animation completes.
	ScrollAnimationEnded func()
}

// Defaults for the deceleration that follows a flick.
const (
	DefaultDecelerationDistance = 4.0
	DefaultDecelerationDuration = 400 * time.Millisecond
)

// Surface is a horizontally scrolling viewport.
type Surface struct {
	animator anim.Animator
	handlers Handlers

	viewport geom.Size
	content  geom.Size
	offset   float64
	enabled  bool

	dragging bool
	motion   *motion

	// The distance travelled after a flick is velocity times this factor.
	decelerationDistance float64
	decelerationDuration time.Duration
}

// motion is an in-flight programmatic scroll or deceleration.
type motion struct {
	handle       *anim.Handle
	from, to     float64
	decelerating bool
}

// New returns a surface that animates through animator and reports to
// handlers. Scrolling is enabled initially.
func New(animator anim.Animator, handlers Handlers) *Surface {
	if animator == nil {
		animator = anim.Immediate{}
	}
	return &Surface{
		animator:             animator,
		handlers:             handlers,
		enabled:              true,
		decelerationDistance: DefaultDecelerationDistance,
		decelerationDuration: DefaultDecelerationDuration,
	}
}

// SetDeceleration configures how far and how long a flick keeps scrolling.
func (s *Surface) SetDeceleration(distance float64, duration time.Duration) *Surface {
	s.decelerationDistance = max(distance, 0)
	s.decelerationDuration = max(duration, 0)
	return s
}

// SetViewport sets the size of the visible area. The offset is clamped to
// the new range without emitting Scrolled.
func (s *Surface) SetViewport(size geom.Size) *Surface {
	s.viewport = size
	s.offset = s.clamp(s.offset)
	return s
}

// Viewport returns the size of the visible area.
func (s *Surface) Viewport() geom.Size {
	return s.viewport
}

// SetContentSize sets the size of the scrollable content. The offset is
// clamped to the new range without emitting Scrolled.
func (s *Surface) SetContentSize(size geom.Size) *Surface {
	s.content = size
	s.offset = s.clamp(s.offset)
	return s
}

// ContentSize returns the size of the scrollable content.
func (s *Surface) ContentSize() geom.Size {
	return s.content
}

// SetScrollEnabled toggles user scrolling. Programmatic scrolls still work
// when scrolling is disabled.
func (s *Surface) SetScrollEnabled(enabled bool) *Surface {
	s.enabled = enabled
	if !enabled {
		s.dragging = false
	}
	return s
}

// ScrollEnabled returns whether user scrolling is enabled.
func (s *Surface) ScrollEnabled() bool {
	return s.enabled
}

// Offset returns the content offset, the content x coordinate shown at the
// left edge of the viewport.
func (s *Surface) Offset() float64 {
	return s.offset
}

// MaxOffset returns the largest valid content offset.
func (s *Surface) MaxOffset() float64 {
	return max(s.content.Width-s.viewport.Width, 0)
}

// VisibleRange returns the content x range currently inside the viewport.
func (s *Surface) VisibleRange() (minX, maxX float64) {
	return s.offset, s.offset + s.viewport.Width
}

// Clamp limits x to the valid offset range.
func (s *Surface) Clamp(x float64) float64 {
	return s.clamp(x)
}

// Dragging returns true between BeginDrag and EndDrag.
func (s *Surface) Dragging() bool {
	return s.dragging
}

// Scrolling returns true while the surface is dragged, decelerating or
// animating towards a ScrollTo target.
func (s *Surface) Scrolling() bool {
	return s.dragging || (s.motion != nil && s.motion.handle.Running())
}

// SetOffset moves the content offset immediately, stopping any animation.
// Scrolled is emitted if the offset changed.
func (s *Surface) SetOffset(x float64) {
	s.stop()
	s.move(x)
}

// Stop cancels a running scroll animation or deceleration without emitting
// any event.
func (s *Surface) Stop() {
	s.stop()
}

// Shift translates the offset and the endpoints of any running animation by
// delta in one step, without clamping and without emitting Scrolled. Owners
// use it to re-base their coordinate space while content is moving.
func (s *Surface) Shift(delta float64) {
	s.offset += delta
	if s.motion != nil {
		s.motion.from += delta
		s.motion.to += delta
	}
}

// ScrollTo animates the offset to x over d. ScrollAnimationEnded is emitted
// when the animation completes; a later ScrollTo, SetOffset or drag cancels
// it silently.
func (s *Surface) ScrollTo(x float64, d time.Duration) {
	s.stop()
	s.animate(s.clamp(x), d, false)
}

// BeginDrag starts a user drag. It returns false if scrolling is disabled.
func (s *Surface) BeginDrag() bool {
	if !s.enabled {
		return false
	}
	s.stop()
	s.dragging = true
	return true
}

// DragBy moves the offset by dx during a drag.
func (s *Surface) DragBy(dx float64) {
	if !s.dragging {
		return
	}
	s.move(s.offset + dx)
}

// EndDrag finishes a drag. A non-zero velocity (offset units per input
// event) makes the surface decelerate towards offset + velocity * distance.
func (s *Surface) EndDrag(velocity float64) {
	if !s.dragging {
		return
	}
	s.dragging = false

	target := s.clamp(s.offset + velocity*s.decelerationDistance)
	decelerate := math.Abs(velocity) >= 1 && target != s.offset
	if s.handlers.DragEnded != nil {
		s.handlers.DragEnded(decelerate)
	}
	if decelerate {
		s.animate(target, s.decelerationDuration, true)
	}
}

func (s *Surface) animate(target float64, d time.Duration, decelerating bool) {
	m := &motion{from: s.offset, to: target, decelerating: decelerating}
	s.motion = m
	m.handle = s.animator.Start(d, func(progress float64) {
		s.move(anim.Lerp(m.from, m.to, anim.EaseInOut(progress)))
	}, func() {
		if s.motion == m {
			s.motion = nil
		}
		if decelerating {
			if s.handlers.DecelerationEnded != nil {
				s.handlers.DecelerationEnded()
			}
			return
		}
		if s.handlers.ScrollAnimationEnded != nil {
			s.handlers.ScrollAnimationEnded()
		}
	})
}

func (s *Surface) stop() {
	if s.motion != nil {
		s.motion.handle.Cancel()
		s.motion = nil
	}
}

func (s *Surface) move(x float64) {
	x = s.clamp(x)
	if x == s.offset {
		return
	}
	s.offset = x
	if s.handlers.Scrolled != nil {
		s.handlers.Scrolled()
	}
}

func (s *Surface) clamp(x float64) float64 {
	return min(max(x, 0), s.MaxOffset())
}
