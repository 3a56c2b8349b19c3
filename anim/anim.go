// Package anim models animated transitions as handles. An operation that
// animates starts a [Handle] through an [Animator]; the next phase of the
// operation runs from the handle's completion callback. Cancelling a handle
// turns its pending completion into a no-op, which is how a superseding
// operation invalidates a stale continuation.
package anim

import (
	"time"

	"go.uber.org/atomic"
)

// Animator starts animations. Implementations decide how time passes: the
// terminal application drives frames from a timer, tests use [Immediate] or
// [Manual].
type Animator interface {
	// Start begins an animation lasting d. If step is not nil it is called
	// with the progress in (0, 1] as the animation advances; the final call
	// always passes 1. done, if not nil, is called exactly once after the
	// last step unless the handle was cancelled first.
	Start(d time.Duration, step func(progress float64), done func()) *Handle
}

// Handle tracks one running animation.
type Handle struct {
	cancelled atomic.Bool
	finished  atomic.Bool
}

// NewHandle returns a handle for a new, running animation. It is exported for
// Animator implementations outside this package.
func NewHandle() *Handle {
	return &Handle{}
}

// Cancel stops the animation. Pending steps and the completion callback are
// dropped. Cancelling a nil or finished handle does nothing.
func (h *Handle) Cancel() {
	if h == nil || h.finished.Load() {
		return
	}
	h.cancelled.Store(true)
}

// Cancelled returns true if Cancel was called before the animation finished.
func (h *Handle) Cancelled() bool {
	return h != nil && h.cancelled.Load()
}

// Finished returns true once the completion callback has run.
func (h *Handle) Finished() bool {
	return h != nil && h.finished.Load()
}

// Running returns true if the animation has neither finished nor been
// cancelled.
func (h *Handle) Running() bool {
	return h != nil && !h.cancelled.Load() && !h.finished.Load()
}

// Step forwards progress to step unless the handle was cancelled.
func (h *Handle) Step(step func(progress float64), progress float64) {
	if step == nil || !h.Running() {
		return
	}
	step(min(max(progress, 0), 1))
}

// Finish marks the animation as finished and calls done. It returns false,
// without calling done, if the handle was cancelled or already finished.
func (h *Handle) Finish(done func()) bool {
	if h.cancelled.Load() || !h.finished.CompareAndSwap(false, true) {
		return false
	}
	if done != nil {
		done()
	}
	return true
}

// EaseInOut maps linear progress onto a smoothstep curve.
func EaseInOut(t float64) float64 {
	t = min(max(t, 0), 1)
	return t * t * (3 - 2*t)
}

// Lerp interpolates between from and to. It returns to exactly when t >= 1.
func Lerp(from, to, t float64) float64 {
	if t >= 1 {
		return to
	}
	return from + (to-from)*t
}

// Sequence hands out generation tokens. A token stays current until the next
// call to Next, so a continuation holding an old token can tell it has been
// superseded.
type Sequence struct {
	gen atomic.Uint64
}

// Token identifies one generation of a Sequence.
type Token uint64

// Next starts a new generation and returns its token.
func (s *Sequence) Next() Token {
	return Token(s.gen.Inc())
}

// Current reports whether t is the latest token handed out.
func (s *Sequence) Current(t Token) bool {
	return uint64(t) == s.gen.Load()
}
