package anim

import "time"

// Immediate completes every animation synchronously inside Start.
type Immediate struct{}

// Start implements Animator.
func (Immediate) Start(_ time.Duration, step func(float64), done func()) *Handle {
	h := NewHandle()
	h.Step(step, 1)
	h.Finish(done)
	return h
}

// Manual queues animations until the caller completes them. It is meant for
// tests that need to interleave events with in-flight animations.
type Manual struct {
	pending []*manualAnimation
}

type manualAnimation struct {
	handle   *Handle
	duration time.Duration
	step     func(float64)
	done     func()
}

// Start implements Animator.
func (m *Manual) Start(d time.Duration, step func(float64), done func()) *Handle {
	h := NewHandle()
	m.pending = append(m.pending, &manualAnimation{handle: h, duration: d, step: step, done: done})
	return h
}

// Pending returns the number of animations that have neither completed nor
// been cancelled.
func (m *Manual) Pending() int {
	n := 0
	for _, a := range m.pending {
		if a.handle.Running() {
			n++
		}
	}
	return n
}

// Advance moves every running animation to the given progress without
// completing it.
func (m *Manual) Advance(progress float64) {
	for _, a := range append([]*manualAnimation(nil), m.pending...) {
		a.handle.Step(a.step, progress)
	}
}

// CompleteNext completes the oldest queued animation, dropping cancelled ones
// on the way. It returns false if nothing was left to complete.
func (m *Manual) CompleteNext() bool {
	for len(m.pending) > 0 {
		a := m.pending[0]
		m.pending = m.pending[1:]
		if !a.handle.Running() {
			continue
		}
		a.handle.Step(a.step, 1)
		a.handle.Finish(a.done)
		return true
	}
	return false
}

// CompleteAll completes queued animations in order, including animations
// started by completion callbacks, until none are left.
func (m *Manual) CompleteAll() {
	for m.CompleteNext() {
	}
}
