package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestImmediateRunsStepThenDone(t *testing.T) {
	var calls []string
	h := Immediate{}.Start(time.Second, func(p float64) {
		require.Equal(t, 1.0, p)
		calls = append(calls, "step")
	}, func() {
		calls = append(calls, "done")
	})

	require.Equal(t, []string{"step", "done"}, calls)
	require.True(t, h.Finished())
	require.False(t, h.Running())
}

func TestCancelledHandleDropsCompletion(t *testing.T) {
	m := &Manual{}
	fired := false
	h := m.Start(time.Second, nil, func() { fired = true })
	require.Equal(t, 1, m.Pending())

	h.Cancel()
	require.Zero(t, m.Pending())
	require.False(t, m.CompleteNext())
	require.False(t, fired)
	require.True(t, h.Cancelled())
}

func TestCancelAfterFinishIsNoop(t *testing.T) {
	h := Immediate{}.Start(0, nil, nil)
	h.Cancel()
	require.False(t, h.Cancelled())
	require.True(t, h.Finished())

	var nilHandle *Handle
	nilHandle.Cancel()
	require.False(t, nilHandle.Running())
}

func TestFinishRunsOnce(t *testing.T) {
	h := NewHandle()
	count := 0
	require.True(t, h.Finish(func() { count++ }))
	require.False(t, h.Finish(func() { count++ }))
	require.Equal(t, 1, count)
}

func TestManualCompleteAllFollowsChains(t *testing.T) {
	m := &Manual{}
	var order []int
	m.Start(0, nil, func() {
		order = append(order, 1)
		m.Start(0, nil, func() { order = append(order, 3) })
	})
	m.Start(0, nil, func() { order = append(order, 2) })

	m.CompleteAll()
	require.Equal(t, []int{1, 2, 3}, order)
	require.Zero(t, m.Pending())
}

func TestManualAdvanceClampsProgress(t *testing.T) {
	m := &Manual{}
	var seen []float64
	m.Start(0, func(p float64) { seen = append(seen, p) }, nil)

	m.Advance(0.5)
	m.Advance(2)
	m.CompleteAll()
	require.Equal(t, []float64{0.5, 1, 1}, seen)
}

func TestSequenceTokens(t *testing.T) {
	var s Sequence
	a := s.Next()
	require.True(t, s.Current(a))

	b := s.Next()
	require.False(t, s.Current(a))
	require.True(t, s.Current(b))
}

func TestEaseInOutEndpoints(t *testing.T) {
	require.Equal(t, 0.0, EaseInOut(-1))
	require.Equal(t, 0.5, EaseInOut(0.5))
	require.Equal(t, 1.0, EaseInOut(3))
	require.Equal(t, 15.0, Lerp(10, 20, 0.5))
}
