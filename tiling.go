package tabbar

import (
	"math"

	"github.com/xqrs/tabbar/geom"
)

// tile fills the visible range with views in infinite mode. After it returns
// the window is contiguous, starts at or before the left edge of the visible
// range and ends at or after its right edge. Only views at either end of the
// window are ever evicted.
func (b *Bar) tile() {
	n := len(b.items)
	if n == 0 || b.viewport.Width <= 0 {
		b.window = nil
		return
	}

	minX, maxX := b.surface.VisibleRange()
	w := b.cfg.EffectiveItemWidth()
	h := b.viewport.Height

	if len(b.window) == 0 {
		b.window = append(b.window, newView(b.items[0], geom.Rect{X: minX, Width: w, Height: h}))
	}

	for last := b.window[len(b.window)-1]; last.Frame.Right() < maxX; last = b.window[len(b.window)-1] {
		item := b.items[geom.Modulo(last.Index+1, n)]
		b.window = append(b.window, newView(item, geom.Rect{X: last.Frame.Right(), Width: w, Height: h}))
	}

	for first := b.window[0]; first.Frame.Left() > minX; first = b.window[0] {
		item := b.items[geom.Modulo(first.Index-1, n)]
		view := newView(item, geom.Rect{X: first.Frame.Left() - w, Width: w, Height: h})
		b.window = append([]*ItemView{view}, b.window...)
	}

	for len(b.window) > 1 && b.window[len(b.window)-1].Frame.Left() >= maxX {
		b.window[len(b.window)-1] = nil
		b.window = b.window[:len(b.window)-1]
	}
	evicted := 0
	for evicted < len(b.window)-1 && b.window[evicted].Frame.Right() <= minX {
		evicted++
	}
	if evicted > 0 {
		b.window = append(b.window[:0], b.window[evicted:]...)
	}
}

// recenter moves the offset back to the middle of the content once it has
// drifted further than RecenterFraction of the content width. Views and any
// scroll in flight move by the same amount, so nothing visibly changes.
func (b *Bar) recenter() bool {
	content := b.surface.ContentSize().Width
	mid := b.midOffset()
	offset := b.surface.Offset()
	if math.Abs(offset-mid) <= b.cfg.RecenterFraction*content {
		return false
	}

	delta := mid - offset
	b.surface.Shift(delta)
	for _, view := range b.window {
		view.Frame = view.Frame.Offset(delta, 0)
	}
	b.logger.Debug("recentered", "delta", delta)
	return true
}
