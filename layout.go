package tabbar

import (
	"math"

	"github.com/xqrs/tabbar/geom"
)

// LayoutMode is the strategy the bar uses to arrange its items.
type LayoutMode int

const (
	// LayoutStatic shows all items at once, without scrolling.
	LayoutStatic LayoutMode = iota
	// LayoutBounded scrolls between the first and the last item.
	LayoutBounded
	// LayoutInfinite scrolls endlessly, repeating the items.
	LayoutInfinite
)

func (m LayoutMode) String() string {
	switch m {
	case LayoutStatic:
		return "static"
	case LayoutBounded:
		return "bounded"
	case LayoutInfinite:
		return "infinite"
	}
	return "unknown"
}

// ChooseLayoutMode returns the layout mode for count items of the given width
// in a viewport. Items that fit are static; otherwise the bar scrolls,
// endlessly if infinite is set.
func ChooseLayoutMode(count int, itemWidth, viewportWidth float64, infinite bool) LayoutMode {
	if float64(count)*itemWidth <= viewportWidth {
		return LayoutStatic
	}
	if !infinite {
		return LayoutBounded
	}
	return LayoutInfinite
}

// Layout arranges the items in a viewport of the given size. Calling it again
// with the same size is cheap unless something changed in between.
func (b *Bar) Layout(viewport geom.Size) {
	if b.laidOut && !b.stale && viewport == b.viewport {
		return
	}
	b.viewport = viewport
	b.surface.SetViewport(viewport)
	b.relayout(false)
}

// invalidate schedules a relayout. With rebuild set, the window is replaced
// even if the mode stays the same.
func (b *Bar) invalidate(rebuild bool) {
	b.stale = true
	if rebuild {
		b.itemsChanged = true
	}
	if b.laidOut {
		b.relayout(false)
	}
}

func (b *Bar) relayout(animated bool) {
	b.stale = false

	previous := b.mode
	mode := ChooseLayoutMode(len(b.items), b.cfg.EffectiveItemWidth(), b.viewport.Width, b.cfg.InfiniteScrolling)
	modeChanged := !b.laidOut || mode != previous
	crossesInfinite := b.laidOut && modeChanged && (mode == LayoutInfinite || previous == LayoutInfinite)
	b.mode = mode
	b.laidOut = true
	if modeChanged {
		b.logger.Debug("layout mode changed", "from", previous, "to", mode, "items", len(b.items), "viewport", b.viewport.Width)
	}

	if !b.itemsChanged && !modeChanged {
		// A running fade arranges the new window when it swaps it in.
		if !b.rebuilding {
			b.arrange()
			b.changed()
		}
		return
	}
	b.itemsChanged = false

	token := b.generations.Next()
	if b.rebuild.Running() {
		b.logger.Debug("superseding window rebuild")
	}
	b.rebuild.Cancel()
	b.rebuild = nil
	if crossesInfinite {
		b.hide()
	}

	if !animated {
		if b.rebuilding {
			b.rebuilding = false
			b.fade(1)
		}
		b.swapWindow()
		b.reveal()
		b.changed()
		return
	}

	b.rebuilding = true
	fade := b.cfg.FadeDuration.Std()
	b.rebuild = b.animator.Start(fade, func(t float64) {
		b.fade(1 - t)
	}, func() {
		if !b.generations.Current(token) {
			return
		}
		b.swapWindow()
		b.changed()
		b.rebuild = b.animator.Start(fade, b.fade, func() {
			if !b.generations.Current(token) {
				return
			}
			b.rebuilding = false
			b.rebuild = nil
			// The viewport may have changed during the fade.
			b.arrange()
			b.reveal()
			b.changed()
		})
	})
}

// swapWindow discards the visible window and builds a new one for the
// current mode.
func (b *Bar) swapWindow() {
	b.window = nil
	b.correcting = false

	// Infinite views are created by tiling.
	if b.mode != LayoutInfinite {
		b.window = make([]*ItemView, len(b.items))
		for i, item := range b.items {
			b.window[i] = newView(item, geom.Rect{})
		}
	}
	b.arrange()
}

// arrange positions the existing window for the current viewport and mode.
func (b *Bar) arrange() {
	switch b.mode {
	case LayoutStatic:
		b.arrangeStatic()
	case LayoutBounded:
		b.arrangeBounded()
	case LayoutInfinite:
		b.arrangeInfinite()
	}
}

func (b *Bar) staticItemWidth() float64 {
	switch {
	case b.cfg.ItemWidth > 0:
		return b.cfg.ItemWidth
	case b.cfg.Compact && len(b.items) > 0:
		return b.viewport.Width / float64(len(b.items))
	default:
		return b.cfg.DefaultItemWidth
	}
}

func (b *Bar) arrangeStatic() {
	b.surface.SetScrollEnabled(false)
	b.surface.SetContentSize(b.viewport)
	b.surface.SetOffset(0)

	if len(b.window) == 0 {
		return
	}
	w := b.staticItemWidth()
	x := (b.viewport.Width - w*float64(len(b.window))) / 2
	for _, view := range b.window {
		view.Frame = geom.Rect{X: x, Width: w, Height: b.viewport.Height}
		x += w
	}
}

func (b *Bar) arrangeBounded() {
	w := b.cfg.EffectiveItemWidth()
	n := float64(len(b.items))
	b.surface.SetScrollEnabled(true)
	b.surface.SetContentSize(geom.Size{
		Width:  b.viewport.Width + (n-1)*w,
		Height: b.viewport.Height,
	})

	x := b.viewport.Width/2 - w/2
	for _, view := range b.window {
		view.Frame = geom.Rect{X: x, Width: w, Height: b.viewport.Height}
		x += w
	}

	if b.selected != nil {
		b.setOffset(b.centeringOffset(b.selected.index))
	}
}

func (b *Bar) arrangeInfinite() {
	w := b.cfg.EffectiveItemWidth()
	content := b.cfg.ContentMultiplier * float64(len(b.items)) * w
	b.surface.SetScrollEnabled(true)
	b.surface.SetContentSize(geom.Size{Width: content, Height: b.viewport.Height})

	if len(b.window) == 0 {
		b.setOffset(b.midOffset())
	}
	for _, view := range b.window {
		view.Frame.Height = b.viewport.Height
	}
	b.tile()
	b.recenter()

	if b.selected != nil {
		b.setOffset(b.centeringOffset(b.selected.index))
		b.tile()
		b.recenter()
	}
}

// setOffset jumps to x, dropping any scroll in flight together with its
// pending settle.
func (b *Bar) setOffset(x float64) {
	b.correcting = false
	b.surface.SetOffset(x)
}

// midOffset is the offset that shows the middle of the content.
func (b *Bar) midOffset() float64 {
	return math.Max((b.surface.ContentSize().Width-b.viewport.Width)/2, 0)
}

// scrolled handles every offset change of the surface.
func (b *Bar) scrolled() {
	if b.mode == LayoutInfinite && !b.rebuilding {
		b.tile()
		b.recenter()
	}
	b.changed()
}
