package tabbar

import (
	"math"

	"github.com/xqrs/tabbar/geom"
)

// Tap selects the item under p, given in viewport coordinates. In static
// layout the selection is attempted right away; otherwise the bar first
// scrolls the item to the center and attempts the selection once the scroll
// has settled. Taps during a transition are ignored.
func (b *Bar) Tap(p geom.Point) {
	if b.rebuilding {
		return
	}
	view := b.ViewAt(geom.Point{X: p.X + b.surface.Offset(), Y: p.Y})
	if view == nil {
		return
	}
	if b.mode == LayoutStatic {
		b.commit(view)
		return
	}
	b.request(view.Index)
}

// SelectIndex selects the item at index with the same protocol as a tap.
// Out of range indices are ignored.
func (b *Bar) SelectIndex(index int) {
	if b.rebuilding || b.itemAt(index) == nil {
		return
	}
	if b.mode == LayoutStatic {
		for _, view := range b.window {
			if view.Index == index {
				b.commit(view)
				return
			}
		}
		return
	}
	b.request(index)
}

// SetSelectedItem selects item, which must be one of the bar's items.
func (b *Bar) SetSelectedItem(item *Item) {
	if item == nil || b.itemAt(item.index) != item {
		return
	}
	b.SelectIndex(item.index)
}

// SelectNext selects the item after the selected one, wrapping around in
// infinite layout.
func (b *Bar) SelectNext() {
	b.selectRelative(1)
}

// SelectPrevious selects the item before the selected one, wrapping around in
// infinite layout.
func (b *Bar) SelectPrevious() {
	b.selectRelative(-1)
}

func (b *Bar) selectRelative(delta int) {
	if b.selected == nil {
		return
	}
	index := b.selected.index + delta
	if b.mode == LayoutInfinite {
		index = geom.Modulo(index, len(b.items))
	}
	b.SelectIndex(index)
}

// ViewAt returns the view containing p, given in content coordinates, or the
// view closest to it. It returns nil only if the window is empty.
func (b *Bar) ViewAt(p geom.Point) *ItemView {
	var nearest *ItemView
	best := math.Inf(1)
	for _, view := range b.window {
		if view.Frame.Contains(p) {
			return view
		}
		if d := geom.DistanceToRect(view.Frame, p); d < best {
			nearest, best = view, d
		}
	}
	return nearest
}

// viewNearestCenter returns the view at the center of the viewport.
func (b *Bar) viewNearestCenter() *ItemView {
	return b.ViewAt(b.viewportCenter())
}

func (b *Bar) viewportCenter() geom.Point {
	return geom.Point{
		X: b.surface.Offset() + b.viewport.Width/2,
		Y: b.viewport.Height / 2,
	}
}

// anchorView returns the view of the selected item nearest the viewport
// center, falling back to the view nearest the center.
func (b *Bar) anchorView() *ItemView {
	if b.selected == nil {
		return b.viewNearestCenter()
	}
	center := b.viewportCenter().X
	var anchor *ItemView
	best := math.Inf(1)
	for _, view := range b.window {
		if view.ItemID != b.selected.id {
			continue
		}
		if d := math.Abs(view.Frame.Center().X - center); d < best {
			anchor, best = view, d
		}
	}
	if anchor == nil {
		return b.viewNearestCenter()
	}
	return anchor
}

// centeringOffset returns the offset that centers the item at index, reached
// from the selected item by the shortest way around.
func (b *Bar) centeringOffset(index int) float64 {
	switch b.mode {
	case LayoutBounded:
		return b.surface.Clamp(float64(index) * b.cfg.EffectiveItemWidth())
	case LayoutInfinite:
		if anchor := b.anchorView(); anchor != nil {
			return b.offsetFrom(anchor, index)
		}
	}
	return b.surface.Offset()
}

// offsetFrom returns the offset that centers the item at index, counting the
// shortest way around from the view from.
func (b *Bar) offsetFrom(from *ItemView, index int) float64 {
	if b.mode == LayoutBounded {
		return b.centeringOffset(index)
	}
	n := len(b.items)
	hops := geom.CircularDirection(from.Index, index, n) * geom.CircularDistance(from.Index, index, n)
	center := from.Frame.Center().X + float64(hops)*b.cfg.EffectiveItemWidth()
	return center - b.viewport.Width/2
}

// request scrolls the item at index to the center. The selection is
// attempted when the scroll settles.
func (b *Bar) request(index int) {
	// The request replaces any corrective scroll still in flight, and with it
	// the settle that would have cleared the flag.
	b.correcting = false
	b.scrollTo(b.centeringOffset(index))
}

// scrollTo animates to target. If the bar is already there, any running
// scroll is stopped and the scroll settles right away.
func (b *Bar) scrollTo(target float64) {
	target = b.surface.Clamp(target)
	if target == b.surface.Offset() {
		b.surface.Stop()
		b.settle()
		return
	}
	b.surface.ScrollTo(target, b.cfg.ScrollDuration.Std())
}

// settle runs whenever scrolling comes to rest.
func (b *Bar) settle() {
	if b.correcting {
		b.correcting = false
		return
	}
	if b.rebuilding {
		return
	}
	if view := b.viewNearestCenter(); view != nil {
		b.commit(view)
	}
}

// commit attempts to select the item shown by view.
func (b *Bar) commit(view *ItemView) {
	item := b.itemFor(view)
	if item == nil {
		return
	}

	previous := b.selected
	if !item.enabled || !b.selection.ShouldSelect(b, item) {
		b.logger.Debug("selection rejected", "index", item.index, "title", item.Title)
		b.revert(view, previous)
		return
	}

	b.selection.WillSelect(b, item)
	b.selection.ConcurrentAnimations(b, item)
	b.markSelected(item)
	b.selected = item
	b.logger.Debug("selected", "index", item.index, "title", item.Title)
	b.animator.Start(b.cfg.SelectDuration.Std(), nil, func() {
		b.selection.DidSelect(b, item)
	})

	if b.mode != LayoutStatic {
		b.correcting = true
		b.scrollTo(b.offsetFrom(view, item.index))
	}
}

// revert scrolls from the rejected view back to the previous selection.
func (b *Bar) revert(rejected *ItemView, previous *Item) {
	if b.mode == LayoutStatic || previous == nil {
		return
	}
	b.correcting = true
	b.scrollTo(b.offsetFrom(rejected, previous.index))
}

// markSelected makes item the only selected item and updates all views.
func (b *Bar) markSelected(item *Item) {
	for _, other := range b.items {
		other.selected = other == item
	}
	for _, view := range b.window {
		selected := view.ItemID == item.id
		if view.Appearance.Selected == selected {
			continue
		}
		view.Appearance.Selected = selected
		b.refresh(view)
	}
}

// BeginDrag starts a user drag. It returns false during transitions and in
// static layout.
func (b *Bar) BeginDrag() bool {
	if b.rebuilding {
		return false
	}
	if !b.surface.BeginDrag() {
		return false
	}
	// A drag cancels any corrective scroll before it can settle.
	b.correcting = false
	return true
}

// DragBy scrolls the content by dx during a drag.
func (b *Bar) DragBy(dx float64) {
	b.surface.DragBy(dx)
}

// EndDrag ends a drag. A non-zero velocity flicks the content, which settles
// after decelerating.
func (b *Bar) EndDrag(velocity float64) {
	b.surface.EndDrag(velocity)
}
