package tabbar

import (
	"math"

	"github.com/gdamore/tcell/v3"
	"github.com/mattn/go-runewidth"

	"github.com/xqrs/tabbar/geom"
	"github.com/xqrs/tabbar/keybind"
)

// TabBar draws a Bar into a terminal and feeds it mouse and key input.
//
// The first row of its rect shows the item titles. A second row, if
// there is one, underlines the selected item, and a third shows a scroll
// indicator while the bar scrolls between its first and last item.
type TabBar struct {
	*Box

	bar       *Bar
	keys      KeyMap
	indicator *ScrollIndicator

	// Opacity reported by the bar while it replaces its items.
	alpha float64

	// Mouse state of a press that may turn into a drag.
	pressed  bool
	dragging bool
	lastX    int
	velocity float64

	selected func(item *Item)
	changed  func()
}

// NewTabBar returns a tab bar around a new Bar built from opts. The tab bar
// installs its own hooks; hooks passed in opts are replaced. The tab bar is
// also the Bar's animator unless opts name one, in which case app may be nil.
func NewTabBar(app *Application, opts ...Option) *TabBar {
	t := &TabBar{
		Box:       NewBox(),
		keys:      DefaultKeyMap(),
		indicator: NewScrollIndicator(),
		alpha:     1,
	}

	var base []Option
	if app != nil {
		base = append(base, WithAnimator(app))
	}
	base = append(base, opts...)
	base = append(base, WithHooks(Hooks{
		Refresh: func(*ItemView) { t.MarkDirty() },
		Hide:    t.MarkDirty,
		Reveal:  t.MarkDirty,
		Fade: func(alpha float64) {
			t.alpha = alpha
			t.MarkDirty()
		},
		Changed: t.barChanged,
	}))
	t.bar = NewBar(base...)
	t.bar.selection = selectionObserver{SelectionDelegate: t.bar.selection, tabBar: t}
	return t
}

// selectionObserver forwards DidSelect to the tab bar's selected func after
// the wrapped delegate saw it.
type selectionObserver struct {
	SelectionDelegate
	tabBar *TabBar
}

func (o selectionObserver) DidSelect(bar *Bar, item *Item) {
	o.SelectionDelegate.DidSelect(bar, item)
	o.tabBar.MarkDirty()
	if o.tabBar.selected != nil {
		o.tabBar.selected(item)
	}
}

// Bar returns the bar driven by this tab bar.
func (t *TabBar) Bar() *Bar {
	return t.bar
}

// SetItems replaces the items of the bar.
func (t *TabBar) SetItems(items []*Item, animated bool) *TabBar {
	t.bar.SetItems(items, animated)
	t.MarkDirty()
	return t
}

// SetKeyMap replaces the key bindings.
func (t *TabBar) SetKeyMap(keys KeyMap) *TabBar {
	t.keys = keys
	return t
}

// KeyMap returns the key bindings, for example to show them in help.
func (t *TabBar) KeyMap() KeyMap {
	return t.keys
}

// SetSelectedFunc sets a handler called when a selection transition has
// completed.
func (t *TabBar) SetSelectedFunc(handler func(item *Item)) *TabBar {
	t.selected = handler
	return t
}

// SetChangedFunc sets a handler called after every layout or scroll change.
func (t *TabBar) SetChangedFunc(handler func()) *TabBar {
	t.changed = handler
	return t
}

func (t *TabBar) barChanged() {
	t.MarkDirty()
	if t.changed != nil {
		t.changed()
	}
}

// contentRect returns the screen columns the bar's viewport maps to.
func (t *TabBar) contentRect() (x, y, width int) {
	x, y, width, _ = t.Rect()
	insets := t.bar.Config().ItemInsets
	left := int(math.Round(insets.Left))
	width = max(width-left-int(math.Round(insets.Right)), 0)
	return x + left, y, width
}

// layout sizes the bar to the current rect.
func (t *TabBar) layout() {
	_, _, width := t.contentRect()
	_, _, _, height := t.Rect()
	if height <= 0 {
		width = 0
	}
	t.bar.Layout(geom.Size{Width: float64(width), Height: 1})
}

// Draw draws this primitive onto the screen.
func (t *TabBar) Draw(screen tcell.Screen) {
	t.layout()
	t.Clear(screen)
	_, _, _, height := t.Rect()
	if height <= 0 || t.bar.Hidden() || t.alpha <= 0 {
		return
	}

	x, y, width := t.contentRect()
	offset := t.bar.Offset()
	for _, view := range t.bar.Window() {
		left := x + int(math.Round(view.Frame.Left()-offset))
		right := x + int(math.Round(view.Frame.Right()-offset))
		if right <= x || left >= x+width {
			continue
		}
		t.drawItem(screen, view.Appearance, left, right, y, x, x+width)
		if height >= 2 && view.Appearance.Selected {
			style := tcell.StyleDefault.Background(t.background).Foreground(Styles.SelectedColor)
			for cx := max(left, x); cx < min(right, x+width); cx++ {
				screen.Put(cx, y+1, "▔", t.faded(style))
			}
		}
	}

	if height >= 3 && t.bar.Mode() == LayoutBounded {
		surface := t.bar.Surface()
		t.indicator.SetBackgroundColor(t.background)
		t.indicator.SetRect(x, y+2, width, 1)
		t.indicator.SetLengths(surface.ContentSize().Width, surface.Viewport().Width, offset)
		t.indicator.Draw(screen)
	}
}

// drawItem draws one view into the columns [left, right), clipped to [clipLeft,
// clipRight).
func (t *TabBar) drawItem(screen tcell.Screen, a Appearance, left, right, y, clipLeft, clipRight int) {
	insets := t.bar.Config().TitleInsets
	left += int(math.Round(insets.Left))
	right -= int(math.Round(insets.Right))

	if a.Badge != "" {
		badge := " " + a.Badge + " "
		badgeWidth := runewidth.StringWidth(badge)
		if right-left > badgeWidth {
			style := tcell.StyleDefault.Foreground(Styles.BadgeColor).Background(Styles.BadgeBackground)
			printClipped(screen, badge, right-badgeWidth, y, badgeWidth, AlignmentLeft, t.faded(style), clipLeft, clipRight)
			right -= badgeWidth + 1
		}
	}

	printClipped(screen, a.Title, left, y, right-left, AlignmentCenter, t.faded(titleStyle(a)), clipLeft, clipRight)
}

// titleStyle returns the title style for an item's state. Attention wins over
// selection; disabled items are always dimmed.
func titleStyle(a Appearance) tcell.Style {
	style := tcell.StyleDefault
	switch {
	case !a.Enabled:
		return style.Foreground(Styles.DisabledColor).Dim(true)
	case a.Attention:
		style = style.Foreground(Styles.AttentionColor)
	case a.Selected:
		style = style.Foreground(Styles.SelectedColor)
	default:
		style = style.Foreground(Styles.TitleColor)
	}
	if a.Selected {
		style = style.Bold(true)
	}
	return style
}

// faded dims style while the bar fades.
func (t *TabBar) faded(style tcell.Style) tcell.Style {
	if t.alpha < 1 {
		return style.Dim(true)
	}
	return style
}

// InputHandler handles key events.
func (t *TabBar) InputHandler(event *tcell.EventKey) Command {
	return t.HandleKey(keybind.EventString(event))
}

// HandleKey handles a normalized key string as produced by
// [keybind.EventString].
func (t *TabBar) HandleKey(key string) Command {
	t.layout()
	items := t.bar.Items()
	switch {
	case keybind.MatchesKey(key, t.keys.Previous):
		t.bar.SelectPrevious()
	case keybind.MatchesKey(key, t.keys.Next):
		t.bar.SelectNext()
	case keybind.MatchesKey(key, t.keys.First):
		t.bar.SelectIndex(0)
	case keybind.MatchesKey(key, t.keys.Last):
		t.bar.SelectIndex(len(items) - 1)
	case keybind.MatchesKey(key, t.keys.Jump):
		n, ok := keybind.Digit(key)
		if !ok {
			return nil
		}
		t.bar.SelectIndex(n - 1)
	default:
		return nil
	}
	return RedrawCommand{}
}

// MouseHandler handles mouse events. A click selects the item under the
// pointer, dragging with the left button scrolls, and the wheel steps through
// the items.
func (t *TabBar) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	return t.handleMouse(action, x, y, event.Buttons())
}

func (t *TabBar) handleMouse(action MouseAction, x, y int, buttons tcell.ButtonMask) (Primitive, Command) {
	if !t.pressed && !t.Contains(x, y) {
		return nil, nil
	}
	t.layout()

	switch action {
	case MouseLeftDown:
		t.pressed = true
		t.lastX = x
		t.velocity = 0
		return t, FocusCommand{Target: t}
	case MouseMove:
		if !t.pressed || buttons&tcell.ButtonPrimary == 0 {
			return nil, nil
		}
		if !t.dragging {
			if x == t.lastX {
				return t, nil
			}
			t.dragging = t.bar.BeginDrag()
			if !t.dragging {
				return t, nil
			}
		}
		// The content follows the pointer, so the offset moves the other way.
		t.velocity = float64(t.lastX - x)
		t.bar.DragBy(t.velocity)
		t.lastX = x
		return t, RedrawCommand{}
	case MouseLeftUp:
		t.pressed = false
		if t.dragging {
			t.dragging = false
			t.bar.EndDrag(t.velocity)
			return nil, RedrawCommand{}
		}
		return nil, nil
	case MouseLeftClick:
		cx, _, _ := t.contentRect()
		t.bar.Tap(geom.Point{X: float64(x-cx) + 0.5, Y: 0.5})
		return nil, RedrawCommand{}
	case MouseScrollLeft, MouseScrollUp:
		t.bar.SelectPrevious()
		return nil, RedrawCommand{}
	case MouseScrollRight, MouseScrollDown:
		t.bar.SelectNext()
		return nil, RedrawCommand{}
	}
	return nil, nil
}

var _ Primitive = &TabBar{}
