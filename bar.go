package tabbar

import (
	"log/slog"

	"github.com/xqrs/tabbar/anim"
	"github.com/xqrs/tabbar/geom"
	"github.com/xqrs/tabbar/scroll"
)

// Bar is the rendering-agnostic core of a tab bar. It owns the authoritative
// item list, decides the layout mode, keeps the window of visible item views
// and runs the selection protocol. Something else draws it: see [TabBar] for
// the terminal renderer, or subscribe to [Hooks].
//
// A Bar is not safe for concurrent use. All calls, including animation
// callbacks, must happen on one goroutine.
type Bar struct {
	cfg      Config
	logger   *slog.Logger
	animator anim.Animator
	hooks    Hooks

	selection     SelectionDelegate
	customization CustomizationDelegate

	surface  *scroll.Surface
	viewport geom.Size

	// The authoritative items, in display order.
	items    []*Item
	selected *Item

	// The visible window, ordered by x.
	window []*ItemView

	mode    LayoutMode
	laidOut bool

	// stale is set when the next Layout call must relayout even if the
	// viewport did not change. itemsChanged forces a rebuild of the window.
	stale        bool
	itemsChanged bool

	// rebuilding is true while an animated window replacement is running.
	// Tiling and input are suspended meanwhile.
	rebuilding  bool
	rebuild     *anim.Handle
	generations anim.Sequence
	hidden      bool

	// correcting marks the next settle event as the end of a corrective
	// scroll, which must not commit anything.
	correcting bool

	customizing      bool
	customizingItems []*Item
}

// Option configures a Bar in NewBar.
type Option func(*Bar)

// WithConfig sets the configuration. The default is DefaultConfig(). NewBar
// validates it and falls back to DefaultConfig(), logging a warning, if any
// value is out of range.
func WithConfig(cfg Config) Option {
	return func(b *Bar) {
		b.cfg = cfg
	}
}

// WithLogger sets the logger for debug output. The default discards.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bar) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithAnimator sets the animator for all transitions and scrolls. The default
// completes every animation immediately.
func WithAnimator(animator anim.Animator) Option {
	return func(b *Bar) {
		if animator != nil {
			b.animator = animator
		}
	}
}

// WithHooks connects a renderer.
func WithHooks(hooks Hooks) Option {
	return func(b *Bar) {
		b.hooks = hooks
	}
}

// WithSelectionDelegate sets the selection delegate.
func WithSelectionDelegate(delegate SelectionDelegate) Option {
	return func(b *Bar) {
		b.selection = delegate
	}
}

// WithCustomizationDelegate sets the customization delegate.
func WithCustomizationDelegate(delegate CustomizationDelegate) Option {
	return func(b *Bar) {
		b.customization = delegate
	}
}

// NewBar returns an empty bar.
func NewBar(opts ...Option) *Bar {
	b := &Bar{
		cfg:           DefaultConfig(),
		logger:        slog.New(slog.DiscardHandler),
		animator:      anim.Immediate{},
		selection:     SelectionFuncs{},
		customization: CustomizationFuncs{},
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.selection == nil {
		b.selection = SelectionFuncs{}
	}
	if b.customization == nil {
		b.customization = CustomizationFuncs{}
	}
	if err := b.cfg.Validate(); err != nil {
		b.logger.Warn("using default configuration", "err", err)
		b.cfg = DefaultConfig()
	}

	b.surface = scroll.New(b.animator, scroll.Handlers{
		Scrolled: b.scrolled,
		DragEnded: func(willDecelerate bool) {
			if !willDecelerate {
				b.settle()
			}
		},
		DecelerationEnded:    b.settle,
		ScrollAnimationEnded: b.settle,
	})
	b.surface.SetDeceleration(b.cfg.DecelerationDistance, b.cfg.DecelerationDuration.Std())
	return b
}

// Config returns the current configuration.
func (b *Bar) Config() Config {
	return b.cfg
}

// SetInfiniteScrolling enables or disables wrap-around scrolling. Bars whose
// items fit the viewport are not affected.
func (b *Bar) SetInfiniteScrolling(enabled bool) *Bar {
	if b.cfg.InfiniteScrolling != enabled {
		b.cfg.InfiniteScrolling = enabled
		b.invalidate(false)
	}
	return b
}

// SetItemWidth sets the item width. Zero or negative values select the
// default width.
func (b *Bar) SetItemWidth(width float64) *Bar {
	if b.cfg.ItemWidth != width {
		b.cfg.ItemWidth = width
		b.invalidate(true)
	}
	return b
}

// SetItems replaces all items. Indices are reassigned in order. The first
// item already marked selected keeps the selection; otherwise the previous
// selection does if it is still present, otherwise the first item is
// selected. If animated, the visible items fade out and the new ones fade in.
func (b *Bar) SetItems(items []*Item, animated bool) *Bar {
	if b.selected != nil && !contains(items, b.selected) {
		b.selected.selected = false
	}

	b.items = append([]*Item(nil), items...)
	var selected *Item
	for i, item := range b.items {
		item.index = i
		if !item.selected {
			continue
		}
		if selected == nil {
			selected = item
		} else {
			item.selected = false
		}
	}
	if selected == nil && len(b.items) > 0 {
		selected = b.items[0]
		selected.selected = true
	}
	b.selected = selected

	b.logger.Debug("items replaced", "count", len(b.items), "animated", animated)
	b.itemsChanged = true
	b.stale = true
	if b.laidOut {
		b.relayout(animated)
	}
	return b
}

// Items returns the authoritative items in display order.
func (b *Bar) Items() []*Item {
	return append([]*Item(nil), b.items...)
}

// SelectedItem returns the selected item, nil if the bar is empty.
func (b *Bar) SelectedItem() *Item {
	return b.selected
}

// Mode returns the current layout mode.
func (b *Bar) Mode() LayoutMode {
	return b.mode
}

// Window returns the visible item views, ordered by x.
func (b *Bar) Window() []*ItemView {
	return append([]*ItemView(nil), b.window...)
}

// Viewport returns the size passed to the last Layout call.
func (b *Bar) Viewport() geom.Size {
	return b.viewport
}

// Surface returns the scroll surface. Use the bar's drag methods for user
// input so that transitions can suspend it.
func (b *Bar) Surface() *scroll.Surface {
	return b.surface
}

// Offset returns the current content offset.
func (b *Bar) Offset() float64 {
	return b.surface.Offset()
}

// Transitioning returns true while the visible items are being replaced.
func (b *Bar) Transitioning() bool {
	return b.rebuilding
}

// Hidden returns true between the Hide and Reveal hooks.
func (b *Bar) Hidden() bool {
	return b.hidden
}

// SetRequiresAttention flags the item at index for the user's attention.
func (b *Bar) SetRequiresAttention(index int, attention bool) *Bar {
	if item := b.itemAt(index); item != nil && item.attention != attention {
		item.attention = attention
		b.refreshItem(item)
	}
	return b
}

// ItemsRequiringAttention returns the flagged items in display order.
func (b *Bar) ItemsRequiringAttention() []*Item {
	var flagged []*Item
	for _, item := range b.items {
		if item.attention {
			flagged = append(flagged, item)
		}
	}
	return flagged
}

// SetEnabled enables or disables the item at index. Disabled items reject
// selection.
func (b *Bar) SetEnabled(index int, enabled bool) *Bar {
	if item := b.itemAt(index); item != nil && item.enabled != enabled {
		item.enabled = enabled
		b.refreshItem(item)
	}
	return b
}

// SetBadge sets the badge text of the item at index.
func (b *Bar) SetBadge(index int, badge string) *Bar {
	if item := b.itemAt(index); item != nil && item.badge != badge {
		item.badge = badge
		b.refreshItem(item)
	}
	return b
}

// BeginCustomizing starts a customization session for items. There is no
// built-in customization sheet: the session only notifies the customization
// delegate.
func (b *Bar) BeginCustomizing(items []*Item) {
	if b.customizing {
		return
	}
	b.customization.WillBeginCustomizing(b, items)
	b.customizing = true
	b.customizingItems = items
	b.customization.DidBeginCustomizing(b, items)
}

// EndCustomizing ends the customization session. It returns whether the
// items changed, which is always false as nothing can change them.
func (b *Bar) EndCustomizing(animated bool) bool {
	if !b.customizing {
		return false
	}
	items := b.customizingItems
	b.customization.WillEndCustomizing(b, items, false)
	b.customizing = false
	b.customizingItems = nil
	b.customization.DidEndCustomizing(b, items, false)
	return false
}

// IsCustomizing returns true during a customization session.
func (b *Bar) IsCustomizing() bool {
	return b.customizing
}

func (b *Bar) itemAt(index int) *Item {
	if index < 0 || index >= len(b.items) {
		return nil
	}
	return b.items[index]
}

// itemFor returns the authoritative item of a view, nil if the view belongs
// to a replaced item list.
func (b *Bar) itemFor(view *ItemView) *Item {
	if view == nil {
		return nil
	}
	item := b.itemAt(view.Index)
	if item == nil || item.id != view.ItemID {
		return nil
	}
	return item
}

// refreshItem copies the item's display state into all its views.
func (b *Bar) refreshItem(item *Item) {
	appearance := item.appearance()
	for _, view := range b.window {
		if view.ItemID != item.id || view.Appearance == appearance {
			continue
		}
		view.Appearance = appearance
		b.refresh(view)
	}
}

func (b *Bar) refresh(view *ItemView) {
	if b.hooks.Refresh != nil {
		b.hooks.Refresh(view)
	}
}

func (b *Bar) changed() {
	if b.hooks.Changed != nil {
		b.hooks.Changed()
	}
}

func (b *Bar) fade(alpha float64) {
	if b.hooks.Fade != nil {
		b.hooks.Fade(alpha)
	}
}

func (b *Bar) hide() {
	if b.hidden {
		return
	}
	b.hidden = true
	if b.hooks.Hide != nil {
		b.hooks.Hide()
	}
}

func (b *Bar) reveal() {
	if !b.hidden {
		return
	}
	b.hidden = false
	if b.hooks.Reveal != nil {
		b.hooks.Reveal()
	}
}

func contains(items []*Item, item *Item) bool {
	for _, candidate := range items {
		if candidate == item {
			return true
		}
	}
	return false
}
