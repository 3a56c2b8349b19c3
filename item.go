package tabbar

import (
	"go.uber.org/atomic"

	"github.com/xqrs/tabbar/geom"
)

// ItemID identifies an item for its whole lifetime, independently of its
// position in the tab bar.
type ItemID uint64

var lastItemID atomic.Uint64

// Item is one tab of a tab bar. Items are created by the caller and handed to
// [Bar.SetItems]; from then on the bar owns their index and selection state.
type Item struct {
	id ItemID

	// Title is the text shown for the tab.
	Title string

	badge     string
	index     int
	selected  bool
	attention bool
	enabled   bool
}

// NewItem returns an enabled, unselected item with the given title.
func NewItem(title string) *Item {
	return &Item{
		id:      ItemID(lastItemID.Inc()),
		Title:   title,
		index:   -1,
		enabled: true,
	}
}

// NewItems returns one item per title.
func NewItems(titles ...string) []*Item {
	items := make([]*Item, len(titles))
	for i, title := range titles {
		items[i] = NewItem(title)
	}
	return items
}

// ID returns the item's stable identifier.
func (i *Item) ID() ItemID {
	return i.id
}

// Index returns the item's position in the bar, or -1 if it was never added
// to one.
func (i *Item) Index() int {
	return i.index
}

// Selected returns whether this is the bar's selected item.
func (i *Item) Selected() bool {
	return i.selected
}

// RequiresAttention returns whether the item is flagged for the user's
// attention.
func (i *Item) RequiresAttention() bool {
	return i.attention
}

// Enabled returns whether the item can be selected.
func (i *Item) Enabled() bool {
	return i.enabled
}

// Badge returns the badge text, empty if no badge is shown.
func (i *Item) Badge() string {
	return i.badge
}

// SetBadge sets the badge text before the item is added to a bar. Use
// [Bar.SetBadge] afterwards so that visible views are refreshed.
func (i *Item) SetBadge(badge string) *Item {
	i.badge = badge
	return i
}

// SetEnabled sets the enabled flag before the item is added to a bar. Use
// [Bar.SetEnabled] afterwards.
func (i *Item) SetEnabled(enabled bool) *Item {
	i.enabled = enabled
	return i
}

// appearance snapshots the fields that affect how the item is displayed.
func (i *Item) appearance() Appearance {
	return Appearance{
		Title:     i.Title,
		Badge:     i.badge,
		Selected:  i.selected,
		Attention: i.attention,
		Enabled:   i.enabled,
	}
}

// Appearance is the display state a renderer needs to draw an item.
type Appearance struct {
	Title     string
	Badge     string
	Selected  bool
	Attention bool
	Enabled   bool
}

// ItemView is one on-screen instance of an item. In infinite mode an item may
// be shown by several views at once, or by none.
type ItemView struct {
	// ItemID references the authoritative item.
	ItemID ItemID
	// Index is the authoritative item's position at the time the view was
	// created.
	Index int
	// Frame is the view's rectangle in content coordinates.
	Frame geom.Rect
	// Appearance is a copy of the item's display state.
	Appearance Appearance
}

// newView clones the display state of item into a fresh view.
func newView(item *Item, frame geom.Rect) *ItemView {
	return &ItemView{
		ItemID:     item.id,
		Index:      item.index,
		Frame:      frame,
		Appearance: item.appearance(),
	}
}
