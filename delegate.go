package tabbar

// SelectionDelegate arbitrates and observes selection changes.
type SelectionDelegate interface {
	// ShouldSelect is asked before item becomes selected. Returning false
	// rejects the selection and scrolls the previous selection back into
	// place.
	ShouldSelect(bar *Bar, item *Item) bool
	// WillSelect is called right before the selection changes.
	WillSelect(bar *Bar, item *Item)
	// ConcurrentAnimations runs inside the selection transition, for side
	// effects that should animate together with it.
	ConcurrentAnimations(bar *Bar, item *Item)
	// DidSelect is called when the selection transition has completed.
	DidSelect(bar *Bar, item *Item)
}

// SelectionFuncs implements SelectionDelegate with optional functions. A nil
// ShouldSelect allows every selection; other nil functions are skipped.
type SelectionFuncs struct {
	ShouldSelectFunc         func(bar *Bar, item *Item) bool
	WillSelectFunc           func(bar *Bar, item *Item)
	ConcurrentAnimationsFunc func(bar *Bar, item *Item)
	DidSelectFunc            func(bar *Bar, item *Item)
}

func (f SelectionFuncs) ShouldSelect(bar *Bar, item *Item) bool {
	if f.ShouldSelectFunc == nil {
		return true
	}
	return f.ShouldSelectFunc(bar, item)
}

func (f SelectionFuncs) WillSelect(bar *Bar, item *Item) {
	if f.WillSelectFunc != nil {
		f.WillSelectFunc(bar, item)
	}
}

func (f SelectionFuncs) ConcurrentAnimations(bar *Bar, item *Item) {
	if f.ConcurrentAnimationsFunc != nil {
		f.ConcurrentAnimationsFunc(bar, item)
	}
}

func (f SelectionFuncs) DidSelect(bar *Bar, item *Item) {
	if f.DidSelectFunc != nil {
		f.DidSelectFunc(bar, item)
	}
}

// CustomizationDelegate observes the customization session started with
// [Bar.BeginCustomizing].
type CustomizationDelegate interface {
	WillBeginCustomizing(bar *Bar, items []*Item)
	DidBeginCustomizing(bar *Bar, items []*Item)
	WillEndCustomizing(bar *Bar, items []*Item, changed bool)
	DidEndCustomizing(bar *Bar, items []*Item, changed bool)
}

// CustomizationFuncs implements CustomizationDelegate with optional
// functions.
type CustomizationFuncs struct {
	WillBeginFunc func(bar *Bar, items []*Item)
	DidBeginFunc  func(bar *Bar, items []*Item)
	WillEndFunc   func(bar *Bar, items []*Item, changed bool)
	DidEndFunc    func(bar *Bar, items []*Item, changed bool)
}

func (f CustomizationFuncs) WillBeginCustomizing(bar *Bar, items []*Item) {
	if f.WillBeginFunc != nil {
		f.WillBeginFunc(bar, items)
	}
}

func (f CustomizationFuncs) DidBeginCustomizing(bar *Bar, items []*Item) {
	if f.DidBeginFunc != nil {
		f.DidBeginFunc(bar, items)
	}
}

func (f CustomizationFuncs) WillEndCustomizing(bar *Bar, items []*Item, changed bool) {
	if f.WillEndFunc != nil {
		f.WillEndFunc(bar, items, changed)
	}
}

func (f CustomizationFuncs) DidEndCustomizing(bar *Bar, items []*Item, changed bool) {
	if f.DidEndFunc != nil {
		f.DidEndFunc(bar, items, changed)
	}
}

// Hooks connect the bar to whatever draws it. The bar calls them after it
// changed something visible; it never draws itself. Any hook may be nil.
type Hooks struct {
	// Refresh is called after the appearance of a view changed.
	Refresh func(view *ItemView)
	// Hide is called before the visible window is rebuilt across a change
	// into or out of infinite layout. Nothing should be drawn until Reveal.
	Hide func()
	// Reveal ends a Hide.
	Reveal func()
	// Fade reports the opacity of the visible window, from 1 to 0 and back,
	// while SetItems animates.
	Fade func(alpha float64)
	// Changed is called after any layout or scroll change.
	Changed func()
}
