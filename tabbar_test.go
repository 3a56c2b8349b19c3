package tabbar

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/require"

	"github.com/xqrs/tabbar/anim"
)

type cell struct {
	str   string
	style tcell.Style
}

// fakeScreen records Put calls. Methods it does not override panic through
// the nil embedded Screen, so any unexpected screen use fails the test.
type fakeScreen struct {
	tcell.Screen
	width, height int
	cells         map[[2]int]cell
}

func newFakeScreen(width, height int) *fakeScreen {
	return &fakeScreen{width: width, height: height, cells: make(map[[2]int]cell)}
}

func (s *fakeScreen) Size() (int, int) {
	return s.width, s.height
}

func (s *fakeScreen) Put(x, y int, str string, style tcell.Style) (string, int) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return "", 0
	}
	s.cells[[2]int{x, y}] = cell{str: str, style: style}
	return "", 1
}

func (s *fakeScreen) Get(x, y int) (string, tcell.Style, int) {
	c, ok := s.cells[[2]int{x, y}]
	if !ok {
		return " ", tcell.StyleDefault, 1
	}
	return c.str, c.style, 1
}

// text returns the n cells starting at (x, y).
func (s *fakeScreen) text(x, y, n int) string {
	var b strings.Builder
	for i := range n {
		str, _, _ := s.Get(x+i, y)
		b.WriteString(str)
	}
	return b.String()
}

func (s *fakeScreen) row(y int) string {
	return s.text(0, y, s.width)
}

func terminalConfig(width float64, infinite bool) Config {
	cfg := DefaultConfig()
	cfg.ItemWidth = width
	cfg.InfiniteScrolling = infinite
	return cfg
}

func newTestTabBar(cfg Config, titles ...string) *TabBar {
	t := NewTabBar(nil, WithConfig(cfg))
	t.SetItems(NewItems(titles...), false)
	return t
}

func TestTabBarDrawsStaticTitles(t *testing.T) {
	screen := newFakeScreen(40, 3)
	tb := newTestTabBar(terminalConfig(10, true), "One", "Two", "Three")
	tb.SetRect(0, 0, 40, 3)
	tb.Draw(screen)

	require.Equal(t, LayoutStatic, tb.Bar().Mode())
	row := screen.row(0)
	// Items span [5,15), [15,25) and [25,35) with centered titles.
	require.Equal(t, 8, strings.Index(row, "One"))
	require.Equal(t, 18, strings.Index(row, "Two"))
	require.Equal(t, 27, strings.Index(row, "Three"))

	require.Equal(t, strings.Repeat("▔", 10), screen.text(5, 1, 10))
	require.Equal(t, " ", screen.text(15, 1, 1))
	require.Equal(t, strings.Repeat(" ", 40), screen.row(2))

	_, style, _ := screen.Get(8, 0)
	require.Equal(t, Styles.SelectedColor, style.GetForeground())
	_, style, _ = screen.Get(18, 0)
	require.Equal(t, Styles.TitleColor, style.GetForeground())
	require.False(t, tb.IsDirty())
}

func TestTabBarDrawsItemState(t *testing.T) {
	screen := newFakeScreen(40, 1)
	tb := newTestTabBar(terminalConfig(10, true), "One", "Two", "Three")
	tb.Bar().SetRequiresAttention(1, true)
	tb.Bar().SetEnabled(2, false)
	tb.Bar().SetBadge(0, "4")
	require.True(t, tb.IsDirty())

	tb.SetRect(0, 0, 40, 1)
	tb.Draw(screen)

	// The badge takes the right end of the first item, the title the rest.
	require.Equal(t, " 4 ", screen.text(12, 0, 3))
	require.Equal(t, "One", screen.text(6, 0, 3))
	_, style, _ := screen.Get(13, 0)
	require.Equal(t, Styles.BadgeBackground, style.GetBackground())

	_, style, _ = screen.Get(18, 0)
	require.Equal(t, Styles.AttentionColor, style.GetForeground())
	_, style, _ = screen.Get(27, 0)
	require.Equal(t, Styles.DisabledColor, style.GetForeground())
}

func TestTabBarTruncatesLongTitles(t *testing.T) {
	screen := newFakeScreen(12, 1)
	tb := newTestTabBar(terminalConfig(6, true), "Bookmarks", "Contacts")
	tb.SetRect(0, 0, 12, 1)
	tb.Draw(screen)

	require.Equal(t, "Bookm…Conta…", screen.row(0))
}

func TestTabBarClickSelects(t *testing.T) {
	var selected []string
	tb := newTestTabBar(terminalConfig(10, true), "One", "Two", "Three")
	tb.SetSelectedFunc(func(item *Item) {
		selected = append(selected, item.Title)
	})
	tb.SetRect(0, 0, 40, 1)

	capture, cmd := tb.handleMouse(MouseLeftDown, 19, 0, tcell.ButtonPrimary)
	require.Same(t, tb, capture)
	require.Equal(t, FocusCommand{Target: tb}, cmd)
	_, cmd = tb.handleMouse(MouseLeftUp, 19, 0, 0)
	require.Nil(t, cmd)
	_, cmd = tb.handleMouse(MouseLeftClick, 19, 0, 0)
	require.Equal(t, RedrawCommand{}, cmd)

	require.Equal(t, "Two", tb.Bar().SelectedItem().Title)
	require.Equal(t, []string{"Two"}, selected)
}

func TestTabBarIgnoresMouseOutside(t *testing.T) {
	tb := newTestTabBar(terminalConfig(10, true), "One", "Two")
	tb.SetRect(0, 5, 40, 1)

	capture, cmd := tb.handleMouse(MouseLeftDown, 10, 0, tcell.ButtonPrimary)
	require.Nil(t, capture)
	require.Nil(t, cmd)
	require.False(t, tb.pressed)
}

func TestTabBarDragFlicksAndSettles(t *testing.T) {
	screen := newFakeScreen(30, 3)
	tb := newTestTabBar(terminalConfig(10, false), "a", "b", "c", "d", "e", "f", "g")
	tb.SetRect(0, 0, 30, 3)
	tb.Draw(screen)
	require.Equal(t, LayoutBounded, tb.Bar().Mode())
	require.Equal(t, 0.0, tb.Bar().Offset())

	tb.handleMouse(MouseLeftDown, 20, 0, tcell.ButtonPrimary)
	capture, cmd := tb.handleMouse(MouseMove, 10, 0, tcell.ButtonPrimary)
	require.Same(t, tb, capture)
	require.Equal(t, RedrawCommand{}, cmd)
	require.Equal(t, 10.0, tb.Bar().Offset())

	// Letting go at 10 cells per event flicks 40 further, onto "f".
	tb.handleMouse(MouseLeftUp, 10, 0, 0)
	require.False(t, tb.dragging)
	require.Equal(t, 50.0, tb.Bar().Offset())
	require.Equal(t, "f", tb.Bar().SelectedItem().Title)

	tb.Draw(screen)
	require.Equal(t, "─", screen.text(0, 2, 1))
	require.Equal(t, "█", screen.text(20, 2, 1))
	require.Equal(t, "─", screen.text(29, 2, 1))
}

func TestTabBarStaticDoesNotDrag(t *testing.T) {
	tb := newTestTabBar(terminalConfig(10, true), "One", "Two")
	tb.SetRect(0, 0, 40, 1)

	tb.handleMouse(MouseLeftDown, 10, 0, tcell.ButtonPrimary)
	_, cmd := tb.handleMouse(MouseMove, 20, 0, tcell.ButtonPrimary)
	require.Nil(t, cmd)
	require.False(t, tb.dragging)
	tb.handleMouse(MouseLeftUp, 20, 0, 0)
	require.False(t, tb.pressed)
}

func TestTabBarWheel(t *testing.T) {
	tb := newTestTabBar(terminalConfig(10, true), "One", "Two", "Three")
	tb.SetRect(0, 0, 40, 1)

	tb.handleMouse(MouseScrollRight, 10, 0, tcell.WheelRight)
	tb.handleMouse(MouseScrollDown, 10, 0, tcell.WheelDown)
	require.Equal(t, "Three", tb.Bar().SelectedItem().Title)
	tb.handleMouse(MouseScrollLeft, 10, 0, tcell.WheelLeft)
	require.Equal(t, "Two", tb.Bar().SelectedItem().Title)
}

func TestTabBarKeys(t *testing.T) {
	tb := newTestTabBar(terminalConfig(10, true), "One", "Two", "Three")
	tb.SetRect(0, 0, 40, 1)
	selected := func() string { return tb.Bar().SelectedItem().Title }

	require.Equal(t, RedrawCommand{}, tb.HandleKey("right"))
	require.Equal(t, "Two", selected())
	tb.HandleKey("h")
	require.Equal(t, "One", selected())
	// Static layout does not wrap.
	tb.HandleKey("left")
	require.Equal(t, "One", selected())

	tb.HandleKey("3")
	require.Equal(t, "Three", selected())
	tb.HandleKey("home")
	require.Equal(t, "One", selected())
	tb.HandleKey("end")
	require.Equal(t, "Three", selected())

	// Out of range jumps are ignored.
	tb.HandleKey("9")
	require.Equal(t, "Three", selected())

	require.Nil(t, tb.HandleKey("x"))
}

func TestTabBarKeysWrapInInfiniteLayout(t *testing.T) {
	tb := newTestTabBar(terminalConfig(10, true), "a", "b", "c", "d", "e")
	tb.SetRect(0, 0, 30, 1)
	tb.HandleKey("left")
	require.Equal(t, LayoutInfinite, tb.Bar().Mode())
	require.Equal(t, "e", tb.Bar().SelectedItem().Title)
}

func TestTabBarFades(t *testing.T) {
	manual := &anim.Manual{}
	screen := newFakeScreen(40, 1)
	tb := NewTabBar(nil, WithConfig(terminalConfig(10, true)), WithAnimator(manual))
	tb.SetItems(NewItems("One", "Two"), false)
	tb.SetRect(0, 0, 40, 1)
	tb.Draw(screen)

	tb.SetItems(NewItems("Three"), true)
	manual.Advance(0.75)
	require.InDelta(t, 0.25, tb.alpha, 1e-9)

	manual.CompleteAll()
	require.Equal(t, 1.0, tb.alpha)
	tb.Draw(screen)
	require.Contains(t, screen.row(0), "Three")
	require.NotContains(t, screen.row(0), "One")
}

func TestTabBarChangedFunc(t *testing.T) {
	changes := 0
	tb := newTestTabBar(terminalConfig(10, true), "One", "Two")
	tb.SetChangedFunc(func() { changes++ })
	tb.SetRect(0, 0, 40, 1)
	tb.Draw(newFakeScreen(40, 1))
	require.Positive(t, changes)
}
