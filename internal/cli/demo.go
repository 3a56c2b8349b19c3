package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v3"

	"github.com/xqrs/tabbar"
	"github.com/xqrs/tabbar/help"
	"github.com/xqrs/tabbar/keybind"
)

// demoTitles are the items offered by the presets, in order.
var demoTitles = []string{
	"Bookmarks",
	"Contacts",
	"Downloads",
	"Favorites",
	"History",
	"More",
	"Most Viewed",
}

// preset is one entry of the item count switcher.
type preset struct {
	count int
	// infinite is applied before the items when set.
	infinite *bool
}

var presets = [...]preset{
	{count: 3},
	{count: 5},
	{count: 7, infinite: boolPtr(false)},
	{count: 7, infinite: boolPtr(true)},
}

func boolPtr(v bool) *bool {
	return &v
}

// demoKeys are the bindings the demo adds on top of the tab bar's own.
type demoKeys struct {
	tabs tabbar.KeyMap

	Presets   [len(presets)]keybind.Keybind
	Animated  keybind.Keybind
	Attention keybind.Keybind
	Badge     keybind.Keybind
	Disable   keybind.Keybind
	Help      keybind.Keybind
	Quit      keybind.Keybind
}

func newDemoKeys(tabs tabbar.KeyMap) demoKeys {
	k := demoKeys{
		tabs: tabs,
		Animated: keybind.NewKeybind(
			keybind.WithKeys("a"),
			keybind.WithHelp("a", "animate"),
		),
		Attention: keybind.NewKeybind(
			keybind.WithKeys("!"),
			keybind.WithHelp("!", "attention"),
		),
		Badge: keybind.NewKeybind(
			keybind.WithKeys("b"),
			keybind.WithHelp("b", "badge"),
		),
		Disable: keybind.NewKeybind(
			keybind.WithKeys("d"),
			keybind.WithHelp("d", "disable"),
		),
		Help: keybind.NewKeybind(
			keybind.WithKeys("?"),
			keybind.WithHelp("?", "more"),
		),
		Quit: keybind.NewKeybind(
			keybind.WithKeys("q", "ctrl+c"),
			keybind.WithHelp("q", "quit"),
		),
	}
	for i, p := range presets {
		key := fmt.Sprintf("f%d", i+1)
		desc := fmt.Sprintf("%d items", p.count)
		if p.infinite != nil {
			if *p.infinite {
				desc += ", infinite"
			} else {
				desc += ", bounded"
			}
		}
		k.Presets[i] = keybind.NewKeybind(
			keybind.WithKeys(key),
			keybind.WithHelp(strings.ToUpper(key), desc),
		)
	}
	return k
}

func (k demoKeys) ShortHelp() []keybind.Keybind {
	return append(k.tabs.ShortHelp(), k.Help, k.Quit)
}

func (k demoKeys) FullHelp() [][]keybind.Keybind {
	groups := k.tabs.FullHelp()
	groups = append(groups,
		k.Presets[:],
		[]keybind.Keybind{k.Animated, k.Attention, k.Badge, k.Disable},
		[]keybind.Keybind{k.Help, k.Quit},
	)
	return groups
}

// demo is the root primitive of the demo: a heading, the tab bar, a status
// line and the key help, stacked from the top.
type demo struct {
	*tabbar.Box

	tabs *tabbar.TabBar
	help *help.Help
	keys demoKeys

	animated bool
	logger   *slog.Logger
}

const tabBarHeight = 3

func newDemo(app *tabbar.Application, cfg tabbar.Config, count int, animated bool, logger *slog.Logger) *demo {
	d := &demo{
		Box:      tabbar.NewBox(),
		help:     help.New(),
		animated: animated,
		logger:   logger,
	}
	d.tabs = tabbar.NewTabBar(app, tabbar.WithConfig(cfg), tabbar.WithLogger(logger))
	d.tabs.SetSelectedFunc(d.selected)
	d.keys = newDemoKeys(d.tabs.KeyMap())
	d.help.SetKeyMap(d.keys)
	d.tabs.SetItems(tabbar.NewItems(demoTitles[:clampCount(count)]...), false)
	return d
}

func clampCount(count int) int {
	return min(max(count, 1), len(demoTitles))
}

func (d *demo) selected(item *tabbar.Item) {
	d.logger.Debug("item selected", "title", item.Title, "index", item.Index())
	d.MarkDirty()
}

// applyPreset switches to the i-th preset.
func (d *demo) applyPreset(i int) {
	p := presets[i]
	bar := d.tabs.Bar()
	if p.infinite != nil {
		bar.SetInfiniteScrolling(*p.infinite)
	}
	d.tabs.SetItems(tabbar.NewItems(demoTitles[:p.count]...), d.animated)
	d.logger.Info("preset applied",
		"items", p.count,
		"infinite", bar.Config().InfiniteScrolling,
		"animated", d.animated,
	)
}

// selectedIndex returns the index of the selected item, or -1.
func (d *demo) selectedIndex() int {
	if item := d.tabs.Bar().SelectedItem(); item != nil {
		return item.Index()
	}
	return -1
}

// Draw draws this primitive onto the screen.
func (d *demo) Draw(screen tcell.Screen) {
	d.Clear(screen)

	x, y, width, height := d.Rect()
	if width <= 0 || height <= 0 {
		return
	}

	heading := tcell.StyleDefault.Foreground(tabbar.Styles.HelpKeyColor).Bold(true)
	tabbar.Print(screen, "Infinite tab bar", x, y, width, tabbar.AlignmentCenter, heading)

	d.tabs.SetRect(x, y+2, width, min(tabBarHeight, max(height-2, 0)))
	d.tabs.Draw(screen)

	if row := y + 2 + tabBarHeight + 1; row < y+height {
		tabbar.Print(screen, d.statusLine(), x, row, width, tabbar.AlignmentCenter,
			tcell.StyleDefault.Foreground(tabbar.Styles.HelpDescColor))
	}

	helpHeight := min(d.help.Height(), height)
	d.help.SetRect(x, y+height-helpHeight, width, helpHeight)
	d.help.Draw(screen)
}

func (d *demo) statusLine() string {
	bar := d.tabs.Bar()
	selected := "none"
	if item := bar.SelectedItem(); item != nil {
		selected = item.Title
	}
	animated := "off"
	if d.animated {
		animated = "on"
	}
	return fmt.Sprintf("%s · %d items · %s · animated %s", selected, len(bar.Items()), bar.Mode(), animated)
}

// InputHandler handles key events.
func (d *demo) InputHandler(event *tcell.EventKey) tabbar.Command {
	return d.handleKey(keybind.EventString(event))
}

func (d *demo) handleKey(key string) tabbar.Command {
	for i, binding := range d.keys.Presets {
		if keybind.MatchesKey(key, binding) {
			d.applyPreset(i)
			title := fmt.Sprintf("tabbardemo: %d items", presets[i].count)
			return tabbar.Batch(tabbar.RedrawCommand{}, tabbar.TitleCommand(title))
		}
	}

	bar := d.tabs.Bar()
	switch {
	case keybind.MatchesKey(key, d.keys.Quit):
		return tabbar.QuitCommand{}
	case keybind.MatchesKey(key, d.keys.Help):
		d.help.SetShowAll(!d.help.ShowAll())
	case keybind.MatchesKey(key, d.keys.Animated):
		d.animated = !d.animated
	case keybind.MatchesKey(key, d.keys.Attention):
		if i := d.selectedIndex(); i >= 0 {
			bar.SetRequiresAttention(i, !bar.SelectedItem().RequiresAttention())
		}
	case keybind.MatchesKey(key, d.keys.Badge):
		if i := d.selectedIndex(); i >= 0 {
			bar.SetBadge(i, nextBadge(bar.SelectedItem().Badge()))
		}
	case keybind.MatchesKey(key, d.keys.Disable):
		d.toggleNeighbor()
	default:
		return d.tabs.HandleKey(key)
	}
	d.MarkDirty()
	return tabbar.RedrawCommand{}
}

// toggleNeighbor enables or disables the item after the selected one. The
// selected item itself stays enabled so the bar always has a selection.
func (d *demo) toggleNeighbor() {
	bar := d.tabs.Bar()
	items := bar.Items()
	i := d.selectedIndex()
	if i < 0 || len(items) < 2 {
		return
	}
	next := (i + 1) % len(items)
	bar.SetEnabled(next, !items[next].Enabled())
}

// nextBadge cycles through no badge and the counts 1 to 9.
func nextBadge(badge string) string {
	if badge == "" {
		return "1"
	}
	n, err := strconv.Atoi(badge)
	if err != nil || n >= 9 {
		return ""
	}
	return strconv.Itoa(n + 1)
}

// MouseHandler forwards mouse events to the tab bar.
func (d *demo) MouseHandler(action tabbar.MouseAction, event *tcell.EventMouse) (tabbar.Primitive, tabbar.Command) {
	return d.tabs.MouseHandler(action, event)
}

// IsDirty is true while the demo or any of its parts needs drawing.
func (d *demo) IsDirty() bool {
	return d.Box.IsDirty() || d.tabs.IsDirty() || d.help.IsDirty()
}

// HasFocus is true while the demo or its tab bar has focus, so key events
// keep reaching the demo after a click focused the tab bar.
func (d *demo) HasFocus() bool {
	return d.Box.HasFocus() || d.tabs.HasFocus()
}

var _ tabbar.Primitive = &demo{}
