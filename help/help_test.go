package help

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xqrs/tabbar/keybind"
)

type keyMap struct {
	short []keybind.Keybind
	full  [][]keybind.Keybind
}

func (k keyMap) ShortHelp() []keybind.Keybind  { return k.short }
func (k keyMap) FullHelp() [][]keybind.Keybind { return k.full }

func bind(key, desc string) keybind.Keybind {
	return keybind.NewKeybind(keybind.WithKeys(key), keybind.WithHelp(key, desc))
}

func testKeyMap() keyMap {
	prev, next, quit := bind("h", "prev"), bind("l", "next"), bind("q", "quit")
	hidden := keybind.NewKeybind(keybind.WithKeys("x"), keybind.WithHelp("x", "hidden"), keybind.WithDisabled())
	return keyMap{
		short: []keybind.Keybind{prev, hidden, next, quit},
		full: [][]keybind.Keybind{
			{prev, next, hidden},
			{bind("enter", "open")},
			{quit},
		},
	}
}

func TestShortHelpSkipsDisabled(t *testing.T) {
	h := New().SetKeyMap(testKeyMap())
	require.Equal(t, []string{"h prev • l next • q quit"}, h.Lines(0))
	require.Equal(t, 1, h.Height())
}

func TestShortHelpTruncates(t *testing.T) {
	h := New().SetKeyMap(testKeyMap())
	// "h prev • l next" is 15 wide; the ellipsis tail needs two more.
	require.Equal(t, []string{"h prev • l next …"}, h.Lines(17))
	require.Equal(t, []string{"h prev • l next"}, h.Lines(16))
}

func TestFullHelpColumns(t *testing.T) {
	h := New().SetKeyMap(testKeyMap()).SetShowAll(true)
	require.True(t, h.ShowAll())
	require.Equal(t, 2, h.Height())
	require.Equal(t, []string{
		"h prev    enter open    q quit",
		"l next",
	}, h.Lines(0))
}

func TestFullHelpDropsColumnsThatDoNotFit(t *testing.T) {
	h := New().SetKeyMap(testKeyMap()).SetShowAll(true)
	require.Equal(t, []string{
		"h prev    enter open …",
		"l next",
	}, h.Lines(22))
	require.Equal(t, []string{"…"}, h.Lines(3))
}

func TestNoKeyMap(t *testing.T) {
	h := New()
	require.Nil(t, h.Lines(80))
	require.Zero(t, h.Height())
}
