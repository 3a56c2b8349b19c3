package tabbar

import "github.com/xqrs/tabbar/keybind"

// KeyMap holds the key bindings of a TabBar.
type KeyMap struct {
	Previous keybind.Keybind
	Next     keybind.Keybind
	First    keybind.Keybind
	Last     keybind.Keybind
	// Jump selects an item by position. Only digit keys take effect.
	Jump keybind.Keybind
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Previous: keybind.NewKeybind(
			keybind.WithKeys("left", "h", "shift+tab"),
			keybind.WithHelp("←/h", "previous"),
		),
		Next: keybind.NewKeybind(
			keybind.WithKeys("right", "l", "tab"),
			keybind.WithHelp("→/l", "next"),
		),
		First: keybind.NewKeybind(
			keybind.WithKeys("home", "g"),
			keybind.WithHelp("g/home", "first"),
		),
		Last: keybind.NewKeybind(
			keybind.WithKeys("end", "G"),
			keybind.WithHelp("G/end", "last"),
		),
		Jump: keybind.NewKeybind(
			keybind.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			keybind.WithHelp("1-9", "jump"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.Previous, k.Next, k.Jump}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]keybind.Keybind {
	return [][]keybind.Keybind{
		{k.Previous, k.Next},
		{k.First, k.Last},
		{k.Jump},
	}
}
