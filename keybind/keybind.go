// Package keybind maps terminal key events onto named, documented bindings.
package keybind

import (
	"slices"
	"strings"

	"github.com/gdamore/tcell/v3"
)

// Keybind is a set of equivalent keys plus the help text shown for them. A
// disabled binding matches nothing and is left out of help.
type Keybind struct {
	keys     []string
	help     Help
	disabled bool
}

// Help is the key label and description shown in the help line.
type Help struct {
	Key  string
	Desc string
}

type Option func(*Keybind)

func NewKeybind(options ...Option) Keybind {
	var k Keybind
	for _, option := range options {
		option(&k)
	}
	return k
}

// WithKeys sets the keys, written like "left", "G" or "Ctrl-C".
func WithKeys(keys ...string) Option {
	return func(k *Keybind) {
		k.keys = k.keys[:0]
		for _, key := range keys {
			if key = normalize(key); key != "" {
				k.keys = append(k.keys, key)
			}
		}
	}
}

func WithHelp(key, desc string) Option {
	return func(k *Keybind) {
		k.help = Help{Key: key, Desc: desc}
	}
}

// WithDisabled creates the binding in the disabled state.
func WithDisabled() Option {
	return func(k *Keybind) {
		k.disabled = true
	}
}

func (k Keybind) Help() Help {
	return k.help
}

// Enabled returns whether the binding matches keys and shows in help.
func (k Keybind) Enabled() bool {
	return !k.disabled && len(k.keys) > 0
}

// MatchesKey reports whether any enabled binding contains key, a string as
// returned by [EventString].
func MatchesKey(key string, keybinds ...Keybind) bool {
	if key == "" {
		return false
	}
	for _, kb := range keybinds {
		if kb.Enabled() && slices.Contains(kb.keys, key) {
			return true
		}
	}
	return false
}

// Digit returns the value of a 1-9 key, as used for jumping to an item by
// position.
func Digit(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	return int(key[0] - '0'), true
}

var keyNames = map[tcell.Key]string{
	tcell.KeyEnter:      "enter",
	tcell.KeyEscape:     "esc",
	tcell.KeyTab:        "tab",
	tcell.KeyBacktab:    "shift+tab",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdn",
}

// modifiers in the order they appear in key strings.
var modifiers = []struct {
	mask tcell.ModMask
	name string
}{
	{tcell.ModCtrl, "ctrl"},
	{tcell.ModAlt, "alt"},
	{tcell.ModShift, "shift"},
}

// EventString returns the key string of event, for example "ctrl+c", "left"
// or "q". Runes keep their case and carry no shift modifier.
func EventString(event *tcell.EventKey) string {
	if event == nil {
		return ""
	}
	key := event.Key()
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+(key-tcell.KeyCtrlA)))
	}
	if key == tcell.KeyRune {
		if event.Modifiers()&tcell.ModAlt != 0 {
			return "alt+" + event.Str()
		}
		return event.Str()
	}
	name, ok := keyNames[key]
	if !ok {
		return normalize(event.Name())
	}
	var mods []string
	for _, m := range modifiers {
		if event.Modifiers()&m.mask != 0 && !strings.HasPrefix(name, m.name+"+") {
			mods = append(mods, m.name)
		}
	}
	return strings.Join(append(mods, name), "+")
}

var aliases = map[string]string{
	"escape":   "esc",
	"return":   "enter",
	"pageup":   "pgup",
	"pagedown": "pgdn",
	"backtab":  "shift+tab",
	"control":  "ctrl",
}

// normalize turns a key written by hand, or a tcell key name, into the form
// EventString produces.
func normalize(key string) string {
	parts := strings.FieldsFunc(strings.TrimSpace(key), func(r rune) bool {
		return r == '+' || r == '-'
	})
	if len(parts) == 0 {
		return ""
	}
	primary := strings.TrimSpace(parts[len(parts)-1])
	if len([]rune(primary)) != 1 || len(parts) > 1 {
		primary = strings.ToLower(primary)
	}
	if alias, ok := aliases[primary]; ok {
		primary = alias
	}
	if primary == "ctrl" || primary == "alt" || primary == "shift" {
		return ""
	}

	seen := make(map[string]bool)
	for _, part := range parts[:len(parts)-1] {
		mod := strings.ToLower(strings.TrimSpace(part))
		if alias, ok := aliases[mod]; ok {
			mod = alias
		}
		seen[mod] = true
	}
	if strings.HasPrefix(primary, "shift+") {
		seen["shift"] = true
		primary = strings.TrimPrefix(primary, "shift+")
	}
	var mods []string
	for _, m := range modifiers {
		if seen[m.name] {
			mods = append(mods, m.name)
		}
	}
	return strings.Join(append(mods, primary), "+")
}
