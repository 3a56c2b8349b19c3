// Package help renders the key bindings of a [KeyMap] as a one-line summary
// or as aligned columns.
package help

import (
	"strings"

	"github.com/gdamore/tcell/v3"
	"github.com/mattn/go-runewidth"

	"github.com/xqrs/tabbar"
	"github.com/xqrs/tabbar/keybind"
)

type KeyMap interface {
	// ShortHelp returns keybinds for single-line help.
	ShortHelp() []keybind.Keybind
	// FullHelp returns keybind groups, where each top-level entry is a column.
	FullHelp() [][]keybind.Keybind
}

type Help struct {
	*tabbar.Box
	Styles Styles

	keyMap    KeyMap
	showAll   bool
	separator string
	gap       string
}

func New() *Help {
	return &Help{
		Box:       tabbar.NewBox(),
		Styles:    DefaultStyles(),
		separator: " • ",
		gap:       "    ",
	}
}

// SetKeyMap sets the key map used by this help primitive.
func (h *Help) SetKeyMap(keyMap KeyMap) *Help {
	h.keyMap = keyMap
	h.MarkDirty()
	return h
}

// SetShowAll enables or disables full help mode.
func (h *Help) SetShowAll(showAll bool) *Help {
	if h.showAll != showAll {
		h.showAll = showAll
		h.MarkDirty()
	}
	return h
}

// ShowAll returns whether full help mode is enabled.
func (h *Help) ShowAll() bool {
	return h.showAll
}

// Height returns the number of rows needed to show the current mode.
func (h *Help) Height() int {
	if h.keyMap == nil {
		return 0
	}
	if !h.showAll {
		return 1
	}
	rows := 0
	for _, group := range h.keyMap.FullHelp() {
		rows = max(rows, len(enabledEntries(group)))
	}
	return rows
}

// Draw draws this primitive onto the screen.
func (h *Help) Draw(screen tcell.Screen) {
	h.Clear(screen)

	if h.keyMap == nil {
		return
	}

	x, y, width, height := h.Rect()
	var lines []line
	if h.showAll {
		lines = h.fullLines(h.keyMap.FullHelp(), width)
	} else {
		lines = []line{h.shortLine(h.keyMap.ShortHelp(), width)}
	}

	for row := 0; row < len(lines) && row < height; row++ {
		lines[row].draw(screen, x, y+row, width)
	}
}

// Lines renders the current mode as plain text lines no wider than maxWidth,
// without trailing padding.
func (h *Help) Lines(maxWidth int) []string {
	if h.keyMap == nil {
		return nil
	}
	var lines []line
	if h.showAll {
		lines = h.fullLines(h.keyMap.FullHelp(), maxWidth)
	} else {
		lines = []line{h.shortLine(h.keyMap.ShortHelp(), maxWidth)}
	}
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, strings.TrimRight(l.String(), " "))
	}
	return out
}

type segment struct {
	text  string
	style tcell.Style
}

type line []segment

func (l line) width() int {
	width := 0
	for _, s := range l {
		width += runewidth.StringWidth(s.text)
	}
	return width
}

func (l line) String() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.text)
	}
	return b.String()
}

func (l line) draw(screen tcell.Screen, x, y, width int) {
	for _, s := range l {
		if width <= 0 {
			return
		}
		printed := tabbar.Print(screen, s.text, x, y, width, tabbar.AlignmentLeft, s.style)
		x += printed
		width -= printed
	}
}

// shortLine joins the enabled bindings with the separator, dropping the ones
// that do not fit and marking the cut with an ellipsis.
func (h *Help) shortLine(bindings []keybind.Keybind, maxWidth int) line {
	var out line
	for _, help := range enabledEntries(bindings) {
		item := h.shortItem(help)
		candidate := append(line(nil), out...)
		if len(out) > 0 {
			candidate = append(candidate, segment{text: h.separator, style: h.Styles.ShortSeparatorStyle})
		}
		candidate = append(candidate, item...)
		if maxWidth > 0 && candidate.width() > maxWidth {
			return append(out, h.ellipsisTail(out, maxWidth)...)
		}
		out = candidate
	}
	return out
}

func (h *Help) shortItem(help keybind.Help) line {
	switch {
	case help.Key == "":
		return line{{text: help.Desc, style: h.Styles.ShortDescStyle}}
	case help.Desc == "":
		return line{{text: help.Key, style: h.Styles.ShortKeyStyle}}
	default:
		return line{
			{text: help.Key, style: h.Styles.ShortKeyStyle},
			{text: " ", style: h.Styles.ShortDescStyle},
			{text: help.Desc, style: h.Styles.ShortDescStyle},
		}
	}
}

// fullLines lays the groups out as columns with aligned keys. Columns are
// added left to right until the next one would overflow maxWidth.
func (h *Help) fullLines(groups [][]keybind.Keybind, maxWidth int) []line {
	type column struct {
		entries []keybind.Help
		keyW    int
		colW    int
	}

	var columns []column
	for _, group := range groups {
		col := column{entries: enabledEntries(group)}
		if len(col.entries) == 0 {
			continue
		}
		for _, e := range col.entries {
			col.keyW = max(col.keyW, runewidth.StringWidth(e.Key))
		}
		for _, e := range col.entries {
			col.colW = max(col.colW, col.keyW+1+runewidth.StringWidth(e.Desc))
		}
		columns = append(columns, col)
	}
	if len(columns) == 0 {
		return nil
	}

	gapW := runewidth.StringWidth(h.gap)
	included, total := 0, 0
	for i, col := range columns {
		next := col.colW
		if i > 0 {
			next += gapW
		}
		if maxWidth > 0 && total+next > maxWidth {
			break
		}
		included++
		total += next
	}
	if included == 0 {
		return []line{{{text: tabbar.Ellipsis, style: h.Styles.EllipsisStyle}}}
	}

	rows := 0
	for _, col := range columns[:included] {
		rows = max(rows, len(col.entries))
	}

	lines := make([]line, 0, rows)
	for row := range rows {
		var l line
		for i, col := range columns[:included] {
			if i > 0 {
				l = append(l, segment{text: h.gap, style: h.Styles.FullSeparatorStyle})
			}
			last := i == included-1
			if row >= len(col.entries) {
				if !last {
					l = append(l, segment{text: strings.Repeat(" ", col.colW), style: h.Styles.FullDescStyle})
				}
				continue
			}
			e := col.entries[row]
			key := e.Key + strings.Repeat(" ", col.keyW-runewidth.StringWidth(e.Key))
			desc := e.Desc
			if !last {
				desc = runewidth.FillRight(desc, col.colW-col.keyW-1)
			}
			l = append(l,
				segment{text: key, style: h.Styles.FullKeyStyle},
				segment{text: " " + desc, style: h.Styles.FullDescStyle},
			)
		}
		lines = append(lines, l)
	}

	if included < len(columns) {
		lines[0] = append(lines[0], h.ellipsisTail(lines[0], maxWidth)...)
	}
	return lines
}

// ellipsisTail returns the marker appended to truncated help, or nothing if
// it does not fully fit.
func (h *Help) ellipsisTail(current line, maxWidth int) line {
	tail := line{
		{text: " ", style: h.Styles.EllipsisStyle},
		{text: tabbar.Ellipsis, style: h.Styles.EllipsisStyle},
	}
	if maxWidth <= 0 || current.width()+tail.width() > maxWidth {
		return nil
	}
	return tail
}

func enabledEntries(bindings []keybind.Keybind) []keybind.Help {
	var out []keybind.Help
	for _, kb := range bindings {
		help := kb.Help()
		if !kb.Enabled() || (help.Key == "" && help.Desc == "") {
			continue
		}
		out = append(out, help)
	}
	return out
}
