package tabbar

import (
	"math"

	"github.com/gdamore/tcell/v3"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Ellipsis marks titles shortened to fit their item.
const Ellipsis = "…"

type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

// Print prints text onto the screen into the given box at (x,y,maxWidth,1),
// not exceeding that box. Text wider than maxWidth is shortened with an
// ellipsis. If the style's background is the default color, the existing
// screen background is kept.
//
// Returns the screen width of the printed text.
func Print(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style) int {
	return printClipped(screen, text, x, y, maxWidth, alignment, style, 0, math.MaxInt32)
}

// Truncate shortens text to at most maxWidth cells, ending it with an
// ellipsis if anything was cut.
func Truncate(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if uniseg.StringWidth(text) <= maxWidth {
		return text
	}
	return runewidth.Truncate(text, maxWidth, Ellipsis)
}

// printClipped works like [Print] but only touches the cells in [left,
// right). Text keeps its position; the clipped part is just not drawn. It is
// used for items that are partly scrolled out of the bar.
func printClipped(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style, left, right int) (printedWidth int) {
	totalWidth, totalHeight := screen.Size()
	if maxWidth <= 0 || len(text) == 0 || y < 0 || y >= totalHeight {
		return 0
	}
	left = max(left, 0)
	right = min(right, totalWidth)

	text = Truncate(text, maxWidth)
	textWidth := uniseg.StringWidth(text)
	switch alignment {
	case AlignmentCenter:
		x += (maxWidth - textWidth) / 2
	case AlignmentRight:
		x += maxWidth - textWidth
	}

	var state *stepState
	for len(text) > 0 {
		var c string
		c, text, state = step(text, state)
		if c == "" {
			break
		}
		width := state.Width()
		if width == 0 {
			continue
		}

		if x >= left && x+width <= right {
			finalStyle := style
			if finalStyle.GetBackground() == tcell.ColorDefault {
				_, existingStyle, _ := screen.Get(x, y)
				finalStyle = finalStyle.Background(existingStyle.GetBackground())
			}
			for offset := width - 1; offset >= 0; offset-- {
				// To avoid undesired effects, we populate all cells.
				if offset == 0 {
					screen.Put(x+offset, y, c, finalStyle)
				} else {
					screen.Put(x+offset, y, " ", finalStyle)
				}
			}
			printedWidth += width
		}
		x += width
	}

	return printedWidth
}

// fill paints the cells [x, x+width) of row y with style.
func fill(screen tcell.Screen, x, y, width int, style tcell.Style) {
	for i := range width {
		screen.Put(x+i, y, " ", style)
	}
}

// stepState represents the current state of the grapheme parser.
type stepState struct {
	unisegState int
	boundaries  int
}

// Width returns the grapheme cluster's width in cells.
func (s *stepState) Width() int {
	return s.boundaries >> uniseg.ShiftWidth
}

// step iterates over grapheme clusters of a string.
func step(str string, state *stepState) (cluster, rest string, newState *stepState) {
	if state == nil {
		state = &stepState{
			unisegState: -1,
		}
	}
	if len(str) == 0 {
		newState = state
		return
	}

	preState := state.unisegState
	cluster, rest, state.boundaries, state.unisegState = uniseg.StepString(str, preState)

	newState = state
	return
}
