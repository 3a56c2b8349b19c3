package tabbar

import (
	"math"

	"github.com/gdamore/tcell/v3"
)

const subcell = 8

// IndicatorGlyphs defines the track and fractional thumb glyphs of a
// horizontal scroll indicator. ThumbLeft holds glyphs filled from the left
// edge of the cell, ThumbRight glyphs filled from the right edge, each
// indexed by the filled eighths minus one.
type IndicatorGlyphs struct {
	Track string

	ThumbLeft  [8]string
	ThumbRight [8]string
}

// LegacyComputingGlyphs returns legacy-computing symbols for full 1/8
// fractional fidelity.
func LegacyComputingGlyphs() IndicatorGlyphs {
	return IndicatorGlyphs{
		Track:      "─",
		ThumbLeft:  [8]string{"▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"},
		ThumbRight: [8]string{"▕", "🮇", "🮈", "▐", "🮉", "🮊", "🮋", "█"},
	}
}

// UnicodeGlyphs returns a standard-unicode-only approximation set.
func UnicodeGlyphs() IndicatorGlyphs {
	return IndicatorGlyphs{
		Track:      "─",
		ThumbLeft:  [8]string{"▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"},
		ThumbRight: [8]string{"▕", "▕", "▐", "▐", "▐", "▐", "█", "█"},
	}
}

// ScrollIndicator renders a one-row horizontal thumb showing which part of
// the bar's content is visible. It hides itself when everything fits.
type ScrollIndicator struct {
	*Box

	contentLen  float64
	viewportLen float64
	offset      float64

	trackStyle tcell.Style
	thumbStyle tcell.Style

	glyphs IndicatorGlyphs
}

// NewScrollIndicator returns a new horizontal scroll indicator.
func NewScrollIndicator() *ScrollIndicator {
	return &ScrollIndicator{
		Box:        NewBox(),
		trackStyle: tcell.StyleDefault.Foreground(Styles.IndicatorTrackColor),
		thumbStyle: tcell.StyleDefault.Foreground(Styles.IndicatorColor),
		glyphs:     UnicodeGlyphs(),
	}
}

// SetLengths sets the content and viewport widths and the scroll offset, in
// the bar's content units.
func (s *ScrollIndicator) SetLengths(content, viewport, offset float64) *ScrollIndicator {
	if s.contentLen != content || s.viewportLen != viewport || s.offset != offset {
		s.contentLen = max(content, 0)
		s.viewportLen = max(viewport, 0)
		s.offset = max(offset, 0)
		s.MarkDirty()
	}
	return s
}

// SetGlyphs applies a glyph set.
func (s *ScrollIndicator) SetGlyphs(g IndicatorGlyphs) *ScrollIndicator {
	s.glyphs = g
	return s
}

// SetThumbStyle sets the thumb style.
func (s *ScrollIndicator) SetThumbStyle(style tcell.Style) *ScrollIndicator {
	s.thumbStyle = style
	return s
}

// SetTrackStyle sets the track style.
func (s *ScrollIndicator) SetTrackStyle(style tcell.Style) *ScrollIndicator {
	s.trackStyle = style
	return s
}

type indicatorMetrics struct {
	trackCells int
	trackLen   int
	thumbLen   int
	thumbStart int
}

// metrics computes the indicator geometry in subcell units.
func (s *ScrollIndicator) metrics(trackCells int) indicatorMetrics {
	trackLen := trackCells * subcell
	if trackLen <= 0 || s.contentLen <= 0 {
		return indicatorMetrics{}
	}

	viewportLen := min(max(s.viewportLen, 1), s.contentLen)
	maxOffset := max(s.contentLen-viewportLen, 0)
	offset := min(s.offset, maxOffset)

	if maxOffset == 0 {
		return indicatorMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: trackLen}
	}

	// Subcell math lets the thumb move in 1/8-cell steps while staying
	// proportional to the visible share of the content.
	thumbLen := min(max(int(math.Round(float64(trackLen)*viewportLen/s.contentLen)), subcell), trackLen)
	thumbTravel := trackLen - thumbLen
	thumbStart := int(math.Round(float64(thumbTravel) * offset / maxOffset))
	return indicatorMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: thumbLen, thumbStart: thumbStart}
}

// visible returns true if there is anything to scroll.
func (s *ScrollIndicator) visible() bool {
	return s.contentLen > max(s.viewportLen, 1)
}

func cellFill(m indicatorMetrics, cellIndex int) (start int, fillLen int) {
	if m.thumbLen == 0 {
		return 0, 0
	}
	cellStart := cellIndex * subcell
	cellEnd := cellStart + subcell
	thumbEnd := m.thumbStart + m.thumbLen
	start = max(m.thumbStart, cellStart)
	end := min(thumbEnd, cellEnd)
	if end <= start {
		return 0, 0
	}
	// Convert absolute subcell coverage into the cell-local [start,len] used
	// by fractional glyph selection.
	fillLen = min(end-start, subcell)
	start = min(max(start-cellStart, 0), subcell)
	return start, fillLen
}

func (s *ScrollIndicator) glyph(start, fillLen int) (string, tcell.Style) {
	if fillLen <= 0 {
		return s.glyphs.Track, s.trackStyle
	}
	if fillLen >= subcell {
		return s.glyphs.ThumbLeft[7], s.thumbStyle
	}
	ix := fillLen - 1
	if start == 0 {
		return s.glyphs.ThumbLeft[ix], s.thumbStyle
	}
	return s.glyphs.ThumbRight[ix], s.thumbStyle
}

// Draw draws the indicator on the first row of its rect.
func (s *ScrollIndicator) Draw(screen tcell.Screen) {
	s.Clear(screen)

	x, y, width, height := s.Rect()
	if width <= 0 || height <= 0 || !s.visible() {
		return
	}

	m := s.metrics(width)
	for cell := 0; cell < m.trackCells; cell++ {
		glyph, style := s.glyph(cellFill(m, cell))
		screen.Put(x+cell, y, glyph, style)
	}
}

var _ Primitive = &ScrollIndicator{}
