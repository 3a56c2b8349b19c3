package tabbar

import (
	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
)

// Theme defines the colors used when primitives are initialized.
type Theme struct {
	BackgroundColor     tcell.Color // Bar background.
	TitleColor          tcell.Color // Titles of unselected items.
	SelectedColor       tcell.Color // Title and indicator of the selected item.
	AttentionColor      tcell.Color // Titles of items requiring attention.
	DisabledColor       tcell.Color // Titles of disabled items.
	BadgeColor          tcell.Color // Badge text.
	BadgeBackground     tcell.Color // Badge background.
	IndicatorColor      tcell.Color // Scroll indicator thumb.
	IndicatorTrackColor tcell.Color // Scroll indicator track.
	HelpKeyColor        tcell.Color // Keys in the help line.
	HelpDescColor       tcell.Color // Descriptions in the help line.
}

// Styles defines the theme for applications.
var Styles = Theme{
	BackgroundColor:     tcell.ColorDefault,
	TitleColor:          color.NewRGBColor(143, 143, 143),
	SelectedColor:       color.NewRGBColor(5, 120, 255),
	AttentionColor:      color.NewRGBColor(250, 61, 38),
	DisabledColor:       color.Gray,
	BadgeColor:          color.White,
	BadgeBackground:     color.NewRGBColor(250, 61, 38),
	IndicatorColor:      color.NewRGBColor(5, 120, 255),
	IndicatorTrackColor: color.NewRGBColor(58, 58, 58),
	HelpKeyColor:        color.White,
	HelpDescColor:       color.Gray,
}
