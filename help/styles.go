package help

import (
	"github.com/gdamore/tcell/v3"

	"github.com/xqrs/tabbar"
)

type Styles struct {
	ShortKeyStyle       tcell.Style
	ShortDescStyle      tcell.Style
	ShortSeparatorStyle tcell.Style

	FullKeyStyle       tcell.Style
	FullDescStyle      tcell.Style
	FullSeparatorStyle tcell.Style

	EllipsisStyle tcell.Style
}

// DefaultStyles derives the help styles from the package theme.
func DefaultStyles() Styles {
	key := tcell.StyleDefault.Foreground(tabbar.Styles.HelpKeyColor)
	desc := tcell.StyleDefault.Foreground(tabbar.Styles.HelpDescColor)
	dim := desc.Dim(true)
	return Styles{
		ShortKeyStyle:       key,
		ShortDescStyle:      desc,
		ShortSeparatorStyle: dim,
		FullKeyStyle:        key,
		FullDescStyle:       desc,
		FullSeparatorStyle:  dim,
		EllipsisStyle:       dim,
	}
}
