package tui

import (
	"fmt"
	"io"

	"github.com/blackwell-systems/reelctl/internal/tmdb"
	"github.com/blackwell-systems/reelctl/internal/util"
	"github.com/charmbracelet/bubbles/list"
)

// RecordItem is one row of the catalog list.
type RecordItem struct {
	Record    tmdb.Record
	PosterURL string
}

// FilterValue implements list.Item
func (r RecordItem) FilterValue() string {
	return r.Record.Title
}

// renderRecordItem draws a record over two lines: title, then release date and poster link.
func renderRecordItem(w io.Writer, m list.Model, index int, item list.Item) {
	ri, ok := item.(RecordItem)
	if !ok {
		return
	}

	width := m.Width()
	if width <= 0 {
		width = 80
	}
	inner := width - 2

	prefix := "  "
	title := util.Truncate(ri.Record.Title, inner)
	if index == m.Index() {
		prefix = StyleHighlight.Render("›") + " "
		title = StyleHighlight.Render(title)
	} else {
		title = StyleNormal.Render(title)
	}

	date := util.OrDash(ri.Record.ReleaseDate)
	poster := util.Truncate(ri.PosterURL, inner-len(date)-2)

	_, _ = fmt.Fprintf(w, "%s%s\n  %s  %s", prefix, title, StyleDate.Render(date), StyleLink.Render(poster))
}
