package text

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// ComposePanes arranges panes into side-by-side terminal columns. Panes are
// taken in consecutive groups of columns; within a group every pane is
// padded with blank lines to the group's tallest pane and every line is
// padded to width, so each emitted row is exactly columns*width characters.
// A final group with fewer panes emits only the columns it has, with no
// filler panes synthesised.
func ComposePanes(panes []Pane, columns, width int) []string {
	if columns <= 0 || width <= 0 || len(panes) == 0 {
		return nil
	}

	blank := strings.Repeat(" ", width)

	var out []string
	for start := 0; start < len(panes); start += columns {
		group := panes[start:min(start+columns, len(panes))]

		maxLines := 0
		for _, pane := range group {
			if len(pane) > maxLines {
				maxLines = len(pane)
			}
		}

		for i := 0; i < maxLines; i++ {
			var row strings.Builder
			for _, pane := range group {
				if i < len(pane) {
					row.WriteString(padRight(pane[i], width))
				} else {
					row.WriteString(blank)
				}
			}
			out = append(out, row.String())
		}
	}

	return out
}

// padRight left-justifies s in a field of width characters. Lines already
// at or over the width are returned unchanged.
func padRight(s string, width int) string {
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
