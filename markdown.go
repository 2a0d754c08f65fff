package align

import (
	"fmt"
	"io"
	"strings"
)

// writeMarkdown renders a GitHub-flavored table whose header is the first
// line. Column alignment markers follow the positioning.
func writeMarkdown(w io.Writer, l *Layout) error {
	if len(l.Doc.Lines) == 0 {
		return nil
	}
	rows := l.rows()
	numCols := l.Doc.Columns()
	if numCols == 0 {
		return nil
	}

	// Minimum 3 for alignment markers.
	widths := make([]int, numCols)
	for i := range widths {
		widths[i] = max(l.ColumnWidth(i), 3)
	}

	if err := writeMarkdownRow(w, l, rows[0], widths); err != nil {
		return err
	}

	sep := make([]string, numCols)
	for i, width := range widths {
		switch l.Alignment(i) {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range rows[1:] {
		if err := writeMarkdownRow(w, l, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, l *Layout, cells []string, widths []int) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = strings.ReplaceAll(cells[i], "|", `\|`)
		}
		padded[i] = l.cell(cell, width, l.Alignment(i))
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
