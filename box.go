package align

import (
	"fmt"
	"io"
	"strings"
)

// BorderStyle controls the border characters of the Box format.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, separator-joined columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

var borderNames = map[BorderStyle]string{
	BorderRounded: "rounded",
	BorderNone:    "none",
	BorderASCII:   "ascii",
	BorderHeavy:   "heavy",
	BorderDouble:  "double",
}

// String returns the border style name.
func (b BorderStyle) String() string {
	if name, ok := borderNames[b]; ok {
		return name
	}
	return fmt.Sprintf("BorderStyle(%d)", int(b))
}

// ParseBorder parses a border style name as returned by String.
func ParseBorder(s string) (BorderStyle, error) {
	for b, name := range borderNames {
		if name == s {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedBorder, s)
}

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// writeBox draws every line as a table row. Lines with fewer words than the
// widest line get empty cells.
func writeBox(w io.Writer, l *Layout) error {
	if len(l.Doc.Lines) == 0 {
		return nil
	}
	widths := make([]int, l.Doc.Columns())
	for i := range widths {
		widths[i] = l.ColumnWidth(i)
	}
	rows := l.rows()
	if l.Border == BorderNone {
		return writeOpenBox(w, l, rows, widths)
	}
	bc, ok := borderSets[l.Border]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnsupportedBorder, l.Border)
	}

	if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}
	for i, row := range rows {
		if err := drawBoxRow(w, l, row, widths, bc.vertical); err != nil {
			return err
		}
		if l.Header && i == 0 && len(rows) > 1 {
			if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
				return err
			}
		}
	}
	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

func writeOpenBox(w io.Writer, l *Layout, rows [][]string, widths []int) error {
	for i, row := range rows {
		parts := make([]string, len(widths))
		for col, width := range widths {
			cell := ""
			if col < len(row) {
				cell = row[col]
			}
			parts[col] = l.cell(cell, width, l.Alignment(col))
		}
		line := l.Doc.Indent + strings.TrimRight(strings.Join(parts, l.Separator), " ")
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if l.Header && i == 0 && len(rows) > 1 {
			sep := make([]string, len(widths))
			for col, width := range widths {
				sep[col] = strings.Repeat("-", width)
			}
			if _, err := fmt.Fprintln(w, l.Doc.Indent+strings.Join(sep, l.Separator)); err != nil {
				return err
			}
		}
	}
	return nil
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawBoxRow(w io.Writer, l *Layout, cells []string, widths []int, vert string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString(" ")
		sb.WriteString(l.cell(cell, width, l.Alignment(i)))
		sb.WriteString(" ")
		if i < len(widths)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}
