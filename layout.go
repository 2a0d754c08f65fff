package align

import (
	"fmt"
	"io"
	"strings"
)

// Layout is a document together with its final column widths, built by
// [Measure]. It owns its Positioning; measuring never touches the Options it
// was built from.
type Layout struct {
	Doc         *Document
	Positioning Positioning
	Separator   string
	Border      BorderStyle
	Header      bool
	Width       Width

	measure func(string) int
}

// Measure computes the width of every column as the maximum of its minimum
// width and the widths of all words in that column.
func Measure(doc *Document, opts Options) *Layout {
	l := &Layout{
		Doc:         doc,
		Positioning: opts.Positioning.Clone(),
		Separator:   opts.Separator,
		Border:      opts.Border,
		Header:      opts.Header,
		Width:       opts.Width,
		measure:     opts.Width.Func(),
	}
	widths := &l.Positioning.Widths
	for _, line := range doc.Lines {
		for i := range line.Spans {
			if w := l.measure(line.Word(i)); w > widths.Get(i) {
				widths.Set(i, w)
			}
		}
	}
	return l
}

// ColumnWidth returns the final width of column i.
func (l *Layout) ColumnWidth(i int) int { return l.Positioning.Widths.Get(i) }

// Alignment returns the alignment of column i.
func (l *Layout) Alignment(i int) Alignment { return l.Positioning.Aligns.Get(i) }

// Render writes every line with its words padded to the column widths.
// Trailing padding is never written after the last word of a line, and lines
// without words come out empty.
func (l *Layout) Render(w io.Writer) error {
	var sb strings.Builder
	for _, line := range l.Doc.Lines {
		sb.Reset()
		l.formatLine(&sb, line)
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

func (l *Layout) formatLine(sb *strings.Builder, line Line) {
	if line.Len() > 0 {
		sb.WriteString(l.Doc.Indent)
	}
	for i := range line.Spans {
		word := line.Word(i)
		more := i < line.Len()-1
		pad := l.padding(i, word)
		switch l.Alignment(i) {
		case AlignRight:
			writeSpaces(sb, pad)
			sb.WriteString(word)
		case AlignCenter:
			writeSpaces(sb, pad/2)
			sb.WriteString(word)
			if more {
				writeSpaces(sb, pad-pad/2)
			}
		default:
			sb.WriteString(word)
			if more {
				writeSpaces(sb, pad)
			}
		}
		if more {
			sb.WriteString(l.Separator)
		}
	}
	sb.WriteByte('\n')
}

// padding returns how far word falls short of the width of column i.
func (l *Layout) padding(i int, word string) int {
	pad := l.ColumnWidth(i) - l.measure(word)
	if pad < 0 {
		panic(fmt.Sprintf("align: word %q is wider than column %d", word, i))
	}
	return pad
}

// cell pads s on both sides as needed to fill width.
func (l *Layout) cell(s string, width int, align Alignment) string {
	pad := width - l.measure(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

// rows returns the words of every line.
func (l *Layout) rows() [][]string {
	rows := make([][]string, len(l.Doc.Lines))
	for i, line := range l.Doc.Lines {
		rows[i] = line.Words()
	}
	return rows
}

func writeSpaces(sb *strings.Builder, n int) {
	for range n {
		sb.WriteByte(' ')
	}
}
