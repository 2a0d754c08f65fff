package align

import (
	"io"
	"strings"
)

// writePlain joins the words of every line with single spaces and no
// padding, keeping the indentation of the first line.
func writePlain(w io.Writer, l *Layout) error {
	for _, line := range l.Doc.Lines {
		if err := writePlainLine(w, l.Doc.Indent, line); err != nil {
			return err
		}
	}
	return nil
}

func writePlainLine(w io.Writer, indent string, line Line) error {
	text := "\n"
	if line.Len() > 0 {
		text = indent + strings.Join(line.Words(), " ") + "\n"
	}
	_, err := io.WriteString(w, text)
	return err
}
