package align

import (
	"fmt"
	"html"
	"io"
)

func writeHTML(w io.Writer, l *Layout) error {
	if len(l.Doc.Lines) == 0 {
		return nil
	}
	rows := l.rows()

	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}

	if l.Header {
		if _, err := fmt.Fprintln(w, "  <thead>"); err != nil {
			return err
		}
		if err := writeHTMLRow(w, l, rows[0], "th"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "  </thead>"); err != nil {
			return err
		}
		rows = rows[1:]
	}

	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeHTMLRow(w, l, row, "td"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, "</table>")
	return err
}

func writeHTMLRow(w io.Writer, l *Layout, cells []string, tag string) error {
	if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
		return err
	}
	for i, cell := range cells {
		style := alignStyle(l.Alignment(i))
		if _, err := fmt.Fprintf(w, "      <%s%s>%s</%s>\n", tag, style, html.EscapeString(cell), tag); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "    </tr>")
	return err
}

func alignStyle(a Alignment) string {
	switch a {
	case AlignRight:
		return ` style="text-align: right"`
	case AlignCenter:
		return ` style="text-align: center"`
	default:
		return ""
	}
}
