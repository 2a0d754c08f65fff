package align

import (
	"fmt"
	"io"
	"text/template"
)

// Row is the value a go-template format is executed against, once per line.
type Row struct {
	Index int // 0-based line number
	Text  string
	Words []string
}

func parseTemplate(tmplStr string) (*template.Template, error) {
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	return tmpl, nil
}

func writeGoTemplate(w io.Writer, tmplStr string, l *Layout) error {
	tmpl, err := parseTemplate(tmplStr)
	if err != nil {
		return err
	}
	for i, line := range l.Doc.Lines {
		if err := executeRow(w, tmpl, i, line); err != nil {
			return err
		}
	}
	return nil
}

func executeRow(w io.Writer, tmpl *template.Template, i int, line Line) error {
	row := Row{Index: i, Text: line.Text, Words: line.Words()}
	if err := tmpl.Execute(w, row); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
