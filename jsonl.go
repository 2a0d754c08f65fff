package align

import (
	"encoding/json"
	"io"
)

func writeJSONL(w io.Writer, l *Layout) error {
	for _, line := range l.Doc.Lines {
		if err := writeJSONLRow(w, line.Words()); err != nil {
			return err
		}
	}
	return nil
}

func writeJSONLRow(w io.Writer, words []string) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(words)
}
