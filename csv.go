package align

import (
	"encoding/csv"
	"io"
)

// writeCSV writes one record per line with the words as fields, so quoted
// words come out escaped by the CSV writer rather than by the input's quoting.
func writeCSV(w io.Writer, l *Layout) error {
	cw := csv.NewWriter(w)
	for _, line := range l.Doc.Lines {
		if err := cw.Write(line.Words()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeCSVRow(w io.Writer, words []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(words); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
