package align

import (
	"fmt"
	"io"
	"strings"
)

func writeTSV(w io.Writer, l *Layout) error {
	for _, line := range l.Doc.Lines {
		if err := writeTSVRow(w, line.Words()); err != nil {
			return err
		}
	}
	return nil
}

func writeTSVRow(w io.Writer, words []string) error {
	_, err := fmt.Fprintln(w, strings.Join(words, "\t"))
	return err
}
