package align

import (
	"io"

	"gopkg.in/yaml.v3"
)

// writeYAML encodes the document as a sequence of word sequences.
func writeYAML(w io.Writer, l *Layout) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(l.rows()); err != nil {
		return err
	}
	return enc.Close()
}
