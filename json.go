package align

import (
	"encoding/json"
	"io"
)

// writeJSON encodes the document as an array holding the words of each line.
func writeJSON(w io.Writer, l *Layout) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(l.rows())
}
