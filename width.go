package align

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Width selects how the width of a word is measured.
type Width int

const (
	// DisplayWidth counts terminal cells, so wide East Asian characters
	// occupy two columns and combining marks none. Input must be UTF-8.
	DisplayWidth Width = iota
	// ByteWidth counts bytes. Input may be in any encoding.
	ByteWidth
)

// String returns the width mode name.
func (m Width) String() string {
	switch m {
	case DisplayWidth:
		return "display"
	case ByteWidth:
		return "bytes"
	default:
		return fmt.Sprintf("Width(%d)", int(m))
	}
}

// Func returns the measuring function for m.
func (m Width) Func() func(string) int {
	if m == ByteWidth {
		return byteLen
	}
	return runewidth.StringWidth
}

func byteLen(s string) int { return len(s) }
