package align

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns the format-string character for a.
func (a Alignment) String() string {
	switch a {
	case AlignRight:
		return ">"
	case AlignCenter:
		return "="
	default:
		return "<"
	}
}

// Positioning holds the per-column minimum widths and alignments.
type Positioning struct {
	Widths Vector[int]
	Aligns Vector[Alignment]
}

// DefaultPositioning left-aligns every column and derives widths purely from
// content.
func DefaultPositioning() Positioning {
	return Positioning{
		Widths: NewVector(0),
		Aligns: NewVector(AlignLeft),
	}
}

// Clone returns a Positioning that shares no state with p.
func (p *Positioning) Clone() Positioning {
	return Positioning{
		Widths: p.Widths.Clone(),
		Aligns: p.Aligns.Clone(),
	}
}

// String renders p back into the format-string grammar.
func (p *Positioning) String() string {
	var b []byte
	for i := range p.Aligns.Len() {
		if w := p.Widths.Get(i); w > 0 {
			b = strconv.AppendInt(b, int64(w), 10)
		}
		b = append(b, p.Aligns.Get(i).String()...)
	}
	return string(b)
}

// ParsePositioning parses a format string made of repetitions of an optional
// decimal minimum width followed by one of '<' (left), '>' (right) or
// '=' (centered).
//
//	<50>=<
//
// left-aligns the first column, right-aligns the second with a minimum width
// of 50, centers the third and left-aligns the fourth and every column after
// it.
func ParsePositioning(s string) (Positioning, error) {
	p := DefaultPositioning()
	for len(s) > 0 {
		n := 0
		for n < len(s) && s[n] >= '0' && s[n] <= '9' {
			n++
		}
		if n == len(s) {
			return Positioning{}, fmt.Errorf("%w: invalid format sequence %q", ErrInvalidPositioning, s)
		}
		width := 0
		if n > 0 {
			w, err := strconv.Atoi(s[:n])
			if err != nil {
				return Positioning{}, fmt.Errorf("%w: invalid width %s", ErrInvalidPositioning, s[:n])
			}
			width = w
		}
		p.Widths.Push(width)
		switch s[n] {
		case '<':
			p.Aligns.Push(AlignLeft)
		case '>':
			p.Aligns.Push(AlignRight)
		case '=':
			p.Aligns.Push(AlignCenter)
		default:
			c, _ := utf8.DecodeRuneInString(s[n:])
			return Positioning{}, fmt.Errorf("%w: invalid format character %q", ErrInvalidPositioning, c)
		}
		s = s[n+1:]
	}
	p.Widths.Push(0)
	return p, nil
}
