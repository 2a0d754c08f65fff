package align

import "strings"

// NoLimit disables the word cap of [Tokenize].
const NoLimit = -1

// Span is a half-open [Start, End) byte range of a word within its line.
type Span struct {
	Start int
	End   int
}

// Line is one input line together with the spans of its words.
type Line struct {
	Text  string
	Spans []Span
}

// Len returns the number of words on the line.
func (l Line) Len() int { return len(l.Spans) }

// Word returns the i-th word.
func (l Line) Word(i int) string {
	s := l.Spans[i]
	return l.Text[s.Start:s.End]
}

// Words returns the words of the line in order.
func (l Line) Words() []string {
	words := make([]string, len(l.Spans))
	for i := range l.Spans {
		words[i] = l.Word(i)
	}
	return words
}

// Tokenize splits text into words separated by runs of spaces and tabs.
//
// Whitespace between two occurrences of delim does not split, unless the
// delimiter is escaped with a backslash. Escapes do not chain: in `\\"` the
// delimiter is not escaped. Delimiters and backslashes stay part of the word.
// A zero delim disables quoting.
//
// Once until words have been produced, the remainder of the line becomes a
// single final word. A negative until means no limit.
func Tokenize(text string, delim byte, until int) Line {
	line := Line{Text: text}
	pos := 0
	for {
		for pos < len(text) && isBlank(text[pos]) {
			pos++
		}
		if pos >= len(text) {
			break
		}
		if until >= 0 && len(line.Spans) == until {
			line.Spans = append(line.Spans, Span{Start: pos, End: len(text)})
			break
		}
		start := pos
		pos = wordEnd(text, start, delim)
		line.Spans = append(line.Spans, Span{Start: start, End: pos})
	}
	return line
}

func wordEnd(text string, start int, delim byte) int {
	esc, quoted := false, false
	for i := start; i < len(text); i++ {
		c := text[i]
		if delim != 0 && !esc && c == delim {
			quoted = !quoted
		}
		esc = !esc && c == '\\'
		if !quoted && isBlank(c) {
			return i
		}
	}
	return len(text)
}

func isBlank(c byte) bool { return c == ' ' || c == '\t' }

// leadingIndent returns the run of spaces and tabs text starts with.
func leadingIndent(text string) string {
	return text[:len(text)-len(strings.TrimLeft(text, " \t"))]
}
