package align

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Document is the tokenized input: every line and the indentation of the
// first one.
type Document struct {
	Indent string
	Lines  []Line
}

// ReadError reports the input line at which reading stopped.
type ReadError struct {
	Line int
	Err  error
}

// Error formats the read error with its 1-based line number.
func (e *ReadError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("align: read error on line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying Err.
func (e *ReadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Read tokenizes every line of r. Line terminators ("\n" or "\r\n") are
// stripped before tokenizing.
//
// With [DisplayWidth], a line that is not valid UTF-8 stops reading. The
// lines before it are kept and returned alongside a *ReadError wrapping
// [ErrInvalidUTF8], so callers can still render what was read.
func Read(r io.Reader, opts Options) (*Document, error) {
	doc := &Document{}
	br := bufio.NewReader(r)
	for n := 1; ; n++ {
		text, err := br.ReadString('\n')
		if text == "" && err != nil {
			if errors.Is(err, io.EOF) {
				return doc, nil
			}
			return doc, &ReadError{Line: n, Err: err}
		}
		text = trimNewline(text)
		if opts.Width == DisplayWidth && !utf8.ValidString(text) {
			return doc, &ReadError{Line: n, Err: ErrInvalidUTF8}
		}
		doc.add(text, &opts)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return doc, nil
			}
			return doc, &ReadError{Line: n + 1, Err: err}
		}
	}
}

// NewDocument tokenizes lines that have already been split and stripped of
// their terminators.
func NewDocument(lines []string, opts Options) *Document {
	doc := &Document{Lines: make([]Line, 0, len(lines))}
	for _, text := range lines {
		doc.add(text, &opts)
	}
	return doc
}

func (d *Document) add(text string, opts *Options) {
	if len(d.Lines) == 0 {
		d.Indent = leadingIndent(text)
	}
	d.Lines = append(d.Lines, Tokenize(text, opts.Delimiter, opts.Until))
}

// Columns returns the word count of the longest line.
func (d *Document) Columns() int {
	n := 0
	for _, l := range d.Lines {
		if l.Len() > n {
			n = l.Len()
		}
	}
	return n
}

func trimNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
