package align

import (
	"fmt"
	"io"
	"iter"
	"strings"
	"text/template"
	"unicode/utf8"
)

// WriteIter formats lines from an iterator and writes them to w. Line
// terminators are stripped from each line.
//
// Formats that treat every line on its own (Plain, CSV, TSV, JSONL and
// GoTemplate) write each line as it arrives. Formats that depend on column
// widths (Text, Box, Markdown, HTML) and whole-document encodings (JSON,
// YAML) collect all lines first.
//
// With [DisplayWidth], a line that is not valid UTF-8 ends the sequence: the
// lines before it are written and a *ReadError is returned.
func WriteIter(w io.Writer, f Format, seq iter.Seq[string], opts Options) error {
	if err := checkFormat(f); err != nil {
		return err
	}
	switch f {
	case Plain:
		return streamLines(seq, opts, newPlainSink(w))
	case CSV:
		return streamLines(seq, opts, func(_ int, line Line) error {
			return writeCSVRow(w, line.Words())
		})
	case TSV:
		return streamLines(seq, opts, func(_ int, line Line) error {
			return writeTSVRow(w, line.Words())
		})
	case JSONL:
		return streamLines(seq, opts, func(_ int, line Line) error {
			return writeJSONLRow(w, line.Words())
		})
	default:
		if tmplStr, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return streamGoTemplate(w, tmplStr, seq, opts)
		}
		return streamCollect(w, f, seq, opts)
	}
}

// WriteChan formats lines from a channel and writes them to w.
// It is a thin wrapper around [WriteIter].
func WriteChan(w io.Writer, f Format, ch <-chan string, opts Options) error {
	return WriteIter(w, f, chanToIter(ch), opts)
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

// validLines yields seq with terminators stripped and stops at the first line
// that cannot be measured, recording why in *errp.
func validLines(seq iter.Seq[string], opts Options, errp *error) iter.Seq[string] {
	return func(yield func(string) bool) {
		n := 0
		for text := range seq {
			n++
			text = trimNewline(text)
			if opts.Width == DisplayWidth && !utf8.ValidString(text) {
				*errp = &ReadError{Line: n, Err: ErrInvalidUTF8}
				return
			}
			if !yield(text) {
				return
			}
		}
	}
}

func streamCollect(w io.Writer, f Format, seq iter.Seq[string], opts Options) error {
	var readErr error
	var lines []string
	for text := range validLines(seq, opts, &readErr) {
		lines = append(lines, text)
	}
	if err := Write(w, f, Measure(NewDocument(lines, opts), opts)); err != nil {
		return err
	}
	return readErr
}

func streamLines(seq iter.Seq[string], opts Options, sink func(int, Line) error) error {
	var readErr error
	i := 0
	for text := range validLines(seq, opts, &readErr) {
		if err := sink(i, Tokenize(text, opts.Delimiter, opts.Until)); err != nil {
			return err
		}
		i++
	}
	return readErr
}

// newPlainSink writes plain lines, taking the indentation from the first.
func newPlainSink(w io.Writer) func(int, Line) error {
	var indent string
	return func(i int, line Line) error {
		if i == 0 {
			indent = leadingIndent(line.Text)
		}
		return writePlainLine(w, indent, line)
	}
}

func streamGoTemplate(w io.Writer, tmplStr string, seq iter.Seq[string], opts Options) error {
	tmpl, err := parseTemplate(tmplStr)
	if err != nil {
		return err
	}
	return streamLines(seq, opts, templateSink(w, tmpl))
}

func templateSink(w io.Writer, tmpl *template.Template) func(int, Line) error {
	return func(i int, line Line) error {
		if err := executeRow(w, tmpl, i, line); err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
		return nil
	}
}
