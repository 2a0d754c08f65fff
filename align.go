package align

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat  = errors.New("unsupported format")
	ErrUnsupportedBorder  = errors.New("unsupported border style")
	ErrInvalidTemplate    = errors.New("invalid template")
	ErrInvalidPositioning = errors.New("invalid positioning")
	ErrInvalidUTF8        = errors.New("invalid UTF-8")
)

// Format represents an output format.
type Format string

const (
	Text     Format = "text"
	Plain    Format = "plain"
	Box      Format = "box"
	Markdown Format = "markdown"
	HTML     Format = "html"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Text, Plain, Box, Markdown, HTML, CSV, TSV, JSON, JSONL, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each line using a Go
// text/template executed against a [Row].
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings. Templates are compiled here so that a bad
// template is reported before any input is read.
func ParseFormat(s string) (Format, error) {
	if tmpl, ok := strings.CutPrefix(s, goTemplatePrefix); ok {
		if _, err := parseTemplate(tmpl); err != nil {
			return "", err
		}
		return Format(s), nil
	}
	if slices.Contains(formats, Format(s)) {
		return Format(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Options configures tokenizing, measuring and rendering.
type Options struct {
	// Separator is written between two words of a line.
	Separator string
	// Delimiter quotes words containing whitespace. Zero disables quoting.
	Delimiter byte
	// Until caps the number of words per line; the rest of the line becomes
	// one final word. [NoLimit] disables the cap.
	Until int
	// Width selects byte or display-width measurement.
	Width Width
	// Positioning holds minimum widths and alignments per column.
	Positioning Positioning
	// Border is the border style of the Box format.
	Border BorderStyle
	// Header treats the first line as a header row in Box and HTML output.
	// Markdown always does.
	Header bool
}

// DefaultOptions returns the options of a bare invocation: a single space
// separator, '"' as the string delimiter, no word cap, display widths and
// every column left-aligned.
func DefaultOptions() Options {
	return Options{
		Separator:   " ",
		Delimiter:   '"',
		Until:       NoLimit,
		Width:       DisplayWidth,
		Positioning: DefaultPositioning(),
		Border:      BorderRounded,
	}
}

// Align reads all of r, measures every column and writes the result to w in
// format f.
//
// If reading stops early, the lines read so far are still written and the
// read error is returned afterwards.
func Align(w io.Writer, r io.Reader, f Format, opts Options) error {
	if err := checkFormat(f); err != nil {
		return err
	}
	doc, readErr := Read(r, opts)
	if err := Write(w, f, Measure(doc, opts)); err != nil {
		return err
	}
	return readErr
}

// Write renders a measured layout to w in format f.
func Write(w io.Writer, f Format, l *Layout) error {
	switch f {
	case Text:
		return l.Render(w)
	case Plain:
		return writePlain(w, l)
	case Box:
		return writeBox(w, l)
	case Markdown:
		return writeMarkdown(w, l)
	case HTML:
		return writeHTML(w, l)
	case CSV:
		return writeCSV(w, l)
	case TSV:
		return writeTSV(w, l)
	case JSON:
		return writeJSON(w, l)
	case JSONL:
		return writeJSONL(w, l)
	case YAML:
		return writeYAML(w, l)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, l)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders a measured layout and returns the bytes.
func Marshal(f Format, l *Layout) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, l); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func checkFormat(f Format) error {
	_, err := ParseFormat(string(f))
	return err
}
