// Package align lines up the words of text into columns.
//
// Input is split into lines and every line into words separated by spaces
// and tabs. Whitespace inside a quoted region (by default between two '"')
// does not split, and a backslash escapes the quote character. Column widths
// are the widest word seen in each column across the whole input, so all
// input is read before anything is written.
//
// The central entry point is [Align], which reads, measures and writes in one
// call:
//
//	err := align.Align(os.Stdout, os.Stdin, align.Text, align.DefaultOptions())
//
// The steps are also available on their own: [Read] tokenizes input into a
// [Document], [Measure] computes the column widths into a [Layout], and
// [Write] renders a layout in a [Format].
//
// # Positioning
//
// [ParsePositioning] turns a format string into per-column minimum widths and
// alignments. Each column is an optional width followed by '<' (left),
// '>' (right) or '=' (centered). Columns past the last one given inherit its
// alignment:
//
//	p, err := align.ParsePositioning("<10>=")
//
// # Widths
//
// [DisplayWidth] measures terminal cells and requires UTF-8 input;
// [ByteWidth] counts bytes and accepts anything.
//
// # Formats
//
// [Text] is the aligned column output. The other formats reuse the same
// tokenizing: [Plain] (single-spaced words), [Box] (bordered table, see
// [BorderStyle]), [Markdown], [HTML], [CSV], [TSV], [JSON], [JSONL], [YAML]
// and [GoTemplate].
//
// # Streaming
//
// [WriteIter] and [WriteChan] accept lines from an iterator or channel.
// Per-line formats are written as lines arrive; the others are collected
// first.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidPositioning] — malformed positioning format string
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrUnsupportedBorder] — unknown border style
//   - [ErrInvalidTemplate] — invalid go-template syntax
//   - [ErrInvalidUTF8] — input that cannot be measured in display width,
//     reported inside a [*ReadError]
package align
