package align_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/align"
)

func layoutOf(t *testing.T, lines []string, mutate func(*align.Options)) *align.Layout {
	t.Helper()
	opts := align.DefaultOptions()
	if mutate != nil {
		mutate(&opts)
	}
	return align.Measure(align.NewDocument(lines, opts), opts)
}

func render(t *testing.T, f align.Format, l *align.Layout) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, align.Write(&buf, f, l))
	return buf.String()
}

// --- Plain ---

func TestWritePlain(t *testing.T) {
	t.Parallel()
	l := layoutOf(t, []string{"  a    bb", "", "ccc\td"}, nil)
	assert.Equal(t, "  a bb\n\n  ccc d\n", render(t, align.Plain, l))
}

// --- Box ---

func TestWriteBoxASCIIHeader(t *testing.T) {
	t.Parallel()
	l := layoutOf(t, []string{"name age", "bob 7"}, func(o *align.Options) {
		o.Border = align.BorderASCII
		o.Header = true
	})
	want := "" +
		"+------+-----+\n" +
		"| name | age |\n" +
		"+------+-----+\n" +
		"| bob  | 7   |\n" +
		"+------+-----+\n"
	assert.Equal(t, want, render(t, align.Box, l))
}

func TestWriteBoxAlignmentAndMissingCells(t *testing.T) {
	t.Parallel()
	l := layoutOf(t, []string{"a bb", "ccc"}, func(o *align.Options) {
		o.Border = align.BorderASCII
		o.Positioning, _ = align.ParsePositioning(">")
	})
	want := "" +
		"+-----+----+\n" +
		"|   a | bb |\n" +
		"| ccc |    |\n" +
		"+-----+----+\n"
	assert.Equal(t, want, render(t, align.Box, l))
}

func TestWriteBoxBorderStyles(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		border align.BorderStyle
		want   []string
	}{
		"rounded": {border: align.BorderRounded, want: []string{"╭", "╰", "│", "─"}},
		"heavy":   {border: align.BorderHeavy, want: []string{"┏", "┃", "━"}},
		"double":  {border: align.BorderDouble, want: []string{"╔", "║", "═"}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			l := layoutOf(t, []string{"a b", "c d"}, func(o *align.Options) { o.Border = tt.border })
			out := render(t, align.Box, l)
			for _, s := range tt.want {
				assert.Contains(t, out, s)
			}
		})
	}
}

func TestWriteBoxNone(t *testing.T) {
	t.Parallel()
	l := layoutOf(t, []string{"  name age", "bob 7", "x"}, func(o *align.Options) {
		o.Border = align.BorderNone
		o.Header = true
	})
	assert.Equal(t, "  name age\n  ---- ---\n  bob  7\n  x\n", render(t, align.Box, l))
}

func TestWriteBoxUnknownBorder(t *testing.T) {
	t.Parallel()
	l := layoutOf(t, []string{"a"}, func(o *align.Options) { o.Border = align.BorderStyle(42) })
	err := align.Write(&bytes.Buffer{}, align.Box, l)
	assert.ErrorIs(t, err, align.ErrUnsupportedBorder)
}

func TestParseBorder(t *testing.T) {
	t.Parallel()
	for _, b := range []align.BorderStyle{align.BorderRounded, align.BorderNone, align.BorderASCII, align.BorderHeavy, align.BorderDouble} {
		got, err := align.ParseBorder(b.String())
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}
	_, err := align.ParseBorder("dotted")
	assert.ErrorIs(t, err, align.ErrUnsupportedBorder)
	assert.Equal(t, "BorderStyle(42)", align.BorderStyle(42).String())
}

// --- Markdown ---

func TestWriteMarkdown(t *testing.T) {
	t.Parallel()
	l := layoutOf(t, []string{"name age note", "bob 7 a|b", "x"}, func(o *align.Options) {
		o.Positioning, _ = align.ParsePositioning("<>=")
	})
	want := "" +
		"| name | age | note |\n" +
		"| ---- | --: | :--: |\n" +
		"| bob  |   7 | a\\|b |\n" +
		"| x    |     |      |\n"
	assert.Equal(t, want, render(t, align.Markdown, l))
}

func TestWriteMarkdownMinimumWidth(t *testing.T) {
	t.Parallel()
	l := layoutOf(t, []string{"a", "b"}, nil)
	assert.Equal(t, "| a   |\n| --- |\n| b   |\n", render(t, align.Markdown, l))
}

func TestWriteMarkdownNoWords(t *testing.T) {
	t.Parallel()
	l := layoutOf(t, []string{"", "  "}, nil)
	assert.Empty(t, render(t, align.Markdown, l))
}

// --- HTML ---

func TestWriteHTML(t *testing.T) {
	t.Parallel()
	l := layoutOf(t, []string{"name size", "<b> 12"}, func(o *align.Options) {
		o.Header = true
		o.Positioning, _ = align.ParsePositioning("<>")
	})
	out := render(t, align.HTML, l)
	assert.True(t, strings.HasPrefix(out, "<table>\n  <thead>\n"))
	assert.Contains(t, out, "      <th>name</th>\n")
	assert.Contains(t, out, `      <th style="text-align: right">size</th>`)
	assert.Contains(t, out, "      <td>&lt;b&gt;</td>\n")
	assert.Contains(t, out, `      <td style="text-align: right">12</td>`)
	assert.True(t, strings.HasSuffix(out, "  </tbody>\n</table>\n"))
}

func TestWriteHTMLNoHeader(t *testing.T) {
	t.Parallel()
	l := layoutOf(t, []string{"a b"}, func(o *align.Options) {
		o.Positioning, _ = align.ParsePositioning("==")
	})
	out := render(t, align.HTML, l)
	assert.NotContains(t, out, "<thead>")
	assert.Contains(t, out, `<td style="text-align: center">b</td>`)
}

// --- CSV / TSV ---

func TestWriteCSV(t *testing.T) {
	t.Parallel()
	l := layoutOf(t, []string{`"a b" c`, "", "d,e f"}, nil)
	assert.Equal(t, "\"\"\"a b\"\"\",c\n\n\"d,e\",f\n", render(t, align.CSV, l))
}

func TestWriteTSV(t *testing.T) {
	t.Parallel()
	l := layoutOf(t, []string{"a b", "", "c"}, nil)
	assert.Equal(t, "a\tb\n\nc\n", render(t, align.TSV, l))
}

// --- JSON / JSONL / YAML ---

func TestWriteJSON(t *testing.T) {
	t.Parallel()
	l := layoutOf(t, []string{"a b", "", "<c>"}, nil)
	assert.Equal(t, `[["a","b"],[],["<c>"]]`+"\n", render(t, align.JSON, l))
}

func TestWriteJSONEmpty(t *testing.T) {
	t.Parallel()
	l := layoutOf(t, nil, nil)
	assert.Equal(t, "[]\n", render(t, align.JSON, l))
}

func TestWriteJSONL(t *testing.T) {
	t.Parallel()
	l := layoutOf(t, []string{"a b", "", "c"}, nil)
	assert.Equal(t, "[\"a\",\"b\"]\n[]\n[\"c\"]\n", render(t, align.JSONL, l))
}

func TestWriteYAML(t *testing.T) {
	t.Parallel()
	l := layoutOf(t, []string{"a b", "", `"c: d" e`}, nil)
	out := render(t, align.YAML, l)
	var got [][]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, [][]string{{"a", "b"}, {}, {`"c: d"`, "e"}}, got)
}

// --- GoTemplate ---

func TestWriteGoTemplate(t *testing.T) {
	t.Parallel()
	l := layoutOf(t, []string{"a b", "c d e"}, nil)
	f := align.GoTemplate(`{{.Index}}:{{len .Words}}:{{index .Words 0}}:{{.Text}}`)
	assert.Equal(t, "0:2:a:a b\n1:3:c:c d e\n", render(t, f, l))
}

func TestWriteGoTemplateExecError(t *testing.T) {
	t.Parallel()
	l := layoutOf(t, []string{""}, nil)
	err := align.Write(&bytes.Buffer{}, align.GoTemplate(`{{index .Words 3}}`), l)
	assert.Error(t, err)
}

func TestWriteGoTemplateInvalid(t *testing.T) {
	t.Parallel()
	l := layoutOf(t, []string{"a"}, nil)
	err := align.Write(&bytes.Buffer{}, align.GoTemplate(`{{`), l)
	assert.ErrorIs(t, err, align.ErrInvalidTemplate)
}

// --- Write errors ---

func TestWriteErrors(t *testing.T) {
	t.Parallel()
	l := layoutOf(t, []string{"name age", "bob 7", "alice 30"}, func(o *align.Options) { o.Header = true })
	for _, f := range append(align.Formats(), align.GoTemplate("{{.Text}}")) {
		t.Run(f.String(), func(t *testing.T) {
			t.Parallel()
			assert.Error(t, align.Write(&errWriter{}, f, l))
		})
	}
}

func TestWriteErrorsMidway(t *testing.T) {
	t.Parallel()
	l := layoutOf(t, []string{"name age", "bob 7", "alice 30"}, func(o *align.Options) { o.Header = true })
	// Formats that write at least once per line.
	fs := []align.Format{align.Text, align.Plain, align.Box, align.Markdown, align.HTML, align.TSV, align.JSONL, align.GoTemplate("{{.Text}}")}
	for _, f := range fs {
		for n := range 3 {
			t.Run(f.String(), func(t *testing.T) {
				t.Parallel()
				err := align.Write(&failAfterN{n: n}, f, l)
				assert.ErrorIs(t, err, errWriteFailed, "failing after %d writes", n)
			})
		}
	}
}

func TestWriteBoxNoneErrors(t *testing.T) {
	t.Parallel()
	l := layoutOf(t, []string{"a b", "c d"}, func(o *align.Options) {
		o.Border = align.BorderNone
		o.Header = true
	})
	for n := range 3 {
		assert.Error(t, align.Write(&failAfterN{n: n}, align.Box, l))
	}
}
