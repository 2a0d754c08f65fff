package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/align"
)

func TestEnumFlag(t *testing.T) {
	t.Parallel()
	f := newEnumFlag("b", []string{"a", "b"})
	assert.Equal(t, "b", f.String())
	assert.Equal(t, "{a,b}", f.Type())
	require.NoError(t, f.Set("a"))
	assert.Equal(t, "a", f.String())
	assert.EqualError(t, f.Set("c"), "must be one of {a,b}")
	assert.Equal(t, "a", f.String())
}

func TestFormatFlag(t *testing.T) {
	t.Parallel()
	f := formatFlag{format: align.Text}
	assert.Equal(t, "format", f.Type())
	require.NoError(t, f.Set("go-template={{.Text}}"))
	assert.Equal(t, align.GoTemplate("{{.Text}}"), f.format)
	assert.ErrorIs(t, f.Set("xml"), align.ErrUnsupportedFormat)
}

func TestBorderFlag(t *testing.T) {
	t.Parallel()
	f := borderFlag{border: align.BorderRounded}
	assert.Equal(t, "rounded", f.String())
	require.NoError(t, f.Set("double"))
	assert.Equal(t, align.BorderDouble, f.border)
	assert.ErrorIs(t, f.Set("dotted"), align.ErrUnsupportedBorder)
}

func TestFormatNames(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"text", "plain", "box", "markdown", "html", "csv", "tsv", "json", "jsonl", "yaml"}, formatNames())
}
