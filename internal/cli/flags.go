package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bjaus/align"
)

// enumFlag implements pflag.Value for a fixed set of string values.
type enumFlag struct {
	value string
	vs    []string
}

func newEnumFlag(defaultValue string, vs []string) *enumFlag {
	return &enumFlag{value: defaultValue, vs: vs}
}

func (f *enumFlag) Type() string {
	return "{" + strings.Join(f.vs, ",") + "}"
}

func (f *enumFlag) String() string { return f.value }

func (f *enumFlag) Set(s string) error {
	if !slices.Contains(f.vs, s) {
		return fmt.Errorf("must be one of %v", f.Type())
	}
	f.value = s
	return nil
}

// formatFlag accepts any format align.ParseFormat does, including
// go-template=<tmpl>.
type formatFlag struct {
	format align.Format
}

func (f *formatFlag) Type() string { return "format" }

func (f *formatFlag) String() string { return f.format.String() }

func (f *formatFlag) Set(s string) error {
	format, err := align.ParseFormat(s)
	if err != nil {
		return err
	}
	f.format = format
	return nil
}

type borderFlag struct {
	border align.BorderStyle
}

func (f *borderFlag) Type() string { return "border" }

func (f *borderFlag) String() string { return f.border.String() }

func (f *borderFlag) Set(s string) error {
	border, err := align.ParseBorder(s)
	if err != nil {
		return err
	}
	f.border = border
	return nil
}

func formatNames() []string {
	var names []string
	for _, f := range align.Formats() {
		names = append(names, f.String())
	}
	return names
}
