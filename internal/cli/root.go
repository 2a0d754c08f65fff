// Package cli implements the align command line.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"path"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bjaus/align"
	"github.com/bjaus/align/internal/logging"
)

type params struct {
	separator   string
	delimiter   string
	until       int
	bytes       bool
	positioning string
	format      formatFlag
	border      borderFlag
	header      bool
	configFile  string
	logLevel    *enumFlag
	logFormat   *enumFlag
}

func newParams() *params {
	return &params{
		format:    formatFlag{format: align.Text},
		border:    borderFlag{border: align.BorderRounded},
		logLevel:  newEnumFlag("warn", logging.Levels),
		logFormat: newEnumFlag(logging.FormatText, logging.Formats),
	}
}

// NewCommand returns the root align command.
func NewCommand() *cobra.Command {
	p := newParams()
	cmd := &cobra.Command{
		Use:   path.Base(os.Args[0]) + " [flags] [positioning]",
		Short: "Align columns of text",
		Long: `Reads text from stdin, aligns its columns, and prints the result to stdout.

Words are separated by spaces and tabs. Whitespace between two string
delimiters does not split a word; a backslash escapes the delimiter.

The optional positioning argument sets the alignment and minimum width of
each column. Every column is an optional width followed by '<' (left),
'>' (right) or '=' (centered). Columns past the last one given inherit its
alignment. For example, '<50>=<' means:

  - the first column is left aligned
  - the second column is right aligned and at least 50 wide
  - the third column is centered
  - the fourth and all following columns are left aligned

Every flag can also be set through an ALIGN_<FLAG> environment variable
(dashes become underscores) or a key of the same name in the YAML file
given by --config. Flags win over the environment, which wins over the file.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return applyDefaults(cmd, p.configFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, p, args)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&p.separator, "separator", "o", " ", "set the output separator")
	fs.StringVarP(&p.delimiter, "delimiter", "s", `"`, "set the string delimiter (empty disables quoting)")
	fs.IntVarP(&p.until, "until", "u", align.NoLimit, "set the maximum column; the rest of a line becomes its last column (negative: no maximum)")
	fs.BoolVarP(&p.bytes, "bytes", "b", false, "measure widths in bytes instead of display cells")
	fs.StringVarP(&p.positioning, "positioning", "p", "", "set the positioning of the columns (overridden by the argument)")
	fs.VarP(&p.format, "format", "f", fmt.Sprintf("set the output format %v or go-template=<tmpl>", formatNames()))
	fs.Var(&p.border, "border", "set the border style of the box format {rounded,none,ascii,heavy,double}")
	fs.BoolVar(&p.header, "header", false, "treat the first line as a header in box and html output")
	fs.StringVarP(&p.configFile, configFileFlag, "c", "", "set path of a YAML configuration file")
	fs.VarP(p.logLevel, "log-level", "l", "set log level")
	fs.Var(p.logFormat, "log-format", "set log format")
	return cmd
}

// Execute runs the root command against the process arguments.
func Execute() error {
	return NewCommand().Execute()
}

// options turns the parsed flags into align options. The positioning
// argument, when present, replaces the --positioning flag.
func (p *params) options(args []string) (align.Options, error) {
	opts := align.DefaultOptions()
	opts.Separator = p.separator
	opts.Delimiter = 0
	if p.delimiter != "" {
		opts.Delimiter = p.delimiter[0]
	}
	opts.Until = p.until
	if p.until < 0 {
		opts.Until = align.NoLimit
	}
	if p.bytes {
		opts.Width = align.ByteWidth
	}
	opts.Border = p.border.border
	opts.Header = p.header

	spec := p.positioning
	if len(args) > 0 {
		spec = args[0]
	}
	pos, err := align.ParsePositioning(spec)
	if err != nil {
		return opts, err
	}
	opts.Positioning = pos
	return opts, nil
}

func run(cmd *cobra.Command, p *params, args []string) error {
	logger, err := logging.New(cmd.ErrOrStderr(), p.logLevel.String(), p.logFormat.String())
	if err != nil {
		return err
	}
	opts, err := p.options(args)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"format":      p.format.format,
		"positioning": opts.Positioning.String(),
		"width":       opts.Width,
		"until":       opts.Until,
	}).Debug("Aligning input.")

	doc, readErr := align.Read(cmd.InOrStdin(), opts)
	if readErr != nil {
		logger.WithError(readErr).Warn("Stopped reading input early; writing the lines read so far.")
	}
	layout := align.Measure(doc, opts)
	logger.WithFields(logrus.Fields{
		"lines":   len(doc.Lines),
		"columns": doc.Columns(),
		"widths":  columnWidths(layout, doc.Columns()),
	}).Debug("Measured columns.")

	out := bufio.NewWriter(cmd.OutOrStdout())
	if err := align.Write(out, p.format.format, layout); err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return err
	}
	return readErr
}

func columnWidths(l *align.Layout, n int) []int {
	widths := make([]int, n)
	for i := range widths {
		widths[i] = l.ColumnWidth(i)
	}
	return widths
}
