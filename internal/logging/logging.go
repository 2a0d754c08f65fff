// Package logging configures the logrus logger used by the align command.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log formats accepted by GetFormatter.
const (
	FormatText       = "text"
	FormatJSON       = "json"
	FormatJSONPretty = "json-pretty"
)

// Levels lists the accepted log level names.
var Levels = []string{"debug", "info", "warn", "error"}

// Formats lists the accepted log format names.
var Formats = []string{FormatText, FormatJSON, FormatJSONPretty}

// GetLevel maps a level name onto a logrus level. The empty string selects
// warn, so that a filter stays quiet unless asked.
func GetLevel(level string) (logrus.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel, nil
	case "info":
		return logrus.InfoLevel, nil
	case "", "warn":
		return logrus.WarnLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	default:
		return logrus.WarnLevel, fmt.Errorf("invalid log level: %v", level)
	}
}

// GetFormatter returns the logrus formatter for a format name. Unknown names
// fall back to text.
func GetFormatter(format string) logrus.Formatter {
	switch format {
	case FormatJSON:
		return &logrus.JSONFormatter{}
	case FormatJSONPretty:
		return &logrus.JSONFormatter{PrettyPrint: true}
	default:
		return &prettyFormatter{}
	}
}

// New returns a logger writing to w at the given level and format.
func New(w io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := GetLevel(level)
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	logger.SetFormatter(GetFormatter(format))
	return logger, nil
}

// prettyFormatter prints "[LEVEL] message" followed by one indented
// key = value line per field, in key order.
type prettyFormatter struct{}

func (p *prettyFormatter) Format(e *logrus.Entry) ([]byte, error) {
	b := new(bytes.Buffer)
	fmt.Fprintf(b, "[%s] %s\n", strings.ToUpper(e.Level.String()), e.Message)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, "  %s = %v\n", k, e.Data[k])
	}
	return b.Bytes(), nil
}
