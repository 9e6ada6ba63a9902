package main

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

func getLevel(level string) (logrus.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel, nil
	case "info":
		return logrus.InfoLevel, nil
	case "warn":
		return logrus.WarnLevel, nil
	case "", "error":
		return logrus.ErrorLevel, nil
	default:
		return logrus.ErrorLevel, fmt.Errorf("invalid log level: %v", level)
	}
}

func getFormatter(format string) logrus.Formatter {
	switch format {
	case logFormatJSON:
		return &logrus.JSONFormatter{}
	case logFormatJSONPretty:
		return &logrus.JSONFormatter{PrettyPrint: true}
	default:
		return &prettyFormatter{}
	}
}

// newLogger builds the interpreter's logger. Logs always go to w, never
// to the stream that receives PRINT output.
func newLogger(p *logParams, w io.Writer) (*logrus.Logger, error) {
	level, err := getLevel(p.level.String())
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetFormatter(getFormatter(p.format.String()))
	return l, nil
}

// prettyFormatter implements the Logrus Formatter interface with a
// single line per entry: level, message, then key=value pairs sorted
// by key.
type prettyFormatter struct{}

func (p *prettyFormatter) Format(e *logrus.Entry) ([]byte, error) {
	b := new(bytes.Buffer)

	fmt.Fprintf(b, "[%s] %s", strings.ToUpper(e.Level.String()), e.Message)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%v", k, e.Data[k])
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}
