package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// enumFlag implements the pflag.Value interface to provide enumerated
// command line parameter values.
type enumFlag struct {
	defaultValue string
	vs           []string
	i            int
}

func newEnumFlag(defaultValue string, vs []string) *enumFlag {
	f := &enumFlag{
		i:            -1,
		vs:           vs,
		defaultValue: defaultValue,
	}
	return f
}

// Type returns the valid enumeration values.
func (f *enumFlag) Type() string {
	return "{" + strings.Join(f.vs, ",") + "}"
}

// String returns the selected value, or the default when unset.
func (f *enumFlag) String() string {
	if f.i == -1 {
		return f.defaultValue
	}
	return f.vs[f.i]
}

// IsSet reports whether the flag was given on the command line.
func (f *enumFlag) IsSet() bool {
	return f.i != -1
}

// Set updates the value of the enum flag.
func (f *enumFlag) Set(s string) error {
	for i := range f.vs {
		if f.vs[i] == s {
			f.i = i
			return nil
		}
	}
	return fmt.Errorf("must be one of %v", f.Type())
}

const (
	logFormatText       = "text"
	logFormatJSON       = "json"
	logFormatJSONPretty = "json-pretty"
)

type logParams struct {
	level  *enumFlag
	format *enumFlag
}

func newLogParams() *logParams {
	return &logParams{
		level:  newEnumFlag("error", []string{"debug", "info", "warn", "error"}),
		format: newEnumFlag(logFormatText, []string{logFormatText, logFormatJSON, logFormatJSONPretty}),
	}
}

func setLogFlags(fs *pflag.FlagSet, p *logParams) {
	fs.Var(p.level, "log-level", "set log level")
	fs.Var(p.format, "log-format", "set log format")
}
