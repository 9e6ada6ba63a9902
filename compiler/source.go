package compiler

import (
	"os"
	"path/filepath"
	"strings"
)

// Ext is the file extension every script must carry.
const Ext = ".zpm"

// Line is one trimmed, non-blank source line. Num counts non-blank
// lines only, starting at 1. Gap records that blank lines preceded it.
type Line struct {
	Num  int
	Text string
	Gap  bool
}

// Source is a script ready for interpretation.
type Source struct {
	Name  string
	Lines []Line
}

// ParseSource trims every line of text and drops blank ones.
func ParseSource(name, text string) *Source {
	src := &Source{Name: name}
	gap := false
	for _, raw := range strings.Split(text, "\n") {
		s := strings.TrimSpace(raw)
		if s == "" {
			gap = len(src.Lines) > 0
			continue
		}
		src.Lines = append(src.Lines, Line{Num: len(src.Lines) + 1, Text: s, Gap: gap})
		gap = false
	}
	return src
}

// LoadSource checks path and reads the script it names.
func LoadSource(path string) (*Source, error) {
	data, err := ReadScript(path)
	if err != nil {
		return nil, err
	}
	return ParseSource(path, string(data)), nil
}

// ReadScript returns the raw contents of the script at path. It fails
// with ArgumentError when path lacks the .zpm extension and with
// FileAccessError when the file cannot be read.
func ReadScript(path string) ([]byte, error) {
	if filepath.Ext(path) != Ext {
		return nil, newError(ArgumentError, 0, "%q is not a %s file", path, Ext)
	}

	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		return nil, newError(FileAccessError, 0, "%s: file does not exist", path)
	case err != nil:
		return nil, wrapError(FileAccessError, err, "stat %s", path)
	case info.IsDir():
		return nil, newError(FileAccessError, 0, "%s is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapError(FileAccessError, err, "read %s", path)
	}
	return data, nil
}
