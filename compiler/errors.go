package compiler

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure the interpreter can report.
type ErrorKind string

const (
	ArgumentError         ErrorKind = "ArgumentError"
	FileAccessError       ErrorKind = "FileAccessError"
	SyntaxError           ErrorKind = "SyntaxError"
	UndefinedReference    ErrorKind = "UndefinedReference"
	UninitializedVariable ErrorKind = "UninitializedVariable"
	TypeMismatch          ErrorKind = "TypeMismatch"
	InvalidLoopCount      ErrorKind = "InvalidLoopCount"
	UnterminatedLoop      ErrorKind = "UnterminatedLoop"
)

// Error is the single error type returned by this package. Line is the
// 1-based line of the failing statement, or 0 for failures that happen
// before interpretation starts.
type Error struct {
	Kind ErrorKind
	Line int
	Msg  string

	err error
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at line %d: %s", e.Kind, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.err
}

func newError(kind ErrorKind, line int, msg string, args ...interface{}) *Error {
	return &Error{Kind: kind, Line: line, Msg: fmt.Sprintf(msg, args...)}
}

func wrapError(kind ErrorKind, err error, msg string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(msg, args...) + ": " + err.Error(), err: err}
}

// KindOf returns the kind of err, or "" when err was not produced by
// this package.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
