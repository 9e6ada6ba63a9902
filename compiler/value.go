package compiler

import (
	"errors"
	"fmt"
	"strconv"
)

// ValueKind tags the two variants a Value can hold.
type ValueKind int

const (
	IntKind ValueKind = iota + 1
	TextKind
)

func (k ValueKind) String() string {
	switch k {
	case IntKind:
		return "Integer"
	case TextKind:
		return "Text"
	}
	return fmt.Sprintf("ValueKind(%d)", int(k))
}

// Value is an immutable Integer or Text. The zero Value has no kind and
// is never stored.
type Value struct {
	kind ValueKind
	num  int32
	text string
}

func IntValue(n int32) Value {
	return Value{kind: IntKind, num: n}
}

func TextValue(s string) Value {
	return Value{kind: TextKind, text: s}
}

func (v Value) Kind() ValueKind { return v.kind }

// Int returns the integer payload; ok is false for Text values.
func (v Value) Int() (n int32, ok bool) {
	return v.num, v.kind == IntKind
}

// Text returns the string payload; ok is false for Integer values.
func (v Value) Text() (s string, ok bool) {
	return v.text, v.kind == TextKind
}

// String is the value's natural text: decimal for integers, the raw
// characters for text.
func (v Value) String() string {
	switch v.kind {
	case IntKind:
		return strconv.FormatInt(int64(v.num), 10)
	case TextKind:
		return v.text
	}
	return "<invalid>"
}

// ParseLiteral recognizes an integer literal (-?[0-9]+) or a quoted
// text literal. It returns false when token must be treated as a
// variable reference. An integer literal that does not fit in 32 bits
// yields errIntRange.
func ParseLiteral(token string) (Value, bool, error) {
	if len(token) >= 2 && token[0] == '"' && token[len(token)-1] == '"' {
		return TextValue(token[1 : len(token)-1]), true, nil
	}
	if !isIntLiteral(token) {
		return Value{}, false, nil
	}
	n, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return Value{}, true, errIntRange
	}
	return IntValue(int32(n)), true, nil
}

var errIntRange = errors.New("integer literal out of 32-bit range")

func isIntLiteral(s string) bool {
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(rune(s[i])) {
			return false
		}
	}
	return true
}

// applyCompound combines the current value of a variable with an
// operand under one of the compound operators.
func applyCompound(op TokenType, cur, operand Value) (Value, error) {
	switch op {
	case TOK_PLUS_ASSIGN:
		switch {
		case cur.kind == IntKind && operand.kind == IntKind:
			return IntValue(cur.num + operand.num), nil
		case cur.kind == TextKind && operand.kind == TextKind:
			return TextValue(cur.text + operand.text), nil
		case isValid(cur) && isValid(operand):
			return TextValue(cur.String() + operand.String()), nil
		}
	case TOK_MINUS_ASSIGN:
		if cur.kind == IntKind && operand.kind == IntKind {
			return IntValue(cur.num - operand.num), nil
		}
	case TOK_STAR_ASSIGN:
		if cur.kind == IntKind && operand.kind == IntKind {
			return IntValue(cur.num * operand.num), nil
		}
	default:
		return Value{}, fmt.Errorf("%s is not a compound operator", op)
	}
	return Value{}, errMismatch{op: op, left: cur.kind, right: operand.kind}
}

func isValid(v Value) bool {
	return v.kind == IntKind || v.kind == TextKind
}

type errMismatch struct {
	op          TokenType
	left, right ValueKind
}

func (e errMismatch) Error() string {
	return fmt.Sprintf("cannot apply %s to %s and %s", opSymbol(e.op), e.left, e.right)
}

func opSymbol(op TokenType) string {
	switch op {
	case TOK_ASSIGN:
		return "="
	case TOK_PLUS_ASSIGN:
		return "+="
	case TOK_MINUS_ASSIGN:
		return "-="
	case TOK_STAR_ASSIGN:
		return "*="
	}
	return string(op)
}
