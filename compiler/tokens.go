package compiler

import "fmt"

type TokenType string

const (
	// Meta / control
	TOK_ILLEGAL TokenType = "ILLEGAL"
	TOK_EOF     TokenType = "EOF"

	// Identifiers & literals
	TOK_IDENT  TokenType = "IDENT"
	TOK_INT    TokenType = "INT"
	TOK_STRING TokenType = "STRING"

	// Keywords
	TOK_PRINT  TokenType = "PRINT"
	TOK_FOR    TokenType = "FOR"
	TOK_ENDFOR TokenType = "ENDFOR"

	// Operators / punctuation
	TOK_ASSIGN       TokenType = "ASSIGN"       // =
	TOK_PLUS_ASSIGN  TokenType = "PLUS_ASSIGN"  // +=
	TOK_MINUS_ASSIGN TokenType = "MINUS_ASSIGN" // -=
	TOK_STAR_ASSIGN  TokenType = "STAR_ASSIGN"  // *=
	TOK_SEMI         TokenType = "SEMI"         // ;
)

var keywords = map[string]TokenType{
	"PRINT":  TOK_PRINT,
	"FOR":    TOK_FOR,
	"ENDFOR": TOK_ENDFOR,
}

// Token is the unified lexical unit used by lexer and parser.
//
// Lexeme is the raw source text: string literals keep their quotes and
// integer literals keep their sign.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Column int
}

func NewToken(t TokenType, lex string, line int, col int) Token {
	return Token{
		Type:   t,
		Lexeme: lex,
		Line:   line,
		Column: col,
	}
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q) at %d:%d", t.Type, t.Lexeme, t.Line, t.Column)
}

// isAssignOp reports whether t is one of the assignment operators.
func (t Token) isAssignOp() bool {
	switch t.Type {
	case TOK_ASSIGN, TOK_PLUS_ASSIGN, TOK_MINUS_ASSIGN, TOK_STAR_ASSIGN:
		return true
	}
	return false
}
