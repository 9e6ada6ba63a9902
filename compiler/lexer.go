package compiler

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

/*
   ZPM Lexer

   - Works on one trimmed source line at a time.
   - Supports:
     * Keywords (PRINT, FOR, ENDFOR), case-sensitive
     * Identifiers
     * String literals: "like this" (no escapes, lexeme keeps quotes).
       A '"' only closes the literal when nothing but an optional ';'
       follows it, so "say "hi"" is one literal.
     * Integer literals with an optional leading '-'
     * Names: letters, digits and '_'; a digit-led run that is not all
       digits (5abc) is one name, not a number followed by a name
     * Operators: = += -= *=  and the ';' terminator

   - Operators are matched longest first: "+=" wins over "+" and "=",
     and a lone '+', '-' or '*' is ILLEGAL.

   - API:
     * NewLexer(line, lineNum) *Lexer
     * (*Lexer).NextToken() Token
     * Lex(line, lineNum) []Token
*/

type Lexer struct {
	src  string
	line int

	pos    int // byte index into src
	column int

	ch    rune // current rune
	width int  // width in bytes of ch
	done  bool
}

func NewLexer(src string, line int) *Lexer {
	l := &Lexer{
		src:  src,
		line: line,
	}
	l.readRune()
	return l
}

// Lex tokenizes a whole line. The result always ends with TOK_EOF.
func Lex(src string, line int) []Token {
	lx := NewLexer(src, line)
	var toks []Token
	for {
		tok := lx.NextToken()
		toks = append(toks, tok)
		if tok.Type == TOK_EOF {
			return toks
		}
	}
}

func (l *Lexer) readRune() {
	if l.pos >= len(l.src) {
		l.ch = 0
		l.width = 0
		l.done = true
		l.column++
		return
	}

	r, w := utf8.DecodeRuneInString(l.src[l.pos:])
	l.ch = r
	l.width = w
	l.pos += w
	l.column++
}

func (l *Lexer) peekRune() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	return r
}

func (l *Lexer) makeToken(tt TokenType, lexeme string, col int) Token {
	return NewToken(tt, lexeme, l.line, col)
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Token {
	for !l.done && unicode.IsSpace(l.ch) {
		l.readRune()
	}

	col := l.column
	if l.done {
		return l.makeToken(TOK_EOF, "", col)
	}

	if l.ch == '"' {
		return l.lexString()
	}

	if isLetter(l.ch) {
		return l.lexIdentOrKeyword()
	}

	if isDigit(l.ch) || (l.ch == '-' && isDigit(l.peekRune())) {
		return l.lexNumber()
	}

	ch := l.ch
	l.readRune()

	switch ch {
	case ';':
		return l.makeToken(TOK_SEMI, ";", col)
	case '=':
		return l.makeToken(TOK_ASSIGN, "=", col)
	case '+', '-', '*':
		if l.ch != '=' || l.done {
			return l.makeToken(TOK_ILLEGAL, string(ch), col)
		}
		l.readRune()
		switch ch {
		case '+':
			return l.makeToken(TOK_PLUS_ASSIGN, "+=", col)
		case '-':
			return l.makeToken(TOK_MINUS_ASSIGN, "-=", col)
		default:
			return l.makeToken(TOK_STAR_ASSIGN, "*=", col)
		}
	default:
		return l.makeToken(TOK_ILLEGAL, string(ch), col)
	}
}

func (l *Lexer) lexString() Token {
	col := l.column
	start := l.pos - l.width
	l.readRune() // consume opening quote

	for !l.done && !(l.ch == '"' && l.closesString()) {
		l.readRune()
	}

	if l.done {
		// Unterminated string
		return l.makeToken(TOK_ILLEGAL, l.src[start:], col)
	}

	l.readRune() // consume closing quote
	return l.makeToken(TOK_STRING, l.src[start:l.offset()], col)
}

// closesString reports whether the quote under the cursor ends a string:
// the rest of the line is blank or continues with ';'.
func (l *Lexer) closesString() bool {
	rest := strings.TrimLeftFunc(l.src[l.pos:], unicode.IsSpace)
	return rest == "" || rest[0] == ';'
}

func (l *Lexer) lexNumber() Token {
	col := l.column
	start := l.pos - l.width

	if l.ch == '-' {
		l.readRune()
	}
	for !l.done && isDigit(l.ch) {
		l.readRune()
	}
	if l.done || !isLetter(l.ch) {
		return l.makeToken(TOK_INT, l.src[start:l.offset()], col)
	}

	// 5abc: the whole run is one token
	for !l.done && (isLetter(l.ch) || isDigit(l.ch)) {
		l.readRune()
	}
	lex := l.src[start:l.offset()]
	if lex[0] == '-' {
		return l.makeToken(TOK_ILLEGAL, lex, col)
	}
	return l.makeToken(TOK_IDENT, lex, col)
}

func (l *Lexer) lexIdentOrKeyword() Token {
	col := l.column
	start := l.pos - l.width

	for !l.done && (isLetter(l.ch) || isDigit(l.ch)) {
		l.readRune()
	}

	lex := l.src[start:l.offset()]
	if tt, ok := keywords[lex]; ok {
		return l.makeToken(tt, lex, col)
	}
	return l.makeToken(TOK_IDENT, lex, col)
}

// offset is the byte index of the current rune.
func (l *Lexer) offset() int {
	if l.done {
		return len(l.src)
	}
	return l.pos - l.width
}

func isLetter(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
