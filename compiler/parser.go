package compiler

// -------- AST TYPES --------

// Stmt is one executable statement.
type Stmt interface {
	Pos() int
	String() string
	stmtNode()
}

// PrintStmt is PRINT NAME.
type PrintStmt struct {
	Name string
	Line int
}

// AssignStmt is NAME OP EXPR where OP is one of = += -= *=.
type AssignStmt struct {
	Target string
	Op     TokenType
	Expr   Token
	Line   int
}

func (s *PrintStmt) Pos() int  { return s.Line }
func (s *AssignStmt) Pos() int { return s.Line }

func (*PrintStmt) stmtNode()  {}
func (*AssignStmt) stmtNode() {}

// -------- PARSER CORE --------

// trimEOF drops the trailing TOK_EOF produced by Lex.
func trimEOF(toks []Token) []Token {
	if n := len(toks); n > 0 && toks[n-1].Type == TOK_EOF {
		return toks[:n-1]
	}
	return toks
}

// splitStatements cuts a token run on ';'. A trailing ';' does not
// produce an empty statement, but ";;" does.
func splitStatements(toks []Token) [][]Token {
	toks = trimEOF(toks)
	var out [][]Token
	start := 0
	for i, t := range toks {
		if t.Type == TOK_SEMI {
			out = append(out, toks[start:i])
			start = i + 1
		}
	}
	if start < len(toks) {
		out = append(out, toks[start:])
	}
	return out
}

// parseLine parses a top-level line that holds exactly one statement.
func parseLine(toks []Token, line int) (Stmt, error) {
	stmts := splitStatements(toks)
	switch len(stmts) {
	case 0:
		return nil, newError(SyntaxError, line, "empty statement")
	case 1:
		return parseStatement(stmts[0], line)
	default:
		return nil, newError(SyntaxError, line, "expected one statement per line, found %d", len(stmts))
	}
}

// parseStatement parses the tokens of a single statement, without its
// terminating ';'.
func parseStatement(toks []Token, line int) (Stmt, error) {
	if len(toks) == 0 {
		return nil, newError(SyntaxError, line, "empty statement")
	}
	for _, t := range toks {
		if t.Type == TOK_ILLEGAL {
			return nil, newError(SyntaxError, line, "illegal token %q at column %d", t.Lexeme, t.Column)
		}
	}

	switch first := toks[0]; first.Type {
	case TOK_PRINT:
		return parsePrint(toks, line)
	case TOK_FOR:
		return nil, newError(SyntaxError, line, "nested FOR is not supported")
	case TOK_ENDFOR:
		return nil, newError(SyntaxError, line, "ENDFOR without FOR")
	case TOK_IDENT:
		return parseAssign(toks, line)
	default:
		return nil, newError(SyntaxError, line, "unexpected %q at start of statement", first.Lexeme)
	}
}

func parsePrint(toks []Token, line int) (Stmt, error) {
	// PRINT NAME
	if len(toks) < 2 {
		return nil, newError(SyntaxError, line, "PRINT: expected variable name")
	}
	if toks[1].Type != TOK_IDENT {
		return nil, newError(SyntaxError, line, "PRINT: expected variable name, got %q", toks[1].Lexeme)
	}
	if len(toks) > 2 {
		return nil, newError(SyntaxError, line, "PRINT: unexpected %q after %s", toks[2].Lexeme, toks[1].Lexeme)
	}
	return &PrintStmt{Name: toks[1].Lexeme, Line: line}, nil
}

func parseAssign(toks []Token, line int) (Stmt, error) {
	// NAME OP EXPR
	target := toks[0].Lexeme
	if len(toks) < 2 || !toks[1].isAssignOp() {
		return nil, newError(SyntaxError, line, "expected assignment operator after %s", target)
	}
	op := toks[1].Type
	if len(toks) < 3 {
		return nil, newError(SyntaxError, line, "missing expression after %s %s", target, opSymbol(op))
	}
	switch toks[2].Type {
	case TOK_IDENT, TOK_INT, TOK_STRING:
	default:
		return nil, newError(SyntaxError, line, "expected expression after %s %s, got %q", target, opSymbol(op), toks[2].Lexeme)
	}
	if len(toks) > 3 {
		return nil, newError(SyntaxError, line, "unexpected %q after expression", toks[3].Lexeme)
	}
	return &AssignStmt{Target: target, Op: op, Expr: toks[2], Line: line}, nil
}

func (s *PrintStmt) String() string {
	return "PRINT " + s.Name
}

func (s *AssignStmt) String() string {
	return s.Target + " " + opSymbol(s.Op) + " " + s.Expr.Lexeme
}
