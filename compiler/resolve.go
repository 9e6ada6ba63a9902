package compiler

// resolve turns an expression token into a Value: a text literal, an
// integer literal, or the current value of an existing variable, in
// that order.
func resolve(store *Store, tok Token) (Value, error) {
	switch tok.Type {
	case TOK_STRING, TOK_INT, TOK_IDENT:
	default:
		return Value{}, newError(SyntaxError, tok.Line, "%q is not an expression", tok.Lexeme)
	}

	v, ok, err := ParseLiteral(tok.Lexeme)
	if err != nil {
		return Value{}, newError(SyntaxError, tok.Line, "%s: %s", tok.Lexeme, err)
	}
	if ok {
		return v, nil
	}

	if v, ok := store.Get(tok.Lexeme); ok {
		return v, nil
	}
	return Value{}, newError(UndefinedReference, tok.Line, "%s is not defined", tok.Lexeme)
}
