package compiler

import (
	"fmt"
	"io"
)

// ---------------- Statement dispatch ----------------

// execStatement runs one parsed statement against store. PRINT output
// goes to out.
func execStatement(store *Store, stmt Stmt, out io.Writer) error {
	switch s := stmt.(type) {
	case *PrintStmt:
		return execPrint(store, s, out)
	case *AssignStmt:
		return execAssign(store, s)
	}
	return newError(SyntaxError, stmt.Pos(), "unsupported statement %T", stmt)
}

// ---------------- PRINT ----------------

// PRINT NAME writes NAME=<value> on its own line.
func execPrint(store *Store, s *PrintStmt, out io.Writer) error {
	v, ok := store.Get(s.Name)
	if !ok {
		return newError(UndefinedReference, s.Line, "PRINT: %s is not defined", s.Name)
	}
	if _, err := fmt.Fprintf(out, "%s=%s\n", s.Name, v); err != nil {
		e := wrapError(FileAccessError, err, "PRINT %s", s.Name)
		e.Line = s.Line
		return e
	}
	return nil
}

// ---------------- Assignment ----------------

// NAME = EXPR always succeeds and may change the variable's kind.
// NAME += / -= / *= EXPR requires NAME to exist already.
func execAssign(store *Store, s *AssignStmt) error {
	operand, err := resolve(store, s.Expr)
	if err != nil {
		return err
	}

	if s.Op == TOK_ASSIGN {
		store.Set(s.Target, operand)
		return nil
	}

	cur, ok := store.Get(s.Target)
	if !ok {
		return newError(UninitializedVariable, s.Line, "%s %s: %s has not been assigned", s.Target, opSymbol(s.Op), s.Target)
	}

	res, err := applyCompound(s.Op, cur, operand)
	if err != nil {
		return newError(TypeMismatch, s.Line, "%s: %s", s.Target, err)
	}
	store.Set(s.Target, res)
	return nil
}
