package compiler

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// loopBlock is one scanned FOR … ENDFOR construct.
type loopBlock struct {
	Count int
	Line  int    // line of the FOR header
	Body  []Stmt // captured once, replayed Count times
	End   int    // index into Source.Lines of the line holding ENDFOR
}

// scanLoop reads the FOR construct whose header is lines[start].
//
// Body statements may follow the count on the header line and continue
// on later lines, separated by ';'. The block ends at an ENDFOR token
// that is the last token of its line and is either alone or preceded by
// ';'. The count is validated before anything else is looked at.
func scanLoop(lines []Line, start int) (*loopBlock, error) {
	header := lines[start]

	count, err := loopCount(header.Text, header.Num)
	if err != nil {
		return nil, err
	}
	toks := trimEOF(Lex(header.Text, header.Num))
	if len(toks) < 2 || toks[1].Type != TOK_INT {
		return nil, newError(SyntaxError, header.Num, "FOR: malformed header")
	}

	blk := &loopBlock{Count: count, Line: header.Num}

	rest := toks[2:]
	if len(rest) > 0 && rest[0].Type == TOK_SEMI {
		rest = rest[1:]
	}
	done, err := blk.collect(rest, header.Num)
	if err != nil {
		return nil, err
	}
	if done {
		blk.End = start
		return blk, nil
	}

	for j := start + 1; j < len(lines); j++ {
		done, err := blk.collect(Lex(lines[j].Text, lines[j].Num), lines[j].Num)
		if err != nil {
			return nil, err
		}
		if done {
			blk.End = j
			return blk, nil
		}
	}

	return nil, newError(UnterminatedLoop, header.Num, "FOR: missing ENDFOR")
}

// loopCount validates the FOR header: FOR <positive integer>. The count
// is the second whitespace-separated word, up to an attached ';', so
// 2.5 or 1e3 is rejected as a whole rather than lexed in pieces.
func loopCount(header string, line int) (int, error) {
	words := strings.Fields(header)
	if len(words) < 2 {
		return 0, newError(InvalidLoopCount, line, "FOR: missing loop count")
	}
	word, _, _ := strings.Cut(words[1], ";")
	if word == "" {
		return 0, newError(InvalidLoopCount, line, "FOR: missing loop count")
	}
	if !isIntLiteral(word) {
		return 0, newError(InvalidLoopCount, line, "FOR: loop count %q is not an integer", word)
	}
	v, _, err := ParseLiteral(word)
	if err != nil {
		return 0, newError(InvalidLoopCount, line, "FOR: loop count %s: %s", word, err)
	}
	n, _ := v.Int()
	if n <= 0 {
		return 0, newError(InvalidLoopCount, line, "FOR: loop count must be positive, got %d", n)
	}
	return int(n), nil
}

// collect parses the statements on one line of the loop. It reports
// true once the line ends the block.
func (blk *loopBlock) collect(toks []Token, line int) (bool, error) {
	toks = trimEOF(toks)

	done := false
	for i, t := range toks {
		if t.Type != TOK_ENDFOR {
			continue
		}
		if i != len(toks)-1 {
			return false, newError(SyntaxError, line, "unexpected %q after ENDFOR", toks[i+1].Lexeme)
		}
		if i > 0 && toks[i-1].Type != TOK_SEMI {
			return false, newError(SyntaxError, line, "expected ';' before ENDFOR")
		}
		toks = toks[:i]
		done = true
		break
	}

	for _, st := range splitStatements(toks) {
		stmt, err := parseStatement(st, line)
		if err != nil {
			return false, err
		}
		blk.Body = append(blk.Body, stmt)
	}
	return done, nil
}

// execLoop replays the body Count times back to back. Every iteration
// shares store, so mutations carry over.
func execLoop(store *Store, blk *loopBlock, out io.Writer, log logrus.FieldLogger) error {
	log.WithFields(logrus.Fields{
		"line":  blk.Line,
		"count": blk.Count,
		"body":  len(blk.Body),
	}).Debug("enter FOR")

	for iter := 1; iter <= blk.Count; iter++ {
		for _, stmt := range blk.Body {
			log.WithFields(logrus.Fields{
				"line": stmt.Pos(),
				"iter": iter,
				"stmt": stmt.String(),
			}).Debug("exec")
			if err := execStatement(store, stmt, out); err != nil {
				return err
			}
		}
	}
	return nil
}
