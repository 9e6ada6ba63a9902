package compiler

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// ---- PUBLIC ENTRYPOINT ----

// Interpreter runs ZPM scripts. The zero value writes PRINT output to
// os.Stdout and discards log entries.
type Interpreter struct {
	Stdout io.Writer
	Logger logrus.FieldLogger
}

func NewInterpreter(stdout io.Writer, logger logrus.FieldLogger) *Interpreter {
	return &Interpreter{Stdout: stdout, Logger: logger}
}

// RunFile loads the script at path and runs it, writing PRINT output to
// stdout.
func RunFile(path string, stdout io.Writer) error {
	src, err := LoadSource(path)
	if err != nil {
		return err
	}
	return NewInterpreter(stdout, nil).Run(src)
}

// Run executes src with a fresh variable store. The first failure stops
// the run and is returned as an *Error carrying the failing line.
func (in *Interpreter) Run(src *Source) error {
	out := in.Stdout
	if out == nil {
		out = os.Stdout
	}
	log := in.logger().WithField("source", src.Name)

	store := NewStore()
	err := walk(src, visitor{
		stmt: func(_ Line, stmt Stmt) error {
			log.WithFields(logrus.Fields{
				"line": stmt.Pos(),
				"stmt": stmt.String(),
			}).Debug("exec")
			return execStatement(store, stmt, out)
		},
		loop: func(_ Line, blk *loopBlock) error {
			return execLoop(store, blk, out, log)
		},
	})
	if err != nil {
		log.WithField("error", err.Error()).Debug("run aborted")
		return err
	}

	vars := make(map[string]string, store.Len())
	for _, name := range store.Names() {
		v, _ := store.Get(name)
		vars[name] = v.String()
	}
	log.WithField("vars", vars).Debug("run finished")
	return nil
}

func (in *Interpreter) logger() logrus.FieldLogger {
	if in.Logger != nil {
		return in.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Check validates every statement and loop block of src without
// running anything. Failures that depend on runtime state (undefined
// names, type mismatches) are not detected.
func Check(src *Source) error {
	return walk(src, visitor{})
}

// ---------------- Program driver ----------------

type visitor struct {
	stmt func(Line, Stmt) error
	loop func(Line, *loopBlock) error
}

// walk makes a single forward pass over src, parsing each line as it is
// reached and handing it to v. A FOR line consumes its whole block; the
// pass resumes after the ENDFOR line.
func walk(src *Source, v visitor) error {
	lines := src.Lines
	for i := 0; i < len(lines); i++ {
		ln := lines[i]
		toks := Lex(ln.Text, ln.Num)

		if toks[0].Type == TOK_FOR {
			blk, err := scanLoop(lines, i)
			if err != nil {
				return err
			}
			if v.loop != nil {
				if err := v.loop(ln, blk); err != nil {
					return err
				}
			}
			i = blk.End
			continue
		}

		stmt, err := parseLine(toks, ln.Num)
		if err != nil {
			return err
		}
		if v.stmt != nil {
			if err := v.stmt(ln, stmt); err != nil {
				return err
			}
		}
	}
	return nil
}
