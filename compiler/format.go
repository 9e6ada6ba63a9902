package compiler

import (
	"bytes"
	"strconv"
)

const indent = "  "

// Format returns the canonical layout of a script: one statement per
// line with single spaces between tokens and an explicit ';', FOR
// bodies on their own lines indented by two spaces, and runs of blank
// lines collapsed to one. Scripts that do not pass Check are rejected.
func Format(name string, text []byte) ([]byte, error) {
	var buf bytes.Buffer
	writeGap := func(ln Line) {
		if ln.Gap {
			buf.WriteByte('\n')
		}
	}

	err := walk(ParseSource(name, string(text)), visitor{
		stmt: func(ln Line, stmt Stmt) error {
			writeGap(ln)
			buf.WriteString(stmt.String() + " ;\n")
			return nil
		},
		loop: func(ln Line, blk *loopBlock) error {
			writeGap(ln)
			buf.WriteString("FOR " + strconv.Itoa(blk.Count) + "\n")
			for _, stmt := range blk.Body {
				buf.WriteString(indent + stmt.String() + " ;\n")
			}
			buf.WriteString("ENDFOR\n")
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
