package compiler

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScanLoop(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		start int
		count int
		body  []string
		lines []int
		end   int
	}{
		{
			name:  "single line",
			src:   "FOR 3 X = 1 ; X += 1 ; ENDFOR",
			count: 3,
			body:  []string{"X = 1", "X += 1"},
			lines: []int{1, 1},
			end:   0,
		},
		{
			name:  "block",
			src:   "X = 0\nFOR 2\nX += 1 ;\nPRINT X ;\nENDFOR\nPRINT X",
			start: 1,
			count: 2,
			body:  []string{"X += 1", "PRINT X"},
			lines: []int{3, 4},
			end:   4,
		},
		{
			name:  "header semicolon and inline terminator",
			src:   "FOR 4 ;\nA -= -1 ; ENDFOR",
			count: 4,
			body:  []string{"A -= -1"},
			lines: []int{2},
			end:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := ParseSource("loop.zpm", tt.src)
			blk, err := scanLoop(src.Lines, tt.start)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var body []string
			var lines []int
			for _, stmt := range blk.Body {
				body = append(body, stmt.String())
				lines = append(lines, stmt.Pos())
			}
			if blk.Count != tt.count || blk.End != tt.end {
				t.Errorf("count/end = %d/%d, want %d/%d", blk.Count, blk.End, tt.count, tt.end)
			}
			if diff := cmp.Diff(tt.body, body); diff != "" {
				t.Errorf("body mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.lines, lines); diff != "" {
				t.Errorf("line mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseStatement(t *testing.T) {
	stmt, err := parseLine(Lex(`S += "x y" ;`, 9), 9)
	if err != nil {
		t.Fatal(err)
	}
	want := &AssignStmt{Target: "S", Op: TOK_PLUS_ASSIGN, Expr: NewToken(TOK_STRING, `"x y"`, 9, 6), Line: 9}
	if diff := cmp.Diff(Stmt(want), stmt); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	stmt, err = parseLine(Lex("PRINT S", 2), 2)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Stmt(&PrintStmt{Name: "S", Line: 2}), stmt); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	for _, bad := range []string{";", "PRINT", "PRINT 5", "PRINT X Y", "5 = X", "X += ", "X = 1 2", "FOR 2", "X = 1 ;; Y = 2"} {
		if _, err := parseLine(Lex(bad, 1), 1); KindOf(err) != SyntaxError {
			t.Errorf("parseLine(%q): got %v, want SyntaxError", bad, err)
		}
	}
}
