package compiler

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const unformatted = `
X=1
Y   +=X;


FOR 3 X *= 2 ; PRINT   X ;ENDFOR
S = "a  b"
FOR 2
      S += "!" ;
ENDFOR
`

const formatted = `X = 1 ;
Y += X ;

FOR 3
  X *= 2 ;
  PRINT X ;
ENDFOR
S = "a  b" ;
FOR 2
  S += "!" ;
ENDFOR
`

func TestFormat(t *testing.T) {
	got, err := Format("f.zpm", []byte(unformatted))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(formatted, string(got)); diff != "" {
		t.Errorf("format mismatch (-want +got):\n%s", diff)
	}

	again, err := Format("f.zpm", got)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(string(got), string(again)); diff != "" {
		t.Errorf("formatting is not stable (-first +second):\n%s", diff)
	}
}

func TestFormatRejectsInvalid(t *testing.T) {
	_, err := Format("f.zpm", []byte("X = 1\nFOR 2\nX += 1\n"))
	wantError(t, err, UnterminatedLoop, 2)
}

func TestFormatKeepsInnerQuotes(t *testing.T) {
	const src = "S = \"say \"hi\"\"\nFOR 2 S += \"\"\" ;ENDFOR\n"
	const want = "S = \"say \"hi\"\" ;\nFOR 2\n  S += \"\"\" ;\nENDFOR\n"
	got, err := Format("q.zpm", []byte(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("format mismatch (-want +got):\n%s", diff)
	}

	out, err := runScript(string(got))
	if err != nil {
		t.Fatalf("formatted script failed: %v", err)
	}
	if diff := cmp.Diff("", out); diff != "" {
		t.Errorf("unexpected output:\n%s", diff)
	}
}
