package smtlib

import (
	"go/token"
	"strings"
	"testing"
)

func TestWriteScriptRoundTrip(t *testing.T) {
	src := `(set-logic QF_UF)
(set-info :status unsat)
(declare-sort U 0)
(declare-fun a () U)
(declare-fun f (U U U) U)
(define-fun id ((x U)) U x)
(assert (not (= (f a a a) a)))
(push 1)
(check-sat)
(pop 1)
(echo "done")
(get-info :status)
(exit)
`
	script, err := parseSrc(t, src)
	if err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	if err := WriteScript(&b, script); err != nil {
		t.Fatal(err)
	}
	printed := b.String()

	fset := token.NewFileSet()
	file := fset.AddFile("printed.smt2", -1, len(printed))
	reparsed, err := Parse(file, []byte(printed))
	if err != nil {
		t.Fatalf("printed script does not parse: %v\n%s", err, printed)
	}

	if len(reparsed.Commands) != len(script.Commands) {
		t.Fatalf("reparsed %d commands, want %d", len(reparsed.Commands), len(script.Commands))
	}
	for i := range script.Commands {
		got := CommandString(reparsed.Commands[i])
		want := CommandString(script.Commands[i])
		if got != want {
			t.Errorf("command %d: %s, want %s", i+1, got, want)
		}
	}
	if reparsed.Status != script.Status {
		t.Errorf("reparsed status %q, want %q", reparsed.Status, script.Status)
	}
}
