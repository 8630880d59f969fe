package smtlib

import (
	"go/token"
	"testing"
)

func parseSrc(t *testing.T, src string) (*Script, error) {
	t.Helper()
	fset := token.NewFileSet()
	file := fset.AddFile("test.smt2", -1, len(src))
	return Parse(file, []byte(src))
}

func TestParseScript(t *testing.T) {
	src := `
(set-info :smt-lib-version 2.6)
(set-logic QF_UF)
(set-info :status unsat)
(declare-sort U 0)
(declare-fun a () U)
(declare-fun f (U U U) U)
(assert (= a a))
(check-sat)
(exit)
`
	script, err := parseSrc(t, src)
	if err != nil {
		t.Fatal(err)
	}
	if script.Status != "unsat" {
		t.Errorf("script status = %q, want %q", script.Status, "unsat")
	}
	if len(script.Commands) != 9 {
		t.Fatalf("parsed %d commands, want 9", len(script.Commands))
	}

	if logic, ok := script.Commands[1].(*SetLogic); !ok || logic.Logic != "QF_UF" {
		t.Errorf("command 2 = %#v, want set-logic QF_UF", script.Commands[1])
	}
	if sort, ok := script.Commands[3].(*DeclareSort); !ok || sort.Name != "U" || sort.Arity != 0 {
		t.Errorf("command 4 = %#v, want declare-sort U 0", script.Commands[3])
	}
	f, ok := script.Commands[5].(*DeclareFun)
	if !ok || f.Name != "f" || len(f.Args) != 3 || !f.Ret.IsSymbol("U") {
		t.Errorf("command 6 = %#v, want declare-fun f (U U U) U", script.Commands[5])
	}
	if a, ok := script.Commands[6].(*Assert); !ok || a.Term.String() != "(= a a)" {
		t.Errorf("command 7 = %#v, want assert (= a a)", script.Commands[6])
	}
	if _, ok := script.Commands[7].(*CheckSat); !ok {
		t.Errorf("command 8 = %#v, want check-sat", script.Commands[7])
	}
}

func TestParseDeclareConst(t *testing.T) {
	script, err := parseSrc(t, "(declare-const c U)")
	if err != nil {
		t.Fatal(err)
	}
	c, ok := script.Commands[0].(*DeclareFun)
	if !ok || c.Name != "c" || len(c.Args) != 0 || !c.Ret.IsSymbol("U") {
		t.Errorf("parsed %#v, want declare-fun c () U", script.Commands[0])
	}
}

func TestParseDefineFun(t *testing.T) {
	script, err := parseSrc(t, "(define-fun both ((x Bool) (y Bool)) Bool (and x y))")
	if err != nil {
		t.Fatal(err)
	}
	d, ok := script.Commands[0].(*DefineFun)
	if !ok {
		t.Fatalf("parsed %#v, want define-fun", script.Commands[0])
	}
	if d.Name != "both" || len(d.Params) != 2 || d.Params[1].Name != "y" {
		t.Errorf("define-fun header = %#v", d)
	}
	if d.Body.String() != "(and x y)" {
		t.Errorf("define-fun body = %s, want (and x y)", d.Body)
	}
}

func TestParsePushPop(t *testing.T) {
	script, err := parseSrc(t, "(push 2) (pop) (pop 1)")
	if err != nil {
		t.Fatal(err)
	}
	if push := script.Commands[0].(*Push); push.N != 2 {
		t.Errorf("push N = %d, want 2", push.N)
	}
	if pop := script.Commands[1].(*Pop); pop.N != 1 {
		t.Errorf("bare pop N = %d, want 1", pop.N)
	}
}

func TestParseExitStops(t *testing.T) {
	script, err := parseSrc(t, "(exit) (this is not a command)")
	if err != nil {
		t.Fatal(err)
	}
	if len(script.Commands) != 1 {
		t.Errorf("parsed %d commands after exit, want 1", len(script.Commands))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"(",
		")",
		"(frobnicate)",
		"(set-logic)",
		"(declare-sort U zero)",
		"(declare-fun f U U)",
		"(assert)",
		"(check-sat extra)",
		"(push -1 2)",
		"(echo no-string)",
		"atom-at-top-level",
	}

	for i, src := range tests {
		if _, err := parseSrc(t, src); err == nil {
			t.Errorf("test %d: Parse(%q) succeeded, want error", i+1, src)
		} else if _, ok := err.(*SyntaxError); !ok {
			t.Errorf("test %d: Parse(%q) error is %T, want *SyntaxError", i+1, src, err)
		}
	}
}
