package smtlib

import (
	"go/token"
	"testing"
)

func lexAll(t *testing.T, src string) ([]Token, error) {
	t.Helper()
	fset := token.NewFileSet()
	file := fset.AddFile("test.smt2", -1, len(src))
	l := newLexer(file, []byte(src))
	var toks []Token
	for {
		tok, _, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == EOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

func TestLex(t *testing.T) {
	tests := []struct {
		src    string
		tokens []Token
	}{
		{"", nil},
		{"; only a comment\n", nil},
		{"()", []Token{{LParen, ""}, {RParen, ""}}},
		{"(check-sat)", []Token{{LParen, ""}, {Symbol, "check-sat"}, {RParen, ""}}},
		{"(= a b)", []Token{{LParen, ""}, {Symbol, "="}, {Symbol, "a"}, {Symbol, "b"}, {RParen, ""}}},
		{"|a strange name|", []Token{{Symbol, "a strange name"}}},
		{":status unsat", []Token{{Keyword, ":status"}, {Symbol, "unsat"}}},
		{"0 42 1.5", []Token{{Numeral, "0"}, {Numeral, "42"}, {Decimal, "1.5"}}},
		{"#xA04 #b0101", []Token{{Hex, "#xA04"}, {Binary, "#b0101"}}},
		{`"he said ""hi"""`, []Token{{String, `he said ""hi""`}}},
		{"a1 e2 f~?", []Token{{Symbol, "a1"}, {Symbol, "e2"}, {Symbol, "f~?"}}},
		{"x;comment\ny", []Token{{Symbol, "x"}, {Symbol, "y"}}},
	}

	for i, test := range tests {
		toks, err := lexAll(t, test.src)
		if err != nil {
			t.Errorf("test %d: %v", i+1, err)
			continue
		}
		if len(toks) != len(test.tokens) {
			t.Errorf("test %d: lexed %d tokens, want %d: %v", i+1, len(toks), len(test.tokens), toks)
			continue
		}
		for j, tok := range toks {
			if tok != test.tokens[j] {
				t.Errorf("test %d: token %d = %v, want %v", i+1, j+1, tok, test.tokens[j])
			}
		}
	}
}

func TestLexErrors(t *testing.T) {
	tests := []string{
		`"unterminated`,
		"|unterminated",
		"#x",
		"#q12",
		"07",
		"1.",
		"[",
		":",
	}

	for i, src := range tests {
		if _, err := lexAll(t, src); err == nil {
			t.Errorf("test %d: Lex(%q) succeeded, want error", i+1, src)
		}
	}
}

func TestLexPositions(t *testing.T) {
	src := "(assert\n  (= a b))"
	fset := token.NewFileSet()
	file := fset.AddFile("pos.smt2", -1, len(src))
	l := newLexer(file, []byte(src))

	want := []struct {
		line, col int
	}{
		{1, 1}, {1, 2}, {2, 3}, {2, 4}, {2, 6}, {2, 8}, {2, 9}, {2, 10},
	}
	for i, w := range want {
		_, pos, err := l.Next()
		if err != nil {
			t.Fatalf("token %d: %v", i+1, err)
		}
		if pos.Line != w.line || pos.Column != w.col {
			t.Errorf("token %d at %d:%d, want %d:%d", i+1, pos.Line, pos.Column, w.line, w.col)
		}
	}
}
