package smtlib

import (
	"go/token"
	"strings"
)

// SExpr is a node in the generic s-expression layer. A node is either an
// atom or a list, never both.
type SExpr struct {
	Atom Token
	List []*SExpr
	Pos  token.Position
}

// IsList returns true for list nodes, including the empty list.
func (s *SExpr) IsList() bool { return s.Atom.Type == Illegal }

// IsSymbol returns true when s is the given symbol atom.
func (s *SExpr) IsSymbol(name string) bool {
	return s.Atom.Type == Symbol && s.Atom.Text == name
}

// Symbol returns the symbol text of an atom, or "" for other nodes.
func (s *SExpr) Symbol() string {
	if s.Atom.Type != Symbol {
		return ""
	}
	return s.Atom.Text
}

func (s *SExpr) String() string {
	if !s.IsList() {
		return s.Atom.String()
	}
	var b strings.Builder
	s.write(&b)
	return b.String()
}

func (s *SExpr) write(b *strings.Builder) {
	if !s.IsList() {
		b.WriteString(s.Atom.String())
		return
	}
	b.WriteByte('(')
	for i, e := range s.List {
		if i > 0 {
			b.WriteByte(' ')
		}
		e.write(b)
	}
	b.WriteByte(')')
}
