// Package term implements sorts, function symbols, and hash-consed terms.
//
// Terms are allocated from a Pool which interns structurally equal terms
// to a single node, so term equality is pointer equality and every term
// carries a dense ID usable as an array index.
package term

import "strings"

// Op distinguishes the builtin Bool structure from uninterpreted
// applications.
type Op uint8

const (
	Apply Op = iota // uninterpreted function application

	boolBeg
	// Builtin Bool operators
	True
	False
	Not
	And
	Or
	Implies
	Eq
	Distinct
	Ite
	boolEnd
)

// IsBool returns true for the builtin Bool operators.
func (op Op) IsBool() bool { return boolBeg < op && op < boolEnd }

func (op Op) String() string {
	switch op {
	case Apply:
		return "apply"
	case True:
		return "true"
	case False:
		return "false"
	case Not:
		return "not"
	case And:
		return "and"
	case Or:
		return "or"
	case Implies:
		return "=>"
	case Eq:
		return "="
	case Distinct:
		return "distinct"
	case Ite:
		return "ite"
	}
	return "illegal"
}

// Term is a hash-consed term node. Func is non-nil only for Apply.
type Term struct {
	id   int
	Op   Op
	Func *FuncDecl
	Args []*Term
	sort *Sort
}

// ID returns the dense pool index of the term.
func (t *Term) ID() int { return t.id }

// Sort returns the sort of the term.
func (t *Term) Sort() *Sort { return t.sort }

func (t *Term) String() string {
	var b strings.Builder
	t.write(&b)
	return b.String()
}

func (t *Term) write(b *strings.Builder) {
	head := t.Op.String()
	if t.Op == Apply {
		head = t.Func.Name
	}
	if len(t.Args) == 0 {
		b.WriteString(head)
		return
	}
	b.WriteByte('(')
	b.WriteString(head)
	for _, arg := range t.Args {
		b.WriteByte(' ')
		arg.write(b)
	}
	b.WriteByte(')')
}
