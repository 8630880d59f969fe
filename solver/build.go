package solver

import (
	"github.com/bernborgess/carcara/smtlib"
	"github.com/bernborgess/carcara/term"
)

// buildTerm gives meaning to a term-level s-expression. env binds
// define-fun parameters during macro expansion and shadows globals.
func (s *Solver) buildTerm(e *smtlib.SExpr, env map[string]*term.Term) (*term.Term, error) {
	if !e.IsList() {
		return s.buildAtom(e, env)
	}
	if len(e.List) == 0 {
		return nil, s.errorf(e.Pos, "empty application")
	}
	head := e.List[0]
	name := head.Symbol()
	if name == "" {
		return nil, s.errorf(head.Pos, "expected function symbol, found %s", head)
	}
	switch name {
	case "let", "forall", "exists", "match", "!":
		return nil, s.errorf(e.Pos, "%s terms are not supported", name)
	}

	args := make([]*term.Term, len(e.List)-1)
	for i, arg := range e.List[1:] {
		t, err := s.buildTerm(arg, env)
		if err != nil {
			return nil, err
		}
		args[i] = t
	}

	t, err := s.applyHead(name, args, env)
	if err != nil {
		if _, ok := err.(*ScriptError); ok {
			return nil, err
		}
		return nil, s.errorf(e.Pos, "%v", err)
	}
	return t, nil
}

func (s *Solver) buildAtom(e *smtlib.SExpr, env map[string]*term.Term) (*term.Term, error) {
	switch e.Atom.Type {
	case smtlib.Symbol:
		name := e.Atom.Text
		if t, ok := env[name]; ok {
			return t, nil
		}
		switch name {
		case "true":
			return s.pool.Bool(true), nil
		case "false":
			return s.pool.Bool(false), nil
		}
		if f, ok := s.funcs[name]; ok {
			if len(f.Args) != 0 {
				return nil, s.errorf(e.Pos, "function %s expects %d arguments", name, len(f.Args))
			}
			return s.pool.Apply(f)
		}
		if d, ok := s.defines[name]; ok && len(d.params) == 0 {
			return s.buildTerm(d.body, nil)
		}
		return nil, s.errorf(e.Pos, "unknown constant %s", name)
	case smtlib.Numeral, smtlib.Decimal, smtlib.Hex, smtlib.Binary, smtlib.String:
		return nil, s.errorf(e.Pos, "literal %s needs a theory beyond QF_UF", &e.Atom)
	default:
		return nil, s.errorf(e.Pos, "unexpected %s in term", e.Atom.Type)
	}
}

func (s *Solver) applyHead(name string, args []*term.Term, env map[string]*term.Term) (*term.Term, error) {
	switch name {
	case "not":
		if len(args) != 1 {
			return nil, &term.SortError{Sym: "not", Err: "expects exactly 1 argument"}
		}
		return s.pool.Not(args[0])
	case "and":
		return s.pool.And(args...)
	case "or":
		return s.pool.Or(args...)
	case "=>":
		return s.pool.Implies(args...)
	case "=":
		return s.pool.Eq(args...)
	case "distinct":
		return s.pool.Distinct(args...)
	case "ite":
		if len(args) != 3 {
			return nil, &term.SortError{Sym: "ite", Err: "expects exactly 3 arguments"}
		}
		return s.pool.Ite(args[0], args[1], args[2])
	}
	if f, ok := s.funcs[name]; ok {
		return s.pool.Apply(f, args...)
	}
	if d, ok := s.defines[name]; ok {
		return s.expand(name, d, args)
	}
	return nil, &term.SortError{Sym: name, Err: "unknown function"}
}

// expand substitutes arguments for a define-fun's parameters in its body.
func (s *Solver) expand(name string, d *define, args []*term.Term) (*term.Term, error) {
	if len(args) != len(d.params) {
		return nil, &term.SortError{Sym: name, Err: "wrong number of arguments"}
	}
	env := make(map[string]*term.Term, len(d.params))
	for i, param := range d.params {
		if args[i].Sort() != d.sorts[i] {
			return nil, &term.SortError{Sym: name, Err: "argument " + param + " has the wrong sort"}
		}
		env[param] = args[i]
	}
	return s.buildTerm(d.body, env)
}
