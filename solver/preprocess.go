package solver

import (
	"errors"

	"github.com/bernborgess/carcara/term"
)

// ErrNonConjunctive marks an assertion that needs propositional search:
// a disjunction, implication, ite, or negated n-ary (dis)equality. The
// theory core answers unknown for those instead of guessing.
var ErrNonConjunctive = errors.New("assertion outside the conjunctive EUF fragment")

// literal is one ground (dis)equality.
type literal struct {
	a, b *term.Term
	eq   bool
}

// literals flattens the live assertions into equality literals.
// An asserted false becomes the literal true = false, which contradicts
// the builtin true != false split in checkSat.
func (s *Solver) literals() ([]literal, error) {
	var lits []literal
	var err error
	for _, scope := range s.scopes {
		for _, t := range scope {
			if lits, err = s.flatten(t, true, lits); err != nil {
				return nil, err
			}
		}
	}
	for _, l := range lits {
		if !ground(l.a) || !ground(l.b) {
			return nil, ErrNonConjunctive
		}
	}
	return lits, nil
}

// ground reports whether t is free of Bool structure. The engine treats
// literal sides as opaque, so a connective or ite nested inside one
// would be decided as if it were uninterpreted.
func ground(t *term.Term) bool {
	switch t.Op {
	case term.True, term.False:
		return true
	case term.Apply:
		for _, arg := range t.Args {
			if !ground(arg) {
				return false
			}
		}
		return true
	}
	return false
}

// flatten appends the literals of one conjunct. positive tracks parity
// under negation.
func (s *Solver) flatten(t *term.Term, positive bool, lits []literal) ([]literal, error) {
	switch t.Op {
	case term.True:
		if !positive {
			lits = append(lits, s.falsum())
		}
		return lits, nil
	case term.False:
		if positive {
			lits = append(lits, s.falsum())
		}
		return lits, nil
	case term.Not:
		return s.flatten(t.Args[0], !positive, lits)
	case term.And:
		if !positive {
			// not-and is a disjunction
			return nil, ErrNonConjunctive
		}
		var err error
		for _, arg := range t.Args {
			if lits, err = s.flatten(arg, true, lits); err != nil {
				return nil, err
			}
		}
		return lits, nil
	case term.Eq:
		if !positive && len(t.Args) != 2 {
			// a negated chain is a disjunction of disequalities
			return nil, ErrNonConjunctive
		}
		for i := 0; i+1 < len(t.Args); i++ {
			lits = append(lits, literal{t.Args[i], t.Args[i+1], positive})
		}
		return lits, nil
	case term.Distinct:
		if !positive {
			if len(t.Args) != 2 {
				return nil, ErrNonConjunctive
			}
			return append(lits, literal{t.Args[0], t.Args[1], true}), nil
		}
		if len(t.Args) > 2 && t.Args[0].Sort() == s.pool.BoolSort {
			// Bool is two-valued; three pairwise-distinct terms cannot exist.
			return append(lits, s.falsum()), nil
		}
		for i := 0; i < len(t.Args); i++ {
			for j := i + 1; j < len(t.Args); j++ {
				lits = append(lits, literal{t.Args[i], t.Args[j], false})
			}
		}
		return lits, nil
	case term.Apply:
		// A Bool application p asserts p = true; under not, p = false.
		return append(lits, literal{t, s.pool.Bool(positive), true}), nil
	default:
		return nil, ErrNonConjunctive
	}
}

func (s *Solver) falsum() literal {
	return literal{s.pool.Bool(true), s.pool.Bool(false), true}
}
