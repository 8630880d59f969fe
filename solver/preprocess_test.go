package solver

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/bernborgess/carcara/term"
)

func TestFlatten(t *testing.T) {
	s := New(nil)
	u := s.pool.NewSort("U", 0)
	a, err := s.pool.Apply(s.pool.NewFunc("a", nil, u))
	require.NoError(t, err)
	b, err := s.pool.Apply(s.pool.NewFunc("b", nil, u))
	require.NoError(t, err)
	c, err := s.pool.Apply(s.pool.NewFunc("c", nil, u))
	require.NoError(t, err)
	p, err := s.pool.Apply(s.pool.NewFunc("p", nil, s.pool.BoolSort))
	require.NoError(t, err)

	eqAB, _ := s.pool.Eq(a, b)
	eqChain, _ := s.pool.Eq(a, b, c)
	neqAB, _ := s.pool.Not(eqAB)
	dist, _ := s.pool.Distinct(a, b, c)
	notP, _ := s.pool.Not(p)
	conj, _ := s.pool.And(eqAB, notP)
	negConj, _ := s.pool.Not(conj)
	disj, _ := s.pool.Or(eqAB, neqAB)

	tests := []struct {
		name string
		in   *term.Term
		want []literal
		err  error
	}{
		{"equality", eqAB, []literal{{a, b, true}}, nil},
		{"chain", eqChain, []literal{{a, b, true}, {b, c, true}}, nil},
		{"disequality", neqAB, []literal{{a, b, false}}, nil},
		{"distinct", dist, []literal{{a, b, false}, {a, c, false}, {b, c, false}}, nil},
		{"bool constant", p, []literal{{p, s.pool.Bool(true), true}}, nil},
		{"negated bool constant", notP, []literal{{p, s.pool.Bool(false), true}}, nil},
		{"conjunction", conj, []literal{{a, b, true}, {p, s.pool.Bool(false), true}}, nil},
		{"negated conjunction", negConj, nil, ErrNonConjunctive},
		{"disjunction", disj, nil, ErrNonConjunctive},
		{"true", s.pool.Bool(true), nil, nil},
		{"false", s.pool.Bool(false), []literal{s.falsum()}, nil},
	}

	opts := []cmp.Option{
		cmp.AllowUnexported(literal{}),
		cmp.Comparer(func(x, y *term.Term) bool { return x == y }),
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := s.flatten(test.in, true, nil)
			require.ErrorIs(t, err, test.err)
			if err != nil {
				return
			}
			if diff := cmp.Diff(test.want, got, opts...); diff != "" {
				t.Errorf("flatten mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
