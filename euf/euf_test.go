package euf

import (
	"testing"

	"github.com/bernborgess/carcara/term"
)

// fixture builds the congruence benchmark: sort U, constants a b c d e1 e2,
// and a ternary f.
func fixture(t *testing.T) (*term.Pool, map[string]*term.Term) {
	t.Helper()
	p := term.NewPool()
	u := p.NewSort("U", 0)
	consts := map[string]*term.Term{}
	for _, name := range []string{"a", "b", "c", "d", "e1", "e2"} {
		c, err := p.Apply(p.NewFunc(name, nil, u))
		if err != nil {
			t.Fatal(err)
		}
		consts[name] = c
	}
	f := p.NewFunc("f", []*term.Sort{u, u, u}, u)
	face, err := p.Apply(f, consts["a"], consts["c"], consts["e1"])
	if err != nil {
		t.Fatal(err)
	}
	fbde, err := p.Apply(f, consts["b"], consts["d"], consts["e2"])
	if err != nil {
		t.Fatal(err)
	}
	consts["f(a,c,e1)"] = face
	consts["f(b,d,e2)"] = fbde
	return p, consts
}

func TestCongruenceUnsat(t *testing.T) {
	// a=b, c=d, e1=e2 force f(a,c,e1)=f(b,d,e2) by congruence, so the
	// negated conclusion is unsatisfiable.
	p, ts := fixture(t)
	s := NewSolver(p)
	s.Assert(ts["a"], ts["b"])
	s.Assert(ts["c"], ts["d"])
	s.Assert(ts["e1"], ts["e2"])
	s.AssertNot(ts["f(a,c,e1)"], ts["f(b,d,e2)"])

	if got := s.Check(); got != Unsat {
		t.Errorf("Check() = %v, want unsat", got)
	}
	if !s.Equal(ts["f(a,c,e1)"], ts["f(b,d,e2)"]) {
		t.Error("congruent applications not merged")
	}
}

func TestCongruenceSatWithoutPremise(t *testing.T) {
	// Dropping e1=e2 leaves the disequality satisfiable.
	p, ts := fixture(t)
	s := NewSolver(p)
	s.Assert(ts["a"], ts["b"])
	s.Assert(ts["c"], ts["d"])
	s.AssertNot(ts["f(a,c,e1)"], ts["f(b,d,e2)"])

	if got := s.Check(); got != Sat {
		t.Errorf("Check() = %v, want sat", got)
	}
	if s.Equal(ts["e1"], ts["e2"]) {
		t.Error("e1 and e2 merged without an asserted equality")
	}
}

func TestAssertionOrderIrrelevant(t *testing.T) {
	// Registering the applications before the equalities must close the
	// same way as the reverse order.
	p, ts := fixture(t)
	s := NewSolver(p)
	s.AssertNot(ts["f(a,c,e1)"], ts["f(b,d,e2)"])
	s.Assert(ts["e1"], ts["e2"])
	s.Assert(ts["c"], ts["d"])
	s.Assert(ts["a"], ts["b"])

	if got := s.Check(); got != Unsat {
		t.Errorf("Check() = %v, want unsat", got)
	}
}

func TestTransitiveChain(t *testing.T) {
	p := term.NewPool()
	u := p.NewSort("U", 0)
	var cs []*term.Term
	for i := 0; i < 10; i++ {
		c, _ := p.Apply(p.NewFunc("c", nil, u))
		cs = append(cs, c)
	}
	s := NewSolver(p)
	for i := 0; i+1 < len(cs); i++ {
		s.Assert(cs[i], cs[i+1])
	}
	s.AssertNot(cs[0], cs[len(cs)-1])

	if got := s.Check(); got != Unsat {
		t.Errorf("Check() = %v, want unsat", got)
	}
}

func TestNestedCongruence(t *testing.T) {
	// a=b entails g(f(a))=g(f(b)).
	p := term.NewPool()
	u := p.NewSort("U", 0)
	a, _ := p.Apply(p.NewFunc("a", nil, u))
	b, _ := p.Apply(p.NewFunc("b", nil, u))
	f := p.NewFunc("f", []*term.Sort{u}, u)
	g := p.NewFunc("g", []*term.Sort{u}, u)
	fa, _ := p.Apply(f, a)
	fb, _ := p.Apply(f, b)
	gfa, _ := p.Apply(g, fa)
	gfb, _ := p.Apply(g, fb)

	s := NewSolver(p)
	s.Assert(a, b)
	s.AssertNot(gfa, gfb)

	if got := s.Check(); got != Unsat {
		t.Errorf("Check() = %v, want unsat", got)
	}
	if !s.Equal(fa, fb) {
		t.Error("f(a) and f(b) not merged")
	}
}

func TestDistinctFunctionsStayApart(t *testing.T) {
	// f(a)=g(a) is never implied: f and g have distinct signatures.
	p := term.NewPool()
	u := p.NewSort("U", 0)
	a, _ := p.Apply(p.NewFunc("a", nil, u))
	b, _ := p.Apply(p.NewFunc("b", nil, u))
	f := p.NewFunc("f", []*term.Sort{u}, u)
	g := p.NewFunc("g", []*term.Sort{u}, u)
	fa, _ := p.Apply(f, a)
	gb, _ := p.Apply(g, b)

	s := NewSolver(p)
	s.Assert(a, b)
	s.AssertNot(fa, gb)

	if got := s.Check(); got != Sat {
		t.Errorf("Check() = %v, want sat", got)
	}
}

func TestReflexiveDisequality(t *testing.T) {
	p := term.NewPool()
	u := p.NewSort("U", 0)
	a, _ := p.Apply(p.NewFunc("a", nil, u))

	s := NewSolver(p)
	s.AssertNot(a, a)
	if got := s.Check(); got != Unsat {
		t.Errorf("Check() = %v, want unsat", got)
	}
}

func TestEmptySolver(t *testing.T) {
	s := NewSolver(term.NewPool())
	if got := s.Check(); got != Sat {
		t.Errorf("Check() = %v, want sat", got)
	}
}

func TestResultString(t *testing.T) {
	tests := []struct {
		r    Result
		want string
	}{
		{Sat, "sat"},
		{Unsat, "unsat"},
		{Unknown, "unknown"},
		{Result(99), "unknown"},
	}
	for _, test := range tests {
		if got := test.r.String(); got != test.want {
			t.Errorf("(%d).String() = %q, want %q", test.r, got, test.want)
		}
	}
}
