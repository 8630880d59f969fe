package term

import "hash/maphash"

// Pool allocates and interns terms. Structurally equal terms built from
// the same pool share one node.
type Pool struct {
	BoolSort *Sort

	terms   []*Term
	buckets map[uint64][]*Term
	seed    maphash.Seed
	nextID  int

	true_  *Term
	false_ *Term
}

// NewPool constructs a Pool with the builtin Bool sort and constants.
func NewPool() *Pool {
	p := &Pool{
		BoolSort: &Sort{Name: "Bool"},
		buckets:  make(map[uint64][]*Term),
		seed:     maphash.MakeSeed(),
	}
	p.true_ = p.intern(True, nil, nil, p.BoolSort)
	p.false_ = p.intern(False, nil, nil, p.BoolSort)
	return p
}

// NewSort constructs a declared sort.
func (p *Pool) NewSort(name string, arity int) *Sort {
	return &Sort{Name: name, Arity: arity}
}

// NewFunc constructs a declared function symbol.
func (p *Pool) NewFunc(name string, args []*Sort, ret *Sort) *FuncDecl {
	p.nextID++
	return &FuncDecl{id: p.nextID, Name: name, Args: args, Ret: ret}
}

// Len returns the number of terms in the pool.
func (p *Pool) Len() int { return len(p.terms) }

// ByID returns the term with the given dense ID.
func (p *Pool) ByID(id int) *Term { return p.terms[id] }

// Bool returns the true or false constant.
func (p *Pool) Bool(b bool) *Term {
	if b {
		return p.true_
	}
	return p.false_
}

// Apply builds an application of an uninterpreted function.
func (p *Pool) Apply(f *FuncDecl, args ...*Term) (*Term, error) {
	if len(args) != len(f.Args) {
		return nil, sortErrorf(f.Name, "applied to %d arguments, want %d", len(args), len(f.Args))
	}
	for i, arg := range args {
		if arg.sort != f.Args[i] {
			return nil, sortErrorf(f.Name, "argument %d has sort %s, want %s", i+1, arg.sort, f.Args[i])
		}
	}
	return p.intern(Apply, f, args, f.Ret), nil
}

// Not negates a Bool term.
func (p *Pool) Not(t *Term) (*Term, error) {
	if t.sort != p.BoolSort {
		return nil, sortErrorf("not", "argument has sort %s, want Bool", t.sort)
	}
	return p.intern(Not, nil, []*Term{t}, p.BoolSort), nil
}

// And builds an n-ary conjunction.
func (p *Pool) And(args ...*Term) (*Term, error) { return p.naryBool(And, args) }

// Or builds an n-ary disjunction.
func (p *Pool) Or(args ...*Term) (*Term, error) { return p.naryBool(Or, args) }

// Implies builds a right-associated implication chain.
func (p *Pool) Implies(args ...*Term) (*Term, error) { return p.naryBool(Implies, args) }

func (p *Pool) naryBool(op Op, args []*Term) (*Term, error) {
	if len(args) < 2 {
		return nil, sortErrorf(op.String(), "expects at least 2 arguments, got %d", len(args))
	}
	for i, arg := range args {
		if arg.sort != p.BoolSort {
			return nil, sortErrorf(op.String(), "argument %d has sort %s, want Bool", i+1, arg.sort)
		}
	}
	return p.intern(op, nil, args, p.BoolSort), nil
}

// Eq builds a chainable equality. All arguments must share a sort.
func (p *Pool) Eq(args ...*Term) (*Term, error) { return p.narySameSort(Eq, args) }

// Distinct builds a pairwise disequality. All arguments must share a sort.
func (p *Pool) Distinct(args ...*Term) (*Term, error) { return p.narySameSort(Distinct, args) }

func (p *Pool) narySameSort(op Op, args []*Term) (*Term, error) {
	if len(args) < 2 {
		return nil, sortErrorf(op.String(), "expects at least 2 arguments, got %d", len(args))
	}
	for i, arg := range args[1:] {
		if arg.sort != args[0].sort {
			return nil, sortErrorf(op.String(), "argument %d has sort %s, want %s", i+2, arg.sort, args[0].sort)
		}
	}
	return p.intern(op, nil, args, p.BoolSort), nil
}

// Ite builds an if-then-else over a Bool condition.
func (p *Pool) Ite(cond, then, els *Term) (*Term, error) {
	if cond.sort != p.BoolSort {
		return nil, sortErrorf("ite", "condition has sort %s, want Bool", cond.sort)
	}
	if then.sort != els.sort {
		return nil, sortErrorf("ite", "branches have sorts %s and %s", then.sort, els.sort)
	}
	return p.intern(Ite, nil, []*Term{cond, then, els}, then.sort), nil
}

// intern returns the pool's node for the term, allocating it on first use.
// The table is bucketed by hash; buckets are scanned for structural
// equality, which reduces to comparing child pointers under sharing.
func (p *Pool) intern(op Op, f *FuncDecl, args []*Term, sort *Sort) *Term {
	hash := p.hash(op, f, args)
	for _, t := range p.buckets[hash] {
		if t.Op == op && t.Func == f && equalArgs(t.Args, args) {
			return t
		}
	}
	t := &Term{id: len(p.terms), Op: op, Func: f, Args: args, sort: sort}
	p.terms = append(p.terms, t)
	p.buckets[hash] = append(p.buckets[hash], t)
	return t
}

func (p *Pool) hash(op Op, f *FuncDecl, args []*Term) uint64 {
	var h maphash.Hash
	h.SetSeed(p.seed)
	h.WriteByte(byte(op))
	if f != nil {
		writeInt(&h, f.id)
	}
	for _, arg := range args {
		writeInt(&h, arg.id)
	}
	return h.Sum64()
}

func writeInt(h *maphash.Hash, n int) {
	for i := 0; i < 4; i++ {
		h.WriteByte(byte(n >> (8 * i)))
	}
}

func equalArgs(a, b []*Term) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
