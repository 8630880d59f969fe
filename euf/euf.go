// Package euf decides conjunctions of ground equalities and disequalities
// over uninterpreted functions by congruence closure.
//
// The solver maintains a union-find over term IDs. Merging two classes
// rescans the use-list of the absorbed class against a signature table so
// that applications with congruent arguments collapse into one class.
// A conjunction is unsatisfiable exactly when some asserted disequality
// ends up with both sides in the same class.
package euf // import "github.com/bernborgess/carcara/euf"

import (
	"hash/fnv"
	"io"

	"github.com/bits-and-blooms/bitset"

	"github.com/bernborgess/carcara/term"
)

// Result is a satisfiability verdict.
type Result uint8

const (
	Unknown Result = iota
	Sat
	Unsat
)

func (r Result) String() string {
	switch r {
	case Sat:
		return "sat"
	case Unsat:
		return "unsat"
	}
	return "unknown"
}

// Solver is a congruence closure engine over one term pool. Asserted
// equalities are merged eagerly; Check only inspects disequalities.
// The zero value is not usable; construct with NewSolver.
type Solver struct {
	pool *term.Pool

	parent []int
	rank   []int
	uses   [][]int // representative -> application term IDs using the class

	sigs map[uint64][]sigEntry

	registered *bitset.BitSet
	pending    [][2]int
	diseqs     [][2]int
	merges     int
}

// sigEntry is one bucket entry of the signature table. A signature is a
// function symbol applied to argument class representatives. Entries with
// stale representatives are left behind by merges; they can never match a
// probe, which always uses live representatives.
type sigEntry struct {
	fn   int
	args []int
	term int
}

// NewSolver constructs a Solver over the pool.
func NewSolver(pool *term.Pool) *Solver {
	return &Solver{
		pool:       pool,
		sigs:       make(map[uint64][]sigEntry),
		registered: bitset.New(uint(pool.Len())),
	}
}

// Assert adds the equality a = b.
func (s *Solver) Assert(a, b *term.Term) {
	s.register(a)
	s.register(b)
	s.pending = append(s.pending, [2]int{a.ID(), b.ID()})
	s.propagate()
}

// AssertNot adds the disequality a != b.
func (s *Solver) AssertNot(a, b *term.Term) {
	s.register(a)
	s.register(b)
	s.diseqs = append(s.diseqs, [2]int{a.ID(), b.ID()})
}

// Check reports whether the asserted conjunction is satisfiable.
func (s *Solver) Check() Result {
	for _, d := range s.diseqs {
		if s.find(d[0]) == s.find(d[1]) {
			return Unsat
		}
	}
	return Sat
}

// Equal reports whether a and b are in the same congruence class.
func (s *Solver) Equal(a, b *term.Term) bool {
	s.register(a)
	s.register(b)
	return s.find(a.ID()) == s.find(b.ID())
}

// Merges returns the number of class unions performed, for statistics.
func (s *Solver) Merges() int { return s.merges }

// register adds a term and its subterms to the union-find and signature
// table. Registering is idempotent.
func (s *Solver) register(t *term.Term) {
	id := t.ID()
	s.grow(id)
	if s.registered.Test(uint(id)) {
		return
	}
	s.registered.Set(uint(id))
	for _, arg := range t.Args {
		s.register(arg)
	}
	if t.Op != term.Apply || len(t.Args) == 0 {
		return
	}
	for _, arg := range t.Args {
		r := s.find(arg.ID())
		s.uses[r] = append(s.uses[r], id)
	}
	s.insertOrMerge(id)
	s.propagate()
}

// insertOrMerge inserts an application's signature, or queues a merge when
// a congruent application is already present.
func (s *Solver) insertOrMerge(id int) {
	hash, sig := s.signature(id)
	for _, e := range s.sigs[hash] {
		if e.fn == sig.fn && equalInts(e.args, sig.args) {
			if s.find(e.term) != s.find(id) {
				s.pending = append(s.pending, [2]int{e.term, id})
			}
			return
		}
	}
	s.sigs[hash] = append(s.sigs[hash], sig)
}

func (s *Solver) propagate() {
	for len(s.pending) > 0 {
		eq := s.pending[len(s.pending)-1]
		s.pending = s.pending[:len(s.pending)-1]
		s.merge(eq[0], eq[1])
	}
}

func (s *Solver) merge(a, b int) {
	ra, rb := s.find(a), s.find(b)
	if ra == rb {
		return
	}
	if s.rank[ra] > s.rank[rb] {
		ra, rb = rb, ra
	}
	if s.rank[ra] == s.rank[rb] {
		s.rank[rb]++
	}
	s.parent[ra] = rb
	s.merges++

	// Absorbing ra invalidates signatures mentioning it. Rescan the
	// absorbed use-list for new congruences.
	moved := s.uses[ra]
	s.uses[ra] = nil
	for _, t := range moved {
		s.insertOrMerge(t)
	}
	s.uses[rb] = append(s.uses[rb], moved...)
}

func (s *Solver) find(i int) int {
	for s.parent[i] != i {
		s.parent[i] = s.parent[s.parent[i]] // path halving
		i = s.parent[i]
	}
	return i
}

func (s *Solver) grow(id int) {
	for len(s.parent) <= id {
		s.parent = append(s.parent, len(s.parent))
		s.rank = append(s.rank, 0)
		s.uses = append(s.uses, nil)
	}
}

func (s *Solver) signature(id int) (uint64, sigEntry) {
	t := s.pool.ByID(id)
	sig := sigEntry{fn: t.Func.ID(), term: id, args: make([]int, len(t.Args))}
	for i, arg := range t.Args {
		sig.args[i] = s.find(arg.ID())
	}
	h := fnv.New64a()
	writeInt(h, sig.fn)
	for _, a := range sig.args {
		writeInt(h, a)
	}
	return h.Sum64(), sig
}

func writeInt(h io.Writer, n int) {
	var buf [4]byte
	for i := range buf {
		buf[i] = byte(n >> (8 * i))
	}
	h.Write(buf[:])
}

func equalInts(a, b []int) bool {
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
