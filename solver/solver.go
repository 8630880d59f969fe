// Package solver interprets SMT-LIB scripts against the EUF engine.
//
// The solver keeps the symbol table and the assertion scope stack. Each
// check-sat preprocesses the live assertions into equality literals and
// runs a fresh congruence closure over the shared term pool; assertions
// outside the conjunctive fragment yield the unknown verdict.
package solver // import "github.com/bernborgess/carcara/solver"

import (
	"context"
	"fmt"
	"go/token"
	"io"
	"time"

	"github.com/bernborgess/carcara/euf"
	"github.com/bernborgess/carcara/smtlib"
	"github.com/bernborgess/carcara/term"
)

// ScriptError is an execution error at a script position.
type ScriptError struct {
	Pos token.Position
	Err error
}

func (err *ScriptError) Error() string {
	return fmt.Sprintf("%v: %v", err.Pos, err.Err)
}

func (err *ScriptError) Unwrap() error { return err.Err }

// define is a define-fun macro body awaiting expansion.
type define struct {
	params []string
	sorts  []*term.Sort
	ret    *term.Sort
	body   *smtlib.SExpr
}

// Solver executes scripts. A Solver may execute several scripts in
// sequence; reset clears it completely.
type Solver struct {
	pool    *term.Pool
	out     io.Writer
	logic   string
	status  string
	sorts   map[string]*term.Sort
	funcs   map[string]*term.FuncDecl
	defines map[string]*define
	scopes  [][]*term.Term // scopes[0] is the global assertion level
	merges  int
}

// Stats are counters accumulated over one Execute call.
type Stats struct {
	Commands   int
	Assertions int
	Checks     int
	Terms      int
	Merges     int
	Elapsed    time.Duration
}

// Summary is the outcome of executing one script.
type Summary struct {
	Name     string
	Status   string // declared (set-info :status), "" if none
	Verdicts []euf.Result
	Stats    Stats
}

// Conforms reports whether every verdict agrees with the declared status.
// Unknown verdicts conform to anything, and an undeclared status admits
// everything.
func (s *Summary) Conforms() bool {
	if s.Status == "" {
		return true
	}
	for _, v := range s.Verdicts {
		if v != euf.Unknown && v.String() != s.Status {
			return false
		}
	}
	return true
}

// New constructs a Solver that writes protocol output to w. A nil w
// discards output.
func New(w io.Writer) *Solver {
	if w == nil {
		w = io.Discard
	}
	s := &Solver{pool: term.NewPool(), out: w}
	s.reset()
	return s
}

func (s *Solver) reset() {
	s.pool = term.NewPool()
	s.logic = ""
	s.status = ""
	s.sorts = map[string]*term.Sort{"Bool": s.pool.BoolSort}
	s.funcs = make(map[string]*term.FuncDecl)
	s.defines = make(map[string]*define)
	s.scopes = [][]*term.Term{nil}
}

// Execute runs a parsed script to completion. The context is checked
// between commands, so a cancelled context stops a long script between
// check-sats.
func (s *Solver) Execute(ctx context.Context, script *smtlib.Script) (*Summary, error) {
	start := time.Now()
	summary := &Summary{Name: script.Name}
	for _, cmd := range script.Commands {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		summary.Stats.Commands++
		stop, err := s.command(cmd, summary)
		if err != nil {
			return summary, err
		}
		if stop {
			break
		}
	}
	summary.Status = s.status
	summary.Stats.Terms = s.pool.Len()
	summary.Stats.Merges = s.merges
	summary.Stats.Elapsed = time.Since(start)
	return summary, nil
}

func (s *Solver) command(cmd smtlib.Command, summary *Summary) (stop bool, err error) {
	switch cmd := cmd.(type) {
	case *smtlib.SetLogic:
		s.logic = cmd.Logic
	case *smtlib.SetInfo:
		if cmd.Key == ":status" && cmd.Value != nil {
			s.status = cmd.Value.Symbol()
		}
	case *smtlib.SetOption:
		// No options affect this solver.
	case *smtlib.DeclareSort:
		if _, ok := s.sorts[cmd.Name]; ok {
			return false, s.errorf(cmd.Pos(), "sort %s already declared", cmd.Name)
		}
		s.sorts[cmd.Name] = s.pool.NewSort(cmd.Name, cmd.Arity)
	case *smtlib.DeclareFun:
		if err := s.declareFun(cmd); err != nil {
			return false, err
		}
	case *smtlib.DefineFun:
		if err := s.defineFun(cmd); err != nil {
			return false, err
		}
	case *smtlib.Assert:
		t, err := s.buildTerm(cmd.Term, nil)
		if err != nil {
			return false, err
		}
		if t.Sort() != s.pool.BoolSort {
			return false, s.errorf(cmd.Pos(), "asserted term has sort %s, want Bool", t.Sort())
		}
		top := len(s.scopes) - 1
		s.scopes[top] = append(s.scopes[top], t)
		summary.Stats.Assertions++
	case *smtlib.CheckSat:
		verdict := s.checkSat()
		summary.Verdicts = append(summary.Verdicts, verdict)
		summary.Stats.Checks++
		fmt.Fprintln(s.out, verdict)
	case *smtlib.Push:
		for i := 0; i < cmd.N; i++ {
			s.scopes = append(s.scopes, nil)
		}
	case *smtlib.Pop:
		if cmd.N >= len(s.scopes) {
			return false, s.errorf(cmd.Pos(), "pop %d exceeds %d open scopes", cmd.N, len(s.scopes)-1)
		}
		s.scopes = s.scopes[:len(s.scopes)-cmd.N]
	case *smtlib.Reset:
		s.reset()
	case *smtlib.ResetAssertions:
		s.scopes = [][]*term.Term{nil}
	case *smtlib.Echo:
		// Msg keeps "" escapes raw, so quoting is plain concatenation.
		fmt.Fprintf(s.out, "\"%s\"\n", cmd.Msg)
	case *smtlib.GetInfo:
		s.getInfo(cmd)
	case *smtlib.Exit:
		return true, nil
	default:
		return false, s.errorf(cmd.Pos(), "unhandled command %T", cmd)
	}
	return false, nil
}

func (s *Solver) declareFun(cmd *smtlib.DeclareFun) error {
	if _, ok := s.funcs[cmd.Name]; ok {
		return s.errorf(cmd.Pos(), "function %s already declared", cmd.Name)
	}
	if _, ok := s.defines[cmd.Name]; ok {
		return s.errorf(cmd.Pos(), "function %s already defined", cmd.Name)
	}
	args := make([]*term.Sort, len(cmd.Args))
	for i, expr := range cmd.Args {
		sort, err := s.resolveSort(expr)
		if err != nil {
			return err
		}
		args[i] = sort
	}
	ret, err := s.resolveSort(cmd.Ret)
	if err != nil {
		return err
	}
	s.funcs[cmd.Name] = s.pool.NewFunc(cmd.Name, args, ret)
	return nil
}

func (s *Solver) defineFun(cmd *smtlib.DefineFun) error {
	if _, ok := s.funcs[cmd.Name]; ok {
		return s.errorf(cmd.Pos(), "function %s already declared", cmd.Name)
	}
	if _, ok := s.defines[cmd.Name]; ok {
		return s.errorf(cmd.Pos(), "function %s already defined", cmd.Name)
	}
	d := &define{body: cmd.Body}
	for _, param := range cmd.Params {
		sort, err := s.resolveSort(param.Sort)
		if err != nil {
			return err
		}
		d.params = append(d.params, param.Name)
		d.sorts = append(d.sorts, sort)
	}
	ret, err := s.resolveSort(cmd.Ret)
	if err != nil {
		return err
	}
	d.ret = ret

	// Sort check the body now, against fresh parameter stand-ins, so a
	// bad definition fails at its own position rather than first use.
	env := make(map[string]*term.Term, len(d.params))
	for i, name := range d.params {
		stand, err := s.pool.Apply(s.pool.NewFunc(name, nil, d.sorts[i]))
		if err != nil {
			return s.errorf(cmd.Pos(), "%v", err)
		}
		env[name] = stand
	}
	body, err := s.buildTerm(cmd.Body, env)
	if err != nil {
		return err
	}
	if body.Sort() != d.ret {
		return s.errorf(cmd.Pos(), "define-fun %s body has sort %s, want %s", cmd.Name, body.Sort(), d.ret)
	}
	s.defines[cmd.Name] = d
	return nil
}

// resolveSort maps a sort expression to a declared sort. Applications of
// parametric sorts are not part of QF_UF and are rejected.
func (s *Solver) resolveSort(expr *smtlib.SExpr) (*term.Sort, error) {
	if expr.IsList() {
		return nil, s.errorf(expr.Pos, "parametric sort application %s is not supported", expr)
	}
	name := expr.Symbol()
	sort, ok := s.sorts[name]
	if !ok {
		return nil, s.errorf(expr.Pos, "unknown sort %s", expr)
	}
	if sort.Arity != 0 {
		return nil, s.errorf(expr.Pos, "sort %s has arity %d and cannot be used directly", name, sort.Arity)
	}
	return sort, nil
}

// checkSat decides the live assertions. Any assertion outside the
// conjunctive fragment makes the verdict unknown.
func (s *Solver) checkSat() euf.Result {
	lits, err := s.literals()
	if err != nil {
		return euf.Unknown
	}
	engine := euf.NewSolver(s.pool)
	engine.AssertNot(s.pool.Bool(true), s.pool.Bool(false))
	for _, lit := range lits {
		if lit.eq {
			engine.Assert(lit.a, lit.b)
		} else {
			engine.AssertNot(lit.a, lit.b)
		}
	}
	verdict := engine.Check()
	s.merges += engine.Merges()
	return verdict
}

func (s *Solver) getInfo(cmd *smtlib.GetInfo) {
	switch cmd.Key {
	case ":status":
		status := s.status
		if status == "" {
			status = "unknown"
		}
		fmt.Fprintf(s.out, "(:status %s)\n", status)
	default:
		fmt.Fprintln(s.out, "unsupported")
	}
}

func (s *Solver) errorf(pos token.Position, format string, args ...interface{}) error {
	return &ScriptError{Pos: pos, Err: fmt.Errorf(format, args...)}
}
