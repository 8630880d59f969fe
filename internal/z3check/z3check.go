//go:build z3

// Package z3check replays SMT-LIB scripts against Z3 and compares its
// verdict with the built-in engine. It needs cgo and libz3, so it is
// only compiled with the z3 build tag.
package z3check

import (
	"context"
	"fmt"
	"go/token"
	"os"

	"github.com/vhavlena/z3-go/z3"

	"github.com/bernborgess/carcara/euf"
	"github.com/bernborgess/carcara/smtlib"
	"github.com/bernborgess/carcara/solver"
)

// Solve runs Z3 on the assertions of a single SMT-LIB script. Z3's parser
// collapses the script to one assertion set, so scripts with push, pop, or
// multiple check-sat commands lose their incremental structure here.
func Solve(src string) (euf.Result, error) {
	cfg := z3.NewConfig()
	defer cfg.Close()
	ctx := z3.NewContext(cfg)
	defer ctx.Close()
	s := ctx.NewSolver()
	defer s.Close()

	r, err := s.SolveSMTLIB2String(src)
	switch r {
	case z3.Sat:
		return euf.Sat, nil
	case z3.Unsat:
		return euf.Unsat, nil
	default:
		return euf.Unknown, err
	}
}

// SolveFile is Solve for a script on disk.
func SolveFile(path string) (euf.Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return euf.Unknown, err
	}
	return Solve(string(src))
}

// Verify solves path with both engines and reports a disagreement as an
// error. Scripts with more than one check-sat are rejected, since Z3 sees
// them as a single query. An unknown verdict from the built-in engine
// conforms to anything.
func Verify(path string) error {
	fset := token.NewFileSet()
	script, err := smtlib.ParseFile(fset, path)
	if err != nil {
		return err
	}
	summary, err := solver.New(nil).Execute(context.Background(), script)
	if err != nil {
		return err
	}
	if n := len(summary.Verdicts); n != 1 {
		return fmt.Errorf("%s: %d check-sat commands, want 1", path, n)
	}
	got := summary.Verdicts[0]
	if got == euf.Unknown {
		return nil
	}

	want, err := SolveFile(path)
	if err != nil {
		return fmt.Errorf("%s: z3: %w", path, err)
	}
	if want != euf.Unknown && got != want {
		return fmt.Errorf("%s: verdict %s, z3 says %s", path, got, want)
	}
	return nil
}
