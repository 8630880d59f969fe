package term // import "github.com/bernborgess/carcara/term"

import "fmt"

// Sort is a declared sort. Sorts are created once per declaration and
// compared by pointer.
type Sort struct {
	Name  string
	Arity int
}

func (s *Sort) String() string { return s.Name }

// FuncDecl is a declared function symbol. Constants are zero-parameter
// functions. Declarations are created once per symbol by the pool and
// compared by pointer.
type FuncDecl struct {
	id   int
	Name string
	Args []*Sort
	Ret  *Sort
}

func (f *FuncDecl) String() string { return f.Name }

// ID returns a pool-unique numeric identifier for the symbol.
func (f *FuncDecl) ID() int { return f.id }

// SortError reports an ill-sorted term construction.
type SortError struct {
	Sym string // symbol being applied
	Err string
}

func (err *SortError) Error() string {
	if err.Sym == "" {
		return "sort error: " + err.Err
	}
	return fmt.Sprintf("sort error: %s: %s", err.Sym, err.Err)
}

func sortErrorf(sym, format string, args ...interface{}) error {
	return &SortError{Sym: sym, Err: fmt.Sprintf(format, args...)}
}
