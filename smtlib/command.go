package smtlib

import "go/token"

// Command is a single script-level SMT-LIB command.
type Command interface {
	Pos() token.Position
	commandNode()
}

type commandBase struct {
	position token.Position
}

func (c commandBase) Pos() token.Position { return c.position }
func (c commandBase) commandNode()        {}

// SetLogic records a (set-logic L) command.
type SetLogic struct {
	commandBase
	Logic string
}

// SetInfo records a (set-info :key value) command.
type SetInfo struct {
	commandBase
	Key   string
	Value *SExpr // nil when omitted
}

// SetOption records a (set-option :key value) command.
type SetOption struct {
	commandBase
	Key   string
	Value *SExpr
}

// DeclareSort declares an uninterpreted sort with an arity.
type DeclareSort struct {
	commandBase
	Name  string
	Arity int
}

// DeclareFun declares an uninterpreted function. Constants declared with
// declare-const are represented as zero-parameter functions.
type DeclareFun struct {
	commandBase
	Name string
	Args []*SExpr // sort expressions
	Ret  *SExpr
}

// DefineFun defines a function as a macro over its parameters.
type DefineFun struct {
	commandBase
	Name   string
	Params []SortedVar
	Ret    *SExpr
	Body   *SExpr
}

// SortedVar is a (name sort) parameter binding.
type SortedVar struct {
	Name string
	Sort *SExpr
}

// Assert records an asserted term.
type Assert struct {
	commandBase
	Term *SExpr
}

// CheckSat requests a satisfiability verdict for the live assertions.
type CheckSat struct {
	commandBase
}

// Push opens N assertion scopes.
type Push struct {
	commandBase
	N int
}

// Pop closes N assertion scopes.
type Pop struct {
	commandBase
	N int
}

// Reset clears all state, declarations included.
type Reset struct {
	commandBase
}

// ResetAssertions clears assertions and scopes but keeps declarations.
type ResetAssertions struct {
	commandBase
}

// Echo prints its message.
type Echo struct {
	commandBase
	Msg string
}

// GetInfo requests an info value, e.g. (get-info :status).
type GetInfo struct {
	commandBase
	Key string
}

// Exit terminates the script. Later commands are not executed.
type Exit struct {
	commandBase
}

// Script is a parsed SMT-LIB script.
type Script struct {
	Name     string
	Commands []Command
	// Status is the declared (set-info :status S) value, if any.
	// One of "sat", "unsat", "unknown", or "" when undeclared.
	Status string
}
