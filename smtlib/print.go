package smtlib

import (
	"fmt"
	"io"
	"strings"
)

// WriteScript renders a parsed script back to SMT-LIB text, one command
// per line. The output parses back to an equal script.
func WriteScript(w io.Writer, script *Script) error {
	for _, cmd := range script.Commands {
		if _, err := fmt.Fprintln(w, CommandString(cmd)); err != nil {
			return err
		}
	}
	return nil
}

// CommandString renders one command as SMT-LIB text.
func CommandString(cmd Command) string {
	switch cmd := cmd.(type) {
	case *SetLogic:
		return fmt.Sprintf("(set-logic %s)", cmd.Logic)
	case *SetInfo:
		return keywordCommand("set-info", cmd.Key, cmd.Value)
	case *SetOption:
		return keywordCommand("set-option", cmd.Key, cmd.Value)
	case *DeclareSort:
		return fmt.Sprintf("(declare-sort %s %d)", cmd.Name, cmd.Arity)
	case *DeclareFun:
		var b strings.Builder
		fmt.Fprintf(&b, "(declare-fun %s (", cmd.Name)
		for i, arg := range cmd.Args {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(arg.String())
		}
		fmt.Fprintf(&b, ") %s)", cmd.Ret)
		return b.String()
	case *DefineFun:
		var b strings.Builder
		fmt.Fprintf(&b, "(define-fun %s (", cmd.Name)
		for i, param := range cmd.Params {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "(%s %s)", param.Name, param.Sort)
		}
		fmt.Fprintf(&b, ") %s %s)", cmd.Ret, cmd.Body)
		return b.String()
	case *Assert:
		return fmt.Sprintf("(assert %s)", cmd.Term)
	case *CheckSat:
		return "(check-sat)"
	case *Push:
		return fmt.Sprintf("(push %d)", cmd.N)
	case *Pop:
		return fmt.Sprintf("(pop %d)", cmd.N)
	case *Reset:
		return "(reset)"
	case *ResetAssertions:
		return "(reset-assertions)"
	case *Echo:
		return fmt.Sprintf("(echo \"%s\")", cmd.Msg)
	case *GetInfo:
		return fmt.Sprintf("(get-info %s)", cmd.Key)
	case *Exit:
		return "(exit)"
	}
	return fmt.Sprintf("; unknown command %T", cmd)
}

func keywordCommand(name, key string, value *SExpr) string {
	if value == nil {
		return fmt.Sprintf("(%s %s)", name, key)
	}
	return fmt.Sprintf("(%s %s %s)", name, key, value)
}
