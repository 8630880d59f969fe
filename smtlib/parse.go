// Package smtlib lexes and parses SMT-LIB v2 scripts.
//
// Parsing happens in two layers: a generic s-expression reader over the
// token stream, then a command reader that recognizes the script-level
// command forms. Terms below assert and define-fun stay as s-expressions;
// the term and solver packages give them meaning.
package smtlib

import (
	"fmt"
	"go/token"
	"os"
	"strconv"
)

// ParseFile reads and parses the script at path.
func ParseFile(fset *token.FileSet, path string) (*Script, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(fset.AddFile(path, -1, len(src)), src)
}

type parser struct {
	l    *lexer
	tok  Token
	pos  token.Position
	name string
}

// Parse parses an SMT-LIB script. The file must have been added to a
// token.FileSet with a base covering len(src).
func Parse(file *token.File, src []byte) (*Script, error) {
	p := &parser{l: newLexer(file, src), name: file.Name()}
	if err := p.next(); err != nil {
		return nil, err
	}
	script := &Script{Name: file.Name()}
	for p.tok.Type != EOF {
		cmd, err := p.parseCommand()
		if err != nil {
			return nil, err
		}
		script.Commands = append(script.Commands, cmd)
		if info, ok := cmd.(*SetInfo); ok && info.Key == ":status" && info.Value != nil {
			script.Status = info.Value.Symbol()
		}
		if _, ok := cmd.(*Exit); ok {
			break
		}
	}
	return script, nil
}

func (p *parser) next() error {
	tok, pos, err := p.l.Next()
	if err != nil {
		return err
	}
	p.tok, p.pos = tok, pos
	return nil
}

func (p *parser) errorf(pos token.Position, format string, args ...interface{}) error {
	return &SyntaxError{Err: fmt.Sprintf(format, args...), Pos: pos, End: pos}
}

// parseSExpr reads one s-expression starting at the current token.
func (p *parser) parseSExpr() (*SExpr, error) {
	switch p.tok.Type {
	case LParen:
		pos := p.pos
		if err := p.next(); err != nil {
			return nil, err
		}
		list := []*SExpr{}
		for p.tok.Type != RParen {
			if p.tok.Type == EOF {
				return nil, p.errorf(pos, "unclosed list")
			}
			e, err := p.parseSExpr()
			if err != nil {
				return nil, err
			}
			list = append(list, e)
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		return &SExpr{List: list, Pos: pos}, nil
	case RParen:
		return nil, p.errorf(p.pos, "unexpected ')'")
	case EOF:
		return nil, p.errorf(p.pos, "unexpected end of file")
	default:
		atom := &SExpr{Atom: p.tok, Pos: p.pos}
		if err := p.next(); err != nil {
			return nil, err
		}
		return atom, nil
	}
}

func (p *parser) parseCommand() (Command, error) {
	if p.tok.Type != LParen {
		return nil, p.errorf(p.pos, "expected command, found %s", p.tok.Type)
	}
	expr, err := p.parseSExpr()
	if err != nil {
		return nil, err
	}
	if len(expr.List) == 0 || expr.List[0].Atom.Type != Symbol {
		return nil, p.errorf(expr.Pos, "expected command name")
	}
	name := expr.List[0].Atom.Text
	base := commandBase{expr.Pos}
	args := expr.List[1:]

	switch name {
	case "set-logic":
		sym, err := p.oneSymbol(expr, args)
		if err != nil {
			return nil, err
		}
		return &SetLogic{base, sym}, nil
	case "set-info", "set-option":
		if len(args) < 1 || len(args) > 2 || args[0].Atom.Type != Keyword {
			return nil, p.errorf(expr.Pos, "%s expects a keyword and an optional value", name)
		}
		var value *SExpr
		if len(args) == 2 {
			value = args[1]
		}
		if name == "set-info" {
			return &SetInfo{base, args[0].Atom.Text, value}, nil
		}
		return &SetOption{base, args[0].Atom.Text, value}, nil
	case "declare-sort":
		if len(args) != 2 || args[0].Atom.Type != Symbol {
			return nil, p.errorf(expr.Pos, "declare-sort expects a symbol and an arity")
		}
		arity, err := p.numeral(args[1])
		if err != nil {
			return nil, err
		}
		return &DeclareSort{base, args[0].Atom.Text, arity}, nil
	case "declare-fun":
		if len(args) != 3 || args[0].Atom.Type != Symbol || !args[1].IsList() {
			return nil, p.errorf(expr.Pos, "declare-fun expects a symbol, a sort list, and a sort")
		}
		return &DeclareFun{base, args[0].Atom.Text, args[1].List, args[2]}, nil
	case "declare-const":
		if len(args) != 2 || args[0].Atom.Type != Symbol {
			return nil, p.errorf(expr.Pos, "declare-const expects a symbol and a sort")
		}
		return &DeclareFun{base, args[0].Atom.Text, nil, args[1]}, nil
	case "define-fun":
		if len(args) != 4 || args[0].Atom.Type != Symbol || !args[1].IsList() {
			return nil, p.errorf(expr.Pos, "define-fun expects a symbol, parameters, a sort, and a body")
		}
		params := make([]SortedVar, len(args[1].List))
		for i, param := range args[1].List {
			if len(param.List) != 2 || param.List[0].Atom.Type != Symbol {
				return nil, p.errorf(param.Pos, "expected (name sort) parameter")
			}
			params[i] = SortedVar{param.List[0].Atom.Text, param.List[1]}
		}
		return &DefineFun{base, args[0].Atom.Text, params, args[2], args[3]}, nil
	case "assert":
		if len(args) != 1 {
			return nil, p.errorf(expr.Pos, "assert expects one term")
		}
		return &Assert{base, args[0]}, nil
	case "check-sat":
		if len(args) != 0 {
			return nil, p.errorf(expr.Pos, "check-sat expects no arguments")
		}
		return &CheckSat{base}, nil
	case "push", "pop":
		n := 1
		if len(args) > 1 {
			return nil, p.errorf(expr.Pos, "%s expects at most one numeral", name)
		}
		if len(args) == 1 {
			if n, err = p.numeral(args[0]); err != nil {
				return nil, err
			}
		}
		if name == "push" {
			return &Push{base, n}, nil
		}
		return &Pop{base, n}, nil
	case "reset":
		return &Reset{base}, nil
	case "reset-assertions":
		return &ResetAssertions{base}, nil
	case "echo":
		if len(args) != 1 || args[0].Atom.Type != String {
			return nil, p.errorf(expr.Pos, "echo expects a string")
		}
		return &Echo{base, args[0].Atom.Text}, nil
	case "get-info":
		if len(args) != 1 || args[0].Atom.Type != Keyword {
			return nil, p.errorf(expr.Pos, "get-info expects a keyword")
		}
		return &GetInfo{base, args[0].Atom.Text}, nil
	case "exit":
		return &Exit{base}, nil
	}
	return nil, p.errorf(expr.Pos, "unknown command %s", name)
}

func (p *parser) oneSymbol(cmd *SExpr, args []*SExpr) (string, error) {
	if len(args) != 1 || args[0].Atom.Type != Symbol {
		return "", p.errorf(cmd.Pos, "%s expects one symbol", cmd.List[0].Atom.Text)
	}
	return args[0].Atom.Text, nil
}

func (p *parser) numeral(e *SExpr) (int, error) {
	if e.Atom.Type != Numeral {
		return 0, p.errorf(e.Pos, "expected numeral, found %s", e)
	}
	n, err := strconv.Atoi(e.Atom.Text)
	if err != nil {
		return 0, p.errorf(e.Pos, "numeral out of range: %s", e.Atom.Text)
	}
	return n, nil
}
