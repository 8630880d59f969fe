package smtlib // import "github.com/bernborgess/carcara/smtlib"

import "fmt"

// Token is a lexical token in SMT-LIB v2 concrete syntax.
type Token struct {
	Type Type
	Text string // literal text for symbols, keywords, and constants
}

func (tok *Token) String() string {
	switch tok.Type {
	case LParen:
		return "("
	case RParen:
		return ")"
	case EOF:
		return "<eof>"
	case String:
		// Text keeps "" escapes raw, so plain quoting round-trips.
		return fmt.Sprintf("\"%s\"", tok.Text)
	default:
		return tok.Text
	}
}

// Type is the lexical class of a token.
type Type uint8

const (
	Illegal Type = iota

	LParen
	RParen

	constBeg
	// Spec constants
	Numeral // 0, 42
	Decimal // 1.5, 0.0
	Hex     // #xA04
	Binary  // #b0101
	String  // "text"
	constEnd

	Symbol  // plain or |quoted| symbol
	Keyword // :status, :named

	EOF
)

// IsConstant returns true for spec constant tokens.
func (typ Type) IsConstant() bool { return constBeg < typ && typ < constEnd }

func (typ Type) String() string {
	switch typ {
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case Numeral:
		return "numeral"
	case Decimal:
		return "decimal"
	case Hex:
		return "hexadecimal"
	case Binary:
		return "binary"
	case String:
		return "string"
	case Symbol:
		return "symbol"
	case Keyword:
		return "keyword"
	case EOF:
		return "end of file"
	}
	return "illegal"
}
