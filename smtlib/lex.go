package smtlib

import (
	"fmt"
	"go/token"
)

// lexer scans SMT-LIB source into tokens on demand.
type lexer struct {
	file        *token.File
	src         []byte
	offset      int
	startOffset int
}

// SyntaxError identifies the location of a syntactic error.
type SyntaxError struct {
	Err string
	Pos token.Position
	End token.Position // inclusive
}

func (err *SyntaxError) Error() string {
	end := err.End
	if err.Pos.Filename == end.Filename {
		end.Filename = ""
	}
	if err.Pos == err.End {
		return fmt.Sprintf("syntax error: %s at %v", err.Err, err.Pos)
	}
	return fmt.Sprintf("syntax error: %s at %v-%v", err.Err, err.Pos, end)
}

func newLexer(file *token.File, src []byte) *lexer {
	return &lexer{file: file, src: src}
}

func (l *lexer) next() (byte, bool) {
	if l.offset < len(l.src) {
		c := l.src[l.offset]
		l.offset++
		if c == '\n' {
			l.file.AddLine(l.offset)
		}
		return c, false
	}
	return 0, true
}

func (l *lexer) peek() (byte, bool) {
	if l.offset < len(l.src) {
		return l.src[l.offset], false
	}
	return 0, true
}

func (l *lexer) pos() token.Position {
	return l.file.Position(l.file.Pos(l.startOffset))
}

func (l *lexer) error(err string) error {
	return &SyntaxError{
		Err: err,
		Pos: l.file.Position(l.file.Pos(l.startOffset)),
		End: l.file.Position(l.file.Pos(max(l.offset-1, l.startOffset))),
	}
}

func (l *lexer) errorf(format string, args ...interface{}) error {
	return l.error(fmt.Sprintf(format, args...))
}

// Next scans the next token and its starting position.
func (l *lexer) Next() (Token, token.Position, error) {
	for {
		l.startOffset = l.offset
		c, eof := l.next()
		if eof {
			return Token{Type: EOF}, l.pos(), nil
		}
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			continue
		case c == ';':
			l.skipComment()
			continue
		case c == '(':
			return Token{Type: LParen}, l.pos(), nil
		case c == ')':
			return Token{Type: RParen}, l.pos(), nil
		case c == '"':
			return l.lexString()
		case c == '|':
			return l.lexQuotedSymbol()
		case c == ':':
			return l.lexKeyword()
		case c == '#':
			return l.lexRadixed()
		case c >= '0' && c <= '9':
			return l.lexNumber()
		case isSymbolChar(c):
			return l.lexSymbol()
		default:
			return Token{}, l.pos(), l.errorf("unexpected character %q", c)
		}
	}
}

func (l *lexer) skipComment() {
	for {
		c, eof := l.next()
		if eof || c == '\n' {
			return
		}
	}
}

func (l *lexer) lexString() (Token, token.Position, error) {
	start := l.offset
	for {
		c, eof := l.next()
		if eof {
			return Token{}, l.pos(), l.error("unterminated string")
		}
		if c == '"' {
			// "" escapes a quote inside a string
			if next, eof := l.peek(); !eof && next == '"' {
				l.next()
				continue
			}
			return Token{String, string(l.src[start : l.offset-1])}, l.pos(), nil
		}
	}
}

func (l *lexer) lexQuotedSymbol() (Token, token.Position, error) {
	start := l.offset
	for {
		c, eof := l.next()
		if eof {
			return Token{}, l.pos(), l.error("unterminated quoted symbol")
		}
		if c == '\\' {
			return Token{}, l.pos(), l.error("backslash in quoted symbol")
		}
		if c == '|' {
			return Token{Symbol, string(l.src[start : l.offset-1])}, l.pos(), nil
		}
	}
}

func (l *lexer) lexKeyword() (Token, token.Position, error) {
	start := l.offset
	for {
		c, eof := l.peek()
		if eof || !isSymbolChar(c) && !(c >= '0' && c <= '9') {
			break
		}
		l.next()
	}
	if l.offset == start {
		return Token{}, l.pos(), l.error("empty keyword")
	}
	return Token{Keyword, string(l.src[l.startOffset:l.offset])}, l.pos(), nil
}

func (l *lexer) lexRadixed() (Token, token.Position, error) {
	c, eof := l.next()
	if eof {
		return Token{}, l.pos(), l.error("incomplete radixed constant")
	}
	var typ Type
	var digits func(byte) bool
	switch c {
	case 'x':
		typ = Hex
		digits = isHexDigit
	case 'b':
		typ = Binary
		digits = func(c byte) bool { return c == '0' || c == '1' }
	default:
		return Token{}, l.pos(), l.errorf("expected #x or #b, found #%c", c)
	}
	start := l.offset
	for {
		c, eof := l.peek()
		if eof || !digits(c) {
			break
		}
		l.next()
	}
	if l.offset == start {
		return Token{}, l.pos(), l.error("radixed constant without digits")
	}
	return Token{typ, string(l.src[l.startOffset:l.offset])}, l.pos(), nil
}

func (l *lexer) lexNumber() (Token, token.Position, error) {
	typ := Numeral
	for {
		c, eof := l.peek()
		if eof {
			break
		}
		if c == '.' && typ == Numeral {
			typ = Decimal
			l.next()
			continue
		}
		if c < '0' || c > '9' {
			break
		}
		l.next()
	}
	text := string(l.src[l.startOffset:l.offset])
	if text[len(text)-1] == '.' {
		return Token{}, l.pos(), l.errorf("decimal without fraction digits: %s", text)
	}
	// 007 is not a numeral
	if len(text) > 1 && text[0] == '0' && typ == Numeral {
		return Token{}, l.pos(), l.errorf("numeral with leading zero: %s", text)
	}
	return Token{typ, text}, l.pos(), nil
}

func (l *lexer) lexSymbol() (Token, token.Position, error) {
	for {
		c, eof := l.peek()
		if eof || !isSymbolChar(c) && !(c >= '0' && c <= '9') {
			break
		}
		l.next()
	}
	return Token{Symbol, string(l.src[l.startOffset:l.offset])}, l.pos(), nil
}

func isSymbolChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return true
	}
	switch c {
	case '~', '!', '@', '$', '%', '^', '&', '*', '_', '-', '+', '=', '<', '>', '.', '?', '/':
		return true
	}
	return false
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
