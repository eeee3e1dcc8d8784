package fol

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// TokenType is the lexical class of a token.
type TokenType int

const (
	// TokenEOF marks the end of the input. It is never returned by Tokenize.
	TokenEOF = TokenType(iota)
	// TokenVariable is an identifier starting with a lowercase letter, such as x or f.
	TokenVariable
	// TokenConstant is an identifier starting with an uppercase letter, such as Anna or Smokes.
	TokenConstant
	// TokenFloat is an optionally signed decimal number, with an optional exponent.
	TokenFloat
	TokenNot
	TokenAnd
	TokenOr
	TokenForall
	TokenExists
	// TokenImply is the "=>" operator.
	TokenImply
	// TokenEquiv is the "<=>" operator.
	TokenEquiv
	TokenComma
	TokenLParen
	TokenRParen
	TokenColon
)

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenVariable:
		return "VARIABLE"
	case TokenConstant:
		return "CONSTANT"
	case TokenFloat:
		return "FLOAT"
	case TokenNot:
		return "NOT"
	case TokenAnd:
		return "AND"
	case TokenOr:
		return "OR"
	case TokenForall:
		return "FORALL"
	case TokenExists:
		return "EXISTS"
	case TokenImply:
		return "IMPLY"
	case TokenEquiv:
		return "EQUIV"
	case TokenComma:
		return "COMMA"
	case TokenLParen:
		return "LPAREN"
	case TokenRParen:
		return "RPAREN"
	case TokenColon:
		return "COLON"
	default:
		panic("invalid token type")
	}
}

var reserved = map[string]TokenType{
	"not":    TokenNot,
	"and":    TokenAnd,
	"or":     TokenOr,
	"forall": TokenForall,
	"exists": TokenExists,
}

// Position is a location in the source text.
// Offset starts at 0, Line and Column start at 1.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// A Token is a lexeme of the source text, along with its class and position.
type Token struct {
	Type TokenType
	Text string
	Pos  Position
}

func (t Token) String() string {
	if t.Type == TokenEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s %q", t.Type, t.Text)
}

// A LexError is returned when no token can be read at some position of the input.
type LexError struct {
	Char rune // The offending character
	Pos  Position
}

func (e *LexError) Error() string {
	return fmt.Sprintf("illegal character %q at %s", e.Char, e.Pos)
}

type lexer struct {
	src string
	pos Position
}

// Tokenize splits text into tokens.
// Whitespace (spaces, tabs, carriage returns and newlines) separates tokens but is not returned.
// If a character cannot start any token, a *LexError is returned.
func Tokenize(text string) ([]Token, error) {
	l := lexer{src: text, pos: Position{Line: 1, Column: 1}}
	var toks []Token
	for {
		l.skipSpace()
		if l.atEnd() {
			return toks, nil
		}
		tok, err := l.scan()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isLower(b byte) bool { return b >= 'a' && b <= 'z' }
func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentChar(b byte) bool {
	return isLower(b) || isUpper(b) || isDigit(b) || b == '_'
}

func (l *lexer) atEnd() bool {
	return l.pos.Offset >= len(l.src)
}

// at returns the byte at offset i from the current position, or 0 past the end of input.
func (l *lexer) at(i int) byte {
	if l.pos.Offset+i >= len(l.src) {
		return 0
	}
	return l.src[l.pos.Offset+i]
}

func (l *lexer) advance(n int) {
	for i := 0; i < n; i++ {
		if l.src[l.pos.Offset] == '\n' {
			l.pos.Line++
			l.pos.Column = 1
		} else {
			l.pos.Column++
		}
		l.pos.Offset++
	}
}

func (l *lexer) skipSpace() {
	for !l.atEnd() && isSpace(l.at(0)) {
		l.advance(1)
	}
}

// emit builds a token of type tt spanning the next n bytes and moves past it.
func (l *lexer) emit(tt TokenType, n int) Token {
	tok := Token{Type: tt, Text: l.src[l.pos.Offset : l.pos.Offset+n], Pos: l.pos}
	l.advance(n)
	return tok
}

func (l *lexer) scan() (Token, error) {
	rest := l.src[l.pos.Offset:]
	c := rest[0]
	switch {
	case isLower(c):
		n := l.identLen()
		if tt, ok := reserved[rest[:n]]; ok {
			return l.emit(tt, n), nil
		}
		return l.emit(TokenVariable, n), nil
	case isUpper(c):
		return l.emit(TokenConstant, l.identLen()), nil
	case isDigit(c), (c == '+' || c == '-') && isDigit(l.at(1)):
		return l.emit(TokenFloat, l.floatLen()), nil
	case strings.HasPrefix(rest, "<=>"):
		return l.emit(TokenEquiv, 3), nil
	case strings.HasPrefix(rest, "=>"):
		return l.emit(TokenImply, 2), nil
	case c == ',':
		return l.emit(TokenComma, 1), nil
	case c == '(':
		return l.emit(TokenLParen, 1), nil
	case c == ')':
		return l.emit(TokenRParen, 1), nil
	case c == ':':
		return l.emit(TokenColon, 1), nil
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return Token{}, &LexError{Char: r, Pos: l.pos}
}

func (l *lexer) identLen() int {
	n := 1
	for isIdentChar(l.at(n)) {
		n++
	}
	return n
}

// floatLen returns the length of the number starting at the current position,
// matching [+-]?[0-9]+(\.[0-9]*)?([eE][+-]?[0-9]+)?
func (l *lexer) floatLen() int {
	n := 0
	if c := l.at(0); c == '+' || c == '-' {
		n++
	}
	for isDigit(l.at(n)) {
		n++
	}
	if l.at(n) == '.' {
		n++
		for isDigit(l.at(n)) {
			n++
		}
	}
	if c := l.at(n); c == 'e' || c == 'E' {
		m := n + 1
		if c := l.at(m); c == '+' || c == '-' {
			m++
		}
		if isDigit(l.at(m)) {
			for isDigit(l.at(m)) {
				m++
			}
			n = m
		}
	}
	return n
}
