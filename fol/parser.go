package fol

import (
	"fmt"
	"io"
	"strconv"
)

// A ParserError is returned when the token stream does not follow the grammar:
// an unexpected token, a premature end of input or trailing tokens after a complete formula.
type ParserError struct {
	Token Token  // The offending token; its type is TokenEOF at the end of input
	Msg   string // What was expected instead
}

func (e *ParserError) Error() string {
	if e.Token.Type == TokenEOF {
		return fmt.Sprintf("unexpected end of input at %s: %s", e.Token.Pos, e.Msg)
	}
	return fmt.Sprintf("unexpected token %s at %s: %s", e.Token, e.Token.Pos, e.Msg)
}

// An Entry is a weighted formula of an MLN file.
type Entry struct {
	Formula Formula
	Weight  float64
}

func (e Entry) String() string {
	return Print(e.Formula) + " : " + strconv.FormatFloat(e.Weight, 'g', -1, 64)
}

type parser struct {
	toks []Token
	cur  int
	end  Position // Position of the end of input
}

func newParser(text string) (*parser, error) {
	toks, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	end := Position{Offset: len(text), Line: 1, Column: 1}
	for _, c := range text {
		if c == '\n' {
			end.Line++
			end.Column = 1
		} else {
			end.Column++
		}
	}
	return &parser{toks: toks, end: end}, nil
}

// ParseFormula parses text as a single formula.
// Formulas are written with the following grammar:
//
//	formula   := secondary (('=>' | '<=>') secondary)?
//	secondary := primary (('and' | 'or') primary)*
//	primary   := atom | 'not' primary | ('forall' | 'exists') variable+ primary | '(' formula ')'
//	atom      := CONSTANT '(' (term (',' term)*)? ')'
//
// The whole text must be consumed. A *LexError or a *ParserError is returned if text is not a valid formula.
func ParseFormula(text string) (Formula, error) {
	p, err := newParser(text)
	if err != nil {
		return nil, err
	}
	f, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}
	return f, nil
}

// Parse reads the whole content of r and parses it as a single formula.
func Parse(r io.Reader) (Formula, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read formula: %w", err)
	}
	return ParseFormula(string(text))
}

// ParseTerm parses text as a single term:
//
//	term := VARIABLE | CONSTANT | VARIABLE '(' (term (',' term)*)? ')'
func ParseTerm(text string) (Term, error) {
	p, err := newParser(text)
	if err != nil {
		return nil, err
	}
	t, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}
	return t, nil
}

// ParseMLN parses the content of an MLN file, i.e a non-empty list of formulas,
// each one optionally followed by a colon and a weight:
//
//	mln := (formula (':' FLOAT)?)+
//
// When the weight is omitted, it defaults to 0.
func ParseMLN(text string) ([]Entry, error) {
	p, err := newParser(text)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	for {
		f, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		entry := Entry{Formula: f}
		if p.peek().Type == TokenColon {
			p.next()
			tok, err := p.expect(TokenFloat, "weight expected")
			if err != nil {
				return nil, err
			}
			w, err := strconv.ParseFloat(tok.Text, 64)
			if err != nil {
				return nil, p.errorf(tok, "invalid weight: %v", err)
			}
			entry.Weight = w
		}
		entries = append(entries, entry)
		if p.peek().Type == TokenEOF {
			return entries, nil
		}
	}
}

// ReadMLN reads the whole content of r and parses it as an MLN file.
func ReadMLN(r io.Reader) ([]Entry, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read MLN: %w", err)
	}
	return ParseMLN(string(text))
}

func (p *parser) peek() Token {
	if p.cur >= len(p.toks) {
		return Token{Type: TokenEOF, Pos: p.end}
	}
	return p.toks[p.cur]
}

func (p *parser) next() Token {
	tok := p.peek()
	if p.cur < len(p.toks) {
		p.cur++
	}
	return tok
}

func (p *parser) errorf(tok Token, format string, args ...interface{}) error {
	return &ParserError{Token: tok, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) expect(tt TokenType, msg string) (Token, error) {
	tok := p.next()
	if tok.Type != tt {
		return tok, p.errorf(tok, "%s", msg)
	}
	return tok, nil
}

func (p *parser) expectEOF() error {
	if tok := p.peek(); tok.Type != TokenEOF {
		return p.errorf(tok, "end of input expected")
	}
	return nil
}

func (p *parser) parseFormula() (Formula, error) {
	f1, err := p.parseSecondary()
	if err != nil {
		return nil, err
	}
	switch p.peek().Type {
	case TokenImply:
		p.next()
		f2, err := p.parseSecondary()
		if err != nil {
			return nil, err
		}
		return Imply{L: f1, R: f2}, nil
	case TokenEquiv:
		p.next()
		f2, err := p.parseSecondary()
		if err != nil {
			return nil, err
		}
		return Equiv{L: f1, R: f2}, nil
	}
	return f1, nil
}

func (p *parser) parseSecondary() (Formula, error) {
	f, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().Type {
		case TokenAnd:
			p.next()
			f2, err := p.parsePrimary()
			if err != nil {
				return nil, err
			}
			f = And{L: f, R: f2}
		case TokenOr:
			p.next()
			f2, err := p.parsePrimary()
			if err != nil {
				return nil, err
			}
			f = Or{L: f, R: f2}
		default:
			return f, nil
		}
	}
}

func (p *parser) parsePrimary() (Formula, error) {
	switch tok := p.peek(); tok.Type {
	case TokenLParen:
		p.next()
		f, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen, "closing parenthesis expected"); err != nil {
			return nil, err
		}
		return f, nil
	case TokenNot:
		p.next()
		f, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return Not{F: f}, nil
	case TokenForall, TokenExists:
		p.next()
		var xs []string
		for p.peek().Type == TokenVariable {
			xs = append(xs, p.next().Text)
		}
		if len(xs) == 0 {
			return nil, p.errorf(p.peek(), "bound variable expected after %q", tok.Text)
		}
		f, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		if tok.Type == TokenForall {
			return Forall{Vars: xs, F: f}, nil
		}
		return Exists{Vars: xs, F: f}, nil
	case TokenConstant:
		return p.parseAtom()
	default:
		return nil, p.errorf(tok, "formula expected")
	}
}

func (p *parser) parseAtom() (Formula, error) {
	pred := p.next()
	if _, err := p.expect(TokenLParen, "opening parenthesis expected after predicate"); err != nil {
		return nil, err
	}
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	return Atom{Pred: pred.Text, Args: args}, nil
}

// parseArgs parses a comma-separated list of terms, up to and including the closing parenthesis.
func (p *parser) parseArgs() ([]Term, error) {
	args := []Term{}
	if p.peek().Type == TokenRParen {
		p.next()
		return args, nil
	}
	for {
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		args = append(args, t)
		switch tok := p.next(); tok.Type {
		case TokenRParen:
			return args, nil
		case TokenComma:
		default:
			return nil, p.errorf(tok, "comma or closing parenthesis expected")
		}
	}
}

func (p *parser) parseTerm() (Term, error) {
	switch tok := p.next(); tok.Type {
	case TokenConstant:
		return Constant(tok.Text), nil
	case TokenVariable:
		if p.peek().Type != TokenLParen {
			return Variable(tok.Text), nil
		}
		p.next()
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		return Apply{Fun: tok.Text, Args: args}, nil
	default:
		return nil, p.errorf(tok, "variable, constant or function application expected")
	}
}
