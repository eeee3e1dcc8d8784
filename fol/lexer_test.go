package fol

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTypes(t *testing.T, text string) []TokenType {
	t.Helper()
	toks, err := Tokenize(text)
	require.NoError(t, err)
	types := make([]TokenType, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	return types
}

func TestTokenizeIdentifiers(t *testing.T) {
	assert.Equal(t, []TokenType{TokenVariable, TokenVariable, TokenVariable}, tokenTypes(t, "xyz xYZ xYZ0_"))
	assert.Equal(t, []TokenType{TokenConstant, TokenConstant, TokenConstant}, tokenTypes(t, "Xyz XYZ XYZ0_"))
	assert.Equal(t, []TokenType{TokenVariable, TokenVariable}, tokenTypes(t, "notP forall_"))
}

func TestTokenizeReserved(t *testing.T) {
	assert.Equal(t,
		[]TokenType{TokenNot, TokenAnd, TokenOr, TokenForall, TokenExists},
		tokenTypes(t, "not and or forall exists"))
}

func TestTokenizeFloat(t *testing.T) {
	toks, err := Tokenize("3.141592653589 1.0e-5 -2 +7. 4E+2")
	require.NoError(t, err)
	want := []float64{3.141592653589, 1.0e-5, -2, 7, 400}
	require.Len(t, toks, len(want))
	for i, tok := range toks {
		assert.Equal(t, TokenFloat, tok.Type, "token %d", i)
		val, err := strconv.ParseFloat(tok.Text, 64)
		require.NoError(t, err)
		assert.InDelta(t, want[i], val, 1e-12)
	}
}

func TestTokenizeIncompleteExponent(t *testing.T) {
	toks, err := Tokenize("1e")
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, Token{Type: TokenFloat, Text: "1", Pos: Position{Offset: 0, Line: 1, Column: 1}}, toks[0])
	assert.Equal(t, TokenVariable, toks[1].Type)
}

func TestTokenizeOperators(t *testing.T) {
	assert.Equal(t,
		[]TokenType{TokenEquiv, TokenImply, TokenImply, TokenEquiv},
		tokenTypes(t, "<=>=>=><=>"))
	assert.Equal(t,
		[]TokenType{TokenConstant, TokenLParen, TokenVariable, TokenComma, TokenConstant, TokenRParen, TokenColon, TokenFloat},
		tokenTypes(t, "P(x, A) : 1.5"))
}

func TestTokenizePositions(t *testing.T) {
	toks, err := Tokenize("P(x)\n\t  and Q(y)")
	require.NoError(t, err)
	require.Len(t, toks, 9)
	assert.Equal(t, Position{Offset: 8, Line: 2, Column: 4}, toks[4].Pos)
	assert.Equal(t, "and", toks[4].Text)
	assert.Equal(t, Position{Offset: 12, Line: 2, Column: 8}, toks[5].Pos)
}

func TestTokenizeEmpty(t *testing.T) {
	toks, err := Tokenize(" \t\r\n")
	require.NoError(t, err)
	assert.Empty(t, toks)
}

func TestTokenizeError(t *testing.T) {
	for text, want := range map[string]LexError{
		"abcd;":       {Char: ';', Pos: Position{Offset: 4, Line: 1, Column: 5}},
		"P(x) & Q(x)": {Char: '&', Pos: Position{Offset: 5, Line: 1, Column: 6}},
		"x - y":       {Char: '-', Pos: Position{Offset: 2, Line: 1, Column: 3}},
		"P(x) = Q(x)": {Char: '=', Pos: Position{Offset: 5, Line: 1, Column: 6}},
		"\nÉté":       {Char: 'É', Pos: Position{Offset: 1, Line: 2, Column: 1}},
	} {
		_, err := Tokenize(text)
		var lexErr *LexError
		if assert.ErrorAs(t, err, &lexErr, "tokenizing %q", text) {
			assert.Equal(t, want, *lexErr, "tokenizing %q", text)
		}
	}
}
