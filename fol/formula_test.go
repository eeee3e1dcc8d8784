package fol

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) Formula {
	t.Helper()
	f, err := ParseFormula(text)
	require.NoError(t, err, "could not parse %q", text)
	return f
}

func TestEqual(t *testing.T) {
	P, Q := atom("P"), atom("Q")
	assert.True(t, Equal(And{L: P, R: Q}, And{L: P, R: Q}))
	assert.False(t, Equal(And{L: P, R: Q}, And{L: Q, R: P}))
	assert.False(t, Equal(And{L: P, R: Q}, Or{L: P, R: Q}))
	assert.False(t, Equal(Forall{Vars: []string{"x"}, F: P}, Exists{Vars: []string{"x"}, F: P}))
	assert.True(t, Equal(atom("P", Variable("x")), atom("P", Variable("x"))))
	assert.False(t, Equal(atom("P", Variable("x")), atom("P", Constant("x"))))
	assert.True(t, Equal(Atom{Pred: "P"}, Atom{Pred: "P", Args: []Term{}}))
}

func TestCompare(t *testing.T) {
	fs := []Formula{
		mustParse(t, "not P(x)"),
		mustParse(t, "Q(x)"),
		mustParse(t, "P(y)"),
		mustParse(t, "P(x) and Q(x)"),
		mustParse(t, "P(A)"),
		mustParse(t, "P(f(x))"),
	}
	sort.Slice(fs, func(i, j int) bool { return Compare(fs[i], fs[j]) < 0 })
	want := []string{"P(x) and Q(x)", "P(f(x))", "P(A)", "P(y)", "Q(x)", "not P(x)"}
	got := make([]string, len(fs))
	for i, f := range fs {
		got[i] = f.String()
	}
	assert.Equal(t, want, got)
	assert.Equal(t, 0, Compare(mustParse(t, "forall x P(x)"), mustParse(t, "forall x P(x)")))
	assert.Equal(t, -1, Compare(mustParse(t, "forall x P(x)"), mustParse(t, "forall y P(x)")))
}

func TestFreeVariables(t *testing.T) {
	for expr, want := range map[string][]string{
		"P()":                    {},
		"P(x, A)":                {"x"},
		"forall x P(x, y, f(z))": {"y", "z"},
		"P(x) and forall x Q(x)": {"x"},
		"exists x x P(x)":        {},
		"forall x (P(x) => exists y Q(x, y, w))": {"w"},
	} {
		assert.Equal(t, want, FreeVariables(mustParse(t, expr)), expr)
	}
}

func TestVariables(t *testing.T) {
	vars := Variables(mustParse(t, "forall x (P(f(y)) and exists z Q(A))"))
	assert.Equal(t, map[string]bool{"x": true, "y": true, "z": true}, vars)
}

func TestSize(t *testing.T) {
	assert.Equal(t, 1, Size(mustParse(t, "P(x)")))
	assert.Equal(t, 7, Size(mustParse(t, "forall x (not P(x) => Q(x) and R(x))")))
}

func TestIsLiteral(t *testing.T) {
	assert.True(t, IsLiteral(mustParse(t, "P(x)")))
	assert.True(t, IsLiteral(mustParse(t, "not P(x)")))
	assert.False(t, IsLiteral(mustParse(t, "not not P(x)")))
	assert.False(t, IsLiteral(mustParse(t, "P(x) or Q(x)")))
}
