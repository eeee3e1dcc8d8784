package fol

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseTerm(t *testing.T, text string) Term {
	t.Helper()
	term, err := ParseTerm(text)
	require.NoError(t, err)
	return term
}

func TestSubstituteTerm(t *testing.T) {
	s := NewSubstitution([]string{"x"}, []Term{Constant("A")})
	assert.Equal(t, "A", SubstituteTerm(mustParseTerm(t, "x"), s).String())
	assert.Equal(t, "B", SubstituteTerm(mustParseTerm(t, "B"), s).String())
	assert.Equal(t, "f(A,g(A,y))", SubstituteTerm(mustParseTerm(t, "f(x,g(x,y))"), s).String())
}

func TestSubstitute(t *testing.T) {
	s := NewSubstitution([]string{"x", "y"}, []Term{Constant("A"), Constant("B")})
	for expr, want := range map[string]string{
		"P(x)":                     "P(A)",
		"not P(x)":                 "not P(A)",
		"P(x) and Q(y)":            "P(A) and Q(B)",
		"P(x) or Q(y)":             "P(A) or Q(B)",
		"P(x) => Q(f(y))":          "P(A) => Q(f(B))",
		"forall x P(x, y)":         "forall x P(x,B)",
		"exists z P(x, z)":         "exists z P(A,z)",
		"(forall y P(y)) <=> P(y)": "forall y P(y) <=> P(B)",
	} {
		assert.Equal(t, want, Substitute(mustParse(t, expr), s).String(), expr)
	}
}

func TestSubstitutionExtend(t *testing.T) {
	s := NewSubstitution([]string{"x"}, []Term{Constant("A")})
	s2 := s.Extend([]string{"x", "y"}, []Term{Constant("B"), Variable("z")})
	v, ok := s.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, Constant("A"), v)
	v, ok = s2.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, Constant("B"), v)
	_, ok = s.Lookup("y")
	assert.False(t, ok)
	assert.Panics(t, func() { NewSubstitution([]string{"x"}, nil) })
}

func TestEvalTerm(t *testing.T) {
	constants := []string{"A"}
	v, err := EvalTerm(Env{Vars: map[string]string{"x": "A"}}, constants, mustParseTerm(t, "x"))
	require.NoError(t, err)
	assert.Equal(t, "A", v)

	v, err = EvalTerm(Env{Funcs: map[string]Function{
		"f": func(args ...string) (string, error) { return "A", nil },
	}}, constants, mustParseTerm(t, "f()"))
	require.NoError(t, err)
	assert.Equal(t, "A", v)

	v, err = EvalTerm(Env{Funcs: map[string]Function{
		"f": func(args ...string) (string, error) { return args[0], nil },
	}}, constants, mustParseTerm(t, "f(A)"))
	require.NoError(t, err)
	assert.Equal(t, "A", v)

	v, err = EvalTerm(Env{}, constants, mustParseTerm(t, "Bob"))
	require.NoError(t, err)
	assert.Equal(t, "Bob", v)
}

func TestEvalTermError(t *testing.T) {
	constants := []string{"A"}
	failing := func(args ...string) (string, error) { return "", errors.New("boom") }
	tests := []struct {
		name string
		env  Env
		term string
	}{
		{"non constant value", Env{Vars: map[string]string{"x": "y"}}, "x"},
		{"constant out of domain", Env{Vars: map[string]string{"x": "B"}}, "x"},
		{"unbound variable", Env{}, "x"},
		{"unknown function", Env{}, "f(A)"},
		{"failing function", Env{Funcs: map[string]Function{"f": failing}}, "f(A)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EvalTerm(tt.env, constants, mustParseTerm(t, tt.term))
			var evalErr *EvaluationError
			assert.ErrorAs(t, err, &evalErr)
		})
	}
}

func TestEvalAtom(t *testing.T) {
	env := Env{
		Vars:  map[string]string{"x": "Anna", "y": "Bob"},
		Funcs: map[string]Function{"bestFriend": func(args ...string) (string, error) { return "Bob", nil }},
	}
	constants := []string{"Anna", "Bob"}
	a, err := EvalAtom(env, constants, mustParse(t, "Friends(x, bestFriend(x))").(Atom))
	require.NoError(t, err)
	assert.Equal(t, "Friends(Anna,Bob)", a.String())

	_, err = EvalAtom(env, constants, mustParse(t, "Friends(x, z)").(Atom))
	var evalErr *EvaluationError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, Variable("z"), evalErr.Term)
}

func TestIsConstantName(t *testing.T) {
	assert.True(t, IsConstantName("Anna"))
	assert.True(t, IsConstantName("B_2"))
	assert.False(t, IsConstantName("anna"))
	assert.False(t, IsConstantName(" Anna"))
	assert.False(t, IsConstantName("A B"))
	assert.False(t, IsConstantName(""))
	assert.False(t, IsConstantName("A;"))
}
