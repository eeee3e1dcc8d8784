package normal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crillab/gomln/fol"
)

func mustParse(t *testing.T, text string) fol.Formula {
	t.Helper()
	f, err := fol.ParseFormula(text)
	require.NoError(t, err, "could not parse %q", text)
	return f
}

// assertFormula checks that got is structurally equal to the formula described by want.
func assertFormula(t *testing.T, want string, got fol.Formula) {
	t.Helper()
	w := mustParse(t, want)
	assert.True(t, fol.Equal(w, got), "expected %s, got %s", fol.Print(w), fol.Print(got))
}

func TestRemoveArrows(t *testing.T) {
	for expr, want := range map[string]string{
		"P() => Q()":            "not P() or Q()",
		"not (P() => Q())":      "not (not P() or Q())",
		"forall x (P() => Q())": "forall x (not P() or Q())",
		"exists x (P() => Q())": "exists x (not P() or Q())",
		"P() <=> Q()":           "(not P() or Q()) and (P() or not Q())",
		"P() and Q()":           "P() and Q()",
		"(P() => Q()) <=> R()":  "(not (not P() or Q()) or R()) and ((not P() or Q()) or not R())",
	} {
		t.Run(expr, func(t *testing.T) {
			assertFormula(t, want, RemoveArrows(mustParse(t, expr)))
		})
	}
}

func TestUniquify(t *testing.T) {
	for expr, want := range map[string]string{
		"forall x P(x)":                           "forall x0 P(x0)",
		"exists x P(x)":                           "exists x0 P(x0)",
		"forall x y P(x, y)":                      "forall x0 x1 P(x0, x1)",
		"forall x y P(x, y) and exists z Q(z)":    "forall x0 x1 P(x0, x1) and exists x2 Q(x2)",
		"forall x y P(x, A, y)":                   "forall x0 x1 P(x0, A, x1)",
		"forall x exists y P(x, y)":               "forall x0 exists x1 P(x0, x1)",
		"forall x P(f(x))":                        "forall x0 P(f(x0))",
		"forall x P(x) and forall x Q(x)":         "forall x0 P(x0) and forall x1 Q(x1)",
		"forall x (P(x) and exists x Q(x))":       "forall x0 (P(x0) and exists x1 Q(x1))",
		"P(y) and forall x Q(x, y)":               "P(y) and forall x0 Q(x0, y)",
		"P(x0) and forall x Q(x)":                 "P(x0) and forall x1 Q(x1)",
		"forall x1 exists x0 P(x1, x0)":           "forall x0 exists x1 P(x0, x1)",
		"forall x x P(x)":                         "forall x0 P(x0)",
		"not forall x (P(x) => exists y Q(x, y))": "not forall x0 (P(x0) => exists x1 Q(x0, x1))",
	} {
		t.Run(expr, func(t *testing.T) {
			assertFormula(t, want, Uniquify(mustParse(t, expr)))
		})
	}
}

func TestUniquifyCounterIsPerCall(t *testing.T) {
	f := mustParse(t, "forall x P(x)")
	first, second := Uniquify(f), Uniquify(f)
	assert.True(t, fol.Equal(first, second))
	assertFormula(t, "forall x0 P(x0)", second)
}

func TestMoveNegations(t *testing.T) {
	for expr, want := range map[string]string{
		"not P()":                    "not P()",
		"not not P()":                "P()",
		"not not not P()":            "not P()",
		"not (P() and Q())":          "not P() or not Q()",
		"not (P() or Q())":           "not P() and not Q()",
		"not forall x P(x)":          "exists x not P(x)",
		"not exists x P(x)":          "forall x not P(x)",
		"not forall x exists y P(x)": "exists x forall y not P(x)",
		"P() and not (Q() or R())":   "P() and (not Q() and not R())",
		"forall x not not P(x)":      "forall x P(x)",
	} {
		t.Run(expr, func(t *testing.T) {
			assertFormula(t, want, MoveNegations(mustParse(t, expr)))
		})
	}
}

func TestMoveNegationsPanicsOnArrows(t *testing.T) {
	assert.Panics(t, func() { MoveNegations(mustParse(t, "P() => Q()")) })
	assert.Panics(t, func() { MoveNegations(mustParse(t, "not (P() <=> Q())")) })
}

func TestRemoveExists(t *testing.T) {
	constants := []string{"A", "B"}
	for expr, want := range map[string]string{
		"exists x P(x)":                     "P(A) or P(B)",
		"exists x not P(x)":                 "not P(A) or not P(B)",
		"exists x (P(x) and Q(x))":          "(P(A) and Q(A)) or (P(B) and Q(B))",
		"exists x (P(x) or Q(x))":           "(P(A) or Q(A)) or (P(B) or Q(B))",
		"exists x y P(x, y)":                "P(A,A) or P(A,B) or P(B,A) or P(B,B)",
		"exists x P(f(x, y))":               "P(f(A, y)) or P(f(B, y))",
		"forall x exists y P(x, y)":         "forall x (P(x, A) or P(x, B))",
		"exists x exists y P(x, y)":         "(P(A,A) or P(A,B)) or (P(B,A) or P(B,B))",
		"P(x) and exists y Q(y)":            "P(x) and (Q(A) or Q(B))",
		"exists x (P(x) and forall x Q(x))": "(P(A) and forall x Q(x)) or (P(B) and forall x Q(x))",
	} {
		t.Run(expr, func(t *testing.T) {
			got, err := RemoveExists(mustParse(t, expr), constants, nil)
			require.NoError(t, err)
			assertFormula(t, want, got)
		})
	}
}

func TestRemoveExistsEmptyDomain(t *testing.T) {
	_, err := RemoveExists(mustParse(t, "forall x exists y P(x, y)"), nil, nil)
	assert.ErrorIs(t, err, ErrEmptyDomain)
	got, err := RemoveExists(mustParse(t, "forall x P(x)"), nil, nil)
	require.NoError(t, err)
	assertFormula(t, "forall x P(x)", got)
}

func TestRemoveExistsCount(t *testing.T) {
	domain := []string{"A", "B", "C", "D"}
	for n := 1; n <= len(domain); n++ {
		for k := 1; k <= 3; k++ {
			xs := []string{"x", "y", "z"}[:k]
			args := make([]fol.Term, k)
			for i, x := range xs {
				args[i] = fol.Variable(x)
			}
			f := fol.Exists{Vars: xs, F: fol.Atom{Pred: "P", Args: args}}
			got, err := RemoveExists(f, domain[:n], nil)
			require.NoError(t, err)
			want := 1
			for range k {
				want *= n
			}
			assert.Equal(t, want, countDisjuncts(got), "n=%d, k=%d", n, k)
		}
	}
}

// countDisjuncts returns the number of operands of the top-level disjunctions of f.
func countDisjuncts(f fol.Formula) int {
	if or, ok := f.(fol.Or); ok {
		return countDisjuncts(or.L) + countDisjuncts(or.R)
	}
	return 1
}

func TestRemoveForall(t *testing.T) {
	for expr, want := range map[string]string{
		"forall x P(x)":                   "P(x)",
		"forall x forall y P(x,y)":        "P(x, y)",
		"forall x P(x) and forall y Q(y)": "P(x) and Q(y)",
		"forall x P(x) or forall y Q(y)":  "P(x) or Q(y)",
		"not P(x)":                        "not P(x)",
	} {
		t.Run(expr, func(t *testing.T) {
			assertFormula(t, want, RemoveForall(mustParse(t, expr)))
		})
	}
	assert.Panics(t, func() { RemoveForall(mustParse(t, "exists x P(x)")) })
}

func TestDistribute(t *testing.T) {
	tests := []struct {
		expr string
		form Form
		want [][]string
	}{
		{"P(x)", CNF, [][]string{{"P(x)"}}},
		{"P(x) or Q(y)", CNF, [][]string{{"P(x)", "Q(y)"}}},
		{"P(x) and Q(y)", CNF, [][]string{{"P(x)"}, {"Q(y)"}}},
		{"(P(x) and Q(y)) or R(x)", CNF, [][]string{{"P(x)", "R(x)"}, {"Q(y)", "R(x)"}}},
		{"P(x) or (Q(y) and R(x))", CNF, [][]string{{"P(x)", "Q(y)"}, {"P(x)", "R(x)"}}},
		{"P(x)", DNF, [][]string{{"P(x)"}}},
		{"P(x) or Q(y)", DNF, [][]string{{"P(x)"}, {"Q(y)"}}},
		{"P(x) and Q(y)", DNF, [][]string{{"P(x)", "Q(y)"}}},
		{"(P(x) or Q(y)) and R(x)", DNF, [][]string{{"P(x)", "R(x)"}, {"Q(y)", "R(x)"}}},
		{"P(x) and (Q(y) or R(x))", DNF, [][]string{{"P(x)", "Q(y)"}, {"P(x)", "R(x)"}}},
		{"not P(x) or not Q(x)", CNF, [][]string{{"not P(x)", "not Q(x)"}}},
		{"(P() and Q()) or (R() and S())", CNF, [][]string{{"P()", "R()"}, {"P()", "S()"}, {"Q()", "R()"}, {"Q()", "S()"}}},
	}
	for _, tt := range tests {
		t.Run(tt.form.String()+" "+tt.expr, func(t *testing.T) {
			got, err := Distribute(mustParse(t, tt.expr), tt.form, nil)
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for i, c := range got {
				require.Len(t, c, len(tt.want[i]), "clause %d", i)
				for j, lit := range c {
					assertFormula(t, tt.want[i][j], lit)
				}
			}
		})
	}
}

func TestDistributePanics(t *testing.T) {
	assert.Panics(t, func() { Distribute(mustParse(t, "forall x P(x)"), CNF, nil) })
	assert.Panics(t, func() { Distribute(mustParse(t, "not (P() and Q())"), CNF, nil) })
	assert.Panics(t, func() { Distribute(mustParse(t, "P() => Q()"), DNF, nil) })
}
