package fol

import (
	"cmp"
	"slices"
	"strings"
)

// A Term is a variable, a constant or the application of a function to a list of terms.
// The only implementations are Variable, Constant and Apply.
type Term interface {
	String() string
	term()
}

// Variable is a variable term. Its name starts with a lowercase letter.
type Variable string

func (v Variable) term()          {}
func (v Variable) String() string { return string(v) }

// Constant is a constant term. Its name starts with an uppercase letter.
type Constant string

func (c Constant) term()          {}
func (c Constant) String() string { return string(c) }

// Apply is the application of the function Fun to Args.
// The arity of a function is not declared, it is implied by each call site.
type Apply struct {
	Fun  string
	Args []Term
}

func (a Apply) term() {}

func (a Apply) String() string {
	var b strings.Builder
	writeTerm(&b, a)
	return b.String()
}

func termKind(t Term) string {
	switch t.(type) {
	case Apply:
		return "Apply"
	case Constant:
		return "Constant"
	case Variable:
		return "Variable"
	default:
		panic("invalid term type")
	}
}

// CompareTerms returns an integer comparing two terms.
// Terms are ordered by kind first, then by name, then by arguments.
// The result is 0 if a and b are structurally equal.
func CompareTerms(a, b Term) int {
	if c := cmp.Compare(termKind(a), termKind(b)); c != 0 {
		return c
	}
	switch a := a.(type) {
	case Variable:
		return cmp.Compare(a, b.(Variable))
	case Constant:
		return cmp.Compare(a, b.(Constant))
	case Apply:
		b := b.(Apply)
		if c := cmp.Compare(a.Fun, b.Fun); c != 0 {
			return c
		}
		return slices.CompareFunc(a.Args, b.Args, CompareTerms)
	default:
		panic("invalid term type")
	}
}

// EqualTerms indicates whether a and b are structurally equal.
func EqualTerms(a, b Term) bool {
	return CompareTerms(a, b) == 0
}

// termVariables adds the name of each variable appearing in t to vars,
// including those nested in function applications.
func termVariables(t Term, vars map[string]bool) {
	switch t := t.(type) {
	case Variable:
		vars[string(t)] = true
	case Constant:
	case Apply:
		for _, arg := range t.Args {
			termVariables(arg, vars)
		}
	default:
		panic("invalid term type")
	}
}
