package fol

import (
	"cmp"
	"slices"
	"sort"
)

// A Formula is a first-order logic formula.
// The only implementations are Atom, Not, And, Or, Imply, Equiv, Forall and Exists;
// formulas are immutable values and rewriting one always builds a new tree.
type Formula interface {
	String() string
	formula()
}

// Atom is a predicate applied to a list of terms, such as Smokes(x).
type Atom struct {
	Pred string
	Args []Term
}

// Not is the negation of a subformula.
type Not struct {
	F Formula
}

// And is the conjunction of two subformulas.
type And struct {
	L, R Formula
}

// Or is the disjunction of two subformulas.
type Or struct {
	L, R Formula
}

// Imply indicates L implies R.
type Imply struct {
	L, R Formula
}

// Equiv indicates L and R are equivalent.
type Equiv struct {
	L, R Formula
}

// Forall universally quantifies Vars in F.
type Forall struct {
	Vars []string
	F    Formula
}

// Exists existentially quantifies Vars in F.
type Exists struct {
	Vars []string
	F    Formula
}

func (Atom) formula()   {}
func (Not) formula()    {}
func (And) formula()    {}
func (Or) formula()     {}
func (Imply) formula()  {}
func (Equiv) formula()  {}
func (Forall) formula() {}
func (Exists) formula() {}

func (f Atom) String() string   { return Print(f) }
func (f Not) String() string    { return Print(f) }
func (f And) String() string    { return Print(f) }
func (f Or) String() string     { return Print(f) }
func (f Imply) String() string  { return Print(f) }
func (f Equiv) String() string  { return Print(f) }
func (f Forall) String() string { return Print(f) }
func (f Exists) String() string { return Print(f) }

// IsLiteral indicates whether f is an atom or the negation of an atom.
func IsLiteral(f Formula) bool {
	switch f := f.(type) {
	case Atom:
		return true
	case Not:
		_, ok := f.F.(Atom)
		return ok
	default:
		return false
	}
}

func kind(f Formula) string {
	switch f.(type) {
	case And:
		return "And"
	case Atom:
		return "Atom"
	case Equiv:
		return "Equiv"
	case Exists:
		return "Exists"
	case Forall:
		return "Forall"
	case Imply:
		return "Imply"
	case Not:
		return "Not"
	case Or:
		return "Or"
	default:
		panic("invalid formula type")
	}
}

// Compare returns an integer comparing two formulas.
// Formulas are ordered by the name of their kind first, then field by field.
// The result is 0 if a and b are structurally equal.
func Compare(a, b Formula) int {
	if c := cmp.Compare(kind(a), kind(b)); c != 0 {
		return c
	}
	switch a := a.(type) {
	case Atom:
		b := b.(Atom)
		if c := cmp.Compare(a.Pred, b.Pred); c != 0 {
			return c
		}
		return slices.CompareFunc(a.Args, b.Args, CompareTerms)
	case Not:
		return Compare(a.F, b.(Not).F)
	case And:
		b := b.(And)
		return compareBinary(a.L, a.R, b.L, b.R)
	case Or:
		b := b.(Or)
		return compareBinary(a.L, a.R, b.L, b.R)
	case Imply:
		b := b.(Imply)
		return compareBinary(a.L, a.R, b.L, b.R)
	case Equiv:
		b := b.(Equiv)
		return compareBinary(a.L, a.R, b.L, b.R)
	case Forall:
		b := b.(Forall)
		if c := slices.Compare(a.Vars, b.Vars); c != 0 {
			return c
		}
		return Compare(a.F, b.F)
	case Exists:
		b := b.(Exists)
		if c := slices.Compare(a.Vars, b.Vars); c != 0 {
			return c
		}
		return Compare(a.F, b.F)
	default:
		panic("invalid formula type")
	}
}

func compareBinary(l1, r1, l2, r2 Formula) int {
	if c := Compare(l1, l2); c != 0 {
		return c
	}
	return Compare(r1, r2)
}

// Equal indicates whether a and b are structurally equal.
// Two formulas are equal only if they are of the same kind and hold equal fields.
func Equal(a, b Formula) bool {
	return Compare(a, b) == 0
}

// Variables returns the set of all variable names appearing in f,
// be they free, bound, or only listed by a quantifier.
func Variables(f Formula) map[string]bool {
	vars := make(map[string]bool)
	walk(f, func(f Formula) {
		switch f := f.(type) {
		case Atom:
			for _, arg := range f.Args {
				termVariables(arg, vars)
			}
		case Forall:
			for _, x := range f.Vars {
				vars[x] = true
			}
		case Exists:
			for _, x := range f.Vars {
				vars[x] = true
			}
		}
	})
	return vars
}

// FreeVariables returns, in increasing order, the names of the variables of f
// that are not bound by any enclosing quantifier.
func FreeVariables(f Formula) []string {
	free := make(map[string]bool)
	freeRec(f, make(map[string]int), free)
	res := make([]string, 0, len(free))
	for x := range free {
		res = append(res, x)
	}
	sort.Strings(res)
	return res
}

func freeRec(f Formula, bound map[string]int, free map[string]bool) {
	switch f := f.(type) {
	case Atom:
		vars := make(map[string]bool)
		for _, arg := range f.Args {
			termVariables(arg, vars)
		}
		for x := range vars {
			if bound[x] == 0 {
				free[x] = true
			}
		}
	case Not:
		freeRec(f.F, bound, free)
	case And:
		freeRec(f.L, bound, free)
		freeRec(f.R, bound, free)
	case Or:
		freeRec(f.L, bound, free)
		freeRec(f.R, bound, free)
	case Imply:
		freeRec(f.L, bound, free)
		freeRec(f.R, bound, free)
	case Equiv:
		freeRec(f.L, bound, free)
		freeRec(f.R, bound, free)
	case Forall:
		freeQuantified(f.Vars, f.F, bound, free)
	case Exists:
		freeQuantified(f.Vars, f.F, bound, free)
	default:
		panic("invalid formula type")
	}
}

func freeQuantified(xs []string, body Formula, bound map[string]int, free map[string]bool) {
	for _, x := range xs {
		bound[x]++
	}
	freeRec(body, bound, free)
	for _, x := range xs {
		bound[x]--
	}
}

// Size returns the number of nodes in f, not counting terms.
func Size(f Formula) int {
	n := 0
	walk(f, func(Formula) { n++ })
	return n
}

// walk calls fn on f and each of its subformulas, in prefix order.
func walk(f Formula, fn func(Formula)) {
	fn(f)
	switch f := f.(type) {
	case Atom:
	case Not:
		walk(f.F, fn)
	case And:
		walk(f.L, fn)
		walk(f.R, fn)
	case Or:
		walk(f.L, fn)
		walk(f.R, fn)
	case Imply:
		walk(f.L, fn)
		walk(f.R, fn)
	case Equiv:
		walk(f.L, fn)
		walk(f.R, fn)
	case Forall:
		walk(f.F, fn)
	case Exists:
		walk(f.F, fn)
	default:
		panic("invalid formula type")
	}
}
