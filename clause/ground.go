package clause

import (
	"fmt"
	"slices"

	"github.com/crillab/gomln/fol"
)

// Signatures associates each predicate with its arity.
type Signatures map[string]int

// Predicates returns the signatures of all predicates used in clauses.
// If a predicate is used with different arities, an *InvalidLogicalFormError is returned.
func Predicates(clauses []WeightedClause) (Signatures, error) {
	sigs := make(Signatures)
	for _, c := range clauses {
		for _, atom := range c.Literals {
			if err := sigs.add(atom); err != nil {
				return nil, err
			}
		}
	}
	return sigs, nil
}

func (s Signatures) add(atom fol.Atom) error {
	if arity, ok := s[atom.Pred]; ok && arity != len(atom.Args) {
		return &InvalidLogicalFormError{Predicate: atom.Pred, Arity: arity, Other: len(atom.Args)}
	}
	s[atom.Pred] = len(atom.Args)
	return nil
}

// Merge adds the signatures of other to s.
// If a predicate has different arities in both, an *InvalidLogicalFormError is returned.
func (s Signatures) Merge(other Signatures) error {
	for _, pred := range other.Names() {
		if arity, ok := s[pred]; ok && arity != other[pred] {
			return &InvalidLogicalFormError{Predicate: pred, Arity: arity, Other: other[pred]}
		}
		s[pred] = other[pred]
	}
	return nil
}

// Names returns the sorted list of predicate names.
func (s Signatures) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// GroundAtoms returns every ground atom that can be built from s over constants,
// by predicate name first, then by arguments in lexicographic order of their indices.
func (s Signatures) GroundAtoms(constants []string) []fol.Atom {
	var res []fol.Atom
	for _, pred := range s.Names() {
		tuples(constants, s[pred], func(tuple []string) {
			args := make([]fol.Term, len(tuple))
			for i, c := range tuple {
				args[i] = fol.Constant(c)
			}
			res = append(res, fol.Atom{Pred: pred, Args: args})
		})
	}
	return res
}

// GroundClauses grounds each clause over every assignment of its free variables to constants.
// Function applications are evaluated with funcs.
// Each ground clause keeps the weight of the clause it comes from.
func GroundClauses(clauses []WeightedClause, constants []string, funcs map[string]fol.Function) ([]WeightedClause, error) {
	var res []WeightedClause
	for _, c := range clauses {
		var err error
		tuples(constants, len(c.FreeVariables), func(tuple []string) {
			if err != nil {
				return
			}
			env := fol.Env{Vars: make(map[string]string, len(tuple)), Funcs: funcs}
			for i, x := range c.FreeVariables {
				env.Vars[x] = tuple[i]
			}
			g, gerr := groundClause(c, env, constants)
			if gerr != nil {
				err = gerr
				return
			}
			res = append(res, g)
		})
		if err != nil {
			return nil, fmt.Errorf("could not ground clause %s: %w", c.Formula(), err)
		}
	}
	return res, nil
}

func groundClause(c WeightedClause, env fol.Env, constants []string) (WeightedClause, error) {
	res := WeightedClause{
		Literals:      make([]fol.Atom, len(c.Literals)),
		Negations:     slices.Clone(c.Negations),
		FreeVariables: []string{},
		Weight:        c.Weight,
	}
	for i, atom := range c.Literals {
		g, err := fol.EvalAtom(env, constants, atom)
		if err != nil {
			return WeightedClause{}, err
		}
		res.Literals[i] = g
	}
	return res, nil
}

// tuples calls fn on every tuple of n constants, the last position varying fastest.
// fn must not keep a reference to its argument.
// When n is 0, fn is called once, with an empty tuple.
func tuples(constants []string, n int, fn func([]string)) {
	tuple := make([]string, n)
	if n > 0 && len(constants) == 0 {
		return
	}
	var rec func(i int)
	rec = func(i int) {
		if i == n {
			fn(tuple)
			return
		}
		for _, c := range constants {
			tuple[i] = c
			rec(i + 1)
		}
	}
	rec(0)
}
