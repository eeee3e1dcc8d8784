// Package clause encodes normalized formulas as weighted clauses, the input of MLN inference.
//
// A weighted clause is a disjunction of literals, each literal being an atom with a negation flag.
// When a formula of weight w is translated into k clauses, each of them receives the weight w/k,
// so that the total weight of the formula is conserved.
package clause

import (
	"fmt"
	"slices"
	"strings"

	"github.com/crillab/gomln/fol"
	"github.com/crillab/gomln/normal"
)

// A WeightedClause is a disjunction of literals, along with a weight.
// Literals and Negations have the same length: Negations[i] is true iff
// the i-th literal is the negation of Literals[i].
// FreeVariables is the sorted list of variables appearing in the literals,
// including inside function applications. It is empty for a ground clause.
type WeightedClause struct {
	Literals      []fol.Atom
	Negations     []bool
	FreeVariables []string
	Weight        float64
}

// Formula returns the clause as a disjunction of literals.
func (c WeightedClause) Formula() fol.Formula {
	var res fol.Formula
	for i, atom := range c.Literals {
		var lit fol.Formula = atom
		if c.Negations[i] {
			lit = fol.Not{F: atom}
		}
		if res == nil {
			res = lit
		} else {
			res = fol.Or{L: res, R: lit}
		}
	}
	return res
}

func (c WeightedClause) String() string {
	return fol.Entry{Formula: c.Formula(), Weight: c.Weight}.String()
}

// IsGround indicates whether the clause contains no variable.
func (c WeightedClause) IsGround() bool {
	return len(c.FreeVariables) == 0
}

// An InvalidLogicalFormError is returned when a predicate is used with different arities.
type InvalidLogicalFormError struct {
	Predicate string
	Arity     int // Arity of the first occurrence
	Other     int // Conflicting arity
}

func (e *InvalidLogicalFormError) Error() string {
	return fmt.Sprintf("arity of %s mismatch: used with %d and %d arguments", e.Predicate, e.Arity, e.Other)
}

// Encode returns the weighted clause made of the given literals.
// It panics if one of them is not a literal.
func Encode(literals normal.Clause, weight float64) WeightedClause {
	res := WeightedClause{
		Literals:  make([]fol.Atom, len(literals)),
		Negations: make([]bool, len(literals)),
		Weight:    weight,
	}
	vars := make(map[string]bool)
	for i, lit := range literals {
		switch lit := lit.(type) {
		case fol.Atom:
			res.Literals[i] = lit
		case fol.Not:
			atom, ok := lit.F.(fol.Atom)
			if !ok {
				panic("invalid literal")
			}
			res.Literals[i] = atom
			res.Negations[i] = true
		default:
			panic("invalid literal")
		}
		for _, x := range fol.FreeVariables(res.Literals[i]) {
			vars[x] = true
		}
	}
	res.FreeVariables = make([]string, 0, len(vars))
	for x := range vars {
		res.FreeVariables = append(res.FreeVariables, x)
	}
	slices.Sort(res.FreeVariables)
	return res
}

// EncodeAll encodes each clause with weight/len(clauses), so that the sum of their weights is weight.
// All predicates must be used with a consistent arity, else an *InvalidLogicalFormError is returned.
func EncodeAll(clauses []normal.Clause, weight float64) ([]WeightedClause, error) {
	res := make([]WeightedClause, len(clauses))
	w := weight / float64(len(clauses))
	for i, c := range clauses {
		res[i] = Encode(c, w)
	}
	if _, err := Predicates(res); err != nil {
		return nil, err
	}
	return res, nil
}

// Translate translates f into CNF over the given constants, and encodes the resulting clauses
// with weight as the total weight.
func Translate(f fol.Formula, weight float64, constants []string, opts *normal.Options) ([]WeightedClause, error) {
	nf, err := normal.Translate(f, constants, normal.CNF, opts)
	if err != nil {
		return nil, err
	}
	return EncodeAll(nf.Clauses, weight)
}

// Print returns the textual representation of clauses, one per line.
func Print(clauses []WeightedClause) string {
	var b strings.Builder
	for _, c := range clauses {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	return b.String()
}
