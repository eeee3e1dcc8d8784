// Package normal translates first-order logic formulas into clausal normal forms.
//
// The translation is a sequence of six rewriting passes, each one relying on
// the invariants established by the previous ones:
//
//  1. RemoveArrows replaces implications and equivalences by and/or/not,
//  2. Uniquify renames every bound variable to a fresh name (x0, x1, ...),
//  3. MoveNegations pushes negations down to the atoms,
//  4. RemoveExists replaces each existential by the disjunction of its body
//     over every tuple of constants of the domain,
//  5. RemoveForall drops universal quantifiers, leaving their variables free,
//  6. Distribute builds the list of clauses, distributing "or" over "and" (CNF)
//     or "and" over "or" (DNF).
//
// Note that steps 4 and 6 can produce results exponentially larger than their input:
// an existential binding k variables over n constants yields n^k disjuncts, and each
// distribution can multiply the number of clauses. Options lets callers cap both,
// in which case a *LimitError is returned rather than allocating without bound.
//
// For instance, over the constants {A, B}, the formula
//
//	forall x (not Smokes(x) => exists y Friends(x, y))
//
// is translated to the single CNF clause
//
//	Smokes(x0) or Friends(x0,A) or Friends(x0,B)
package normal
