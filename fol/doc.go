// Package fol offers a representation of first-order logic formulas, as used to describe
// Markov Logic Networks, along with a lexer, a parser and a printer for their textual syntax.
//
// A term is either a variable (an identifier starting with a lowercase letter),
// a constant (an identifier starting with an uppercase letter) or the application
// of a function to a list of terms, such as f(x, A).
//
// Formulas are built from atoms (a predicate, whose name starts with an uppercase letter,
// applied to terms) and the following operators, from lowest to highest priority:
//
// - "=>" (implication) and "<=>" (equivalence), which are not associative,
// - "and" and "or", which are left-associative and share the same priority,
// - "not" and the quantifiers "forall" and "exists", followed by a list of variables.
//
// Parentheses can be used to group subformulas. For instance, the formula
//
//	forall x y (Friends(x, y) => (Smokes(x) <=> Smokes(y)))
//
// is parsed by ParseFormula into
//
//	Forall{Vars: []string{"x", "y"}, F: Imply{
//		L: Atom{Pred: "Friends", Args: []Term{Variable("x"), Variable("y")}},
//		R: Equiv{L: Atom{Pred: "Smokes", ...}, R: Atom{Pred: "Smokes", ...}}}}
//
// An MLN file is a sequence of formulas, each optionally followed by a colon and a weight:
//
//	forall x (Smokes(x) => Cancer(x)) : 1.5
//	forall x y (Friends(x, y) => (Smokes(x) <=> Smokes(y))) : 1.1
//
// Printing a formula with Print (or its String method) and parsing the result
// always gives back an equal formula.
package fol
