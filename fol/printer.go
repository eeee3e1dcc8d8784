package fol

import (
	"strings"
)

// Priority levels of operators, from lowest to highest.
const (
	levelArrow = iota
	levelBinary
	levelPrimary
)

func level(f Formula) int {
	switch f.(type) {
	case Imply, Equiv:
		return levelArrow
	case And, Or:
		return levelBinary
	default:
		return levelPrimary
	}
}

// Print returns the textual representation of f.
// Parentheses are only added where the priority of operators requires them,
// so that ParseFormula(Print(f)) is always equal to f.
// Arguments are separated by a comma without any space, e.g "P(x,f(y))".
func Print(f Formula) string {
	var b strings.Builder
	writeFormula(&b, f, levelArrow)
	return b.String()
}

// writeFormula writes f on b, in a context expecting a formula of priority at least min.
func writeFormula(b *strings.Builder, f Formula, min int) {
	if level(f) < min {
		b.WriteByte('(')
		writeFormula(b, f, levelArrow)
		b.WriteByte(')')
		return
	}
	switch f := f.(type) {
	case Atom:
		b.WriteString(f.Pred)
		writeArgs(b, f.Args)
	case Not:
		b.WriteString("not ")
		writeFormula(b, f.F, levelPrimary)
	case And:
		writeBinary(b, f.L, " and ", f.R, levelBinary)
	case Or:
		writeBinary(b, f.L, " or ", f.R, levelBinary)
	case Imply:
		writeBinary(b, f.L, " => ", f.R, levelArrow)
	case Equiv:
		writeBinary(b, f.L, " <=> ", f.R, levelArrow)
	case Forall:
		writeQuantified(b, "forall", f.Vars, f.F)
	case Exists:
		writeQuantified(b, "exists", f.Vars, f.F)
	default:
		panic("invalid formula type")
	}
}

// writeBinary writes a binary operation of priority lvl.
// The left operand is always a secondary formula: and/or are left-associative,
// and arrows are not associative. The right operand needs a strictly higher priority.
func writeBinary(b *strings.Builder, l Formula, op string, r Formula, lvl int) {
	writeFormula(b, l, levelBinary)
	b.WriteString(op)
	writeFormula(b, r, lvl+1)
}

func writeQuantified(b *strings.Builder, quantifier string, xs []string, f Formula) {
	b.WriteString(quantifier)
	for _, x := range xs {
		b.WriteByte(' ')
		b.WriteString(x)
	}
	b.WriteByte(' ')
	writeFormula(b, f, levelPrimary)
}

func writeArgs(b *strings.Builder, args []Term) {
	b.WriteByte('(')
	for i, arg := range args {
		if i > 0 {
			b.WriteByte(',')
		}
		writeTerm(b, arg)
	}
	b.WriteByte(')')
}

func writeTerm(b *strings.Builder, t Term) {
	switch t := t.(type) {
	case Variable:
		b.WriteString(string(t))
	case Constant:
		b.WriteString(string(t))
	case Apply:
		b.WriteString(t.Fun)
		writeArgs(b, t.Args)
	default:
		panic("invalid term type")
	}
}
