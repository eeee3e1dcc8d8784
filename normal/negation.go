package normal

import "github.com/crillab/gomln/fol"

// MoveNegations pushes negations of f down to the atoms, applying De Morgan's laws,
// removing double negations and swapping quantifiers under a negation.
// f must not contain any arrow. In the result, every Not node holds an Atom.
func MoveNegations(f fol.Formula) fol.Formula {
	switch f := f.(type) {
	case fol.Atom:
		return f
	case fol.Not:
		return negate(f.F)
	case fol.And:
		return fol.And{L: MoveNegations(f.L), R: MoveNegations(f.R)}
	case fol.Or:
		return fol.Or{L: MoveNegations(f.L), R: MoveNegations(f.R)}
	case fol.Forall:
		return fol.Forall{Vars: f.Vars, F: MoveNegations(f.F)}
	case fol.Exists:
		return fol.Exists{Vars: f.Vars, F: MoveNegations(f.F)}
	case fol.Imply, fol.Equiv:
		panic("unexpected arrow when moving negations")
	default:
		panic("invalid formula type")
	}
}

// negate returns the negation normal form of "not f".
func negate(f fol.Formula) fol.Formula {
	switch f := f.(type) {
	case fol.Atom:
		return fol.Not{F: f}
	case fol.Not:
		return MoveNegations(f.F)
	case fol.And:
		return fol.Or{L: negate(f.L), R: negate(f.R)}
	case fol.Or:
		return fol.And{L: negate(f.L), R: negate(f.R)}
	case fol.Forall:
		return fol.Exists{Vars: f.Vars, F: negate(f.F)}
	case fol.Exists:
		return fol.Forall{Vars: f.Vars, F: negate(f.F)}
	case fol.Imply, fol.Equiv:
		panic("unexpected arrow when moving negations")
	default:
		panic("invalid formula type")
	}
}
