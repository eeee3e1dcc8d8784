package normal

import "github.com/crillab/gomln/fol"

// RemoveArrows rewrites implications and equivalences of f:
// "a => b" becomes "not a or b" and "a <=> b" becomes "(not a or b) and (a or not b)".
// The result contains no Imply or Equiv node.
func RemoveArrows(f fol.Formula) fol.Formula {
	switch f := f.(type) {
	case fol.Atom:
		return f
	case fol.Not:
		return fol.Not{F: RemoveArrows(f.F)}
	case fol.And:
		return fol.And{L: RemoveArrows(f.L), R: RemoveArrows(f.R)}
	case fol.Or:
		return fol.Or{L: RemoveArrows(f.L), R: RemoveArrows(f.R)}
	case fol.Imply:
		return fol.Or{L: fol.Not{F: RemoveArrows(f.L)}, R: RemoveArrows(f.R)}
	case fol.Equiv:
		l, r := RemoveArrows(f.L), RemoveArrows(f.R)
		return fol.And{
			L: fol.Or{L: fol.Not{F: l}, R: r},
			R: fol.Or{L: l, R: fol.Not{F: r}},
		}
	case fol.Forall:
		return fol.Forall{Vars: f.Vars, F: RemoveArrows(f.F)}
	case fol.Exists:
		return fol.Exists{Vars: f.Vars, F: RemoveArrows(f.F)}
	default:
		panic("invalid formula type")
	}
}
