package normal

import (
	"strconv"

	"github.com/crillab/gomln/fol"
)

// namer generates fresh variable names x0, x1, ...
// A namer belongs to a single translation and is never shared.
type namer struct {
	next  int
	taken map[string]bool // free variables of the translated formula
}

func newNamer(f fol.Formula) *namer {
	taken := make(map[string]bool)
	for _, x := range fol.FreeVariables(f) {
		taken[x] = true
	}
	return &namer{taken: taken}
}

func (n *namer) fresh() string {
	for {
		name := "x" + strconv.Itoa(n.next)
		n.next++
		if !n.taken[name] {
			return name
		}
	}
}

// Uniquify renames every variable bound by a quantifier of f to a fresh name,
// substituting it consistently in the scope of the quantifier only.
// Fresh names are x0, x1, ... in order of appearance, skipping the names of free variables,
// which are left unchanged. A variable listed twice by the same quantifier is only kept once.
func Uniquify(f fol.Formula) fol.Formula {
	return newNamer(f).uniquify(f, fol.Substitution{})
}

func (n *namer) uniquify(f fol.Formula, s fol.Substitution) fol.Formula {
	switch f := f.(type) {
	case fol.Atom:
		return fol.Substitute(f, s)
	case fol.Not:
		return fol.Not{F: n.uniquify(f.F, s)}
	case fol.And:
		return fol.And{L: n.uniquify(f.L, s), R: n.uniquify(f.R, s)}
	case fol.Or:
		return fol.Or{L: n.uniquify(f.L, s), R: n.uniquify(f.R, s)}
	case fol.Imply:
		return fol.Imply{L: n.uniquify(f.L, s), R: n.uniquify(f.R, s)}
	case fol.Equiv:
		return fol.Equiv{L: n.uniquify(f.L, s), R: n.uniquify(f.R, s)}
	case fol.Forall:
		xs, s := n.bind(f.Vars, s)
		return fol.Forall{Vars: xs, F: n.uniquify(f.F, s)}
	case fol.Exists:
		xs, s := n.bind(f.Vars, s)
		return fol.Exists{Vars: xs, F: n.uniquify(f.F, s)}
	default:
		panic("invalid formula type")
	}
}

// bind associates a fresh name to each distinct variable of xs.
// It returns the list of fresh names and the extended substitution.
func (n *namer) bind(xs []string, s fol.Substitution) ([]string, fol.Substitution) {
	seen := make(map[string]bool, len(xs))
	var vars []string
	var names []string
	var terms []fol.Term
	for _, x := range xs {
		if seen[x] {
			continue
		}
		seen[x] = true
		name := n.fresh()
		vars = append(vars, x)
		names = append(names, name)
		terms = append(terms, fol.Variable(name))
	}
	return names, s.Extend(vars, terms)
}
