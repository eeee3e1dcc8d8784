package fol

// A Substitution maps variable names to terms.
// It is built once and never modified afterwards: Extend returns a new substitution.
// When a name is bound several times, the latest binding wins.
type Substitution struct {
	vars  []string
	terms []Term
}

// NewSubstitution returns the substitution binding each vars[i] to terms[i].
// It panics if both slices don't have the same length.
func NewSubstitution(vars []string, terms []Term) Substitution {
	return Substitution{}.Extend(vars, terms)
}

// Extend returns a copy of s where each vars[i] is bound to terms[i].
func (s Substitution) Extend(vars []string, terms []Term) Substitution {
	if len(vars) != len(terms) {
		panic("substitution: mismatched number of variables and terms")
	}
	res := Substitution{
		vars:  make([]string, 0, len(s.vars)+len(vars)),
		terms: make([]Term, 0, len(s.terms)+len(terms)),
	}
	res.vars = append(append(res.vars, s.vars...), vars...)
	res.terms = append(append(res.terms, s.terms...), terms...)
	return res
}

// Lookup returns the term bound to the variable x, if any.
func (s Substitution) Lookup(x string) (Term, bool) {
	for i := len(s.vars) - 1; i >= 0; i-- {
		if s.vars[i] == x {
			return s.terms[i], true
		}
	}
	return nil, false
}

// SubstituteTerm replaces in t every variable bound by s, including in nested function applications.
func SubstituteTerm(t Term, s Substitution) Term {
	switch t := t.(type) {
	case Variable:
		if t2, ok := s.Lookup(string(t)); ok {
			return t2
		}
		return t
	case Constant:
		return t
	case Apply:
		return Apply{Fun: t.Fun, Args: substituteArgs(t.Args, s)}
	default:
		panic("invalid term type")
	}
}

func substituteArgs(args []Term, s Substitution) []Term {
	res := make([]Term, len(args))
	for i, arg := range args {
		res[i] = SubstituteTerm(arg, s)
	}
	return res
}

// Substitute replaces in f every free occurrence of a variable bound by s.
// Variables bound by a quantifier inside f are left untouched in its scope.
func Substitute(f Formula, s Substitution) Formula {
	switch f := f.(type) {
	case Atom:
		return Atom{Pred: f.Pred, Args: substituteArgs(f.Args, s)}
	case Not:
		return Not{F: Substitute(f.F, s)}
	case And:
		return And{L: Substitute(f.L, s), R: Substitute(f.R, s)}
	case Or:
		return Or{L: Substitute(f.L, s), R: Substitute(f.R, s)}
	case Imply:
		return Imply{L: Substitute(f.L, s), R: Substitute(f.R, s)}
	case Equiv:
		return Equiv{L: Substitute(f.L, s), R: Substitute(f.R, s)}
	case Forall:
		return Forall{Vars: f.Vars, F: Substitute(f.F, s.shadow(f.Vars))}
	case Exists:
		return Exists{Vars: f.Vars, F: Substitute(f.F, s.shadow(f.Vars))}
	default:
		panic("invalid formula type")
	}
}

// shadow returns s where each of xs is bound to itself.
func (s Substitution) shadow(xs []string) Substitution {
	terms := make([]Term, len(xs))
	for i, x := range xs {
		terms[i] = Variable(x)
	}
	return s.Extend(xs, terms)
}
