package normal

import (
	"math"

	"github.com/crillab/gomln/fol"
)

// RemoveExists replaces each existential "exists x1 ... xk F" of f by the disjunction,
// left to right, of F where (x1, ..., xk) is substituted by each tuple of constants, in
// lexicographic order of their indices in constants. There are len(constants)^k such tuples.
// f must be in negation normal form.
//
// Nested existentials are grounded from the inside out, so an existential copies the
// groundings of its body once per tuple. If constants is empty, ErrEmptyDomain is returned;
// if the groundings needed by an existential, nested ones included, exceed
// opts.MaxGroundings, a *LimitError is returned before the expansion happens.
func RemoveExists(f fol.Formula, constants []string, opts *Options) (fol.Formula, error) {
	res, _, err := removeExists(f, constants, opts.maxGroundings())
	return res, err
}

// removeExists also returns the number of groundings the result holds.
func removeExists(f fol.Formula, constants []string, limit int) (fol.Formula, int, error) {
	switch f := f.(type) {
	case fol.Atom, fol.Not:
		return f, 0, nil
	case fol.And:
		l, r, n, err := removeExistsBoth(f.L, f.R, constants, limit)
		if err != nil {
			return nil, 0, err
		}
		return fol.And{L: l, R: r}, n, nil
	case fol.Or:
		l, r, n, err := removeExistsBoth(f.L, f.R, constants, limit)
		if err != nil {
			return nil, 0, err
		}
		return fol.Or{L: l, R: r}, n, nil
	case fol.Forall:
		body, n, err := removeExists(f.F, constants, limit)
		if err != nil {
			return nil, 0, err
		}
		return fol.Forall{Vars: f.Vars, F: body}, n, nil
	case fol.Exists:
		body, n, err := removeExists(f.F, constants, limit)
		if err != nil {
			return nil, 0, err
		}
		return ground(f.Vars, body, n, constants, limit)
	case fol.Imply, fol.Equiv:
		panic("unexpected arrow when removing existentials")
	default:
		panic("invalid formula type")
	}
}

func removeExistsBoth(l, r fol.Formula, constants []string, limit int) (fol.Formula, fol.Formula, int, error) {
	l, nl, err := removeExists(l, constants, limit)
	if err != nil {
		return nil, nil, 0, err
	}
	r, nr, err := removeExists(r, constants, limit)
	if err != nil {
		return nil, nil, 0, err
	}
	n := nl + nr
	if n < nl {
		n = math.MaxInt
	}
	return l, r, n, nil
}

// ground returns the disjunction of body over every assignment of xs to constants,
// and the number of groundings it holds. inner is the number of groundings already in body.
func ground(xs []string, body fol.Formula, inner int, constants []string, limit int) (fol.Formula, int, error) {
	if len(constants) == 0 {
		return nil, 0, ErrEmptyDomain
	}
	total := 1
	for range xs {
		total = mulSat(total, len(constants))
	}
	total = mulSat(total, max(inner, 1))
	if err := checkLimit("groundings", total, limit); err != nil {
		return nil, 0, err
	}
	idx := make([]int, len(xs)) // Current tuple, as indices in constants
	var res fol.Formula
	for {
		terms := make([]fol.Term, len(xs))
		for i, j := range idx {
			terms[i] = fol.Constant(constants[j])
		}
		disjunct := fol.Substitute(body, fol.NewSubstitution(xs, terms))
		if res == nil {
			res = disjunct
		} else {
			res = fol.Or{L: res, R: disjunct}
		}
		i := len(idx) - 1
		for i >= 0 && idx[i] == len(constants)-1 {
			idx[i] = 0
			i--
		}
		if i < 0 {
			return res, total, nil
		}
		idx[i]++
	}
}

// RemoveForall drops the universal quantifiers of f, whose variables become free.
// f must not contain any existential nor arrow. The result is quantifier-free.
func RemoveForall(f fol.Formula) fol.Formula {
	switch f := f.(type) {
	case fol.Atom, fol.Not:
		return f
	case fol.And:
		return fol.And{L: RemoveForall(f.L), R: RemoveForall(f.R)}
	case fol.Or:
		return fol.Or{L: RemoveForall(f.L), R: RemoveForall(f.R)}
	case fol.Forall:
		return RemoveForall(f.F)
	case fol.Exists:
		panic("unexpected existential when removing universals")
	case fol.Imply, fol.Equiv:
		panic("unexpected arrow when removing universals")
	default:
		panic("invalid formula type")
	}
}
