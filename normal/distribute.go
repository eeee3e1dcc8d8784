package normal

import "github.com/crillab/gomln/fol"

// A Clause is a list of literals, i.e. atoms or negated atoms.
// In a CNF, it is read as a disjunction; in a DNF, as a conjunction.
type Clause []fol.Formula

// Distribute turns a quantifier-free formula in negation normal form into a list of clauses.
// For CNF, disjunctions are distributed over conjunctions and the result is read
// as a conjunction of disjunctive clauses. For DNF, this is the dual.
// If more than opts.MaxClauses clauses are needed at any step, a *LimitError is returned.
func Distribute(f fol.Formula, form Form, opts *Options) ([]Clause, error) {
	d := distributor{form: form, max: opts.maxClauses()}
	return d.distribute(f)
}

type distributor struct {
	form Form
	max  int
}

func (d *distributor) distribute(f fol.Formula) ([]Clause, error) {
	switch f := f.(type) {
	case fol.Atom, fol.Not:
		if !fol.IsLiteral(f) {
			panic("unexpected non-literal negation when distributing")
		}
		return []Clause{{f}}, nil
	case fol.And:
		if d.form == CNF {
			return d.concat(f.L, f.R)
		}
		return d.product(f.L, f.R)
	case fol.Or:
		if d.form == CNF {
			return d.product(f.L, f.R)
		}
		return d.concat(f.L, f.R)
	case fol.Forall, fol.Exists:
		panic("unexpected quantifier when distributing")
	case fol.Imply, fol.Equiv:
		panic("unexpected arrow when distributing")
	default:
		panic("invalid formula type")
	}
}

func (d *distributor) both(l, r fol.Formula) ([]Clause, []Clause, error) {
	lc, err := d.distribute(l)
	if err != nil {
		return nil, nil, err
	}
	rc, err := d.distribute(r)
	if err != nil {
		return nil, nil, err
	}
	return lc, rc, nil
}

// concat returns the clauses of l followed by the clauses of r.
func (d *distributor) concat(l, r fol.Formula) ([]Clause, error) {
	lc, rc, err := d.both(l, r)
	if err != nil {
		return nil, err
	}
	if err := checkLimit("clauses", len(lc)+len(rc), d.max); err != nil {
		return nil, err
	}
	return append(lc, rc...), nil
}

// product merges each clause of l with each clause of r.
func (d *distributor) product(l, r fol.Formula) ([]Clause, error) {
	lc, rc, err := d.both(l, r)
	if err != nil {
		return nil, err
	}
	if err := checkLimit("clauses", mulSat(len(lc), len(rc)), d.max); err != nil {
		return nil, err
	}
	res := make([]Clause, 0, len(lc)*len(rc))
	for _, c1 := range lc {
		for _, c2 := range rc {
			c := make(Clause, 0, len(c1)+len(c2))
			c = append(append(c, c1...), c2...)
			res = append(res, c)
		}
	}
	return res, nil
}
