package normal

import (
	"fmt"
	"strings"

	"github.com/crillab/gomln/fol"
)

// Form is the kind of normal form a formula is translated into.
type Form int

const (
	// CNF is the conjunctive normal form: a conjunction of disjunctive clauses.
	CNF Form = iota
	// DNF is the disjunctive normal form: a disjunction of conjunctive clauses.
	DNF
)

func (f Form) String() string {
	switch f {
	case CNF:
		return "cnf"
	case DNF:
		return "dnf"
	default:
		panic("invalid normal form")
	}
}

// ParseForm returns the form named s, either "cnf" or "dnf", case insensitive.
func ParseForm(s string) (Form, error) {
	switch strings.ToLower(s) {
	case "cnf":
		return CNF, nil
	case "dnf":
		return DNF, nil
	default:
		return 0, fmt.Errorf("invalid normal form %q: expected cnf or dnf", s)
	}
}

// A NormalForm is the result of the translation of a formula.
// Clauses is never empty.
type NormalForm struct {
	Form     Form
	Original fol.Formula // The formula before translation
	Clauses  []Clause
}

// Formula folds the clauses back into a formula, from left to right.
func (nf *NormalForm) Formula() fol.Formula {
	var res fol.Formula
	for _, c := range nf.Clauses {
		var clause fol.Formula
		for _, lit := range c {
			clause = join(clause, lit, nf.Form == DNF)
		}
		res = join(res, clause, nf.Form == CNF)
	}
	return res
}

// join returns "acc and f" if conj, else "acc or f". A nil acc is the neutral element.
func join(acc, f fol.Formula, conj bool) fol.Formula {
	switch {
	case acc == nil:
		return f
	case conj:
		return fol.And{L: acc, R: f}
	default:
		return fol.Or{L: acc, R: f}
	}
}

func (nf *NormalForm) String() string {
	return fol.Print(nf.Formula())
}

// Translate runs the six normalization passes on f and returns its normal form:
// arrow removal, uniquification, negation pushing, existential grounding over constants,
// universal stripping and distribution.
// The variables bound by universal quantifiers are free in the result, renamed x0, x1, ...
func Translate(f fol.Formula, constants []string, form Form, opts *Options) (*NormalForm, error) {
	nf, err := translate(f, constants, form, opts)
	if err != nil {
		translations.WithLabelValues(form.String(), "error").Inc()
		return nil, err
	}
	translations.WithLabelValues(form.String(), "ok").Inc()
	clausesPerFormula.WithLabelValues(form.String()).Observe(float64(len(nf.Clauses)))
	return nf, nil
}

func translate(f fol.Formula, constants []string, form Form, opts *Options) (*NormalForm, error) {
	logger := opts.logger().With("form", form.String())
	trace := func(pass string, g fol.Formula) {
		logger.Debug("normalization pass", "pass", pass, "size", fol.Size(g))
	}
	g := RemoveArrows(f)
	trace("arrows", g)
	g = Uniquify(g)
	trace("uniquify", g)
	g = MoveNegations(g)
	trace("negations", g)
	g, err := RemoveExists(g, constants, opts)
	if err != nil {
		return nil, fmt.Errorf("could not ground existentials of %s: %w", fol.Print(f), err)
	}
	trace("exists", g)
	g = RemoveForall(g)
	trace("forall", g)
	clauses, err := Distribute(g, form, opts)
	if err != nil {
		return nil, fmt.Errorf("could not distribute %s: %w", fol.Print(f), err)
	}
	logger.Debug("normalization done", "clauses", len(clauses))
	return &NormalForm{Form: form, Original: f, Clauses: clauses}, nil
}

// ToCNF translates f into conjunctive normal form, with no limit.
func ToCNF(f fol.Formula, constants []string) (*NormalForm, error) {
	return Translate(f, constants, CNF, nil)
}

// ToDNF translates f into disjunctive normal form, with no limit.
func ToDNF(f fol.Formula, constants []string) (*NormalForm, error) {
	return Translate(f, constants, DNF, nil)
}
