package fol

import (
	"fmt"
	"slices"
)

// A Function computes the constant denoted by the application of a function symbol
// to already evaluated arguments.
type Function func(args ...string) (string, error)

// Env is the evaluation environment of terms: variable bindings and function definitions.
type Env struct {
	Vars  map[string]string
	Funcs map[string]Function
}

// An EvaluationError is returned when a term cannot be evaluated to a constant of the domain.
type EvaluationError struct {
	Term Term
	Msg  string
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("could not evaluate %s: %s", e.Term, e.Msg)
}

// EvalTerm evaluates t in env and returns the name of the constant it denotes.
// A constant written in t denotes itself, even outside of constants. The value of a
// variable or of a function application must be one of the given constants, else an
// *EvaluationError is returned.
func EvalTerm(env Env, constants []string, t Term) (string, error) {
	var val string
	switch t := t.(type) {
	case Variable:
		v, ok := env.Vars[string(t)]
		if !ok {
			return "", &EvaluationError{Term: t, Msg: "unbound variable"}
		}
		val = v
	case Constant:
		return string(t), nil
	case Apply:
		fn, ok := env.Funcs[t.Fun]
		if !ok {
			return "", &EvaluationError{Term: t, Msg: fmt.Sprintf("unknown function %q", t.Fun)}
		}
		args := make([]string, len(t.Args))
		for i, arg := range t.Args {
			v, err := EvalTerm(env, constants, arg)
			if err != nil {
				return "", err
			}
			args[i] = v
		}
		v, err := fn(args...)
		if err != nil {
			return "", &EvaluationError{Term: t, Msg: err.Error()}
		}
		val = v
	default:
		panic("invalid term type")
	}
	if !slices.Contains(constants, val) {
		return "", &EvaluationError{Term: t, Msg: fmt.Sprintf("%q is not a constant of the domain", val)}
	}
	return val, nil
}

// EvalAtom evaluates every argument of a in env, and returns the resulting ground atom.
func EvalAtom(env Env, constants []string, a Atom) (Atom, error) {
	args := make([]Term, len(a.Args))
	for i, arg := range a.Args {
		v, err := EvalTerm(env, constants, arg)
		if err != nil {
			return Atom{}, fmt.Errorf("could not evaluate atom %s: %w", a, err)
		}
		args[i] = Constant(v)
	}
	return Atom{Pred: a.Pred, Args: args}, nil
}

// IsConstantName indicates whether name is a valid constant identifier.
func IsConstantName(name string) bool {
	toks, err := Tokenize(name)
	return err == nil && len(toks) == 1 && toks[0].Type == TokenConstant && toks[0].Text == name
}
