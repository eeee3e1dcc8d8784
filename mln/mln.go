// Package mln holds Markov logic networks: sets of weighted first-order formulas
// over a finite domain of constants, translated into weighted clauses.
//
// The model only prepares the input of inference: it does not compute any probability.
package mln

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/crillab/gomln/clause"
	"github.com/crillab/gomln/fol"
	"github.com/crillab/gomln/normal"
)

// An InvalidModelError is returned when the domain of a model is ill-formed.
type InvalidModelError struct {
	Constant string
	Msg      string
}

func (e *InvalidModelError) Error() string {
	return fmt.Sprintf("invalid constant %q: %s", e.Constant, e.Msg)
}

// Options configure the construction of a model.
// A nil *Options is valid and means default values.
type Options struct {
	// Limits bound each translation. Its Logger is replaced by Logger.
	Limits normal.Options
	// Concurrency is the maximum number of formulas translated at the same time.
	// Zero means runtime.GOMAXPROCS(0).
	Concurrency int
	Logger      *slog.Logger
}

func (o *Options) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

func (o *Options) concurrency() int {
	if o == nil || o.Concurrency <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return o.Concurrency
}

func (o *Options) limits() normal.Options {
	var res normal.Options
	if o != nil {
		res = o.Limits
	}
	res.Logger = o.logger()
	return res
}

// A Model is a Markov logic network, with its formulas translated into weighted clauses.
// It is never modified after its construction, and can be used concurrently.
type Model struct {
	Entries    []fol.Entry
	Constants  []string
	Clauses    []clause.WeightedClause // Clauses of all entries, in order
	Predicates clause.Signatures
}

// Load parses text in the MLN format and builds the corresponding model.
func Load(ctx context.Context, text string, constants []string, opts *Options) (*Model, error) {
	entries, err := fol.ParseMLN(text)
	if err != nil {
		return nil, fmt.Errorf("could not parse model: %w", err)
	}
	return New(ctx, entries, constants, opts)
}

// New builds the model made of the given weighted formulas over constants.
// Every constant must be a valid, unique constant name, else an *InvalidModelError is returned.
// Formulas are translated concurrently; the resulting clauses are in the same order as entries.
// All predicates must be used with a consistent arity across the whole model.
func New(ctx context.Context, entries []fol.Entry, constants []string, opts *Options) (model *Model, err error) {
	start := time.Now()
	ctx, span := startBuildSpan(ctx, len(entries), len(constants))
	defer func() {
		nbClauses := 0
		if model != nil {
			nbClauses = len(model.Clauses)
			span.SetAttributes(attribute.Int("mln.clauses", nbClauses))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		recordLoadMetrics(ctx, time.Since(start), nbClauses, err == nil)
	}()

	if err := checkConstants(constants); err != nil {
		return nil, err
	}
	logger := opts.logger()
	limits := opts.limits()
	translated := make([][]clause.WeightedClause, len(entries))
	tables := make([]clause.Signatures, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.concurrency())
	for i, e := range entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			_, span := startTranslateSpan(gctx, i, fol.Print(e.Formula))
			defer span.End()
			clauses, err := clause.Translate(e.Formula, e.Weight, constants, &limits)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return fmt.Errorf("could not translate formula #%d %s: %w", i+1, fol.Print(e.Formula), err)
			}
			sigs, err := clause.Predicates(clauses)
			if err != nil {
				return fmt.Errorf("could not translate formula #%d %s: %w", i+1, fol.Print(e.Formula), err)
			}
			span.SetAttributes(attribute.Int("mln.clauses", len(clauses)))
			logger.Info("formula translated", "entry", i+1, "weight", e.Weight, "clauses", len(clauses))
			translated[i] = clauses
			tables[i] = sigs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	m := &Model{
		Entries:    entries,
		Constants:  constants,
		Predicates: make(clause.Signatures),
	}
	for i, clauses := range translated {
		m.Clauses = append(m.Clauses, clauses...)
		if err := m.Predicates.Merge(tables[i]); err != nil {
			return nil, fmt.Errorf("invalid model: formula #%d %s: %w", i+1, fol.Print(entries[i].Formula), err)
		}
	}
	return m, nil
}

func checkConstants(constants []string) error {
	seen := make(map[string]bool, len(constants))
	for _, c := range constants {
		if !fol.IsConstantName(c) {
			return &InvalidModelError{Constant: c, Msg: "not a valid constant name"}
		}
		if seen[c] {
			return &InvalidModelError{Constant: c, Msg: "duplicate constant"}
		}
		seen[c] = true
	}
	return nil
}

// GroundAtoms returns every ground atom of the model.
func (m *Model) GroundAtoms() []fol.Atom {
	return m.Predicates.GroundAtoms(m.Constants)
}

// GroundClauses returns the clauses of the model, grounded over every assignment of their variables.
// Function applications are evaluated with funcs, and must denote constants of the model.
// Constants written in a formula are kept as is, even when they are not constants of the model.
func (m *Model) GroundClauses(funcs map[string]fol.Function) ([]clause.WeightedClause, error) {
	return clause.GroundClauses(m.Clauses, m.Constants, funcs)
}

// String returns the model in the MLN format, one weighted formula per line.
func (m *Model) String() string {
	lines := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		lines[i] = e.String()
	}
	return strings.Join(lines, "\n")
}
