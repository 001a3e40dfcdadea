// Package solver is the query engine over argumentation frameworks: it maps
// each problem code onto the extension predicates (verification) or onto the
// labelling search with the matching early-exit objective (acceptance), and
// runs batches of independent queries concurrently.
package solver

import (
	"context"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Iron-Ham/argue/internal/af"
	"github.com/Iron-Ham/argue/internal/errors"
	"github.com/Iron-Ham/argue/internal/logging"
	"github.com/Iron-Ham/argue/internal/semantics"
)

// Engine answers decision problems against one immutable framework. An
// Engine is safe for concurrent use; queries share the framework and
// nothing else.
type Engine struct {
	fw    *af.Framework
	order []int // branching order, nil means declaration order
	log   *logging.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger attaches a logger for query-level debug records.
func WithLogger(log *logging.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithLexicographicOrder switches the search's branching order from
// declaration order to lexicographic argument order. Answers never change;
// enumeration order does.
func WithLexicographicOrder() Option {
	return func(e *Engine) {
		args := e.fw.Arguments()
		order := make([]int, len(args))
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool {
			return args[order[a]] < args[order[b]]
		})
		e.order = order
	}
}

// New creates an engine for fw.
func New(fw *af.Framework, opts ...Option) *Engine {
	e := &Engine{fw: fw, log: logging.NopLogger()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Framework returns the framework the engine answers queries about.
func (e *Engine) Framework() *af.Framework {
	return e.fw
}

// Evaluate answers one problem. The target is the candidate extension for
// VE-* problems (any size, including empty) and exactly one argument for
// DC-*/DS-* problems.
//
// Validation failures surface as typed errors: [errors.ArityError] for a
// DC-*/DS-* target that is not a single argument,
// [errors.UnknownArgumentError] for a target argument the framework does
// not declare, and a wrapped [errors.ErrUnknownProblem] for an
// unrecognized code.
func (e *Engine) Evaluate(ctx context.Context, problem Problem, target []af.Argument) (bool, error) {
	if !problem.Valid() {
		return false, errors.Wrapf(errors.ErrUnknownProblem, "evaluate %q", string(problem))
	}

	start := time.Now()
	answer, err := e.evaluate(ctx, problem, target)
	if err != nil {
		return false, err
	}

	e.log.Debug("query evaluated",
		"problem", problem.String(),
		"target", extStrings(target),
		"answer", answer,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return answer, nil
}

func (e *Engine) evaluate(ctx context.Context, problem Problem, target []af.Argument) (bool, error) {
	if problem.Task() == TaskVerify {
		if err := e.checkDeclared(target); err != nil {
			return false, err
		}
		if problem.Semantics() == SemanticsStable {
			return semantics.IsStable(e.fw, target), nil
		}
		return semantics.IsComplete(e.fw, target), nil
	}

	if len(target) != 1 {
		return false, errors.NewArityError(problem.String(), len(target))
	}
	if err := e.checkDeclared(target); err != nil {
		return false, err
	}
	arg := target[0]

	opts := semantics.Options{
		Order:      e.order,
		StableOnly: problem.Semantics() == SemanticsStable,
	}

	// A credulous query stops at the first labelling containing the
	// argument; a skeptical query stops at the first labelling missing it
	// (a counterexample). Exhausting the search without stopping answers
	// NO for credulous and YES for skeptical, which also settles DS-ST
	// over zero stable extensions as vacuously true.
	credulous := problem.Task() == TaskCredulous
	stopped := false
	err := semantics.Enumerate(ctx, e.fw, opts, func(l *semantics.Labelling) bool {
		if (l.Of(arg) == semantics.In) == credulous {
			stopped = true
			return false
		}
		return true
	})
	if err != nil {
		return false, err
	}

	if credulous {
		return stopped, nil
	}
	return !stopped, nil
}

// Extensions enumerates the extensions of the framework under sem, in
// search order. A positive max caps how many are collected; max <= 0
// collects every extension.
func (e *Engine) Extensions(ctx context.Context, sem Semantics, max int) ([][]af.Argument, error) {
	if !sem.Valid() {
		return nil, errors.Wrapf(errors.ErrUnknownProblem, "enumerate %q extensions", string(sem))
	}

	opts := semantics.Options{
		Order:      e.order,
		StableOnly: sem == SemanticsStable,
	}

	var out [][]af.Argument
	err := semantics.Enumerate(ctx, e.fw, opts, func(l *semantics.Labelling) bool {
		out = append(out, l.Extension())
		return max <= 0 || len(out) < max
	})
	if err != nil {
		return nil, err
	}

	e.log.Debug("extensions enumerated",
		"semantics", string(sem),
		"count", len(out),
		"capped", max > 0 && len(out) == max,
	)
	return out, nil
}

// Labellings enumerates the complete or stable labellings of the framework,
// in search order, with the same capping rule as Extensions.
func (e *Engine) Labellings(ctx context.Context, sem Semantics, max int) ([]*semantics.Labelling, error) {
	if !sem.Valid() {
		return nil, errors.Wrapf(errors.ErrUnknownProblem, "enumerate %q labellings", string(sem))
	}

	opts := semantics.Options{
		Order:      e.order,
		StableOnly: sem == SemanticsStable,
	}

	var out []*semantics.Labelling
	err := semantics.Enumerate(ctx, e.fw, opts, func(l *semantics.Labelling) bool {
		out = append(out, l)
		return max <= 0 || len(out) < max
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Grounded returns the grounded labelling of the framework.
func (e *Engine) Grounded() *semantics.Labelling {
	return semantics.Grounded(e.fw)
}

// Query pairs a problem code with its target arguments.
type Query struct {
	Problem Problem
	Target  []af.Argument
}

// Result is the answer to one query of a batch.
type Result struct {
	Query  Query
	Answer bool
}

// EvaluateAll answers independent queries concurrently over the shared
// framework, bounded by the number of CPUs. Results keep the order of
// queries; the first failing query cancels the rest.
func (e *Engine) EvaluateAll(ctx context.Context, queries []Query) ([]Result, error) {
	results := make([]Result, len(queries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, q := range queries {
		g.Go(func() error {
			answer, err := e.Evaluate(ctx, q.Problem, q.Target)
			if err != nil {
				return errors.Wrapf(err, "query %d (%s)", i+1, q.Problem)
			}
			results[i] = Result{Query: q, Answer: answer}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (e *Engine) checkDeclared(target []af.Argument) error {
	for _, arg := range target {
		if !e.fw.Contains(arg) {
			return errors.NewUnknownArgumentError(string(arg))
		}
	}
	return nil
}

func extStrings(set []af.Argument) []string {
	out := make([]string, len(set))
	for i, a := range set {
		out[i] = string(a)
	}
	return out
}
