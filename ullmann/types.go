// SPDX-License-Identifier: MIT

// Package ullmann defines the types, sentinel errors and functional options
// of the subgraph-isomorphism search: result cap, compatibility predicate,
// prune mode, cancellation, logging and match hook.
package ullmann

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/subiso/matrix"
)

var (
	// ErrInvalidArgument is the root kind for every precondition failure.
	// All refined sentinels below satisfy errors.Is(err, ErrInvalidArgument).
	ErrInvalidArgument = errors.New("ullmann: invalid argument")

	// ErrMaxResults is returned when a result cap is provided but is not strictly positive.
	ErrMaxResults = fmt.Errorf("%w: max results must be strictly positive", ErrInvalidArgument)

	// ErrDataNotSquare is returned when the data graph adjacency matrix is not square.
	ErrDataNotSquare = fmt.Errorf("%w: data graph adjacency matrix is not square", ErrInvalidArgument)

	// ErrQueryNotSquare is returned when the query graph adjacency matrix is not square.
	ErrQueryNotSquare = fmt.Errorf("%w: query graph adjacency matrix is not square", ErrInvalidArgument)

	// ErrNilGraph is returned when the data or query graph is nil.
	ErrNilGraph = fmt.Errorf("%w: graph is nil", ErrInvalidArgument)

	// ErrWorkers is returned by SearchBatch when the worker count is not strictly positive.
	ErrWorkers = fmt.Errorf("%w: worker count must be strictly positive", ErrInvalidArgument)

	// ErrSearchPanicked is returned by SearchBatch when a query's search panicked,
	// typically inside a user Predicate or OnMatch hook.
	ErrSearchPanicked = errors.New("ullmann: search panicked")
)

// Predicate decides whether query node queryIndex may ever map to data node
// dataIndex. It must be a pure function of its four inputs; it is invoked
// only while the initial candidate matrix is built.
type Predicate func(query, data *matrix.Dense, queryIndex, dataIndex int) bool

// PruneMode selects the constraint propagation applied at each expansion.
type PruneMode int

const (
	// PruneNone disables pruning.
	PruneNone PruneMode = iota

	// PruneOriginal applies the historical rule: a candidate (d,q) whose query
	// node q has at least one neighbour is dropped when column d of the data
	// graph holds no 1 at all, and the drop is written at the transposed cell
	// (q,d). Results can differ from PruneNone; see Prune.
	PruneOriginal

	// PruneRefined applies the classical Ullman refinement to a fixpoint:
	// (d,q) survives only if every query edge q→x has some data edge d→y with
	// (y,x) still a candidate. Never changes the result set.
	PruneRefined
)

// String returns the mode name used in logs and span attributes.
func (p PruneMode) String() string {
	switch p {
	case PruneNone:
		return "none"
	case PruneOriginal:
		return "original"
	case PruneRefined:
		return "refined"
	default:
		return fmt.Sprintf("PruneMode(%d)", int(p))
	}
}

// MatchHook is invoked for every accepted isomorphism, in enumeration order,
// with its zero-based position in the result list. Returning an error aborts
// the search with that error.
type MatchHook func(index int, mapping *matrix.Dense) error

// Option configures a search. Use with Search(data, query, opts...).
type Option func(*Options)

// Options holds the effective configuration of one Search or SearchBatch call.
type Options struct {
	// Ctx allows cancellation; checked once per recursive call.
	// Defaults to context.Background().
	Ctx context.Context

	// MaxResults caps the number of collected isomorphisms when HasMax is set.
	// The cap is soft: it stops further descents, not sibling iterations.
	MaxResults int
	HasMax     bool

	// Predicate filters query/data node pairs; nil resolves to DegreeCriterion.
	Predicate Predicate

	// Prune selects the constraint propagation; default PruneNone.
	Prune PruneMode

	// Logger receives Debug-level tracing. Defaults to log.Default().
	Logger *log.Logger

	// OnMatch, if non-nil, is called for each accepted isomorphism.
	OnMatch MatchHook

	// Workers bounds the SearchBatch pool size; ignored by Search.
	// Defaults to runtime.NumCPU().
	Workers int
}

// DefaultOptions returns Options with:
//   - Background context
//   - no result cap
//   - DegreeCriterion predicate
//   - pruning disabled
//   - log.Default() logger
//   - no match hook
//   - runtime.NumCPU() batch workers
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Predicate: DegreeCriterion,
		Prune:     PruneNone,
		Logger:    log.Default(),
		Workers:   runtime.NumCPU(),
	}
}

// WithContext sets the context used for cancellation and tracing.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxResults caps the number of isomorphisms to collect.
// n must be strictly positive; Search reports ErrMaxResults otherwise.
func WithMaxResults(n int) Option {
	return func(o *Options) {
		o.MaxResults = n
		o.HasMax = true
	}
}

// WithPredicate installs a compatibility predicate. A nil p keeps the
// degree criterion.
func WithPredicate(p Predicate) Option {
	return func(o *Options) {
		o.Predicate = p
	}
}

// WithPruning enables the original pruning rule (PruneOriginal).
func WithPruning() Option {
	return WithPruneMode(PruneOriginal)
}

// WithPruneMode selects the prune mode explicitly.
func WithPruneMode(mode PruneMode) Option {
	return func(o *Options) {
		o.Prune = mode
	}
}

// WithLogger installs the debug tracing sink. A nil logger keeps the default.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnMatch installs fn as the per-match hook.
func WithOnMatch(fn MatchHook) Option {
	return func(o *Options) {
		o.OnMatch = fn
	}
}

// WithWorkers sets the SearchBatch pool size.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// gatherOptions applies opts over the defaults and resolves the nil
// predicate to the single fallback.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Predicate == nil {
		o.Predicate = DegreeCriterion
	}

	return o
}

// validate checks option values once, before any search work.
func (o Options) validate() error {
	if o.HasMax && o.MaxResults <= 0 {
		return fmt.Errorf("MaxResults=%d: %w", o.MaxResults, ErrMaxResults)
	}
	switch o.Prune {
	case PruneNone, PruneOriginal, PruneRefined:
	default:
		return fmt.Errorf("%w: unknown prune mode %s", ErrInvalidArgument, o.Prune)
	}

	return nil
}
