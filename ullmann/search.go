// SPDX-License-Identifier: MIT

// Package ullmann - backtracking search engine.
//
// Search walks query rows 0..Q-1. At row r it clones the current mapping
// matrix, optionally prunes the clone, and then, for every data column c in
// increasing order that is unbound and enabled in the UNPRUNED matrix, binds
// row r to c in the clone and recurses into row r+1. Reaching row Q verifies
// the fully bound matrix and, on success, collects an independent copy.
//
// Determinism:
//   - Columns are tried in index order, which fixes the enumeration order of
//     results. Identical inputs give identical ordered result lists.
//
// Result cap:
//   - The cap is consulted before each descent. Once reached, no further
//     descents happen, but sibling iterations (and their pruning work) still
//     run at shallower levels. There is no hard global abort.
//
// Complexity:
//   - Worst case exponential in Q. One Q×D clone per expanded node; recursion
//     depth is Q. The bound-columns bitset is shared and stack-disciplined.

package ullmann

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/soniakeys/bits"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/subiso/matrix"
)

var tracer = otel.Tracer("github.com/katalvlaran/subiso/ullmann")

// searchEngine holds the state of one top-level Search call.
type searchEngine struct {
	data  *matrix.Dense
	query *matrix.Dense
	opts  Options

	// bound has bit c set while data node c is assigned on the current path.
	bound bits.Bits

	results []*matrix.Dense
}

// Search enumerates the isomorphisms of query into data: injective mappings
// of query nodes onto data nodes such that every query edge lands on a data
// edge. Each result is a |data|-wide, |query|-high mapping matrix with
// exactly one 1 per row (see Assignment).
//
// Preconditions are checked before any search work: a provided result cap
// must be > 0, both graphs must be non-nil and square. A query larger than
// the data graph yields an empty list and no error.
//
// Options:
//   - WithMaxResults(n)   soft cap on collected results.
//   - WithPredicate(p)    compatibility predicate (default DegreeCriterion).
//   - WithPruning()       original pruning rule; WithPruneMode for others.
//   - WithContext(ctx)    cancellation, checked once per recursive call.
//   - WithLogger(l)       debug tracing sink.
//   - WithOnMatch(fn)     per-match hook; an error aborts the search.
//
// Errors:
//   - ErrInvalidArgument kinds (ErrMaxResults, ErrNilGraph, ErrDataNotSquare, ErrQueryNotSquare).
//   - matrix.ErrOutOfRange from PruneOriginal's transposed write.
//   - ctx.Err() on cancellation; hook errors wrapped.
//
// No partial results are returned together with an error.
func Search(data, query *matrix.Dense, opts ...Option) ([]*matrix.Dense, error) {
	o := gatherOptions(opts...)

	ctx, span := tracer.Start(o.Ctx, "ullmann.Search")
	defer span.End()
	o.Ctx = ctx

	results, err := search(data, query, o, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}
	span.SetAttributes(attribute.Int("ullmann.results", len(results)))

	return results, nil
}

// search validates, seeds and runs the engine. span only receives attributes.
func search(data, query *matrix.Dense, o Options, span trace.Span) ([]*matrix.Dense, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	if data == nil || query == nil {
		return nil, ErrNilGraph
	}
	if !data.IsSquare() {
		return nil, fmt.Errorf("data %dx%d: %w", data.Width(), data.Height(), ErrDataNotSquare)
	}
	if !query.IsSquare() {
		return nil, fmt.Errorf("query %dx%d: %w", query.Width(), query.Height(), ErrQueryNotSquare)
	}

	dataSize, querySize := data.Width(), query.Width()
	span.SetAttributes(
		attribute.Int("ullmann.data.size", dataSize),
		attribute.Int("ullmann.query.size", querySize),
		attribute.String("ullmann.prune", o.Prune.String()),
	)
	if o.HasMax {
		span.SetAttributes(attribute.Int("ullmann.max_results", o.MaxResults))
	}
	o.Logger.Debug("search preconditions checked",
		"data", dataSize, "query", querySize, "prune", o.Prune, "max", o.MaxResults)

	// No match is possible when the query is bigger than the data graph.
	if querySize > dataSize {
		return []*matrix.Dense{}, nil
	}

	seed, err := InitialCandidates(data, query, o.Predicate)
	if err != nil {
		return nil, err
	}
	if o.Logger.GetLevel() <= log.DebugLevel {
		o.Logger.Debug("initial candidate matrix\n" + seed.String())
	}

	e := &searchEngine{
		data:    data,
		query:   query,
		opts:    o,
		bound:   bits.New(dataSize),
		results: make([]*matrix.Dense, 0),
	}
	if err = e.recurse(0, seed); err != nil {
		return nil, err
	}
	o.Logger.Debug("search finished", "isomorphisms", len(e.results))

	return e.results, nil
}

// capped reports whether the result cap has been reached.
func (e *searchEngine) capped() bool {
	return e.opts.HasMax && len(e.results) >= e.opts.MaxResults
}

// recurse expands row of mapping. mapping itself is never written; all
// changes go to a private clone handed down to the next level.
func (e *searchEngine) recurse(row int, mapping *matrix.Dense) error {
	select {
	case <-e.opts.Ctx.Done():
		return e.opts.Ctx.Err()
	default:
	}

	if row == mapping.Height() {
		return e.collect(mapping)
	}

	work := mapping.Clone()
	switch e.opts.Prune {
	case PruneOriginal:
		if err := pruneOriginal(work, e.query, e.data); err != nil {
			return err
		}
	case PruneRefined:
		pruneRefined(work, e.query, e.data)
		if hasEmptyRow(work) {
			return nil
		}
	}

	var col int
	for col = 0; col < mapping.Width(); col++ {
		// candidates come from the unpruned matrix
		if e.bound.Bit(col) == 1 || !one(mapping, col, row) {
			continue
		}

		_ = work.SetRowOneHot(col, row) // in bounds: (col,row) was just read
		e.bound.SetBit(col, 1)
		if !e.capped() {
			if err := e.recurse(row+1, work); err != nil {
				e.bound.SetBit(col, 0)

				return err
			}
		}
		e.bound.SetBit(col, 0)
	}

	return nil
}

// collect verifies a fully bound mapping and stores an independent copy.
func (e *searchEngine) collect(mapping *matrix.Dense) error {
	if !isIsomorphism(mapping, e.data, e.query) {
		return nil
	}

	found := mapping.Clone()
	e.results = append(e.results, found)
	if e.opts.OnMatch == nil {
		return nil
	}

	idx := len(e.results) - 1
	if err := e.opts.OnMatch(idx, found.Clone()); err != nil {
		return fmt.Errorf("ullmann: OnMatch hook for match %d: %w", idx, err)
	}

	return nil
}
