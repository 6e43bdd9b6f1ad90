// SPDX-License-Identifier: MIT

package ullmann

import (
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/katalvlaran/subiso/matrix"
)

// SearchBatch runs one independent Search per query against the same data
// graph on a bounded worker pool (WithWorkers, default runtime.NumCPU()).
// out[i] holds the results of queries[i]. Every individual search is still
// sequential and deterministic, so out does not depend on scheduling.
//
// The options apply to every query. An OnMatch hook is called from worker
// goroutines and must be safe for concurrent use. When several queries
// fail, the error of the lowest index is returned, and no results. A panic
// inside one search is recovered and reported as ErrSearchPanicked for
// that query.
func SearchBatch(data *matrix.Dense, queries []*matrix.Dense, opts ...Option) ([][]*matrix.Dense, error) {
	o := gatherOptions(opts...)

	ctx, span := tracer.Start(o.Ctx, "ullmann.SearchBatch")
	defer span.End()
	span.SetAttributes(attribute.Int("ullmann.batch.size", len(queries)))

	fail := func(err error) ([][]*matrix.Dense, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	if o.Workers <= 0 {
		return fail(fmt.Errorf("Workers=%d: %w", o.Workers, ErrWorkers))
	}
	if len(queries) == 0 {
		return [][]*matrix.Dense{}, nil
	}

	pool, err := ants.NewPool(o.Workers)
	if err != nil {
		return fail(fmt.Errorf("ullmann: worker pool: %w", err))
	}
	defer pool.Release()

	out := make([][]*matrix.Dense, len(queries))
	errs := make([]error, len(queries))
	perQuery := append(append(make([]Option, 0, len(opts)+1), opts...), WithContext(ctx))

	var wg sync.WaitGroup
	for i := range queries {
		i := i
		wg.Add(1)
		if err = pool.Submit(func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					out[i], errs[i] = nil, fmt.Errorf("%w: %v", ErrSearchPanicked, r)
				}
			}()
			out[i], errs[i] = Search(data, queries[i], perQuery...)
		}); err != nil {
			wg.Done()
			errs[i] = fmt.Errorf("ullmann: submit query %d: %w", i, err)
		}
	}
	wg.Wait()

	for i, qerr := range errs {
		if qerr != nil {
			return fail(fmt.Errorf("query %d: %w", i, qerr))
		}
	}
	o.Logger.Debug("batch finished", "queries", len(queries))

	return out, nil
}
