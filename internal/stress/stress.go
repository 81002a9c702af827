// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package stress generates ULIDs from many goroutines at once and checks
// that the shared random source never hands out the same value twice.
package stress

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/samber/oops"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/holomush/ulidkit/internal/observability"
	"github.com/holomush/ulidkit/pkg/errutil"
	"github.com/holomush/ulidkit/pkg/ulid"
)

const tracerName = "github.com/holomush/ulidkit/internal/stress"

// Options configures a run.
type Options struct {
	Workers   int
	PerWorker int
	// Generator defaults to one backed by the process-wide source.
	Generator *ulid.Generator
	// Metrics is optional.
	Metrics *observability.Metrics
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Result summarizes a run.
type Result struct {
	Generated         int           `json:"generated"`
	Duplicates        int           `json:"duplicates"`
	RoundTripFailures int           `json:"round_trip_failures"`
	CASRetries        uint64        `json:"cas_retries"`
	Elapsed           time.Duration `json:"elapsed_ns"`
	Smallest          ulid.ID       `json:"smallest"`
	Largest           ulid.ID       `json:"largest"`
}

// OK reports whether the run found no duplicates and no round-trip failures.
func (r Result) OK() bool {
	return r.Duplicates == 0 && r.RoundTripFailures == 0
}

// Run starts opts.Workers goroutines that each generate opts.PerWorker IDs,
// then merges and sorts the output and counts adjacent duplicates.
// Cancelling ctx stops the workers and returns the context error.
func Run(ctx context.Context, opts Options) (Result, error) {
	if opts.Workers < 1 || opts.PerWorker < 1 {
		return Result{}, oops.Code("INVALID_OPTIONS").
			With("workers", opts.Workers).
			With("per_worker", opts.PerWorker).
			Errorf("workers and per-worker count must be positive")
	}
	if opts.Generator == nil {
		opts.Generator = ulid.NewGenerator()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "stress.Run", trace.WithAttributes(
		attribute.Int("workers", opts.Workers),
		attribute.Int("per_worker", opts.PerWorker),
	))
	defer span.End()

	source := opts.Generator.Source()
	retriesBefore := source.Retries()
	start := time.Now()

	outputs := make([][]string, opts.Workers)
	failures := make([]int, opts.Workers)
	var wg sync.WaitGroup
	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			outputs[w], failures[w] = work(ctx, opts, w)
		}(w)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		span.RecordError(err)
		return Result{}, oops.With("operation", "stress_run").Wrap(err)
	}

	all := make([]string, 0, opts.Workers*opts.PerWorker)
	res := Result{}
	for w := range outputs {
		all = append(all, outputs[w]...)
		res.RoundTripFailures += failures[w]
	}
	sort.Strings(all)
	for i := 1; i < len(all); i++ {
		if all[i] == all[i-1] {
			res.Duplicates++
		}
	}

	res.Generated = len(all)
	res.CASRetries = source.Retries() - retriesBefore
	res.Elapsed = time.Since(start)
	if len(all) > 0 {
		res.Smallest = ulid.MustParse(all[0])
		res.Largest = ulid.MustParse(all[len(all)-1])
	}

	if opts.Metrics != nil {
		opts.Metrics.RecordGenerated(res.Generated)
		opts.Metrics.CASRetriesTotal.Add(float64(res.CASRetries))
		opts.Metrics.DuplicatesTotal.Add(float64(res.Duplicates))
	}

	span.SetAttributes(
		attribute.Int("duplicates", res.Duplicates),
		attribute.Int64("cas_retries", int64(res.CASRetries)),
	)
	opts.Logger.InfoContext(ctx, "stress run finished",
		"generated", res.Generated,
		"duplicates", res.Duplicates,
		"round_trip_failures", res.RoundTripFailures,
		"cas_retries", res.CASRetries,
		"elapsed", res.Elapsed,
	)
	return res, nil
}

// work generates one worker's share and checks every string parses back
// to the bytes it came from.
func work(ctx context.Context, opts Options, worker int) ([]string, int) {
	out := make([]string, 0, opts.PerWorker)
	failures := 0
	for i := 0; i < opts.PerWorker; i++ {
		if i%256 == 0 && ctx.Err() != nil {
			return out, failures
		}

		id := opts.Generator.New()
		s := id.String()
		if parsed, err := ulid.ParseStrict(s); err != nil || parsed != id {
			failures++
			if opts.Metrics != nil {
				opts.Metrics.RecordParseFailure(errutil.Code(err))
			}
			if err != nil {
				errutil.LogError(ctx, opts.Logger, "generated ULID failed to parse", err)
			} else {
				opts.Logger.ErrorContext(ctx, "generated ULID changed on round trip", "worker", worker, "id", s)
			}
		}
		out = append(out, s)
	}
	return out, failures
}
