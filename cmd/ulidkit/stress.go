// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holomush/ulidkit/internal/observability"
	"github.com/holomush/ulidkit/internal/stress"
	"github.com/holomush/ulidkit/pkg/errutil"
)

// CodeDuplicates is returned when a stress run finds a repeated ULID.
const CodeDuplicates = "DUPLICATES_FOUND"

const shutdownTimeout = 5 * time.Second

type stressConfig struct {
	jsonOutput bool
}

func newStressCmd() *cobra.Command {
	cfg := &stressConfig{}

	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Generate ULIDs concurrently and check for duplicates",
		Long: `Run several goroutines that generate ULIDs from the shared random source,
then merge and sort the output and report duplicates and compare-and-swap
contention. With --metrics-addr, Prometheus metrics and health probes are
served for the duration of the run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStress(cmd, cfg)
		},
	}

	cmd.Flags().Int("workers", 2, "number of concurrent goroutines")
	cmd.Flags().Int("per-worker", 1000, "ULIDs generated by each goroutine")
	cmd.Flags().String("metrics-addr", "", "metrics/health HTTP address (empty = disabled)")
	cmd.Flags().BoolVar(&cfg.jsonOutput, "json", false, "output the result as JSON")

	return cmd
}

func runStress(cmd *cobra.Command, scfg *stressConfig) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	opts := stress.Options{
		Workers:   cfg.Stress.Workers,
		PerWorker: cfg.Stress.PerWorker,
		Logger:    logger,
	}

	if cfg.Stress.MetricsAddr != "" {
		var ready atomic.Bool
		server := observability.NewServer(cfg.Stress.MetricsAddr, ready.Load, logger)
		if _, err := server.Start(); err != nil {
			return fmt.Errorf("failed to start metrics server: %w", err)
		}
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := server.Stop(stopCtx); err != nil {
				errutil.LogError(ctx, logger, "failed to stop metrics server", err)
			}
		}()
		ready.Store(true)
		opts.Metrics = server.Metrics()
		logger.InfoContext(ctx, "serving metrics", "addr", server.Addr())
	}

	res, err := stress.Run(ctx, opts)
	if err != nil {
		return err
	}

	if err := writeStressResult(cmd, scfg, res); err != nil {
		return err
	}

	if !res.OK() {
		return oops.Code(CodeDuplicates).
			With("duplicates", res.Duplicates).
			With("round_trip_failures", res.RoundTripFailures).
			Errorf("stress run found %d duplicates and %d round-trip failures", res.Duplicates, res.RoundTripFailures)
	}
	return nil
}

func writeStressResult(cmd *cobra.Command, scfg *stressConfig, res stress.Result) error {
	out := cmd.OutOrStdout()
	if scfg.jsonOutput {
		if err := json.NewEncoder(out).Encode(res); err != nil {
			return fmt.Errorf("failed to format JSON: %w", err)
		}
		return nil
	}

	_, err := fmt.Fprintf(out,
		"generated:   %d\nduplicates:  %d\nround-trip:  %d failures\ncas retries: %d\nelapsed:     %s\nrange:       %s .. %s\n",
		res.Generated, res.Duplicates, res.RoundTripFailures, res.CASRetries, res.Elapsed,
		res.Smallest, res.Largest)
	if err != nil {
		return oops.With("operation", "write_output").Wrap(err)
	}
	return nil
}
