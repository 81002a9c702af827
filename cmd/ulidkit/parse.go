// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"encoding/json"
	"fmt"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holomush/ulidkit/pkg/errutil"
	"github.com/holomush/ulidkit/pkg/ulid"
)

// CodeParseFailed is returned when at least one argument is not a ULID.
const CodeParseFailed = "PARSE_FAILED"

// parseResult is one line of parse output.
type parseResult struct {
	Input string  `json:"input"`
	Valid bool    `json:"valid"`
	Code  string  `json:"code,omitempty"`
	Error string  `json:"error,omitempty"`
	ULID  *idView `json:"ulid,omitempty"`
}

type parseConfig struct {
	jsonOutput bool
}

func newParseCmd() *cobra.Command {
	cfg := &parseConfig{}

	cmd := &cobra.Command{
		Use:   "parse ULID...",
		Short: "Decode ULIDs and show their parts",
		Long: `Decode each argument case-insensitively and print its canonical form,
raw bytes, timestamp and entropy. Exits non-zero if any argument is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, cfg, args)
		},
	}

	cmd.Flags().BoolVar(&cfg.jsonOutput, "json", false, "output results as JSON")

	return cmd
}

func runParse(cmd *cobra.Command, pcfg *parseConfig, args []string) error {
	_, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	results := make([]parseResult, 0, len(args))
	failed := 0
	for _, arg := range args {
		id, err := ulid.ParseStrict(arg)
		if err != nil {
			failed++
			errutil.LogWarn(cmd.Context(), logger, "rejected ULID", err)
			results = append(results, parseResult{Input: arg, Code: errutil.Code(err), Error: err.Error()})
			continue
		}
		view := viewOf(id)
		results = append(results, parseResult{Input: arg, Valid: true, ULID: &view})
	}

	if err := writeParseResults(cmd, pcfg, results); err != nil {
		return err
	}

	if failed > 0 {
		return oops.Code(CodeParseFailed).
			With("failed", failed).
			With("total", len(args)).
			Errorf("%d of %d inputs are not valid ULIDs", failed, len(args))
	}
	return nil
}

func writeParseResults(cmd *cobra.Command, pcfg *parseConfig, results []parseResult) error {
	out := cmd.OutOrStdout()
	if pcfg.jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("failed to format JSON: %w", err)
		}
		return nil
	}

	for _, r := range results {
		var err error
		if r.Valid {
			_, err = fmt.Fprintf(out, "%s\thex=%s\tms=%d\ttime=%s\tentropy=%s\n",
				r.ULID.ID, r.ULID.Hex, r.ULID.TimestampMS, r.ULID.Time, r.ULID.Entropy)
		} else {
			_, err = fmt.Fprintf(out, "%s\tinvalid (%s)\n", r.Input, r.Code)
		}
		if err != nil {
			return oops.With("operation", "write_output").Wrap(err)
		}
	}
	return nil
}
