// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holomush/ulidkit/pkg/ulid"
)

// CodeInvalidEntropy marks a malformed --entropy value.
const CodeInvalidEntropy = "INVALID_ENTROPY"

// generateConfig holds flags that are not part of the shared configuration.
type generateConfig struct {
	entropy    string
	jsonOutput bool
}

func newGenerateCmd() *cobra.Command {
	cfg := &generateConfig{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate new ULIDs",
		Long: `Generate one or more ULIDs from the current time and the shared
random source, or from caller-supplied entropy given as 20 hex digits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, cfg)
		},
	}

	cmd.Flags().Int("count", 1, "number of ULIDs to generate")
	cmd.Flags().StringVar(&cfg.entropy, "entropy", "", "use these 10 bytes (20 hex digits) as the random part")
	cmd.Flags().BoolVar(&cfg.jsonOutput, "json", false, "output ULIDs as JSON")

	return cmd
}

func runGenerate(cmd *cobra.Command, gcfg *generateConfig) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	next := ulid.New
	if gcfg.entropy != "" {
		entropy, err := parseEntropy(gcfg.entropy)
		if err != nil {
			return err
		}
		next = func() ulid.ID { return ulid.NewWithEntropy(entropy) }
	}

	ids := make([]ulid.ID, cfg.Generate.Count)
	for i := range ids {
		ids[i] = next()
	}
	logger.DebugContext(cmd.Context(), "generated ULIDs",
		"count", len(ids),
		"caller_entropy", gcfg.entropy != "",
	)

	out := cmd.OutOrStdout()
	if gcfg.jsonOutput {
		views := make([]idView, len(ids))
		for i, id := range ids {
			views[i] = viewOf(id)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(views); err != nil {
			return fmt.Errorf("failed to format JSON: %w", err)
		}
		return nil
	}

	for _, id := range ids {
		if _, err := fmt.Fprintln(out, id.String()); err != nil {
			return oops.With("operation", "write_output").Wrap(err)
		}
	}
	return nil
}

func parseEntropy(s string) ([ulid.EntropySize]byte, error) {
	var entropy [ulid.EntropySize]byte
	b, err := hex.DecodeString(s)
	if err != nil {
		return entropy, oops.Code(CodeInvalidEntropy).With("entropy", s).Wrapf(err, "entropy is not hex")
	}
	if len(b) != ulid.EntropySize {
		return entropy, oops.Code(CodeInvalidEntropy).
			With("entropy", s).
			Errorf("entropy must be %d bytes, got %d", ulid.EntropySize, len(b))
	}
	copy(entropy[:], b)
	return entropy, nil
}
