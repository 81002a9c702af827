package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/holomush/ulidkit/internal/config"
	"github.com/holomush/ulidkit/internal/logging"
	"github.com/holomush/ulidkit/pkg/ulid"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the ulidkit CLI.
func NewRootCmd() *cobra.Command {
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "ulidkit",
		Short: "ulidkit - generate and inspect ULIDs",
		Long: `ulidkit generates Universally Unique Lexicographically Sortable
Identifiers, decodes existing ones, and stress-tests the shared random source.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (default: XDG_CONFIG_HOME/ulidkit/config.yaml)")
	cmd.PersistentFlags().String("log-format", def.Log.Format, "log format (json or text)")
	cmd.PersistentFlags().String("log-level", def.Log.Level, "log level (debug, info, warn, error)")

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newParseCmd())
	cmd.AddCommand(newStressCmd())

	return cmd
}

// loadConfig resolves configuration for cmd and installs its logger as the
// slog default. Logs go to the command's stderr so stdout stays machine readable.
func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.SetDefault(logging.Options{
		Service: "ulidkit",
		Version: version,
		Format:  cfg.Log.Format,
		Level:   cfg.Log.Level,
		Output:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	return cfg, logger, nil
}

// idView is the JSON shape printed for a single ULID.
type idView struct {
	ID          string `json:"id"`
	Hex         string `json:"hex"`
	TimestampMS uint64 `json:"timestamp_ms"`
	Time        string `json:"time"`
	Entropy     string `json:"entropy"`
}

func viewOf(id ulid.ID) idView {
	entropy := id.Entropy()
	return idView{
		ID:          id.String(),
		Hex:         hex.EncodeToString(id[:]),
		TimestampMS: id.Timestamp(),
		Time:        id.Time().Format(time.RFC3339Nano),
		Entropy:     hex.EncodeToString(entropy[:]),
	}
}
