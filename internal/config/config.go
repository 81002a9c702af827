// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package config loads ulidkit settings from defaults, an optional YAML file
// and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"

	"github.com/holomush/ulidkit/internal/logging"
	"github.com/holomush/ulidkit/internal/xdg"
)

// Config is the full ulidkit configuration.
type Config struct {
	Log      LogConfig      `koanf:"log" jsonschema:"description=Logging settings"`
	Generate GenerateConfig `koanf:"generate" jsonschema:"description=Defaults for the generate command"`
	Stress   StressConfig   `koanf:"stress" jsonschema:"description=Defaults for the stress command"`
}

// LogConfig controls the slog output.
type LogConfig struct {
	Format string `koanf:"format" jsonschema:"enum=json,enum=text"`
	Level  string `koanf:"level" jsonschema:"enum=debug,enum=info,enum=warn,enum=warning,enum=error"`
}

// GenerateConfig holds defaults for the generate command.
type GenerateConfig struct {
	Count int `koanf:"count" jsonschema:"minimum=1"`
}

// StressConfig holds defaults for the stress command.
type StressConfig struct {
	Workers     int    `koanf:"workers" jsonschema:"minimum=1"`
	PerWorker   int    `koanf:"per_worker" jsonschema:"minimum=1"`
	MetricsAddr string `koanf:"metrics_addr" jsonschema:"description=host:port for metrics and health probes"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:      LogConfig{Format: "json", Level: "info"},
		Generate: GenerateConfig{Count: 1},
		Stress:   StressConfig{Workers: 2, PerWorker: 1000},
	}
}

// flagKeys maps command-line flag names to config keys. Flags not listed
// here are not configuration.
var flagKeys = map[string]string{
	"log-format":   "log.format",
	"log-level":    "log.level",
	"count":        "generate.count",
	"workers":      "stress.workers",
	"per-worker":   "stress.per_worker",
	"metrics-addr": "stress.metrics_addr",
}

// Load builds a Config. path names a YAML file; when empty, the XDG default
// file is used if it exists. flags may be nil. Only flags the user actually
// set override values from the file.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := loadFile(k, path); err != nil {
		return nil, err
	}

	if flags != nil {
		provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		})
		if err := k.Load(provider, nil); err != nil {
			return nil, oops.With("operation", "load_flags").Wrap(err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("operation", "unmarshal_config").Wrap(err)
	}
	return &cfg, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	explicit := path != ""
	if !explicit {
		defaultPath, err := xdg.ConfigFile()
		if err != nil {
			//nolint:nilerr // no HOME means no default config file
			return nil
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from the operator
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return oops.With("path", path).Wrapf(err, "config file unavailable")
	}
	if err := ValidateFile(data); err != nil {
		return oops.Code(CodeInvalidConfigFile).With("path", path).Wrap(err)
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return oops.With("path", path).Wrapf(err, "failed to parse config file")
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("log.format must be 'json' or 'text', got %q", c.Log.Format)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Generate.Count < 1 {
		return fmt.Errorf("generate.count must be at least 1, got %d", c.Generate.Count)
	}
	if c.Stress.Workers < 1 {
		return fmt.Errorf("stress.workers must be at least 1, got %d", c.Stress.Workers)
	}
	if c.Stress.PerWorker < 1 {
		return fmt.Errorf("stress.per_worker must be at least 1, got %d", c.Stress.PerWorker)
	}
	return nil
}
