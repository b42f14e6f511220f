// Package config loads allschemas CLI and server settings.
//
// Precedence, lowest to highest: defaults, allschemas.yaml (or --config),
// .env file, ALLSCHEMAS_* environment variables, explicitly set flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/chentanran/allschemas"
)

// Default configuration values.
const (
	DefaultFile           = "allschemas.yaml"
	DefaultFormat         = "json"
	DefaultAddr           = ":8080"
	DefaultWait           = 5 * time.Second
	DefaultHTTPTimeout    = 10 * time.Second
	DefaultLogLevel       = "info"
	DefaultLabelFieldMode = "legacy"

	envPrefix = "ALLSCHEMAS_"
)

// ErrInvalid reports a configuration value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all settings.
type Config struct {
	// Lang is the catalog language (BCP 47 or an Accept-Language list).
	Lang string `koanf:"lang"`
	// Catalog is a YAML translation catalog; empty means identity.
	Catalog string `koanf:"catalog"`
	// Dicts is a YAML/JSON dictionary file; empty means no dictionaries.
	Dicts          string        `koanf:"dicts"`
	LabelFieldMode string        `koanf:"label_field_mode"`
	LogLevel       string        `koanf:"log_level"`
	Format         string        `koanf:"format"`
	Wait           time.Duration `koanf:"wait"`
	Addr           string        `koanf:"addr"`
	Watch          bool          `koanf:"watch"`
	HTTPTimeout    time.Duration `koanf:"http_timeout"`
	// APIs maps names used by `api:` references to URLs.
	APIs map[string]string `koanf:"apis"`

	// File is the config file actually read, if any.
	File string `koanf:"-"`
}

// Load reads the configuration. cfgFile may be empty to use ./allschemas.yaml
// when present. flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"format":           DefaultFormat,
		"addr":             DefaultAddr,
		"wait":             DefaultWait.String(),
		"http_timeout":     DefaultHTTPTimeout.String(),
		"log_level":        DefaultLogLevel,
		"label_field_mode": DefaultLabelFieldMode,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := cfgFile
	if used == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			used = DefaultFile
		}
	}
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// .env only fills variables that are not already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	// ALLSCHEMAS_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Format {
	case "json", "yaml":
	default:
		return fmt.Errorf("%w: format %q (want json or yaml)", ErrInvalid, c.Format)
	}
	switch c.LabelFieldMode {
	case "legacy", "corrected":
	default:
		return fmt.Errorf("%w: label_field_mode %q (want legacy or corrected)", ErrInvalid, c.LabelFieldMode)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return l, nil
}

// Mode returns the label field mode.
func (c *Config) Mode() allschemas.LabelFieldMode {
	return allschemas.ParseLabelFieldMode(c.LabelFieldMode)
}
