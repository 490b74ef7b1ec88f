// Package config loads the springs command configuration from an optional
// YAML file, SPRINGS_* environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"unicode/utf8"

	"github.com/spf13/viper"

	"github.com/katalvlaran/springs/aggregate"
	"github.com/katalvlaran/springs/arrange"
	"github.com/katalvlaran/springs/record"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// EnvPrefix is prepended to every environment override, e.g. SPRINGS_WORKERS.
const EnvPrefix = "SPRINGS"

// Config represents the full springs configuration.
type Config struct {
	Workers      int            `mapstructure:"workers"`
	Multiplicity int            `mapstructure:"multiplicity"`
	Strategy     string         `mapstructure:"strategy"`
	OnError      string         `mapstructure:"on_error"`
	Alphabet     AlphabetConfig `mapstructure:"alphabet"`
	Output       OutputConfig   `mapstructure:"output"`
	Log          LogConfig      `mapstructure:"log"`
}

// AlphabetConfig holds the three pattern symbols as one-rune strings.
type AlphabetConfig struct {
	Active   string `mapstructure:"active"`
	Inactive string `mapstructure:"inactive"`
	Unknown  string `mapstructure:"unknown"`
}

// OutputConfig controls the report.
type OutputConfig struct {
	Format      string `mapstructure:"format"` // text, json, yaml
	PerRecord   bool   `mapstructure:"per_record"`
	MetricsFile string `mapstructure:"metrics_file"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// SetDefaults registers default values on v so that unset keys, env lookups
// and flag bindings all resolve to something sensible.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("workers", 0)
	v.SetDefault("multiplicity", 1)
	v.SetDefault("strategy", arrange.Automaton.String())
	v.SetDefault("on_error", aggregate.SkipInvalid.String())
	v.SetDefault("alphabet.active", string(record.DefaultAlphabet.Active))
	v.SetDefault("alphabet.inactive", string(record.DefaultAlphabet.Inactive))
	v.SetDefault("alphabet.unknown", string(record.DefaultAlphabet.Unknown))
	v.SetDefault("output.format", "text")
	v.SetDefault("output.per_record", false)
	v.SetDefault("output.metrics_file", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.json", false)
}

// Load unmarshals v into a Config and applies defaults.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills values that depend on the host.
func applyDefaults(cfg *Config) {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "text"
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Multiplicity < 1 {
		return fmt.Errorf("%w: multiplicity must be >= 1, got %d", ErrInvalid, c.Multiplicity)
	}
	if _, err := arrange.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := aggregate.ParsePolicy(c.OnError); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := c.Alphabet.Alphabet(); err != nil {
		return err
	}

	validFormats := map[string]bool{"text": true, "json": true, "yaml": true}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("%w: output format %q (must be text, json, or yaml)", ErrInvalid, c.Output.Format)
	}

	return nil
}

// Alphabet converts the string form into a record.Alphabet.
func (a AlphabetConfig) Alphabet() (record.Alphabet, error) {
	var out record.Alphabet
	for _, f := range []struct {
		name string
		val  string
		dst  *rune
	}{
		{"active", a.Active, &out.Active},
		{"inactive", a.Inactive, &out.Inactive},
		{"unknown", a.Unknown, &out.Unknown},
	} {
		if utf8.RuneCountInString(f.val) != 1 {
			return out, fmt.Errorf("%w: alphabet.%s must be a single character, got %q", ErrInvalid, f.name, f.val)
		}
		*f.dst, _ = utf8.DecodeRuneInString(f.val)
	}
	if !out.Valid() {
		return out, fmt.Errorf("%w: alphabet symbols must be distinct and not whitespace, digits or commas", ErrInvalid)
	}

	return out, nil
}

// Options translates the configuration into aggregate options.
// Call Validate first; invalid values surface as aggregate.ErrOptionViolation.
func (c *Config) Options() ([]aggregate.Option, error) {
	strategy, err := arrange.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, err
	}
	policy, err := aggregate.ParsePolicy(c.OnError)
	if err != nil {
		return nil, err
	}
	alpha, err := c.Alphabet.Alphabet()
	if err != nil {
		return nil, err
	}

	return []aggregate.Option{
		aggregate.WithWorkers(c.Workers),
		aggregate.WithMultiplicity(c.Multiplicity),
		aggregate.WithStrategy(strategy),
		aggregate.WithPolicy(policy),
		aggregate.WithAlphabet(alpha),
	}, nil
}
