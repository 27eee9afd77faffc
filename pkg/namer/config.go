package namer

import (
	"errors"
	"maps"

	"github.com/dmitrymomot/namer/pkg/config"
)

// Config holds process-wide naming defaults. A Namer copies it on construction
// and never changes it afterwards.
type Config struct {
	DefaultStrategy  Strategy
	DefaultFilename  string
	DefaultExtension string
	// Options holds default options per strategy.
	Options map[Strategy]Options
}

// DefaultConfig returns the stock configuration: random names with a "txt"
// extension and sensible per-strategy options.
func DefaultConfig() Config {
	return Config{
		DefaultStrategy:  StrategyRandom,
		DefaultFilename:  "file",
		DefaultExtension: "txt",
		Options: map[Strategy]Options{
			StrategyRandom:    {KeyLength: DefaultRandomLength},
			StrategyTimestamp: {KeyFormat: DefaultTimestampFormat},
			StrategyDate:      {KeyFormat: DefaultDateFormat},
			StrategyPrefix:    {KeyPrefix: "onym_"},
			StrategySuffix:    {KeySuffix: "_onym"},
			StrategyNumbered:  {KeyNumber: DefaultNumber, KeySeparator: DefaultNumberSeparator},
			StrategyHash:      {KeyAlgorithm: "md5", KeyLength: 16},
		},
	}
}

// clone deep-copies the per-strategy option maps.
func (c Config) clone() Config {
	out := c
	out.Options = make(map[Strategy]Options, len(c.Options))
	for s, o := range c.Options {
		out.Options[s] = o.Clone()
	}
	return out
}

// envConfig is the environment-facing part of the configuration.
type envConfig struct {
	Strategy         string `env:"NAMER_STRATEGY"`
	DefaultFilename  string `env:"NAMER_DEFAULT_FILENAME"`
	DefaultExtension string `env:"NAMER_DEFAULT_EXTENSION"`
	OptionsFile      string `env:"NAMER_OPTIONS_FILE"`
}

// LoadConfig builds a Config from the environment on top of DefaultConfig.
// Optional .env files are loaded first. When NAMER_OPTIONS_FILE points to a
// YAML file mapping strategy names to options, each strategy's options are
// overlaid onto the defaults; a null value in the file resets a key to the
// strategy's built-in default.
//
// Example options file:
//
//	random:
//	  length: 24
//	hash:
//	  algorithm: sha1
//	  length: ~
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) > 0 {
		if err := config.LoadEnv(envFiles...); err != nil {
			return Config{}, errors.Join(ErrLoadingConfig, err)
		}
	}

	var env envConfig
	if err := config.Load(&env); err != nil {
		return Config{}, errors.Join(ErrLoadingConfig, err)
	}

	cfg := DefaultConfig()
	if env.Strategy != "" {
		cfg.DefaultStrategy, _ = ParseStrategy(env.Strategy)
	}
	if env.DefaultFilename != "" {
		cfg.DefaultFilename = env.DefaultFilename
	}
	if env.DefaultExtension != "" {
		cfg.DefaultExtension = env.DefaultExtension
	}

	if env.OptionsFile != "" {
		var file map[string]Options
		if err := config.LoadYAML(env.OptionsFile, &file); err != nil {
			return Config{}, errors.Join(ErrLoadingConfig, err)
		}
		for name, opts := range file {
			s, _ := ParseStrategy(name)
			base := cfg.Options[s]
			if base == nil {
				base = Options{}
			}
			maps.Copy(base, opts)
			cfg.Options[s] = base
		}
	}

	return cfg, nil
}
