// Package config loads application configuration from the environment and
// from YAML files.
//
// It wraps `github.com/joho/godotenv` for .env files,
// `github.com/caarlos0/env/v11` for parsing environment variables into
// tagged structs and `gopkg.in/yaml.v3` for structured files such as
// per-strategy naming options.
//
// # Usage
//
//	type Settings struct {
//	    Strategy    string `env:"NAMER_STRATEGY" envDefault:"random"`
//	    OptionsFile string `env:"NAMER_OPTIONS_FILE"`
//	}
//
//	if err := config.LoadEnv("./config/.env"); err != nil {
//	    log.Fatalf("loading env: %v", err)
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
//	var options map[string]map[string]any
//	if err := config.LoadYAML(s.OptionsFile, &options); err != nil {
//	    log.Fatalf("parsing options: %v", err)
//	}
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig` – failed to parse env vars or YAML into the target.
//   - `ErrReadingFile`   – a .env or YAML file could not be read.
//   - `ErrNilPointer`    – nil pointer passed to a loader.
package config
