package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LoadEnv loads one or more .env files into the process environment.
// Without arguments it loads ".env" from the working directory.
// Variables already present in the environment are never overwritten, and
// for a variable set in several files the first file wins.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrReadingFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(files ...string) {
	if err := LoadEnv(files...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}

// Load parses environment variables into v based on `env` struct tags.
//
// Example:
//
//	type NamerConfig struct {
//		Strategy  string `env:"NAMER_STRATEGY" envDefault:"random"`
//		Extension string `env:"NAMER_DEFAULT_EXTENSION" envDefault:"txt"`
//	}
//
//	var cfg NamerConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// This is useful for configurations that are required for the application to start.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// LoadYAML decodes the YAML file at path into v.
// Null values in the file decode to nil, which lets option maps express
// "reset to default".
func LoadYAML[T any](path string, v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrReadingFile, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}
