// Package config loads the apperror command configuration from the
// environment, optionally seeded from .env files.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Output formats understood by the export command.
const (
	OutputTable = "table"
	OutputYAML  = "yaml"
	OutputTOML  = "toml"
)

var outputs = []string{OutputTable, OutputYAML, OutputTOML}

// Config is the process configuration.
type Config struct {
	// Lang is the language the default catalog resolves messages in.
	Lang string `env:"APPERR_LANG" envDefault:"en"`
	// CatalogDir holds catalog files overriding the built-in entries.
	CatalogDir string `env:"APPERR_CATALOG_DIR"`
	Debug      bool   `env:"APPERR_DEBUG"`
	Output     string `env:"APPERR_OUTPUT" envDefault:"table"`
}

// Load reads .env files, then parses the environment into a Config.
// Without files, a .env in the working directory is read if it exists.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, fmt.Errorf("load %v: %w", files, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the language tag and output format.
func (c Config) Validate() error {
	if _, err := c.Language(); err != nil {
		return err
	}
	if !slices.Contains(outputs, c.Output) {
		return fmt.Errorf("%w: %q (want one of %v)", ErrInvalidOutput, c.Output, outputs)
	}
	return nil
}

// Language parses Lang.
func (c Config) Language() (language.Tag, error) {
	tag, err := language.Parse(c.Lang)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q: %w", ErrInvalidLanguage, c.Lang, err)
	}
	return tag, nil
}
