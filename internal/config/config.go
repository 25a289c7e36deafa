package config

import (
	"fmt"
	"os"
	"regexp"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/gyeh/datenorm/internal/resolve"
)

// DSNEnv is the environment variable consulted when --dsn is not given.
const DSNEnv = "DATENORM_DB_URL"

// Config holds all runtime configuration for a datenorm run.
type Config struct {
	DSN              string
	FilePath         string
	OutPath          string
	LogFormat        string // "text" or "json"
	LogLevel         string
	Force            bool
	Debug            bool
	FailOnUnresolved bool
	Workers          int
	SampleSize       int64
	Languages        []string // locales for the permissive parser
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	Languages        []string `yaml:"languages"`
	Workers          *int     `yaml:"workers"`
	Debug            *bool    `yaml:"debug"`
	FailOnUnresolved *bool    `yaml:"fail_on_unresolved"`
}

// Default returns a Config with every optional field set.
func Default() Config {
	return Config{
		LogFormat:  "text",
		LogLevel:   "info",
		Workers:    runtime.NumCPU(),
		SampleSize: 1000,
		Languages:  append([]string(nil), resolve.DefaultLanguages...),
	}
}

// LoadFromFile reads a YAML config file and merges its values into Config.
// Keys absent from the file leave the current values untouched.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if yc.Languages != nil {
		c.Languages = yc.Languages
	}
	if yc.Workers != nil {
		c.Workers = *yc.Workers
	}
	if yc.Debug != nil {
		c.Debug = *yc.Debug
	}
	if yc.FailOnUnresolved != nil {
		c.FailOnUnresolved = *yc.FailOnUnresolved
	}
	return c.validateLanguages()
}

var languageCode = regexp.MustCompile(`^[a-z]{2,3}(-[A-Za-z0-9]+)?$`)

// validateLanguages checks every entry is a locale code. An empty list
// falls back to resolve.DefaultLanguages.
func (c *Config) validateLanguages() error {
	if len(c.Languages) == 0 {
		c.Languages = append([]string(nil), resolve.DefaultLanguages...)
		return nil
	}
	for _, lang := range c.Languages {
		if !languageCode.MatchString(lang) {
			return fmt.Errorf("invalid language %q in config", lang)
		}
	}
	return nil
}

// ValidateResolve checks the fields every resolving command needs.
func (c *Config) ValidateResolve() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return c.validateLanguages()
}

// Validate checks required fields and returns an error if the config is invalid.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	return c.ValidateResolve()
}

// ValidateWithDSN checks both file and DSN fields.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or %s is required", DSNEnv)
	}
	return nil
}
