// Package config provides configuration loading for the gocomp CLI.
//
// Configuration is loaded from a single file specified by:
//   - the --config flag, or
//   - the GOCOMP_CONFIG environment variable.
//
// When neither is set the defaults apply. Relative paths in the file are
// resolved against the directory containing it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	gocomp "github.com/reoring/gocomp"
)

// EnvVar names the environment variable holding the config path.
const EnvVar = "GOCOMP_CONFIG"

// Config is the root configuration structure.
type Config struct {
	// Builtin lists the built-in component packs to register ("genshicraft").
	Builtin []string `yaml:"builtin"`
	// Components lists directories of declarative component files.
	Components []string `yaml:"components"`
	// Manifest is the build manifest path.
	Manifest string `yaml:"manifest"`
	// Output is the directory artifacts are written to.
	Output string `yaml:"output"`
	// Indent is the JSON indent of written artifacts; empty for compact output.
	Indent string `yaml:"indent"`
	// Nested splits target paths on "/" into nested objects.
	Nested bool `yaml:"nested"`
	// KeepGoing continues building after a failed artifact.
	KeepGoing bool `yaml:"keep_going"`
	// UnknownProperties overrides every schema's policy ("strict" or
	// "strip"). Empty keeps each component's own policy.
	UnknownProperties string `yaml:"unknown_properties"`
	// Language selects issue messages ("en" or "ja").
	Language string        `yaml:"language"`
	Logging  LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // trace, debug, info, warn, error
	Format string `yaml:"format"` // console or json
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Builtin:  []string{"genshicraft"},
		Manifest: "manifest.yaml",
		Output:   "out",
		Indent:   "  ",
		Language: "en",
		Logging:  LoggingConfig{Level: "info", Format: "console"},
	}
}

// Resolve returns the config path from the flag value or, when empty, from
// GOCOMP_CONFIG. An empty result means "use defaults".
func Resolve(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvVar)
}

// Load reads the file at path over the defaults. An empty path returns
// Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.resolvePaths(filepath.Dir(path))
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) resolvePaths(base string) {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}
	for i, d := range c.Components {
		c.Components[i] = abs(d)
	}
	c.Manifest = abs(c.Manifest)
	c.Output = abs(c.Output)
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format: %q is not console or json", c.Logging.Format))
	}
	if c.UnknownProperties != "" {
		if _, err := gocomp.ParseUnknownPolicy(c.UnknownProperties); err != nil {
			errs = append(errs, fmt.Errorf("unknown_properties: %w", err))
		}
	}
	switch c.Language {
	case "", "en", "ja":
	default:
		errs = append(errs, fmt.Errorf("language: %q is not en or ja", c.Language))
	}
	if strings.Trim(c.Indent, " \t") != "" {
		errs = append(errs, fmt.Errorf("indent: only spaces and tabs are allowed"))
	}
	return errors.Join(errs...)
}

// UnknownPolicy returns the configured override, if any.
func (c *Config) UnknownPolicy() (gocomp.UnknownPolicy, bool) {
	if c.UnknownProperties == "" {
		return gocomp.UnknownStrict, false
	}
	p, err := gocomp.ParseUnknownPolicy(c.UnknownProperties)
	if err != nil {
		return gocomp.UnknownStrict, false
	}
	return p, true
}
