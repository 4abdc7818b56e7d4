// Package config holds the constants and the YAML run configuration of the
// example driver.
//
// A run configuration looks like:
//
//	identity: serial   # or uuid
//	color: auto        # auto, always or never
//	seed: 42           # 0 picks a random seed
//	examples:
//	  - name: type_check
//	    enabled: false
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/funvibe/pylist/pkg/cell"
	"gopkg.in/yaml.v3"
)

// Config is the top-level run configuration.
type Config struct {
	// Identity selects how value identities are minted: "serial" or "uuid".
	Identity string `yaml:"identity,omitempty"`

	// Color controls colored headings. Defaults to "auto".
	Color string `yaml:"color,omitempty"`

	// Seed feeds the random choices some examples make. Zero means random.
	Seed uint64 `yaml:"seed,omitempty"`

	// Examples overrides whether individual examples run.
	Examples []ExampleSpec `yaml:"examples,omitempty"`
}

// ExampleSpec switches one registered example on or off.
type ExampleSpec struct {
	Name    string `yaml:"name"`
	Enabled *bool  `yaml:"enabled,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// LoadConfig reads and parses a run configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses run configuration content.
// The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return &cfg, nil
}

// FindConfig searches dir and its parents for a run configuration file.
// It returns an empty path and a nil error when there is none.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func (c *Config) validate(path string) error {
	if _, err := cell.ParseIdentityScheme(c.Identity); err != nil {
		return fmt.Errorf("%s: identity: %w", path, err)
	}

	switch c.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%s: color: unknown mode %q", path, c.Color)
	}

	seen := make(map[string]bool)
	for i, ex := range c.Examples {
		if ex.Name == "" {
			return fmt.Errorf("%s: examples[%d]: name is required", path, i)
		}
		if seen[ex.Name] {
			return fmt.Errorf("%s: examples[%d]: duplicate example %q", path, i, ex.Name)
		}
		seen[ex.Name] = true
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Identity == "" {
		c.Identity = cell.SerialIdentity.String()
	}
	if c.Color == "" {
		c.Color = ColorAuto
	}
}

// IdentityScheme returns the validated identity scheme.
func (c *Config) IdentityScheme() cell.IdentityScheme {
	s, _ := cell.ParseIdentityScheme(c.Identity)
	return s
}

// Enabled reports whether the example called name should run, falling back
// to def when the configuration does not mention it.
func (c *Config) Enabled(name string, def bool) bool {
	for _, ex := range c.Examples {
		if ex.Name == name && ex.Enabled != nil {
			return *ex.Enabled
		}
	}
	return def
}
