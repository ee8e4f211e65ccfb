// Package config loads the host configuration used by the cardkit CLI and
// server: the capabilities the host provides and the parse limits it applies.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/reoring/cardkit"
)

// HostConfig describes a rendering host.
type HostConfig struct {
	// Capabilities maps capability names to the version the host provides.
	Capabilities map[string]string `toml:"capabilities" yaml:"capabilities"`
	Parse        ParseConfig       `toml:"parse" yaml:"parse"`
	// Language selects the issue message catalog ("en", "ja").
	Language string `toml:"language" yaml:"language,omitempty"`
}

// ParseConfig holds parse limits and policies.
type ParseConfig struct {
	MaxDepth         int    `toml:"max_depth" yaml:"max_depth,omitempty"`
	MaxBytes         int64  `toml:"max_bytes" yaml:"max_bytes,omitempty"`
	MaxFallbackDepth int    `toml:"max_fallback_depth" yaml:"max_fallback_depth,omitempty"`
	DuplicateKeys    string `toml:"duplicate_keys" yaml:"duplicate_keys,omitempty"`
	UnknownTypes     string `toml:"unknown_types" yaml:"unknown_types,omitempty"`
}

// Default returns the configuration used when no file is given: no
// capabilities, duplicate keys rejected, unknown types kept.
func Default() *HostConfig {
	return &HostConfig{
		Capabilities: map[string]string{},
		Parse: ParseConfig{
			MaxDepth:         64,
			MaxFallbackDepth: 16,
			DuplicateKeys:    "error",
			UnknownTypes:     "passthrough",
		},
		Language: "en",
	}
}

// Load reads a host config from path. The format follows the extension:
// .toml, .yaml or .yml. Keys absent from the file keep their Default value.
func Load(path string) (*HostConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	if cfg.Capabilities == nil {
		cfg.Capabilities = map[string]string{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional is Load, or Default when path is empty.
func LoadOptional(path string) (*HostConfig, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks capability versions and policy names.
func (c *HostConfig) Validate() error {
	var errs []error
	names := make([]string, 0, len(c.Capabilities))
	for name := range c.Capabilities {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := cardkit.ParseSemanticVersion(c.Capabilities[name]); err != nil {
			errs = append(errs, fmt.Errorf("capability %s: %w", name, err))
		}
	}
	if _, err := c.Parse.Options(); err != nil {
		errs = append(errs, err)
	}
	if _, err := cardkit.ParseUnknownPolicy(c.Parse.UnknownTypes); err != nil {
		errs = append(errs, err)
	}
	if c.Parse.MaxDepth < 0 || c.Parse.MaxBytes < 0 || c.Parse.MaxFallbackDepth < 0 {
		errs = append(errs, errors.New("parse limits must not be negative"))
	}
	return errors.Join(errs...)
}

// Options converts the parse section to cardkit.ParseOpt.
func (p ParseConfig) Options() (cardkit.ParseOpt, error) {
	dup, err := cardkit.ParseSeverity(p.DuplicateKeys)
	if err != nil {
		return cardkit.ParseOpt{}, err
	}
	return cardkit.ParseOpt{
		Strictness:       cardkit.Strictness{OnDuplicateKey: dup},
		MaxDepth:         p.MaxDepth,
		MaxBytes:         p.MaxBytes,
		MaxFallbackDepth: p.MaxFallbackDepth,
	}, nil
}

// UnknownPolicy returns the configured unknown-type policy.
func (p ParseConfig) UnknownPolicy() cardkit.UnknownPolicy {
	pol, _ := cardkit.ParseUnknownPolicy(p.UnknownTypes)
	return pol
}
