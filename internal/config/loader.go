package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load discovers a config file, merges it with defaults, applies environment
// variable overrides, validates the result, and returns the final config.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return LoadFrom(cwd)
}

// LoadFrom loads config using the given directory as the root for file
// discovery. This is the testable entry point — Load() calls it with
// os.Getwd().
func LoadFrom(dir string) (*Config, error) {
	cfg := DefaultConfig()

	path, err := discoverConfigPath(dir)
	if err != nil {
		return nil, fmt.Errorf("config discovery: %w", err)
	}

	if path != "" {
		override, err := loadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		merge(&cfg, override)
	}

	applyEnvOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// discoverConfigPath searches the discovery chain and returns the first
// config file that exists. Empty string means defaults-only mode.
func discoverConfigPath(dir string) (string, error) {
	local := filepath.Join(dir, "specdeck.yaml")
	if _, err := os.Stat(local); err == nil {
		return local, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", nil // can't resolve home, skip
	}
	user := filepath.Join(home, ".config", "specdeck", "config.yaml")
	if _, err := os.Stat(user); err == nil {
		return user, nil
	}

	return "", nil
}

func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	return &cfg, nil
}

// merge overlays non-zero fields from override onto base.
func merge(base *Config, override *Config) {
	if override.CLI.Binary != "" {
		base.CLI.Binary = override.CLI.Binary
	}
	if override.Managers.Catalog != "" {
		base.Managers.Catalog = override.Managers.Catalog
	}
	if override.UI.LogLines != 0 {
		base.UI.LogLines = override.UI.LogLines
	}
	if override.UI.EventBuffer != 0 {
		base.UI.EventBuffer = override.UI.EventBuffer
	}
	if override.Update.DisableCheck {
		base.Update.DisableCheck = true
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SPECDECK_CLI_BINARY"); v != "" {
		cfg.CLI.Binary = v
	}
	if v := os.Getenv("SPECDECK_MANAGERS_CATALOG"); v != "" {
		cfg.Managers.Catalog = v
	}
	if v := os.Getenv("SPECDECK_UI_LOG_LINES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.UI.LogLines = n
		}
	}
	if v := os.Getenv("SPECDECK_UPDATE_DISABLE_CHECK"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Update.DisableCheck = b
		}
	}
}
