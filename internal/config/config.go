// Package config loads miscore configuration from layered sources:
// defaults, the global config file, a local config file, and environment
// variables, in increasing priority.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the miscore CLI tool configuration.
type Configuration struct {
	RecordsFile       string `koanf:"records_file" validate:"required"`
	Strict            bool   `koanf:"strict"`             // Map invalid documents to a non-zero exit code
	CheckScreenshots  bool   `koanf:"check_screenshots"`  // Verify screenshot files exist next to the records file
	SkipConfirmations bool   `koanf:"skip_confirmations"` // Skip confirmation prompts (can also be set via MISCORE_YES env var)
	NoColor           bool   `koanf:"no_color"`
}

// Load loads configuration from global, local, and environment sources.
// Priority: Environment variables > Local config > Global config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	defaults := GetDefaults()
	for key, value := range defaults {
		k.Set(key, value)
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		globalPath := filepath.Join(homeDir, ".miscore", "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	// Environment variables win over files
	k.Load(env.Provider("MISCORE_", ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.RecordsFile = expandHomePath(cfg.RecordsFile)

	// MISCORE_YES is an alias for skip_confirmations
	if os.Getenv("MISCORE_YES") != "" {
		cfg.SkipConfirmations = true
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys.
// Example: MISCORE_RECORDS_FILE -> records_file
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "MISCORE_"))
}

// expandHomePath expands ~ to the user's home directory.
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
