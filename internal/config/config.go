package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultVaultPath is used when no vault is configured.
	DefaultVaultPath = "~/Documents/vault"

	// DefaultSpecsDir is the vault-relative directory holding comparison specs.
	DefaultSpecsDir = "_diffspecs"

	// DefaultSettleDelayMS is the pause between the merge risk prompt and the
	// first comparison view.
	DefaultSettleDelayMS = 100
)

// Config represents the application configuration
type Config struct {
	Vault   VaultConfig   `yaml:"vault"`
	Review  ReviewConfig  `yaml:"review"`
	Logging LoggingConfig `yaml:"logging"`
}

// VaultConfig holds vault location settings
type VaultConfig struct {
	Path     string `yaml:"path"`
	SpecsDir string `yaml:"specs_dir"`
}

// ReviewConfig holds conflict review settings
type ReviewConfig struct {
	SettleDelayMS int `yaml:"settle_delay_ms"`
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Format  string `yaml:"format"` // "json" or "text"
	Level   string `yaml:"level"`  // "debug", "info", "warn", "error"
	File    string `yaml:"file"`   // Log file path (empty = default state location)
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Vault: VaultConfig{
			Path:     DefaultVaultPath,
			SpecsDir: DefaultSpecsDir,
		},
		Review: ReviewConfig{
			SettleDelayMS: DefaultSettleDelayMS,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Format:  "json",
			Level:   "info",
			File:    "",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Vault.SpecsDir == "" {
		return &ValidationError{
			Field:   "vault.specs_dir",
			Message: "must not be empty",
		}
	}
	if filepath.IsAbs(c.Vault.SpecsDir) {
		return &ValidationError{
			Field:   "vault.specs_dir",
			Message: "must be relative to the vault root",
		}
	}

	if c.Review.SettleDelayMS < 0 {
		return &ValidationError{
			Field:   "review.settle_delay_ms",
			Message: "must not be negative",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	return nil
}

// VaultPath returns the vault root from the VAULTDIFF_VAULT env var,
// falling back to the configured path, with ~ expanded.
func (c *Config) VaultPath() string {
	if env := os.Getenv("VAULTDIFF_VAULT"); env != "" {
		return ExpandPath(env)
	}
	if c.Vault.Path != "" {
		return ExpandPath(c.Vault.Path)
	}
	return ExpandPath(DefaultVaultPath)
}

// SettleDelay returns the review settle delay as a duration
func (c *Config) SettleDelay() time.Duration {
	return time.Duration(c.Review.SettleDelayMS) * time.Millisecond
}

// ExpandPath expands a leading ~ to the user's home directory
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
