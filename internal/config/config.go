// Package config loads the client configuration from YAML
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/thenoetrevino/tally/internal/models"
	"gopkg.in/yaml.v3"
)

// Defaults used when the config file leaves a value unset
const (
	DefaultEndpoint       = "http://127.0.0.1:8080/graphql"
	DefaultRequestTimeout = 15 * time.Second
)

// Config represents the application configuration
type Config struct {
	// Endpoint is the GraphQL URL of the survey backend
	Endpoint string `yaml:"endpoint"`

	// Token is sent as a bearer token when set
	Token string `yaml:"token,omitempty"`

	// RequestTimeout bounds every backend call, e.g. "15s"
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// Scaffold lists the category buckets offered when a dataset has no records
	Scaffold []models.ScaffoldCategory `yaml:"scaffold"`

	KeyMappings KeyMappings `yaml:"key_mappings"`
	ColorScheme ColorScheme `yaml:"theme"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from TALLY_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("TALLY_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnv lets TALLY_ENDPOINT and TALLY_TOKEN override the file
func applyEnv(config *Config) {
	if endpoint := os.Getenv("TALLY_ENDPOINT"); endpoint != "" {
		config.Endpoint = endpoint
	}
	if token := os.Getenv("TALLY_TOKEN"); token != "" {
		config.Token = token
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	var config Config

	configPath, err := getConfigPath()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case readErr == nil:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		case errors.Is(readErr, os.ErrNotExist):
			// defaults only
		default:
			return nil, readErr
		}
	}

	loadThemeFile(&config)
	applyEnv(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o600)
}

// Path returns where Load reads the config file from
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tally", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tally", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	if len(c.Scaffold) == 0 {
		c.Scaffold = models.DefaultScaffold()
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
