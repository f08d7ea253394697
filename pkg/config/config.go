// ABOUTME: Configuration management for the wallpaper utility
// ABOUTME: Layers defaults, an optional YAML file, and environment variables

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	coreconfig "iotd-wallpaper/core/config"
	"iotd-wallpaper/core/domain"
)

// Image source selectors
const (
	SourcePage = "page"
	SourceFeed = "feed"
)

const (
	appDirName         = "nasa_iotd"
	defaultHTTPTimeout = 30
)

// Config holds all application configuration
type Config struct {
	// SaveDir is the directory images are saved into
	SaveDir string `yaml:"save_dir"`

	// LogDir is the directory holding the run log
	LogDir string `yaml:"log_dir"`

	// KeepHistory disables deletion of previously saved images
	KeepHistory bool `yaml:"keep_history"`

	// Source selects where the image reference comes from (page or feed)
	Source string `yaml:"source"`

	// PageURL overrides the image-of-the-day page address
	PageURL string `yaml:"page_url"`

	// FeedURL overrides the image-of-the-day feed address
	FeedURL string `yaml:"feed_url"`

	// HTTPTimeout is the HTTP client timeout in seconds
	HTTPTimeout int `yaml:"http_timeout"`

	// LogLevel selects the console log verbosity
	LogLevel string `yaml:"log_level"`

	// ExtractMetadata toggles page metadata enrichment; nil means enabled
	ExtractMetadata *bool `yaml:"extract_metadata"`

	// ExtractColors toggles accent color enrichment; nil means enabled
	ExtractColors *bool `yaml:"extract_colors"`
}

// Default returns the configuration with platform defaults applied
func Default() *Config {
	base := defaultBaseDir()
	return &Config{
		SaveDir:     filepath.Join(base, "images"),
		LogDir:      base,
		Source:      SourcePage,
		HTTPTimeout: defaultHTTPTimeout,
		LogLevel:    "info",
	}
}

// defaultBaseDir resolves the per-user application directory. On Windows
// this sits under %LocalAppData%, elsewhere under the user cache directory,
// falling back to the working directory when neither resolves.
func defaultBaseDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, appDirName)
	}
	return appDirName
}

// Load builds the effective configuration: defaults first, then the
// optional YAML file, then environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile overlays values from a YAML file onto the configuration
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	return nil
}

// ApplyEnv overlays IOTD_* environment variables onto the configuration
func (c *Config) ApplyEnv() {
	c.SaveDir = getEnvOrDefault("IOTD_SAVE_DIR", c.SaveDir)
	c.LogDir = getEnvOrDefault("IOTD_LOG_DIR", c.LogDir)
	c.Source = getEnvOrDefault("IOTD_SOURCE", c.Source)
	c.PageURL = getEnvOrDefault("IOTD_PAGE_URL", c.PageURL)
	c.FeedURL = getEnvOrDefault("IOTD_FEED_URL", c.FeedURL)
	c.LogLevel = getEnvOrDefault("IOTD_LOG_LEVEL", c.LogLevel)
	c.HTTPTimeout = getEnvAsIntOrDefault("IOTD_HTTP_TIMEOUT", c.HTTPTimeout)
	c.KeepHistory = getEnvAsBoolOrDefault("IOTD_KEEP_HISTORY", c.KeepHistory)

	if b, ok := getEnvAsBool("IOTD_EXTRACT_METADATA"); ok {
		c.ExtractMetadata = &b
	}
	if b, ok := getEnvAsBool("IOTD_EXTRACT_COLORS"); ok {
		c.ExtractColors = &b
	}
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if b, ok := getEnvAsBool(key); ok {
		return b
	}
	return defaultValue
}

// getEnvAsBool parses the environment variable as bool, reporting presence
func getEnvAsBool(key string) (bool, bool) {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b, true
		}
	}
	return false, false
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.SaveDir == "" {
		return errors.New("save directory cannot be empty")
	}

	if c.LogDir == "" {
		return errors.New("log directory cannot be empty")
	}

	if c.Source != SourcePage && c.Source != SourceFeed {
		return errors.New("source must be 'page' or 'feed'")
	}

	if c.HTTPTimeout < 1 {
		return errors.New("http timeout must be at least 1 second")
	}

	return nil
}

// RunConfig converts the configuration to the domain run settings
func (c *Config) RunConfig() domain.RunConfig {
	return domain.RunConfig{
		SaveDir:     c.SaveDir,
		LogDir:      c.LogDir,
		KeepHistory: c.KeepHistory,
	}
}

// Enrichment converts the optional toggles to an enrichment configuration.
// Unset toggles keep their defaults.
func (c *Config) Enrichment() coreconfig.EnrichmentConfig {
	enrichment := coreconfig.DefaultEnrichmentConfig()
	if c.ExtractMetadata != nil {
		enrichment.ExtractMetadata = *c.ExtractMetadata
	}
	if c.ExtractColors != nil {
		enrichment.ExtractColors = *c.ExtractColors
	}
	return enrichment
}
