// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format       string `yaml:"format"`
		Workers      int    `yaml:"workers"`
		Encoding     string `yaml:"encoding"`
		SQLiteTable  string `yaml:"sqlite_table"`
		Verbose      bool   `yaml:"verbose"`
		Debug        bool   `yaml:"debug"`
		NoColor      bool   `yaml:"no_color"`
		DetectHeader bool   `yaml:"detect_header"`
	} `yaml:"defaults"`

	// Cleaning settings applied to every run unless overridden by flags
	Cleaning struct {
		NameColumns      []string `yaml:"name_columns"`
		TokenColumns     []string `yaml:"token_columns"`
		CompleteClusters []string `yaml:"complete_clusters"`
		RequiredColumns  []string `yaml:"required_columns"`
		PatternsFile     string   `yaml:"patterns_file"`
	} `yaml:"cleaning"`

	// Profiles for different cleaning scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents a cleaning profile with specific settings
type Profile struct {
	Format           string   `yaml:"format"`
	Workers          int      `yaml:"workers"`
	Encoding         string   `yaml:"encoding"`
	Verbose          bool     `yaml:"verbose"`
	NoColor          bool     `yaml:"no_color"`
	DetectHeader     bool     `yaml:"detect_header"`
	NameColumns      []string `yaml:"name_columns"`
	TokenColumns     []string `yaml:"token_columns"`
	CompleteClusters []string `yaml:"complete_clusters"`
	RequiredColumns  []string `yaml:"required_columns"`
	PatternsFile     string   `yaml:"patterns_file"`
	Description      string   `yaml:"description"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	// Default configuration
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	config.Defaults.Format = "text"
	config.Defaults.Workers = 0 // 0 means CPU count
	config.Defaults.SQLiteTable = "data"

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Store defaults before unmarshaling
	defaultFormat := config.Defaults.Format
	defaultTable := config.Defaults.SQLiteTable

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Restore defaults the file left unset. Unmarshaling zeroes fields that
	// are absent from the file, so string defaults need this round trip.
	if !containsField(data, "defaults", "format") {
		config.Defaults.Format = defaultFormat
	}
	if !containsField(data, "defaults", "sqlite_table") {
		config.Defaults.SQLiteTable = defaultTable
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// ValidateConfig checks settings that would otherwise fail deep inside a run.
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}
	if config.Defaults.Workers < 0 {
		return fmt.Errorf("defaults.workers cannot be negative")
	}
	if pf := config.Cleaning.PatternsFile; pf != "" {
		ext := filepath.Ext(pf)
		if ext != ".yml" && ext != ".yaml" {
			return fmt.Errorf("cleaning.patterns_file must be a .yml or .yaml file")
		}
	}
	return nil
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	// Check current directory first - prioritize config.yaml
	if fileExists("config.yaml") {
		return "config.yaml"
	}
	if fileExists("table-tamer.yaml") {
		return "table-tamer.yaml"
	}
	if fileExists("table-tamer.yml") {
		return "table-tamer.yml"
	}

	// Project-specific dotfile config
	if fileExists(".table-tamer.yaml") {
		return ".table-tamer.yaml"
	}
	if fileExists(".table-tamer.yml") {
		return ".table-tamer.yml"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	// Environment override, then home dotdir, then XDG
	if configDir := os.Getenv("TABLE_TAMER_CONFIG_DIR"); configDir != "" {
		configFile := filepath.Join(configDir, "config.yaml")
		if fileExists(configFile) {
			return configFile
		}
	}

	homeConfig := filepath.Join(home, ".table-tamer", "config.yaml")
	if fileExists(homeConfig) {
		return homeConfig
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	xdgConfigFile := filepath.Join(xdgConfig, "table-tamer", "config.yaml")
	if fileExists(xdgConfigFile) {
		return xdgConfigFile
	}

	return ""
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return info != nil && !info.IsDir()
}

// ListProfiles returns a list of available profile names
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	return profiles
}

// GetProfile returns a profile by name, or nil if not found
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// containsField checks if a nested field exists in the YAML data
func containsField(data []byte, path ...string) bool {
	var yamlData map[string]interface{}
	err := yaml.Unmarshal(data, &yamlData)
	if err != nil {
		return false
	}

	current := yamlData
	for i, key := range path {
		if i == len(path)-1 {
			_, exists := current[key]
			return exists
		}
		if next, ok := current[key].(map[string]interface{}); ok {
			current = next
		} else {
			return false
		}
	}
	return false
}

// LoadConfigOrDefault loads configuration from configFile (or searches
// standard locations when configFile is empty). If loading fails, it returns
// a default configuration so callers do not crash on a missing or bad file.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		cfg, _ = LoadConfig("")
	}
	return cfg
}
