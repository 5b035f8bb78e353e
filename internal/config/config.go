package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the CLI configuration
type Config struct {
	Geometry GeometryConfig `json:"geometry"`
	Output   OutputConfig   `json:"output"`
}

// GeometryConfig holds defaults for the geometry operations
type GeometryConfig struct {
	ExpandFactor float64 `json:"expand_factor"`
	AspectRatio  float64 `json:"aspect_ratio"`
	Tolerance    float64 `json:"tolerance"`
}

// OutputConfig holds configuration for result rendering
type OutputConfig struct {
	JSON      bool   `json:"json"`
	Indent    string `json:"indent"`
	Precision int    `json:"precision"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Geometry: GeometryConfig{
			ExpandFactor: 1.2,
			AspectRatio:  1.0,
			Tolerance:    1e-9,
		},
		Output: OutputConfig{
			JSON:      false,
			Indent:    "  ",
			Precision: 4,
		},
	}
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Geometry.ExpandFactor <= 0 {
		return fmt.Errorf("geometry.expand_factor must be positive")
	}

	if c.Geometry.AspectRatio <= 0 {
		return fmt.Errorf("geometry.aspect_ratio must be positive")
	}

	if c.Geometry.Tolerance < 0 {
		return fmt.Errorf("geometry.tolerance cannot be negative")
	}

	if c.Output.Precision < 0 || c.Output.Precision > 17 {
		return fmt.Errorf("output.precision must be between 0 and 17")
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "bboxkit", "config.json")
}
