package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"ghseed/pkg/github"
	"ghseed/pkg/manifest"
	"ghseed/pkg/names"
	"ghseed/pkg/seed"
)

// PathEnvVar overrides the default configuration file location
const PathEnvVar = "GHSEED_CONFIG"

// Config represents the ghseed configuration
type Config struct {
	GitHub GitHubConfig `yaml:"github"`
	Seed   SeedConfig   `yaml:"seed"`
}

// GitHubConfig represents GitHub-specific configuration. The token is never
// stored here, it only comes from the GH_PAT environment variable.
type GitHubConfig struct {
	Organization string `yaml:"organization"`
	APIURL       string `yaml:"api_url,omitempty"`
}

// SeedConfig represents repository generation settings
type SeedConfig struct {
	Count     int    `yaml:"count"`
	Words     int    `yaml:"words"`
	Separator string `yaml:"separator"`
	Manifest  string `yaml:"manifest"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		GitHub: GitHubConfig{
			Organization: seed.DefaultOrganization,
		},
		Seed: SeedConfig{
			Count:     seed.DefaultCount,
			Words:     names.DefaultWords,
			Separator: names.DefaultSeparator,
			Manifest:  manifest.DefaultPath,
		},
	}
}

// LoadConfig loads configuration from the default location
func LoadConfig() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	return LoadConfigFromPath(configPath)
}

// LoadConfigFromPath loads configuration from a specific path. Settings
// missing from the file keep their defaults.
func LoadConfigFromPath(path string) (*Config, error) {
	config := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil // Return defaults if file doesn't exist
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves configuration to the default location
func (c *Config) SaveConfig() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	return c.SaveConfigToPath(configPath)
}

// SaveConfigToPath saves configuration to a specific path
func (c *Config) SaveConfigToPath(path string) error {
	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetConfigPath returns the configuration file path, honouring GHSEED_CONFIG
func GetConfigPath() (string, error) {
	if path := os.Getenv(PathEnvVar); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".ghseed", "config.yaml"), nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	var errs github.ValidationErrors

	if c.GitHub.Organization == "" {
		errs.Add("github.organization", "", "is required")
	}
	if c.Seed.Count < 1 {
		errs.Add("seed.count", fmt.Sprint(c.Seed.Count), "must be at least 1")
	}
	if c.Seed.Words < 2 {
		errs.Add("seed.words", fmt.Sprint(c.Seed.Words), "must be at least 2")
	}
	if c.Seed.Separator == "" {
		errs.Add("seed.separator", "", "is required")
	}
	if c.Seed.Manifest == "" {
		errs.Add("seed.manifest", "", "is required")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
