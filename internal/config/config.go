package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Filename is the project configuration file written by `coffre init`.
const Filename = "coffre.yaml"

// Config represents the top-level coffre.yaml configuration.
type Config struct {
	Vault    VaultConfig    `yaml:"vault"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Git      GitConfig      `yaml:"git"`
}

// VaultConfig locates the snapshot file.
type VaultConfig struct {
	Path string `yaml:"path"`
}

// DefaultsConfig holds the values used when account creation omits a
// variant field. Rates and limits are decimal strings, never floats.
type DefaultsConfig struct {
	InterestRate   string `yaml:"interest_rate"`
	OverdraftLimit string `yaml:"overdraft_limit"`
}

// GitConfig controls committing the vault file after each operation.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a coffre.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new vault.
func Default() *Config {
	return &Config{
		Vault: VaultConfig{
			Path: "vault.json",
		},
		Defaults: DefaultsConfig{
			InterestRate:   "0.01",
			OverdraftLimit: "500.00",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Coffre",
			AuthorEmail: "vault@coffre.dev",
		},
	}
}
