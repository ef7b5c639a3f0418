package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"hgline/pkg/hg"
	"hgline/pkg/ui/styles"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	HgBranch  HgBranchConfig `json:"hg_branch" yaml:"hg_branch"`
	LogLevel  string         `json:"log_level" yaml:"log_level"`
	LogFile   string         `json:"log_file" yaml:"log_file"`
	LogFormat string         `json:"log_format" yaml:"log_format"`
}

// HgBranchConfig configures the hg_branch module
type HgBranchConfig struct {
	Style            string   `json:"style" yaml:"style"`
	Symbol           string   `json:"symbol" yaml:"symbol"`
	TruncationLength int      `json:"truncation_length" yaml:"truncation_length"`
	TruncationSymbol string   `json:"truncation_symbol" yaml:"truncation_symbol"`
	AscentPolicy     string   `json:"ascent_policy" yaml:"ascent_policy"`
	Disabled         bool     `json:"disabled" yaml:"disabled"`
	IgnorePaths      []string `json:"ignore_paths" yaml:"ignore_paths"`
}

// Default returns a configuration with default values
func Default() Config {
	return Config{
		HgBranch: HgBranchConfig{
			Style:            "bold purple",
			Symbol:           "\ue0a0 ",
			TruncationLength: math.MaxInt,
			TruncationSymbol: "…",
			AscentPolicy:     "abort",
			IgnorePaths:      []string{},
		},
		LogLevel:  "info",
		LogFormat: "json",
	}
}

// Load loads configuration from the specified path. A missing file yields
// Default(); keys absent from the file keep their default values.
func Load(configPath string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if isYAML(configPath) {
		err = yaml.Unmarshal(data, &cfg)
	} else {
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save saves the configuration to the specified path
func Save(configPath string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if isYAML(configPath) {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = json.MarshalIndent(cfg, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid. A non-positive
// truncation_length is accepted here; it is normalized with a warning when
// the module renders.
func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unsupported log_level: %s", c.LogLevel)
	}

	switch strings.ToLower(strings.TrimSpace(c.LogFormat)) {
	case "", "json", "text":
	default:
		return fmt.Errorf("unsupported log_format: %s", c.LogFormat)
	}

	if _, err := styles.Parse(c.HgBranch.Style); err != nil {
		return fmt.Errorf("invalid hg_branch.style: %w", err)
	}

	if _, err := hg.ParseAscentPolicy(c.HgBranch.AscentPolicy); err != nil {
		return fmt.Errorf("invalid hg_branch.ascent_policy: %w", err)
	}

	return nil
}

// GetConfigPath returns the configuration file path, honoring HGLINE_CONFIG
func GetConfigPath() string {
	if p := strings.TrimSpace(os.Getenv("HGLINE_CONFIG")); p != "" {
		return p
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".hgline", "config.json")
	}
	return filepath.Join(homeDir, ".hgline", "config.json")
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
