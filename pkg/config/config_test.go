package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.HgBranch.Style != "bold purple" {
		t.Errorf("Expected style 'bold purple', got %q", cfg.HgBranch.Style)
	}

	if cfg.HgBranch.TruncationLength != math.MaxInt {
		t.Errorf("Expected unbounded default truncation length, got %d", cfg.HgBranch.TruncationLength)
	}

	if cfg.HgBranch.TruncationSymbol != "…" {
		t.Errorf("Expected truncation symbol '…', got %q", cfg.HgBranch.TruncationSymbol)
	}

	if cfg.HgBranch.AscentPolicy != "abort" {
		t.Errorf("Expected ascent policy 'abort', got %q", cfg.HgBranch.AscentPolicy)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestLoad_MissingFileReturnsDefault(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ".hgline", "config.json")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.HgBranch.Style != Default().HgBranch.Style {
		t.Errorf("Expected default style, got %q", cfg.HgBranch.Style)
	}

	// Loading must not create anything on disk
	if _, err := os.Stat(configPath); !os.IsNotExist(err) {
		t.Error("Load() should not create the config file")
	}
}

func TestSaveAndLoad_JSON(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.HgBranch.TruncationLength = 12
	cfg.HgBranch.IgnorePaths = []string{"/srv/**"}
	if err := Save(configPath, cfg); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if loaded.HgBranch.TruncationLength != 12 {
		t.Errorf("Expected truncation length 12, got %d", loaded.HgBranch.TruncationLength)
	}
	if len(loaded.HgBranch.IgnorePaths) != 1 || loaded.HgBranch.IgnorePaths[0] != "/srv/**" {
		t.Errorf("Unexpected ignore paths: %v", loaded.HgBranch.IgnorePaths)
	}
}

func TestLoad_PartialJSONKeepsDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	content := `{"hg_branch": {"truncation_length": 4}}`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.HgBranch.TruncationLength != 4 {
		t.Errorf("Expected truncation length 4, got %d", cfg.HgBranch.TruncationLength)
	}
	if cfg.HgBranch.TruncationSymbol != "…" {
		t.Errorf("Expected default truncation symbol, got %q", cfg.HgBranch.TruncationSymbol)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level, got %q", cfg.LogLevel)
	}
}

func TestLoad_YAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := "hg_branch:\n  style: italic cyan\n  truncation_symbol: \">\"\n  truncation_length: -3\nlog_level: debug\n"
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.HgBranch.Style != "italic cyan" {
		t.Errorf("Expected style 'italic cyan', got %q", cfg.HgBranch.Style)
	}
	if cfg.HgBranch.TruncationLength != -3 {
		t.Errorf("Expected truncation length -3, got %d", cfg.HgBranch.TruncationLength)
	}
	if cfg.HgBranch.Symbol != Default().HgBranch.Symbol {
		t.Errorf("Expected default symbol, got %q", cfg.HgBranch.Symbol)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %q", cfg.LogLevel)
	}
	// Non-positive lengths are a render-time warning, not a config error
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() failed: %v", err)
	}
}

func TestSave_YAMLRoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg := Default()
	cfg.HgBranch.Disabled = true
	if err := Save(configPath, cfg); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !loaded.HgBranch.Disabled {
		t.Error("Expected disabled to survive the round trip")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(configPath, []byte("{invalid json}"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "zero truncation length",
			modify:  func(c *Config) { c.HgBranch.TruncationLength = 0 },
			wantErr: false,
		},
		{
			name:    "unknown log level",
			modify:  func(c *Config) { c.LogLevel = "loud" },
			wantErr: true,
		},
		{
			name:    "unknown log format",
			modify:  func(c *Config) { c.LogFormat = "xml" },
			wantErr: true,
		},
		{
			name:    "skip ascent policy",
			modify:  func(c *Config) { c.HgBranch.AscentPolicy = "skip" },
			wantErr: false,
		},
		{
			name:    "unknown ascent policy",
			modify:  func(c *Config) { c.HgBranch.AscentPolicy = "climb" },
			wantErr: true,
		},
		{
			name:    "unknown style token",
			modify:  func(c *Config) { c.HgBranch.Style = "bold sparkly" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetConfigPath(t *testing.T) {
	t.Setenv("HGLINE_CONFIG", "/tmp/custom/hgline.yaml")
	if got := GetConfigPath(); got != "/tmp/custom/hgline.yaml" {
		t.Errorf("Expected HGLINE_CONFIG to win, got %q", got)
	}

	t.Setenv("HGLINE_CONFIG", "")
	if got := GetConfigPath(); filepath.Base(got) != "config.json" {
		t.Errorf("Expected config.json, got %q", got)
	}
}
