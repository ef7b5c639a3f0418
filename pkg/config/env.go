package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// LookupFunc resolves an environment variable.
type LookupFunc func(key string) (string, bool)

// EnvLookup returns a LookupFunc that prefers the process environment and
// falls back to the variables in envFile. The process environment is left
// untouched. A missing envFile is not an error.
func EnvLookup(envFile string) (LookupFunc, error) {
	fileVars := map[string]string{}
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			vars, err := godotenv.Read(envFile)
			if err != nil {
				return os.LookupEnv, fmt.Errorf("failed to read %s: %w", envFile, err)
			}
			fileVars = vars
		}
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}, nil
}

// EnvFileFor returns the path of the optional .env file next to configPath.
func EnvFileFor(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), ".env")
}

// ApplyEnv overlays HGLINE_* variables onto cfg.
func ApplyEnv(cfg Config, lookup LookupFunc) (Config, error) {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	str("HGLINE_STYLE", &cfg.HgBranch.Style)
	str("HGLINE_SYMBOL", &cfg.HgBranch.Symbol)
	str("HGLINE_TRUNCATION_SYMBOL", &cfg.HgBranch.TruncationSymbol)
	str("HGLINE_ASCENT_POLICY", &cfg.HgBranch.AscentPolicy)
	str("HGLINE_LOG_LEVEL", &cfg.LogLevel)
	str("HGLINE_LOG_FILE", &cfg.LogFile)
	str("HGLINE_LOG_FORMAT", &cfg.LogFormat)

	if v, ok := lookup("HGLINE_TRUNCATION_LENGTH"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("invalid HGLINE_TRUNCATION_LENGTH %q: %w", v, err)
		}
		cfg.HgBranch.TruncationLength = n
	}

	if v, ok := lookup("HGLINE_DISABLED"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("invalid HGLINE_DISABLED %q: %w", v, err)
		}
		cfg.HgBranch.Disabled = b
	}

	return cfg, nil
}
