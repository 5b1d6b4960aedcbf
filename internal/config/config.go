package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/bioscope-labs/pathway-agent/internal/core/domain"
)

// Config is the agent's runtime configuration.
type Config struct {
	DefaultDatabase string `toml:"default_database"`
	DefaultSpecies  int    `toml:"default_species"`

	Enrichr  EnrichrConfig  `toml:"enrichr"`
	StringDB StringDBConfig `toml:"stringdb"`
	Plot     PlotConfig     `toml:"plot"`
}

// EnrichrConfig tunes the enrichment service client.
type EnrichrConfig struct {
	BaseURL              string  `toml:"base_url"`
	SubmitTimeoutSeconds int     `toml:"submit_timeout_seconds"`
	FetchTimeoutSeconds  int     `toml:"fetch_timeout_seconds"`
	RequestsPerSecond    float64 `toml:"requests_per_second"`
}

// SubmitTimeout returns the configured submission timeout, zero when
// unset.
func (c EnrichrConfig) SubmitTimeout() time.Duration {
	return time.Duration(c.SubmitTimeoutSeconds) * time.Second
}

// FetchTimeout returns the configured result-fetch timeout, zero when
// unset.
func (c EnrichrConfig) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// StringDBConfig tunes the interaction service client.
type StringDBConfig struct {
	BaseURL           string  `toml:"base_url"`
	TimeoutSeconds    int     `toml:"timeout_seconds"`
	CallerIdentity    string  `toml:"caller_identity"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// Timeout returns the configured request timeout, zero when unset.
func (c StringDBConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// PlotConfig tunes bar-chart rendering.
type PlotConfig struct {
	// OutputPath is where enrichment plots land when the caller does
	// not name a path. Empty means the renderer's own default.
	OutputPath string `toml:"output_path"`
}

// Default returns the configuration used when no file overrides it.
func Default() Config {
	return Config{
		DefaultDatabase: domain.DefaultDatabase,
		DefaultSpecies:  domain.DefaultSpecies,
	}
}

// DefaultPath returns the conventional config location,
// ~/.pathway-agent/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".pathway-agent", "config.toml"), nil
}

// Load reads the configuration at path, falling back to DefaultPath
// when path is empty. A missing file is not an error; the defaults
// come back unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
