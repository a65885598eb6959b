// Package config holds the application configuration. The engine itself
// takes explicit parameters; config only feeds the edges (server, loader,
// lexicons, telemetry).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jonathan-long-lin/prompt-analyzer/internal/insights"
)

// Config represents the application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Dataset   DatasetConfig   `yaml:"dataset"`
	Analyzer  AnalyzerConfig  `yaml:"analyzer"`
	Quality   QualityConfig   `yaml:"quality"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig configures the HTTP transport.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DatasetConfig configures the record loader.
type DatasetConfig struct {
	Files           []string `yaml:"files"`
	Strict          bool     `yaml:"strict"`
	NormalizeLegacy bool     `yaml:"normalize_legacy"`
}

// AnalyzerConfig overrides the built-in lexicons. Empty lists fall back
// to the defaults.
type AnalyzerConfig struct {
	StopWords     []string `yaml:"stop_words,omitempty"`
	PositiveWords []string `yaml:"positive_words,omitempty"`
	NegativeWords []string `yaml:"negative_words,omitempty"`
}

// QualityConfig overrides the quality band boundaries.
type QualityConfig struct {
	Bands []insights.QualityBand `yaml:"bands,omitempty"`
}

// TelemetryConfig configures the OTLP metrics exporter.
type TelemetryConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"`
	Insecure bool   `yaml:"insecure"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":8080",
		},
		Dataset: DatasetConfig{
			Files:           []string{"data/prompts.jsonl", "data/recent_prompts.jsonl"},
			NormalizeLegacy: true,
		},
	}
}

// Load loads configuration from file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Save saves configuration to file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// QualityBands returns the configured quality bands, falling back to the
// defaults when unset.
func (c *Config) QualityBands() []insights.QualityBand {
	if len(c.Quality.Bands) > 0 {
		return c.Quality.Bands
	}
	return insights.DefaultQualityBands()
}
