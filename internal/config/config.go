// Package config loads the daemon configuration from an optional YAML file,
// applies defaults and env overrides, and validates the result against an
// embedded JSON-Schema.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// ExtractorConfig carries the extraction knobs through to the core.
type ExtractorConfig struct {
	MinHeaderScore int     `yaml:"min_header_score" json:"min_header_score"`
	OptionalTotal  bool    `yaml:"optional_total" json:"optional_total"`
	TotalTolerance float64 `yaml:"total_tolerance" json:"total_tolerance"`
}

// Config holds the daemon settings.
type Config struct {
	Addr           string          `yaml:"addr" json:"addr"`
	LogLevel       string          `yaml:"log_level" json:"log_level"`
	MaxUploadBytes int64           `yaml:"max_upload_bytes" json:"max_upload_bytes"`
	Extractor      ExtractorConfig `yaml:"extractor" json:"extractor"`
}

const schemaJSON = `{
  "type": "object",
  "properties": {
    "addr": {"type": "string", "minLength": 1},
    "log_level": {"enum": ["debug", "info", "warn", "error"]},
    "max_upload_bytes": {"type": "integer", "minimum": 1},
    "extractor": {
      "type": "object",
      "properties": {
        "min_header_score": {"type": "integer", "minimum": 1, "maximum": 6},
        "optional_total": {"type": "boolean"},
        "total_tolerance": {"type": "number", "minimum": 0}
      }
    }
  },
  "required": ["addr", "log_level", "max_upload_bytes"]
}`

var schema = jsonschema.MustCompileString("config.schema.json", schemaJSON)

// Default returns the configuration of the documented extraction generation:
// minimum header score 4, total column required, 0.05 reconciliation
// tolerance.
func Default() Config {
	return Config{
		Addr:           ":8080",
		LogLevel:       "info",
		MaxUploadBytes: 10 << 20,
		Extractor: ExtractorConfig{
			MinHeaderScore: 4,
			OptionalTotal:  false,
			TotalTolerance: 0.05,
		},
	}
}

// Load reads the YAML file at path when non-empty, overlays it on the
// defaults, applies the ADDR env override and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	if addr := os.Getenv("ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if !strings.Contains(cfg.Addr, ":") {
		cfg.Addr = ":" + cfg.Addr
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration against the embedded schema.
func (c Config) Validate() error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// SlogLevel maps the configured log level to slog.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
