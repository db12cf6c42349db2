package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config is the complete tool configuration.
type Config struct {
	Export  ExportConfig  `yaml:"export" envconfig:"EXPORT"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// ExportConfig tunes the document renderers.
type ExportConfig struct {
	ReportTitle string `yaml:"report_title" envconfig:"REPORT_TITLE" default:"Transaction Report"`
	RowsPerPage int    `yaml:"rows_per_page" envconfig:"ROWS_PER_PAGE" default:"40"`
	Delimiter   string `yaml:"delimiter" envconfig:"DELIMITER" default:","`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format string `yaml:"format" envconfig:"FORMAT" default:"json"`
}

// Load reads configuration from environment variables (FINTRACK_
// prefix) first, then overlays values from the config file at path
// when it exists. Path may be empty to skip the file entirely.
func Load(path string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process("FINTRACK", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := applyFile(path, &cfg); err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// applyFile overlays the yaml file onto cfg. Keys absent from the file
// keep their current values.
func applyFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) validate() error {
	if c.Export.RowsPerPage <= 0 {
		return fmt.Errorf("export.rows_per_page must be positive, got %d", c.Export.RowsPerPage)
	}
	if len([]rune(c.Export.Delimiter)) != 1 {
		return fmt.Errorf("export.delimiter must be a single character, got %q", c.Export.Delimiter)
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("logging.format must be json or text, got %q", c.Logging.Format)
	}
	return nil
}

// DelimiterRune returns the configured field delimiter. An unset
// delimiter falls back to comma.
func (c ExportConfig) DelimiterRune() rune {
	runes := []rune(c.Delimiter)
	if len(runes) == 0 {
		return ','
	}
	return runes[0]
}
