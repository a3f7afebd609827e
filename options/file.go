package options

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML shape of a termgen config file.
type fileConfig struct {
	MaxDepth int    `yaml:"max_depth"`
	LogLevel string `yaml:"log_level"`
}

// WithConfigFile applies settings from a YAML file. Options applied after
// this one override its values.
func WithConfigFile(path string) Option {
	return func(c *Config) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return fmt.Errorf("failed to parse config file %s: %w", path, err)
		}

		if fc.MaxDepth != 0 {
			if err := WithMaxDepth(fc.MaxDepth)(c); err != nil {
				return err
			}
		}

		if fc.LogLevel != "" {
			var level slog.Level
			if err := level.UnmarshalText([]byte(fc.LogLevel)); err != nil {
				return fmt.Errorf("invalid log_level %q in %s: %w", fc.LogLevel, path, err)
			}
			c.handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		}

		return nil
	}
}
