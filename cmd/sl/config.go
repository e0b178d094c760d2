package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var formats = []string{"tree", "yaml"}

// Config holds the settings that may come from a config file. Command line
// flags take precedence over it.
type Config struct {
	LogLevel string `toml:"log_level" yaml:"log_level"`
	Jobs     int    `toml:"jobs" yaml:"jobs"`
	Format   string `toml:"format" yaml:"format"`
}

func defaultConfig() Config {
	return Config{
		LogLevel: "warn",
		Format:   "tree",
	}
}

func (c *Config) Validate() error {
	_, err := c.Level()
	if err != nil {
		return err
	}

	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}

	if !slices.Contains(formats, c.Format) {
		return fmt.Errorf("unknown format %q, expected one of %s", c.Format, strings.Join(formats, ", "))
	}

	return nil
}

func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.LogLevel))
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	return level, nil
}

// loadConfig reads a TOML or YAML config file, chosen by extension, on top of
// the defaults. Unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	config := defaultConfig()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.DecodeFile(path, &config)
		if err != nil {
			return Config{}, fmt.Errorf("failed to decode config %s: %w", path, err)
		}

		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
		}
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to open config: %w", err)
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		err = dec.Decode(&config)
		if err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported config file type %q", ext)
	}

	return config, nil
}
