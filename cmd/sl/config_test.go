package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfig_TOML(t *testing.T) {
	r := require.New(t)

	path := writeFile(t, "sl.toml", "log_level = \"debug\"\njobs = 3\n")

	config, err := loadConfig(path)
	r.NoError(err)
	r.Equal(Config{LogLevel: "debug", Jobs: 3, Format: "tree"}, config)
	r.NoError(config.Validate())

	level, err := config.Level()
	r.NoError(err)
	r.Equal(slog.LevelDebug, level)
}

func TestLoadConfig_YAML(t *testing.T) {
	r := require.New(t)

	path := writeFile(t, "sl.yaml", "format: yaml\njobs: 2\n")

	config, err := loadConfig(path)
	r.NoError(err)
	r.Equal(Config{LogLevel: "warn", Jobs: 2, Format: "yaml"}, config)
}

func TestLoadConfig_EmptyYAML(t *testing.T) {
	r := require.New(t)

	config, err := loadConfig(writeFile(t, "sl.yml", ""))
	r.NoError(err)
	r.Equal(defaultConfig(), config)
}

func TestLoadConfig_UnknownKey(t *testing.T) {
	r := require.New(t)

	_, err := loadConfig(writeFile(t, "sl.toml", "colour = true\n"))
	r.ErrorContains(err, "unknown config key \"colour\"")

	_, err = loadConfig(writeFile(t, "sl.yaml", "colour: true\n"))
	r.ErrorContains(err, "colour")
}

func TestLoadConfig_UnsupportedType(t *testing.T) {
	r := require.New(t)

	_, err := loadConfig(writeFile(t, "sl.json", "{}"))
	r.ErrorContains(err, "unsupported config file type \".json\"")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		err    string
	}{
		{"defaults", defaultConfig(), ""},
		{"bad level", Config{LogLevel: "loud", Format: "tree"}, "invalid log level"},
		{"negative jobs", Config{LogLevel: "info", Jobs: -1, Format: "tree"}, "jobs must not be negative"},
		{"bad format", Config{LogLevel: "info", Format: "json"}, "unknown format \"json\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.err == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.err)
		})
	}
}
