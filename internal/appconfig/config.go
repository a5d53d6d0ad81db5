package appconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type ProfilesConfig struct {
	Path string `toml:"path"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type OutputConfig struct {
	Format string `toml:"format"`
}

type Config struct {
	Profiles ProfilesConfig `toml:"profiles"`
	Logging  LoggingConfig  `toml:"logging"`
	Output   OutputConfig   `toml:"output"`

	// Source is the settings file that was read, empty when none was found.
	Source string `toml:"-"`
}

func Defaults() Config {
	return Config{
		Profiles: ProfilesConfig{
			Path: "config.json",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// Load reads the settings file at path, or the first one found in the
// standard locations when path is empty, then applies .env and environment
// overrides.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}

	if path == "" {
		path = findConfigFile()
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
		cfg.Source = path
	}

	applyEnv(&cfg)
	return cfg, cfg.Validate()
}

// Validate checks the values that have a closed set of choices.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Profiles.Path) == "" {
		errs = append(errs, errors.New("profiles path is required"))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q (expected console or json)", c.Logging.Format))
	}
	switch strings.ToLower(c.Output.Format) {
	case "", "text", "json", "yaml":
	default:
		errs = append(errs, fmt.Errorf("unknown output format %q (expected text, json or yaml)", c.Output.Format))
	}

	return errors.Join(errs...)
}

func findConfigFile() string {
	candidates := []string{}

	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".schemapilot", "config.toml"))
	}
	candidates = append(candidates, "/etc/schemapilot/config.toml")

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SCHEMAPILOT_PROFILES"); v != "" {
		cfg.Profiles.Path = v
	}
	if v := os.Getenv("SCHEMAPILOT_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SCHEMAPILOT_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("SCHEMAPILOT_OUTPUT"); v != "" {
		cfg.Output.Format = v
	}
}
