// Package config loads the planetmaker YAML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"

	"github.com/provide-io/planetmaker/pkg/planet"
)

const (
	EnvConfig     = "PLANETMAKER_CONFIG"
	EnvPlanetsDir = "PLANETMAKER_PLANETS_DIR"
	EnvLogLevel   = "PLANETMAKER_LOG_LEVEL"

	DefaultDebounce = "250ms"
)

// Config holds all planetmaker configuration.
type Config struct {
	// Folder named exports are written to. Empty means the platform data folder.
	PlanetsDir string `yaml:"planets_dir"`

	// Export settings
	Indent   string `yaml:"indent"`
	FileMode string `yaml:"file_mode"` // octal, e.g. "0644"

	// Version written into new planets
	Version string `yaml:"version"`

	LogLevel string `yaml:"log_level"`

	Watch WatchConfig `yaml:"watch"`
}

// WatchConfig configures `planetmaker watch`.
type WatchConfig struct {
	Debounce string `yaml:"debounce"`
}

func DefaultConfig() *Config {
	return &Config{
		Indent:   planet.DefaultIndent,
		FileMode: FormatOctal(planet.DefaultFileMode),
		Version:  planet.DefaultVersion,
		Watch: WatchConfig{
			Debounce: DefaultDebounce,
		},
	}
}

// Path picks the config file: the flag value, then $PLANETMAKER_CONFIG, then the user
// config folder.
func Path(flag string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return env
	}
	return DefaultPath()
}

// DefaultPath is $XDG_CONFIG_HOME/planetmaker/config.yaml or the platform equivalent.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "planetmaker", "config.yaml")
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "planetmaker", "config.yaml")
	}
	return filepath.Join(os.TempDir(), "planetmaker", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// defaults
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating the folder if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv(EnvPlanetsDir); dir != "" {
		c.PlanetsDir = dir
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
}

func (c *Config) Validate() error {
	if _, err := ParseOctal(c.FileMode); err != nil {
		return err
	}
	if strings.TrimSpace(c.Indent) != "" {
		return fmt.Errorf("indent must contain only whitespace, got %q", c.Indent)
	}
	if _, err := c.DebounceDuration(); err != nil {
		return err
	}
	if c.LogLevel != "" && hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return nil
}

// ExportOptions converts the export settings for planet.ExportWithOptions.
func (c *Config) ExportOptions(logger hclog.Logger) planet.ExportOptions {
	mode, err := ParseOctal(c.FileMode)
	if err != nil {
		mode = planet.DefaultFileMode
	}
	return planet.ExportOptions{
		Indent:   c.Indent,
		FileMode: mode,
		Logger:   logger,
	}
}

func (c *Config) DebounceDuration() (time.Duration, error) {
	s := c.Watch.Debounce
	if s == "" {
		s = DefaultDebounce
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid watch.debounce %q: %w", c.Watch.Debounce, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("watch.debounce must not be negative, got %s", d)
	}
	return d, nil
}

// ParseOctal parses a permission string such as "644", "0644" or "0o644". Empty means
// planet.DefaultFileMode.
func ParseOctal(s string) (os.FileMode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return planet.DefaultFileMode, nil
	}
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0o"), "0")
	if digits == "" {
		digits = "0"
	}
	val, err := strconv.ParseUint(digits, 8, 32)
	if err != nil || val > 0o777 {
		return 0, fmt.Errorf("invalid file_mode %q: want an octal permission such as 0644", s)
	}
	return os.FileMode(val), nil
}

func FormatOctal(mode os.FileMode) string {
	return fmt.Sprintf("0%o", uint32(mode.Perm()))
}
