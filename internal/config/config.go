package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for a run
type Config struct {
	// Selection
	Filter string `yaml:"filter"`

	// Output settings
	NoColor  bool `yaml:"no_color"`
	Progress bool `yaml:"progress"`

	// Files consulted by Load
	ConfigFile string `yaml:"-"`
	EnvFile    string `yaml:"-"`

	// Command flags
	Flags Flags `yaml:"-"`
}

// Flags holds command-line flags
type Flags struct {
	Filter     string
	NoColor    bool
	Progress   bool
	ConfigFile string
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		Filter:     DefaultFilter,
		Progress:   DefaultProgress,
		ConfigFile: DefaultConfigFile,
		EnvFile:    DefaultEnvFile,
	}
}

// Load builds a config from defaults, the YAML file, the environment and
// flags, each overriding the previous one.
func Load(flags Flags) (*Config, error) {
	cfg := New()
	cfg.Flags = flags

	if flags.ConfigFile != "" {
		cfg.ConfigFile = flags.ConfigFile
	}
	if err := cfg.loadFile(flags.ConfigFile != ""); err != nil {
		return nil, err
	}

	// .env file might not exist, that's okay - use environment variables
	_ = godotenv.Load(filepath.Clean(cfg.EnvFile))

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	// Apply flag overrides
	if flags.Filter != "" {
		cfg.Filter = flags.Filter
	}
	if flags.NoColor {
		cfg.NoColor = true
	}
	if flags.Progress {
		cfg.Progress = true
	}

	return cfg, nil
}

// loadFile reads the YAML config file. A missing file is an error only when
// it was asked for explicitly.
func (c *Config) loadFile(required bool) error {
	data, err := os.ReadFile(c.ConfigFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", c.ConfigFile, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvFilter); ok {
		c.Filter = v
	}
	if v := os.Getenv(EnvNoColorStd); v != "" {
		c.NoColor = true
	}
	for name, dst := range map[string]*bool{EnvNoColor: &c.NoColor, EnvProgress: &c.Progress} {
		v, ok := os.LookupEnv(name)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
		*dst = b
	}
	return nil
}
