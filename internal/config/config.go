// Package config loads folio's settings from a YAML file, a .env file and the
// environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the file.
const (
	EnvContent     = "FOLIO_CONTENT"
	EnvTransition  = "FOLIO_TRANSITION"
	EnvNoIntro     = "FOLIO_NO_INTRO"
	EnvLogFile     = "FOLIO_LOG_FILE"
	EnvLogLevel    = "FOLIO_LOG_LEVEL"
	EnvOTLP        = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvServiceName = "OTEL_SERVICE_NAME"
)

// DefaultRelPath is the config file location relative to the home directory.
const DefaultRelPath = ".config/folio/config.yaml"

// Config holds all runtime settings.
type Config struct {
	Content    string        `yaml:"content"`
	Start      string        `yaml:"start"`
	NoIntro    bool          `yaml:"no_intro"`
	Watch      bool          `yaml:"watch"`
	Transition time.Duration `yaml:"transition"`
	Easing     string        `yaml:"easing"`
	Tilt       float64       `yaml:"tilt"`
	SceneDelay time.Duration `yaml:"scene_delay"`
	Log        LogConfig     `yaml:"log"`
	Trace      TraceConfig   `yaml:"trace"`
}

type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// TraceConfig configures the OTLP exporter. An empty endpoint disables tracing.
type TraceConfig struct {
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"service_name"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Start:      "/",
		Transition: 1800 * time.Millisecond,
		Easing:     "exponential",
		Tilt:       2,
		SceneDelay: 700 * time.Millisecond,
		Log:        LogConfig{Level: "info"},
		Trace:      TraceConfig{ServiceName: "folio"},
	}
}

// DefaultPath returns ~/.config/folio/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultRelPath), nil
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(b, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotenv loads the given .env files into the process environment. Missing
// files are skipped; variables already set win.
func LoadDotenv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvContent); v != "" {
		c.Content = v
	}
	if v := os.Getenv(EnvTransition); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTransition, err)
		}
		c.Transition = d
	}
	if v := os.Getenv(EnvNoIntro); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvNoIntro, err)
		}
		c.NoIntro = b
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvOTLP); v != "" {
		c.Trace.Endpoint = v
	}
	if v := os.Getenv(EnvServiceName); v != "" {
		c.Trace.ServiceName = v
	}
	return nil
}

// Validate rejects settings the UI cannot run with.
func (c *Config) Validate() error {
	if c.Transition <= 0 {
		return fmt.Errorf("transition must be positive, got %s", c.Transition)
	}
	if c.SceneDelay < 0 {
		return fmt.Errorf("scene_delay must not be negative, got %s", c.SceneDelay)
	}
	if c.Tilt < 0 {
		return fmt.Errorf("tilt must not be negative, got %v", c.Tilt)
	}
	return nil
}
