// Package config loads checkjmx defaults. Precedence, lowest to highest:
// built-in defaults, the optional YAML config file at
// ~/.config/checkjmx/config.yaml, CHECKJMX_* environment variables.
// Command-line flags override all of these in cmd.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"checkjmx/pkg/logging"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/checkjmx"
	configFileName = "config.yaml"

	// envPrefix makes the environment variables CHECKJMX_URL,
	// CHECKJMX_USERNAME, CHECKJMX_PASSWORD, CHECKJMX_TIMEOUT and
	// CHECKJMX_LIVENESS_PERIOD.
	envPrefix = "checkjmx"
)

// Config holds defaults for probe requests and connector tuning.
type Config struct {
	// URL is the default service URL, used when -U is not given.
	URL string `yaml:"url" envconfig:"URL"`
	// Username and Password are default credentials; both must be set for
	// them to be used.
	Username string `yaml:"username" envconfig:"USERNAME"`
	Password string `yaml:"password" envconfig:"PASSWORD"`
	// Timeout bounds each request round trip.
	Timeout time.Duration `yaml:"timeout" envconfig:"TIMEOUT"`
	// LivenessPeriod is the dead-connection check interval.
	LivenessPeriod time.Duration `yaml:"livenessPeriod" envconfig:"LIVENESS_PERIOD"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Timeout:        15 * time.Second,
		LivenessPeriod: 5 * time.Second,
	}
}

// DefaultPath returns the default config file path, or "" when the home
// directory cannot be determined.
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, userConfigDir, configFileName)
}

// Load reads the config file at path (DefaultPath when empty) on top of
// the defaults, then applies environment overrides. A missing config file
// is not an error.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			logging.Debug("Config", "no config file at %s, using defaults", path)
		case err != nil:
			return Config{}, fmt.Errorf("reading config from %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("loading config from %s: %w", path, err)
			}
			logging.Debug("Config", "loaded configuration from %s", path)
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("applying environment overrides: %w", err)
	}
	return cfg, nil
}
