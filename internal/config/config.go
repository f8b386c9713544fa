package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL        = "http://localhost:3000/api"
	DefaultTimeoutSeconds = 10

	configFileBase = "vacation_probe_config"
)

// Config represents the probe configuration.
// Every field has a default, so a config file is never required.
type Config struct {
	BaseURL        string `yaml:"baseURL" validate:"required,url"`
	TimeoutSeconds int    `yaml:"timeoutSeconds" validate:"min=1,max=300"`
	LogDir         string `yaml:"logDir,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		BaseURL:        DefaultBaseURL,
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
}

// Timeout is the bound applied to each HTTP call
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load is LoadWithEnv without an environment suffix
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv looks for vacation_probe_config.<env>.yaml (or vacation_probe_config.yaml
// when env is empty) in the working directory only. No environment variable is consulted.
// When no file exists the defaults are returned.
func LoadWithEnv(env string) (*Config, error) {
	configPath, found, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}
	if !found {
		return Default(), nil
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path.
// Keys missing from the file keep their default values.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration struct
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func configFileName(env string) string {
	if env == "" {
		return configFileBase + ".yaml"
	}
	return fmt.Sprintf("%s.%s.yaml", configFileBase, env)
}

// findConfigFile searches the working directory
func findConfigFile(env string) (string, bool, error) {
	name := configFileName(env)

	if _, err := os.Stat(name); err == nil {
		return name, true, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", false, err
	}

	return "", false, nil
}
