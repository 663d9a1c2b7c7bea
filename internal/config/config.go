// Package config loads the YAML configuration by environment name.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the faqdex service configuration.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Source  SourceConfig  `yaml:"source"`
	Matcher MatcherConfig `yaml:"matcher"`
	Auth    AuthConfig    `yaml:"auth"`
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// SourceConfig holds QA source settings. The corpus is loaded once at
// startup from either a JSON file or Redis.
type SourceConfig struct {
	Driver           string   `yaml:"driver"` // file, redis (default: file)
	Path             string   `yaml:"path"`   // file driver: path to qa_data.json
	Addrs            []string `yaml:"addrs"`  // redis driver
	Password         string   `yaml:"password"`
	KeyPrefix        string   `yaml:"key_prefix"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// MatcherConfig holds answer selector settings.
type MatcherConfig struct {
	Threshold      float64 `yaml:"threshold"`       // similarity cut-off (default 0.5)
	MaxSuggestions int     `yaml:"max_suggestions"` // candidate list on uncertain match
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Source.Driver == "" {
		c.Source.Driver = "file"
	}
	if c.Source.Path == "" {
		c.Source.Path = "qa_data.json"
	}
	if c.Source.KeyPrefix == "" {
		c.Source.KeyPrefix = "faqdex:"
	}
	if c.Source.ReadinessTimeout <= 0 {
		c.Source.ReadinessTimeout = 10
	}
	if c.Matcher.Threshold <= 0 {
		c.Matcher.Threshold = 0.5
	}
	if c.Matcher.MaxSuggestions <= 0 {
		c.Matcher.MaxSuggestions = 3
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	switch c.Source.Driver {
	case "file":
		// path defaulted above
	case "redis":
		if len(c.Source.Addrs) == 0 {
			return fmt.Errorf("source.addrs is required for the redis driver")
		}
	default:
		return fmt.Errorf("source.driver must be \"file\" or \"redis\", got %q", c.Source.Driver)
	}
	if c.Matcher.Threshold > 1 {
		return fmt.Errorf("matcher.threshold must be at most 1, got %g", c.Matcher.Threshold)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
