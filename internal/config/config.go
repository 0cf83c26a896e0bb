package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig  `yaml:"server" envconfig:"SERVER"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Upload  UploadConfig  `yaml:"upload" envconfig:"UPLOAD"`
	Limits  LimitsConfig  `yaml:"limits" envconfig:"LIMITS"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" default:"5001" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"FORMAT" default:"json" validate:"oneof=json text"`
	Output string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	File   string `yaml:"file" envconfig:"FILE" default:"logs/app.log"`
}

// UploadConfig controls how uploaded table documents are handled
type UploadConfig struct {
	// Dir defaults to the system temp directory when empty.
	Dir          string `yaml:"dir" envconfig:"DIR"`
	MaxSizeBytes int64  `yaml:"max_size_bytes" envconfig:"MAX_SIZE_BYTES" default:"16777216" validate:"min=1"`
}

// LimitsConfig contains request throttling configuration
type LimitsConfig struct {
	RateLimitEnabled bool          `yaml:"rate_limit_enabled" envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RPS              float64       `yaml:"rps" envconfig:"RPS" default:"50" validate:"min=0"`
	Burst            int           `yaml:"burst" envconfig:"BURST" default:"25" validate:"min=0"`
	RequestTimeout   time.Duration `yaml:"request_timeout" envconfig:"REQUEST_TIMEOUT" default:"30s"`
}

// Load loads configuration from environment variables, layered over an
// optional YAML file named by TT_CONFIG_FILE (default config.yaml).
func Load() (*Config, error) {
	var cfg Config

	configFile := os.Getenv("TT_CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}
	if data, err := os.ReadFile(configFile); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// Environment variables win over the file.
	if err := envconfig.Process("TT", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// applyDefaults fills the fields envconfig leaves zero when a YAML file
// provided a partial section.
func (c *Config) applyDefaults() {
	if c.Upload.Dir == "" {
		c.Upload.Dir = os.TempDir()
	}
}

// Validate checks configuration invariants via struct tags.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
