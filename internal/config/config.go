package config

import (
	"fmt"
	"os"

	"chaintable/pkg/errors"
	"chaintable/pkg/hashfn"
	"chaintable/pkg/logger"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSlots    = 1024
	DefaultHashFunc = hashfn.NameDJB2
	DefaultAddr     = ":8080"
)

type Config struct {
	// Table Config
	Slots    uint   `yaml:"slots"`
	HashFunc string `yaml:"hash_func"`

	// Server Config
	Addr string `yaml:"addr"`

	// Log Config
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return &Config{
		Slots:    DefaultSlots,
		HashFunc: DefaultHashFunc,
		Addr:     DefaultAddr,
		LogLevel: logger.InfoLevel,
	}
}

// FromFile reads a YAML config over the defaults and validates it.
func FromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the table can be built from c.
func (c *Config) Validate() error {
	if c.Slots == 0 {
		return fmt.Errorf("%w: slots must be positive", errors.ErrInvalidArgument)
	}
	if _, err := hashfn.ByName(c.HashFunc); err != nil {
		return err
	}
	return nil
}

// Hash returns the configured hash strategy.
func (c *Config) Hash() (hashfn.HashFunc, error) {
	return hashfn.ByName(c.HashFunc)
}
