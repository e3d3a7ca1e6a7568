package main

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the demo configuration
type Config struct {
	Buffers BuffersConfig `mapstructure:"buffers"`
	Demo    DemoConfig    `mapstructure:"demo"`
}

// BuffersConfig shapes the buffers the demo builds
type BuffersConfig struct {
	SmallCount    int `mapstructure:"smallCount"`    // small buffer expected to land inline
	LargeCount    int `mapstructure:"largeCount"`    // oversized buffer expected to fall back to the heap
	TrackedCount  int `mapstructure:"trackedCount"`  // buffer with construction/destruction tracking
	ReserveMargin int `mapstructure:"reserveMargin"` // stack headroom to keep, in bytes (0 = library default)
}

// DemoConfig toggles demo output sections
type DemoConfig struct {
	ShowMetrics bool `mapstructure:"showMetrics"`
}

// Load loads configuration from an optional file, with defaults matching
// the classic demo shape (10 small, 500000 large, 100 tracked).
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("buffers.smallCount", 10)
	v.SetDefault("buffers.largeCount", 500000)
	v.SetDefault("buffers.trackedCount", 100)
	v.SetDefault("buffers.reserveMargin", 0)
	v.SetDefault("demo.showMetrics", true)

	// Read environment variables
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal config
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Buffers.SmallCount <= 0 {
		return fmt.Errorf("smallCount must be positive")
	}
	if config.Buffers.LargeCount <= 0 {
		return fmt.Errorf("largeCount must be positive")
	}
	if config.Buffers.TrackedCount <= 0 {
		return fmt.Errorf("trackedCount must be positive")
	}
	if config.Buffers.ReserveMargin < 0 {
		return fmt.Errorf("reserveMargin must not be negative")
	}
	return nil
}
