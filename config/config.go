// Package config holds the FlipPay client configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Default API endpoints. The trailing slash is required.
const (
	DefaultProductionURL = "https://app.flippay.com.au/api/v2/"
	DefaultDemoURL       = "https://demo.flippay.com.au/api/v2/"

	defaultTimeout = 30 * time.Second
)

// Config holds the credentials and endpoints for the FlipPay API. It is
// read once at client construction and never mutated afterwards.
type Config struct {
	Token         string
	Demo          bool
	ProductionURL string
	DemoURL       string
	Timeout       time.Duration
}

// FromEnv loads configuration from the environment, reading a .env file
// first when one is present.
func FromEnv() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Token:         os.Getenv("FLIPPAY_TOKEN"),
		Demo:          os.Getenv("FLIPPAY_DEMO") == "true",
		ProductionURL: os.Getenv("FLIPPAY_PRODUCTION_URL"),
		DemoURL:       os.Getenv("FLIPPAY_DEMO_URL"),
	}
	if cfg.Token == "" {
		return nil, errors.New("FLIPPAY_TOKEN environment variable not set")
	}
	if v := os.Getenv("FLIPPAY_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid FLIPPAY_TIMEOUT %q: %w", v, err)
		}
		cfg.Timeout = d
	}
	return cfg, nil
}

// BaseURL returns the endpoint selected by the Demo flag, falling back to
// the defaults when no override is set.
func (c *Config) BaseURL() string {
	if c.Demo {
		if c.DemoURL != "" {
			return c.DemoURL
		}
		return DefaultDemoURL
	}
	if c.ProductionURL != "" {
		return c.ProductionURL
	}
	return DefaultProductionURL
}

// HTTPTimeout returns the configured timeout or the default.
func (c *Config) HTTPTimeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return defaultTimeout
}
