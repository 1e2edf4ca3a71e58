package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

type Config struct {
	HTTPPort         string        `env:"HTTP_PORT" envDefault:"8080"`
	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	CarouselInterval time.Duration `env:"CAROUSEL_INTERVAL" envDefault:"5s"`
	Locale           string        `env:"LOCALE" envDefault:"es-CL"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.RequestTimeout)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	if c.CarouselInterval <= 0 {
		return fmt.Errorf("CAROUSEL_INTERVAL must be positive, got %s", c.CarouselInterval)
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("LOCALE %q: %w", c.Locale, err)
	}
	return nil
}

// LanguageTag returns the parsed locale. Validate has already accepted it.
func (c *Config) LanguageTag() language.Tag {
	return language.Make(c.Locale)
}
