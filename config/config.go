package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	// SiteName is shown in the navigation bar.
	SiteName = "Topic List"

	TailwindCSSURL = "https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css"
	HTMXURL        = "https://unpkg.com/htmx.org@1.9.10"

	// ServerReadTimeout and ServerWriteTimeout bound a single request.
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 10 * time.Second
)

// TailwindPalette lists the colour names compiled into the default build
// served at TailwindCSSURL. Classes for any other colour have no rule.
var TailwindPalette = []string{"gray", "red", "yellow", "green", "blue", "indigo", "purple", "pink"}

// TailwindShades lists the shades each palette colour is built with.
var TailwindShades = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}

// Config holds the runtime settings of the site.
type Config struct {
	Port             string        `validate:"required,numeric"`
	BaseURL          string        `validate:"required,url"`
	RateLimitMax     int           `validate:"gte=1"`
	RateLimitWindow  time.Duration `validate:"gt=0"`
	PageCacheEnabled bool
	PageCacheTTL     time.Duration `validate:"gt=0"`
}

// Default returns the configuration used when no environment is set.
func Default() *Config {
	return &Config{
		Port:             "8080",
		BaseURL:          "https://topic-list.local",
		RateLimitMax:     100,
		RateLimitWindow:  time.Minute,
		PageCacheEnabled: true,
		PageCacheTTL:     time.Hour,
	}
}

// Load reads a .env file if one exists, then overlays environment variables
// on top of the defaults and validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment without touching .env.
func FromEnv() (*Config, error) {
	cfg := Default()

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("RATE_LIMIT_MAX"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_MAX %q: %w", v, err)
		}
		cfg.RateLimitMax = n
	}
	if v := os.Getenv("RATE_LIMIT_WINDOW"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW %q: %w", v, err)
		}
		cfg.RateLimitWindow = d
	}
	if v := os.Getenv("PAGE_CACHE_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PAGE_CACHE_ENABLED %q: %w", v, err)
		}
		cfg.PageCacheEnabled = b
	}
	if v := os.Getenv("PAGE_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PAGE_CACHE_TTL %q: %w", v, err)
		}
		cfg.PageCacheTTL = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags on Config.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	port, _ := strconv.Atoi(c.Port)
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid configuration: port %s out of range", c.Port)
	}
	return nil
}
