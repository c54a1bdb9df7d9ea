// Package config loads process settings from an optional TOML file, a .env
// file and the environment, in increasing order of precedence.
package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig  `toml:"database"`
	Server    ServerConfig    `toml:"server"`
	CORS      CORSConfig      `toml:"cors"`
	Logging   LoggingConfig   `toml:"logging"`
	RateLimit RateLimitConfig `toml:"rate_limit"`

	// AutoMigrate applies the embedded schema before serving.
	AutoMigrate bool `toml:"auto_migrate"`
	// SeedDemo loads the demo catalogue before serving.
	SeedDemo bool `toml:"seed_demo"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Driver   string `toml:"driver"` // pgx or postgres
	URL      string `toml:"url"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Name     string `toml:"name"`
	SSLMode  string `toml:"sslmode"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // json, text
}

// RateLimitConfig bounds request throughput. A zero RPS disables limiting.
type RateLimitConfig struct {
	RPS   float64 `toml:"rps"`
	Burst int     `toml:"burst"`
}

// Default returns the settings used when nothing overrides them.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:  "pgx",
			Host:    "localhost",
			Port:    5432,
			SSLMode: "disable",
		},
		Server: ServerConfig{Port: 8080, Host: "0.0.0.0"},
		CORS: CORSConfig{AllowedOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://localhost:8080",
		}},
		Logging:     LoggingConfig{Level: "info", Format: "json"},
		RateLimit:   RateLimitConfig{Burst: 20},
		AutoMigrate: true,
	}
}

// Load reads configuration. path names an optional TOML file; an empty path
// skips it.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}
	cfg.Database.URL = cfg.Database.DSN()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadEnv() error {
	setString(&c.Database.Driver, "DATABASE_DRIVER")
	setString(&c.Database.URL, "DATABASE_URL")
	setString(&c.Database.Host, "DB_HOST")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.Name, "DB_NAME")
	setString(&c.Database.SSLMode, "DB_SSLMODE")
	setString(&c.Server.Host, "HOST")
	setString(&c.Logging.Level, "LOG_LEVEL")
	setString(&c.Logging.Format, "LOG_FORMAT")

	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		c.CORS.AllowedOrigins = splitList(raw)
	}

	for _, v := range []struct {
		key string
		set func(string) error
	}{
		{"DB_PORT", intSetter(&c.Database.Port)},
		{"PORT", intSetter(&c.Server.Port)},
		{"RATE_LIMIT_BURST", intSetter(&c.RateLimit.Burst)},
		{"RATE_LIMIT_RPS", func(raw string) error {
			rps, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return err
			}
			c.RateLimit.RPS = rps
			return nil
		}},
		{"AUTO_MIGRATE", boolSetter(&c.AutoMigrate)},
		{"SEED_DEMO", boolSetter(&c.SeedDemo)},
	} {
		raw := os.Getenv(v.key)
		if raw == "" {
			continue
		}
		if err := v.set(raw); err != nil {
			return fmt.Errorf("invalid %s: %w", v.key, err)
		}
	}
	return nil
}

// DSN returns the connection URL, assembling it from the individual fields
// when no URL was given.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	if d.Host == "" || d.User == "" || d.Name == "" {
		return ""
	}
	dsn := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(d.User, d.Password),
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:   "/" + d.Name,
	}
	if d.SSLMode != "" {
		dsn.RawQuery = url.Values{"sslmode": {d.SSLMode}}.Encode()
	}
	return dsn.String()
}

// Addr is the listen address of the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Validate checks that all required configuration is present and valid
func (c *Config) Validate() error {
	var errors []string

	if c.Database.URL == "" {
		errors = append(errors, "DATABASE_URL is required (or DB_HOST, DB_USER, DB_NAME)")
	}
	if c.Database.Driver != "pgx" && c.Database.Driver != "postgres" {
		errors = append(errors, "DATABASE_DRIVER must be one of: pgx, postgres")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errors = append(errors, "PORT must be between 1 and 65535")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		errors = append(errors, "LOG_LEVEL must be one of: debug, info, warn, error")
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		errors = append(errors, "LOG_FORMAT must be one of: json, text")
	}

	if c.RateLimit.RPS < 0 {
		errors = append(errors, "RATE_LIMIT_RPS must not be negative")
	}
	if c.RateLimit.RPS > 0 && c.RateLimit.Burst < 1 {
		errors = append(errors, "RATE_LIMIT_BURST must be at least 1 when rate limiting is enabled")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

func setString(dst *string, key string) {
	if value := os.Getenv(key); value != "" {
		*dst = value
	}
}

func intSetter(dst *int) func(string) error {
	return func(raw string) error {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		*dst = n
		return nil
	}
}

func boolSetter(dst *bool) func(string) error {
	return func(raw string) error {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		*dst = b
		return nil
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
