package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration, read from the environment.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Auth     AuthConfig

	// PageTimeout bounds the parallel data fetch assembling one page;
	// exceeding it fails the whole request.
	PageTimeout time.Duration
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	URL string
}

// CacheConfig makes the page-cache staleness window an explicit choice:
// cached pages are never invalidated on writes and live for the full TTL.
type CacheConfig struct {
	TTL time.Duration
}

type AuthConfig struct {
	JWTSecret string
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s application_name=newsroom",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}

// Load reads configuration from environment variables, applying defaults
// where a variable is unset.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         envOr("PORT", "8080"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Database: DatabaseConfig{
			Host:     envOr("DB_HOST", "localhost"),
			Port:     envOr("DB_PORT", "5432"),
			User:     envOr("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     envOr("DB_NAME", "newsroom"),
			SSLMode:  envOr("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL: envOr("REDIS_URL", "redis://localhost:6379/0"),
		},
		Cache: CacheConfig{
			TTL: time.Duration(envIntOr("CACHE_TTL", 300)) * time.Second,
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET_KEY"),
		},
		PageTimeout: time.Duration(envIntOr("PAGE_TIMEOUT", 5)) * time.Second,
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
