package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 300*time.Second, cfg.Cache.TTL)
	assert.Equal(t, 5*time.Second, cfg.PageTimeout)
}

func TestCacheTTLIsConfigurable(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("CACHE_TTL", "60")
	t.Setenv("PAGE_TIMEOUT", "10")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 60*time.Second, cfg.Cache.TTL)
	assert.Equal(t, 10*time.Second, cfg.PageTimeout)
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "db", Port: "5432", User: "app", Password: "pw",
		Name: "newsroom", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=db user=app password=pw dbname=newsroom port=5432 sslmode=disable application_name=newsroom",
		d.DSN())
}
