package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "", cfg.LogLevel)
	assert.Equal(t, "http://localhost:9001", cfg.AuthServiceURL)
	assert.Equal(t, "http://localhost:9002", cfg.CustomerServiceURL)
	assert.Equal(t, "http://localhost:9003", cfg.PolicyServiceURL)
	assert.Equal(t, "http://localhost:9004", cfg.ClaimServiceURL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("CLAIM_SERVICE_URL", "https://claims.internal.example.com")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("HTTP_TIMEOUT", "30s")

	cfg := Load()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "https://claims.internal.example.com", cfg.ClaimServiceURL)
	assert.Equal(t, "super-secret", cfg.JWTSecret)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "not-a-duration")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic due to invalid HTTP_TIMEOUT")
		}
	}()
	Load()
}
