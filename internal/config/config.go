// Package config handles application configuration via environment variables.
package config

import (
	"log"
	"os"
	"time"
)

// Config holds all configurable values for the gateway.
type Config struct {
	Env                string
	ListenAddr         string
	LogLevel           string
	AuthServiceURL     string
	CustomerServiceURL string
	PolicyServiceURL   string
	ClaimServiceURL    string
	JWTSecret          string
	HTTPTimeout        time.Duration
}

// Load reads environment variables and populates a Config struct.
func Load() *Config {
	timeout, err := time.ParseDuration(getEnv("HTTP_TIMEOUT", "10s"))
	if err != nil {
		log.Panicf("Invalid HTTP_TIMEOUT: %v", err)
	}

	return &Config{
		Env:                getEnv("ENV", "development"),
		ListenAddr:         getEnv("LISTEN_ADDR", ":8080"),
		LogLevel:           getEnv("LOG_LEVEL", ""),
		AuthServiceURL:     getEnv("AUTH_SERVICE_URL", "http://localhost:9001"),
		CustomerServiceURL: getEnv("CUSTOMER_SERVICE_URL", "http://localhost:9002"),
		PolicyServiceURL:   getEnv("POLICY_SERVICE_URL", "http://localhost:9003"),
		ClaimServiceURL:    getEnv("CLAIM_SERVICE_URL", "http://localhost:9004"),
		JWTSecret:          getEnv("JWT_SECRET", "dev-insecure-secret-change-me"),
		HTTPTimeout:        timeout,
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
