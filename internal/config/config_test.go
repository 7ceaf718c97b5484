package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		JWTSecret:      "secure-secret-at-least-32-chars-long",
		TokenExpiresIn: 168 * time.Hour,
		Port:           "8460",
		DBPassword:     "secure-password",
		DBSSLMode:      "require",
		Env:            "development",
		RedisURL:       "localhost:6379",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"Valid development", func(c *Config) {}, false},
		{"Missing port", func(c *Config) { c.Port = "" }, true},
		{"Missing JWT secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"Zero token expiry", func(c *Config) { c.TokenExpiresIn = 0 }, true},
		{"Negative token expiry", func(c *Config) { c.TokenExpiresIn = -time.Hour }, true},
		{"Short secret in development", func(c *Config) { c.JWTSecret = "short" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ValidateProduction(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"Valid production", func(c *Config) {}, false},
		{"Default JWT secret", func(c *Config) { c.JWTSecret = "your-secret-key-change-in-production" }, true},
		{"Short JWT secret", func(c *Config) { c.JWTSecret = "short-secret" }, true},
		{"Default DB password", func(c *Config) { c.DBPassword = "password" }, true},
		{"Empty DB password", func(c *Config) { c.DBPassword = "" }, true},
		{"SSL disabled", func(c *Config) { c.DBSSLMode = "disable" }, true},
		{"SSL empty", func(c *Config) { c.DBSSLMode = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			c.Env = "production"
			tt.mutate(c)
			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
