package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() Config {
	return Config{
		Auth:       Auth{JWTSecret: "secret"},
		ChangeFeed: ChangeFeed{Source: "postgres"},
		Session:    Session{IdleTTL: 30 * time.Minute, ReapInterval: time.Minute},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"rabbitmq source", func(c *Config) { c.ChangeFeed.Source = "rabbitmq" }, ""},
		{"empty jwt secret", func(c *Config) { c.Auth.JWTSecret = "" }, "jwt_secret"},
		{"unknown source", func(c *Config) { c.ChangeFeed.Source = "kafka" }, "unknown change feed source"},
		{"no idle ttl", func(c *Config) { c.Session.IdleTTL = 0 }, "idle_ttl"},
		{"no reap interval", func(c *Config) { c.Session.ReapInterval = 0 }, "reap_interval"},
		{"role checked on every request", func(c *Config) { c.Session.RoleCheck = 0 }, ""},
		{"negative role check", func(c *Config) { c.Session.RoleCheck = -time.Second }, "role_check"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
