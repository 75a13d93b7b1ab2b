package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Port:       "8487",
			BaseURL:    "http://localhost:8487",
			JWTSecret:  "secure-secret-at-least-32-chars-long",
			DBPassword: "secure-password",
			DBSSLMode:  "require",
			Env:        "development",
		}
	}

	t.Run("valid development config", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		c := base()
		c.Port = ""
		assert.Error(t, c.Validate())
	})

	t.Run("missing base URL", func(t *testing.T) {
		c := base()
		c.BaseURL = ""
		assert.Error(t, c.Validate())
	})

	t.Run("production rejects default JWT secret", func(t *testing.T) {
		c := base()
		c.Env = "production"
		c.JWTSecret = "dev-secret-change-in-production"
		assert.Error(t, c.Validate())
	})

	t.Run("production rejects default DB password", func(t *testing.T) {
		c := base()
		c.Env = "prod"
		c.DBPassword = "password"
		assert.Error(t, c.Validate())
	})

	t.Run("development tolerates default secrets", func(t *testing.T) {
		c := base()
		c.JWTSecret = "dev-secret-change-in-production"
		c.DBPassword = "password"
		assert.NoError(t, c.Validate())
	})
}
