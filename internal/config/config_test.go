package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "http://localhost:8080/api")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Backend.RequestTimeout)
	assert.Equal(t, []string{"teacher"}, cfg.Auth.DefaultRoles)
	assert.Equal(t, "/auth/login", cfg.Auth.LoginRoute)
	assert.Equal(t, "/dashboard/main", cfg.Auth.DefaultRoute)
	assert.False(t, cfg.Auth.ResetOnLogout)
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Equal(t, "token", cfg.Session.TokenKey)
	assert.Empty(t, cfg.RabbitMQ.DSN)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "http://backend:8080")
	t.Setenv("AUTH_DEFAULT_ROLES", "student,teacher")
	t.Setenv("AUTH_RESET_ON_LOGOUT", "true")
	t.Setenv("SESSION_STORE", "redis")
	t.Setenv("REDIS_PORT", "6380")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://backend:8080", cfg.Backend.BaseURL)
	assert.Equal(t, []string{"student", "teacher"}, cfg.Auth.DefaultRoles)
	assert.True(t, cfg.Auth.ResetOnLogout)
	assert.Equal(t, "redis", cfg.Session.Store)
	assert.Equal(t, 6380, cfg.Redis.Port)
}

func TestLoadConfigRequiresBackend(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "")
	_, err := LoadConfig()
	assert.Error(t, err)
}
