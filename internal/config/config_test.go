package config_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/tollway-portal/internal/config"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	c, err := config.FromEnv()
	require.NoError(t, err)

	require.Equal(t, ":8080", c.GetPort())
	require.Equal(t, config.SessionBackendMemory, c.GetSessionBackend())
	require.Equal(t, 800*time.Millisecond, c.GetAdminLoginDelay())
	require.True(t, c.GetAdminLoginEnabled())
	require.Equal(t, "http://localhost:5000", c.GetLoginEndpointBase())
	require.Empty(t, c.GetTokenSigningSecret())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", ":9090")
	t.Setenv("ENV", "PROD")
	t.Setenv("SESSION_BACKEND", "sqlite")
	t.Setenv("ADMIN_LOGIN_ENABLED", "false")
	t.Setenv("ADMIN_LOGIN_DELAY", "1s")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

	c, err := config.FromEnv()
	require.NoError(t, err)

	require.Equal(t, ":9090", c.GetPort())
	require.False(t, c.IsDev())
	require.Equal(t, config.SessionBackendSQLite, c.GetSessionBackend())
	require.False(t, c.GetAdminLoginEnabled())
	require.Equal(t, time.Second, c.GetAdminLoginDelay())
	require.True(t, c.GetAllowedOrigins().IsAllowedOrigin("https://b.example"))
}

func TestFromEnv_UnknownBackend(t *testing.T) {
	t.Setenv("SESSION_BACKEND", "cassandra")
	_, err := config.FromEnv()
	require.Error(t, err)
}
