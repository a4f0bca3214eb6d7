package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("SIGNING_KEY", "token-secret")
	t.Setenv("COOKIE_SIGNING_KEY", "cookie-secret")
	t.Setenv("TOKEN_ALGORITHM", "HS512")
	t.Setenv("ACCESS_TOKEN_TTL_MINUTES", "15")
	t.Setenv("COOKIE_TTL_DAYS", "7")
	t.Setenv("DEPLOYMENT_ENVIRONMENT", "production")
	t.Setenv("ALLOW_GENERATED_COOKIE_KEY", "true")
	t.Setenv("USE_OFFLINE_TRANSLATION", "true")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost:5432/notes")
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:9000")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "token-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "cookie-secret", cfg.App.CookieSignKey)
	assert.Equal(t, "HS512", cfg.App.TokenAlgorithm)
	assert.Equal(t, 15, cfg.App.AccessTokenTTLMinutes)
	assert.Equal(t, 7, cfg.App.CookieTTLDays)
	assert.Equal(t, EnvProduction, cfg.App.Environment)
	assert.True(t, cfg.App.AllowGeneratedCookieKey)
	assert.True(t, cfg.Translation.UseOffline)
	assert.Equal(t, "postgres://localhost:5432/notes", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
}

func TestParseEnv_Empty(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Empty(t, cfg.App.TokenSignKey)
	assert.False(t, cfg.App.AllowGeneratedCookieKey)
}
