package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresSecretKey(t *testing.T) {
	t.Setenv("SECRET_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("PORT", "")
	t.Setenv("AWS_LWA_PORT", "")
	t.Setenv("TOKEN_TTL_MINUTES", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 60*time.Minute, cfg.TokenTTL)
}

func TestLoadCustomTokenTTL(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("TOKEN_TTL_MINUTES", "15")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
}

func TestLoadRejectsInvalidTokenTTL(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("TOKEN_TTL_MINUTES", "sixty")

	_, err := Load()
	assert.Error(t, err)
}
