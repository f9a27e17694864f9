package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SECRET_KEY", "shh")
	t.Setenv("YANDEX_CLIENT_ID", "cid")
	t.Setenv("YANDEX_CLIENT_SECRET", "csecret")
	t.Setenv("YANDEX_REDIRECT_URI", "http://localhost/auth/yandex/callback")
	t.Setenv("DATABASE_URL", "postgres://localhost/app")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "HS256", cfg.Algorithm)
	assert.Equal(t, 30, cfg.AccessTokenExpireMinutes)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenTTL())
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ALGORITHM", "HS512")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "5")
	t.Setenv("PORT", "9000")
	t.Setenv("UPLOAD_DIR", "/srv/uploads")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "HS512", cfg.Algorithm)
	assert.Equal(t, 5*time.Minute, cfg.AccessTokenTTL())
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "/srv/uploads", cfg.UploadDir)
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SECRET_KEY", "")

	_, err := Load()
	require.Error(t, err)
}
