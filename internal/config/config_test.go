package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-hrms/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef")

	cfg, err := config.Load("")

	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 168*time.Hour, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, 3*time.Second, cfg.Kafka.PollInterval)
	assert.Equal(t, "5432", cfg.Database.Port)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server:\n  port: 8081\ndb:\n  host: file-host\nauth:\n  jwt_secret: file-secret-0123456789\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("DB_HOST", "env-host")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "file-secret-0123456789", cfg.Auth.JWTSecret)
}

func TestValidate(t *testing.T) {
	valid := config.Config{
		Server: config.ServerConfig{Port: 3000},
		Auth:   config.AuthConfig{JWTSecret: "0123456789abcdef", AccessTokenTTL: time.Minute},
	}
	assert.NoError(t, valid.Validate())

	short := valid
	short.Auth.JWTSecret = "short"
	assert.Error(t, short.Validate())

	badPort := valid
	badPort.Server.Port = 70000
	assert.Error(t, badPort.Validate())
}
