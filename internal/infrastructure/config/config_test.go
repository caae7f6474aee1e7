package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9090\n"), 0o600))

	cfg, err := Load("", path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 2000, cfg.Messaging.MaxBodyLength)
	assert.Equal(t, "Support", cfg.Messaging.SupportDisplayName)
	assert.Same(t, cfg, Get())
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database:\n  driver: sqlite\n"), 0o600))

	t.Setenv("TRADEHUB_MESSAGING_MAX_BODY_LENGTH", "500")

	cfg, err := Load("release", path)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Messaging.MaxBodyLength)
	assert.True(t, cfg.Database.IsSQLite())
	assert.Equal(t, "release", cfg.Server.Mode)
}
