package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := load(filepath.Join(dir, ".env"), dir)
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "root", cfg.Database.User)
	assert.Equal(t, "test", cfg.Database.Name)
	assert.Equal(t, 10, cfg.Database.PoolSize)
	assert.Equal(t, 5*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, "logs", cfg.Audit.Table)
	assert.Equal(t, "admin", cfg.Audit.Actor)
	assert.True(t, cfg.Audit.Bootstrap)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, int64(1<<20), cfg.HTTP.MaxBodyBytes)
	assert.Equal(t, ":3000", cfg.Addr())
}

func TestLoadFromEnvironment(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("PORT", "8081")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_POOL_SIZE", "4")
	t.Setenv("DB_CONNECT_TIMEOUT", "2s")
	t.Setenv("AUDIT_ACTOR", "ops")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("REQUEST_TIMEOUT", "15s")

	cfg, err := load(filepath.Join(dir, ".env"), dir)
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, 4, cfg.Database.PoolSize)
	assert.Equal(t, 2*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, "ops", cfg.Audit.Actor)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 15*time.Second, cfg.HTTP.RequestTimeout)
}

func TestLoadDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DB_NAME=admin_db\nDB_USER=reader\n"), 0o600))

	// godotenv never overrides variables that are already set
	t.Setenv("DB_NAME", "")
	t.Setenv("DB_USER", "")
	os.Unsetenv("DB_NAME")
	os.Unsetenv("DB_USER")

	cfg, err := load(envFile, dir)
	require.NoError(t, err)

	assert.Equal(t, "admin_db", cfg.Database.Name)
	assert.Equal(t, "reader", cfg.Database.User)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "db:\n  driver: sqlite\n  name: /tmp/admin.db\naudit:\n  table: audit_trail\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := load(filepath.Join(dir, ".env"), dir)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/tmp/admin.db", cfg.Database.Name)
	assert.Equal(t, "audit_trail", cfg.Audit.Table)
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Port:     0,
		Database: DatabaseConfig{Driver: "mysql", Name: "test", PoolSize: 0},
		Audit:    AuditConfig{Table: "logs"},
		HTTP:     HTTPConfig{MaxBodyBytes: 1024},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port 0 is out of range")
	assert.Contains(t, err.Error(), "pool size")
	assert.Contains(t, err.Error(), "request timeout")

	cfg.Port = 3000
	cfg.Database.PoolSize = 10
	cfg.HTTP.RequestTimeout = time.Minute
	assert.NoError(t, cfg.Validate())
}
