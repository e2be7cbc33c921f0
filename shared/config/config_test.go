package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPrivate = `
jwt_key: 'file-key'
pg:
  host: localhost
  port: 5432
  user: auth
  password: secret
  dbname: auth
`

func writeConfig(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600); err != nil {
		t.Fatal(err)
	}
	if private != "" {
		if err := os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvJwtKey, "")
	t.Setenv(EnvPgPassword, "")
	t.Setenv(EnvPort, "")
	dir := writeConfig(t, "log_json: true\n", validPrivate)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Public.HttpAddr)
	assert.Equal(t, "info", cfg.Public.LogLevel)
	assert.True(t, cfg.Public.LogJSON)
	assert.Equal(t, 10, cfg.Public.BcryptCost)
	assert.Equal(t, 5*time.Second, cfg.Public.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Public.WriteTimeout)
	assert.Equal(t, "file-key", cfg.JwtKey())
	assert.Equal(t, "host=localhost port=5432 user=auth password=secret dbname=auth sslmode=disable", cfg.Private.Pg.DSN())
}

func TestLoad_ParsesDurationsAndOrigins(t *testing.T) {
	t.Setenv(EnvJwtKey, "")
	t.Setenv(EnvPort, "")
	public := "http_addr: ':9000'\nread_timeout: 3s\nwrite_timeout: 1m\nallowed_origins:\n  - http://localhost:8081\nbcrypt_cost: 12\n"
	dir := writeConfig(t, public, validPrivate)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Public.HttpAddr)
	assert.Equal(t, 3*time.Second, cfg.Public.ReadTimeout)
	assert.Equal(t, time.Minute, cfg.Public.WriteTimeout)
	assert.Equal(t, []string{"http://localhost:8081"}, cfg.Public.AllowedOrigins)
	assert.Equal(t, 12, cfg.Public.BcryptCost)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvJwtKey, "env-key")
	t.Setenv(EnvPgPassword, "env-pass")
	t.Setenv(EnvPort, "7070")
	dir := writeConfig(t, "http_addr: ':9000'\n", validPrivate)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.JwtKey())
	assert.Equal(t, "env-pass", cfg.Private.Pg.Password)
	assert.Equal(t, ":7070", cfg.Public.HttpAddr)
}

func TestLoad_MissingJwtKey(t *testing.T) {
	t.Setenv(EnvJwtKey, "")
	private := "pg:\n  host: localhost\n  port: 5432\n  user: auth\n  dbname: auth\n"
	dir := writeConfig(t, "", private)

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JwtKey")
}

func TestLoad_JwtKeyFromEnvOnly(t *testing.T) {
	t.Setenv(EnvJwtKey, "env-only")
	private := "pg:\n  host: localhost\n  port: 5432\n  user: auth\n  dbname: auth\n"
	dir := writeConfig(t, "", private)

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "env-only", cfg.JwtKey())
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv(EnvJwtKey, "")
	tests := []struct {
		name   string
		public string
	}{
		{name: "bcrypt cost too low", public: "bcrypt_cost: 2\n"},
		{name: "unknown log level", public: "log_level: loud\n"},
		{name: "negative timeout", public: "read_timeout: -1s\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, tt.public, validPrivate)
			_, err := Load(dir)
			assert.Error(t, err)
		})
	}
}

func TestMustLoad_MissingFile(t *testing.T) {
	dir := writeConfig(t, "", "")

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic due to missing private.yaml, got none")
		}
	}()

	_ = MustLoad(dir)
}
