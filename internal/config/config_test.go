package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nremp/dashboard/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("TOKEN_SECRET", "")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Nil(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.APIURL.String())
	assert.Equal(t, "data/dashboard.db", cfg.DatabasePath)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, time.Duration(0), cfg.FleetMockDelay)
	assert.NotEmpty(t, cfg.TokenSecret, "debug mode falls back to a development secret")
	assert.Equal(t, language.BrazilianPortuguese, cfg.Language())
	assert.Empty(t, cfg.CORSAllowOrigins)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv("TOKEN_SECRET", "s3cret")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("API_URL", "https://dashboard.example.com/api")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:3000 https://example.com")
	t.Setenv("FLEET_API_URL", "https://fleet.example.com")
	t.Setenv("FLEET_MOCK_DELAY", "1500ms")
	t.Setenv("ENABLE_PPROF", "true")
	t.Setenv("DEFAULT_LANGUAGE", "en")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Nil(t, err)

	assert.Equal(t, "s3cret", cfg.TokenSecret)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, "dashboard.example.com", cfg.APIURL.Host)
	assert.Equal(t, "/api", cfg.APIURL.Path)
	assert.Equal(t, []string{"http://localhost:3000", "https://example.com"}, cfg.CORSAllowOrigins)
	assert.Equal(t, "https://fleet.example.com", cfg.FleetAPIURL)
	assert.Equal(t, 1500*time.Millisecond, cfg.FleetMockDelay)
	assert.True(t, cfg.EnablePprof)
	assert.Equal(t, language.English, cfg.Language())
}

func TestLoadDotEnv(t *testing.T) {
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("TOKEN_SECRET", "from-environment")

	path := filepath.Join(t.TempDir(), ".env")
	require.Nil(t, os.WriteFile(path, []byte("BOOTSTRAP_ADMIN_EMAIL=admin@example.com\nTOKEN_SECRET=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("BOOTSTRAP_ADMIN_EMAIL") })

	cfg, err := config.Load(path)
	require.Nil(t, err)

	assert.Equal(t, "admin@example.com", cfg.BootstrapAdminEmail)
	assert.Equal(t, "from-environment", cfg.TokenSecret, "the environment wins over .env files")
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"No secret in release mode", map[string]string{"GIN_MODE": "release", "TOKEN_SECRET": ""}},
		{"Unparseable TTL", map[string]string{"GIN_MODE": "debug", "TOKEN_TTL": "a day"}},
		{"Negative TTL", map[string]string{"GIN_MODE": "debug", "TOKEN_TTL": "-1h"}},
		{"Unsupported language", map[string]string{"GIN_MODE": "debug", "DEFAULT_LANGUAGE": "tlh"}},
		{"Unparseable bool", map[string]string{"GIN_MODE": "debug", "ENABLE_PPROF": "sometimes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.NotNil(t, err)
		})
	}
}
