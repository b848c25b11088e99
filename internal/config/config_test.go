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
	t.Setenv("PORT", "")
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("SESSION_TTL", "")

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.NotEmpty(t, cfg.AdminPassword)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("SESSION_TTL", "30m")

	cfg := Load()

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "s3cret", cfg.AdminPassword)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
}

func TestLoadInvalidTTLKeepsDefault(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")

	cfg := Load()
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}

func TestLoadServiceAccountInlineEnvWins(t *testing.T) {
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_JSON", `{"project_id": "demo"}`)
	t.Setenv("SERVICE_ACCOUNT_FILE", "does-not-exist.json")

	data, err := LoadServiceAccount()
	require.NoError(t, err)
	assert.JSONEq(t, `{"project_id": "demo"}`, string(data))
}

func TestLoadServiceAccountRejectsInvalidInlineJSON(t *testing.T) {
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_JSON", "{not json")

	_, err := LoadServiceAccount()
	assert.Error(t, err)
}

func TestLoadServiceAccountFromFile(t *testing.T) {
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_JSON", "")

	path := filepath.Join(t.TempDir(), "service-account.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"project_id": "file-demo"}`), 0600))
	t.Setenv("SERVICE_ACCOUNT_FILE", path)

	data, err := LoadServiceAccount()
	require.NoError(t, err)
	assert.Contains(t, string(data), "file-demo")
}

func TestLoadServiceAccountMissingFile(t *testing.T) {
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_JSON", "")
	t.Setenv("SERVICE_ACCOUNT_FILE", filepath.Join(t.TempDir(), "nope.json"))

	_, err := LoadServiceAccount()
	assert.Error(t, err)
}
