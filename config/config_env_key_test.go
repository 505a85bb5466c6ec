package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"overrideDsn":  "",
			"maxOpenConns": 10,
		},
		"secretKey": map[string]any{
			"session": "",
		},
		"auth": map[string]any{
			"bcryptCost": 10,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_OVERRIDEDSN", want: "postgres.overrideDsn"},
		{envKey: "POSTGRES_MAXOPENCONNS", want: "postgres.maxOpenConns"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestPostgresConfig_DatabaseURL_OverrideWins(t *testing.T) {
	pg := &PostgresConfig{DSN: "postgres://primary"}
	assert.Equal(t, "postgres://primary", pg.DatabaseURL())

	pg.OverrideDSN = "postgres://routed"
	assert.Equal(t, "postgres://routed", pg.DatabaseURL())

	var nilCfg *PostgresConfig
	assert.Empty(t, nilCfg.DatabaseURL())
}

func TestLoadWithEnv_YAMLAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
http:
  port: 8080
postgres:
  dsn: postgres://from-yaml
  overrideDsn: ""
secretKey:
  session: yaml-secret
auth:
  bcryptCost: 10
  sessionTtl: 1h
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "veraz-test.yaml"), content, 0o600))

	t.Setenv("POSTGRES_OVERRIDEDSN", "postgres://from-env")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("veraz-test", dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "postgres://from-yaml", cfg.Postgres.DSN)
	assert.Equal(t, "postgres://from-env", cfg.Postgres.DatabaseURL())
	assert.Equal(t, "yaml-secret", cfg.SecretKey.Session)
	assert.Equal(t, time.Hour, cfg.Auth.SessionTTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestApplyDeploymentEnv(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	t.Setenv(envDatabaseURL, "postgres://db")
	t.Setenv(envOverrideDatabaseURL, "postgres://override")
	t.Setenv(envSessionSecret, "s3cret")
	t.Setenv("POSTGRES_REPLICAS_0_DSN", "postgres://replica-0")
	t.Setenv("POSTGRES_REPLICAS_1_DSN", "postgres://replica-1")

	applyDeploymentEnv(cfg)

	assert.Equal(t, "postgres://db", cfg.Postgres.DSN)
	assert.Equal(t, "postgres://override", cfg.Postgres.DatabaseURL())
	assert.Equal(t, "s3cret", cfg.SecretKey.Session)
	assert.Equal(t, []string{"postgres://replica-0", "postgres://replica-1"}, cfg.Postgres.Replicas)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, defaultSessionTTL, cfg.Auth.SessionTTL)
}
