package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty directory with HOME pointed at it so no
// real config.yaml or .env is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, filepath.Join(dir, ".readynurse", "readynurse.db"), cfg.DBPath)
	assert.Equal(t, BackendSQLite, cfg.Leaderboard.Backend)
	assert.False(t, cfg.LLM.Enabled)
	assert.Equal(t, "http://localhost:11434", cfg.LLM.Endpoint)
	assert.False(t, cfg.Storage.Enabled())
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("READYNURSE_ENV", "production")
	t.Setenv("READYNURSE_LLM_ENABLED", "true")
	t.Setenv("READYNURSE_LLM_MODEL", "mistral")
	t.Setenv("READYNURSE_LEADERBOARD_BACKEND", "redis")
	t.Setenv("READYNURSE_LEADERBOARD_REDIS_ADDR", "cache:6380")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.True(t, cfg.LLM.Enabled)
	assert.Equal(t, "mistral", cfg.LLM.Model)
	assert.Equal(t, BackendRedis, cfg.Leaderboard.Backend)
	assert.Equal(t, "cache:6380", cfg.Leaderboard.RedisAddr)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	yaml := "user_id: nurse-1\nstorage:\n  endpoint: minio:9000\n  bucket: pics\nllm:\n  timeout_ms: 2500\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "nurse-1", cfg.UserID)
	assert.True(t, cfg.Storage.Enabled())
	assert.Equal(t, "pics", cfg.Storage.Bucket)
	assert.Equal(t, 2500, cfg.LLM.TimeoutMs)
}

func TestLoad_DotEnvDoesNotOverrideEnvironment(t *testing.T) {
	dir := isolate(t)
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("READYNURSE_USER_ID=from-file\nREADYNURSE_LLM_MODEL=phi3\n"), 0o644))
	t.Setenv("READYNURSE_USER_ID", "from-env")
	t.Cleanup(func() { os.Unsetenv("READYNURSE_LLM_MODEL") })

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.UserID)
	assert.Equal(t, "phi3", cfg.LLM.Model)
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	isolate(t)
	t.Setenv("READYNURSE_LEADERBOARD_BACKEND", "postgres")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "leaderboard backend")
}

func TestLLMConfig_KeepsTaskTuning(t *testing.T) {
	cfg := &Config{LLM: LLM{Enabled: true, Model: "mistral", TimeoutMs: 4000, MaxRetries: 2}}
	out := cfg.LLMConfig()
	assert.True(t, out.Enabled)
	assert.Equal(t, "mistral", out.Model)
	assert.Equal(t, "http://localhost:11434", out.Endpoint)
	assert.Equal(t, 2, out.MaxRetries)
	assert.NotEmpty(t, out.Tasks)
}
