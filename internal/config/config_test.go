package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvContent, EnvTransition, EnvNoIntro, EnvLogFile, EnvLogLevel, EnvOTLP, EnvServiceName} {
		t.Setenv(k, "")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "config.yaml")
	doc := `
content: /srv/site.yaml
start: /beyond
no_intro: true
transition: 900ms
easing: spring
log:
  level: debug
`
	require.NoError(t, os.WriteFile(p, []byte(doc), 0o644))

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "/srv/site.yaml", cfg.Content)
	assert.Equal(t, "/beyond", cfg.Start)
	assert.True(t, cfg.NoIntro)
	assert.Equal(t, 900*time.Millisecond, cfg.Transition)
	assert.Equal(t, "spring", cfg.Easing)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "folio", cfg.Trace.ServiceName, "unset keys keep defaults")
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("transition: [\n"), 0o644))
	_, err := Load(bad)
	assert.ErrorContains(t, err, "parse config")

	neg := filepath.Join(dir, "neg.yaml")
	require.NoError(t, os.WriteFile(neg, []byte("transition: -1s\n"), 0o644))
	_, err = Load(neg)
	assert.ErrorContains(t, err, "transition must be positive")
}

func TestEnvOverrides(t *testing.T) {
	t.Run("env wins over file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvTransition, "250ms")
		t.Setenv(EnvNoIntro, "1")
		t.Setenv(EnvOTLP, "http://localhost:4318")
		t.Setenv(EnvServiceName, "folio-test")
		t.Setenv(EnvLogFile, "/tmp/folio.log")

		cfg := Default()
		require.NoError(t, cfg.applyEnvOverrides())
		assert.Equal(t, 250*time.Millisecond, cfg.Transition)
		assert.True(t, cfg.NoIntro)
		assert.Equal(t, "http://localhost:4318", cfg.Trace.Endpoint)
		assert.Equal(t, "folio-test", cfg.Trace.ServiceName)
		assert.Equal(t, "/tmp/folio.log", cfg.Log.File)
	})

	t.Run("bad duration", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvTransition, "soon")
		assert.ErrorContains(t, Default().applyEnvOverrides(), EnvTransition)
	})

	t.Run("bad bool", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvNoIntro, "maybe")
		assert.ErrorContains(t, Default().applyEnvOverrides(), EnvNoIntro)
	})
}

func TestLoadDotenv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	env := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(env, []byte("FOLIO_LOG_LEVEL=warn\n"), 0o644))

	t.Setenv(EnvLogLevel, "")
	require.NoError(t, os.Unsetenv(EnvLogLevel))
	require.NoError(t, LoadDotenv(filepath.Join(dir, "missing.env"), env))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "folio", "config.yaml"), p)
}
