package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/plantctl/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plantctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.LoadWithEnv("", nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, "Tutorial", cfg.Project.Timeline)
	assert.Equal(t, 20.0, cfg.Project.Speed)
	assert.Equal(t, time.Second, cfg.Run.Tick)
	assert.Equal(t, "sample_data.csv", cfg.Run.Output)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
engine:
  kind: http
  url: http://localhost:9000
  timeout: 5s
project:
  speed: 1000
run:
  tick: 500ms
  max_ticks: 100
store:
  kind: redis
  ttl: 1h
sequence_dirs: [a, b]
`)
	cfg, err := config.LoadWithEnv(path, nil)
	require.NoError(t, err)
	assert.Equal(t, config.EngineHTTP, cfg.Engine.Kind)
	assert.Equal(t, "http://localhost:9000", cfg.Engine.URL)
	assert.Equal(t, 5*time.Second, cfg.Engine.Timeout)
	assert.Equal(t, 1000.0, cfg.Project.Speed)
	assert.Equal(t, "Tutorial", cfg.Project.Timeline, "unset keys keep defaults")
	assert.Equal(t, 500*time.Millisecond, cfg.Run.Tick)
	assert.Equal(t, 100, cfg.Run.MaxTicks)
	assert.Equal(t, config.StoreRedis, cfg.Store.Kind)
	assert.Equal(t, time.Hour, cfg.Store.TTL)
	assert.Equal(t, "localhost:6379", cfg.Store.RedisAddr)
	assert.Equal(t, []string{"a", "b"}, cfg.SequenceDirs)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "project:\n  speed: 1000\n")
	cfg, err := config.LoadWithEnv(path, []string{
		"PLANTCTL_PROJECT_SPEED=50",
		"PLANTCTL_PROJECT_INITIAL_CONDITIONS=Warm Start",
		"PLANTCTL_RUN_TICK=2s",
		"PLANTCTL_STORE_REDIS_DB=3",
		"PLANTCTL_SEQUENCE_DIRS=x,y",
		"PLANTCTL_UNKNOWN=ignored",
		"HOME=/root",
	})
	require.NoError(t, err)
	assert.Equal(t, 50.0, cfg.Project.Speed)
	assert.Equal(t, "Warm Start", cfg.Project.InitialConditions)
	assert.Equal(t, 2*time.Second, cfg.Run.Tick)
	assert.Equal(t, 3, cfg.Store.RedisDB)
	assert.Equal(t, []string{"x", "y"}, cfg.SequenceDirs)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.LoadWithEnv(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)

	_, err = config.LoadWithEnv(writeFile(t, "engine: [unclosed"), nil)
	assert.Error(t, err)

	_, err = config.LoadWithEnv(writeFile(t, "engine:\n  colour: red\n"), nil)
	assert.Error(t, err, "unknown keys are rejected")

	_, err = config.LoadWithEnv(writeFile(t, "engine:\n  kind: http\n"), nil)
	assert.ErrorContains(t, err, "engine.url")

	_, err = config.LoadWithEnv("", []string{"PLANTCTL_STORE_KIND=s3", "PLANTCTL_PROJECT_SPEED=0"})
	require.Error(t, err)
	assert.ErrorContains(t, err, `unknown store kind "s3"`)
	assert.ErrorContains(t, err, "project.speed")
}

func TestYAML_RoundTrip(t *testing.T) {
	data, err := config.Default().YAML()
	require.NoError(t, err)
	cfg, err := config.LoadWithEnv(writeFile(t, string(data)), nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
