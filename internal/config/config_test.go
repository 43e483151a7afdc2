package config_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/wayfinder/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoad_ExplicitMissing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_YAMLOverlaysDefaults(t *testing.T) {
	path := write(t, "wayfinder.yaml", `
dir: /srv/brain
generate:
  folds: 5
  seed: 42
serve:
  store: redis
  ttl: 90m
  redis:
    addr: redis:6379
log:
  level: debug
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Generate.Folds)
	assert.Equal(t, int64(42), cfg.Generate.Seed)
	assert.Equal(t, "public/brain-map.json", cfg.Generate.Index, "untouched keys keep defaults")
	assert.Equal(t, config.StoreRedis, cfg.Serve.Store)
	assert.Equal(t, 90*time.Minute, cfg.Serve.TTL)
	assert.Equal(t, "redis:6379", cfg.Serve.Redis.Addr)
	assert.Equal(t, "wayfinder:session:", cfg.Serve.Redis.Prefix)

	assert.Equal(t, "/srv/brain/public/brain-map.json", cfg.IndexSource())
	assert.Equal(t, "/srv/brain/public/models", cfg.ModelsDir())
}

func TestLoad_JSON(t *testing.T) {
	path := write(t, "wayfinder.json", `{"generate": {"point_count": "250"}, "serve": {"index": "http://cdn/brain-map.json"}}`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.Generate.PointCount, "weakly typed input")
	assert.Equal(t, "http://cdn/brain-map.json", cfg.IndexSource())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"UnknownKey", "generate:\n  colour: red\n", "colour"},
		{"BadStore", "serve:\n  store: etcd\n", "serve.store"},
		{"NegativeFolds", "generate:\n  folds: -1\n", "generate.folds"},
		{"BadLevel", "log:\n  level: loud\n", "log.level"},
		{"BadFormat", "log:\n  format: xml\n", "log.format"},
		{"Malformed", "generate: [", "failed to parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(write(t, "wayfinder.yaml", tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestPath(t *testing.T) {
	cfg := config.Default()
	cfg.Dir = "out"
	assert.Equal(t, filepath.Join("out", "a.json"), cfg.Path("a.json"))
	assert.Equal(t, "/abs/a.json", cfg.Path("/abs/a.json"))
	assert.Equal(t, "https://x/a.json", cfg.Path("https://x/a.json"))
	assert.Equal(t, "", cfg.Path(""))
}

func TestLogger(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "warn"
	cfg.Log.Format = "json"
	logger, err := cfg.Logger()
	require.NoError(t, err)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelWarn))

	cfg.Log.Format = "xml"
	_, err = cfg.Logger()
	assert.ErrorContains(t, err, "log.format")
}
