package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/blackwell-systems/reelctl/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every config lookup at a temp dir and clears key env vars.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("REELCTL_CONFIG", "")
	t.Setenv("TMDB_API_KEY", "")
	t.Setenv("REELCTL_TMDB_API_KEY", "")
	return dir
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	dir := isolate(t)

	cfg, err := config.Load(filepath.Join(dir, "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDB.APIBase)
	assert.Equal(t, "https://image.tmdb.org", cfg.TMDB.ImageBase)
	assert.Equal(t, "TMDB_API_KEY", cfg.TMDB.APIKeyEnv)
	assert.Equal(t, 15*time.Second, cfg.TMDB.Timeout)
	assert.Zero(t, cfg.Search.Debounce)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.NotEmpty(t, cfg.Cache.Dir)
	assert.False(t, cfg.HasAPIKey())
}

func TestLoad_FileValues(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yml")
	content := `tmdb:
  api_base: http://localhost:9000/3
  api_key: from-file
  timeout: 3s
search:
  debounce: 250ms
cache:
  dir: ~/posters
logging:
  level: debug
  format: json
  file: "-"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/3", cfg.TMDB.APIBase)
	assert.Equal(t, "from-file", cfg.TMDB.APIKey)
	assert.Equal(t, 3*time.Second, cfg.TMDB.Timeout)
	assert.Equal(t, 250*time.Millisecond, cfg.Search.Debounce)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "-", cfg.Logging.File)
	assert.Equal(t, filepath.Join(dir, "posters"), cfg.Cache.Dir)
}

func TestLoad_APIKeyFromNamedEnv(t *testing.T) {
	dir := isolate(t)
	t.Setenv("TMDB_API_KEY", "from-env")

	cfg, err := config.Load(filepath.Join(dir, "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.TMDB.APIKey)
}

func TestLoad_PrefixedEnvWins(t *testing.T) {
	dir := isolate(t)
	t.Setenv("TMDB_API_KEY", "from-env")
	t.Setenv("REELCTL_TMDB_API_KEY", "prefixed")

	cfg, err := config.Load(filepath.Join(dir, "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, "prefixed", cfg.TMDB.APIKey)
}

func TestLoad_InvalidLevel(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0644))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logging level")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(c *config.Config) {}},
		{name: "missing api base", mutate: func(c *config.Config) { c.TMDB.APIBase = "" }, wantErr: "api_base"},
		{name: "negative debounce", mutate: func(c *config.Config) { c.Search.Debounce = -time.Second }, wantErr: "debounce"},
		{name: "bad format", mutate: func(c *config.Config) { c.Logging.Format = "xml" }, wantErr: "format"},
		{name: "upper-case level", mutate: func(c *config.Config) { c.Logging.Level = "WARN" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			err := config.Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSaveThenLoad(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "nested", "config.yml")

	cfg := config.Default()
	cfg.Search.Debounce = 300 * time.Millisecond
	require.NoError(t, config.Save(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "api_base:")
	assert.NotContains(t, string(data), "api_key:")

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 300*time.Millisecond, loaded.Search.Debounce)
}

func TestSave_ReportsWriteFailure(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	err := config.Save(config.Default(), "/dev/full")
	assert.Error(t, err)
}

func TestSave_UnwritablePath(t *testing.T) {
	dir := isolate(t)

	err := config.Save(config.Default(), dir)
	assert.Error(t, err, "a directory cannot be saved over")
}

func TestResolvePath(t *testing.T) {
	isolate(t)
	assert.Equal(t, "/tmp/x.yml", config.ResolvePath("/tmp/x.yml"))

	t.Setenv("REELCTL_CONFIG", "/etc/reelctl.yml")
	assert.Equal(t, "/etc/reelctl.yml", config.ResolvePath(""))

	t.Setenv("REELCTL_CONFIG", "")
	assert.True(t, strings.HasSuffix(config.ResolvePath(""), "config.yml"))
}

func TestRedacted(t *testing.T) {
	cfg := config.Default()
	cfg.TMDB.APIKey = "secret"

	red := cfg.Redacted()
	assert.Equal(t, "********", red.TMDB.APIKey)
	assert.Equal(t, "secret", cfg.TMDB.APIKey)
}
