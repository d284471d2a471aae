package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with args and returns what it printed.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		if logCloser != nil {
			_ = logCloser.Close()
		}
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func isolateCLI(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, ".cache"))
	t.Setenv("REELCTL_CONFIG", "")
	t.Setenv("REELCTL_TMDB_API_KEY", "")
	t.Setenv("REELCTL_LOGGING_FILE", "-")
	t.Setenv("TMDB_API_KEY", "")
	return dir
}

func TestConfigInit_WritesDefaults(t *testing.T) {
	dir := isolateCLI(t)
	path := filepath.Join(dir, "reelctl", "config.yml")

	out, err := runCLI(t, "--no-color", "--config", path, "config", "init", "--force=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "api_base: https://api.themoviedb.org/3")
	assert.NotContains(t, string(data), "api_key:")
}

func TestConfigInit_RefusesToOverwrite(t *testing.T) {
	dir := isolateCLI(t)
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  debounce: 1s\n"), 0644))

	_, err := runCLI(t, "--no-color", "--config", path, "config", "init", "--force=false")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "debounce: 1s", "existing file untouched")

	_, err = runCLI(t, "--no-color", "--config", path, "config", "init", "--force")
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "api_base:")
}

func TestConfigShow_RedactsAPIKey(t *testing.T) {
	dir := isolateCLI(t)
	path := filepath.Join(dir, "config.yml")
	content := `tmdb:
  api_key: super-secret-key
search:
  debounce: 200ms
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	out, err := runCLI(t, "--no-color", "--config", path, "config", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "# "+path)
	assert.Regexp(t, `api_key: ['"]?\*{8}`, out)
	assert.NotContains(t, out, "super-secret-key")
	assert.Contains(t, out, "debounce: 200ms")
}

func TestConfigShow_KeyFromEnvRedacted(t *testing.T) {
	dir := isolateCLI(t)
	t.Setenv("TMDB_API_KEY", "env-secret")

	out, err := runCLI(t, "--no-color", "--config", filepath.Join(dir, "missing.yml"), "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "********")
	assert.NotContains(t, out, "env-secret")
}
