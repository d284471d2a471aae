package cache

import (
	"fmt"
	"io"
	"os"
)

// Store writes r to the cache path for posterPath. The file appears
// atomically; a failed write leaves nothing behind.
// Returns the final file path.
func (m *Manager) Store(posterPath string, r io.Reader) (string, error) {
	if err := m.EnsureDir(); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}

	destPath := m.Path(posterPath)
	tmpPath := destPath + ".tmp"

	f, err := os.Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("writing to cache: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		_ = os.Remove(tmpPath)
		return "", err
	}
	return destPath, nil
}

// Load returns the cached bytes for posterPath.
func (m *Manager) Load(posterPath string) ([]byte, error) {
	return os.ReadFile(m.Path(posterPath))
}
