package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Manager handles the local poster cache.
type Manager struct {
	baseDir string
}

// New creates a cache Manager rooted at baseDir.
func New(baseDir string) *Manager {
	return &Manager{baseDir: baseDir}
}

// Path returns the cache path for a catalog poster path such as "/x.jpg".
// Files are keyed by a hash of the full poster path, so distinct paths never
// share a file and no path can escape the cache dir.
// Layout: <baseDir>/posters/<sha256>[.ext]
func (m *Manager) Path(posterPath string) string {
	sum := sha256.Sum256([]byte(posterPath))
	return filepath.Join(m.baseDir, "posters", hex.EncodeToString(sum[:])+imageExt(posterPath))
}

// imageExt keeps a short alphanumeric extension for readability.
func imageExt(posterPath string) string {
	ext := strings.ToLower(path.Ext(posterPath))
	if len(ext) < 2 || len(ext) > 6 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}

// Exists reports whether the poster is cached.
func (m *Manager) Exists(posterPath string) bool {
	_, err := os.Stat(m.Path(posterPath))
	return err == nil
}

// EnsureDir creates the poster directory.
func (m *Manager) EnsureDir() error {
	return os.MkdirAll(filepath.Join(m.baseDir, "posters"), 0750)
}
