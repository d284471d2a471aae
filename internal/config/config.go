package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const defaultTimeout = 15 * time.Second

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "reelctl", "config.yml")
}

// ResolvePath picks the config file: explicit path, then REELCTL_CONFIG,
// then the default location.
func ResolvePath(path string) string {
	if path != "" {
		return ExpandHome(path)
	}
	if env := os.Getenv("REELCTL_CONFIG"); env != "" {
		return ExpandHome(env)
	}
	return DefaultPath()
}

// Load reads the config from disk (or env). A missing file is not an error;
// defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("REELCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(ResolvePath(path))
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Key from the file or REELCTL_TMDB_API_KEY wins; otherwise the named env var.
	if cfg.TMDB.APIKey == "" {
		keyEnv := cfg.TMDB.APIKeyEnv
		if keyEnv == "" {
			keyEnv = "TMDB_API_KEY"
		}
		cfg.TMDB.APIKey = os.Getenv(keyEnv)
	}

	cfg.Logging.File = ExpandHome(cfg.Logging.File)
	cfg.Cache.Dir = ExpandHome(cfg.Cache.Dir)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		TMDB: TMDBConfig{
			APIBase:   "https://api.themoviedb.org/3",
			ImageBase: "https://image.tmdb.org",
			APIKeyEnv: "TMDB_API_KEY",
			Timeout:   defaultTimeout,
		},
		Cache: CacheConfig{
			Dir: defaultCacheDir(),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   defaultLogFile(),
		},
	}
}

// Save writes the config to path, creating parent directories.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing config file: %w", err)
	}
	return nil
}

// Validate checks values that cannot be defaulted.
func Validate(cfg *Config) error {
	if cfg.TMDB.APIBase == "" {
		return fmt.Errorf("tmdb.api_base is required")
	}
	if cfg.TMDB.Timeout < 0 {
		return fmt.Errorf("tmdb.timeout must not be negative")
	}
	if cfg.Search.Debounce < 0 {
		return fmt.Errorf("search.debounce must not be negative")
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(cfg.Logging.Level)] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}
	return nil
}

// ExpandHome expands a leading ~/ in a path.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("tmdb.api_base", d.TMDB.APIBase)
	v.SetDefault("tmdb.image_base", d.TMDB.ImageBase)
	v.SetDefault("tmdb.api_key_env", d.TMDB.APIKeyEnv)
	v.SetDefault("tmdb.api_key", "")
	v.SetDefault("tmdb.timeout", d.TMDB.Timeout)
	v.SetDefault("search.debounce", d.Search.Debounce)
	v.SetDefault("cache.dir", d.Cache.Dir)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.color", d.Logging.Color)
	v.SetDefault("logging.file", d.Logging.File)
}

func defaultLogFile() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "reelctl", "reelctl.log")
}

func defaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "reelctl")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "reelctl")
}
