package config

import "time"

// Config is the top-level reelctl configuration.
type Config struct {
	TMDB    TMDBConfig    `mapstructure:"tmdb" yaml:"tmdb"`
	Search  SearchConfig  `mapstructure:"search" yaml:"search"`
	Cache   CacheConfig   `mapstructure:"cache" yaml:"cache"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// TMDBConfig holds catalog API connection settings.
type TMDBConfig struct {
	APIBase   string        `mapstructure:"api_base" yaml:"api_base"`
	ImageBase string        `mapstructure:"image_base" yaml:"image_base"`
	APIKeyEnv string        `mapstructure:"api_key_env" yaml:"api_key_env"`
	APIKey    string        `mapstructure:"api_key" yaml:"api_key,omitempty"`
	Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// SearchConfig tunes how the catalog screen reacts to typing.
type SearchConfig struct {
	// Debounce delays the fetch after a keystroke; zero fetches on every change.
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce"`
}

// CacheConfig locates downloaded posters.
type CacheConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"` // empty disables the poster cache
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
	Color  bool   `mapstructure:"color" yaml:"color"`
	File   string `mapstructure:"file" yaml:"file"` // "-" writes to stderr
}

// HasAPIKey reports whether a catalog API key was resolved.
func (c *Config) HasAPIKey() bool {
	return c.TMDB.APIKey != ""
}

// Redacted returns a copy safe to print.
func (c Config) Redacted() Config {
	if c.TMDB.APIKey != "" {
		c.TMDB.APIKey = "********"
	}
	return c
}
