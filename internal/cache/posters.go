package cache

import (
	"bytes"
	"context"

	"github.com/rs/zerolog"
)

// Fetcher downloads poster bytes.
type Fetcher interface {
	FetchPoster(ctx context.Context, posterPath string) ([]byte, error)
}

// Posters serves posters from disk, downloading through Fetcher on a miss.
type Posters struct {
	cache  *Manager
	source Fetcher
	logger zerolog.Logger
}

// NewPosters wraps source with the cache m.
func NewPosters(m *Manager, source Fetcher, logger zerolog.Logger) *Posters {
	return &Posters{cache: m, source: source, logger: logger}
}

// FetchPoster implements tui.PosterSource.
func (p *Posters) FetchPoster(ctx context.Context, posterPath string) ([]byte, error) {
	if p.cache.Exists(posterPath) {
		data, err := p.cache.Load(posterPath)
		if err == nil && len(data) > 0 {
			p.logger.Debug().Str("poster", posterPath).Msg("poster cache hit")
			return data, nil
		}
		p.logger.Warn().Err(err).Str("poster", posterPath).Msg("unreadable cached poster, downloading")
	}

	data, err := p.source.FetchPoster(ctx, posterPath)
	if err != nil {
		return nil, err
	}

	// A cache write failure still returns the downloaded image.
	if _, err := p.cache.Store(posterPath, bytes.NewReader(data)); err != nil {
		p.logger.Warn().Err(err).Str("poster", posterPath).Msg("caching poster failed")
	}
	return data, nil
}
