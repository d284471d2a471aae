package tui

import (
	"context"
	"time"

	"github.com/blackwell-systems/reelctl/internal/tmdb"
	"github.com/rs/zerolog"
)

// CatalogSource is the remote catalog the catalog screen reads from.
type CatalogSource interface {
	NowPlaying(ctx context.Context) ([]tmdb.Record, error)
	Search(ctx context.Context, query string) ([]tmdb.Record, error)
}

// PosterSource downloads poster images for inline display.
type PosterSource interface {
	FetchPoster(ctx context.Context, posterPath string) ([]byte, error)
}

// Services bundles what the screens need from outside the UI.
type Services struct {
	Catalog CatalogSource
	Posters PosterSource // optional

	ImageBase string
	Protocol  TerminalImageProtocol

	Timeout  time.Duration // per request; zero means none
	Debounce time.Duration // delay between a keystroke and its fetch

	Logger zerolog.Logger
}

func (s Services) posterURL(posterPath string) string {
	return tmdb.PosterURL(s.ImageBase, posterPath)
}

func (s Services) requestContext() (context.Context, context.CancelFunc) {
	if s.Timeout > 0 {
		return context.WithTimeout(context.Background(), s.Timeout)
	}
	return context.WithCancel(context.Background())
}
