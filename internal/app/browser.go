package app

import (
	"github.com/blackwell-systems/reelctl/internal/cache"
	"github.com/blackwell-systems/reelctl/internal/tui"
)

// services wires the catalog client into the interactive screens.
func services() tui.Services {
	svc := tui.Services{
		Catalog:   client,
		ImageBase: cfg.TMDB.ImageBase,
		Protocol:  tui.DetectImageProtocol(),
		Timeout:   cfg.TMDB.Timeout,
		Debounce:  cfg.Search.Debounce,
		Logger:    logger.With().Str("component", "tui").Logger(),
	}
	if svc.Protocol != tui.ProtocolNone {
		svc.Posters = client
		if cfg.Cache.Dir != "" {
			svc.Posters = cache.NewPosters(cache.New(cfg.Cache.Dir), client, svc.Logger)
		}
	}
	return svc
}

func runBrowser() error {
	logger.Info().
		Dur("debounce", cfg.Search.Debounce).
		Msg("starting interactive browser")
	return tui.RunNavigator(services())
}
