package cmd

import (
	"log/slog"

	"github.com/lepinkainen/storeview/internal/cache"
	"github.com/lepinkainen/storeview/internal/config"
	"github.com/lepinkainen/storeview/internal/display"
	"github.com/lepinkainen/storeview/internal/ratelimit"
	"github.com/lepinkainen/storeview/internal/service"
	"github.com/lepinkainen/storeview/internal/storeapi"
)

// app holds the components shared by every command.
type app struct {
	loader *service.Loader
	cache  *cache.CacheDB
}

func buildApp(cfg *config.Config) (*app, error) {
	opts := []storeapi.Option{
		storeapi.WithBaseURL(cfg.Store.BaseURL),
		storeapi.WithLanguage(cfg.Store.Language),
		storeapi.WithUserAgent(cfg.Store.UserAgent),
		storeapi.WithTimeout(cfg.Store.Timeout),
		storeapi.WithRateLimiter(ratelimit.New("steam-store", cfg.Store.RatePerSecond, 1)),
	}

	a := &app{}
	if cfg.Cache.Enabled {
		db, err := cache.Open(cfg.Cache.DBFile)
		if err != nil {
			return nil, err
		}
		a.cache = db
		opts = append(opts, storeapi.WithCache(db, cfg.Cache.TTL))
		slog.Debug("Response cache enabled", "file", cfg.Cache.DBFile, "ttl", cfg.Cache.TTL)
	}

	transformer := display.NewTransformer(display.WithIconBaseURL(cfg.Icons.BaseURL))
	a.loader = service.NewLoader(storeapi.NewClient(opts...), transformer)
	return a, nil
}

// Close releases the cache database, if one was opened.
func (a *app) Close() {
	if a.cache == nil {
		return
	}
	if err := a.cache.Close(); err != nil {
		slog.Warn("Failed to close cache database", "error", err)
	}
}
