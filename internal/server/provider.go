package server

import (
	"log/slog"

	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/config"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/logging"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/playerindex"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/providers"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/providers/fixture"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/providers/nbastats"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider {
	case "fixture", "":
		return fixture.New()
	case "nbastats":
		return nbastats.NewClient(nbastats.Config{
			BaseURL: cfg.NBAStats.BaseURL,
			Timeout: cfg.NBAStats.Timeout,
		})
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider))
		return fixture.New()
	}
}

// selectIndexSource prefers a configured index file over the provider's own index.
func selectIndexSource(cfg config.Config, provider providers.IndexProvider, providerName string) (providers.IndexProvider, string) {
	if cfg.Index.Path != "" {
		return playerindex.FileSource{Path: cfg.Index.Path}, "file"
	}
	return provider, providerName
}
