package server

import (
	"log/slog"

	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/config"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/metrics"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (logging + metrics).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) (providers.DataProvider, string) {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}

func (f providerFactory) wrap(cfg config.Config, base providers.DataProvider) (providers.DataProvider, string) {
	name := normalizeProviderName(cfg.Provider, base)
	return providers.NewInstrumentedProvider(base, f.logger, f.metrics, name), name
}
