package server

import (
	"log/slog"

	"scoreboard-service/internal/config"
	"scoreboard-service/internal/metrics"
	"scoreboard-service/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (retry/backoff).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	base := selectProvider(cfg, f.logger)
	return providers.NewRetryingProvider(base, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base), 0, 0)
}
