package server

import (
	"log/slog"

	"scoreboard-service/internal/config"
	"scoreboard-service/internal/providers"
	"scoreboard-service/internal/providers/fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider {
	case fixture.Name, "":
		return fixture.New(fixture.WithDelay(cfg.FetchDelay))
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New(fixture.WithDelay(cfg.FetchDelay))
	}
}
