package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	domaingames "scoreboard-service/internal/domain/games"
	"scoreboard-service/internal/domain/leagues"
	"scoreboard-service/internal/domain/teams"
	"scoreboard-service/internal/metrics"
)

const (
	defaultMaxRetries      = 3
	defaultInitialInterval = 200 * time.Millisecond
)

// retryingProvider wraps a DataProvider with exponential backoff retries.
type retryingProvider struct {
	inner           DataProvider
	logger          *slog.Logger
	metrics         *metrics.Recorder
	name            string
	maxRetries      uint64
	initialInterval time.Duration
}

// NewRetryingProvider wraps the given provider with retries. If maxRetries or
// initialInterval are zero, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxRetries uint64, initialInterval time.Duration) DataProvider {
	if maxRetries == 0 {
		maxRetries = defaultMaxRetries
	}
	if initialInterval <= 0 {
		initialInterval = defaultInitialInterval
	}
	return &retryingProvider{
		inner:           inner,
		logger:          logger,
		metrics:         recorder,
		name:            name,
		maxRetries:      maxRetries,
		initialInterval: initialInterval,
	}
}

func (r *retryingProvider) FetchGames(ctx context.Context) ([]domaingames.Game, error) {
	var result []domaingames.Game
	err := r.retry(ctx, "FetchGames", func() error {
		games, err := r.inner.FetchGames(ctx)
		if err != nil {
			return err
		}
		result = games
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *retryingProvider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	var result []teams.Team
	err := r.retry(ctx, "FetchTeams", func() error {
		items, err := r.inner.FetchTeams(ctx)
		if err != nil {
			return err
		}
		result = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *retryingProvider) FetchLeagues(ctx context.Context) ([]leagues.League, error) {
	var result []leagues.League
	err := r.retry(ctx, "FetchLeagues", func() error {
		items, err := r.inner.FetchLeagues(ctx)
		if err != nil {
			return err
		}
		result = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *retryingProvider) retry(ctx context.Context, op string, fn func() error) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.initialInterval

	attempt := func() error {
		start := time.Now()
		err := fn()
		if r.metrics != nil {
			r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "provider fetch retry",
			slog.String("op", op),
			slog.Duration("wait", wait),
			slog.Any("err", err),
		)
	}

	err := backoff.RetryNotify(attempt, backoff.WithContext(backoff.WithMaxRetries(bo, r.maxRetries), ctx), notify)
	if err != nil {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "provider fetch failed",
			slog.String("op", op),
			slog.Any("err", err),
		)
		return &FetchError{Provider: r.name, Op: op, Err: err}
	}
	return nil
}
