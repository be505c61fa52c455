package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	domaingames "scoreboard-service/internal/domain/games"
	"scoreboard-service/internal/domain/leagues"
	"scoreboard-service/internal/domain/teams"
	"scoreboard-service/internal/logging"
	"scoreboard-service/internal/metrics"
	"scoreboard-service/internal/providers"
)

// ErrLoadFailed is the single error surfaced when any of the joint fetches
// fails. Callers present it as a generic load failure.
var ErrLoadFailed = errors.New("failed to load data")

// GamesSink receives a replacement games snapshot.
type GamesSink interface {
	ReplaceGames([]domaingames.Game)
}

// TeamsSink receives a replacement teams snapshot.
type TeamsSink interface {
	ReplaceTeams([]teams.Team)
}

// LeaguesSink receives a replacement leagues snapshot.
type LeaguesSink interface {
	ReplaceLeagues([]leagues.League)
}

// Loader fetches games, teams, and leagues concurrently from a provider and
// installs the results only when all three fetches succeed, so a failed load
// never leaves the store partially updated.
type Loader struct {
	provider providers.DataProvider
	games    GamesSink
	teams    TeamsSink
	leagues  LeaguesSink
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// New constructs a Loader.
func New(provider providers.DataProvider, games GamesSink, teams TeamsSink, leagues LeaguesSink, logger *slog.Logger, recorder *metrics.Recorder) *Loader {
	return &Loader{
		provider: provider,
		games:    games,
		teams:    teams,
		leagues:  leagues,
		logger:   logger,
		metrics:  recorder,
	}
}

// Load issues the three fetches concurrently and awaits them jointly.
func (l *Loader) Load(ctx context.Context) error {
	start := time.Now()

	var (
		wg         sync.WaitGroup
		gotGames   []domaingames.Game
		gotTeams   []teams.Team
		gotLeagues []leagues.League
		gamesErr   error
		teamsErr   error
		leaguesErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		gotGames, gamesErr = l.provider.FetchGames(ctx)
	}()
	go func() {
		defer wg.Done()
		gotTeams, teamsErr = l.provider.FetchTeams(ctx)
	}()
	go func() {
		defer wg.Done()
		gotLeagues, leaguesErr = l.provider.FetchLeagues(ctx)
	}()
	wg.Wait()

	err := firstError(gamesErr, teamsErr, leaguesErr)
	if l.metrics != nil {
		l.metrics.RecordLoadCycle(time.Since(start), err)
	}
	if err != nil {
		logging.Error(l.logger, "load failed", err,
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	l.games.ReplaceGames(gotGames)
	l.teams.ReplaceTeams(gotTeams)
	l.leagues.ReplaceLeagues(gotLeagues)

	logging.Info(l.logger, "load complete",
		slog.Int("games", len(gotGames)),
		slog.Int("teams", len(gotTeams)),
		slog.Int("leagues", len(gotLeagues)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
