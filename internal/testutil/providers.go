package testutil

import (
	"context"
	"sync"

	domaingames "scoreboard-service/internal/domain/games"
	"scoreboard-service/internal/domain/leagues"
	"scoreboard-service/internal/domain/teams"
)

// StubProvider implements providers.DataProvider with canned results.
type StubProvider struct {
	mu sync.Mutex

	GamesResult   []domaingames.Game
	TeamsResult   []teams.Team
	LeaguesResult []leagues.League

	GamesErr   error
	TeamsErr   error
	LeaguesErr error

	GamesCalls   int
	TeamsCalls   int
	LeaguesCalls int
}

func (s *StubProvider) FetchGames(ctx context.Context) ([]domaingames.Game, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.GamesCalls++
	return s.GamesResult, s.GamesErr
}

func (s *StubProvider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.TeamsCalls++
	return s.TeamsResult, s.TeamsErr
}

func (s *StubProvider) FetchLeagues(ctx context.Context) ([]leagues.League, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LeaguesCalls++
	return s.LeaguesResult, s.LeaguesErr
}
