package providers

import (
	"context"

	domaingames "scoreboard-service/internal/domain/games"
	"scoreboard-service/internal/domain/leagues"
	"scoreboard-service/internal/domain/teams"
)

// GameProvider defines how game data is fetched and normalized.
type GameProvider interface {
	FetchGames(ctx context.Context) ([]domaingames.Game, error)
}

// TeamProvider fetches normalized teams.
type TeamProvider interface {
	FetchTeams(ctx context.Context) ([]teams.Team, error)
}

// LeagueProvider fetches normalized leagues.
type LeagueProvider interface {
	FetchLeagues(ctx context.Context) ([]leagues.League, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	GameProvider
	TeamProvider
	LeagueProvider
}
