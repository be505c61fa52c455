package testutil

import (
	appfavorites "scoreboard-service/internal/app/favorites"
	appgames "scoreboard-service/internal/app/games"
	appleagues "scoreboard-service/internal/app/leagues"
	appteams "scoreboard-service/internal/app/teams"
	domaingames "scoreboard-service/internal/domain/games"
	"scoreboard-service/internal/domain/leagues"
	"scoreboard-service/internal/domain/teams"
	"scoreboard-service/internal/store"
)

// Services bundles app services sharing one in-memory store.
type Services struct {
	Store     *store.MemoryStore
	Games     *appgames.Service
	Teams     *appteams.Service
	Leagues   *appleagues.Service
	Favorites *appfavorites.Service
}

// NewServices builds the full app-service stack over a fresh store, preloaded
// with the provided data.
func NewServices(g []domaingames.Game, t []teams.Team, l []leagues.League) Services {
	ms := store.NewMemoryStore()
	if len(g) > 0 {
		ms.SetGames(g)
	}
	if len(t) > 0 {
		ms.SetTeams(t)
	}
	if len(l) > 0 {
		ms.SetLeagues(l)
	}
	return Services{
		Store:     ms,
		Games:     appgames.NewService(ms),
		Teams:     appteams.NewService(ms),
		Leagues:   appleagues.NewService(ms),
		Favorites: appfavorites.NewService(ms, ms),
	}
}

// NewServiceWithGames builds a games service backed by an in-memory store preloaded with games.
func NewServiceWithGames(g []domaingames.Game) *appgames.Service {
	return NewServices(g, nil, nil).Games
}
