package games

import (
	domaingames "scoreboard-service/internal/domain/games"
	"scoreboard-service/internal/scoreboard"
)

// Store defines the contract for persisting and retrieving games.
type Store interface {
	ListGames() []domaingames.Game
	GetGame(id string) (domaingames.Game, bool)
	SetGames(games []domaingames.Game)
}

// Service coordinates game operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Games returns the current set of games, optionally filtered.
func (s *Service) Games(f scoreboard.Filter) []domaingames.Game {
	return scoreboard.Apply(s.store.ListGames(), f)
}

// GameByID returns a single game if present.
func (s *Service) GameByID(id string) (domaingames.Game, bool) {
	return s.store.GetGame(id)
}

// Scoreboard filters the current games and partitions them into live,
// upcoming, and final groups.
func (s *Service) Scoreboard(f scoreboard.Filter) scoreboard.Scoreboard {
	return scoreboard.Build(s.store.ListGames(), f)
}

// ReplaceGames swaps the in-memory games with a new snapshot.
func (s *Service) ReplaceGames(games []domaingames.Game) {
	s.store.SetGames(games)
}
