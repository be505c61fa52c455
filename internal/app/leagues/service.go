package leagues

import (
	"sort"

	"scoreboard-service/internal/domain/leagues"
)

// Store defines the contract for persisting and retrieving leagues.
type Store interface {
	ListLeagues() []leagues.League
	GetLeague(id string) (leagues.League, bool)
	SetLeagues([]leagues.League)
}

// Service coordinates league operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Leagues returns the current set of leagues sorted by abbreviation for a
// stable listing order.
func (s *Service) Leagues() []leagues.League {
	items := s.store.ListLeagues()
	sort.Slice(items, func(i, j int) bool {
		return items[i].Abbreviation < items[j].Abbreviation
	})
	return items
}

// LeagueByID returns a single league if present.
func (s *Service) LeagueByID(id string) (leagues.League, bool) {
	return s.store.GetLeague(id)
}

// ReplaceLeagues swaps the in-memory leagues with a new snapshot.
func (s *Service) ReplaceLeagues(items []leagues.League) {
	s.store.SetLeagues(items)
}
