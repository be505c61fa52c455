package teams

import "scoreboard-service/internal/domain/teams"

// Store defines the contract for persisting and retrieving teams.
type Store interface {
	ListTeams() []teams.Team
	GetTeam(id string) (teams.Team, bool)
	SetTeams([]teams.Team)
}

// Service coordinates team operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Teams returns the current set of teams, restricted to a league when
// leagueID is non-empty.
func (s *Service) Teams(leagueID string) []teams.Team {
	all := s.store.ListTeams()
	if leagueID == "" {
		return all
	}
	result := make([]teams.Team, 0, len(all))
	for _, t := range all {
		if t.LeagueID == leagueID {
			result = append(result, t)
		}
	}
	return result
}

// TeamByID returns a single team if present.
func (s *Service) TeamByID(id string) (teams.Team, bool) {
	return s.store.GetTeam(id)
}

// ReplaceTeams swaps the in-memory teams with a new snapshot.
func (s *Service) ReplaceTeams(items []teams.Team) {
	s.store.SetTeams(items)
}
