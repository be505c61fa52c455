package favorites

import (
	"errors"

	"scoreboard-service/internal/domain/teams"
)

// ErrUnknownTeam is returned when toggling a team ID not present in the store.
var ErrUnknownTeam = errors.New("unknown team")

// Store defines the favorites-membership contract.
type Store interface {
	ToggleFavorite(teamID string) bool
	IsFavorite(teamID string) bool
	FavoriteIDs() []string
}

// TeamStore resolves favorite IDs back to canonical team records.
type TeamStore interface {
	ListTeams() []teams.Team
	GetTeam(id string) (teams.Team, bool)
}

// Service tracks favorite teams by ID membership. Favorites never hold copies
// of team records, so canonical team data cannot diverge after favoriting.
type Service struct {
	store Store
	teams TeamStore
}

// NewService constructs a Service over the favorites and team stores.
func NewService(store Store, teams TeamStore) *Service {
	return &Service{store: store, teams: teams}
}

// Toggle flips a team's favorite membership exactly once and reports whether
// the team is a favorite after the call.
func (s *Service) Toggle(teamID string) (bool, error) {
	if _, ok := s.teams.GetTeam(teamID); !ok {
		return false, ErrUnknownTeam
	}
	return s.store.ToggleFavorite(teamID), nil
}

// IsFavorite reports whether a team is currently favorited.
func (s *Service) IsFavorite(teamID string) bool {
	return s.store.IsFavorite(teamID)
}

// Favorites resolves the favorite ID set against the canonical team store,
// preserving the store's team ordering.
func (s *Service) Favorites() []teams.Team {
	ids := s.store.FavoriteIDs()
	result := make([]teams.Team, 0, len(ids))
	if len(ids) == 0 {
		return result
	}
	member := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		member[id] = struct{}{}
	}

	for _, t := range s.teams.ListTeams() {
		if _, ok := member[t.ID]; ok {
			result = append(result, t)
		}
	}
	return result
}
