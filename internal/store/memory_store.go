package store

import (
	"sync"

	domaingames "scoreboard-service/internal/domain/games"
	"scoreboard-service/internal/domain/leagues"
	"scoreboard-service/internal/domain/teams"
)

// MemoryStore keeps a thread-safe snapshot of leagues, teams, games, and
// favorite team IDs in memory. Nothing is ever persisted.
type MemoryStore struct {
	mu        sync.RWMutex
	games     map[string]domaingames.Game
	gameOrder []string
	teams     map[string]teams.Team
	teamOrder []string
	leagues   map[string]leagues.League
	favorites map[string]struct{}
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games:     make(map[string]domaingames.Game),
		teams:     make(map[string]teams.Team),
		leagues:   make(map[string]leagues.League),
		favorites: make(map[string]struct{}),
	}
}

// ListGames returns a copy of the current games in insertion order.
func (s *MemoryStore) ListGames() []domaingames.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domaingames.Game, 0, len(s.gameOrder))
	for _, id := range s.gameOrder {
		result = append(result, s.games[id])
	}
	return result
}

// GetGame retrieves a game by ID.
func (s *MemoryStore) GetGame(id string) (domaingames.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	return g, ok
}

// SetGames replaces the existing games with a new snapshot.
func (s *MemoryStore) SetGames(items []domaingames.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make(map[string]domaingames.Game, len(items))
	s.gameOrder = make([]string, 0, len(items))
	for _, g := range items {
		if _, seen := s.games[g.ID]; !seen {
			s.gameOrder = append(s.gameOrder, g.ID)
		}
		s.games[g.ID] = g
	}
}

// ListTeams returns a copy of the current teams in insertion order.
func (s *MemoryStore) ListTeams() []teams.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]teams.Team, 0, len(s.teamOrder))
	for _, id := range s.teamOrder {
		result = append(result, s.teams[id])
	}
	return result
}

// GetTeam retrieves a team by ID.
func (s *MemoryStore) GetTeam(id string) (teams.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teams[id]
	return t, ok
}

// SetTeams replaces the existing teams with a new snapshot.
func (s *MemoryStore) SetTeams(items []teams.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teams = make(map[string]teams.Team, len(items))
	s.teamOrder = make([]string, 0, len(items))
	for _, t := range items {
		if _, seen := s.teams[t.ID]; !seen {
			s.teamOrder = append(s.teamOrder, t.ID)
		}
		s.teams[t.ID] = t
	}
}

// ListLeagues returns a copy of the current leagues.
func (s *MemoryStore) ListLeagues() []leagues.League {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]leagues.League, 0, len(s.leagues))
	for _, l := range s.leagues {
		result = append(result, l)
	}
	return result
}

// GetLeague retrieves a league by ID.
func (s *MemoryStore) GetLeague(id string) (leagues.League, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.leagues[id]
	return l, ok
}

// SetLeagues replaces the existing leagues with a new snapshot.
func (s *MemoryStore) SetLeagues(items []leagues.League) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.leagues = make(map[string]leagues.League, len(items))
	for _, l := range items {
		s.leagues[l.ID] = l
	}
}

// ToggleFavorite flips a team ID's membership in the favorites set and
// reports whether the team is a favorite after the call.
func (s *MemoryStore) ToggleFavorite(teamID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.favorites[teamID]; ok {
		delete(s.favorites, teamID)
		return false
	}
	s.favorites[teamID] = struct{}{}
	return true
}

// IsFavorite reports whether the team ID is in the favorites set.
func (s *MemoryStore) IsFavorite(teamID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.favorites[teamID]
	return ok
}

// FavoriteIDs returns a copy of the favorite team IDs.
func (s *MemoryStore) FavoriteIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]string, 0, len(s.favorites))
	for id := range s.favorites {
		result = append(result, id)
	}
	return result
}
