package store

import (
	"testing"

	domaingames "scoreboard-service/internal/domain/games"
	"scoreboard-service/internal/domain/leagues"
	"scoreboard-service/internal/domain/teams"
)

func TestSetAndListGamesKeepsOrder(t *testing.T) {
	s := NewMemoryStore()
	s.SetGames([]domaingames.Game{{ID: "b"}, {ID: "a"}, {ID: "c"}})

	got := s.ListGames()
	if len(got) != 3 {
		t.Fatalf("expected 3 games, got %d", len(got))
	}
	for i, want := range []string{"b", "a", "c"} {
		if got[i].ID != want {
			t.Fatalf("expected order [b a c], got %v", got)
		}
	}
}

func TestGetGame(t *testing.T) {
	s := NewMemoryStore()
	s.SetGames([]domaingames.Game{{ID: "one"}})

	if _, ok := s.GetGame("one"); !ok {
		t.Fatalf("expected to find game one")
	}
	if _, ok := s.GetGame("missing"); ok {
		t.Fatalf("did not expect to find missing game")
	}
}

func TestSetGamesReplacesSnapshot(t *testing.T) {
	s := NewMemoryStore()
	s.SetGames([]domaingames.Game{{ID: "old"}})
	s.SetGames([]domaingames.Game{{ID: "new"}})

	if _, ok := s.GetGame("old"); ok {
		t.Fatalf("expected old game to be gone")
	}
	if got := s.ListGames(); len(got) != 1 || got[0].ID != "new" {
		t.Fatalf("unexpected games %v", got)
	}
}

func TestSetAndGetTeams(t *testing.T) {
	s := NewMemoryStore()
	s.SetTeams([]teams.Team{{ID: "gsw", Name: "Warriors"}, {ID: "lal", Name: "Lakers"}})

	if got := s.ListTeams(); len(got) != 2 || got[0].ID != "gsw" {
		t.Fatalf("unexpected teams %v", got)
	}
	team, ok := s.GetTeam("lal")
	if !ok || team.Name != "Lakers" {
		t.Fatalf("unexpected team %v ok=%v", team, ok)
	}
}

func TestSetAndGetLeagues(t *testing.T) {
	s := NewMemoryStore()
	s.SetLeagues([]leagues.League{{ID: "nba", Abbreviation: "NBA"}})

	if got := s.ListLeagues(); len(got) != 1 {
		t.Fatalf("expected 1 league, got %d", len(got))
	}
	if _, ok := s.GetLeague("nba"); !ok {
		t.Fatalf("expected to find nba")
	}
}

func TestToggleFavoriteFlipsMembership(t *testing.T) {
	s := NewMemoryStore()

	if got := s.ToggleFavorite("gsw"); !got {
		t.Fatalf("first toggle should favorite the team")
	}
	if !s.IsFavorite("gsw") {
		t.Fatalf("expected gsw to be a favorite")
	}

	if got := s.ToggleFavorite("gsw"); got {
		t.Fatalf("second toggle should unfavorite the team")
	}
	if s.IsFavorite("gsw") {
		t.Fatalf("expected gsw to no longer be a favorite")
	}
}

func TestFavoriteIDsReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	s.ToggleFavorite("gsw")
	s.ToggleFavorite("lal")

	ids := s.FavoriteIDs()
	if len(ids) != 2 {
		t.Fatalf("expected 2 favorites, got %d", len(ids))
	}
	ids[0] = "mutated"
	if s.IsFavorite("mutated") {
		t.Fatalf("mutating the returned slice must not affect the store")
	}
}
