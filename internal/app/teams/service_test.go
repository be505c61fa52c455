package teams

import (
	"testing"

	domainteams "scoreboard-service/internal/domain/teams"
)

type stubStore struct {
	listResult []domainteams.Team
	getResult  domainteams.Team
	getOK      bool
	setValue   []domainteams.Team
}

func (s *stubStore) ListTeams() []domainteams.Team {
	return s.listResult
}

func (s *stubStore) GetTeam(id string) (domainteams.Team, bool) {
	_ = id
	return s.getResult, s.getOK
}

func (s *stubStore) SetTeams(items []domainteams.Team) {
	s.setValue = items
}

func TestServiceTeamsReturnsAll(t *testing.T) {
	store := &stubStore{
		listResult: []domainteams.Team{{ID: "gsw"}, {ID: "sf"}},
	}
	svc := NewService(store)

	if got := svc.Teams(""); len(got) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(got))
	}
}

func TestServiceTeamsFiltersByLeague(t *testing.T) {
	store := &stubStore{
		listResult: []domainteams.Team{
			{ID: "gsw", LeagueID: "nba"},
			{ID: "sf", LeagueID: "nfl"},
		},
	}
	svc := NewService(store)

	got := svc.Teams("nba")
	if len(got) != 1 || got[0].ID != "gsw" {
		t.Fatalf("unexpected teams %+v", got)
	}
}

func TestServiceTeamByID(t *testing.T) {
	store := &stubStore{getResult: domainteams.Team{ID: "gsw"}, getOK: true}
	svc := NewService(store)

	team, ok := svc.TeamByID("gsw")
	if !ok || team.ID != "gsw" {
		t.Fatalf("unexpected team %+v ok=%v", team, ok)
	}
}

func TestServiceReplaceTeams(t *testing.T) {
	store := &stubStore{}
	svc := NewService(store)

	svc.ReplaceTeams([]domainteams.Team{{ID: "new"}})
	if len(store.setValue) != 1 || store.setValue[0].ID != "new" {
		t.Fatalf("unexpected stored teams %+v", store.setValue)
	}
}
