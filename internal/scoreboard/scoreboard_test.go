package scoreboard

import (
	"encoding/json"
	"testing"
	"time"

	domaingames "scoreboard-service/internal/domain/games"
	"scoreboard-service/internal/domain/teams"
)

func game(id, leagueID, home, away string, status domaingames.GameStatus, start time.Time) domaingames.Game {
	return domaingames.Game{
		ID:        id,
		LeagueID:  leagueID,
		HomeTeam:  teams.Team{ID: home, Name: home, City: "City", LeagueID: leagueID},
		AwayTeam:  teams.Team{ID: away, Name: away, City: "City", LeagueID: leagueID},
		StartTime: start.Format(time.RFC3339),
		Status:    status,
	}
}

func sampleGames() []domaingames.Game {
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	return []domaingames.Game{
		game("g1", "nfl", "49ers", "Chiefs", domaingames.StatusInProgress, base),
		game("g2", "nba", "Warriors", "Lakers", domaingames.StatusScheduled, base.Add(4*time.Hour)),
		game("g3", "nba", "Celtics", "Heat", domaingames.StatusScheduled, base.Add(2*time.Hour)),
		game("g4", "nfl", "Eagles", "Cowboys", domaingames.StatusFinal, base.Add(-20*time.Hour)),
		game("g5", "nba", "Lakers", "Celtics", domaingames.StatusFinal, base.Add(-2*time.Hour)),
		game("g6", "nfl", "Chiefs", "Eagles", domaingames.StatusPostponed, base.Add(6*time.Hour)),
	}
}

func ids(games []domaingames.Game) []string {
	out := make([]string, len(games))
	for i, g := range games {
		out[i] = g.ID
	}
	return out
}

func assertIDs(t *testing.T, got []domaingames.Game, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d games %v, got %v", len(want), want, ids(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("expected %v, got %v", want, ids(got))
		}
	}
}

func TestApplyNoFilterReturnsAll(t *testing.T) {
	games := sampleGames()
	got := Apply(games, Filter{})
	assertIDs(t, got, "g1", "g2", "g3", "g4", "g5", "g6")
}

func TestApplyLeagueFilter(t *testing.T) {
	got := Apply(sampleGames(), Filter{LeagueID: "nfl"})
	for _, g := range got {
		if g.LeagueID != "nfl" {
			t.Fatalf("expected only nfl games, got %s in %s", g.ID, g.LeagueID)
		}
	}
	assertIDs(t, got, "g1", "g4", "g6")
}

func TestApplySearchIsCaseInsensitive(t *testing.T) {
	games := sampleGames()

	lower := Apply(games, Filter{Search: "warriors"})
	upper := Apply(games, Filter{Search: "WARRIORS"})
	mixed := Apply(games, Filter{Search: "Warriors"})

	assertIDs(t, lower, "g2")
	if len(upper) != len(lower) || len(mixed) != len(lower) {
		t.Fatalf("case variants differ: lower=%v upper=%v mixed=%v", ids(lower), ids(upper), ids(mixed))
	}
	for i := range lower {
		if lower[i].ID != upper[i].ID || lower[i].ID != mixed[i].ID {
			t.Fatalf("case variants differ: lower=%v upper=%v mixed=%v", ids(lower), ids(upper), ids(mixed))
		}
	}
}

func TestApplySearchMatchesHomeAndAway(t *testing.T) {
	got := Apply(sampleGames(), Filter{Search: "lakers"})
	assertIDs(t, got, "g2", "g5")
}

func TestApplyClearingSearchRestoresFullList(t *testing.T) {
	games := sampleGames()
	filtered := Apply(games, Filter{Search: "celtics"})
	if len(filtered) == len(games) {
		t.Fatalf("expected search to narrow results")
	}

	restored := Apply(games, Filter{Search: ""})
	assertIDs(t, restored, ids(games)...)
}

func TestApplyCombinesLeagueAndSearch(t *testing.T) {
	got := Apply(sampleGames(), Filter{LeagueID: "nba", Search: "celtics"})
	assertIDs(t, got, "g3", "g5")
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	games := sampleGames()
	before := ids(games)
	_ = Apply(games, Filter{LeagueID: "nba", Search: "heat"})
	after := ids(games)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("input mutated: before=%v after=%v", before, after)
		}
	}
}

func TestPartitionGroupsByStatus(t *testing.T) {
	sb := Partition(sampleGames())

	assertIDs(t, sb.Live, "g1")
	assertIDs(t, sb.Upcoming, "g3", "g2")
	assertIDs(t, sb.Final, "g5", "g4")
}

func TestPartitionExcludesPostponed(t *testing.T) {
	sb := Partition(sampleGames())
	total := len(sb.Live) + len(sb.Upcoming) + len(sb.Final)
	if total != 5 {
		t.Fatalf("expected postponed game excluded, got %d grouped games", total)
	}
}

func TestPartitionUpcomingNonDecreasing(t *testing.T) {
	sb := Partition(sampleGames())
	for i := 1; i < len(sb.Upcoming); i++ {
		if sb.Upcoming[i].StartsAt().Before(sb.Upcoming[i-1].StartsAt()) {
			t.Fatalf("upcoming games out of order: %v", ids(sb.Upcoming))
		}
	}
}

func TestPartitionFinalNonIncreasing(t *testing.T) {
	sb := Partition(sampleGames())
	for i := 1; i < len(sb.Final); i++ {
		if sb.Final[i].StartsAt().After(sb.Final[i-1].StartsAt()) {
			t.Fatalf("final games out of order: %v", ids(sb.Final))
		}
	}
}

func TestPartitionSortIsStable(t *testing.T) {
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	games := []domaingames.Game{
		game("a", "nba", "One", "Two", domaingames.StatusScheduled, base),
		game("b", "nba", "Three", "Four", domaingames.StatusScheduled, base),
		game("c", "nba", "Five", "Six", domaingames.StatusScheduled, base),
	}
	sb := Partition(games)
	assertIDs(t, sb.Upcoming, "a", "b", "c")
}

func TestBuildFiltersThenPartitions(t *testing.T) {
	sb := Build(sampleGames(), Filter{LeagueID: "nba"})
	if len(sb.Live) != 0 {
		t.Fatalf("expected no live nba games, got %v", ids(sb.Live))
	}
	assertIDs(t, sb.Upcoming, "g3", "g2")
	assertIDs(t, sb.Final, "g5")
}

func TestPartitionEmptyGroupsEncodeAsArrays(t *testing.T) {
	data, err := json.Marshal(Partition(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"live":[],"upcoming":[],"final":[]}`
	if string(data) != want {
		t.Fatalf("expected %s, got %s", want, data)
	}
}
