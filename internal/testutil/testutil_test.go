package testutil

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	domaingames "scoreboard-service/internal/domain/games"
	"scoreboard-service/internal/scoreboard"
)

func TestSampleGameDefaults(t *testing.T) {
	g := SampleGame("id-1")
	if g.ID != "id-1" {
		t.Fatalf("expected id to be set, got %s", g.ID)
	}
	if g.Status != domaingames.StatusScheduled {
		t.Fatalf("expected scheduled status, got %s", g.Status)
	}
	if g.HomeTeam.ID == g.AwayTeam.ID {
		t.Fatalf("expected distinct home and away teams")
	}
}

func TestGameAtAttachesScoreForActiveStatuses(t *testing.T) {
	start := time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)

	live := GameAt("g1", domaingames.StatusInProgress, start)
	if live.Score == nil {
		t.Fatalf("expected score on in-progress game")
	}
	if live.StartsAt() != start {
		t.Fatalf("expected start time %s, got %s", start, live.StartsAt())
	}

	upcoming := GameAt("g2", domaingames.StatusScheduled, start)
	if upcoming.Score != nil {
		t.Fatalf("expected no score on scheduled game")
	}
}

func TestNewServicesSharesOneStore(t *testing.T) {
	svcs := NewServices([]domaingames.Game{SampleGame("g1")}, nil, nil)
	if svcs.Store == nil {
		t.Fatalf("expected store")
	}
	if got := len(svcs.Games.Games(scoreboard.Filter{})); got != 1 {
		t.Fatalf("expected preloaded game, got %d", got)
	}
}

func TestStubProviderCountsCalls(t *testing.T) {
	stub := &StubProvider{GamesErr: errors.New("boom")}

	if _, err := stub.FetchGames(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	if _, err := stub.FetchTeams(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stub.GamesCalls != 1 || stub.TeamsCalls != 1 || stub.LeaguesCalls != 0 {
		t.Fatalf("unexpected call counts %d/%d/%d", stub.GamesCalls, stub.TeamsCalls, stub.LeaguesCalls)
	}
}

func TestServeRecordsResponse(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
	rr := Serve(h, http.MethodGet, "/anything", nil)
	AssertStatus(t, rr, http.StatusAccepted)
}

func TestMustParseRFC3339(t *testing.T) {
	want := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	if got := MustParseRFC3339("2026-01-02T15:04:05Z"); !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
