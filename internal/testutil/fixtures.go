package testutil

import (
	"time"

	domaingames "scoreboard-service/internal/domain/games"
	"scoreboard-service/internal/domain/leagues"
	"scoreboard-service/internal/domain/teams"
)

// SampleLeague returns a minimal league fixture.
func SampleLeague(id, abbr string) leagues.League {
	return leagues.League{ID: id, Name: abbr + " League", Sport: "sport", Abbreviation: abbr}
}

// SampleTeam returns a minimal team fixture bound to a league.
func SampleTeam(id, name, leagueID string) teams.Team {
	return teams.Team{ID: id, Name: name, Abbreviation: id, City: "City", LeagueID: leagueID}
}

// SampleGame returns a minimal scheduled game fixture with the provided id.
func SampleGame(id string) domaingames.Game {
	return domaingames.Game{
		ID:        id,
		LeagueID:  "test",
		HomeTeam:  SampleTeam("home", "Home", "test"),
		AwayTeam:  SampleTeam("away", "Away", "test"),
		StartTime: time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC).Format(time.RFC3339),
		Status:    domaingames.StatusScheduled,
	}
}

// GameAt returns a game with the given status and start time.
func GameAt(id string, status domaingames.GameStatus, start time.Time) domaingames.Game {
	g := SampleGame(id)
	g.Status = status
	g.StartTime = start.Format(time.RFC3339)
	if status == domaingames.StatusInProgress || status == domaingames.StatusFinal {
		g.Score = &domaingames.Score{Home: 1, Away: 2}
	}
	return g
}
