package fixture

import (
	"time"

	domaingames "scoreboard-service/internal/domain/games"
	"scoreboard-service/internal/domain/leagues"
	"scoreboard-service/internal/domain/teams"
)

func score(home, away int) *domaingames.Score {
	return &domaingames.Score{Home: home, Away: away}
}

// Leagues returns the static fixture leagues.
func Leagues() []leagues.League {
	return []leagues.League{
		{ID: "nfl", Name: "National Football League", Sport: "football", Abbreviation: "NFL"},
		{ID: "nba", Name: "National Basketball Association", Sport: "basketball", Abbreviation: "NBA"},
	}
}

// Teams returns the static fixture teams. Each team belongs to exactly one
// fixture league.
func Teams() []teams.Team {
	return []teams.Team{
		{ID: "sf", Name: "49ers", Abbreviation: "SF", City: "San Francisco", Color: "#AA0000", LeagueID: "nfl"},
		{ID: "kc", Name: "Chiefs", Abbreviation: "KC", City: "Kansas City", Color: "#E31837", LeagueID: "nfl"},
		{ID: "dal", Name: "Cowboys", Abbreviation: "DAL", City: "Dallas", Color: "#003594", LeagueID: "nfl"},
		{ID: "phi", Name: "Eagles", Abbreviation: "PHI", City: "Philadelphia", Color: "#004C54", LeagueID: "nfl"},
		{ID: "gsw", Name: "Warriors", Abbreviation: "GSW", City: "Golden State", Color: "#1D428A", LeagueID: "nba"},
		{ID: "lal", Name: "Lakers", Abbreviation: "LAL", City: "Los Angeles", Color: "#552583", LeagueID: "nba"},
		{ID: "bos", Name: "Celtics", Abbreviation: "BOS", City: "Boston", Color: "#007A33", LeagueID: "nba"},
		{ID: "mia", Name: "Heat", Abbreviation: "MIA", City: "Miami", Color: "#98002E", LeagueID: "nba"},
	}
}

// Games returns the static fixture games anchored around now: live games with
// partial scores, upcoming games in the next hours, finals from the last day,
// and one postponed game with no score.
func Games(now time.Time) []domaingames.Game {
	byID := make(map[string]teams.Team)
	for _, t := range Teams() {
		byID[t.ID] = t
	}
	at := func(offset time.Duration) string {
		return now.Add(offset).Format(time.RFC3339)
	}

	return []domaingames.Game{
		{
			ID: "nfl-1", LeagueID: "nfl",
			HomeTeam: byID["sf"], AwayTeam: byID["kc"],
			StartTime: at(-30 * time.Minute),
			Status:    domaingames.StatusInProgress,
			Score:     score(17, 14),
		},
		{
			ID: "nba-1", LeagueID: "nba",
			HomeTeam: byID["gsw"], AwayTeam: byID["lal"],
			StartTime: at(-45 * time.Minute),
			Status:    domaingames.StatusInProgress,
			Score:     score(58, 61),
		},
		{
			ID: "nfl-2", LeagueID: "nfl",
			HomeTeam: byID["dal"], AwayTeam: byID["phi"],
			StartTime: at(3 * time.Hour),
			Status:    domaingames.StatusScheduled,
		},
		{
			ID: "nba-2", LeagueID: "nba",
			HomeTeam: byID["bos"], AwayTeam: byID["mia"],
			StartTime: at(90 * time.Minute),
			Status:    domaingames.StatusScheduled,
		},
		{
			ID: "nba-3", LeagueID: "nba",
			HomeTeam: byID["lal"], AwayTeam: byID["bos"],
			StartTime: at(26 * time.Hour),
			Status:    domaingames.StatusScheduled,
		},
		{
			ID: "nfl-3", LeagueID: "nfl",
			HomeTeam: byID["phi"], AwayTeam: byID["sf"],
			StartTime: at(-26 * time.Hour),
			Status:    domaingames.StatusFinal,
			Score:     score(24, 28),
		},
		{
			ID: "nba-4", LeagueID: "nba",
			HomeTeam: byID["mia"], AwayTeam: byID["gsw"],
			StartTime: at(-20 * time.Hour),
			Status:    domaingames.StatusFinal,
			Score:     score(102, 110),
		},
		{
			ID: "nfl-4", LeagueID: "nfl",
			HomeTeam: byID["kc"], AwayTeam: byID["dal"],
			StartTime: at(5 * time.Hour),
			Status:    domaingames.StatusPostponed,
		},
	}
}
