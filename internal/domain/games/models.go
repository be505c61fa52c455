package games

import (
	"time"

	"scoreboard-service/internal/domain/teams"
)

// GameStatus mirrors the shared contract for game lifecycle states.
type GameStatus string

const (
	StatusScheduled  GameStatus = "SCHEDULED"
	StatusInProgress GameStatus = "IN_PROGRESS"
	StatusFinal      GameStatus = "FINAL"
	StatusPostponed  GameStatus = "POSTPONED"
)

// Score captures home and away points. A nil *Score on a Game means the game
// has not produced a score yet (scheduled or postponed).
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Game is the canonical game shape exposed by the service.
type Game struct {
	ID        string     `json:"id"`
	LeagueID  string     `json:"leagueId"`
	HomeTeam  teams.Team `json:"homeTeam"`
	AwayTeam  teams.Team `json:"awayTeam"`
	StartTime string     `json:"startTime"`
	Status    GameStatus `json:"status"`
	Score     *Score     `json:"score,omitempty"`
}

// IsLive reports whether the game is currently in progress.
// Derived strictly from status, never stored.
func (g Game) IsLive() bool {
	return g.Status == StatusInProgress
}

// IsFinal reports whether the game has finished.
func (g Game) IsFinal() bool {
	return g.Status == StatusFinal
}

// StartsAt parses the game's RFC3339 start time. The zero time is returned for
// malformed values so sorting remains total.
func (g Game) StartsAt() time.Time {
	t, err := time.Parse(time.RFC3339, g.StartTime)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ListResponse is the payload returned by /games.
type ListResponse struct {
	Games []Game `json:"games"`
}
