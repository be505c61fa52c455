package scoreboard

import (
	"sort"
	"strings"

	domaingames "scoreboard-service/internal/domain/games"
)

// Filter narrows a game collection. Zero values mean "no restriction".
type Filter struct {
	// LeagueID restricts games to a single league when non-empty.
	LeagueID string
	// Search keeps games whose home or away team display name contains the
	// text, case-insensitively, when non-empty.
	Search string
}

// IsZero reports whether the filter imposes no restriction.
func (f Filter) IsZero() bool {
	return f.LeagueID == "" && strings.TrimSpace(f.Search) == ""
}

// Scoreboard groups a game collection by lifecycle state.
type Scoreboard struct {
	Live     []domaingames.Game `json:"live"`
	Upcoming []domaingames.Game `json:"upcoming"`
	Final    []domaingames.Game `json:"final"`
}

// Apply returns the subset of games satisfying the filter. The input slice is
// never mutated; output order follows input order.
func Apply(games []domaingames.Game, f Filter) []domaingames.Game {
	if f.IsZero() {
		out := make([]domaingames.Game, len(games))
		copy(out, games)
		return out
	}

	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]domaingames.Game, 0, len(games))
	for _, g := range games {
		if f.LeagueID != "" && g.LeagueID != f.LeagueID {
			continue
		}
		if search != "" && !matchesSearch(g, search) {
			continue
		}
		out = append(out, g)
	}
	return out
}

// Partition splits games into live, upcoming, and final groups. Live games keep
// input order; upcoming games sort ascending by start time and final games
// descending. Sorts are stable with no secondary key. Postponed games appear in
// no group.
func Partition(games []domaingames.Game) Scoreboard {
	// Groups start non-nil so empty ones encode as [] rather than null.
	sb := Scoreboard{
		Live:     []domaingames.Game{},
		Upcoming: []domaingames.Game{},
		Final:    []domaingames.Game{},
	}
	for _, g := range games {
		switch g.Status {
		case domaingames.StatusInProgress:
			sb.Live = append(sb.Live, g)
		case domaingames.StatusScheduled:
			sb.Upcoming = append(sb.Upcoming, g)
		case domaingames.StatusFinal:
			sb.Final = append(sb.Final, g)
		}
	}

	sort.SliceStable(sb.Upcoming, func(i, j int) bool {
		return sb.Upcoming[i].StartsAt().Before(sb.Upcoming[j].StartsAt())
	})
	sort.SliceStable(sb.Final, func(i, j int) bool {
		return sb.Final[i].StartsAt().After(sb.Final[j].StartsAt())
	})
	return sb
}

// Build filters then partitions in one step.
func Build(games []domaingames.Game, f Filter) Scoreboard {
	return Partition(Apply(games, f))
}

func matchesSearch(g domaingames.Game, lowered string) bool {
	home := strings.ToLower(g.HomeTeam.DisplayName())
	away := strings.ToLower(g.AwayTeam.DisplayName())
	return strings.Contains(home, lowered) || strings.Contains(away, lowered)
}
