package teams

// Team represents the normalized team shape shared across games and fixtures.
// Kept in its own package to keep domain models modular and reusable across providers.
// Favorite state is tracked separately by ID membership, never on the record itself.
type Team struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Color        string `json:"color,omitempty"`
	LeagueID     string `json:"leagueId"`
}

// DisplayName returns the name shown to users and matched by text search.
func (t Team) DisplayName() string {
	if t.City == "" {
		return t.Name
	}
	return t.City + " " + t.Name
}
