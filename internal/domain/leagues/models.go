package leagues

// League represents a sports organization grouping teams (e.g., NFL, NBA).
// Leagues are immutable once created from fixture data.
type League struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Sport        string `json:"sport"`
	Abbreviation string `json:"abbreviation"`
}
