package events

import "time"

// Odds de um mercado específico de uma fixture
type MarketOdds struct {
	Market     string  `json:"market"`     // ex: "Over 2.5 Goals"
	Odds       float64 `json:"odds"`       // odd decimal
	Confidence float64 `json:"confidence"` // % estimada de acerto (0-100)
	Edge       float64 `json:"edge"`       // % de vantagem sobre a probabilidade implícita
}

// Evento publicado no tópico "fixture_odds" pelo fixtures-ingest-service
type OddsSnapshot struct {
	FixtureID int64        `json:"fixture_id"`
	Date      string       `json:"date"` // "YYYY-MM-DD"
	KickOff   string       `json:"kick_off"`
	HomeTeam  string       `json:"home_team"`
	AwayTeam  string       `json:"away_team"`
	League    string       `json:"league"`
	Markets   []MarketOdds `json:"markets"`
	FetchedAt time.Time    `json:"fetched_at"`
	Source    string       `json:"source"` // "api-football"
}
