package events

// Evento publicado no tópico "pick_generated" após um pick passar no filtro de estratégia
type PickGenerated struct {
	PickID         string  `json:"pick_id"`
	FixtureID      int64   `json:"fixture_id"`
	Date           string  `json:"date"`
	KickOff        string  `json:"kick_off"`
	HomeTeam       string  `json:"home_team"`
	AwayTeam       string  `json:"away_team"`
	League         string  `json:"league"`
	Market         string  `json:"market"`
	BetDescription string  `json:"bet_description"`
	Odds           float64 `json:"odds"`
	StakePct       float64 `json:"stake_pct"`
	EdgePct        float64 `json:"edge_pct"`
	ConfidencePct  float64 `json:"confidence_pct"`
	QualityScore   float64 `json:"quality_score"`
	MarketTier     string  `json:"market_tier"`
	TsUnixMs       int64   `json:"ts_unix_ms"`
}
