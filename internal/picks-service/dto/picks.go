package dto

// Pick é a projeção REST de um pick persistido
type Pick struct {
	ID             string  `json:"id"`
	FixtureID      int64   `json:"fixtureId"`
	Date           string  `json:"date"`
	KickOff        string  `json:"kickOff"`
	HomeTeam       string  `json:"homeTeam"`
	AwayTeam       string  `json:"awayTeam"`
	League         string  `json:"league"`
	Market         string  `json:"market"`
	BetDescription string  `json:"betDescription"`
	Odds           float64 `json:"odds"`
	StakePct       float64 `json:"stakePct"`
	EdgePct        float64 `json:"edgePct"`
	ConfidencePct  float64 `json:"confidencePct"`
	QualityScore   float64 `json:"qualityScore"`
	Tier           string  `json:"tier"`
	Outcome        string  `json:"outcome"`
	ProfitLoss     float64 `json:"profitLoss"`
	Verified       bool    `json:"verified"`
}

// Performance agrega os números globais de picks liquidados
type Performance struct {
	TotalPicks  int     `json:"totalPicks"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	WinRate     float64 `json:"winRate"`
	TotalPnL    float64 `json:"totalPnl"`
	TotalStaked float64 `json:"totalStaked"`
	ROI         float64 `json:"roi"`
}

// MarketPerformance agrega performance por mercado
type MarketPerformance struct {
	Market  string  `json:"market"`
	Picks   int     `json:"picks"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"winRate"`
	PnL     float64 `json:"pnl"`
}
