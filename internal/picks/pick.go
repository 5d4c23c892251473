package picks

import "time"

// Status de liquidação de um pick
const (
	OutcomePending = "PENDING"
	OutcomeWin     = "WIN"
	OutcomeLoss    = "LOSS"
	OutcomeVoid    = "VOID"
)

// Pick é o registro de uma aposta proposta ou histórica.
// É o único modelo persistido: Postgres (picks-service, settler) e CSV (relatórios).
type Pick struct {
	ID             string
	FixtureID      int64
	Date           string // "YYYY-MM-DD"
	KickOff        string // "HH:MM"
	HomeTeam       string
	AwayTeam       string
	League         string
	Market         string // nome normalizado, ex: "Over 2.5 Goals"
	BetDescription string // descrição livre vinda do gerador
	Odds           float64
	StakePct       float64 // % da banca recomendada
	StakeAmount    float64
	EdgePct        float64
	ConfidencePct  float64
	QualityScore   float64
	MarketTier     string

	// Preenchidos na liquidação
	Outcome      string
	HomeScore    int
	AwayScore    int
	TotalGoals   int
	TotalCorners int
	BTTS         bool
	ProfitLoss   float64
	Verified     bool

	CreatedAt time.Time
	SettledAt time.Time
}

// Result agrega o resultado verificado de uma partida, usado na liquidação.
type Result struct {
	HomeScore    int
	AwayScore    int
	TotalGoals   int
	TotalCorners int
	BTTS         bool
	Finished     bool
	Verified     bool // true quando veio do provedor; false quando simulado
}
