package apifootball

// Tipos do payload da API-Football v3 (somente os campos consumidos)

type fixturesResponse struct {
	Response []Fixture `json:"response"`
}

type Fixture struct {
	Fixture struct {
		ID     int64  `json:"id"`
		Date   string `json:"date"`
		Status struct {
			Short string `json:"short"` // NS, 1H, HT, 2H, FT, AET, PEN, ...
		} `json:"status"`
	} `json:"fixture"`
	League struct {
		ID      int64  `json:"id"`
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"league"`
	Teams struct {
		Home Team `json:"home"`
		Away Team `json:"away"`
	} `json:"teams"`
	Goals struct {
		Home *int `json:"home"`
		Away *int `json:"away"`
	} `json:"goals"`
	Statistics []TeamStatistics `json:"statistics"`
}

type Team struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type TeamStatistics struct {
	Team       Team `json:"team"`
	Statistics []struct {
		Type  string `json:"type"`
		Value any    `json:"value"` // número, string ou null conforme o mercado
	} `json:"statistics"`
}

type oddsResponse struct {
	Response []FixtureOdds `json:"response"`
}

// FixtureOdds agrupa as odds de uma fixture por bookmaker e mercado
type FixtureOdds struct {
	Fixture struct {
		ID int64 `json:"id"`
	} `json:"fixture"`
	Bookmakers []struct {
		Name string `json:"name"`
		Bets []struct {
			Name   string `json:"name"` // ex: "Goals Over/Under"
			Values []struct {
				Value string `json:"value"` // ex: "Over 2.5"
				Odd   string `json:"odd"`
			} `json:"values"`
		} `json:"bets"`
	} `json:"bookmakers"`
}
