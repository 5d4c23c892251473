package generator

import (
	"github.com/radieske/soccer-picks-poc/internal/picks"
	"github.com/radieske/soccer-picks-poc/internal/strategy"
	"github.com/radieske/soccer-picks-poc/pkg/contracts/events"
)

// Opportunities converte um snapshot de odds em candidatos a pick.
// Confiança e edge vêm do snapshot quando o provedor informa; caso contrário
// a confiança cai no win rate histórico do mercado e o edge é a diferença
// pra probabilidade implícita da odd.
func Opportunities(snap events.OddsSnapshot, cfg strategy.Config) []picks.Pick {
	var out []picks.Pick

	for _, m := range snap.Markets {
		if m.Odds <= 1.0 {
			continue // odd inválida ou sem valor
		}

		confidence := m.Confidence
		market := strategy.NormalizeMarket(m.Market)
		if confidence == 0 {
			confidence = cfg.Settings(market).HistoricalWinRate
		}
		if confidence == 0 {
			continue // sem base nenhuma pra estimar
		}

		implied := 100 / m.Odds
		edge := m.Edge
		if edge == 0 {
			edge = confidence - implied
		}
		if edge <= 0 {
			continue
		}

		out = append(out, picks.Pick{
			FixtureID:      snap.FixtureID,
			Date:           snap.Date,
			KickOff:        snap.KickOff,
			HomeTeam:       snap.HomeTeam,
			AwayTeam:       snap.AwayTeam,
			League:         snap.League,
			BetDescription: m.Market,
			Odds:           m.Odds,
			EdgePct:        edge,
			ConfidencePct:  confidence,
			QualityScore:   confidence / 100 * edge,
			Outcome:        picks.OutcomePending,
		})
	}

	return out
}
