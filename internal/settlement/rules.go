package settlement

import (
	"strings"

	"github.com/radieske/soccer-picks-poc/internal/picks"
)

// EvaluateBet decide se uma aposta venceu dado o resultado da partida.
// O segundo retorno é false quando o mercado não é reconhecido; nesse caso
// o pick deve ser anulado em vez de chutado.
func EvaluateBet(betDescription string, res picks.Result) (won bool, known bool) {
	bet := strings.ToLower(betDescription)

	switch {
	// Mercados de gols totais
	case strings.Contains(bet, "over 1.5 goals"):
		return res.TotalGoals > 1, true
	case strings.Contains(bet, "under 1.5 goals") && strings.Contains(bet, "home"):
		return res.HomeScore < 2, true
	case strings.Contains(bet, "under 1.5 goals") && strings.Contains(bet, "away"):
		return res.AwayScore < 2, true
	case strings.Contains(bet, "under 1.5 goals"):
		return res.TotalGoals < 2, true
	case strings.Contains(bet, "over 2.5 goals"):
		return res.TotalGoals > 2, true
	case strings.Contains(bet, "under 2.5 goals"):
		return res.TotalGoals < 3, true
	case strings.Contains(bet, "over 3.5 goals"):
		return res.TotalGoals > 3, true
	case strings.Contains(bet, "under 3.5 goals"):
		return res.TotalGoals < 4, true

	// Ambas marcam
	case strings.Contains(bet, "both teams to score - yes"), strings.Contains(bet, "btts yes"):
		return res.BTTS, true
	case strings.Contains(bet, "both teams to score - no"), strings.Contains(bet, "btts no"):
		return !res.BTTS, true

	// Escanteios
	case strings.Contains(bet, "over 9.5") && strings.Contains(bet, "corners"):
		return res.TotalCorners > 9, true
	case strings.Contains(bet, "under 9.5") && strings.Contains(bet, "corners"):
		return res.TotalCorners < 10, true
	case strings.Contains(bet, "over 11.5") && strings.Contains(bet, "corners"):
		return res.TotalCorners > 11, true
	case strings.Contains(bet, "under 11.5") && strings.Contains(bet, "corners"):
		return res.TotalCorners < 12, true

	// Dupla chance
	case strings.Contains(bet, "home/away"):
		return res.HomeScore != res.AwayScore, true
	case strings.Contains(bet, "draw/away"):
		return res.HomeScore <= res.AwayScore, true
	case strings.Contains(bet, "home/draw"):
		return res.HomeScore >= res.AwayScore, true
	}

	return false, false
}

// ProfitLoss calcula o P&L de um pick liquidado com stake fixa.
// Vitória paga (odds-1)×stake; derrota perde a stake inteira.
func ProfitLoss(odds, stake float64, won bool) float64 {
	if won {
		return (odds - 1) * stake
	}
	return -stake
}
