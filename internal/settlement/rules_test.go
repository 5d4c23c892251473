package settlement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/radieske/soccer-picks-poc/internal/picks"
	"github.com/radieske/soccer-picks-poc/internal/settlement"
)

func result(home, away, corners int) picks.Result {
	return picks.Result{
		HomeScore:    home,
		AwayScore:    away,
		TotalGoals:   home + away,
		TotalCorners: corners,
		BTTS:         home > 0 && away > 0,
		Finished:     true,
	}
}

func TestEvaluateBet(t *testing.T) {
	tests := []struct {
		name      string
		bet       string
		res       picks.Result
		wantWon   bool
		wantKnown bool
	}{
		{"over 2.5 hits with 3 goals", "Over 2.5 Goals", result(2, 1, 8), true, true},
		{"over 2.5 misses with 2 goals", "Over 2.5 Goals", result(1, 1, 8), false, true},
		{"under 2.5 hits with 2 goals", "Under 2.5 Goals", result(1, 1, 8), true, true},
		{"over 1.5 hits with exactly 2", "Over 1.5 Goals", result(2, 0, 8), true, true},
		{"under 1.5 total", "Under 1.5 Goals", result(1, 0, 8), true, true},
		{"over 3.5 misses with 3", "Over 3.5 Goals", result(2, 1, 8), false, true},
		{"under 3.5 hits with 3", "Under 3.5 Goals", result(2, 1, 8), true, true},

		// Linhas por time avaliam só o placar daquele lado
		{"home under 1.5 hits on 1 goal", "Home Team Under 1.5 Goals", result(1, 3, 8), true, true},
		{"home under 1.5 misses on 2 goals", "Home Team Under 1.5 Goals", result(2, 0, 8), false, true},
		{"away under 1.5 hits on 0 goals", "Away Team Under 1.5 Goals", result(3, 0, 8), true, true},
		{"away under 1.5 misses on 2 goals", "Away Team Under 1.5 Goals", result(0, 2, 8), false, true},

		{"btts yes with both scoring", "Both Teams to Score - Yes", result(1, 1, 8), true, true},
		{"btts yes with clean sheet", "Both Teams to Score - Yes", result(2, 0, 8), false, true},
		{"btts no with clean sheet", "Both Teams to Score - No", result(2, 0, 8), true, true},
		{"btts shorthand", "BTTS No", result(0, 0, 8), true, true},

		{"corners over 9.5 hits with 10", "Over 9.5 Total Corners", result(1, 1, 10), true, true},
		{"corners over 9.5 misses with 9", "Over 9.5 Total Corners", result(1, 1, 9), false, true},
		{"corners under 11.5", "Under 11.5 Corners", result(1, 1, 11), true, true},

		{"double chance home/away on draw", "Double Chance Home/Away", result(1, 1, 8), false, true},
		{"double chance home/away on home win", "Double Chance Home/Away", result(2, 1, 8), true, true},
		{"double chance draw/away on draw", "Double Chance Draw/Away", result(1, 1, 8), true, true},
		{"double chance home/draw on away win", "Double Chance Home/Draw", result(0, 1, 8), false, true},

		{"unknown market is not guessed", "Correct Score 2-1", result(2, 1, 8), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			won, known := settlement.EvaluateBet(tt.bet, tt.res)
			assert.Equal(t, tt.wantKnown, known)
			assert.Equal(t, tt.wantWon, won)
		})
	}
}

func TestProfitLoss(t *testing.T) {
	assert.InDelta(t, 21.25, settlement.ProfitLoss(1.85, 25, true), 0.0001)
	assert.InDelta(t, -25.0, settlement.ProfitLoss(1.85, 25, false), 0.0001)
	assert.InDelta(t, 0.0, settlement.ProfitLoss(1.0, 25, true), 0.0001)
}
