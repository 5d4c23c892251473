package backtest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radieske/soccer-picks-poc/internal/backtest"
	"github.com/radieske/soccer-picks-poc/internal/picks"
	"github.com/radieske/soccer-picks-poc/internal/strategy"
)

func scenario(date, desc, outcome string, odds, edge, conf float64) picks.Pick {
	return picks.Pick{
		Date:           date,
		HomeTeam:       "Flamengo",
		AwayTeam:       "Palmeiras",
		League:         "Serie A",
		BetDescription: desc,
		Odds:           odds,
		EdgePct:        edge,
		ConfidencePct:  conf,
		Outcome:        outcome,
	}
}

func TestEngine_Run_BankrollMath(t *testing.T) {
	eng := &backtest.Engine{
		Strategy:        strategy.DefaultConfig(),
		InitialBankroll: 300,
	}

	// Over 2.5 Goals com edge 30 / conf 70 recebe stake de 3.75% da banca
	res := eng.Run([]picks.Pick{
		scenario("2025-03-10", "Over 2.5 Goals", picks.OutcomeWin, 2.0, 30, 70),
		scenario("2025-03-11", "Over 2.5 Goals", picks.OutcomeLoss, 2.0, 30, 70),
	})

	require.Len(t, res.Bets, 2)

	// Dia 1: stake 11.25, vitória a 2.0 paga a própria stake
	first := res.Bets[0]
	assert.InDelta(t, 11.25, first.Stake, 0.0001)
	assert.InDelta(t, 11.25, first.ProfitLoss, 0.0001)
	assert.InDelta(t, 300.0, first.BankrollBefore, 0.0001)
	assert.InDelta(t, 311.25, first.BankrollAfter, 0.0001)

	// Dia 2: stake sobre a banca atualizada
	second := res.Bets[1]
	assert.InDelta(t, 311.25*0.0375, second.Stake, 0.0001)
	assert.InDelta(t, -second.Stake, second.ProfitLoss, 0.0001)

	require.Len(t, res.Daily, 2)
	assert.InDelta(t, 311.25, res.Daily[0].EndingBankroll, 0.0001)
	assert.Equal(t, 1, res.Daily[0].BetsWon)
	assert.Equal(t, 0, res.Daily[1].BetsWon)

	// Drawdown do dia 2 medido contra o pico do dia 1
	assert.Greater(t, res.Daily[1].DrawdownPct, 0.0)
	assert.InDelta(t, 311.25, res.Daily[1].PeakBankroll, 0.0001)
}

func TestEngine_Run_AvoidsRejectedScenarios(t *testing.T) {
	eng := &backtest.Engine{
		Strategy:        strategy.DefaultConfig(),
		InitialBankroll: 300,
	}

	res := eng.Run([]picks.Pick{
		scenario("2025-03-10", "Over 2.5 Goals", picks.OutcomeWin, 2.0, 30, 70),
		scenario("2025-03-10", "Over 1.5 Goals", picks.OutcomeWin, 1.3, 50, 90), // mercado banido
		scenario("2025-03-10", "Over 2.5 Goals", picks.OutcomeWin, 2.0, 10, 70), // edge baixo
	})

	assert.Len(t, res.Bets, 1)

	require.Len(t, res.Daily, 1)
	assert.Equal(t, 3, res.Daily[0].Analyzed)
	assert.Equal(t, 2, res.Daily[0].Avoided)
	assert.Equal(t, 1, res.Daily[0].BetsPlaced)

	m := res.Metrics
	assert.Equal(t, 3, m.TotalOpportunities)
	assert.Equal(t, 1, m.BetsPlaced)
	assert.Equal(t, 2, m.BetsAvoided)
	assert.InDelta(t, 33.33, m.SelectivityPct, 0.01)
	assert.InDelta(t, 100.0, m.WinRate, 0.0001)
}

func TestEngine_Run_AppliesDailyAllocation(t *testing.T) {
	eng := &backtest.Engine{
		Strategy:        strategy.DefaultConfig(),
		InitialBankroll: 300,
	}

	// Oito cenários no mesmo dia, todos dentro dos limiares por mercado.
	// A alocação diária segura o dia em 6 apostas, com no máximo 4 ELITE.
	res := eng.Run([]picks.Pick{
		scenario("2025-03-10", "Over 2.5 Goals", picks.OutcomeWin, 2.0, 30, 70),
		scenario("2025-03-10", "Over 2.5 Goals", picks.OutcomeWin, 2.0, 30, 70),
		scenario("2025-03-10", "Over 2.5 Goals", picks.OutcomeLoss, 2.0, 30, 70),
		scenario("2025-03-10", "Away Team Under 1.5 Goals", picks.OutcomeWin, 1.70, 25, 70),
		scenario("2025-03-10", "Away Team Under 1.5 Goals", picks.OutcomeLoss, 1.70, 25, 70),
		scenario("2025-03-10", "Under 2.5 Goals", picks.OutcomeWin, 1.90, 25, 72),
		scenario("2025-03-10", "Under 2.5 Goals", picks.OutcomeLoss, 1.90, 25, 72),
		scenario("2025-03-10", "Both Teams to Score - No", picks.OutcomeWin, 2.05, 28, 75),
	})

	require.Len(t, res.Bets, 6)

	var elite int
	for _, b := range res.Bets {
		if b.Pick.MarketTier == strategy.TierElite {
			elite++
		}
	}
	assert.Equal(t, 4, elite)

	require.Len(t, res.Daily, 1)
	assert.Equal(t, 8, res.Daily[0].Analyzed)
	assert.Equal(t, 6, res.Daily[0].BetsPlaced)
	assert.Equal(t, 2, res.Daily[0].Avoided)
}

func TestEngine_Run_Metrics(t *testing.T) {
	eng := &backtest.Engine{
		Strategy:        strategy.DefaultConfig(),
		InitialBankroll: 300,
	}

	res := eng.Run([]picks.Pick{
		scenario("2025-03-10", "Over 2.5 Goals", picks.OutcomeWin, 2.0, 30, 70),
		scenario("2025-03-11", "Over 2.5 Goals", picks.OutcomeWin, 2.0, 30, 70),
		scenario("2025-03-12", "Over 2.5 Goals", picks.OutcomeLoss, 2.0, 30, 70),
	})

	m := res.Metrics
	assert.Equal(t, 300.0, m.InitialBankroll)
	assert.Equal(t, 3, m.TradingDays)
	assert.Equal(t, 2, m.ProfitableDays)
	assert.InDelta(t, 66.67, m.ProfitableDayRate, 0.01)
	assert.InDelta(t, m.FinalBankroll-300, m.TotalReturn, 0.0001)
	assert.Greater(t, m.Volatility, 0.0)
	assert.NotZero(t, m.SharpeRatio)
}

func TestEngine_Run_EmptyScenarios(t *testing.T) {
	eng := &backtest.Engine{
		Strategy:        strategy.DefaultConfig(),
		InitialBankroll: 300,
	}

	res := eng.Run(nil)

	assert.Empty(t, res.Bets)
	assert.Empty(t, res.Daily)
	assert.Equal(t, 300.0, res.Metrics.FinalBankroll)
	assert.Zero(t, res.Metrics.SharpeRatio)
}
