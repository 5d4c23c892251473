package report_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radieske/soccer-picks-poc/internal/picks"
	"github.com/radieske/soccer-picks-poc/internal/report"
	"github.com/radieske/soccer-picks-poc/internal/tracker"
)

func entry(league, market, outcome string, pnl, running float64) tracker.Entry {
	return tracker.Entry{
		Pick: picks.Pick{
			Date:           "2025-03-10",
			HomeTeam:       "Flamengo",
			AwayTeam:       "Palmeiras",
			League:         league,
			Market:         market,
			BetDescription: market,
			Odds:           1.85,
			Outcome:        outcome,
		},
		BetAmount:    25,
		ActualPnL:    pnl,
		RunningTotal: running,
	}
}

func TestWriteCumulativeTXT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "cumulative_report.txt")

	entries := []tracker.Entry{
		entry("Serie A", "Over 2.5 Goals", picks.OutcomeWin, 21.25, 21.25),
		entry("Serie A", "Over 2.5 Goals", picks.OutcomeLoss, -25, -3.75),
		entry("Premier League", "Under 2.5 Goals", picks.OutcomeWin, 22.50, 18.75),
	}

	now := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	require.NoError(t, report.WriteCumulativeTXT(path, entries, 25, now))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(b)

	assert.Contains(t, out, "CUMULATIVE BETTING PERFORMANCE REPORT")
	assert.Contains(t, out, "Report Date: Wednesday, March 12, 2025")
	assert.Contains(t, out, "Total Picks: 3")
	assert.Contains(t, out, "Wins: 2")
	assert.Contains(t, out, "Losses: 1")
	assert.Contains(t, out, "Win Rate: 66.7%")
	assert.Contains(t, out, "Running P&L: $18.75")
	assert.Contains(t, out, "Total Staked: $75.00")
	assert.Contains(t, out, "ROI: +25.0%")

	assert.Contains(t, out, "Average Win: $21.88")
	assert.Contains(t, out, "Average Loss: $-25.00")
	assert.Contains(t, out, "Best Win: $22.50")
	assert.Contains(t, out, "Worst Loss: $-25.00")

	// Quebra por liga ordenada por volume
	assert.Contains(t, out, "PERFORMANCE BY LEAGUE:")
	assert.Contains(t, out, "Serie A:\n  1/2 (50.0%) | P&L: $-3.75")
	assert.Contains(t, out, "Premier League:\n  1/1 (100.0%) | P&L: $+22.50")

	assert.Contains(t, out, "PERFORMANCE BY MARKET:")
	assert.Contains(t, out, "Over 2.5 Goals:\n  1/2 (50.0%)")

	assert.Contains(t, out, "RECENT PERFORMANCE (last 10 picks):")
	assert.Contains(t, out, "[WIN] 2025-03-10 | Flamengo vs Palmeiras")
	assert.Contains(t, out, "Under 2.5 Goals @ 1.85 -> $+22.50")
}

func TestWriteCumulativeTXT_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cumulative_report.txt")

	require.NoError(t, report.WriteCumulativeTXT(path, nil, 25, time.Now()))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(b), "No verified picks tracked yet.")
}

func TestWriteDailyPicksCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daily_picks.csv")

	selection := []picks.Pick{
		{
			Date: "2025-03-10", KickOff: "16:00",
			HomeTeam: "Flamengo", AwayTeam: "Palmeiras", League: "Serie A",
			Market: "Over 2.5 Goals", BetDescription: "Over 2.5 Goals",
			Odds: 1.85, StakePct: 3.75, EdgePct: 30, ConfidencePct: 70,
			QualityScore: 21, MarketTier: "ELITE",
		},
	}

	require.NoError(t, report.WriteDailyPicksCSV(path, selection))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(b)

	assert.Contains(t, out, "date,kick_off,home_team,away_team,league,market,bet_description,odds,stake_pct,edge_pct,confidence_pct,quality_score,market_tier")
	assert.Contains(t, out, "2025-03-10,16:00,Flamengo,Palmeiras,Serie A,Over 2.5 Goals,Over 2.5 Goals,1.85,3.75,30.00,70.00,21.00,ELITE")
}
