package tracker_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radieske/soccer-picks-poc/internal/picks"
	"github.com/radieske/soccer-picks-poc/internal/tracker"
)

func settledPick(date, market, outcome string, odds, pnl float64) picks.Pick {
	return picks.Pick{
		Date:           date,
		KickOff:        "16:00",
		HomeTeam:       "Flamengo",
		AwayTeam:       "Palmeiras",
		League:         "Serie A",
		Market:         market,
		BetDescription: market,
		Odds:           odds,
		Outcome:        outcome,
		ProfitLoss:     pnl,
		Verified:       true,
	}
}

func TestTracker_AppendAccumulates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "cumulative_tracker.csv")

	trk, err := tracker.New(path)
	require.NoError(t, err)

	require.NoError(t, trk.Append(settledPick("2025-03-10", "Over 2.5 Goals", picks.OutcomeWin, 1.85, 21.25), 25))
	require.NoError(t, trk.Append(settledPick("2025-03-10", "Under 2.5 Goals", picks.OutcomeLoss, 1.90, -25), 25))
	require.NoError(t, trk.Append(settledPick("2025-03-11", "Over 2.5 Goals", picks.OutcomeWin, 2.00, 25), 25))

	total, count, wins := trk.Totals()
	assert.InDelta(t, 21.25, total, 0.0001)
	assert.Equal(t, 3, count)
	assert.Equal(t, 2, wins)

	entries, err := trk.Load()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Totais correntes gravados linha a linha
	assert.InDelta(t, 21.25, entries[0].RunningTotal, 0.0001)
	assert.InDelta(t, -3.75, entries[1].RunningTotal, 0.0001)
	assert.InDelta(t, 21.25, entries[2].RunningTotal, 0.0001)

	assert.InDelta(t, 100.0, entries[0].WinRate, 0.0001)
	assert.InDelta(t, 50.0, entries[1].WinRate, 0.0001)
	assert.InDelta(t, 66.67, entries[2].WinRate, 0.01)

	assert.Equal(t, 3, entries[2].TotalPicks)
	assert.InDelta(t, 25.0, entries[0].BetAmount, 0.0001)
	assert.InDelta(t, 21.25, entries[0].PotentialWin, 0.0001)
	assert.True(t, entries[0].Pick.Verified)
}

func TestTracker_ReopenRestoresTotals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.csv")

	first, err := tracker.New(path)
	require.NoError(t, err)
	require.NoError(t, first.Append(settledPick("2025-03-10", "Over 2.5 Goals", picks.OutcomeWin, 1.85, 21.25), 25))
	require.NoError(t, first.Append(settledPick("2025-03-10", "Under 2.5 Goals", picks.OutcomeLoss, 1.90, -25), 25))

	// Nova instância carrega os totais do arquivo
	second, err := tracker.New(path)
	require.NoError(t, err)

	total, count, wins := second.Totals()
	assert.InDelta(t, -3.75, total, 0.0001)
	assert.Equal(t, 2, count)
	assert.Equal(t, 1, wins)

	require.NoError(t, second.Append(settledPick("2025-03-11", "Over 2.5 Goals", picks.OutcomeWin, 2.00, 25), 25))
	total, count, wins = second.Totals()
	assert.InDelta(t, 21.25, total, 0.0001)
	assert.Equal(t, 3, count)
	assert.Equal(t, 2, wins)
}

func TestTracker_MissingFileIsEmpty(t *testing.T) {
	trk, err := tracker.New(filepath.Join(t.TempDir(), "never_written.csv"))
	require.NoError(t, err)

	entries, err := trk.Load()
	require.NoError(t, err)
	assert.Empty(t, entries)

	total, count, wins := trk.Totals()
	assert.Zero(t, total)
	assert.Zero(t, count)
	assert.Zero(t, wins)
}
