package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/radieske/soccer-picks-poc/internal/picks"
)

// WriteDailyPicksCSV grava a seleção diária de picks no formato consumido
// pelo tracker e pelos backtests.
func WriteDailyPicksCSV(path string, selection []picks.Pick) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	head := []string{
		"date", "kick_off", "home_team", "away_team", "league",
		"market", "bet_description", "odds", "stake_pct",
		"edge_pct", "confidence_pct", "quality_score", "market_tier",
	}
	if err := w.Write(head); err != nil {
		return err
	}

	for _, p := range selection {
		row := []string{
			p.Date, p.KickOff, p.HomeTeam, p.AwayTeam, p.League,
			p.Market, p.BetDescription,
			strconv.FormatFloat(p.Odds, 'f', 2, 64),
			strconv.FormatFloat(p.StakePct, 'f', 2, 64),
			strconv.FormatFloat(p.EdgePct, 'f', 2, 64),
			strconv.FormatFloat(p.ConfidencePct, 'f', 2, 64),
			strconv.FormatFloat(p.QualityScore, 'f', 2, 64),
			p.MarketTier,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
