package backtest

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// WriteDetailedCSV grava uma linha por aposta do backtest
func WriteDetailedCSV(path string, bets []Bet) error {
	w, f, err := newCSVWriter(path)
	if err != nil {
		return err
	}
	defer f.Close()

	head := []string{
		"date", "home_team", "away_team", "league", "market", "odds", "stake",
		"profit_loss", "bet_won", "edge_pct", "confidence_pct",
		"bankroll_before", "bankroll_after",
	}
	if err := w.Write(head); err != nil {
		return err
	}

	for _, b := range bets {
		row := []string{
			b.Pick.Date, b.Pick.HomeTeam, b.Pick.AwayTeam, b.Pick.League,
			b.Pick.Market, f2(b.Pick.Odds), f2(b.Stake),
			f2(b.ProfitLoss), strconv.FormatBool(b.Won),
			f2(b.Pick.EdgePct), f2(b.Pick.ConfidencePct),
			f2(b.BankrollBefore), f2(b.BankrollAfter),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// WriteSummaryCSV grava uma linha por dia do backtest
func WriteSummaryCSV(path string, daily []DailySummary) error {
	w, f, err := newCSVWriter(path)
	if err != nil {
		return err
	}
	defer f.Close()

	head := []string{
		"date", "starting_bankroll", "ending_bankroll", "daily_profit",
		"daily_stakes", "bets_placed", "bets_won", "opportunities_analyzed",
		"opportunities_avoided", "win_rate", "roi", "peak_bankroll", "drawdown",
	}
	if err := w.Write(head); err != nil {
		return err
	}

	for _, d := range daily {
		row := []string{
			d.Date, f2(d.StartingBankroll), f2(d.EndingBankroll), f2(d.DailyProfit),
			f2(d.DailyStakes), strconv.Itoa(d.BetsPlaced), strconv.Itoa(d.BetsWon),
			strconv.Itoa(d.Analyzed), strconv.Itoa(d.Avoided),
			f2(d.WinRate), f2(d.ROI), f2(d.PeakBankroll), f2(d.DrawdownPct),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// WriteMetricsJSON grava as métricas finais em JSON indentado
func WriteMetricsJSON(path string, m Metrics) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func newCSVWriter(path string) (*csv.Writer, *os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", path, err)
	}
	return csv.NewWriter(f), f, nil
}

func f2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
