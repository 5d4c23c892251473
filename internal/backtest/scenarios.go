package backtest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/radieske/soccer-picks-poc/internal/picks"
)

// LoadScenariosCSV lê os cenários históricos de um CSV com cabeçalho.
// Colunas esperadas: date, kick_off, home_team, away_team, league,
// bet_description, odds, edge_pct, confidence_pct, outcome.
// A coluna outcome pode vir vazia quando o desfecho será simulado.
func LoadScenariosCSV(path string) ([]picks.Pick, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenarios: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read scenarios: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	// índice por nome de coluna, tolerante à ordem do arquivo
	idx := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		idx[strings.TrimSpace(strings.ToLower(name))] = i
	}
	col := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var out []picks.Pick
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		odds, _ := strconv.ParseFloat(col(row, "odds"), 64)
		edge, _ := strconv.ParseFloat(col(row, "edge_pct"), 64)
		conf, _ := strconv.ParseFloat(col(row, "confidence_pct"), 64)

		out = append(out, picks.Pick{
			Date:           col(row, "date"),
			KickOff:        col(row, "kick_off"),
			HomeTeam:       col(row, "home_team"),
			AwayTeam:       col(row, "away_team"),
			League:         col(row, "league"),
			BetDescription: col(row, "bet_description"),
			Odds:           odds,
			EdgePct:        edge,
			ConfidencePct:  conf,
			Outcome:        strings.ToUpper(col(row, "outcome")),
		})
	}
	return out, nil
}
