// Package tracker mantém o CSV cumulativo de picks liquidados com P&L
// acumulado, win rate e contagem corrente. O arquivo é a fonte dos
// relatórios de performance e sobrevive entre execuções do settler.
package tracker

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/radieske/soccer-picks-poc/internal/picks"
)

var header = []string{
	"date", "kick_off", "home_team", "away_team", "league",
	"market", "bet_description", "odds", "stake_pct", "edge_pct",
	"confidence_pct", "quality_score", "bet_outcome",
	"home_score", "away_score", "total_goals", "total_corners",
	"btts", "bet_amount", "potential_win", "actual_pnl",
	"running_total", "win_rate", "total_picks", "verified_result",
}

// Entry é uma linha do tracker cumulativo
type Entry struct {
	Pick         picks.Pick
	BetAmount    float64
	PotentialWin float64
	ActualPnL    float64
	RunningTotal float64
	WinRate      float64
	TotalPicks   int
}

// Tracker acumula picks liquidados num arquivo CSV.
// Os totais correntes são carregados do arquivo na construção.
type Tracker struct {
	Path string

	runningTotal float64
	totalPicks   int
	wins         int
}

// New abre (ou inicializa) o tracker no caminho dado e carrega os totais.
func New(path string) (*Tracker, error) {
	t := &Tracker{Path: path}

	entries, err := t.Load()
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		t.totalPicks++
		if e.Pick.Outcome == picks.OutcomeWin {
			t.wins++
		}
		t.runningTotal = e.RunningTotal
	}

	return t, nil
}

// Load lê todas as linhas do tracker. Arquivo ausente conta como tracker vazio.
func (t *Tracker) Load() ([]Entry, error) {
	f, err := os.Open(t.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read tracker csv: %w", err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	var out []Entry
	for _, row := range rows[1:] {
		if len(row) < len(header) {
			continue // linha truncada, ignora
		}
		e := Entry{
			Pick: picks.Pick{
				Date:           row[0],
				KickOff:        row[1],
				HomeTeam:       row[2],
				AwayTeam:       row[3],
				League:         row[4],
				Market:         row[5],
				BetDescription: row[6],
				Odds:           atof(row[7]),
				StakePct:       atof(row[8]),
				EdgePct:        atof(row[9]),
				ConfidencePct:  atof(row[10]),
				QualityScore:   atof(row[11]),
				Outcome:        row[12],
				HomeScore:      atoi(row[13]),
				AwayScore:      atoi(row[14]),
				TotalGoals:     atoi(row[15]),
				TotalCorners:   atoi(row[16]),
				BTTS:           row[17] == "true",
				ProfitLoss:     atof(row[20]),
				Verified:       row[24] == "true",
			},
			BetAmount:    atof(row[18]),
			PotentialWin: atof(row[19]),
			ActualPnL:    atof(row[20]),
			RunningTotal: atof(row[21]),
			WinRate:      atof(row[22]),
			TotalPicks:   atoi(row[23]),
		}
		out = append(out, e)
	}
	return out, nil
}

// Append registra um pick liquidado e atualiza os totais correntes.
func (t *Tracker) Append(p picks.Pick, stake float64) error {
	if err := t.ensureFile(); err != nil {
		return err
	}

	t.totalPicks++
	if p.Outcome == picks.OutcomeWin {
		t.wins++
	}
	t.runningTotal += p.ProfitLoss
	winRate := float64(t.wins) / float64(t.totalPicks) * 100

	f, err := os.OpenFile(t.Path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	row := []string{
		p.Date, p.KickOff, p.HomeTeam, p.AwayTeam, p.League,
		p.Market, p.BetDescription,
		ftoa(p.Odds), ftoa(p.StakePct), ftoa(p.EdgePct),
		ftoa(p.ConfidencePct), ftoa(p.QualityScore), p.Outcome,
		strconv.Itoa(p.HomeScore), strconv.Itoa(p.AwayScore),
		strconv.Itoa(p.TotalGoals), strconv.Itoa(p.TotalCorners),
		strconv.FormatBool(p.BTTS),
		ftoa(stake), ftoa((p.Odds-1)*stake), ftoa(p.ProfitLoss),
		ftoa(t.runningTotal), ftoa(winRate), strconv.Itoa(t.totalPicks),
		strconv.FormatBool(p.Verified),
	}
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// Totals devolve o estado corrente do tracker
func (t *Tracker) Totals() (runningTotal float64, totalPicks, wins int) {
	return t.runningTotal, t.totalPicks, t.wins
}

// ensureFile cria o arquivo com cabeçalho quando ainda não existe
func (t *Tracker) ensureFile() error {
	if _, err := os.Stat(t.Path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	if dir := filepath.Dir(t.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(t.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func atof(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func atoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
