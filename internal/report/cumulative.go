// Package report gera os relatórios CSV/TXT derivados do tracker cumulativo
// e das seleções diárias.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/radieske/soccer-picks-poc/internal/picks"
	"github.com/radieske/soccer-picks-poc/internal/tracker"
)

// groupStats acumula performance de um agrupamento (liga ou mercado)
type groupStats struct {
	name  string
	wins  int
	total int
	pnl   float64
}

// WriteCumulativeTXT gera o relatório cumulativo de performance em texto.
// now controla a data impressa no cabeçalho (injetável nos testes).
func WriteCumulativeTXT(path string, entries []tracker.Entry, flatStake float64, now time.Time) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString("CUMULATIVE BETTING PERFORMANCE REPORT\n")
	sb.WriteString(strings.Repeat("=", 47) + "\n")
	fmt.Fprintf(&sb, "Report Date: %s\n\n", now.Format("Monday, January 2, 2006"))

	if len(entries) == 0 {
		sb.WriteString("No verified picks tracked yet.\n")
		sb.WriteString("Performance history builds as real results become available.\n")
		return os.WriteFile(path, []byte(sb.String()), 0o644)
	}

	var wins, losses int
	var runningTotal, bestWin, worstLoss, winSum, lossSum float64
	for _, e := range entries {
		switch e.Pick.Outcome {
		case picks.OutcomeWin:
			wins++
			winSum += e.ActualPnL
			if e.ActualPnL > bestWin {
				bestWin = e.ActualPnL
			}
		case picks.OutcomeLoss:
			losses++
			lossSum += e.ActualPnL
			if e.ActualPnL < worstLoss {
				worstLoss = e.ActualPnL
			}
		}
	}
	last := entries[len(entries)-1]
	runningTotal = last.RunningTotal
	totalPicks := wins + losses
	totalStaked := float64(totalPicks) * flatStake

	winRate := 0.0
	roi := 0.0
	if totalPicks > 0 {
		winRate = float64(wins) / float64(totalPicks) * 100
	}
	if totalStaked > 0 {
		roi = runningTotal / totalStaked * 100
	}

	sb.WriteString("OVERALL PERFORMANCE:\n")
	sb.WriteString(strings.Repeat("-", 23) + "\n")
	fmt.Fprintf(&sb, "Total Picks: %d\n", totalPicks)
	fmt.Fprintf(&sb, "Wins: %d\n", wins)
	fmt.Fprintf(&sb, "Losses: %d\n", losses)
	fmt.Fprintf(&sb, "Win Rate: %.1f%%\n", winRate)
	fmt.Fprintf(&sb, "Running P&L: $%.2f\n", runningTotal)
	fmt.Fprintf(&sb, "Total Staked: $%.2f\n", totalStaked)
	fmt.Fprintf(&sb, "ROI: %+.1f%%\n\n", roi)

	fmt.Fprintf(&sb, "BETTING BREAKDOWN ($%.0f per bet):\n", flatStake)
	sb.WriteString(strings.Repeat("-", 35) + "\n")
	if wins > 0 {
		fmt.Fprintf(&sb, "Average Win: $%.2f\n", winSum/float64(wins))
	}
	if losses > 0 {
		fmt.Fprintf(&sb, "Average Loss: $%.2f\n", lossSum/float64(losses))
	}
	fmt.Fprintf(&sb, "Best Win: $%.2f\n", bestWin)
	fmt.Fprintf(&sb, "Worst Loss: $%.2f\n\n", worstLoss)

	writeGroup(&sb, "PERFORMANCE BY LEAGUE:", entries, func(e tracker.Entry) string { return e.Pick.League })
	writeGroup(&sb, "PERFORMANCE BY MARKET:", entries, func(e tracker.Entry) string { return e.Pick.Market })

	sb.WriteString("RECENT PERFORMANCE (last 10 picks):\n")
	sb.WriteString(strings.Repeat("-", 39) + "\n")
	start := len(entries) - 10
	if start < 0 {
		start = 0
	}
	for _, e := range entries[start:] {
		fmt.Fprintf(&sb, "[%s] %s | %s vs %s\n",
			e.Pick.Outcome, e.Pick.Date, e.Pick.HomeTeam, e.Pick.AwayTeam)
		fmt.Fprintf(&sb, "  %s @ %.2f -> $%+.2f\n",
			e.Pick.BetDescription, e.Pick.Odds, e.ActualPnL)
	}

	sb.WriteString("\nNOTES:\n")
	sb.WriteString("- Outcomes are based on verified real match results only\n")
	fmt.Fprintf(&sb, "- $%.0f flat stake used for all calculations\n", flatStake)

	return os.WriteFile(path, []byte(sb.String()), 0o644)
}

// writeGroup imprime a quebra por agrupamento, ordenada por volume
func writeGroup(sb *strings.Builder, title string, entries []tracker.Entry, keyFn func(tracker.Entry) string) {
	byKey := make(map[string]*groupStats)
	for _, e := range entries {
		k := keyFn(e)
		g, ok := byKey[k]
		if !ok {
			g = &groupStats{name: k}
			byKey[k] = g
		}
		g.total++
		if e.Pick.Outcome == picks.OutcomeWin {
			g.wins++
		}
		g.pnl += e.ActualPnL
	}

	groups := make([]*groupStats, 0, len(byKey))
	for _, g := range byKey {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].total != groups[j].total {
			return groups[i].total > groups[j].total
		}
		return groups[i].name < groups[j].name
	})

	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("-", len(title)) + "\n")
	for _, g := range groups {
		rate := 0.0
		if g.total > 0 {
			rate = float64(g.wins) / float64(g.total) * 100
		}
		fmt.Fprintf(sb, "%s:\n  %d/%d (%.1f%%) | P&L: $%+.2f\n",
			g.name, g.wins, g.total, rate, g.pnl)
	}
	sb.WriteString("\n")
}
