// Package backtest reexecuta a estratégia sobre picks históricos já
// liquidados, acompanhando banca corrente, pico e drawdown dia a dia.
package backtest

import (
	"sort"

	"go.uber.org/zap"

	"github.com/radieske/soccer-picks-poc/internal/picks"
	"github.com/radieske/soccer-picks-poc/internal/strategy"
)

// Bet é uma aposta que o backtest decidiu fazer, com o desfecho histórico aplicado
type Bet struct {
	Pick           picks.Pick
	Stake          float64
	Won            bool
	ProfitLoss     float64
	BankrollBefore float64
	BankrollAfter  float64
}

// DailySummary agrega os números de um dia do backtest
type DailySummary struct {
	Date             string
	StartingBankroll float64
	EndingBankroll   float64
	DailyProfit      float64
	DailyStakes      float64
	BetsPlaced       int
	BetsWon          int
	Analyzed         int
	Avoided          int
	WinRate          float64
	ROI              float64
	PeakBankroll     float64
	DrawdownPct      float64
}

// Result é a saída completa de uma execução de backtest
type Result struct {
	Bets    []Bet
	Daily   []DailySummary
	Metrics Metrics
}

// Engine reexecuta a estratégia sobre cenários históricos.
// Cada cenário é um pick liquidado (outcome WIN/LOSS conhecido); o backtest
// decide se a estratégia atual teria apostado e aplica o desfecho real.
type Engine struct {
	Log             *zap.Logger
	Strategy        strategy.Config
	InitialBankroll float64
}

// Run processa os cenários em ordem cronológica.
func (e *Engine) Run(scenarios []picks.Pick) Result {
	eng := strategy.NewEngine(e.Strategy)

	byDate := make(map[string][]picks.Pick)
	var dates []string
	for _, p := range scenarios {
		if _, ok := byDate[p.Date]; !ok {
			dates = append(dates, p.Date)
		}
		byDate[p.Date] = append(byDate[p.Date], p)
	}
	sort.Strings(dates)

	bankroll := e.InitialBankroll
	peak := e.InitialBankroll

	var res Result
	for _, date := range dates {
		day := byDate[date]
		summary := DailySummary{
			Date:             date,
			StartingBankroll: bankroll,
			Analyzed:         len(day),
		}

		// Primeiro os limiares por mercado, depois a alocação diária global
		// (elite primeiro, limite de picks por dia) sobre os aceitos.
		var accepted []picks.Pick
		for _, scenario := range day {
			cand := scenario
			cand.Market = ""
			cand.MarketTier = ""
			cand.StakePct = 0

			if ok, _ := eng.Evaluate(&cand); ok {
				accepted = append(accepted, cand)
			}
		}
		selection := eng.SelectDaily(accepted)

		for _, cand := range selection {
			stake := bankroll * cand.StakePct / 100
			won := cand.Outcome == picks.OutcomeWin

			var pnl float64
			if won {
				pnl = stake * (cand.Odds - 1)
				summary.BetsWon++
			} else {
				pnl = -stake
			}
			bankroll += pnl

			res.Bets = append(res.Bets, Bet{
				Pick:           cand,
				Stake:          stake,
				Won:            won,
				ProfitLoss:     pnl,
				BankrollBefore: bankroll - pnl,
				BankrollAfter:  bankroll,
			})
			summary.BetsPlaced++
			summary.DailyStakes += stake
			summary.DailyProfit += pnl
		}
		summary.Avoided = summary.Analyzed - summary.BetsPlaced

		if bankroll > peak {
			peak = bankroll
		}

		summary.EndingBankroll = bankroll
		summary.PeakBankroll = peak
		if peak > 0 {
			summary.DrawdownPct = (peak - bankroll) / peak * 100
		}
		if summary.BetsPlaced > 0 {
			summary.WinRate = float64(summary.BetsWon) / float64(summary.BetsPlaced) * 100
		}
		if summary.StartingBankroll > 0 {
			summary.ROI = summary.DailyProfit / summary.StartingBankroll * 100
		}

		res.Daily = append(res.Daily, summary)

		if e.Log != nil {
			e.Log.Info("backtest day processed",
				zap.String("date", date),
				zap.Float64("daily_profit", summary.DailyProfit),
				zap.Float64("bankroll", bankroll),
				zap.Int("bets", summary.BetsPlaced),
				zap.Int("analyzed", summary.Analyzed),
			)
		}
	}

	res.Metrics = computeMetrics(e.InitialBankroll, bankroll, peak, len(scenarios), res)
	return res
}
