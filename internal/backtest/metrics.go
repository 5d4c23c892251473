package backtest

import "math"

// Taxa livre de risco diária usada no Sharpe (~2% ao ano)
const dailyRiskFreeRate = 0.000055

// Metrics consolida a performance de uma execução de backtest
type Metrics struct {
	InitialBankroll    float64 `json:"initial_bankroll"`
	FinalBankroll      float64 `json:"final_bankroll"`
	TotalReturnPct     float64 `json:"total_return_pct"`
	TotalReturn        float64 `json:"total_return"`
	PeakBankroll       float64 `json:"peak_bankroll"`
	MaxDrawdownPct     float64 `json:"max_drawdown_pct"`
	TotalOpportunities int     `json:"total_opportunities"`
	BetsPlaced         int     `json:"bets_placed"`
	BetsAvoided        int     `json:"bets_avoided"`
	SelectivityPct     float64 `json:"bet_selectivity_pct"`
	WinRate            float64 `json:"overall_win_rate"`
	ProfitableDays     int     `json:"profitable_days"`
	TradingDays        int     `json:"total_trading_days"`
	ProfitableDayRate  float64 `json:"profitable_day_rate"`
	AvgDailyReturn     float64 `json:"avg_daily_return"`
	Volatility         float64 `json:"volatility"`
	SharpeRatio        float64 `json:"sharpe_ratio"`
}

func computeMetrics(initial, final, peak float64, opportunities int, res Result) Metrics {
	m := Metrics{
		InitialBankroll:    initial,
		FinalBankroll:      final,
		TotalReturn:        final - initial,
		PeakBankroll:       peak,
		TotalOpportunities: opportunities,
		TradingDays:        len(res.Daily),
	}

	if initial > 0 {
		m.TotalReturnPct = (final - initial) / initial * 100
	}

	var wins int
	for _, b := range res.Bets {
		m.BetsPlaced++
		if b.Won {
			wins++
		}
	}
	m.BetsAvoided = opportunities - m.BetsPlaced
	if opportunities > 0 {
		m.SelectivityPct = float64(m.BetsPlaced) / float64(opportunities) * 100
	}
	if m.BetsPlaced > 0 {
		m.WinRate = float64(wins) / float64(m.BetsPlaced) * 100
	}

	var dailyReturns []float64
	for _, d := range res.Daily {
		if d.DrawdownPct > m.MaxDrawdownPct {
			m.MaxDrawdownPct = d.DrawdownPct
		}
		if d.DailyProfit > 0 {
			m.ProfitableDays++
		}
		dailyReturns = append(dailyReturns, d.ROI)
	}
	if m.TradingDays > 0 {
		m.ProfitableDayRate = float64(m.ProfitableDays) / float64(m.TradingDays) * 100
	}

	m.AvgDailyReturn = mean(dailyReturns)
	m.Volatility = stddev(dailyReturns)
	m.SharpeRatio = sharpe(dailyReturns)

	return m
}

// sharpe calcula o retorno ajustado a risco sobre os retornos diários (em %)
func sharpe(dailyReturnsPct []float64) float64 {
	if len(dailyReturnsPct) == 0 {
		return 0
	}

	returns := make([]float64, len(dailyReturnsPct))
	for i, r := range dailyReturnsPct {
		returns[i] = r / 100
	}

	sd := stddev(returns)
	if sd == 0 {
		return 0
	}
	return (mean(returns) - dailyRiskFreeRate) / sd
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stddev populacional
func stddev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := mean(xs)
	var sum float64
	for _, x := range xs {
		sum += (x - m) * (x - m)
	}
	return math.Sqrt(sum / float64(len(xs)))
}
