package main

import (
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/radieske/soccer-picks-poc/internal/backtest"
	"github.com/radieske/soccer-picks-poc/internal/picks"
	"github.com/radieske/soccer-picks-poc/internal/shared/config"
	"github.com/radieske/soccer-picks-poc/internal/shared/logger"
	"github.com/radieske/soccer-picks-poc/internal/simulate"
	"github.com/radieske/soccer-picks-poc/internal/strategy"
)

func main() {
	var (
		scenariosPath = flag.String("scenarios", "", "CSV de cenários históricos (obrigatório)")
		outDir        = flag.String("out", "", "diretório de saída; default REPORTS_DIR/backtest")
	)
	flag.Parse()

	cfg := config.Load()
	log, err := logger.New("backtest", cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if *scenariosPath == "" {
		log.Fatal("missing -scenarios")
	}

	dir := *outDir
	if dir == "" {
		dir = filepath.Join(cfg.ReportsDir, "backtest")
	}

	strat, err := strategy.LoadConfig(cfg.StrategyFile)
	if err != nil {
		if !os.IsNotExist(err) && !strings.Contains(err.Error(), "no such file") {
			log.Fatal("strategy load", zap.Error(err))
		}
		strat = strategy.DefaultConfig()
	}

	bankroll, err := strconv.ParseFloat(cfg.InitialBankroll, 64)
	if err != nil {
		log.Fatal("invalid INITIAL_BANKROLL", zap.String("value", cfg.InitialBankroll), zap.Error(err))
	}

	scenarios, err := backtest.LoadScenariosCSV(*scenariosPath)
	if err != nil {
		log.Fatal("load scenarios", zap.Error(err))
	}
	if len(scenarios) == 0 {
		log.Fatal("no scenarios in file", zap.String("path", *scenariosPath))
	}

	// Cenários sem desfecho registrado recebem um sorteio determinístico por data
	sims := make(map[string]*simulate.Simulator)
	for i := range scenarios {
		if scenarios[i].Outcome == picks.OutcomeWin || scenarios[i].Outcome == picks.OutcomeLoss {
			continue
		}
		sim, ok := sims[scenarios[i].Date]
		if !ok {
			sim = simulate.New(scenarios[i].Date)
			sims[scenarios[i].Date] = sim
		}
		if sim.Outcome(scenarios[i]) {
			scenarios[i].Outcome = picks.OutcomeWin
		} else {
			scenarios[i].Outcome = picks.OutcomeLoss
		}
	}

	engine := &backtest.Engine{
		Log:             log,
		Strategy:        strat,
		InitialBankroll: bankroll,
	}

	log.Info("backtest starting",
		zap.Int("scenarios", len(scenarios)),
		zap.Float64("initial_bankroll", bankroll),
	)

	result := engine.Run(scenarios)

	if err := backtest.WriteDetailedCSV(filepath.Join(dir, "backtest_detailed.csv"), result.Bets); err != nil {
		log.Fatal("write detailed csv", zap.Error(err))
	}
	if err := backtest.WriteSummaryCSV(filepath.Join(dir, "backtest_daily.csv"), result.Daily); err != nil {
		log.Fatal("write summary csv", zap.Error(err))
	}
	if err := backtest.WriteMetricsJSON(filepath.Join(dir, "backtest_metrics.json"), result.Metrics); err != nil {
		log.Fatal("write metrics json", zap.Error(err))
	}

	log.Info("backtest finished",
		zap.Float64("final_bankroll", result.Metrics.FinalBankroll),
		zap.Float64("total_return_pct", result.Metrics.TotalReturnPct),
		zap.Float64("max_drawdown_pct", result.Metrics.MaxDrawdownPct),
		zap.Float64("sharpe", result.Metrics.SharpeRatio),
		zap.Int("bets", len(result.Bets)),
		zap.String("out_dir", dir),
	)
}
