package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/soccer-picks-poc/internal/picks"
	"github.com/radieske/soccer-picks-poc/internal/picks/repo"
	"github.com/radieske/soccer-picks-poc/internal/report"
	"github.com/radieske/soccer-picks-poc/internal/shared/config"
	"github.com/radieske/soccer-picks-poc/internal/shared/db"
	"github.com/radieske/soccer-picks-poc/internal/shared/logger"
	"github.com/radieske/soccer-picks-poc/internal/strategy"
	"github.com/radieske/soccer-picks-poc/internal/tracker"
)

func main() {
	var (
		date  = flag.String("date", time.Now().UTC().Format("2006-01-02"), "data da seleção diária (YYYY-MM-DD)")
		daily = flag.Bool("daily", true, "gera o CSV da seleção diária de picks")
		cumul = flag.Bool("cumulative", true, "gera o relatório cumulativo de performance")
	)
	flag.Parse()

	cfg := config.Load()
	log, err := logger.New("report-generator", cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	stake, err := strconv.ParseFloat(cfg.FlatStake, 64)
	if err != nil {
		log.Fatal("invalid FLAT_STAKE", zap.String("value", cfg.FlatStake), zap.Error(err))
	}

	if *daily {
		writeDailySelection(log, cfg, *date)
	}

	if *cumul {
		trk, err := tracker.New(filepath.Join(cfg.ReportsDir, "cumulative_tracker.csv"))
		if err != nil {
			log.Fatal("tracker open", zap.Error(err))
		}
		entries, err := trk.Load()
		if err != nil {
			log.Fatal("tracker load", zap.Error(err))
		}

		path := filepath.Join(cfg.ReportsDir, "cumulative_report.txt")
		if err := report.WriteCumulativeTXT(path, entries, stake, time.Now().UTC()); err != nil {
			log.Fatal("write cumulative report", zap.Error(err))
		}
		log.Info("cumulative report written",
			zap.String("path", path), zap.Int("entries", len(entries)))
	}
}

// writeDailySelection aplica a alocação diária (elite primeiro, limite global)
// sobre os picks pendentes da data e exporta o CSV da seleção.
func writeDailySelection(log *zap.Logger, cfg config.Config, date string) {
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("postgres connect", zap.Error(err))
	}
	defer pg.Close()

	strat, err := strategy.LoadConfig(cfg.StrategyFile)
	if err != nil {
		if !os.IsNotExist(err) && !strings.Contains(err.Error(), "no such file") {
			log.Fatal("strategy load", zap.Error(err))
		}
		strat = strategy.DefaultConfig()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pending, err := repo.NewPostgres(pg).ListPending(ctx, date)
	if err != nil {
		log.Fatal("list pending", zap.Error(err))
	}

	var dayPicks []picks.Pick
	for _, p := range pending {
		if p.Date == date {
			dayPicks = append(dayPicks, p)
		}
	}

	selection := strategy.NewEngine(strat).SelectDaily(dayPicks)

	path := filepath.Join(cfg.ReportsDir, "daily_picks_"+date+".csv")
	if err := report.WriteDailyPicksCSV(path, selection); err != nil {
		log.Fatal("write daily picks csv", zap.Error(err))
	}
	log.Info("daily selection written",
		zap.String("path", path),
		zap.String("date", date),
		zap.Int("candidates", len(dayPicks)),
		zap.Int("selected", len(selection)),
	)
}
