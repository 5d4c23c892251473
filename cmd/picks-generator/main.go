package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/radieske/soccer-picks-poc/internal/generator"
	"github.com/radieske/soccer-picks-poc/internal/picks/repo"
	"github.com/radieske/soccer-picks-poc/internal/shared/config"
	"github.com/radieske/soccer-picks-poc/internal/shared/db"
	"github.com/radieske/soccer-picks-poc/internal/shared/kafka"
	"github.com/radieske/soccer-picks-poc/internal/shared/logger"
	"github.com/radieske/soccer-picks-poc/internal/shared/metrics"
	"github.com/radieske/soccer-picks-poc/internal/strategy"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("postgres connect", zap.Error(err))
	}
	defer pg.Close()

	// Estratégia: YAML quando presente, tabela default embutida caso contrário
	strat, err := strategy.LoadConfig(cfg.StrategyFile)
	if err != nil {
		if !os.IsNotExist(err) && !strings.Contains(err.Error(), "no such file") {
			log.Fatal("strategy load", zap.Error(err))
		}
		log.Warn("strategy file not found, using defaults", zap.String("path", cfg.StrategyFile))
		strat = strategy.DefaultConfig()
	}

	reader := kafka.NewReader(cfg.KafkaBrokers, cfg.TopicFixtureOdds, "picks-generator")
	defer reader.Close()

	publ := generator.NewKafkaPublisher(
		strings.Split(cfg.KafkaBrokers, ","),
		cfg.TopicPickGenerated,
		log,
	)
	defer publ.Close()

	// Métricas Prometheus para monitoramento da geração
	consumed := prometheus.NewCounter(prometheus.CounterOpts{Name: "gen_snapshots_consumed_total", Help: "snapshots consumidos"})
	persisted := prometheus.NewCounter(prometheus.CounterOpts{Name: "gen_picks_persisted_total", Help: "picks persistidos"})
	rejected := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "gen_picks_rejected_total", Help: "candidatos rejeitados por motivo"}, []string{"reason"})
	errorsBy := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "gen_errors_total", Help: "erros por estágio"}, []string{"stage"})
	prometheus.MustRegister(consumed, persisted, rejected, errorsBy)

	engine := strategy.NewEngine(strat)
	engine.OnRejected = func(reason strategy.RejectionReason) {
		rejected.WithLabelValues(string(reason)).Inc()
	}

	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		return pg.PingContext(ctx)
	})

	proc := &generator.Processor{
		Log:    log,
		Reader: reader,
		Repo:   repo.NewPostgres(pg),
		Engine: engine,
		Publ:   publ,

		OnConsumed: func() { consumed.Inc() },
		OnPersist:  func() { persisted.Inc() },
		OnError:    func(stage string) { errorsBy.WithLabelValues(stage).Inc() },
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("picks-generator started",
		zap.String("consume", cfg.TopicFixtureOdds),
		zap.String("publish", cfg.TopicPickGenerated),
	)
	if err := proc.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal("processor stopped with error", zap.Error(err))
	}
	log.Info("picks-generator stopped")
}
