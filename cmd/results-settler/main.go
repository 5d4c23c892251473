package main

import (
	"context"
	"flag"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/radieske/soccer-picks-poc/internal/apifootball"
	"github.com/radieske/soccer-picks-poc/internal/picks/repo"
	"github.com/radieske/soccer-picks-poc/internal/settlement"
	sharedcache "github.com/radieske/soccer-picks-poc/internal/shared/cache"
	"github.com/radieske/soccer-picks-poc/internal/shared/config"
	"github.com/radieske/soccer-picks-poc/internal/shared/db"
	"github.com/radieske/soccer-picks-poc/internal/shared/kafka"
	"github.com/radieske/soccer-picks-poc/internal/shared/logger"
	"github.com/radieske/soccer-picks-poc/internal/shared/metrics"
	"github.com/radieske/soccer-picks-poc/internal/tracker"
)

func main() {
	var (
		maxDate  = flag.String("max-date", time.Now().UTC().Format("2006-01-02"), "liquida picks com data até este dia (YYYY-MM-DD)")
		simulate = flag.Bool("simulate", false, "sorteia resultados determinísticos em vez de consultar o provedor")
		loop     = flag.Duration("loop", 0, "intervalo de re-execução; 0 roda uma vez e sai")
	)
	flag.Parse()

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

	redisClient, err := sharedcache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis connect", zap.Error(err))
	}
	defer redisClient.Close()

	// Writer principal + DLQ pra mensagens que falharem na publicação
	settledWriter := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicPickSettled)
	defer settledWriter.Close()

	dlqWriter := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicPickSettledDLQ)
	defer dlqWriter.Close()

	// Tracker cumulativo alimentado a cada pick decidido
	trk, err := tracker.New(filepath.Join(cfg.ReportsDir, "cumulative_tracker.csv"))
	if err != nil {
		log.Fatal("tracker init", zap.Error(err))
	}

	stake, err := strconv.ParseFloat(cfg.FlatStake, 64)
	if err != nil {
		log.Fatal("invalid FLAT_STAKE", zap.String("value", cfg.FlatStake), zap.Error(err))
	}

	// Fonte de resultados: provedor real ou simulação determinística por data
	var source settlement.ResultSource
	if *simulate {
		source = settlement.NewSimSource()
		log.Info("using simulated results")
	} else {
		source = &settlement.APISource{
			Client: apifootball.NewClient(cfg.APIFootballURL, cfg.APIFootballKey, log),
		}
	}

	// Métricas Prometheus por desfecho e por estágio
	settled := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "settler_picks_settled_total", Help: "picks liquidados por desfecho"}, []string{"outcome"})
	skipped := prometheus.NewCounter(prometheus.CounterOpts{Name: "settler_picks_skipped_total", Help: "picks sem resultado disponível"})
	errorsBy := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "settler_errors_total", Help: "erros por estágio"}, []string{"stage"})
	prometheus.MustRegister(settled, skipped, errorsBy)

	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		if err := pg.PingContext(ctx); err != nil {
			return err
		}
		return redisClient.Ping(ctx).Err()
	})

	settler := &settlement.Settler{
		Log:     log,
		Repo:    repo.NewPostgres(pg),
		Source:  source,
		Publ:    settlement.NewKafkaPublisher(settledWriter, dlqWriter, log),
		Tracker: trk,

		Broadcast:        settlement.NewRedisBroadcaster(redisClient),
		BroadcastChannel: cfg.RedisPubSubChannel,

		Stake: stake,

		OnSettled: func(outcome string) { settled.WithLabelValues(outcome).Inc() },
		OnSkipped: func() { skipped.Inc() },
		OnError:   func(stage string) { errorsBy.WithLabelValues(stage).Inc() },
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("results-settler started",
		zap.String("max_date", *maxDate),
		zap.Bool("simulate", *simulate),
	)

	for {
		if err := settler.Run(ctx, *maxDate); err != nil && ctx.Err() == nil {
			log.Error("settle run failed", zap.Error(err))
		}

		if *loop <= 0 {
			break
		}
		select {
		case <-ctx.Done():
			log.Info("results-settler stopped")
			return
		case <-time.After(*loop):
		}
	}

	log.Info("results-settler done")
}
