package main

import (
	"context"
	"flag"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/radieske/soccer-picks-poc/internal/apifootball"
	"github.com/radieske/soccer-picks-poc/internal/ingest"
	sharedcache "github.com/radieske/soccer-picks-poc/internal/shared/cache"
	"github.com/radieske/soccer-picks-poc/internal/shared/config"
	"github.com/radieske/soccer-picks-poc/internal/shared/logger"
	"github.com/radieske/soccer-picks-poc/internal/shared/metrics"
)

func main() {
	var (
		date = flag.String("date", time.Now().UTC().Format("2006-01-02"), "data das fixtures (YYYY-MM-DD)")
		loop = flag.Duration("loop", 0, "intervalo de re-execução; 0 roda uma vez e sai")
	)
	flag.Parse()

	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	redisClient, err := sharedcache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis connect", zap.Error(err))
	}
	defer redisClient.Close()

	pub := ingest.NewKafkaPublisher(
		strings.Split(cfg.KafkaBrokers, ","),
		cfg.TopicFixtureOdds,
		log,
	)
	defer pub.Close()

	// Métricas Prometheus por etapa da ingestão
	fetched := prometheus.NewCounter(prometheus.CounterOpts{Name: "ingest_fixtures_fetched_total", Help: "fixtures consultadas"})
	published := prometheus.NewCounter(prometheus.CounterOpts{Name: "ingest_snapshots_published_total", Help: "snapshots publicados"})
	errorsBy := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "ingest_errors_total", Help: "erros por estágio"}, []string{"stage"})
	prometheus.MustRegister(fetched, published, errorsBy)

	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		return redisClient.Ping(ctx).Err()
	})

	fetcher := &ingest.Fetcher{
		Log:    log,
		Client: apifootball.NewClient(cfg.APIFootballURL, cfg.APIFootballKey, log),
		Publ:   pub,
		Redis:  redisClient,
		TTL:    12 * time.Hour,

		OnFetched:   func() { fetched.Inc() },
		OnPublished: func() { published.Inc() },
		OnError:     func(stage string) { errorsBy.WithLabelValues(stage).Inc() },
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("fixtures-ingest started",
		zap.String("date", *date), zap.Duration("loop", *loop))

	for {
		day := *date
		if *loop > 0 {
			// Em modo contínuo sempre busca o dia corrente
			day = time.Now().UTC().Format("2006-01-02")
		}
		if err := fetcher.FetchDay(ctx, day); err != nil {
			log.Error("fetch day failed", zap.String("date", day), zap.Error(err))
		}

		if *loop <= 0 {
			break
		}
		select {
		case <-ctx.Done():
			log.Info("fixtures-ingest stopped")
			return
		case <-time.After(*loop):
		}
	}

	log.Info("fixtures-ingest done")
}
