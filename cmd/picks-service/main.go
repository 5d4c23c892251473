package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	svccache "github.com/radieske/soccer-picks-poc/internal/picks-service/cache"
	phttp "github.com/radieske/soccer-picks-poc/internal/picks-service/http"
	"github.com/radieske/soccer-picks-poc/internal/picks-service/repo"
	"github.com/radieske/soccer-picks-poc/internal/picks-service/ws"
	sharedcache "github.com/radieske/soccer-picks-poc/internal/shared/cache"
	"github.com/radieske/soccer-picks-poc/internal/shared/config"
	"github.com/radieske/soccer-picks-poc/internal/shared/db"
	"github.com/radieske/soccer-picks-poc/internal/shared/logger"
	"github.com/radieske/soccer-picks-poc/internal/shared/metrics"
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

	redisClient, err := sharedcache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis connect", zap.Error(err))
	}
	defer redisClient.Close()

	stake, err := strconv.ParseFloat(cfg.FlatStake, 64)
	if err != nil {
		log.Fatal("invalid FLAT_STAKE", zap.String("value", cfg.FlatStake), zap.Error(err))
	}

	api := &phttp.API{
		ReadRepo:  &repo.ReadRepo{DB: pg},
		Cache:     svccache.New(redisClient),
		FlatStake: stake,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// WebSocket: hub + subscriber do canal de liquidações no Redis
	hub := ws.NewHub(func(r *http.Request) bool { return true }) // POC: sem restrição de origem
	ws.StartRedisSubscriber(ctx, redisClient, cfg.RedisPubSubChannel, hub)

	r := chi.NewRouter()
	r.Mount("/", api.Router())
	r.Get("/ws", hub.HandleWS)

	metrics.StartMetricsServer(cfg.MetricsPort, func(hctx context.Context) error {
		if err := pg.PingContext(hctx); err != nil {
			return err
		}
		return redisClient.Ping(hctx).Err()
	})

	addr := fmt.Sprintf(":%s", cfg.HTTPPort)
	log.Info("picks-service listening", zap.String("addr", addr))

	srv := &http.Server{Addr: addr, Handler: r}
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("api", zap.Error(err))
	}
	log.Info("picks-service stopped")
}
