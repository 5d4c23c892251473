package ingest

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/radieske/soccer-picks-poc/internal/apifootball"
	"github.com/radieske/soccer-picks-poc/pkg/contracts/events"
)

// Publisher publica snapshots no tópico fixture_odds
type Publisher interface {
	PublishSnapshot(ctx context.Context, ev events.OddsSnapshot) error
}

// Fetcher busca as fixtures do dia no provedor e publica um snapshot de odds
// por fixture. Snapshots também vão pro Redis como odds correntes.
type Fetcher struct {
	Log    *zap.Logger
	Client *apifootball.Client
	Publ   Publisher
	Redis  *redis.Client
	TTL    time.Duration

	OnFetched   func() // métricas (counter++)
	OnPublished func()
	OnError     func(stage string)
}

// FetchDay processa todas as fixtures de uma data.
// Erros por fixture são logados e o loop continua; só o erro da listagem aborta.
func (f *Fetcher) FetchDay(ctx context.Context, date string) error {
	fixtures, err := f.Client.FixturesByDate(ctx, date)
	if err != nil {
		if f.OnError != nil {
			f.OnError("fixtures")
		}
		return err
	}
	f.Log.Info("fixtures loaded", zap.String("date", date), zap.Int("count", len(fixtures)))

	for i := range fixtures {
		fx := fixtures[i]
		if f.OnFetched != nil {
			f.OnFetched()
		}

		odds, err := f.Client.OddsByFixture(ctx, fx.Fixture.ID)
		if err != nil {
			f.Log.Warn("odds fetch failed",
				zap.Int64("fixture_id", fx.Fixture.ID), zap.Error(err))
			if f.OnError != nil {
				f.OnError("odds")
			}
			continue
		}

		snap := BuildSnapshot(fx, odds)
		if len(snap.Markets) == 0 {
			continue // fixture sem mercado cotado que a estratégia conheça
		}

		if err := f.cacheCurrent(ctx, snap); err != nil {
			f.Log.Warn("redis set failed", zap.Error(err))
			if f.OnError != nil {
				f.OnError("cache")
			}
			// não bloqueia a publicação se falhar o cache
		}

		if err := f.Publ.PublishSnapshot(ctx, snap); err != nil {
			f.Log.Warn("publish failed",
				zap.Int64("fixture_id", fx.Fixture.ID), zap.Error(err))
			if f.OnError != nil {
				f.OnError("publish")
			}
			continue
		}
		if f.OnPublished != nil {
			f.OnPublished()
		}
	}

	return nil
}

// key gera a chave Redis das odds correntes de uma fixture
func key(fixtureID int64) string {
	return "odds:fixture:" + strconv.FormatInt(fixtureID, 10)
}

func (f *Fetcher) cacheCurrent(ctx context.Context, snap events.OddsSnapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return f.Redis.Set(ctx, key(snap.FixtureID), b, f.TTL).Err()
}
