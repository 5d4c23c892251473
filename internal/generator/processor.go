package generator

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/radieske/soccer-picks-poc/internal/picks"
	"github.com/radieske/soccer-picks-poc/internal/picks/repo"
	"github.com/radieske/soccer-picks-poc/internal/strategy"
	"github.com/radieske/soccer-picks-poc/pkg/contracts/events"
)

// Publisher publica eventos pick_generated
type Publisher interface {
	PublishPickGenerated(ctx context.Context, ev events.PickGenerated) error
}

// Processor consome snapshots de odds do Kafka, aplica a estratégia e persiste
// os picks aceitos. Callbacks de métricas podem ser usadas para monitoramento
// de cada etapa.
type Processor struct {
	Log    *zap.Logger
	Reader *kafka.Reader
	Repo   *repo.Postgres
	Engine *strategy.Engine
	Publ   Publisher

	OnConsumed func()       // métricas (counter++)
	OnPersist  func()       // métricas
	OnError    func(string) // métricas por fase
}

// Run inicia o loop principal de consumo e geração de picks
func (p *Processor) Run(ctx context.Context) error {
	for {
		m, err := p.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err() // encerra se o contexto for cancelado
			}
			p.Log.Warn("kafka read failed", zap.Error(err))
			if p.OnError != nil {
				p.OnError("read")
			}
			time.Sleep(500 * time.Millisecond)
			continue
		}

		if p.OnConsumed != nil {
			p.OnConsumed()
		}

		var snap events.OddsSnapshot
		if err := json.Unmarshal(m.Value, &snap); err != nil {
			p.Log.Warn("invalid message", zap.Error(err))
			if p.OnError != nil {
				p.OnError("decode")
			}
			continue
		}

		p.processSnapshot(ctx, snap)
	}
}

// processSnapshot roda a estratégia sobre os candidatos de um snapshot
func (p *Processor) processSnapshot(ctx context.Context, snap events.OddsSnapshot) {
	for _, cand := range Opportunities(snap, p.Engine.Cfg()) {
		ok, _ := p.Engine.Evaluate(&cand)
		if !ok {
			continue
		}

		// Evita pick duplicado em reprocessamentos do mesmo snapshot
		exists, err := p.Repo.Exists(ctx, cand.FixtureID, cand.Market)
		if err != nil {
			p.Log.Warn("dedup check failed", zap.Error(err))
			if p.OnError != nil {
				p.OnError("dedup")
			}
			continue
		}
		if exists {
			continue
		}

		id, err := p.Repo.CreatePending(ctx, &cand)
		if err != nil {
			p.Log.Warn("db insert failed", zap.Error(err))
			if p.OnError != nil {
				p.OnError("db_insert")
			}
			continue
		}
		cand.ID = id
		if p.OnPersist != nil {
			p.OnPersist()
		}

		if err := p.Publ.PublishPickGenerated(ctx, toEvent(cand)); err != nil {
			p.Log.Warn("publish pick_generated failed", zap.Error(err))
			if p.OnError != nil {
				p.OnError("publish")
			}
		}

		p.Log.Info("pick generated",
			zap.String("pick_id", id),
			zap.String("market", cand.Market),
			zap.Float64("edge_pct", cand.EdgePct),
			zap.Float64("confidence_pct", cand.ConfidencePct),
		)
	}
}

func toEvent(p picks.Pick) events.PickGenerated {
	return events.PickGenerated{
		PickID:         p.ID,
		FixtureID:      p.FixtureID,
		Date:           p.Date,
		KickOff:        p.KickOff,
		HomeTeam:       p.HomeTeam,
		AwayTeam:       p.AwayTeam,
		League:         p.League,
		Market:         p.Market,
		BetDescription: p.BetDescription,
		Odds:           p.Odds,
		StakePct:       p.StakePct,
		EdgePct:        p.EdgePct,
		ConfidencePct:  p.ConfidencePct,
		QualityScore:   p.QualityScore,
		MarketTier:     p.MarketTier,
		TsUnixMs:       time.Now().UnixMilli(),
	}
}
