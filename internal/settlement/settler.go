package settlement

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/soccer-picks-poc/internal/picks"
	"github.com/radieske/soccer-picks-poc/internal/picks/repo"
	"github.com/radieske/soccer-picks-poc/internal/tracker"
	"github.com/radieske/soccer-picks-poc/pkg/contracts/events"
)

// ResultSource resolve o resultado de uma partida.
// Retorna nil quando não há resultado disponível (partida não encontrada ou em andamento).
type ResultSource interface {
	Result(ctx context.Context, p picks.Pick) (*picks.Result, error)
}

// Broadcaster envia o evento liquidado pro canal de broadcast (Redis Pub/Sub)
type Broadcaster interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// Publisher publica eventos pick_settled no Kafka
type Publisher interface {
	PublishPickSettled(ctx context.Context, ev events.PickSettled) error
}

// Settler liquida picks pendentes contra resultados verificados (ou simulados).
// Picks sem resultado disponível ficam pendentes pra próxima execução.
type Settler struct {
	Log     *zap.Logger
	Repo    *repo.Postgres
	Source  ResultSource
	Publ    Publisher
	Tracker *tracker.Tracker

	Broadcast        Broadcaster
	BroadcastChannel string

	Stake float64 // stake fixa por pick no tracker cumulativo

	OnSettled func(outcome string) // métricas por desfecho
	OnSkipped func()               // métricas: sem resultado disponível
	OnError   func(stage string)   // métricas por fase
}

// Run liquida todos os picks pendentes com data até maxDate.
// Erros por pick são logados e o loop continua.
func (s *Settler) Run(ctx context.Context, maxDate string) error {
	pending, err := s.Repo.ListPending(ctx, maxDate)
	if err != nil {
		if s.OnError != nil {
			s.OnError("list")
		}
		return err
	}
	s.Log.Info("pending picks loaded", zap.Int("count", len(pending)))

	for _, p := range pending {
		if err := s.settleOne(ctx, p); err != nil {
			s.Log.Warn("settle failed",
				zap.String("pick_id", p.ID), zap.Error(err))
		}
	}

	return nil
}

func (s *Settler) settleOne(ctx context.Context, p picks.Pick) error {
	res, err := s.Source.Result(ctx, p)
	if err != nil {
		if s.OnError != nil {
			s.OnError("result")
		}
		return err
	}
	if res == nil || !res.Finished {
		// sem resultado verificado: não inventa desfecho, tenta de novo depois
		if s.OnSkipped != nil {
			s.OnSkipped()
		}
		s.Log.Debug("no verified result yet",
			zap.String("home", p.HomeTeam), zap.String("away", p.AwayTeam), zap.String("date", p.Date))
		return nil
	}

	won, known := EvaluateBet(p.BetDescription, *res)

	outcome := picks.OutcomeVoid
	var pnl float64
	if known {
		if won {
			outcome = picks.OutcomeWin
		} else {
			outcome = picks.OutcomeLoss
		}
		pnl = ProfitLoss(p.Odds, s.Stake, won)
	}

	if err := s.Repo.Settle(ctx, p.ID, outcome, *res, pnl); err != nil {
		if s.OnError != nil {
			s.OnError("db_update")
		}
		return err
	}

	p.Outcome = outcome
	p.HomeScore = res.HomeScore
	p.AwayScore = res.AwayScore
	p.TotalGoals = res.TotalGoals
	p.TotalCorners = res.TotalCorners
	p.BTTS = res.BTTS
	p.ProfitLoss = pnl
	p.Verified = res.Verified

	// Tracker cumulativo só recebe desfechos decididos
	if s.Tracker != nil && outcome != picks.OutcomeVoid {
		if err := s.Tracker.Append(p, s.Stake); err != nil {
			s.Log.Warn("tracker append failed", zap.Error(err))
			if s.OnError != nil {
				s.OnError("tracker")
			}
		}
	}

	ev := events.PickSettled{
		PickID:       p.ID,
		FixtureID:    p.FixtureID,
		Outcome:      outcome,
		HomeScore:    res.HomeScore,
		AwayScore:    res.AwayScore,
		TotalCorners: res.TotalCorners,
		ProfitLoss:   pnl,
		Verified:     res.Verified,
		Ts:           time.Now().UTC(),
	}

	if s.Publ != nil {
		if err := s.Publ.PublishPickSettled(ctx, ev); err != nil {
			s.Log.Warn("publish pick_settled failed", zap.Error(err))
			if s.OnError != nil {
				s.OnError("publish")
			}
		}
	}

	// Após persistir, manda o update pro WebSocket via Redis Pub/Sub
	if s.Broadcast != nil {
		b, _ := json.Marshal(ev)
		bctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
		defer cancel()
		if err := s.Broadcast.Publish(bctx, s.BroadcastChannel, b); err != nil {
			s.Log.Warn("ws broadcast publish failed", zap.Error(err))
		}
	}

	if s.OnSettled != nil {
		s.OnSettled(outcome)
	}
	s.Log.Info("pick settled",
		zap.String("pick_id", p.ID),
		zap.String("outcome", outcome),
		zap.Float64("profit_loss", pnl),
	)
	return nil
}
