package repo

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/radieske/soccer-picks-poc/internal/picks"
)

// Postgres implementa a persistência de picks
type Postgres struct{ db *sql.DB }

// NewPostgres retorna uma instância do repositório de picks
func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

// CreatePending insere um novo pick com outcome PENDING
func (p *Postgres) CreatePending(ctx context.Context, pk *picks.Pick) (string, error) {
	id := uuid.NewString()
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO picks
		  (id, fixture_id, date, kick_off, home_team, away_team, league,
		   market, bet_description, odds, stake_pct, stake_amount,
		   edge_pct, confidence_pct, quality_score, market_tier, outcome)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,'PENDING')`,
		id, pk.FixtureID, pk.Date, pk.KickOff, pk.HomeTeam, pk.AwayTeam, pk.League,
		pk.Market, pk.BetDescription, pk.Odds, pk.StakePct, pk.StakeAmount,
		pk.EdgePct, pk.ConfidencePct, pk.QualityScore, pk.MarketTier,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// ListPending retorna picks ainda não liquidados com data até maxDate (inclusive)
func (p *Postgres) ListPending(ctx context.Context, maxDate string) ([]picks.Pick, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT id, fixture_id, date, kick_off, home_team, away_team, league,
		       market, bet_description, odds, stake_pct, stake_amount,
		       edge_pct, confidence_pct, quality_score, market_tier
		FROM picks
		WHERE outcome = 'PENDING' AND date <= $1
		ORDER BY date, kick_off`, maxDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []picks.Pick
	for rows.Next() {
		var pk picks.Pick
		if err := rows.Scan(&pk.ID, &pk.FixtureID, &pk.Date, &pk.KickOff,
			&pk.HomeTeam, &pk.AwayTeam, &pk.League,
			&pk.Market, &pk.BetDescription, &pk.Odds, &pk.StakePct, &pk.StakeAmount,
			&pk.EdgePct, &pk.ConfidencePct, &pk.QualityScore, &pk.MarketTier); err != nil {
			return nil, err
		}
		pk.Outcome = picks.OutcomePending
		out = append(out, pk)
	}
	return out, rows.Err()
}

// Settle grava o desfecho de um pick com o resultado verificado (ou simulado)
func (p *Postgres) Settle(ctx context.Context, id string, outcome string, res picks.Result, profitLoss float64) error {
	_, err := p.db.ExecContext(ctx, `
		UPDATE picks SET
		  outcome = $2,
		  home_score = $3, away_score = $4, total_goals = $5,
		  total_corners = $6, btts = $7,
		  profit_loss = $8, verified = $9, settled_at = now()
		WHERE id = $1`,
		id, outcome, res.HomeScore, res.AwayScore, res.TotalGoals,
		res.TotalCorners, res.BTTS, profitLoss, res.Verified,
	)
	return err
}

// Exists verifica se já existe pick pra fixture/mercado,
// usado pra não duplicar picks em reexecuções do gerador
func (p *Postgres) Exists(ctx context.Context, fixtureID int64, market string) (bool, error) {
	var n int
	err := p.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM picks WHERE fixture_id = $1 AND market = $2`,
		fixtureID, market).Scan(&n)
	return n > 0, err
}
