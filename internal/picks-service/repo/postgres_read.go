package repo

import (
	"context"
	"database/sql"

	"github.com/radieske/soccer-picks-poc/internal/picks-service/dto"
)

type ReadRepo struct {
	DB *sql.DB
}

const pickColumns = `
	id, fixture_id, date, kick_off, home_team, away_team, league,
	market, bet_description, odds, stake_pct, edge_pct, confidence_pct,
	quality_score, market_tier, outcome,
	COALESCE(profit_loss, 0), COALESCE(verified, false)`

func scanPick(row interface{ Scan(...any) error }) (dto.Pick, error) {
	var p dto.Pick
	err := row.Scan(&p.ID, &p.FixtureID, &p.Date, &p.KickOff,
		&p.HomeTeam, &p.AwayTeam, &p.League,
		&p.Market, &p.BetDescription, &p.Odds, &p.StakePct,
		&p.EdgePct, &p.ConfidencePct, &p.QualityScore, &p.Tier,
		&p.Outcome, &p.ProfitLoss, &p.Verified)
	return p, err
}

// ListByDate retorna os picks de uma data, ordenados por horário de início
func (r *ReadRepo) ListByDate(ctx context.Context, date string) ([]dto.Pick, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+pickColumns+`
		FROM picks
		WHERE date = $1
		ORDER BY kick_off, home_team;`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []dto.Pick
	for rows.Next() {
		p, err := scanPick(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByID retorna um pick pelo id
func (r *ReadRepo) GetByID(ctx context.Context, id string) (dto.Pick, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+pickColumns+`
		FROM picks
		WHERE id = $1;`, id)
	return scanPick(row)
}

// OverallPerformance agrega os números globais de picks já liquidados
func (r *ReadRepo) OverallPerformance(ctx context.Context, flatStake float64) (dto.Performance, error) {
	const q = `
		SELECT
		  COUNT(*) FILTER (WHERE outcome IN ('WIN','LOSS')),
		  COUNT(*) FILTER (WHERE outcome = 'WIN'),
		  COUNT(*) FILTER (WHERE outcome = 'LOSS'),
		  COALESCE(SUM(profit_loss) FILTER (WHERE outcome IN ('WIN','LOSS')), 0)
		FROM picks;
	`
	var p dto.Performance
	if err := r.DB.QueryRowContext(ctx, q).Scan(&p.TotalPicks, &p.Wins, &p.Losses, &p.TotalPnL); err != nil {
		return dto.Performance{}, err
	}

	p.TotalStaked = float64(p.TotalPicks) * flatStake
	if p.TotalPicks > 0 {
		p.WinRate = float64(p.Wins) / float64(p.TotalPicks) * 100
	}
	if p.TotalStaked > 0 {
		p.ROI = p.TotalPnL / p.TotalStaked * 100
	}
	return p, nil
}

// MarketPerformance agrega performance por mercado, maior volume primeiro
func (r *ReadRepo) MarketPerformance(ctx context.Context) ([]dto.MarketPerformance, error) {
	const q = `
		SELECT market,
		  COUNT(*),
		  COUNT(*) FILTER (WHERE outcome = 'WIN'),
		  COALESCE(SUM(profit_loss), 0)
		FROM picks
		WHERE outcome IN ('WIN','LOSS')
		GROUP BY market
		ORDER BY COUNT(*) DESC, market;
	`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []dto.MarketPerformance
	for rows.Next() {
		var m dto.MarketPerformance
		if err := rows.Scan(&m.Market, &m.Picks, &m.Wins, &m.PnL); err != nil {
			return nil, err
		}
		if m.Picks > 0 {
			m.WinRate = float64(m.Wins) / float64(m.Picks) * 100
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
