package settlement

import (
	"context"

	"github.com/radieske/soccer-picks-poc/internal/apifootball"
	"github.com/radieske/soccer-picks-poc/internal/picks"
	"github.com/radieske/soccer-picks-poc/internal/simulate"
)

// APISource resolve resultados reais pelo provedor de fixtures.
type APISource struct {
	Client *apifootball.Client
}

func (s *APISource) Result(ctx context.Context, p picks.Pick) (*picks.Result, error) {
	return s.Client.MatchResult(ctx, p.HomeTeam, p.AwayTeam, p.Date)
}

// SimSource sorteia resultados determinísticos por data, pra backfills e
// execuções a seco. Nunca marca o resultado como verificado.
type SimSource struct {
	sims map[string]*simulate.Simulator
}

func NewSimSource() *SimSource {
	return &SimSource{sims: make(map[string]*simulate.Simulator)}
}

func (s *SimSource) Result(_ context.Context, p picks.Pick) (*picks.Result, error) {
	sim, ok := s.sims[p.Date]
	if !ok {
		sim = simulate.New(p.Date)
		s.sims[p.Date] = sim
	}
	res := sim.MatchResult(p)
	return &res, nil
}
