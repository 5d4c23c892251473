// Package simulate gera resultados determinísticos de partidas pra backfills
// e execuções a seco, sem acesso ao provedor. O sorteio é semeado pela data,
// então rodar duas vezes o mesmo dia produz os mesmos resultados.
package simulate

import (
	"hash/fnv"
	"math/rand"

	"github.com/radieske/soccer-picks-poc/internal/picks"
)

// Seed deriva a semente de uma data ("YYYY-MM-DD")
func Seed(date string) int64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(date))
	return int64(h.Sum32() % 2147483647)
}

// Simulator sorteia desfechos de picks ponderados pela confiança.
// Uma instância cobre um dia: o rand interno é semeado pela data.
type Simulator struct {
	rng *rand.Rand
}

func New(date string) *Simulator {
	return &Simulator{rng: rand.New(rand.NewSource(Seed(date)))}
}

// Outcome decide se o pick venceu: probabilidade de vitória igual à confiança.
func (s *Simulator) Outcome(p picks.Pick) bool {
	conf := p.ConfidencePct / 100
	if conf <= 0 {
		conf = 0.5
	}
	return s.rng.Float64() < conf
}

// MatchResult inventa um placar compatível com o desfecho sorteado do pick,
// suficiente pras regras de liquidação chegarem à mesma conclusão.
func (s *Simulator) MatchResult(p picks.Pick) picks.Result {
	won := s.Outcome(p)

	res := picks.Result{Finished: true, Verified: false}

	market := p.Market
	if market == "" {
		market = p.BetDescription
	}

	switch {
	case is(market, "Over 2.5 Goals"):
		res = withGoals(res, s.pickGoals(won, 3, 2))
	case is(market, "Under 2.5 Goals"):
		res = withGoals(res, s.pickGoals(!won, 3, 2))
	case is(market, "Over 1.5 Goals"):
		res = withGoals(res, s.pickGoals(won, 2, 1))
	case is(market, "Away Team Under 1.5 Goals"):
		if won {
			res.HomeScore, res.AwayScore = 1+s.rng.Intn(2), s.rng.Intn(2)
		} else {
			res.HomeScore, res.AwayScore = s.rng.Intn(2), 2+s.rng.Intn(2)
		}
	case is(market, "Home Team Under 1.5 Goals"):
		if won {
			res.HomeScore, res.AwayScore = s.rng.Intn(2), 1+s.rng.Intn(2)
		} else {
			res.HomeScore, res.AwayScore = 2+s.rng.Intn(2), s.rng.Intn(2)
		}
	case is(market, "Both Teams to Score - Yes"):
		res = s.bttsScore(res, won)
	case is(market, "Both Teams to Score - No"):
		res = s.bttsScore(res, !won)
	case is(market, "Over 9.5 Total Corners"):
		res.HomeScore, res.AwayScore = s.rng.Intn(3), s.rng.Intn(3)
		if won {
			res.TotalCorners = 10 + s.rng.Intn(6)
		} else {
			res.TotalCorners = 4 + s.rng.Intn(6)
		}
	default:
		// mercado sem placar modelado: sorteia um placar qualquer
		res.HomeScore, res.AwayScore = s.rng.Intn(4), s.rng.Intn(4)
	}

	if res.TotalCorners == 0 {
		res.TotalCorners = 6 + s.rng.Intn(8)
	}
	res.TotalGoals = res.HomeScore + res.AwayScore
	res.BTTS = res.HomeScore > 0 && res.AwayScore > 0
	return res
}

// pickGoals devolve um total de gols acima ou abaixo da linha
func (s *Simulator) pickGoals(over bool, overMin, underMax int) int {
	if over {
		return overMin + s.rng.Intn(3)
	}
	return s.rng.Intn(underMax + 1)
}

func withGoals(res picks.Result, total int) picks.Result {
	res.HomeScore = total / 2
	res.AwayScore = total - res.HomeScore
	return res
}

func (s *Simulator) bttsScore(res picks.Result, both bool) picks.Result {
	if both {
		res.HomeScore, res.AwayScore = 1+s.rng.Intn(2), 1+s.rng.Intn(2)
	} else if s.rng.Intn(2) == 0 {
		res.HomeScore, res.AwayScore = 1+s.rng.Intn(3), 0
	} else {
		res.HomeScore, res.AwayScore = 0, 1+s.rng.Intn(3)
	}
	return res
}

func is(market, want string) bool { return market == want }
