package strategy

import (
	"sort"

	"github.com/radieske/soccer-picks-poc/internal/picks"
)

// RejectionReason identifica o estágio do filtro que descartou um pick
type RejectionReason string

const (
	RejectBanned     RejectionReason = "banned_market"
	RejectEdge       RejectionReason = "low_edge"
	RejectConfidence RejectionReason = "low_confidence"
	RejectQuality    RejectionReason = "low_quality"
	RejectDailyCap   RejectionReason = "market_daily_cap"
)

// Engine aplica a tabela de mercados sobre candidatos a pick.
// Mantém contadores por mercado/dia, então uma instância cobre uma execução de geração.
type Engine struct {
	cfg         Config
	dailyCounts map[string]int // "market|date" -> picks aceitos

	// Callbacks de métricas por estágio (mesmo padrão do processor de odds)
	OnAccepted func()
	OnRejected func(reason RejectionReason)
}

func NewEngine(cfg Config) *Engine {
	return &Engine{
		cfg:         cfg,
		dailyCounts: make(map[string]int),
	}
}

// Cfg expõe a tabela de estratégia em uso
func (e *Engine) Cfg() Config { return e.cfg }

// Evaluate aplica os limiares específicos do mercado a um único candidato.
// Preenche Market (normalizado), MarketTier, QualityScore e StakePct quando aceito.
func (e *Engine) Evaluate(p *picks.Pick) (bool, RejectionReason) {
	market := NormalizeMarket(p.BetDescription)
	settings := e.cfg.Settings(market)

	if settings.Tier == TierBanned {
		e.reject(RejectBanned)
		return false, RejectBanned
	}

	if p.EdgePct < settings.MinEdge {
		e.reject(RejectEdge)
		return false, RejectEdge
	}
	if p.ConfidencePct < settings.MinConfidence {
		e.reject(RejectConfidence)
		return false, RejectConfidence
	}

	// Quality score: composto de edge e confiança quando não informado
	if p.QualityScore == 0 {
		p.QualityScore = p.ConfidencePct / 100 * p.EdgePct
	}
	if p.QualityScore < e.cfg.MinQualityScore {
		e.reject(RejectQuality)
		return false, RejectQuality
	}

	// Limite diário por mercado
	key := market + "|" + p.Date
	if e.dailyCounts[key] >= settings.MaxDaily && settings.MaxDaily > 0 {
		e.reject(RejectDailyCap)
		return false, RejectDailyCap
	}
	e.dailyCounts[key]++

	p.Market = market
	p.MarketTier = settings.Tier
	p.StakePct = e.positionSize(p.EdgePct, p.ConfidencePct, settings.PositionMultiplier)

	if e.OnAccepted != nil {
		e.OnAccepted()
	}
	return true, ""
}

func (e *Engine) reject(reason RejectionReason) {
	if e.OnRejected != nil {
		e.OnRejected(reason)
	}
}

// positionSize calcula a stake em % da banca: escada base por (edge, confiança),
// escalada pelo multiplicador do mercado e limitada pelo teto global.
func (e *Engine) positionSize(edge, confidence, multiplier float64) float64 {
	var base float64
	switch {
	case edge >= 40 && confidence >= 75:
		base = 3.0
	case edge >= 30 && confidence >= 70:
		base = 2.5
	case edge >= 25 && confidence >= 65:
		base = 2.0
	case edge >= 20 && confidence >= 60:
		base = 1.5
	default:
		base = 1.0
	}

	stake := base * multiplier
	if stake > e.cfg.MaxStakePct {
		stake = e.cfg.MaxStakePct
	}
	return stake
}

// SelectDaily aplica a alocação diária sobre picks já aceitos pelo Evaluate:
// ordena por (prioridade, -edge, -stake) e limita a seleção de cada dia.
func (e *Engine) SelectDaily(accepted []picks.Pick) []picks.Pick {
	sort.SliceStable(accepted, func(i, j int) bool {
		pi := e.cfg.Settings(accepted[i].Market).Priority
		pj := e.cfg.Settings(accepted[j].Market).Priority
		if pi != pj {
			return pi < pj
		}
		if accepted[i].EdgePct != accepted[j].EdgePct {
			return accepted[i].EdgePct > accepted[j].EdgePct
		}
		return accepted[i].StakePct > accepted[j].StakePct
	})

	byDate := make(map[string][]picks.Pick)
	var dates []string
	for _, p := range accepted {
		if _, ok := byDate[p.Date]; !ok {
			dates = append(dates, p.Date)
		}
		byDate[p.Date] = append(byDate[p.Date], p)
	}
	sort.Strings(dates)

	var out []picks.Pick
	for _, date := range dates {
		out = append(out, e.selectDay(byDate[date])...)
	}
	return out
}

// selectDay monta a seleção de um único dia: até MaxElitePerDay picks ELITE,
// completa com GOOD até MaxPicksPerDay e admite no máximo 1 pick excepcional
// de outro tier quando o dia ficou com 3 picks ou menos.
func (e *Engine) selectDay(dayPicks []picks.Pick) []picks.Pick {
	var elite, good, other []picks.Pick
	for _, p := range dayPicks {
		switch p.MarketTier {
		case TierElite:
			elite = append(elite, p)
		case TierGood:
			good = append(good, p)
		default:
			other = append(other, p)
		}
	}

	selection := take(elite, e.cfg.MaxElitePerDay)

	remaining := e.cfg.MaxPicksPerDay - len(selection)
	if remaining > 0 {
		selection = append(selection, take(good, remaining)...)
	}

	if len(selection) <= 3 {
		for _, p := range other {
			if p.EdgePct >= e.cfg.ExceptionEdge {
				selection = append(selection, p)
				break
			}
		}
	}

	return selection
}

func take(ps []picks.Pick, n int) []picks.Pick {
	if len(ps) <= n {
		return ps
	}
	return ps[:n]
}
