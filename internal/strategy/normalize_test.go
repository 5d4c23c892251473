package strategy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/radieske/soccer-picks-poc/internal/strategy"
)

func TestNormalizeMarket(t *testing.T) {
	tests := []struct {
		name string
		desc string
		want string
	}{
		{"exact canonical name", "Over 2.5 Goals", "Over 2.5 Goals"},
		{"canonical inside longer description", "Match Goals: Over 2.5 Goals @ 1.85", "Over 2.5 Goals"},
		{"case insensitive", "over 2.5 goals", "Over 2.5 Goals"},
		{"under 2.5 pattern", "Total Under 2.5 goals for the match", "Under 2.5 Goals"},
		{"away team under", "away side under 1.5 goals", "Away Team Under 1.5 Goals"},
		{"home team under", "home under 1.5 goals", "Home Team Under 1.5 Goals"},
		{"btts yes", "both teams to score: yes", "Both Teams to Score - Yes"},
		{"btts no", "both teams to score? no", "Both Teams to Score - No"},
		{"corners line", "over 9.5 corners total", "Over 9.5 Total Corners"},
		{"unmatched passes through", "Correct Score 2-1", "Correct Score 2-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, strategy.NormalizeMarket(tt.desc))
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := strategy.DefaultConfig()

	assert.Equal(t, 4, cfg.MaxElitePerDay)
	assert.Equal(t, 6, cfg.MaxPicksPerDay)
	assert.Equal(t, 4.0, cfg.MaxStakePct)

	// Mercado fora da tabela cai no default UNKNOWN
	s := cfg.Settings("Correct Score 2-1")
	assert.Equal(t, strategy.TierUnknown, s.Tier)
	assert.Equal(t, 30.0, s.MinEdge)
}
