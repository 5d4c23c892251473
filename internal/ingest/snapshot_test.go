package ingest_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radieske/soccer-picks-poc/internal/apifootball"
	"github.com/radieske/soccer-picks-poc/internal/ingest"
)

const fixtureJSON = `{
	"fixture": {"id": 101, "date": "2025-03-10T19:30:00+00:00", "status": {"short": "NS"}},
	"league": {"id": 71, "name": "Serie A", "country": "Brazil"},
	"teams": {"home": {"id": 1, "name": "Flamengo"}, "away": {"id": 2, "name": "Palmeiras"}}
}`

const oddsJSON = `[{
	"fixture": {"id": 101},
	"bookmakers": [
		{
			"name": "Bookie A",
			"bets": [
				{
					"name": "Goals Over/Under",
					"values": [
						{"value": "Over 2.5", "odd": "1.85"},
						{"value": "Under 2.5", "odd": "1.95"},
						{"value": "Over 2.5", "odd": "1.80"}
					]
				},
				{
					"name": "Both Teams Score",
					"values": [
						{"value": "Yes", "odd": "1.72"},
						{"value": "No", "odd": "2.05"}
					]
				},
				{
					"name": "Total - Away",
					"values": [{"value": "Under 1.5", "odd": "1.60"}]
				},
				{
					"name": "Corners Over Under",
					"values": [{"value": "Over 9.5", "odd": "1.90"}]
				},
				{
					"name": "Exact Score",
					"values": [{"value": "2:1", "odd": "9.00"}]
				},
				{
					"name": "Goals Over/Under",
					"values": [{"value": "Over 3.5", "odd": "1.00"}]
				}
			]
		}
	]
}]`

func TestBuildSnapshot(t *testing.T) {
	var f apifootball.Fixture
	require.NoError(t, json.Unmarshal([]byte(fixtureJSON), &f))

	var odds []apifootball.FixtureOdds
	require.NoError(t, json.Unmarshal([]byte(oddsJSON), &odds))

	snap := ingest.BuildSnapshot(f, odds)

	assert.Equal(t, int64(101), snap.FixtureID)
	assert.Equal(t, "2025-03-10", snap.Date)
	assert.Equal(t, "19:30", snap.KickOff)
	assert.Equal(t, "Flamengo", snap.HomeTeam)
	assert.Equal(t, "Palmeiras", snap.AwayTeam)
	assert.Equal(t, "Serie A", snap.League)
	assert.Equal(t, "api-football", snap.Source)

	byMarket := make(map[string]float64)
	for _, m := range snap.Markets {
		byMarket[m.Market] = m.Odds
	}

	// Primeiro bookmaker a cotar cada mercado vence
	assert.Equal(t, 1.85, byMarket["Over 2.5 Goals"])
	assert.Equal(t, 1.95, byMarket["Under 2.5 Goals"])
	assert.Equal(t, 1.72, byMarket["Both Teams to Score - Yes"])
	assert.Equal(t, 2.05, byMarket["Both Teams to Score - No"])
	assert.Equal(t, 1.60, byMarket["Away Team Under 1.5 Goals"])
	assert.Equal(t, 1.90, byMarket["Over 9.5 Total Corners"])

	// Mercados não mapeados e odds sem valor ficam de fora
	assert.NotContains(t, byMarket, "2:1")
	assert.NotContains(t, byMarket, "Over 3.5 Goals")
	assert.Len(t, snap.Markets, 6)
}

func TestBuildSnapshot_IgnoresOtherFixtures(t *testing.T) {
	var f apifootball.Fixture
	require.NoError(t, json.Unmarshal([]byte(fixtureJSON), &f))

	var odds []apifootball.FixtureOdds
	require.NoError(t, json.Unmarshal([]byte(`[{
		"fixture": {"id": 999},
		"bookmakers": [{"name": "B", "bets": [{"name": "Goals Over/Under", "values": [{"value": "Over 2.5", "odd": "1.85"}]}]}]
	}]`), &odds))

	snap := ingest.BuildSnapshot(f, odds)
	assert.Empty(t, snap.Markets)
}
