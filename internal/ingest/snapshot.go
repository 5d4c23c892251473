package ingest

import (
	"strconv"
	"strings"
	"time"

	"github.com/radieske/soccer-picks-poc/internal/apifootball"
	"github.com/radieske/soccer-picks-poc/pkg/contracts/events"
)

// Mapeamento dos nomes de bet da API-Football pros mercados canônicos da estratégia
func marketName(betName, value string) string {
	switch betName {
	case "Goals Over/Under":
		return value + " Goals" // "Over 2.5" -> "Over 2.5 Goals"
	case "Both Teams Score":
		switch value {
		case "Yes":
			return "Both Teams to Score - Yes"
		case "No":
			return "Both Teams to Score - No"
		}
	case "Total - Home":
		return "Home Team " + value + " Goals"
	case "Total - Away":
		return "Away Team " + value + " Goals"
	case "Corners Over Under":
		return value + " Total Corners"
	}
	return ""
}

// BuildSnapshot monta o evento OddsSnapshot a partir da fixture e das odds do provedor.
// Usa o primeiro bookmaker que cotou cada mercado; mercados não mapeados são ignorados.
func BuildSnapshot(f apifootball.Fixture, odds []apifootball.FixtureOdds) events.OddsSnapshot {
	kick := f.Fixture.Date
	date := kick
	if t, err := time.Parse(time.RFC3339, kick); err == nil {
		date = t.UTC().Format("2006-01-02")
		kick = t.UTC().Format("15:04")
	}

	snap := events.OddsSnapshot{
		FixtureID: f.Fixture.ID,
		Date:      date,
		KickOff:   kick,
		HomeTeam:  f.Teams.Home.Name,
		AwayTeam:  f.Teams.Away.Name,
		League:    f.League.Name,
		FetchedAt: time.Now().UTC(),
		Source:    "api-football",
	}

	seen := make(map[string]bool)
	for _, fo := range odds {
		if fo.Fixture.ID != f.Fixture.ID {
			continue
		}
		for _, bm := range fo.Bookmakers {
			for _, bet := range bm.Bets {
				for _, v := range bet.Values {
					market := marketName(bet.Name, v.Value)
					if market == "" || seen[market] {
						continue
					}
					odd, err := strconv.ParseFloat(strings.TrimSpace(v.Odd), 64)
					if err != nil || odd <= 1.0 {
						continue
					}
					seen[market] = true
					snap.Markets = append(snap.Markets, events.MarketOdds{
						Market: market,
						Odds:   odd,
					})
				}
			}
		}
	}

	return snap
}
