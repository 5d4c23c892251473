package strategy

import "strings"

// NormalizeMarket mapeia uma descrição livre de aposta para o nome canônico
// usado na tabela de mercados. Descrições sem correspondência voltam inalteradas.
func NormalizeMarket(betDescription string) string {
	desc := strings.ToLower(betDescription)

	// Correspondência exata com os mercados conhecidos primeiro
	for _, market := range knownMarkets {
		if strings.Contains(desc, strings.ToLower(market)) {
			return market
		}
	}

	switch {
	case strings.Contains(desc, "over 2.5") && strings.Contains(desc, "goals"):
		return "Over 2.5 Goals"
	case strings.Contains(desc, "under 2.5") && strings.Contains(desc, "goals"):
		return "Under 2.5 Goals"
	case strings.Contains(desc, "over 1.5") && strings.Contains(desc, "goals"):
		return "Over 1.5 Goals"
	case strings.Contains(desc, "under 1.5") && strings.Contains(desc, "goals"):
		if strings.Contains(desc, "away") {
			return "Away Team Under 1.5 Goals"
		}
		if strings.Contains(desc, "home") {
			return "Home Team Under 1.5 Goals"
		}
	case strings.Contains(desc, "both teams to score"):
		if strings.Contains(desc, "yes") {
			return "Both Teams to Score - Yes"
		}
		if strings.Contains(desc, "no") {
			return "Both Teams to Score - No"
		}
	case strings.Contains(desc, "over 9.5") && strings.Contains(desc, "corners"):
		return "Over 9.5 Total Corners"
	}

	return betDescription
}

// Nomes canônicos reconhecidos pela normalização por substring
var knownMarkets = []string{
	"Over 2.5 Goals",
	"Under 2.5 Goals",
	"Over 1.5 Goals",
	"Away Team Under 1.5 Goals",
	"Home Team Under 1.5 Goals",
	"Both Teams to Score - Yes",
	"Both Teams to Score - No",
	"Over 9.5 Total Corners",
}
