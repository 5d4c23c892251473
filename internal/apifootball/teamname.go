package apifootball

import "strings"

// MatchTeamName compara nomes de times com tolerância a variações
// ("Man United" vs "Manchester United FC"). Aceita substring em qualquer
// direção e correspondência entre palavras significativas (>3 caracteres,
// descartando sufixos tipo "FC").
func MatchTeamName(searchName, apiName string) bool {
	search := strings.ToLower(strings.TrimSpace(searchName))
	api := strings.ToLower(strings.TrimSpace(apiName))
	if search == "" || api == "" {
		return false
	}

	if strings.Contains(api, search) || strings.Contains(search, api) {
		return true
	}

	for _, sp := range strings.Fields(search) {
		if len(sp) <= 3 {
			continue
		}
		for _, ap := range strings.Fields(api) {
			if strings.Contains(ap, sp) || strings.Contains(sp, ap) {
				return true
			}
		}
	}

	return false
}
