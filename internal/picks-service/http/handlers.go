package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/radieske/soccer-picks-poc/internal/picks-service/cache"
	"github.com/radieske/soccer-picks-poc/internal/picks-service/dto"
	"github.com/radieske/soccer-picks-poc/internal/picks-service/repo"
)

// API expõe os endpoints REST de consulta de picks e performance
// Utiliza um repositório de leitura (Postgres) e cache (Redis)
type API struct {
	ReadRepo  *repo.ReadRepo // acesso ao banco de dados
	Cache     *cache.Cache   // cache de picks por data
	FlatStake float64        // stake fixa usada nos agregados de ROI
}

// Router retorna o roteador HTTP com os endpoints REST
func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/v1/picks", a.listPicks)                          // Lista picks de uma data
	r.Get("/v1/picks/{id}", a.getPick)                       // Detalhe de um pick
	r.Get("/v1/performance", a.getPerformance)               // Agregados globais
	r.Get("/v1/performance/markets", a.getMarketPerformance) // Quebra por mercado
	return r
}

// writeJSON serializa a resposta em JSON e define o status HTTP
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// listPicks retorna os picks da data informada, preferencialmente do cache
func (a *API) listPicks(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	var fromCache []dto.Pick
	if ok, _ := a.Cache.GetPicks(r.Context(), date, &fromCache); ok {
		writeJSON(w, http.StatusOK, fromCache)
		return
	}

	ps, err := a.ReadRepo.ListByDate(r.Context(), date)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	_ = a.Cache.SetPicks(r.Context(), date, ps, 30*time.Second) // salva no cache por 30s
	writeJSON(w, http.StatusOK, ps)
}

// getPick retorna um pick pelo id
func (a *API) getPick(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := a.ReadRepo.GetByID(r.Context(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// getPerformance retorna os agregados globais de picks liquidados
func (a *API) getPerformance(w http.ResponseWriter, r *http.Request) {
	perf, err := a.ReadRepo.OverallPerformance(r.Context(), a.FlatStake)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, perf)
}

// getMarketPerformance retorna a performance por mercado
func (a *API) getMarketPerformance(w http.ResponseWriter, r *http.Request) {
	mk, err := a.ReadRepo.MarketPerformance(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, mk)
}
