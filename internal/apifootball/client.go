package apifootball

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/soccer-picks-poc/internal/picks"
)

// Client consome um provedor compatível com a API-Football v3.
// Todas as chamadas respeitam um intervalo mínimo entre requisições
// pra não estourar o rate limit do plano gratuito.
type Client struct {
	BaseURL string
	APIKey  string
	Log     *zap.Logger

	HTTP     *http.Client
	Pace     time.Duration // intervalo mínimo entre chamadas
	lastCall time.Time
}

func NewClient(baseURL, apiKey string, log *zap.Logger) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Log:     log,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		Pace:    time.Second,
	}
}

// get executa uma requisição autenticada e desserializa o corpo em dst
func (c *Client) get(ctx context.Context, path string, params url.Values, dst any) error {
	// espaçamento fixo de 1s entre chamadas
	if wait := c.Pace - time.Since(c.lastCall); wait > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	c.lastCall = time.Now()

	u := c.BaseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("x-apisports-key", c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("api-football request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("api-football status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(dst)
}

// FixturesByDate lista as fixtures de uma data (UTC)
func (c *Client) FixturesByDate(ctx context.Context, date string) ([]Fixture, error) {
	params := url.Values{}
	params.Set("date", date)
	params.Set("timezone", "UTC")

	var out fixturesResponse
	if err := c.get(ctx, "/fixtures", params, &out); err != nil {
		return nil, err
	}

	c.Log.Debug("fixtures fetched", zap.String("date", date), zap.Int("count", len(out.Response)))
	return out.Response, nil
}

// OddsByFixture retorna as odds pré-jogo de uma fixture
func (c *Client) OddsByFixture(ctx context.Context, fixtureID int64) ([]FixtureOdds, error) {
	params := url.Values{}
	params.Set("fixture", strconv.FormatInt(fixtureID, 10))

	var out oddsResponse
	if err := c.get(ctx, "/odds", params, &out); err != nil {
		return nil, err
	}
	return out.Response, nil
}

// SearchFixture procura uma fixture pelos nomes dos times numa data.
// A comparação de nomes é flexível (ver MatchTeamName).
func (c *Client) SearchFixture(ctx context.Context, homeTeam, awayTeam, date string) (*Fixture, error) {
	fixtures, err := c.FixturesByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	for i := range fixtures {
		f := &fixtures[i]
		if MatchTeamName(homeTeam, f.Teams.Home.Name) && MatchTeamName(awayTeam, f.Teams.Away.Name) {
			return f, nil
		}
	}

	c.Log.Warn("fixture not found",
		zap.String("home", homeTeam), zap.String("away", awayTeam), zap.String("date", date))
	return nil, nil
}

// MatchResult busca o resultado verificado de uma partida.
// Retorna nil quando a fixture não existe ou ainda não terminou (FT/AET/PEN).
func (c *Client) MatchResult(ctx context.Context, homeTeam, awayTeam, date string) (*picks.Result, error) {
	f, err := c.SearchFixture(ctx, homeTeam, awayTeam, date)
	if err != nil || f == nil {
		return nil, err
	}
	return ExtractResult(f), nil
}

// ExtractResult converte a fixture num Result de liquidação.
// Só partidas encerradas produzem Finished=true; escanteios vêm do bloco de estatísticas.
func ExtractResult(f *Fixture) *picks.Result {
	status := f.Fixture.Status.Short
	finished := status == "FT" || status == "AET" || status == "PEN"
	if !finished {
		return &picks.Result{Finished: false}
	}

	home, away := 0, 0
	if f.Goals.Home != nil {
		home = *f.Goals.Home
	}
	if f.Goals.Away != nil {
		away = *f.Goals.Away
	}

	homeCorners, awayCorners := 0, 0
	for _, ts := range f.Statistics {
		for _, st := range ts.Statistics {
			if st.Type != "Corner Kicks" {
				continue
			}
			corners, ok := asInt(st.Value)
			if !ok {
				continue
			}
			switch ts.Team.ID {
			case f.Teams.Home.ID:
				homeCorners = corners
			case f.Teams.Away.ID:
				awayCorners = corners
			}
		}
	}

	return &picks.Result{
		HomeScore:    home,
		AwayScore:    away,
		TotalGoals:   home + away,
		TotalCorners: homeCorners + awayCorners,
		BTTS:         home > 0 && away > 0,
		Finished:     true,
		Verified:     true,
	}
}

// asInt aceita os formatos que a API usa pra valores de estatística
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case string:
		i, err := strconv.Atoi(n)
		return i, err == nil
	default:
		return 0, false
	}
}
