package ws_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radieske/soccer-picks-poc/internal/picks-service/ws"
	"github.com/radieske/soccer-picks-poc/pkg/contracts/events"
)

func dialHub(t *testing.T, hub *ws.Hub) *websocket.Conn {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(hub.HandleWS))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestHub_PingPong(t *testing.T) {
	hub := ws.NewHub(func(r *http.Request) bool { return true })
	conn := dialHub(t, hub)

	require.NoError(t, conn.WriteJSON(ws.ClientMsg{Type: "ping"}))

	var resp map[string]string
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Equal(t, "pong", resp["type"])
}

func TestHub_BroadcastToSubscribers(t *testing.T) {
	hub := ws.NewHub(func(r *http.Request) bool { return true })

	subscribed := dialHub(t, hub)
	other := dialHub(t, hub)

	require.NoError(t, subscribed.WriteJSON(ws.ClientMsg{Type: "subscribe", FixtureID: "101"}))
	require.NoError(t, other.WriteJSON(ws.ClientMsg{Type: "subscribe", FixtureID: "999"}))

	// Confirma que as assinaturas foram processadas antes do broadcast
	require.NoError(t, subscribed.WriteJSON(ws.ClientMsg{Type: "ping"}))
	var pong map[string]string
	require.NoError(t, subscribed.ReadJSON(&pong))
	require.NoError(t, other.WriteJSON(ws.ClientMsg{Type: "ping"}))
	require.NoError(t, other.ReadJSON(&pong))

	hub.Broadcast(ws.SettledUpdate{
		FixtureID: "101",
		Payload:   events.PickSettled{PickID: "abc", FixtureID: 101, Outcome: "WIN"},
	})

	var upd ws.SettledUpdate
	require.NoError(t, subscribed.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, subscribed.ReadJSON(&upd))
	assert.Equal(t, "101", upd.FixtureID)

	// Cliente inscrito em outra fixture não recebe nada
	require.NoError(t, other.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	var stray ws.SettledUpdate
	assert.Error(t, other.ReadJSON(&stray))
}

func TestDispatchSettled_RoutesByFixture(t *testing.T) {
	hub := ws.NewHub(func(r *http.Request) bool { return true })
	conn := dialHub(t, hub)

	require.NoError(t, conn.WriteJSON(ws.ClientMsg{Type: "subscribe", FixtureID: "202"}))
	require.NoError(t, conn.WriteJSON(ws.ClientMsg{Type: "ping"}))
	var pong map[string]string
	require.NoError(t, conn.ReadJSON(&pong))

	// Mesma carga que o results-settler publica no canal Pub/Sub
	payload, err := json.Marshal(events.PickSettled{PickID: "abc", FixtureID: 202, Outcome: "WIN"})
	require.NoError(t, err)

	ws.DispatchSettled(hub, payload)

	var upd ws.SettledUpdate
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&upd))
	assert.Equal(t, "202", upd.FixtureID)
}

func TestHub_Unsubscribe(t *testing.T) {
	hub := ws.NewHub(func(r *http.Request) bool { return true })
	conn := dialHub(t, hub)

	require.NoError(t, conn.WriteJSON(ws.ClientMsg{Type: "subscribe", FixtureID: "101"}))
	require.NoError(t, conn.WriteJSON(ws.ClientMsg{Type: "unsubscribe", FixtureID: "101"}))

	require.NoError(t, conn.WriteJSON(ws.ClientMsg{Type: "ping"}))
	var pong map[string]string
	require.NoError(t, conn.ReadJSON(&pong))

	hub.Broadcast(ws.SettledUpdate{FixtureID: "101", Payload: "ignored"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	var stray ws.SettledUpdate
	assert.Error(t, conn.ReadJSON(&stray))
}
