package ws

// ClientMsg representa uma mensagem recebida do cliente WebSocket
// Type: subscribe | unsubscribe | ping
// FixtureID: obrigatório para subscribe/unsubscribe
type ClientMsg struct {
	Type      string `json:"type"`      // subscribe | unsubscribe | ping
	FixtureID string `json:"fixtureId"` // requerido em subscribe/unsubscribe
}

// SettledUpdate representa a liquidação de um pick enviada para clientes WebSocket
type SettledUpdate struct {
	FixtureID string      `json:"fixtureId"`
	Payload   interface{} `json:"payload"`
}
