package events

import "time"

// Evento emitido pelo results-settler após liquidar um pick.
type PickSettled struct {
	PickID       string    `json:"pickId"`
	FixtureID    int64     `json:"fixtureId"`
	Outcome      string    `json:"outcome"` // "WIN" | "LOSS" | "VOID"
	HomeScore    int       `json:"homeScore"`
	AwayScore    int       `json:"awayScore"`
	TotalCorners int       `json:"totalCorners"`
	ProfitLoss   float64   `json:"profitLoss"`
	Verified     bool      `json:"verified"` // false quando o resultado foi simulado
	Ts           time.Time `json:"ts"`
}
