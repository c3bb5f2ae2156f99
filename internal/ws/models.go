package ws

import (
	"encoding/json"
)

const (
	EventMove    = "move"
	EventRestart = "restart"

	// EventState is pushed by the server whenever the game changes.
	EventState = "state"
	EventError = "error"
)

type Incoming struct {
	Event string          `json:"event"`
	ID    int             `json:"id"`
	Data  json.RawMessage `json:"data"`
}

type Outgoing struct {
	ID    int    `json:"id,omitempty"`
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}
