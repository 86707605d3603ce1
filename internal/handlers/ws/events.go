package ws

import (
	"encoding/json"

	"github.com/clueduel/clueduel/internal/models"
)

// Envelope is the wire frame for every message in both directions
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Client-to-server events
const (
	EventJoinMatchmaking   = "join-matchmaking"
	EventCancelMatchmaking = "cancel-matchmaking"
	EventStartGame         = "start-game"
	EventSubmitAnswer      = "submit-answer"
	EventEndMatch          = "end-match"
)

// EventError is pushed when a client request cannot be honored
const EventError = "error"

// JoinMatchmakingRequest enters the connection into the pairing pool.
// PlayerID is optional; absent IDs get a fresh one for the connection.
type JoinMatchmakingRequest struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
}

// StartGameRequest asks for the next round of a match to begin
type StartGameRequest struct {
	MatchID string `json:"matchId"`
}

// SubmitAnswerRequest carries the connection's answer for the
// current round
type SubmitAnswerRequest struct {
	MatchID  string       `json:"matchId"`
	Answer   models.Label `json:"answer"`
	TimeLeft int          `json:"timeLeft"`
}

// EndMatchRequest tears down a match the connection is part of
type EndMatchRequest struct {
	MatchID string `json:"matchId"`
}

// ErrorPayload describes a rejected request
type ErrorPayload struct {
	Event   string `json:"event"`
	Message string `json:"message"`
}
