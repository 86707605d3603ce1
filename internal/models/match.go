package models

import (
	"time"
)

// MatchStatus represents the current state of a match
type MatchStatus string

const (
	// MatchStatusWaiting indicates a match has been created but no round is running
	MatchStatusWaiting MatchStatus = "waiting"

	// MatchStatusActive indicates a round is in progress
	MatchStatusActive MatchStatus = "active"

	// MatchStatusRoundResolved indicates the last round has been resolved
	// and the match is waiting for the next round to start
	MatchStatusRoundResolved MatchStatus = "round_resolved"

	// MatchStatusFinished indicates the match has been settled
	MatchStatusFinished MatchStatus = "finished"
)

// Winner identifies the outcome of a round or match from the
// asking side's perspective
type Winner string

const (
	WinnerPlayer   Winner = "player"
	WinnerOpponent Winner = "opponent"
	WinnerTie      Winner = "tie"
)

// Match is the persisted record of a contest between two participants.
// The live session state lives in the match service; this record is
// written once at settlement.
type Match struct {
	// ID is the unique identifier for the match
	ID string `json:"id"`

	// Player1ID is the initiating participant (stake is derived from their balance)
	Player1ID string `json:"player1Id"`

	// Player2ID is the opposing participant; roster IDs for simulated opponents
	Player2ID string `json:"player2Id"`

	// Status is the final state of the match
	Status MatchStatus `json:"status"`

	// WinnerID is the participant who took the match, empty on a drawn abort
	WinnerID string `json:"winnerId"`

	// Player1Wins and Player2Wins are the final round-win tallies
	Player1Wins int `json:"player1Wins"`
	Player2Wins int `json:"player2Wins"`

	// Rounds is the number of rounds played
	Rounds int `json:"rounds"`

	// PointsAtStake is the wager fixed at match creation
	PointsAtStake int `json:"pointsAtStake"`

	// CreatedAt is when the match was created
	CreatedAt time.Time `json:"createdAt"`

	// FinishedAt is when the match was settled or aborted
	FinishedAt time.Time `json:"finishedAt"`
}
