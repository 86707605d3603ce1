package match

import (
	"time"

	"github.com/clueduel/clueduel/internal/common/clock"
	"github.com/clueduel/clueduel/internal/common/uuid"
	"github.com/clueduel/clueduel/internal/models"
	matchRepo "github.com/clueduel/clueduel/internal/repositories/match"
	playerRepo "github.com/clueduel/clueduel/internal/repositories/player"
	questionRepo "github.com/clueduel/clueduel/internal/repositories/question"
	"github.com/clueduel/clueduel/internal/rng"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/clueduel/clueduel/internal/services/match Notifier

// Notifier delivers a server event to one player's connection.
// Implementations must not block; the engine calls it from timer
// callbacks.
type Notifier interface {
	Notify(event string, data any)
}

// Config holds configuration for the match service
type Config struct {
	// CluePace is the delay between consecutive clue reveals
	CluePace time.Duration

	// RevealPause is the pause between the last clue and the options
	RevealPause time.Duration

	// AnswerWindow is how long answers are accepted once options show
	AnswerWindow time.Duration

	// BotAnswerDelayMin and BotAnswerDelayMax bound the simulated
	// opponent's answer delay after options are revealed
	BotAnswerDelayMin time.Duration
	BotAnswerDelayMax time.Duration

	// BotAccuracyMin and BotAccuracyMax bound the per-match accuracy
	// draw for simulated opponents
	BotAccuracyMin float64
	BotAccuracyMax float64

	// Repository dependencies
	QuestionRepo questionRepo.Repository
	PlayerRepo   playerRepo.Repository
	MatchRepo    matchRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Random        *rng.Source
}

// RealPlayer couples a player record with the connection to notify
type RealPlayer struct {
	Player   *models.Player
	Notifier Notifier
}

// CreateMatchInput contains parameters for creating a match.
// Exactly one of Player2 or Bot must be set.
type CreateMatchInput struct {
	// Player1 is the initiating player; points at stake derive from
	// their balance
	Player1 *RealPlayer

	// Player2 is a second real player, nil for simulated matches
	Player2 *RealPlayer

	// Bot is the simulated opponent profile, nil for real matches
	Bot *models.BotProfile
}

// CreateMatchOutput contains the result of creating a match
type CreateMatchOutput struct {
	// MatchID is the unique identifier for the created match
	MatchID string

	// PointsAtStake is the wager fixed for the whole match
	PointsAtStake int
}

// StartRoundInput contains parameters for starting the current round
type StartRoundInput struct {
	// MatchID is the unique identifier for the match
	MatchID string
}

// StartRoundOutput contains the result of starting a round
type StartRoundOutput struct {
	// Round is the round number that was started
	Round int
}

// SubmitAnswerInput contains a real player's round answer
type SubmitAnswerInput struct {
	// MatchID is the unique identifier for the match
	MatchID string

	// PlayerID identifies the submitting participant
	PlayerID string

	// Answer is the selected option label
	Answer models.Label

	// TimeLeft is the client's remaining countdown in seconds
	TimeLeft int
}

// SubmitAnswerOutput contains the result of submitting an answer
type SubmitAnswerOutput struct {
	// Accepted indicates the answer was recorded for this round
	Accepted bool
}

// EndMatchInput contains parameters for explicit match termination
type EndMatchInput struct {
	// MatchID is the unique identifier for the match
	MatchID string
}

// EndMatchOutput contains the result of ending a match
type EndMatchOutput struct {
	// Removed indicates the match was present and cleaned up
	Removed bool
}
