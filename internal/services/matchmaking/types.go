package matchmaking

import (
	"context"
	"time"

	"github.com/clueduel/clueduel/internal/common/clock"
	"github.com/clueduel/clueduel/internal/models"
	playerRepo "github.com/clueduel/clueduel/internal/repositories/player"
	"github.com/clueduel/clueduel/internal/rng"
	"github.com/clueduel/clueduel/internal/services/match"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_matchmaking.go github.com/clueduel/clueduel/internal/services/matchmaking Notifier,MatchCreator

// Notifier delivers a server event to one player's connection
type Notifier interface {
	Notify(event string, data any)
}

// MatchCreator is the slice of the match service matchmaking needs
type MatchCreator interface {
	CreateMatch(ctx context.Context, input *match.CreateMatchInput) (*match.CreateMatchOutput, error)
}

// Server-to-client events emitted while pairing
const (
	EventMatchmakingStatus    = "matchmaking-status"
	EventMatchFound           = "match-found"
	EventMatchmakingCancelled = "matchmaking-cancelled"
)

// StatusPayload is a matchmaking progress ping
type StatusPayload struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// MatchFoundPayload announces a pairing to one queued player
type MatchFoundPayload struct {
	MatchID       string               `json:"matchId"`
	Opponent      models.PublicProfile `json:"opponent"`
	PointsAtStake int                  `json:"pointsAtStake"`
}

// Config holds configuration for the matchmaking service
type Config struct {
	// RatingBand is the maximum rating distance for a pairing
	RatingBand int

	// PairingDelayMin and PairingDelayMax bound the randomized delay
	// before a queued player's pairing attempt fires
	PairingDelayMin time.Duration
	PairingDelayMax time.Duration

	// Repository dependencies
	PlayerRepo playerRepo.Repository

	// Service dependencies
	MatchService MatchCreator
	Clock        clock.Clock
	Random       *rng.Source
}

// JoinInput contains parameters for entering the matchmaking pool
type JoinInput struct {
	// PlayerID is the stable identifier of the joining player
	PlayerID string

	// PlayerName is the display name of the joining player
	PlayerName string

	// Notifier receives pairing events for this connection
	Notifier Notifier
}

// JoinOutput contains the result of joining the pool
type JoinOutput struct {
	// Rating is the snapshot used for band matching
	Rating int
}

// CancelInput contains parameters for leaving the matchmaking pool
type CancelInput struct {
	// PlayerID is the stable identifier of the cancelling player
	PlayerID string
}

// CancelOutput contains the result of a cancellation
type CancelOutput struct {
	// Cancelled indicates a pending entry was removed
	Cancelled bool
}
