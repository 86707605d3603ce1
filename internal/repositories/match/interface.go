package match

import (
	"context"

	"github.com/clueduel/clueduel/internal/models"
)

// Repository defines the interface for settled-match persistence
type Repository interface {
	// SaveMatch persists a finished match record
	SaveMatch(ctx context.Context, input *SaveMatchInput) error

	// GetMatch retrieves a match record by ID
	GetMatch(ctx context.Context, input *GetMatchInput) (*models.Match, error)

	// GetPlayerMatches returns a player's most recent matches, newest first
	GetPlayerMatches(ctx context.Context, input *GetPlayerMatchesInput) (*GetPlayerMatchesOutput, error)
}
