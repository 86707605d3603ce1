package player

import (
	"context"

	"github.com/clueduel/clueduel/internal/models"
)

// Repository defines the interface for player data persistence
type Repository interface {
	// SavePlayer persists a player and refreshes the rating leaderboard
	SavePlayer(ctx context.Context, input *SavePlayerInput) error

	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// GetOrCreatePlayer retrieves a player, creating a default-rated
	// record for unknown IDs
	GetOrCreatePlayer(ctx context.Context, input *GetOrCreatePlayerInput) (*models.Player, error)

	// GetLeaderboard returns the top players ordered by rating
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}
