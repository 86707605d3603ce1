package player

import "github.com/clueduel/clueduel/internal/models"

// SavePlayerInput contains parameters for saving a player
type SavePlayerInput struct {
	Player *models.Player
}

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	PlayerID string
}

// GetOrCreatePlayerInput contains parameters for fetch-or-create
type GetOrCreatePlayerInput struct {
	PlayerID string
	Name     string
}

// GetLeaderboardInput contains parameters for the rating leaderboard
type GetLeaderboardInput struct {
	// Limit caps the number of entries returned; defaults to 10
	Limit int
}

// GetLeaderboardOutput contains the top players by rating, descending
type GetLeaderboardOutput struct {
	Players []*models.Player
}
