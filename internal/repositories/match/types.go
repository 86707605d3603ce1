package match

import "github.com/clueduel/clueduel/internal/models"

// SaveMatchInput contains parameters for saving a match record
type SaveMatchInput struct {
	Match *models.Match
}

// GetMatchInput contains parameters for retrieving a match record
type GetMatchInput struct {
	MatchID string
}

// GetPlayerMatchesInput contains parameters for a player's match history
type GetPlayerMatchesInput struct {
	PlayerID string

	// Limit caps the number of records returned; defaults to 10
	Limit int
}

// GetPlayerMatchesOutput contains a player's recent matches, newest first
type GetPlayerMatchesOutput struct {
	Matches []*models.Match
}
