package models

import (
	"time"
)

const (
	// DefaultRating is the rating assigned to a player on first contact
	DefaultRating = 1200

	// DefaultPoints is the points balance assigned to a player on first contact
	DefaultPoints = 1000
)

// Player represents a participant's persistent profile
type Player struct {
	// ID is the stable identifier supplied by the identity layer
	ID string `json:"id"`

	// Name is the display name of the player
	Name string `json:"name"`

	// Rating is the ELO-like skill score adjusted after each match
	Rating int `json:"rating"`

	// Points is the wagerable balance, never negative
	Points int `json:"points"`

	// GamesPlayed is the number of matches the player has completed
	GamesPlayed int `json:"gamesPlayed"`

	// GamesWon is the number of matches the player has won
	GamesWon int `json:"gamesWon"`

	// CreatedAt is when the player record was first created
	CreatedAt time.Time `json:"createdAt"`
}

// PublicProfile is the subset of a profile shared with an opponent
type PublicProfile struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
}

// Public returns the player's opponent-visible profile
func (p *Player) Public() PublicProfile {
	return PublicProfile{
		Name:   p.Name,
		Rating: p.Rating,
	}
}

// BotProfile describes one entry in the fixed simulated-opponent roster
type BotProfile struct {
	// ID is the roster identifier for the simulated player
	ID string `json:"id"`

	// Name is the display name of the simulated player
	Name string `json:"name"`

	// Rating is the preset rating used for band matching
	Rating int `json:"rating"`
}

// Public returns the bot's opponent-visible profile
func (b *BotProfile) Public() PublicProfile {
	return PublicProfile{
		Name:   b.Name,
		Rating: b.Rating,
	}
}
