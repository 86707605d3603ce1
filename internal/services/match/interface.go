package match

import "context"

// Service defines the interface for match lifecycle operations
type Service interface {
	// CreateMatch registers a new match between two participants
	CreateMatch(ctx context.Context, input *CreateMatchInput) (*CreateMatchOutput, error)

	// StartRound fetches a question and begins the current round
	StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error)

	// SubmitAnswer records a real player's answer for the current round
	SubmitAnswer(ctx context.Context, input *SubmitAnswerInput) (*SubmitAnswerOutput, error)

	// EndMatch removes a match from the registry and cancels its timers
	EndMatch(ctx context.Context, input *EndMatchInput) (*EndMatchOutput, error)
}
