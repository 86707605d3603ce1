package matchmaking

import "context"

// Service defines the interface for matchmaking operations
type Service interface {
	// Join enqueues a player and schedules a delayed pairing attempt
	Join(ctx context.Context, input *JoinInput) (*JoinOutput, error)

	// Cancel removes a pending queue entry
	Cancel(ctx context.Context, input *CancelInput) (*CancelOutput, error)
}
