package matchmaking

// MatchmakingError is a custom error type for matchmaking errors
type MatchmakingError string

// Error implements the error interface
func (e MatchmakingError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig       MatchmakingError = "config cannot be nil"
	ErrNilPlayerRepo   MatchmakingError = "player repository cannot be nil"
	ErrNilMatchService MatchmakingError = "match service cannot be nil"
	ErrNilClock        MatchmakingError = "clock cannot be nil"
	ErrNilRandom       MatchmakingError = "random source cannot be nil"
	ErrMissingPlayer   MatchmakingError = "player ID cannot be empty"
)
