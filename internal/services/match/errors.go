package match

// MatchError is a custom error type for match-related errors
type MatchError string

// Error implements the error interface
func (e MatchError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrMatchNotFound      MatchError = "match not found"
	ErrInvalidState       MatchError = "match is not in a valid state for this operation"
	ErrAlreadyAnswered    MatchError = "answer already submitted for this round"
	ErrInvalidAnswer      MatchError = "answer label must be one of A-D"
	ErrNotParticipant     MatchError = "player is not part of this match"
	ErrNilConfig          MatchError = "config cannot be nil"
	ErrNilQuestionRepo    MatchError = "question repository cannot be nil"
	ErrNilPlayerRepo      MatchError = "player repository cannot be nil"
	ErrNilMatchRepo       MatchError = "match repository cannot be nil"
	ErrNilClock           MatchError = "clock cannot be nil"
	ErrNilUUIDGenerator   MatchError = "UUID generator cannot be nil"
	ErrNilRandom          MatchError = "random source cannot be nil"
	ErrMissingParticipant MatchError = "match needs an initiating player and an opponent"
)
