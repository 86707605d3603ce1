package match

import "github.com/clueduel/clueduel/internal/models"

// Server-to-client events emitted by the match engine
const (
	EventQuestionReceived = "question-received"
	EventClueRevealed     = "clue-revealed"
	EventAnswersRevealed  = "answers-revealed"
	EventOpponentAnswer   = "opponent-answer"
	EventRoundResult      = "round-result"
	EventMatchResult      = "match-result"
	EventMatchAborted     = "match-aborted"
)

// QuestionPayload delivers a round's question. The correct label is
// never included; clients learn it from the round result.
type QuestionPayload struct {
	MatchID  string              `json:"matchId"`
	Round    int                 `json:"round"`
	Question models.QuestionView `json:"question"`
}

// CluePayload announces one staged clue reveal
type CluePayload struct {
	MatchID string `json:"matchId"`
	Round   int    `json:"round"`
	Index   int    `json:"index"`
	Clue    string `json:"clue"`
}

// AnswersRevealedPayload announces that options are visible and the
// answer countdown has started
type AnswersRevealedPayload struct {
	MatchID     string `json:"matchId"`
	Round       int    `json:"round"`
	TimeLimitMS int64  `json:"timeLimitMs"`
}

// OpponentAnswerPayload reveals the opposing side's pick at resolution
type OpponentAnswerPayload struct {
	MatchID  string               `json:"matchId"`
	Round    int                  `json:"round"`
	Answer   models.Label         `json:"answer"`
	Correct  bool                 `json:"isCorrect"`
	Opponent models.PublicProfile `json:"opponent"`
}

// RoundResultPayload carries one resolved round from the receiving
// player's perspective
type RoundResultPayload struct {
	MatchID         string        `json:"matchId"`
	Round           int           `json:"round"`
	PlayerAnswer    *models.Label `json:"playerAnswer"`
	PlayerCorrect   bool          `json:"playerCorrect"`
	OpponentAnswer  *models.Label `json:"opponentAnswer"`
	OpponentCorrect bool          `json:"opponentCorrect"`
	RoundWinner     models.Winner `json:"roundWinner"`
	CorrectAnswer   models.Label  `json:"correctAnswer"`
	PlayerWins      int           `json:"playerWins"`
	OpponentWins    int           `json:"opponentWins"`
}

// MatchResultPayload carries the final settlement from the receiving
// player's perspective
type MatchResultPayload struct {
	MatchID      string `json:"matchId"`
	Won          bool   `json:"won"`
	PlayerWins   int    `json:"playerWins"`
	OpponentWins int    `json:"opponentWins"`
	RatingDelta  int    `json:"ratingDelta"`
	PointsDelta  int    `json:"pointsDelta"`
	Rating       int    `json:"rating"`
	Points       int    `json:"points"`
}

// MatchAbortedPayload surfaces a terminal match error
type MatchAbortedPayload struct {
	MatchID string `json:"matchId"`
	Reason  string `json:"reason"`
}
