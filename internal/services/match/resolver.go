package match

import "github.com/clueduel/clueduel/internal/models"

// RoundAnswer is one side's answer as seen by the resolver. An
// unanswered side is represented by Answered=false and counts as
// incorrect.
type RoundAnswer struct {
	Label    models.Label
	Answered bool
}

// RoundOutcome is the resolver's verdict for one round
type RoundOutcome struct {
	PlayerCorrect   bool
	OpponentCorrect bool
	Winner          models.Winner
}

// Resolve decides a round. The winner is the side that answered
// correctly while the other did not; everything else is a tie. Pure
// and deterministic.
func Resolve(player, opponent RoundAnswer, correct models.Label) RoundOutcome {
	playerCorrect := player.Answered && player.Label == correct
	opponentCorrect := opponent.Answered && opponent.Label == correct

	winner := models.WinnerTie
	switch {
	case playerCorrect && !opponentCorrect:
		winner = models.WinnerPlayer
	case opponentCorrect && !playerCorrect:
		winner = models.WinnerOpponent
	}

	return RoundOutcome{
		PlayerCorrect:   playerCorrect,
		OpponentCorrect: opponentCorrect,
		Winner:          winner,
	}
}
