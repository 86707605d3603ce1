package match

import (
	"github.com/clueduel/clueduel/internal/models"
	"github.com/clueduel/clueduel/internal/rng"
)

// simulatedOpponent models a non-human participant. Accuracy is drawn
// once per match; each round it produces at most one answer, and its
// answered flag is reset together with the rest of the per-round state.
type simulatedOpponent struct {
	profile  models.BotProfile
	accuracy float64
	answered bool
}

func newSimulatedOpponent(profile models.BotProfile, accuracy float64) *simulatedOpponent {
	return &simulatedOpponent{
		profile:  profile,
		accuracy: accuracy,
	}
}

// pickAnswer produces the bot's answer for the current question: a
// Bernoulli trial against its accuracy, the correct label on success,
// a uniformly random wrong label on failure. Returns false if the bot
// already answered this round.
func (b *simulatedOpponent) pickAnswer(q *models.Question, random *rng.Source) (models.Label, bool) {
	if b.answered {
		return "", false
	}
	b.answered = true

	if random.Float64() < b.accuracy {
		return q.Correct, true
	}
	return random.WrongLabel(q.Correct), true
}

// reset clears the per-round answered flag
func (b *simulatedOpponent) reset() {
	b.answered = false
}
